package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const Default ecs.LayerID = 0

// WavePhase is the state of the wave director.
type WavePhase int

const (
	PhaseCountdown WavePhase = iota
	PhaseInProgress
	PhaseComplete
	PhaseShop
	PhaseGameOver
	PhaseIdle // map-driven mode, no waves
)

func (p WavePhase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseInProgress:
		return "in_progress"
	case PhaseComplete:
		return "complete"
	case PhaseShop:
		return "shop"
	case PhaseGameOver:
		return "game_over"
	case PhaseIdle:
		return "idle"
	}
	return "unknown"
}

// AnimState selects the animation row of a character.
type AnimState int

const (
	AnimNormal AnimState = iota
	AnimDead
)

// GameMode selects how enemies enter the arena.
type GameMode int

const (
	// ModeWaves runs the wave director.
	ModeWaves GameMode = iota
	// ModeLegacy spawns once from the level's markers and never again.
	ModeLegacy
)

func (m GameMode) String() string {
	if m == ModeLegacy {
		return "legacy"
	}
	return "waves"
}
