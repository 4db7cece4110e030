// Package game composes the arena simulation into a session that a scene,
// a test or a headless driver advances one tick at a time.
package game

import (
	"time"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Input is one tick of player intent.
type Input = components.IntentData

// Session is one run in the arena.
type Session struct {
	grid   *leveldata.Grid
	opts   options
	ecs    *ecs.ECS
	events []cfg.SoundID
}

// New builds a session on grid. The run starts in the first wave's
// countdown, or idle with the level's markers spawned in legacy mode.
func New(grid *leveldata.Grid, opts ...Option) *Session {
	o := options{step: cfg.C.TickDuration}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	s := &Session{grid: grid, opts: o}
	s.build(true)

	logger.Log.WithFields(logrus.Fields{
		"mode": o.mode,
		"seed": o.seed,
		"step": o.step,
	}).Info("session created")
	return s
}

// build creates a new world. A fresh world also gets its opening pickups
// and, in legacy mode, the level's marker spawns; a restore brings its own.
func (s *Session) build(fresh bool) {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateLevel(e, s.grid, cfg.C.TileSize)
	factory.CreateSession(e, factory.SessionConfig{
		Mode: s.opts.mode,
		Seed: s.opts.seed,
		Step: s.opts.step,
	})
	factory.CreatePlayer(e, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)

	if fresh {
		systems.SpawnInitialColas(e)
		if s.opts.mode == ModeLegacy {
			systems.SpawnFromMarkers(e)
		}
	}

	addSystems(e)
	for _, fn := range s.opts.onBuild {
		fn(e)
	}
	s.ecs = e
	s.events = s.events[:0]
}

// addSystems registers the simulation in tick order.
func addSystems(e *ecs.ECS) {
	gameplay := systems.WithGameplayChecks

	e.AddSystem(systems.BeginTick)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(gameplay(systems.UpdateClock))
	e.AddSystem(gameplay(systems.UpdateShop))
	e.AddSystem(gameplay(systems.UpdateCountdown))
	e.AddSystem(gameplay(systems.UpdatePlayerMovement))
	e.AddSystem(gameplay(systems.UpdateCombo))
	e.AddSystem(gameplay(systems.UpdateWaves))
	e.AddSystem(gameplay(systems.UpdateEnemies))
	e.AddSystem(gameplay(systems.UpdateWaveCompletion))
	e.AddSystem(gameplay(systems.UpdatePlayer))
	e.AddSystem(gameplay(systems.UpdateWeapon))
	e.AddSystem(gameplay(systems.UpdateBullets))
	e.AddSystem(gameplay(systems.UpdateItems))
	e.AddSystem(gameplay(systems.UpdateEnemyBullets))
	e.AddSystem(gameplay(systems.UpdatePickupTimers))
	e.AddSystem(gameplay(systems.UpdatePowerUps))
	e.AddSystem(gameplay(systems.UpdateAnimation))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(gameplay(systems.UpdateCleanup))
}

// Tick advances the simulation one step with in as the player's intent.
// A restart press after the run ended resets the session first.
func (s *Session) Tick(in Input) {
	if in.Restart && s.Phase() == cfg.PhaseGameOver {
		s.Reset()
	}
	*systems.GetIntent(s.ecs) = in
	s.ecs.Update()
	s.events = append(s.events[:0], systems.GetAudio(s.ecs).PendingSFX...)
}

// Continue leaves the shop for the next wave. It reports false outside
// the shop.
func (s *Session) Continue() bool {
	return systems.ContinueWave(s.ecs)
}

// Purchase buys sku. It reports false, changing nothing, when the shop is
// closed, the wallet is short or the offer's precondition fails.
func (s *Session) Purchase(sku cfg.SKU) bool {
	return systems.Purchase(s.ecs, sku)
}

// Reset restores the session to exactly how New left it, seed included.
func (s *Session) Reset() {
	logger.Log.WithFields(logrus.Fields{
		"wave":  s.Wave().Number,
		"kills": s.Kills(),
	}).Info("session reset")
	s.build(true)
}

// ECS exposes the world for renderers.
func (s *Session) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Session) Phase() cfg.WavePhase {
	return systems.GetWave(s.ecs).Phase
}

func (s *Session) Wave() components.WaveData {
	return *systems.GetWave(s.ecs)
}

func (s *Session) Combo() components.ComboData {
	return *systems.GetCombo(s.ecs)
}

func (s *Session) Coins() int {
	return systems.GetWallet(s.ecs).Coins
}

// Kills is the player's score.
func (s *Session) Kills() int {
	pe, ok := systems.PlayerEntry(s.ecs)
	if !ok {
		return 0
	}
	return components.Player.Get(pe).Score
}

func (s *Session) PlayerHealth() int {
	pe, ok := systems.PlayerEntry(s.ecs)
	if !ok {
		return 0
	}
	return components.Health.Get(pe).Current
}

// Countdown is the number shown during the countdown, 0 otherwise.
func (s *Session) Countdown() int {
	return systems.CountdownValue(s.ecs)
}

// Events returns the audio triggers of the last tick. The slice is reused
// by the next Tick.
func (s *Session) Events() []cfg.SoundID {
	return s.events
}

// AimLine returns the laser sight in screen space once it is bought.
func (s *Session) AimLine() (gamemath.Segment, bool) {
	return systems.AimLine(s.ecs)
}

// Now is the simulation time.
func (s *Session) Now() time.Duration {
	return systems.GetClock(s.ecs).Now
}
