package systems

import (
	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause intent. It runs before the clock
// so a paused tick never advances time. Leaving pause locks the trigger
// for Weapon.FireLockout.
func UpdatePause(e *ecs.ECS) {
	if !GetIntent(e).Pause || GetWave(e).Phase == cfg.PhaseGameOver {
		return
	}
	pause := GetPause(e)
	pause.IsPaused = !pause.IsPaused
	if !pause.IsPaused {
		LockFire(e)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetPause(e).IsPaused {
			return
		}
		system(e)
	}
}

// WithGameOverCheck wraps a system to skip execution once the player died.
func WithGameOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetWave(e).Phase == cfg.PhaseGameOver {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or the
// run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithGameOverCheck(system))
}
