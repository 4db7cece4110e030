package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/chinchilla/archetypes"
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionConfig selects how a session entity starts out.
type SessionConfig struct {
	Mode cfg.GameMode
	Seed int64
	Step time.Duration
}

// CreateSession spawns the entity that carries every per-run singleton.
func CreateSession(ecs *ecs.ECS, sc SessionConfig) *donburi.Entry {
	s := archetypes.Session.Spawn(ecs)

	step := sc.Step
	if step <= 0 {
		step = cfg.C.TickDuration
	}

	src := components.NewRandSource(sc.Seed)
	components.Session.SetValue(s, components.SessionData{
		Mode:   sc.Mode,
		Seed:   sc.Seed,
		Rand:   rand.New(src),
		Source: src,
	})
	components.Clock.SetValue(s, components.ClockData{Step: step})

	phase := cfg.PhaseCountdown
	if sc.Mode == cfg.ModeLegacy {
		phase = cfg.PhaseIdle
	}
	components.Wave.SetValue(s, components.WaveData{
		Phase:         phase,
		Number:        1,
		Required:      cfg.Wave.InitialRequired,
		SpawnInterval: cfg.Wave.InitialInterval,
	})
	components.Combo.SetValue(s, components.ComboData{
		Multiplier: 1,
		LastKill:   -cfg.Combo.Window,
	})
	components.Wallet.SetValue(s, components.WalletData{WeaponLevel: 1})
	components.PowerUps.SetValue(s, components.PowerUpsData{
		LastStarSpawn: -cfg.PowerUp.Interval,
	})
	components.Audio.SetValue(s, components.AudioData{SFXVolume: cfg.Audio.DefaultSFXVol})

	return s
}
