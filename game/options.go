package game

import (
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi/ecs"
)

// Mode selects how enemies enter the arena.
type Mode = cfg.GameMode

const (
	ModeWaves  = cfg.ModeWaves
	ModeLegacy = cfg.ModeLegacy
)

type options struct {
	seed    int64
	seeded  bool
	mode    Mode
	step    time.Duration
	onBuild []func(*ecs.ECS)
}

// Option configures a Session.
type Option func(*options)

// WithSeed fixes the session's random source. Without it the seed comes
// from the wall clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMode selects wave or map-driven play.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithTickDuration sets how much simulation time one Tick covers.
func WithTickDuration(d time.Duration) Option {
	return func(o *options) {
		o.step = d
	}
}

// WithWorldHook runs fn on every world the session builds, after the
// simulation systems are registered. Scenes use it to add renderers.
func WithWorldHook(fn func(*ecs.ECS)) Option {
	return func(o *options) {
		o.onBuild = append(o.onBuild, fn)
	}
}
