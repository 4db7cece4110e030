package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the screen tweens and the floating damage texts
// by one tick.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(GetClock(e).Step.Seconds())
	fx := GetEffects(e)

	fx.ShakeValue = advance(&fx.Shake, dt)
	fx.HurtFlashValue = advance(&fx.HurtFlash, dt)
	fx.CelebrationValue = advance(&fx.Celebration, dt)

	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		if ft.Rise == nil || ft.Done {
			return
		}
		ft.Value, ft.Done = ft.Rise.Update(dt)
	})
}

// advance steps a tween and drops it once it has finished.
func advance(t **gween.Tween, dt float32) float32 {
	if *t == nil {
		return 0
	}
	v, done := (*t).Update(dt)
	if done {
		*t = nil
		return 0
	}
	return v
}

// TriggerScreenShake starts a shake of the given amplitude unless a
// stronger one is still running.
func TriggerScreenShake(e *ecs.ECS, amount float64) {
	fx := GetEffects(e)
	if fx.Shake != nil && float64(fx.ShakeValue) > amount {
		return
	}
	fx.Shake = gween.New(float32(amount), 0, float32(cfg.Effects.ShakeDecay), ease.OutQuad)
	fx.ShakeValue = float32(amount)
}

// TriggerHurtFlash tints the screen red for a moment.
func TriggerHurtFlash(e *ecs.ECS) {
	fx := GetEffects(e)
	fx.HurtFlash = gween.New(float32(cfg.Effects.HurtFlash), 0, float32(cfg.Effects.HurtFlashDecay), ease.Linear)
	fx.HurtFlashValue = float32(cfg.Effects.HurtFlash)
}

// TriggerCelebration flashes the wave-complete banner.
func TriggerCelebration(e *ecs.ECS) {
	fx := GetEffects(e)
	fx.Celebration = gween.New(float32(cfg.Effects.CelebrationFlash), 0, float32(cfg.Wave.CelebrationDuration.Seconds()), ease.InOutSine)
	fx.CelebrationValue = float32(cfg.Effects.CelebrationFlash)
}

// ShakeOffset returns the draw offset for the current shake. The offset
// comes from the session RNG only while drawing.
func ShakeOffset(e *ecs.ECS, rng func() float64) (float64, float64) {
	v := float64(GetEffects(e).ShakeValue)
	if v <= 0 {
		return 0, 0
	}
	return (rng()*2 - 1) * v, (rng()*2 - 1) * v
}
