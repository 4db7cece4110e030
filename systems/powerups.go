package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps picks up stars under the player and expires effects
// older than PowerUp.Duration. Picking up an active star restarts it.
func UpdatePowerUps(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	clock := GetClock(e)
	pu := GetPowerUps(e)
	pr := components.Object.Get(pe).Rect()

	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		if star.Removed || !components.Object.Get(entry).Rect().Overlaps(pr) {
			return
		}
		pu.Active[star.Type] = true
		pu.Since[star.Type] = clock.Now
		star.Removed = true
		PlaySFX(e, cfg.SoundPowerUp)
		logger.Log.WithField("star", star.Type).Info("power-up collected")
	})

	for t := range cfg.StarTypeCount {
		if pu.Active[t] && clock.Since(pu.Since[t]) >= cfg.PowerUp.Duration {
			pu.Active[t] = false
			logger.Log.WithField("star", t).Debug("power-up expired")
		}
	}

	if pu.Has(cfg.StarInvincible) {
		components.Character.Get(pe).Hit = false
	}
}
