package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/automoto/chinchilla/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems collects every floor item the player overlaps.
func UpdateItems(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	pr := components.Object.Get(pe).Rect()
	wallet := GetWallet(e)
	health := components.Health.Get(pe)

	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Removed || !components.Object.Get(entry).Rect().Overlaps(pr) {
			return
		}
		switch item.Type {
		case cfg.ItemCoin:
			wallet.Coins += item.Value
			PlaySFX(e, cfg.SoundCoin)
		case cfg.ItemHealthPotion:
			health.Heal(item.Value, health.Max)
			PlaySFX(e, cfg.SoundPotion)
		}
		item.Removed = true
	})
}

// UpdatePickupTimers drops a cola every Items.ColaInterval and, from
// PowerUp.FromWave on, a star every PowerUp.Interval.
func UpdatePickupTimers(e *ecs.ECS) {
	clock := GetClock(e)
	pu := GetPowerUps(e)

	if clock.Since(pu.LastColaSpawn) >= cfg.Items.ColaInterval {
		SpawnCola(e)
		pu.LastColaSpawn = clock.Now
	}

	wave := GetWave(e)
	if wave.Number >= cfg.PowerUp.FromWave && clock.Since(pu.LastStarSpawn) >= cfg.PowerUp.Interval {
		t := cfg.StarType(GetSession(e).Rand.Intn(int(cfg.StarTypeCount)))
		x, y := PickupPosition(e)
		factory.CreateStar(e, t, x, y, clock.Now)
		pu.LastStarSpawn = clock.Now
		logger.Log.WithFields(logrus.Fields{
			"star": t,
			"wave": wave.Number,
		}).Debug("star spawned")
	}
}

// SpawnCola drops a health potion somewhere on screen.
func SpawnCola(e *ecs.ECS) *donburi.Entry {
	x, y := PickupPosition(e)
	return factory.CreateItem(e, cfg.ItemHealthPotion, x, y, cfg.Items.HealthValue)
}

// SpawnInitialColas clears the floor and drops the wave's opening colas.
func SpawnInitialColas(e *ecs.ECS) {
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		components.Item.Get(entry).Removed = true
	})
	for range cfg.Items.ColasPerWave {
		SpawnCola(e)
	}
}

// PickupPosition samples a clear on-screen world position for a cola or
// a star, falling back to the screen centre.
func PickupPosition(e *ecs.ECS) (float64, float64) {
	session := GetSession(e)
	margin := int(cfg.Items.PlacementMargin)
	top := margin + int(cfg.Items.PlacementTopExtra)

	for range cfg.Items.PlacementAttempts {
		x := float64(session.Between(margin, cfg.C.Width-margin))
		y := float64(session.Between(top, cfg.C.Height-margin))
		wx, wy := ScreenToWorld(e, x, y)
		if ValidSpawn(e, wx, wy) {
			return wx, wy
		}
	}
	return ScreenToWorld(e, float64(cfg.C.Width/2), float64(cfg.C.Height/2))
}
