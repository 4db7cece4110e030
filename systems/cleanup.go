package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup removes everything flagged during the tick: spent
// projectiles, collected items and stars, enemies whose death animation
// has played out and finished damage texts. Removal is deferred to here
// so no system sees an entity disappear under it.
func UpdateCleanup(e *ecs.ECS) {
	var doomed []*donburi.Entry
	now := GetClock(e).Now

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Projectile.Get(entry).Removed {
			doomed = append(doomed, entry)
		}
	})
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		if components.Item.Get(entry).Removed {
			doomed = append(doomed, entry)
		}
	})
	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		if components.Star.Get(entry).Removed {
			doomed = append(doomed, entry)
		}
	})
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Character.Get(entry).Alive {
			return
		}
		if now-components.Enemy.Get(entry).DiedAt >= cfg.Animation.DeathLinger {
			doomed = append(doomed, entry)
		}
	})
	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		if components.FloatingText.Get(entry).Done {
			doomed = append(doomed, entry)
		}
	})

	for _, entry := range doomed {
		destroy(e, entry)
	}
}

// destroy removes an entity and its collision object.
func destroy(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
