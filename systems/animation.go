package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation steps every character's frame counter once per
// Animation.FrameCooldown.
func UpdateAnimation(e *ecs.ECS) {
	now := GetClock(e).Now
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		if now-char.LastFrame < cfg.Animation.FrameCooldown {
			return
		}
		char.Frame = (char.Frame + 1) % cfg.Animation.FrameCount
		char.LastFrame = now
	})
}
