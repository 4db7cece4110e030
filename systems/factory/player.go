package factory

import (
	"github.com/automoto/chinchilla/archetypes"
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (cx, cy) in world space.
func CreatePlayer(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := gamemath.RectFromCenter(cx, cy, cfg.Player.Width, cfg.Player.Height)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, "character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, player, obj)

	components.Character.SetValue(player, components.CharacterData{
		Type:  cfg.CharacterPlayer,
		Alive: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Player.SetValue(player, components.PlayerData{
		LastDash: -cfg.Dash.Cooldown,
		LastShot: -cfg.Weapon.ShotCooldown,
	})

	return player
}
