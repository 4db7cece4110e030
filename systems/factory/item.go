package factory

import (
	"fmt"
	"time"

	"github.com/automoto/chinchilla/archetypes"
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns a pickup centred on (cx, cy). value is the coin
// payout of a coin or the heal amount of a potion.
func CreateItem(ecs *ecs.ECS, t cfg.ItemType, cx, cy float64, value int) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	size := cfg.Drops.ItemSize
	r := gamemath.RectFromCenter(cx, cy, size, size)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvItem)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, item, obj)

	components.Item.SetValue(item, components.ItemData{Type: t, Value: value})
	return item
}

// CreateStar spawns a power-up star centred on (cx, cy).
func CreateStar(ecs *ecs.ECS, t cfg.StarType, cx, cy float64, now time.Duration) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)

	size := cfg.PowerUp.StarSize
	r := gamemath.RectFromCenter(cx, cy, size, size)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvStar)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, star, obj)

	components.Star.SetValue(star, components.StarData{Type: t, SpawnedAt: now})
	return star
}

// CreateDamageText spawns a rising damage number at (x, y) in world space.
func CreateDamageText(ecs *ecs.ECS, x, y float64, damage int) *donburi.Entry {
	e := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(e, components.FloatingTextData{
		Text: fmt.Sprintf("-%d", damage),
		X:    x,
		Y:    y,
		Rise: gween.New(0, float32(cfg.Effects.DamageTextRise), float32(cfg.Effects.DamageTextLife), ease.OutQuad),
	})
	return e
}
