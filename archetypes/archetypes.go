package archetypes

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Character,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Character,
		components.Object,
		components.Health,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Projectile,
		components.Object,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Projectile,
		components.Object,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Object,
	)
	Level = newArchetype(
		components.Space,
		components.TileMap,
	)
	Session = newArchetype(
		components.Session,
		components.Clock,
		components.Pause,
		components.Intent,
		components.Camera,
		components.Wave,
		components.Combo,
		components.Wallet,
		components.PowerUps,
		components.Audio,
		components.Effects,
	)
	FloatingText = newArchetype(
		components.FloatingText,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
