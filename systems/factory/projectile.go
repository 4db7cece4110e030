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

// CreateBullet spawns a player bullet centred on (cx, cy) travelling
// along fireAngle (see gamemath.FireAngle).
func CreateBullet(ecs *ecs.ECS, cx, cy, fireAngle float64) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	size := cfg.Weapon.BulletSize
	r := gamemath.RectFromCenter(cx, cy, size, size)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBullet)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, b, obj)

	vx, vy := gamemath.BulletVelocity(fireAngle, cfg.Weapon.BulletSpeed)
	components.Projectile.SetValue(b, components.ProjectileData{
		Seq:    nextSeq(ecs),
		Owner:  components.PlayerOwned,
		VX:     vx,
		VY:     vy,
		Angle:  fireAngle - 90,
		Damage: cfg.Weapon.Damage,
	})

	return b
}

// CreateEnemyBullet spawns an enemy bullet centred on (cx, cy) heading
// along angle (see gamemath.ShooterAngle) at speed.
func CreateEnemyBullet(ecs *ecs.ECS, cx, cy, angle, speed float64) *donburi.Entry {
	b := archetypes.EnemyBullet.Spawn(ecs)

	size := cfg.Enemy.BulletSize
	r := gamemath.RectFromCenter(cx, cy, size, size)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvEnemyBullet)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, b, obj)

	vx, vy := gamemath.ShooterVelocity(angle, speed)
	components.Projectile.SetValue(b, components.ProjectileData{
		Seq:    nextSeq(ecs),
		Owner:  components.EnemyOwned,
		VX:     vx,
		VY:     vy,
		Angle:  angle,
		Damage: cfg.Enemy.BulletDamage,
	})

	return b
}

// RestoreProjectile respawns a saved projectile at r. Its owner picks the
// bullet kind.
func RestoreProjectile(ecs *ecs.ECS, r gamemath.Rect, data components.ProjectileData) *donburi.Entry {
	arch, tag := archetypes.Bullet, tags.ResolvBullet
	if data.Owner == components.EnemyOwned {
		arch, tag = archetypes.EnemyBullet, tags.ResolvEnemyBullet
	}
	b := arch.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, b, obj)

	components.Projectile.SetValue(b, data)
	return b
}
