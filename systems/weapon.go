package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/automoto/chinchilla/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapon fires the player's gun. Fire is semi-automatic: one shot
// per press, no faster than Weapon.ShotCooldown, and never while the
// trigger is locked.
func UpdateWeapon(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	if !components.Character.Get(pe).Alive {
		return
	}
	player := components.Player.Get(pe)
	intent := GetIntent(e)
	clock := GetClock(e)

	player.AimX, player.AimY = intent.AimX, intent.AimY
	if !intent.Fire {
		player.FireHeld = false
		return
	}
	if player.FireHeld || clock.Now < player.FireLockUntil || clock.Since(player.LastShot) < cfg.Weapon.ShotCooldown {
		return
	}
	player.FireHeld = true
	player.LastShot = clock.Now

	cx, cy := components.Object.Get(pe).Rect().Center()
	tx, ty := ScreenToWorld(e, intent.AimX, intent.AimY)
	angle := gamemath.FireAngle(cx, cy, tx, ty)
	factory.CreateBullet(e, cx+cfg.Weapon.MuzzleOffsetX, cy+cfg.Weapon.MuzzleOffsetY, angle)
	PlaySFX(e, cfg.SoundShot)

	if GetPowerUps(e).Has(cfg.StarMultishot) {
		for a := 0.0; a < 360; a += cfg.Weapon.MultishotStep {
			factory.CreateBullet(e, cx, cy, a)
		}
	}
}

// UpdateBullets moves player bullets in creation order. A bullet dies on
// the first obstacle it enters, when it leaves the screen, or on the first
// living enemy it overlaps. When several enemies overlap the nearest
// centre wins, then the oldest enemy.
func UpdateBullets(e *ecs.ECS) {
	for _, b := range ProjectilesInOrder(e, tags.Bullet) {
		p := components.Projectile.Get(b)
		if p.Removed {
			continue
		}
		obj := components.Object.Get(b)
		r := obj.Rect().Translate(p.VX, p.VY)
		obj.SetRect(r)

		if HitsObstacle(e, r) || !OnScreen(e, r) {
			p.Removed = true
			continue
		}
		if target := bulletTarget(obj); target != nil {
			hitEnemy(e, target)
			p.Removed = true
		}
	}
}

func bulletTarget(obj *components.ObjectData) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}
	r := obj.Rect()
	var best *donburi.Entry
	var bestDist float64
	var bestSeq uint64
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		en, ok := o.Data.(*donburi.Entry)
		if !ok || !en.Valid() || !components.Character.Get(en).Alive {
			continue
		}
		er := components.Object.Get(en).Rect()
		if !er.Overlaps(r) {
			continue
		}
		d := gamemath.CenterDistance(r, er)
		seq := components.Enemy.Get(en).Seq
		if best == nil || d < bestDist || (d == bestDist && seq < bestSeq) {
			best, bestDist, bestSeq = en, d, seq
		}
	}
	return best
}

// BulletDamage rolls the damage of one player bullet against target.
func BulletDamage(e *ecs.ECS, target *donburi.Entry) int {
	dmg := cfg.Weapon.Damage + GetSession(e).Jitter(cfg.Weapon.DamageJitter) + GetWallet(e).DamageBonus
	if GetPowerUps(e).Has(cfg.StarPurple) {
		if components.Enemy.Get(target).Boss {
			dmg *= cfg.PowerUp.BossDamageFactor
		} else {
			dmg = components.Health.Get(target).Current + cfg.PowerUp.OneShotDamageMargin
		}
	}
	return dmg
}

func hitEnemy(e *ecs.ECS, target *donburi.Entry) {
	dmg := BulletDamage(e, target)
	components.Health.Get(target).Damage(dmg)
	components.Character.Get(target).Hit = true

	r := components.Object.Get(target).Rect()
	cx, _ := r.Center()
	factory.CreateDamageText(e, cx, r.Y, dmg)
	TriggerScreenShake(e, cfg.Effects.ShakeHit)
	PlaySFX(e, cfg.SoundHit)
}

// AimLine returns the laser sight segment in screen space. It reports
// false when the laser was never bought or the player is gone.
func AimLine(e *ecs.ECS) (gamemath.Segment, bool) {
	if !GetWallet(e).LaserSight {
		return gamemath.Segment{}, false
	}
	pe, ok := PlayerEntry(e)
	if !ok || !components.Character.Get(pe).Alive {
		return gamemath.Segment{}, false
	}
	player := components.Player.Get(pe)
	cx, cy := components.Object.Get(pe).Rect().Center()
	sx, sy := WorldToScreen(e, cx, cy)
	return gamemath.Ray(sx, sy, player.AimX, player.AimY, cfg.Weapon.LaserOffset, cfg.Weapon.LaserLength), true
}
