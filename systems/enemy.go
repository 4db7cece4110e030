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

// UpdateEnemies runs every enemy in spawn order: AI, invincible contact,
// then the death transition and its payout. A kill or hit made by one
// enemy is visible to the enemies after it.
func UpdateEnemies(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	powerUps := GetPowerUps(e)

	for _, en := range EnemiesInOrder(e) {
		updateEnemyAI(e, en, pe)

		char := components.Character.Get(en)
		if powerUps.Has(cfg.StarInvincible) && char.Alive &&
			components.Object.Get(pe).Rect().Overlaps(components.Object.Get(en).Rect()) {
			components.Health.Get(en).Damage(cfg.PowerUp.ContactDamage)
			char.Hit = true
			TriggerScreenShake(e, cfg.Effects.ShakeHit)
		}

		if killEnemy(e, en, pe) {
			ResolveKill(e, en)
		}
	}
}

func updateEnemyAI(e *ecs.ECS, en, pe *donburi.Entry) {
	char := components.Character.Get(en)
	enemy := components.Enemy.Get(en)
	tc := cfg.EnemyType(char.Type)
	clock := GetClock(e)
	session := GetSession(e)

	er := components.Object.Get(en).Rect()
	pr := components.Object.Get(pe).Rect()
	ex, ey := er.Center()
	px, py := pr.Center()
	distance := gamemath.Distance(ex, ey, px, py)

	var dx, dy float64
	if distance > tc.EngageRange {
		dx = approach(ex, px, tc, session) * enemy.SpeedMultiplier
		dy = approach(ey, py, tc, session) * enemy.SpeedMultiplier
	}

	if !char.Alive {
		return
	}

	if !char.Stunned {
		MoveCharacter(e, en, dx, dy, false)

		if distance < cfg.Enemy.AttackRange {
			damagePlayer(e, cfg.Enemy.MeleeDamage)
		}

		if tc.Shooter && distance < cfg.Enemy.ShootRange {
			cooldown := cfg.Enemy.ShotCooldown
			if enemy.Boss {
				cooldown = cfg.Boss.ShotCooldown
			}
			if clock.Since(char.LastAttack) >= cooldown {
				fireAt(e, en, px, py)
				char.LastAttack = clock.Now
			}
		}
	}

	if char.Hit {
		char.Hit = false
		char.LastHit = clock.Now
		char.Stunned = true
	}
	if clock.Since(char.LastHit) > cfg.Enemy.StunCooldown {
		char.Stunned = false
	}
}

// approach returns the signed step along one axis from a toward b with
// the type's speed and a fresh jitter. It is zero when aligned.
func approach(a, b float64, tc cfg.EnemyTypeConfig, session *components.SessionData) float64 {
	switch {
	case a > b:
		return -(tc.Speed + float64(session.Jitter(tc.SpeedJitter)))
	case a < b:
		return tc.Speed + float64(session.Jitter(tc.SpeedJitter))
	}
	return 0
}

// fireAt shoots at (tx, ty) from the enemy's centre. Bosses fire a spread
// volley; every projectile rolls its own speed jitter.
func fireAt(e *ecs.ECS, en *donburi.Entry, tx, ty float64) {
	session := GetSession(e)
	cx, cy := components.Object.Get(en).Rect().Center()
	base := gamemath.ShooterAngle(cx, cy, tx, ty)

	angles := []float64{base}
	if components.Enemy.Get(en).Boss {
		angles = gamemath.Spread(base, cfg.Boss.Spread)
	}
	for _, a := range angles {
		speed := cfg.Enemy.BulletSpeed + float64(session.Jitter(cfg.Enemy.BulletSpeedJitter))
		factory.CreateEnemyBullet(e, cx, cy, a, speed)
	}
	PlaySFX(e, cfg.SoundEnemyShot)
}

// killEnemy performs the one-time death transition of an enemy whose
// health ran out: the player is credited the kill first, then the enemy
// stops being alive. It reports whether the transition happened.
func killEnemy(e *ecs.ECS, en, pe *donburi.Entry) bool {
	char := components.Character.Get(en)
	health := components.Health.Get(en)
	if !char.Alive || health.Current > 0 {
		return false
	}
	components.Player.Get(pe).Score++

	clock := GetClock(e)
	health.Current = 0
	char.Alive = false
	char.Stunned = false
	char.SetAnim(cfg.AnimDead)
	char.LastFrame = clock.Now
	components.Enemy.Get(en).DiedAt = clock.Now
	return true
}

// UpdateEnemyBullets moves enemy bullets in creation order. A bullet dies
// when it leaves the screen, enters an obstacle or lands on the player.
// While the player is in its hit cooldown bullets pass through.
func UpdateEnemyBullets(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	pobj := components.Object.Get(pe)

	for _, b := range ProjectilesInOrder(e, tags.EnemyBullet) {
		p := components.Projectile.Get(b)
		if p.Removed {
			continue
		}
		obj := components.Object.Get(b)
		r := obj.Rect().Translate(p.VX, p.VY)
		obj.SetRect(r)

		if !OnScreen(e, r) || HitsObstacle(e, r) {
			p.Removed = true
			continue
		}
		if r.Overlaps(pobj.Rect()) && damagePlayer(e, p.Damage) {
			p.Removed = true
		}
	}
}
