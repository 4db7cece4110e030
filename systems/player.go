package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayerMovement moves the player from the movement intents, runs
// the dash and scrolls the camera and tile map.
func UpdatePlayerMovement(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	char := components.Character.Get(pe)
	if !char.Alive {
		return
	}
	player := components.Player.Get(pe)
	intent := GetIntent(e)
	clock := GetClock(e)

	var dx, dy float64
	if intent.MoveLeft {
		dx = -cfg.Player.Speed
	}
	if intent.MoveRight {
		dx = cfg.Player.Speed
	}
	if intent.MoveUp {
		dy = -cfg.Player.Speed
	}
	if intent.MoveDown {
		dy = cfg.Player.Speed
	}

	if intent.Dash && !player.Dashing && clock.Since(player.LastDash) >= cfg.Dash.Cooldown {
		player.Dashing = true
		player.DashStart = clock.Now
		player.LastDash = clock.Now
		PlaySFX(e, cfg.SoundDash)
	}
	if player.Dashing {
		if clock.Since(player.DashStart) < cfg.Dash.Duration {
			dx, dy = dashStep(dx, dy, char.Flip)
			char.Hit = false
		} else {
			player.Dashing = false
		}
	}

	sx, sy := MoveCharacter(e, pe, dx, dy, true)
	ScrollCamera(e, sx, sy)
}

// dashStep replaces every moving axis with the dash speed. Without any
// movement the dash goes the way the player faces.
func dashStep(dx, dy float64, flip bool) (float64, float64) {
	if dx == 0 && dy == 0 {
		if flip {
			return -cfg.Dash.Speed, 0
		}
		return cfg.Dash.Speed, 0
	}
	return sign(dx) * cfg.Dash.Speed, sign(dy) * cfg.Dash.Speed
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ScrollCamera applies a scroll delta to the camera and the tile map.
func ScrollCamera(e *ecs.ECS, sx, sy float64) {
	camera := GetCamera(e)
	camera.Scroll = math.NewVec2(sx, sy)
	camera.Offset = camera.Offset.Add(camera.Scroll)
	GetTileMap(e).Translate(sx, sy)
}

// UpdatePlayer clears the hit flag once the hit cooldown has passed and
// ends the run when the player's health is gone.
func UpdatePlayer(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	char := components.Character.Get(pe)
	health := components.Health.Get(pe)
	clock := GetClock(e)

	if health.Current <= 0 && char.Alive {
		health.Current = 0
		char.Alive = false
		wave := GetWave(e)
		wave.Phase = cfg.PhaseGameOver
		PlaySFX(e, cfg.SoundDeath)
		logger.Log.WithFields(logrus.Fields{
			"wave":  wave.Number,
			"kills": playerScore(pe),
			"coins": GetWallet(e).Coins,
		}).Info("player died")
	}

	if char.Hit && clock.Since(char.LastHit) > cfg.Player.HitCooldown {
		char.Hit = false
	}
}

func playerScore(pe *donburi.Entry) int {
	return components.Player.Get(pe).Score
}

// LockFire blocks the trigger for Weapon.FireLockout.
func LockFire(e *ecs.ECS) {
	pe, ok := PlayerEntry(e)
	if !ok {
		return
	}
	components.Player.Get(pe).FireLockUntil = GetClock(e).Now + cfg.Weapon.FireLockout
}

// damagePlayer applies n damage unless the player is inside its hit
// cooldown. Invincibility undoes the damage. It reports whether the hit
// landed.
func damagePlayer(e *ecs.ECS, n int) bool {
	pe, ok := PlayerEntry(e)
	if !ok {
		return false
	}
	char := components.Character.Get(pe)
	if char.Hit || !char.Alive {
		return false
	}
	clock := GetClock(e)
	char.Hit = true
	char.LastHit = clock.Now

	if GetPowerUps(e).Has(cfg.StarInvincible) {
		char.Hit = false
		return true
	}
	components.Health.Get(pe).Damage(n)
	TriggerHurtFlash(e)
	TriggerScreenShake(e, cfg.Effects.ShakeKill)
	PlaySFX(e, cfg.SoundPlayerHurt)
	return true
}
