package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveKill pays out one enemy death exactly once: effects, coins,
// drops and the combo.
func ResolveKill(e *ecs.ECS, en *donburi.Entry) {
	enemy := components.Enemy.Get(en)
	if enemy.Resolved {
		return
	}
	enemy.Resolved = true

	wallet := GetWallet(e)
	session := GetSession(e)
	wave := GetWave(e)
	cx, cy := components.Object.Get(en).Rect().Center()

	base := cfg.Combo.KillBonus
	if enemy.Boss {
		base = cfg.Combo.BossKillBonus
		TriggerScreenShake(e, cfg.Effects.ShakeBossDeath)
		wallet.Coins += cfg.Boss.CoinBase + wave.Number*cfg.Boss.CoinPerWave
		for range cfg.Boss.DropRolls {
			dx := float64(session.Jitter(cfg.Boss.DropScatter))
			dy := float64(session.Jitter(cfg.Boss.DropScatter))
			CreateDrop(e, cx+dx, cy+dy)
		}
	} else {
		TriggerScreenShake(e, cfg.Effects.ShakeKill)
		CreateDrop(e, cx, cy)
	}
	PlaySFX(e, cfg.SoundDeath)

	combo := RegisterKill(e)
	wallet.Coins += int(float64(base) * combo.Multiplier)
}

// RegisterKill extends the combo when the kill lands inside Combo.Window
// of the previous one and restarts it otherwise.
func RegisterKill(e *ecs.ECS) *components.ComboData {
	combo := GetCombo(e)
	clock := GetClock(e)
	if clock.Since(combo.LastKill) < cfg.Combo.Window {
		combo.Count++
		combo.Multiplier = 1 + float64(combo.Count)*cfg.Combo.MultiplierStep
	} else {
		combo.Count = 1
		combo.Multiplier = 1
	}
	combo.LastKill = clock.Now
	return combo
}

// UpdateCombo drops an idle combo back to zero.
func UpdateCombo(e *ecs.ECS) {
	combo := GetCombo(e)
	if combo.Count > 0 && GetClock(e).Since(combo.LastKill) > cfg.Combo.Window {
		combo.Count = 0
		combo.Multiplier = 1
	}
}

// CreateDrop rolls the drop table once and places the result at (x, y).
// A blocked position is retried nearby; if every retry is blocked nothing
// drops.
func CreateDrop(e *ecs.ECS, x, y float64) {
	session := GetSession(e)
	roll := session.Rand.Float64()

	var t cfg.ItemType
	var value int
	switch {
	case roll < cfg.Drops.CoinChance:
		t, value = cfg.ItemCoin, cfg.Items.CoinValue
	case roll < cfg.Drops.CoinChance+cfg.Drops.HealthChance:
		t, value = cfg.ItemHealthPotion, cfg.Items.HealthValue
	default:
		return
	}

	if !ValidSpawn(e, x, y) {
		for range cfg.Drops.RetryAttempts {
			nx := x + float64(session.Jitter(cfg.Drops.RetryScatter))
			ny := y + float64(session.Jitter(cfg.Drops.RetryScatter))
			if ValidSpawn(e, nx, ny) {
				factory.CreateItem(e, t, nx, ny, value)
				return
			}
		}
		return
	}
	factory.CreateItem(e, t, x, y, value)
}
