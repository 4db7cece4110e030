package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShop handles the shop intents: a buy slot press and the continue
// signal. Both are ignored outside the shop.
func UpdateShop(e *ecs.ECS) {
	intent := GetIntent(e)
	if intent.Buy > 0 && intent.Buy <= len(cfg.SKUs) {
		Purchase(e, cfg.SKUs[intent.Buy-1])
	}
	if intent.Continue {
		ContinueWave(e)
	}
}

// ShopPrice returns what sku costs right now.
func ShopPrice(e *ecs.ECS, sku cfg.SKU) int {
	switch sku {
	case cfg.SKUWeaponUpgrade:
		return GetWallet(e).WeaponLevel * cfg.Shop.WeaponCostPerLevel
	case cfg.SKUHealth:
		return cfg.Shop.HealthCost
	case cfg.SKUFullHeal:
		return cfg.Shop.FullHealCost
	case cfg.SKULaserSight:
		return cfg.Shop.LaserCost
	}
	return 0
}

// CanAfford reports whether sku would be sold now: the shop is open, the
// wallet covers the price and the offer's precondition holds.
func CanAfford(e *ecs.ECS, sku cfg.SKU) bool {
	if GetWave(e).Phase != cfg.PhaseShop {
		return false
	}
	price := ShopPrice(e, sku)
	if price <= 0 || GetWallet(e).Coins < price {
		return false
	}

	pe, ok := PlayerEntry(e)
	if !ok {
		return false
	}
	health := components.Health.Get(pe)
	switch sku {
	case cfg.SKUHealth, cfg.SKUFullHeal:
		return health.Current < cfg.Shop.HealthCap
	case cfg.SKULaserSight:
		return !GetWallet(e).LaserSight
	}
	return true
}

// Purchase buys sku. A purchase that cannot be made changes nothing and
// reports false.
func Purchase(e *ecs.ECS, sku cfg.SKU) bool {
	wallet := GetWallet(e)
	if !CanAfford(e, sku) {
		logger.Log.WithFields(logrus.Fields{
			"sku":   sku,
			"coins": wallet.Coins,
			"phase": GetWave(e).Phase,
		}).Debug("purchase rejected")
		return false
	}

	price := ShopPrice(e, sku)
	pe, _ := PlayerEntry(e)
	health := components.Health.Get(pe)

	wallet.Coins -= price
	switch sku {
	case cfg.SKUWeaponUpgrade:
		wallet.DamageBonus += cfg.Weapon.UpgradeDamage
		wallet.WeaponLevel++
	case cfg.SKUHealth:
		health.Heal(cfg.Shop.HealthAmount, health.Max)
	case cfg.SKUFullHeal:
		health.Current = health.Max
	case cfg.SKULaserSight:
		wallet.LaserSight = true
	}
	PlaySFX(e, cfg.SoundPurchase)

	logger.Log.WithFields(logrus.Fields{
		"sku":   sku,
		"price": price,
		"coins": wallet.Coins,
	}).Info("purchase")
	return true
}
