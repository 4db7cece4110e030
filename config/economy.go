package config

import "time"

// ComboConfig contains kill-chain values
type ComboConfig struct {
	Window         time.Duration
	MultiplierStep float64
	KillBonus      int
	BossKillBonus  int
}

// DropsConfig contains the normal-kill drop table. Rolls below CoinChance
// drop a coin, rolls below CoinChance+HealthChance drop a potion.
type DropsConfig struct {
	CoinChance   float64
	HealthChance float64

	RetryAttempts int
	RetryScatter  int
	ItemSize      float64
}

// SKU identifies one of the fixed shop offers.
type SKU int

const (
	SKUWeaponUpgrade SKU = iota + 1
	SKUHealth
	SKUFullHeal
	SKULaserSight
)

func (s SKU) String() string {
	switch s {
	case SKUWeaponUpgrade:
		return "weapon_upgrade"
	case SKUHealth:
		return "health"
	case SKUFullHeal:
		return "full_heal"
	case SKULaserSight:
		return "laser_sight"
	}
	return "unknown"
}

// SKUs lists the shop offers in slot order.
var SKUs = []SKU{SKUWeaponUpgrade, SKUHealth, SKUFullHeal, SKULaserSight}

// ShopConfig contains shop prices and effects
type ShopConfig struct {
	WeaponCostPerLevel int
	HealthCost         int
	HealthAmount       int
	FullHealCost       int
	LaserCost          int
	HealthCap          int
}

var Combo ComboConfig
var Drops DropsConfig
var Shop ShopConfig

func init() {
	Combo = ComboConfig{
		Window:         2000 * time.Millisecond,
		MultiplierStep: 0.1,
		KillBonus:      5,
		BossKillBonus:  25,
	}

	Drops = DropsConfig{
		CoinChance:    0.15,
		HealthChance:  0.05,
		RetryAttempts: 20,
		RetryScatter:  100,
		ItemSize:      32,
	}

	Shop = ShopConfig{
		WeaponCostPerLevel: 50,
		HealthCost:         30,
		HealthAmount:       20,
		FullHealCost:       80,
		LaserCost:          200,
		HealthCap:          100,
	}
}
