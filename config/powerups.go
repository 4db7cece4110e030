package config

import "time"

// ItemType identifies a floor pickup
type ItemType int

const (
	ItemCoin ItemType = iota
	ItemHealthPotion
)

// StarType identifies a power-up star
type StarType int

const (
	StarInvincible StarType = iota
	StarMultishot
	StarPurple
	StarTypeCount
)

func (s StarType) String() string {
	switch s {
	case StarInvincible:
		return "invincible"
	case StarMultishot:
		return "multishot"
	case StarPurple:
		return "purple"
	}
	return "unknown"
}

// DashConfig contains dash timing
type DashConfig struct {
	Cooldown time.Duration
	Duration time.Duration
	Speed    float64
}

// PowerUpConfig contains star spawning and effect values
type PowerUpConfig struct {
	FromWave int
	Interval time.Duration
	Duration time.Duration
	StarSize float64

	ContactDamage       int
	BossDamageFactor    int
	OneShotDamageMargin int
}

// ItemsConfig contains pickup placement and values
type ItemsConfig struct {
	ColaInterval      time.Duration
	ColasPerWave      int
	PlacementMargin   float64
	PlacementTopExtra float64
	PlacementAttempts int

	CoinValue      int
	LevelCoinValue int
	HealthValue    int
}

var Dash DashConfig
var PowerUp PowerUpConfig
var Items ItemsConfig

func init() {
	Dash = DashConfig{
		Cooldown: 1000 * time.Millisecond,
		Duration: 100 * time.Millisecond,
		Speed:    25,
	}

	PowerUp = PowerUpConfig{
		FromWave:            3,
		Interval:            45 * time.Second,
		Duration:            10 * time.Second,
		StarSize:            70,
		ContactDamage:       50,
		BossDamageFactor:    3,
		OneShotDamageMargin: 100,
	}

	Items = ItemsConfig{
		ColaInterval:      25 * time.Second,
		ColasPerWave:      2,
		PlacementMargin:   150,
		PlacementTopExtra: 100,
		PlacementAttempts: 50,
		CoinValue:         10,
		LevelCoinValue:    0,
		HealthValue:       20,
	}
}
