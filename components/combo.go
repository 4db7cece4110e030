package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ComboData struct {
	Count      int
	Multiplier float64
	LastKill   time.Duration
}

var Combo = donburi.NewComponentType[ComboData]()

// WalletData holds the currency and everything bought with it.
type WalletData struct {
	Coins       int
	WeaponLevel int
	DamageBonus int
	LaserSight  bool
}

var Wallet = donburi.NewComponentType[WalletData]()
