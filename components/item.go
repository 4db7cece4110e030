package components

import (
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	Type cfg.ItemType
	// Value is the coin payout for coins and the heal amount for potions.
	Value   int
	Removed bool
}

var Item = donburi.NewComponentType[ItemData]()

type StarData struct {
	Type      cfg.StarType
	SpawnedAt time.Duration
	Removed   bool
}

var Star = donburi.NewComponentType[StarData]()
