package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Score counts kill credits.
	Score int

	Dashing   bool
	DashStart time.Duration
	LastDash  time.Duration

	LastShot      time.Duration
	FireHeld      bool
	FireLockUntil time.Duration

	// Aim is the pointer position in screen space.
	AimX, AimY float64
}

var Player = donburi.NewComponentType[PlayerData]()
