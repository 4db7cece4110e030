package components

import (
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
)

// CharacterData is the state shared by the player and every enemy.
type CharacterData struct {
	Type  cfg.CharacterType
	Alive bool

	// Flip is true while the character faces left.
	Flip bool

	Hit        bool
	Stunned    bool
	LastHit    time.Duration
	LastAttack time.Duration

	Anim      cfg.AnimState
	Frame     int
	LastFrame time.Duration
}

// SetAnim switches the animation row, restarting at frame zero on change.
func (c *CharacterData) SetAnim(state cfg.AnimState) {
	if c.Anim == state {
		return
	}
	c.Anim = state
	c.Frame = 0
}

var Character = donburi.NewComponentType[CharacterData]()
