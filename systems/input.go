package systems

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
)

// ActionSet is the pressed state of every action in one frame.
type ActionSet [cfg.ActionCount]bool

// IntentFrom builds an intent from two consecutive frames of action state
// and the pointer position in screen space.
func IntentFrom(current, previous ActionSet, aimX, aimY float64) components.IntentData {
	justPressed := func(id cfg.ActionID) bool {
		return current[id] && !previous[id]
	}

	intent := components.IntentData{
		MoveLeft:  current[cfg.ActionMoveLeft],
		MoveRight: current[cfg.ActionMoveRight],
		MoveUp:    current[cfg.ActionMoveUp],
		MoveDown:  current[cfg.ActionMoveDown],
		Fire:      current[cfg.ActionFire],
		Dash:      current[cfg.ActionDash],
		Pause:     justPressed(cfg.ActionPause),
		Continue:  justPressed(cfg.ActionContinue),
		Restart:   justPressed(cfg.ActionRestart),
		Mute:      justPressed(cfg.ActionMute),
		AimX:      aimX,
		AimY:      aimY,
	}
	if justPressed(cfg.ActionVolumeDown) {
		intent.Volume--
	}
	if justPressed(cfg.ActionVolumeUp) {
		intent.Volume++
	}
	for slot, id := range cfg.BuyActions {
		if justPressed(id) {
			intent.Buy = slot + 1
			break
		}
	}
	return intent
}
