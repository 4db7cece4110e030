package components

import "github.com/yohamta/donburi"

// IntentData is one tick of player intent. Move, Fire and Dash are held
// states; Pause, Continue and Buy fire once per press.
type IntentData struct {
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool

	Fire bool
	Dash bool

	Pause    bool
	Continue bool

	// Buy is the 1-based shop slot pressed this tick, or 0.
	Buy int

	Restart bool

	// Volume is -1 or +1 on a volume key press, else 0.
	Volume int
	Mute   bool

	// AimX and AimY are the pointer position in screen space.
	AimX, AimY float64
}

var Intent = donburi.NewComponentType[IntentData]()
