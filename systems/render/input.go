package render

import (
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[cfg.ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// InputPoller turns raw keyboard, mouse and gamepad state into one tick of
// player intent. It remembers the previous frame so one-shot actions fire
// once per press.
type InputPoller struct {
	previous systems.ActionSet
}

// Poll reads the devices and returns this frame's intent.
func (p *InputPoller) Poll() components.IntentData {
	var current systems.ActionSet

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepadIDs)
	current[cfg.ActionMoveLeft] = current[cfg.ActionMoveLeft] || left
	current[cfg.ActionMoveRight] = current[cfg.ActionMoveRight] || right
	current[cfg.ActionMoveUp] = current[cfg.ActionMoveUp] || up
	current[cfg.ActionMoveDown] = current[cfg.ActionMoveDown] || down

	mx, my := ebiten.CursorPosition()
	intent := systems.IntentFrom(current, p.previous, float64(mx), float64(my))
	p.previous = current
	return intent
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ActionID]InputBinding{
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			cfg.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			cfg.ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			cfg.ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			cfg.ActionDash: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			cfg.ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			// Space doubles as continue while the shop is open.
			cfg.ActionContinue: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			cfg.ActionBuy1:       {Keys: []ebiten.Key{ebiten.Key1}},
			cfg.ActionBuy2:       {Keys: []ebiten.Key{ebiten.Key2}},
			cfg.ActionBuy3:       {Keys: []ebiten.Key{ebiten.Key3}},
			cfg.ActionBuy4:       {Keys: []ebiten.Key{ebiten.Key4}},
			cfg.ActionRestart:    {Keys: []ebiten.Key{ebiten.KeyR}},
			cfg.ActionVolumeDown: {Keys: []ebiten.Key{ebiten.KeyMinus}},
			cfg.ActionVolumeUp:   {Keys: []ebiten.Key{ebiten.KeyEqual}},
			cfg.ActionMute:       {Keys: []ebiten.Key{ebiten.KeyM}},
		},
	}
}
