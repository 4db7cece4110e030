package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionDash
	ActionPause
	ActionContinue
	ActionBuy1
	ActionBuy2
	ActionBuy3
	ActionBuy4
	ActionRestart
	ActionVolumeDown
	ActionVolumeUp
	ActionMute
	ActionCount // Must be last - used for array sizing
)

// BuyActions maps shop slots to their actions, in SKUs order.
var BuyActions = []ActionID{ActionBuy1, ActionBuy2, ActionBuy3, ActionBuy4}
