package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuContinue
	MainMenuLegacy
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
	// HasSaveGame is set when a session snapshot can be resumed.
	HasSaveGame bool
	BestWave    int
	BestKills   int
}

var Menu = donburi.NewComponentType[MenuData]()
