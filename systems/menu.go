package systems

import (
	"github.com/automoto/chinchilla/components"
	"github.com/yohamta/donburi/ecs"
)

// MoveMenuSelection steps the selection with wrap-around.
func MoveMenuSelection(menu *components.MenuData, up, down bool) {
	n := len(menu.VisibleOptions)
	if n == 0 {
		return
	}
	if up {
		menu.SelectedIndex = (menu.SelectedIndex - 1 + n) % n
	}
	if down {
		menu.SelectedIndex = (menu.SelectedIndex + 1) % n
	}
}

// MenuOptionLabel returns the display text for a menu option
func MenuOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuContinue:
		return "Continue"
	case components.MainMenuLegacy:
		return "Arena Map"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{})
		SetMenuOptions(components.Menu.Get(ent), false)
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

// SetMenuOptions lists the menu entries, offering Continue only when a
// saved session exists.
func SetMenuOptions(menu *components.MenuData, hasSave bool) {
	menu.HasSaveGame = hasSave
	menu.VisibleOptions = menu.VisibleOptions[:0]
	menu.VisibleOptions = append(menu.VisibleOptions, components.MainMenuStart)
	if hasSave {
		menu.VisibleOptions = append(menu.VisibleOptions, components.MainMenuContinue)
	}
	menu.VisibleOptions = append(menu.VisibleOptions, components.MainMenuLegacy, components.MainMenuExit)
	menu.SelectedIndex = 0
}
