package render

import (
	"fmt"
	"os"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/fonts"
	"github.com/automoto/chinchilla/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system. createScene builds the scene
// for the chosen option; Exit quits the process.
func NewUpdateMenu(sceneChanger SceneChanger, createScene func(components.MainMenuOption) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := systems.GetOrCreateMenu(e)

		up := inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
		down := inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
		systems.MoveMenuSelection(menu, up, down)

		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			switch option := menu.VisibleOptions[menu.SelectedIndex]; option {
			case components.MainMenuExit:
				os.Exit(0)
			default:
				sceneChanger.ChangeScene(createScene(option))
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := systems.GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "RAGE OF THE CHINCHILLA"
	titleX := int(width)/2 - text.BoundString(titleFont, title).Dx()/2
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := systems.MenuOptionLabel(option)
		x := int(width)/2 - text.BoundString(menuFont, label).Dx()/2
		text.Draw(screen, label, menuFont, x, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	hintFont := fonts.Small.Get()
	if menu.BestWave > 0 {
		best := fmt.Sprintf("Best: wave %d, %d kills", menu.BestWave, menu.BestKills)
		text.Draw(screen, best, hintFont, int(width)/2-text.BoundString(hintFont, best).Dx()/2, int(height)-40, cfg.Gray)
	}
	hint := "Arrows: Navigate   Enter: Select"
	text.Draw(screen, hint, hintFont, int(width)/2-text.BoundString(hintFont, hint).Dx()/2, int(height)-12, cfg.Menu.TextColorNormal)
}
