package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/game"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	grid         *leveldata.Grid
	once         sync.Once
}

// NewMenuScene creates a new menu scene. grid is the level every run
// started from the menu plays on.
func NewMenuScene(sc SceneChanger, grid *leveldata.Grid) *MenuScene {
	return &MenuScene{sceneChanger: sc, grid: grid}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	menu := systems.GetOrCreateMenu(ms.ecs)
	hasSave := false
	if store := systems.Store(); store != nil {
		hasSave = game.HasSnapshot(store)
	}
	systems.SetMenuOptions(menu, hasSave)

	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
	}
	if saved != nil {
		menu.BestWave = saved.BestWave
		menu.BestKills = saved.BestKills
	}

	createScene := func(option components.MainMenuOption) interface{} {
		switch option {
		case components.MainMenuContinue:
			return NewArenaScene(ms.sceneChanger, ms.grid, cfg.ModeWaves, true)
		case components.MainMenuLegacy:
			return NewArenaScene(ms.sceneChanger, ms.grid, cfg.ModeLegacy, false)
		default:
			return NewArenaScene(ms.sceneChanger, ms.grid, cfg.ModeWaves, false)
		}
	}

	ms.ecs.AddSystem(render.NewUpdateMenu(ms.sceneChanger, createScene))
	ms.ecs.AddRenderer(cfg.Default, render.DrawMenu)
}
