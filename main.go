package main

import (
	"flag"
	"image"

	"github.com/automoto/chinchilla/assets"
	"github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/fonts"
	"github.com/automoto/chinchilla/scenes"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(grid *leveldata.Grid) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g, grid, config.ModeWaves, false)
	} else {
		g.scene = scenes.NewMenuScene(g, grid)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	overrides := flag.String("config", "", "YAML file overriding the built-in tuning")
	level := flag.String("level", assets.DefaultLevel, "Embedded level to play")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start a run without the main menu")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "Outline collision boxes")
	flag.Parse()

	logger.Init()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config overrides")
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to load fonts")
	}

	grid, err := assets.LoadLevel(*level)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load level")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Rage of the Chinchilla")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.FPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Log.WithError(err).Warn("Could not initialize persistence")
	}

	if err := ebiten.RunGame(NewGame(grid)); err != nil {
		logger.Log.WithError(err).Fatal("Game exited with an error")
	}
}
