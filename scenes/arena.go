package scenes

import (
	"errors"
	"image/color"
	"sync"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/game"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/systems/render"
	"github.com/automoto/chinchilla/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene plays one session: it polls the devices, ticks the
// simulation, plays its sounds and draws it.
type ArenaScene struct {
	sceneChanger SceneChanger
	grid         *leveldata.Grid
	mode         cfg.GameMode
	resume       bool

	session *game.Session
	poller  render.InputPoller
	shopUI  *ui.ShopUI
	saved   *systems.SavedSettings
	phase   cfg.WavePhase
	once    sync.Once
}

// NewArenaScene creates an arena scene on grid. With resume set the run
// saved in the persistence store is continued.
func NewArenaScene(sc SceneChanger, grid *leveldata.Grid, mode cfg.GameMode, resume bool) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, grid: grid, mode: mode, resume: resume}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if as.session.Phase() == cfg.PhaseShop {
		as.shopUI.UpdateUI()
	}

	in := as.poller.Poll()
	if in.Pause && as.session.Phase() == cfg.PhaseGameOver {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger, as.grid))
		return
	}

	as.session.Tick(in)
	render.UpdateAudio(as.session.ECS())
	as.onPhaseChange()
}

// onPhaseChange saves progress on reaching the shop and records the run
// once it ends.
func (as *ArenaScene) onPhaseChange() {
	phase := as.session.Phase()
	if phase == as.phase {
		return
	}
	as.phase = phase

	store := systems.Store()
	switch phase {
	case cfg.PhaseShop:
		if store != nil {
			_ = as.session.Save(store)
		}
	case cfg.PhaseGameOver:
		systems.RecordRun(as.session.ECS())
		if store != nil {
			if err := game.ClearSnapshot(store); err != nil {
				logger.Log.WithError(err).Warn("could not clear saved session")
			}
		}
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.session == nil {
		return
	}
	as.session.ECS().Draw(screen)
	if as.session.Phase() == cfg.PhaseShop {
		as.shopUI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
	}
	as.saved = saved

	as.session = game.New(as.grid,
		game.WithMode(as.mode),
		game.WithWorldHook(as.addRenderers),
	)

	if as.resume {
		if store := systems.Store(); store != nil {
			if err := as.session.Load(store); err != nil && !errors.Is(err, game.ErrNoSnapshot) {
				logger.Log.WithError(err).Warn("starting a new run instead")
			}
		}
	}

	as.phase = as.session.Phase()
	as.shopUI = ui.NewShopUI(as.session)
}

func (as *ArenaScene) addRenderers(e *ecs.ECS) {
	systems.ApplySavedSettings(e, as.saved)

	e.AddRenderer(cfg.Default, render.DrawLevel)
	e.AddRenderer(cfg.Default, render.DrawEntities)
	e.AddRenderer(cfg.Default, render.DrawHitboxes)
	e.AddRenderer(cfg.Default, render.DrawScreenEffects)
	e.AddRenderer(cfg.Default, render.DrawHUD)
	e.AddRenderer(cfg.Default, render.DrawPause)
}
