package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/fonts"
	"github.com/automoto/chinchilla/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 200
	hudBarHeight = 16
	hudMargin    = 10
)

// DrawHUD renders the health bar, the run counters, the combo and the
// wave banners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	pe, ok := systems.PlayerEntry(e)
	if !ok {
		return
	}
	hp := components.Health.Get(pe)
	width := screen.Bounds().Dx()

	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, cfg.Panel, false)
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth*ratio, hudBarHeight, cfg.Green, false)
	small := fonts.Small.Get()
	text.Draw(screen, fmt.Sprintf("%d/%d", hp.Current, hp.Max), small, hudMargin+4, hudMargin+12, cfg.White)

	wave := systems.GetWave(e)
	wallet := systems.GetWallet(e)
	face := fonts.Regular.Get()
	stats := []string{
		fmt.Sprintf("Wave %d", wave.Number),
		fmt.Sprintf("Kills %d", components.Player.Get(pe).Score),
		fmt.Sprintf("Coins %d", wallet.Coins),
		fmt.Sprintf("Weapon Lv %d", wallet.WeaponLevel),
	}
	for i, s := range stats {
		text.Draw(screen, s, face, hudMargin, hudMargin+hudBarHeight+20+i*18, cfg.White)
	}

	if combo := systems.GetCombo(e); combo.Count > 1 {
		s := fmt.Sprintf("x%d COMBO  %.1fx", combo.Count, combo.Multiplier)
		drawCentered(screen, s, fonts.Bold.Get(), width, 40, cfg.Orange)
	}

	pu := systems.GetPowerUps(e)
	for t := range cfg.StarTypeCount {
		if !pu.Active[t] {
			continue
		}
		left := cfg.PowerUp.Duration - systems.GetClock(e).Since(pu.Since[t])
		s := fmt.Sprintf("%s %.0fs", t, left.Seconds())
		text.Draw(screen, s, small, width-140, hudMargin+12+int(t)*14, starColors[t])
	}

	switch wave.Phase {
	case cfg.PhaseCountdown:
		drawCentered(screen, fmt.Sprintf("%d", systems.CountdownValue(e)), fonts.Title.Get(), width, 200, cfg.Yellow)
		drawCentered(screen, fmt.Sprintf("Wave %d", wave.Number), fonts.Bold.Get(), width, 240, cfg.White)
	case cfg.PhaseComplete:
		drawCentered(screen, fmt.Sprintf("Wave %d complete!", wave.Number), fonts.Title.Get(), width, 200, cfg.Yellow)
	case cfg.PhaseShop:
		drawShop(e, screen)
	case cfg.PhaseGameOver:
		drawGameOver(e, screen)
	}
}

func drawShop(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	drawCentered(screen, "SHOP", fonts.Title.Get(), width, 120, cfg.Yellow)

	wallet := systems.GetWallet(e)
	face := fonts.Bold.Get()
	for i, sku := range cfg.SKUs {
		s := fmt.Sprintf("%d  %s  (%d coins)", i+1, sku, systems.ShopPrice(e, sku))
		c := cfg.White
		if !systems.CanAfford(e, sku) {
			c = cfg.Gray
		}
		if sku == cfg.SKULaserSight && wallet.LaserSight {
			s = fmt.Sprintf("%d  %s  (owned)", i+1, sku)
			c = cfg.Gray
		}
		drawCentered(screen, s, face, width, 180+i*36, c)
	}
	drawCentered(screen, "Enter: next wave", fonts.Small.Get(), width, 350, cfg.Gray)
}

func drawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), width, 160, cfg.Red)

	kills := 0
	if p, ok := systems.PlayerEntry(e); ok {
		kills = components.Player.Get(p).Score
	}
	lines := []string{
		fmt.Sprintf("Waves survived: %d", systems.GetWave(e).Survived),
		fmt.Sprintf("Kills: %d", kills),
		fmt.Sprintf("Coins: %d", systems.GetWallet(e).Coins),
	}
	for i, s := range lines {
		drawCentered(screen, s, fonts.Bold.Get(), width, 220+i*32, cfg.White)
	}
	drawCentered(screen, "R: restart", fonts.Small.Get(), width, height-20, cfg.Gray)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, c color.Color) {
	x := width/2 - text.BoundString(face, s).Dx()/2
	text.Draw(screen, s, face, x, y, c)
}
