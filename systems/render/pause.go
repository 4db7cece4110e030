package render

import (
	"fmt"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/fonts"
	"github.com/automoto/chinchilla/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay with the run statistics.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetPause(e).IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	title := "PAUSED"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, int(width)/2-text.BoundString(titleFont, title).Dx()/2, 140, cfg.Yellow)

	kills := 0
	if p, ok := systems.PlayerEntry(e); ok {
		kills = components.Player.Get(p).Score
	}
	lines := []string{
		fmt.Sprintf("Wave: %d", systems.GetWave(e).Number),
		fmt.Sprintf("Kills: %d", kills),
		fmt.Sprintf("Coins: %d", systems.GetWallet(e).Coins),
	}
	face := fonts.Bold.Get()
	for i, line := range lines {
		x := int(width)/2 - text.BoundString(face, line).Dx()/2
		text.Draw(screen, line, face, x, 220+i*40, cfg.White)
	}

	audio := systems.GetAudio(e)
	volume := fmt.Sprintf("SFX volume: %d%%  (-/+, M: mute)", int(audio.SFXVolume*100+0.5))
	if audio.Muted {
		volume = "SFX muted  (M: unmute)"
	}
	text.Draw(screen, volume, face, int(width)/2-text.BoundString(face, volume).Dx()/2, 220+len(lines)*40+20, cfg.Gray)

	hint := "Esc: Resume"
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, int(width)/2-text.BoundString(small, hint).Dx()/2, int(height)-20, cfg.Gray)
}
