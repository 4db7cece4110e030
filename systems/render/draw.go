// Package render is the ebiten side of the arena: drawing, audio playback,
// the title menu and device input. Nothing in package systems imports it,
// so headless sessions build without a display.
package render

import (
	"image/color"
	"math/rand"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/fonts"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Shake offset shared by every renderer of one frame. DrawLevel runs
// first and picks it.
var shakeX, shakeY float64

var characterColors = map[cfg.CharacterType]color.RGBA{
	cfg.CharacterPlayer: {R: 190, G: 170, B: 150, A: 255},
	cfg.ZombieMelee:     {R: 90, G: 160, B: 80, A: 255},
	cfg.JokerMelee:      {R: 150, G: 60, B: 160, A: 255},
	cfg.JokerShooter:    {R: 220, G: 90, B: 140, A: 255},
}

var starColors = [cfg.StarTypeCount]color.RGBA{
	cfg.StarInvincible: cfg.Yellow,
	cfg.StarMultishot:  cfg.Orange,
	cfg.StarPurple:     cfg.Purple,
}

// DrawLevel fills the background and draws the visible tiles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	shakeX, shakeY = systems.ShakeOffset(e, rand.Float64)
	screen.Fill(cfg.Background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tm := systems.GetTileMap(e)
	tm.Visible(float64(w), float64(h), func(i int, r gamemath.Rect) {
		c := cfg.Floor
		if tm.Tiles[i].Obstacle {
			c = cfg.Wall
		}
		fillRect(screen, r, c)
	})
}

// DrawEntities draws pickups, characters and projectiles, in that order.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	offset := systems.GetCamera(e).Offset

	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Removed {
			return
		}
		c := cfg.Yellow
		if item.Type == cfg.ItemHealthPotion {
			c = cfg.LightRed
		}
		fillRect(screen, components.Object.Get(entry).Rect().Translate(offset.X, offset.Y), c)
	})
	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		if star.Removed {
			return
		}
		fillRect(screen, components.Object.Get(entry).Rect().Translate(offset.X, offset.Y), starColors[star.Type])
	})

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		r := components.Object.Get(entry).Rect().Translate(offset.X, offset.Y)
		c := characterColors[char.Type]
		switch {
		case !char.Alive:
			c.A = 90
		case char.Hit:
			c = cfg.White
		}
		fillRect(screen, r, c)
		if entry.HasComponent(components.Enemy) && char.Alive {
			drawHealthBar(screen, r, components.Health.Get(entry))
		}
	})

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if p.Removed {
			return
		}
		c := cfg.Yellow
		if p.Owner == components.EnemyOwned {
			c = cfg.Red
		}
		fillRect(screen, components.Object.Get(entry).Rect().Translate(offset.X, offset.Y), c)
	})

	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		if ft.Done {
			return
		}
		x := ft.X + offset.X + shakeX
		y := ft.Y + offset.Y + shakeY - float64(ft.Value)
		text.Draw(screen, ft.Text, fonts.Bold.Get(), int(x), int(y), cfg.Red)
	})

	if seg, ok := systems.AimLine(e); ok {
		vector.StrokeLine(screen, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), 1, cfg.Red, true)
	}
}

func drawHealthBar(screen *ebiten.Image, r gamemath.Rect, hp *components.HealthData) {
	if hp.Max <= 0 {
		return
	}
	bar := gamemath.Rect{X: r.X, Y: r.Y - 8, W: r.W, H: 4}
	fillRect(screen, bar, cfg.Red)
	bar.W *= float64(hp.Current) / float64(hp.Max)
	fillRect(screen, bar, cfg.Green)
}

// DrawScreenEffects tints the screen for the hurt flash and the wave
// celebration.
func DrawScreenEffects(e *ecs.ECS, screen *ebiten.Image) {
	fx := systems.GetEffects(e)
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	if fx.HurtFlashValue > 0 {
		vector.FillRect(screen, 0, 0, w, h, color.RGBA{R: 255, A: uint8(fx.HurtFlashValue)}, false)
	}
	if fx.CelebrationValue > 0 {
		vector.FillRect(screen, 0, 0, w, h, color.RGBA{R: 255, G: 215, A: uint8(fx.CelebrationValue)}, false)
	}
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X+shakeX), float32(r.Y+shakeY), float32(r.W), float32(r.H), c, false)
}
