package render

import (
	"image/color"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every broadphase object on screen when
// Debug.DrawHitboxes is set.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	camera := systems.GetCamera(e)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range systems.GetSpace(e).Objects() {
		x := obj.X + camera.Offset.X
		y := obj.Y + camera.Offset.Y
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvBullet), obj.HasTags(tags.ResolvEnemyBullet):
			c = color.RGBA{0, 255, 0, 255}
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
