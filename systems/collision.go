package systems

import (
	"slices"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoveCharacter moves e by (dx, dy) against the level obstacles, x axis
// first. Facing follows the raw dx. A diagonal step is scaled so it is no
// faster than a straight one. When scroll is set the character is kept
// inside the screen's scroll edge and the compensating camera scroll is
// returned; otherwise the scroll is zero.
func MoveCharacter(e *ecs.ECS, entry *donburi.Entry, dx, dy float64, scroll bool) (float64, float64) {
	obj := components.Object.Get(entry)
	char := components.Character.Get(entry)

	if dx < 0 {
		char.Flip = true
	}
	if dx > 0 {
		char.Flip = false
	}
	dx, dy = gamemath.DiagonalScale(dx, dy)

	space := GetSpace(e)
	tm := GetTileMap(e)

	start := obj.Rect()
	r := start.Translate(dx, 0)
	if dx != 0 {
		for _, n := range solidsAround(space, start.Union(r)) {
			r = gamemath.ClampX(r, tm.ObstacleRect(n), dx)
		}
	}

	start = r
	r = r.Translate(0, dy)
	if dy != 0 {
		for _, n := range solidsAround(space, start.Union(r)) {
			r = gamemath.ClampY(r, tm.ObstacleRect(n), dy)
		}
	}
	obj.SetRect(r)

	if !scroll {
		return 0, 0
	}
	camera := GetCamera(e)
	screen := r.Translate(camera.Offset.X, camera.Offset.Y)
	_, sx, sy := gamemath.ScrollInto(screen, float64(cfg.C.Width), float64(cfg.C.Height), cfg.C.ScrollEdge)
	return sx, sy
}

// solidsAround returns, in obstacle order, the obstacles whose broadphase
// cells touch r.
func solidsAround(space *resolv.Space, r gamemath.Rect) []int {
	footprint := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvFootprint)
	space.Add(footprint)
	defer space.Remove(footprint)

	check := footprint.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	var out []int
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if n, ok := o.Data.(int); ok {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// HitsObstacle reports whether r overlaps any obstacle tile.
func HitsObstacle(e *ecs.ECS, r gamemath.Rect) bool {
	tm := GetTileMap(e)
	for _, n := range solidsAround(GetSpace(e), r) {
		if r.Overlaps(tm.ObstacleRect(n)) {
			return true
		}
	}
	return false
}

// ValidSpawn reports whether a spawn footprint centred on (x, y) in world
// space is clear of obstacles.
func ValidSpawn(e *ecs.ECS, x, y float64) bool {
	size := cfg.Wave.SpawnFootprint
	return !HitsObstacle(e, gamemath.RectFromCenter(x, y, size, size))
}

// OnScreen reports whether the world rect r still touches the screen.
func OnScreen(e *ecs.ECS, r gamemath.Rect) bool {
	camera := GetCamera(e)
	s := r.Translate(camera.Offset.X, camera.Offset.Y)
	return !(s.Right() < 0 || s.Left() > float64(cfg.C.Width) || s.Bottom() < 0 || s.Top() > float64(cfg.C.Height))
}

// ScreenToWorld converts a screen point to world space.
func ScreenToWorld(e *ecs.ECS, x, y float64) (float64, float64) {
	camera := GetCamera(e)
	return x - camera.Offset.X, y - camera.Offset.Y
}

// WorldToScreen converts a world point to screen space.
func WorldToScreen(e *ecs.ECS, x, y float64) (float64, float64) {
	camera := GetCamera(e)
	return x + camera.Offset.X, y + camera.Offset.Y
}
