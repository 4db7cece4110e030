package leveldata

import (
	"math"

	"github.com/automoto/chinchilla/shared/gamemath"
)

// Tile is one placed map cell. Rect is in world space; the tile's centre
// sits on the cell's grid corner (col*size, row*size).
type Tile struct {
	Code     int // level code after marker replacement
	Kind     string
	Col, Row int
	Rect     gamemath.Rect
	Obstacle bool
}

// SpawnEvent is emitted for every marker cell at build time.
type SpawnEvent struct {
	Kind     SpawnKind
	Col, Row int
	X, Y     float64 // world centre of the cell
}

// TileMap is the static arena. Tiles never move in world space; Translate
// accumulates the camera scroll that maps world space onto the screen.
type TileMap struct {
	Tiles     []Tile
	Obstacles []int // indices into Tiles, in grid order
	Spawns    []SpawnEvent
	TileSize  float64
	Cols      int
	Rows      int

	cellIndex []int32 // row*Cols+col -> index into Tiles, -1 if skipped
	offsetX   float64
	offsetY   float64
}

// Build classifies every grid cell through catalog. Wall codes become
// obstacles, marker codes are drawn as floor and emit a SpawnEvent, and
// codes missing from the catalog are skipped.
func Build(grid *Grid, catalog Catalog, tileSize float64) *TileMap {
	m := &TileMap{
		TileSize:  tileSize,
		Cols:      grid.Cols,
		Rows:      grid.Rows,
		cellIndex: make([]int32, grid.Cols*grid.Rows),
	}
	floor := catalog[CodeFloor]

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			m.cellIndex[row*grid.Cols+col] = -1

			code := grid.At(col, row)
			kind, ok := catalog[code]
			if code < 0 || !ok {
				continue
			}

			cx, cy := float64(col)*tileSize, float64(row)*tileSize
			tile := Tile{
				Code:     code,
				Kind:     kind.Name,
				Col:      col,
				Row:      row,
				Rect:     gamemath.RectFromCenter(cx, cy, tileSize, tileSize),
				Obstacle: kind.Obstacle,
			}
			if kind.Marker != SpawnNone {
				tile.Code = CodeFloor
				tile.Kind = floor.Name
				tile.Obstacle = false
				m.Spawns = append(m.Spawns, SpawnEvent{Kind: kind.Marker, Col: col, Row: row, X: cx, Y: cy})
			}

			m.cellIndex[row*grid.Cols+col] = int32(len(m.Tiles))
			if tile.Obstacle {
				m.Obstacles = append(m.Obstacles, len(m.Tiles))
			}
			m.Tiles = append(m.Tiles, tile)
		}
	}
	return m
}

// Translate shifts every tile's screen position by (dx, dy).
func (m *TileMap) Translate(dx, dy float64) {
	m.offsetX += dx
	m.offsetY += dy
}

// Offset returns the accumulated scroll.
func (m *TileMap) Offset() (float64, float64) {
	return m.offsetX, m.offsetY
}

// SetOffset replaces the accumulated scroll.
func (m *TileMap) SetOffset(x, y float64) {
	m.offsetX, m.offsetY = x, y
}

// ScreenRect returns tile i's rect in screen space.
func (m *TileMap) ScreenRect(i int) gamemath.Rect {
	return m.Tiles[i].Rect.Translate(m.offsetX, m.offsetY)
}

// ObstacleRect returns the world rect of the n-th obstacle.
func (m *TileMap) ObstacleRect(n int) gamemath.Rect {
	return m.Tiles[m.Obstacles[n]].Rect
}

// TileAt returns the tile placed at (col, row).
func (m *TileMap) TileAt(col, row int) (Tile, bool) {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return Tile{}, false
	}
	i := m.cellIndex[row*m.Cols+col]
	if i < 0 {
		return Tile{}, false
	}
	return m.Tiles[i], true
}

// Visible calls fn for every tile whose screen rect may intersect a
// width×height viewport, in grid order.
func (m *TileMap) Visible(width, height float64, fn func(i int, screen gamemath.Rect)) {
	half := m.TileSize / 2
	c0 := int(math.Floor((-m.offsetX - half) / m.TileSize))
	c1 := int(math.Ceil((width - m.offsetX + half) / m.TileSize))
	r0 := int(math.Floor((-m.offsetY - half) / m.TileSize))
	r1 := int(math.Ceil((height - m.offsetY + half) / m.TileSize))

	for row := max(r0, 0); row <= min(r1, m.Rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, m.Cols-1); col++ {
			i := m.cellIndex[row*m.Cols+col]
			if i < 0 {
				continue
			}
			fn(int(i), m.ScreenRect(int(i)))
		}
	}
}

// Bounds returns the world rect covered by the grid's tiles.
func (m *TileMap) Bounds() gamemath.Rect {
	half := m.TileSize / 2
	return gamemath.Rect{
		X: -half,
		Y: -half,
		W: float64(m.Cols) * m.TileSize,
		H: float64(m.Rows) * m.TileSize,
	}
}
