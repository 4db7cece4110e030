// Package leveldata provides level grid parsing and the static tile map.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "errors"

// Level codes
const (
	CodeSkip         = -1
	CodeFloor        = 0
	CodeWall         = 1
	CodeWallCracked  = 2
	CodeWallMossy    = 3
	CodeMeleeSpawn   = 4
	CodeShooterSpawn = 5
	CodePlayerSpawn  = 6
	CodePickupSpawn  = 7
)

var ErrEmptyGrid = errors.New("level grid is empty")

// Grid is a rectangular grid of level codes indexed [row][col]. Missing
// cells of short rows hold CodeSkip.
type Grid struct {
	Cells [][]int
	Cols  int
	Rows  int
}

// NewGrid wraps rows into a Grid, padding short rows with CodeSkip.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, len(rows))
	for y, r := range rows {
		cells[y] = make([]int, cols)
		n := copy(cells[y], r)
		for x := n; x < cols; x++ {
			cells[y][x] = CodeSkip
		}
	}
	return &Grid{Cells: cells, Cols: cols, Rows: len(rows)}, nil
}

// At returns the code at (col, row), or CodeSkip outside the grid.
func (g *Grid) At(col, row int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return CodeSkip
	}
	return g.Cells[row][col]
}

// SpawnKind identifies a spawn marker.
type SpawnKind int

const (
	SpawnNone SpawnKind = iota
	SpawnPlayer
	SpawnMelee
	SpawnShooter
	SpawnPickup
)

// TileKind is the catalog entry for one level code.
type TileKind struct {
	Name     string
	Obstacle bool
	// Marker cells are drawn as Floor and emit a spawn event.
	Marker SpawnKind
}

// Catalog maps level codes to tile kinds. Codes without an entry are
// skipped.
type Catalog map[int]TileKind

// DefaultCatalog returns the arena's tile catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		CodeFloor:        {Name: "floor"},
		CodeWall:         {Name: "wall", Obstacle: true},
		CodeWallCracked:  {Name: "wall_cracked", Obstacle: true},
		CodeWallMossy:    {Name: "wall_mossy", Obstacle: true},
		CodeMeleeSpawn:   {Name: "floor", Marker: SpawnMelee},
		CodeShooterSpawn: {Name: "floor", Marker: SpawnShooter},
		CodePlayerSpawn:  {Name: "floor", Marker: SpawnPlayer},
		CodePickupSpawn:  {Name: "floor", Marker: SpawnPickup},
	}
}
