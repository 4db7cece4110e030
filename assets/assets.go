// Package assets embeds the arena levels shipped with the game.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/chinchilla/shared/leveldata"
)

// LevelsDir is the embedded directory holding the level files.
const LevelsDir = "levels"

// DefaultLevel is the level a run uses when none is chosen.
const DefaultLevel = "arena"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel returns the embedded level named name, without extension.
func LoadLevel(name string) (*leveldata.Grid, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	if err != nil {
		return nil, err
	}
	grid, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", name, names)
	}
	return grid, nil
}
