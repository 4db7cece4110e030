package assets

import (
	"testing"

	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultLevel(t *testing.T) {
	grid, err := LoadLevel(DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, 200, grid.Cols)
	assert.Equal(t, 200, grid.Rows)
	assert.Equal(t, leveldata.CodePlayerSpawn, grid.At(37, 18))
	assert.NotEqual(t, leveldata.CodeFloor, grid.At(0, 0))
}

func TestLoadTMXLevel(t *testing.T) {
	grid, err := LoadLevel("pen")
	require.NoError(t, err)

	assert.Equal(t, 80, grid.Cols)
	assert.Equal(t, leveldata.CodeWall, grid.At(0, 0))
	assert.Equal(t, leveldata.CodeShooterSpawn, grid.At(72, 34))
}

func TestLoadMissingLevel(t *testing.T) {
	_, err := LoadLevel("nowhere")
	assert.Error(t, err)
}
