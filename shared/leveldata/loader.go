package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a Tiled map and returns its first tile layer as a Grid.
// A tile's level code is its local tileset ID unless the tileset tile
// carries a "code" property. Empty cells become CodeSkip. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrEmptyGrid)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == "arena" {
			layer = l
			break
		}
	}

	rows := make([][]int, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		rows[y] = make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			idx := y*levelMap.Width + x
			if idx >= len(layer.Tiles) {
				rows[y][x] = CodeSkip
				continue
			}
			rows[y][x] = tileCode(layer.Tiles[idx])
		}
	}

	g, err := NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return g, nil
}

func tileCode(tile *tiled.LayerTile) int {
	if tile == nil || tile.IsNil() {
		return CodeSkip
	}
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if s := tilesetTile.Properties.GetString("code"); s != "" {
				if code, err := strconv.Atoi(s); err == nil && code >= 0 {
					return code
				}
			}
		}
	}
	return int(tile.ID)
}

// LoadGrid loads a level by extension: .tmx through go-tiled, anything
// else as CSV.
func LoadGrid(fsys fs.FS, name string) (*Grid, error) {
	if strings.HasSuffix(name, ".tmx") {
		return LoadTMX(fsys, name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", name, err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// LoadAllLevels discovers all .csv and .tmx files in levelsDir within fsys,
// loads each, and returns a map keyed by stem name plus a sorted list of
// names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Grid, []string, error) {
	var matches []string
	for _, ext := range []string{"csv", "tmx"} {
		pattern := levelsDir + "/*." + ext
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", levelsDir)
	}

	levels := make(map[string]*Grid, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		grid, err := LoadGrid(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if _, dup := levels[stem]; dup {
			continue
		}
		levels[stem] = grid
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
