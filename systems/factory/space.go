package factory

import (
	"github.com/automoto/chinchilla/archetypes"
	"github.com/automoto/chinchilla/components"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the broadphase cell edge in pixels.
const SpaceCellSize = 32

// CreateLevel builds the tile map from grid and registers one solid
// object per obstacle tile. Each obstacle object carries its index into
// TileMap.Obstacles as Data.
func CreateLevel(ecs *ecs.ECS, grid *leveldata.Grid, tileSize float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	tm := leveldata.Build(grid, leveldata.DefaultCatalog(), tileSize)
	components.TileMap.SetValue(level, components.TileMapData{TileMap: tm})

	bounds := tm.Bounds()
	space := resolv.NewSpace(int(bounds.W+tileSize), int(bounds.H+tileSize), SpaceCellSize, SpaceCellSize)
	components.Space.SetValue(level, components.SpaceData{Space: space})

	for n := range tm.Obstacles {
		r := tm.ObstacleRect(n)
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		obj.Data = n
		space.Add(obj)
	}

	logger.Log.WithFields(logrus.Fields{
		"cols":      tm.Cols,
		"rows":      tm.Rows,
		"tiles":     len(tm.Tiles),
		"obstacles": len(tm.Obstacles),
		"spawns":    len(tm.Spawns),
	}).Info("level built")

	return level
}

// addToSpace links obj to e and registers it in the level space.
func addToSpace(ecs *ecs.ECS, e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
}

func nextSeq(ecs *ecs.ECS) uint64 {
	return components.Session.Get(components.Session.MustFirst(ecs.World)).Seq()
}
