package components

import (
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broadphase for every collidable object in the arena.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()

// TileMapData is the static level geometry. Obstacles are read-only once
// built.
type TileMapData struct {
	*leveldata.TileMap
}

var TileMap = donburi.NewComponentType[TileMapData]()
