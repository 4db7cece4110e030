package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the scroll state. A world position p is drawn at
// p + Offset. Scroll is the delta applied during the current tick.
type CameraData struct {
	Offset math.Vec2
	Scroll math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
