package components

import (
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds an entity's world-space rect. The resolv object doubles
// as the broadphase handle in the level space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's world rect.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves the object to r and refreshes its space cells.
func (o ObjectData) SetRect(r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
