package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectsData holds the screen-wide cosmetic tweens. None of it feeds
// back into gameplay.
type EffectsData struct {
	Shake      *gween.Tween
	ShakeValue float32

	HurtFlash      *gween.Tween
	HurtFlashValue float32

	Celebration      *gween.Tween
	CelebrationValue float32
}

var Effects = donburi.NewComponentType[EffectsData]()

// FloatingTextData is a damage number rising above a hit target.
type FloatingTextData struct {
	Text  string
	X, Y  float64
	Rise  *gween.Tween
	Value float32
	Done  bool
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()
