package components

import (
	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
)

// AudioData collects the sound triggers of the current tick. The queue is
// cleared at the start of every tick.
type AudioData struct {
	SFXVolume  float64
	PendingSFX []cfg.SoundID

	Muted         bool
	PreMuteVolume float64
}

var Audio = donburi.NewComponentType[AudioData]()
