package systems

import (
	"math"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect for this tick. The queue is cleared at the
// start of every tick, so a frontend reads it after Update.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	a := GetAudio(e)
	a.PendingSFX = append(a.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	volume = math.Max(0, math.Min(volume, 1))
	GetAudio(e).SFXVolume = volume
	logger.Log.WithField("volume", volume).Debug("sfx volume changed")
}
