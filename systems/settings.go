package systems

import (
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the volume keys while the game is paused and
// persists the new volume.
func UpdateSettings(e *ecs.ECS) {
	if !GetPause(e).IsPaused {
		return
	}
	intent := GetIntent(e)
	audio := GetAudio(e)

	switch {
	case intent.Mute:
		toggleMute(e)
	case intent.Volume != 0:
		if audio.Muted {
			audio.Muted = false
		}
		SetSFXVolume(e, adjustVolumeStep(audio.SFXVolume, intent.Volume))
	default:
		return
	}
	persistVolume(audio.SFXVolume, audio.Muted, audio.PreMuteVolume)
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Audio.VolumeSteps
	newIdx := findClosestStepIndex(current, steps) + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func toggleMute(e *ecs.ECS) {
	audio := GetAudio(e)
	audio.Muted = !audio.Muted
	if audio.Muted {
		audio.PreMuteVolume = audio.SFXVolume
		SetSFXVolume(e, 0)
	} else {
		SetSFXVolume(e, audio.PreMuteVolume)
	}
}

// persistVolume saves the audible volume, the one to restore when muted.
func persistVolume(volume float64, muted bool, preMute float64) {
	if muted {
		volume = preMute
	}
	saved, err := LoadSettings()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
	}
	if saved == nil {
		saved = &SavedSettings{}
	}
	saved.SFXVolume = volume
	if err := SaveSettings(saved); err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
	}
}
