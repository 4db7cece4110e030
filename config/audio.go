package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShot
	SoundHit
	SoundEnemyShot
	SoundPlayerHurt
	SoundPotion
	SoundCoin
	SoundDeath
	SoundBossSpawn
	SoundWaveComplete
	SoundPurchase
	SoundPowerUp
	SoundDash
)

// Tone describes a short synthesized effect.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// VolumeSteps are the levels the volume keys step through.
	VolumeSteps []float64
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
		VolumeSteps:   []float64{0, 0.1, 0.25, 0.5, 0.75, 1},
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundShot:         {Frequency: 880, Duration: 40 * time.Millisecond, Volume: 0.3},
			SoundHit:          {Frequency: 220, Duration: 60 * time.Millisecond, Volume: 0.5},
			SoundEnemyShot:    {Frequency: 660, Duration: 40 * time.Millisecond, Volume: 0.2},
			SoundPlayerHurt:   {Frequency: 140, Duration: 120 * time.Millisecond, Volume: 0.6},
			SoundPotion:       {Frequency: 520, Duration: 150 * time.Millisecond, Volume: 0.5},
			SoundCoin:         {Frequency: 1320, Duration: 80 * time.Millisecond, Volume: 0.4},
			SoundDeath:        {Frequency: 110, Duration: 200 * time.Millisecond, Volume: 0.5},
			SoundBossSpawn:    {Frequency: 70, Duration: 400 * time.Millisecond, Volume: 0.7},
			SoundWaveComplete: {Frequency: 990, Duration: 300 * time.Millisecond, Volume: 0.5},
			SoundPurchase:     {Frequency: 1100, Duration: 100 * time.Millisecond, Volume: 0.4},
			SoundPowerUp:      {Frequency: 750, Duration: 250 * time.Millisecond, Volume: 0.5},
			SoundDash:         {Frequency: 300, Duration: 50 * time.Millisecond, Volume: 0.3},
		},
	}
}
