package config

import "time"

// WaveConfig contains wave pacing and spawn placement values
type WaveConfig struct {
	CountdownDuration   time.Duration
	CelebrationDuration time.Duration

	InitialRequired int
	RequiredBase    int
	RequiredPerWave int

	InitialInterval time.Duration
	IntervalBase    time.Duration
	IntervalPerWave time.Duration
	MinInterval     time.Duration

	MaxAliveBase    int
	MaxAlivePerWave int
	MaxAliveCap     int

	BatchBase    int
	BatchDivisor int
	BatchCap     int

	ShooterChanceBase    float64
	ShooterChancePerWave float64
	ShooterChanceCap     float64

	// Spawn positions are sampled SpawnDistanceMin..SpawnDistanceMax from
	// the player and clamped inside the screen margins.
	SpawnDistanceMin  int
	SpawnDistanceMax  int
	SpawnMarginX      float64
	SpawnMarginTop    float64
	SpawnMarginBottom float64
	SpawnAttempts     int
	SpawnFootprint    float64

	CompletionBonusPerWave int
}

var Wave WaveConfig

// Required returns the enemy quota of wave n once it is reached by
// continuing from the shop.
func (w WaveConfig) Required(n int) int {
	return w.RequiredBase + n*w.RequiredPerWave
}

// Interval returns the spawn batch interval of wave n.
func (w WaveConfig) Interval(n int) time.Duration {
	return max(w.MinInterval, w.IntervalBase-time.Duration(n)*w.IntervalPerWave)
}

// MaxAlive returns the live enemy cap of wave n.
func (w WaveConfig) MaxAlive(n int) int {
	return min(w.MaxAliveBase+n*w.MaxAlivePerWave, w.MaxAliveCap)
}

// BatchSize returns how many enemies one spawn batch of wave n may hold.
func (w WaveConfig) BatchSize(n int) int {
	return min(w.BatchBase+n/w.BatchDivisor, w.BatchCap)
}

// ShooterChance returns the probability a normal spawn of wave n shoots.
func (w WaveConfig) ShooterChance(n int) float64 {
	return min(w.ShooterChanceBase+float64(n)*w.ShooterChancePerWave, w.ShooterChanceCap)
}

func init() {
	Wave = WaveConfig{
		CountdownDuration:      3 * time.Second,
		CelebrationDuration:    1500 * time.Millisecond,
		InitialRequired:        5,
		RequiredBase:           5,
		RequiredPerWave:        2,
		InitialInterval:        3000 * time.Millisecond,
		IntervalBase:           3000 * time.Millisecond,
		IntervalPerWave:        100 * time.Millisecond,
		MinInterval:            1500 * time.Millisecond,
		MaxAliveBase:           5,
		MaxAlivePerWave:        2,
		MaxAliveCap:            25,
		BatchBase:              1,
		BatchDivisor:           2,
		BatchCap:               10,
		ShooterChanceBase:      0.1,
		ShooterChancePerWave:   0.05,
		ShooterChanceCap:       0.5,
		SpawnDistanceMin:       300,
		SpawnDistanceMax:       1000,
		SpawnMarginX:           100,
		SpawnMarginTop:         200,
		SpawnMarginBottom:      100,
		SpawnAttempts:          50,
		SpawnFootprint:         96,
		CompletionBonusPerWave: 20,
	}
}
