package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type EnemyData struct {
	// Seq is the spawn order. Enemies are updated in ascending Seq.
	Seq uint64

	Boss            bool
	BossWave        int
	SpeedMultiplier float64

	// Resolved is set once the death has been paid out.
	Resolved bool
	DiedAt   time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()
