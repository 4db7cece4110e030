package components

import (
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/yohamta/donburi"
)

type WaveData struct {
	Phase cfg.WavePhase

	Number      int
	Spawned     int
	Required    int
	BossSpawned bool

	// SpawnTimer is when the last spawn batch happened.
	SpawnTimer    time.Duration
	SpawnInterval time.Duration

	// PhaseStart is when the countdown began or the wave completed.
	PhaseStart time.Duration

	// Survived counts completed waves.
	Survived int
}

func (w *WaveData) InProgress() bool {
	return w.Phase == cfg.PhaseInProgress
}

func (w *WaveData) Complete() bool {
	return w.Phase == cfg.PhaseComplete || w.Phase == cfg.PhaseShop
}

var Wave = donburi.NewComponentType[WaveData]()
