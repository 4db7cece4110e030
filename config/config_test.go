package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveScaling(t *testing.T) {
	tests := []struct {
		wave     int
		required int
		interval time.Duration
		maxAlive int
		batch    int
	}{
		{wave: 2, required: 9, interval: 2800 * time.Millisecond, maxAlive: 9, batch: 2},
		{wave: 5, required: 15, interval: 2500 * time.Millisecond, maxAlive: 15, batch: 3},
		{wave: 20, required: 45, interval: 1500 * time.Millisecond, maxAlive: 25, batch: 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.required, Wave.Required(tt.wave), "wave %d", tt.wave)
		assert.Equal(t, tt.interval, Wave.Interval(tt.wave), "wave %d", tt.wave)
		assert.Equal(t, tt.maxAlive, Wave.MaxAlive(tt.wave), "wave %d", tt.wave)
		assert.Equal(t, tt.batch, Wave.BatchSize(tt.wave), "wave %d", tt.wave)
	}
	assert.InDelta(t, 0.15, Wave.ShooterChance(1), 1e-9)
	assert.InDelta(t, 0.5, Wave.ShooterChance(30), 1e-9)
}

func TestBossCount(t *testing.T) {
	for wave, want := range map[int]int{1: 0, 3: 1, 4: 0, 5: 0, 6: 2, 7: 0, 8: 2, 9: 0, 10: 2} {
		assert.Equal(t, want, Boss.Count(wave), "wave %d", wave)
	}
}

func TestEnemyTypeFallback(t *testing.T) {
	assert.True(t, EnemyType(JokerShooter).Shooter)
	assert.Equal(t, Enemy.Types[ZombieMelee], EnemyType(CharacterPlayer))
}

func TestOverrides(t *testing.T) {
	c, player, combo, wave, shop := *C, Player, Combo, Wave, Shop
	t.Cleanup(func() {
		*C, Player, Combo, Wave, Shop = c, player, combo, wave, shop
	})

	path := filepath.Join(t.TempDir(), "chinchilla.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  fps: 60
player:
  speed: 8
combo:
  windowMs: 3000
wave:
  intervalMs: 2000
shop:
  laserCost: 150
unknown: ignored
`), 0o644))

	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 60, C.FPS)
	assert.Equal(t, time.Second/60, C.TickDuration)
	assert.Equal(t, 1200, C.Width, "unset values keep their defaults")
	assert.Equal(t, 8.0, Player.Speed)
	assert.Equal(t, 3*time.Second, Combo.Window)
	assert.Equal(t, 2*time.Second, Wave.InitialInterval)
	assert.Equal(t, 150, Shop.LaserCost)
	assert.Equal(t, 30, Shop.HealthCost)
}

func TestOverridesErrors(t *testing.T) {
	assert.Error(t, LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")))

	_, err := ParseOverrides([]byte("window: [1, 2"))
	assert.Error(t, err)

	_, err = ParseOverrides([]byte("window:\n  fps: -1\n"))
	assert.Error(t, err)
}
