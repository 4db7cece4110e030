package game

import (
	"errors"
	"testing"
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func TestSaveLoadShopRun(t *testing.T) {
	s := newSession(t)
	tickN(s, 12, idle)
	enterShop(s, 123)
	wallet := systems.GetWallet(s.ECS())
	wallet.WeaponLevel = 3
	wallet.LaserSight = true
	systems.GetWave(s.ECS()).Number = 4

	store := &memStore{}
	require.NoError(t, s.Save(store))

	loaded := newSession(t)
	require.NoError(t, loaded.Load(store))

	assert.Equal(t, cfg.PhaseShop, loaded.Phase())
	assert.Equal(t, 4, loaded.Wave().Number)
	assert.Equal(t, 123, loaded.Coins())
	assert.Equal(t, 3, systems.GetWallet(loaded.ECS()).WeaponLevel)
	assert.True(t, systems.GetWallet(loaded.ECS()).LaserSight)
	assert.Equal(t, s.Now(), loaded.Now())
	assert.Equal(t, s.Snapshot(), loaded.Snapshot())
}

func TestRestoreContinuesRunningWave(t *testing.T) {
	a := New(arena(t, 100, 60, nil), WithSeed(3), WithTickDuration(step))
	pilot := systems.NewAutopilot(3)
	for a.Wave().Spawned < 3 || a.Kills() == 0 {
		require.Less(t, a.Now(), 2*time.Minute, "the autopilot never got going")
		a.Tick(pilot.Intent(a.ECS()))
	}
	require.Equal(t, cfg.PhaseInProgress, a.Phase())

	store := &memStore{}
	require.NoError(t, a.Save(store))
	b := newSession(t, WithSeed(99))
	require.NoError(t, b.Load(store))

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.Wave(), b.Wave())
	assert.Equal(t, count(a, tags.Enemy), count(b, tags.Enemy))

	pa, pb := systems.NewAutopilot(5), systems.NewAutopilot(5)
	for i := range 300 {
		a.Tick(pa.Intent(a.ECS()))
		b.Tick(pb.Intent(b.ECS()))
		require.Equal(t, a.Wave(), b.Wave(), "tick %d", i)
		require.Equal(t, a.Combo(), b.Combo(), "tick %d", i)
	}
	assert.Equal(t, a.Coins(), b.Coins())
	assert.Equal(t, a.Kills(), b.Kills())
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestRestoreKeepsRandomStream(t *testing.T) {
	a := newSession(t)
	tickN(a, 40, idle)
	snap := a.Snapshot()
	require.NotZero(t, snap.RandDraws)

	b := newSession(t)
	require.NoError(t, b.Restore(snap))
	assert.Equal(t, snap.RandDraws, systems.GetSession(b.ECS()).Source.Draws)
	assert.Equal(t,
		systems.GetSession(a.ECS()).Rand.Int63(),
		systems.GetSession(b.ECS()).Rand.Int63(),
	)
}

func TestLoadErrors(t *testing.T) {
	s := newSession(t)

	err := s.Load(&memStore{})
	assert.ErrorIs(t, err, ErrNoSnapshot)

	store := &memStore{items: map[string][]byte{SaveSlot: []byte(`{"version":99}`)}}
	assert.ErrorIs(t, s.Load(store), ErrSnapshotVersion)

	store.items[SaveSlot] = []byte(`not json`)
	assert.Error(t, s.Load(store))

	broken := errors.New("disk on fire")
	assert.ErrorIs(t, s.Load(&memStore{err: broken}), broken)
	assert.ErrorIs(t, s.Save(&memStore{err: broken}), broken)

	assert.ErrorIs(t, s.Restore(Snapshot{Version: 0}), ErrSnapshotVersion)
}

func TestHasAndClearSnapshot(t *testing.T) {
	store := &memStore{}
	assert.False(t, HasSnapshot(store))

	s := newSession(t)
	require.NoError(t, s.Save(store))
	assert.True(t, HasSnapshot(store))

	require.NoError(t, ClearSnapshot(store))
	assert.False(t, HasSnapshot(store))
	assert.ErrorIs(t, newSession(t).Load(store), ErrNoSnapshot)
}
