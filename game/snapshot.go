package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/automoto/chinchilla/components"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/automoto/chinchilla/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SnapshotVersion is bumped whenever Snapshot changes shape.
const SnapshotVersion = 2

// SaveSlot is the store key sessions are saved under.
const SaveSlot = "session"

var (
	ErrNoSnapshot      = errors.New("no saved session")
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)

// Store is a keyed byte store. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Snapshot is a run frozen between two ticks. Restoring it and ticking on
// with the same input replays the run exactly. Visual effects are not kept.
type Snapshot struct {
	Version   int           `json:"version"`
	Seed      int64         `json:"seed"`
	RandDraws uint64        `json:"randDraws"`
	NextSeq   uint64        `json:"nextSeq"`
	Now       time.Duration `json:"now"`
	Tick      uint64        `json:"tick"`

	Wave     components.WaveData     `json:"wave"`
	Combo    components.ComboData    `json:"combo"`
	Wallet   components.WalletData   `json:"wallet"`
	PowerUps components.PowerUpsData `json:"powerUps"`
	Camera   dmath.Vec2              `json:"camera"`

	Player      PlayerSnapshot       `json:"player"`
	Enemies     []EnemySnapshot      `json:"enemies"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
	Items       []ItemSnapshot       `json:"items"`
	Stars       []StarSnapshot       `json:"stars"`
}

type PlayerSnapshot struct {
	Rect      gamemath.Rect            `json:"rect"`
	Player    components.PlayerData    `json:"player"`
	Character components.CharacterData `json:"character"`
	Health    components.HealthData    `json:"health"`
}

type EnemySnapshot struct {
	Rect      gamemath.Rect            `json:"rect"`
	Enemy     components.EnemyData     `json:"enemy"`
	Character components.CharacterData `json:"character"`
	Health    components.HealthData    `json:"health"`
}

type ProjectileSnapshot struct {
	Rect       gamemath.Rect             `json:"rect"`
	Projectile components.ProjectileData `json:"projectile"`
}

type ItemSnapshot struct {
	Rect gamemath.Rect       `json:"rect"`
	Item components.ItemData `json:"item"`
}

type StarSnapshot struct {
	Rect gamemath.Rect       `json:"rect"`
	Star components.StarData `json:"star"`
}

// Snapshot captures the run between two ticks.
func (s *Session) Snapshot() Snapshot {
	clock := systems.GetClock(s.ecs)
	session := systems.GetSession(s.ecs)
	snap := Snapshot{
		Version:   SnapshotVersion,
		Seed:      s.opts.seed,
		RandDraws: session.Source.Draws,
		NextSeq:   session.NextSeq,
		Now:       clock.Now,
		Tick:      clock.Tick,
		Wave:      s.Wave(),
		Combo:     s.Combo(),
		Wallet:    *systems.GetWallet(s.ecs),
		PowerUps:  *systems.GetPowerUps(s.ecs),
		Camera:    systems.GetCamera(s.ecs).Offset,
	}

	if pe, ok := systems.PlayerEntry(s.ecs); ok {
		snap.Player = PlayerSnapshot{
			Rect:      components.Object.Get(pe).Rect(),
			Player:    *components.Player.Get(pe),
			Character: *components.Character.Get(pe),
			Health:    *components.Health.Get(pe),
		}
	}

	// Corpses are kept until they are cleaned up; they still roll their
	// movement jitter each tick.
	for _, en := range systems.EnemiesInOrder(s.ecs) {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			Rect:      components.Object.Get(en).Rect(),
			Enemy:     *components.Enemy.Get(en),
			Character: *components.Character.Get(en),
			Health:    *components.Health.Get(en),
		})
	}

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Bullet, tags.EnemyBullet} {
		for _, entry := range systems.ProjectilesInOrder(s.ecs, tag) {
			p := components.Projectile.Get(entry)
			if p.Removed {
				continue
			}
			snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
				Rect:       components.Object.Get(entry).Rect(),
				Projectile: *p,
			})
		}
	}

	tags.Item.Each(s.ecs.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Removed {
			return
		}
		snap.Items = append(snap.Items, ItemSnapshot{
			Rect: components.Object.Get(entry).Rect(),
			Item: *item,
		})
	})

	tags.Star.Each(s.ecs.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		if star.Removed {
			return
		}
		snap.Stars = append(snap.Stars, StarSnapshot{
			Rect: components.Object.Get(entry).Rect(),
			Star: *star,
		})
	})

	return snap
}

// Restore rebuilds the arena from snap and continues the run exactly where
// it was captured, random stream included.
func (s *Session) Restore(snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("restore snapshot v%d: %w", snap.Version, ErrSnapshotVersion)
	}

	s.opts.seed = snap.Seed
	s.opts.seeded = true
	s.build(false)

	clock := systems.GetClock(s.ecs)
	clock.Now = snap.Now
	clock.Tick = snap.Tick

	*systems.GetWave(s.ecs) = snap.Wave
	*systems.GetCombo(s.ecs) = snap.Combo
	*systems.GetWallet(s.ecs) = snap.Wallet
	*systems.GetPowerUps(s.ecs) = snap.PowerUps
	systems.GetCamera(s.ecs).Offset = snap.Camera
	systems.GetTileMap(s.ecs).SetOffset(snap.Camera.X, snap.Camera.Y)

	if pe, ok := systems.PlayerEntry(s.ecs); ok {
		components.Object.Get(pe).SetRect(snap.Player.Rect)
		*components.Player.Get(pe) = snap.Player.Player
		*components.Character.Get(pe) = snap.Player.Character
		health := snap.Player.Health
		health.Current = min(max(health.Current, 0), health.Max)
		*components.Health.Get(pe) = health
	}

	for _, en := range snap.Enemies {
		factory.RestoreEnemy(s.ecs, en.Rect, en.Character, en.Health, en.Enemy)
	}
	for _, p := range snap.Projectiles {
		factory.RestoreProjectile(s.ecs, p.Rect, p.Projectile)
	}
	for _, it := range snap.Items {
		cx, cy := it.Rect.Center()
		entry := factory.CreateItem(s.ecs, it.Item.Type, cx, cy, it.Item.Value)
		components.Object.Get(entry).SetRect(it.Rect)
	}
	for _, st := range snap.Stars {
		cx, cy := st.Rect.Center()
		entry := factory.CreateStar(s.ecs, st.Star.Type, cx, cy, st.Star.SpawnedAt)
		components.Object.Get(entry).SetRect(st.Rect)
	}

	session := systems.GetSession(s.ecs)
	session.NextSeq = snap.NextSeq
	session.Source.Resume(snap.Seed, snap.RandDraws)

	logger.Log.WithFields(logrus.Fields{
		"wave":    snap.Wave.Number,
		"phase":   snap.Wave.Phase,
		"enemies": len(snap.Enemies),
		"coins":   snap.Wallet.Coins,
	}).Info("session restored")
	return nil
}

// LoadSnapshot decodes a saved snapshot.
func LoadSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot v%d: %w", snap.Version, ErrSnapshotVersion)
	}
	return snap, nil
}

// Save writes the run's progress to store under SaveSlot.
func (s *Session) Save(store Store) error {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := store.SaveItem(SaveSlot, data); err != nil {
		logger.Log.WithError(err).Warn("could not save session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load restores the run saved in store. It returns ErrNoSnapshot when the
// slot is empty.
func (s *Session) Load(store Store) error {
	data, err := store.LoadItem(SaveSlot)
	if err != nil {
		logger.Log.WithError(err).Warn("could not load session")
		return fmt.Errorf("load session: %w", err)
	}
	if len(data) == 0 {
		return ErrNoSnapshot
	}
	snap, err := LoadSnapshot(data)
	if err != nil {
		return err
	}
	return s.Restore(snap)
}

// HasSnapshot reports whether store holds a saved run.
func HasSnapshot(store Store) bool {
	data, err := store.LoadItem(SaveSlot)
	return err == nil && len(data) > 0
}

// ClearSnapshot empties the save slot, e.g. once the saved run has ended.
func ClearSnapshot(store Store) error {
	if err := store.SaveItem(SaveSlot, nil); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
