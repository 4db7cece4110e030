package systems

import (
	"slices"

	"github.com/automoto/chinchilla/components"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Session singletons. Every one of them lives on the entity created by
// factory.CreateSession.

func sessionEntry(e *ecs.ECS) *donburi.Entry {
	return components.Session.MustFirst(e.World)
}

func GetSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(sessionEntry(e))
}

func GetClock(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(sessionEntry(e))
}

func GetPause(e *ecs.ECS) *components.PauseData {
	return components.Pause.Get(sessionEntry(e))
}

func GetIntent(e *ecs.ECS) *components.IntentData {
	return components.Intent.Get(sessionEntry(e))
}

func GetCamera(e *ecs.ECS) *components.CameraData {
	return components.Camera.Get(sessionEntry(e))
}

func GetWave(e *ecs.ECS) *components.WaveData {
	return components.Wave.Get(sessionEntry(e))
}

func GetCombo(e *ecs.ECS) *components.ComboData {
	return components.Combo.Get(sessionEntry(e))
}

func GetWallet(e *ecs.ECS) *components.WalletData {
	return components.Wallet.Get(sessionEntry(e))
}

func GetPowerUps(e *ecs.ECS) *components.PowerUpsData {
	return components.PowerUps.Get(sessionEntry(e))
}

func GetAudio(e *ecs.ECS) *components.AudioData {
	return components.Audio.Get(sessionEntry(e))
}

func GetEffects(e *ecs.ECS) *components.EffectsData {
	return components.Effects.Get(sessionEntry(e))
}

// Level geometry.

func GetSpace(e *ecs.ECS) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(e.World)).Space
}

func GetTileMap(e *ecs.ECS) *leveldata.TileMap {
	return components.TileMap.Get(components.TileMap.MustFirst(e.World)).TileMap
}

// PlayerEntry returns the player, if one exists.
func PlayerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// EnemiesInOrder returns every enemy sorted by spawn order.
func EnemiesInOrder(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Enemy.Each(e.World, func(en *donburi.Entry) {
		out = append(out, en)
	})
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		return cmpSeq(components.Enemy.Get(a).Seq, components.Enemy.Get(b).Seq)
	})
	return out
}

// ProjectilesInOrder returns the projectiles carrying tag, sorted by
// creation order.
func ProjectilesInOrder(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(e.World, func(p *donburi.Entry) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		return cmpSeq(components.Projectile.Get(a).Seq, components.Projectile.Get(b).Seq)
	})
	return out
}

// LivingEnemies counts enemies that are alive with health left.
func LivingEnemies(e *ecs.ECS) int {
	n := 0
	components.Enemy.Each(e.World, func(en *donburi.Entry) {
		if components.Character.Get(en).Alive && components.Health.Get(en).Current > 0 {
			n++
		}
	})
	return n
}

// AliveEnemies counts enemies whose alive flag is still set.
func AliveEnemies(e *ecs.ECS) int {
	n := 0
	components.Enemy.Each(e.World, func(en *donburi.Entry) {
		if components.Character.Get(en).Alive {
			n++
		}
	})
	return n
}

func cmpSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
