package systems_test

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/game"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/automoto/chinchilla/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func walledGrid(t *testing.T, cols, rows int, fill int, walls ...[2]int) *leveldata.Grid {
	t.Helper()
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			cells[r][c] = fill
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				cells[r][c] = leveldata.CodeWall
			}
		}
	}
	for _, at := range walls {
		cells[at[1]][at[0]] = leveldata.CodeWall
	}
	g, err := leveldata.NewGrid(cells)
	require.NoError(t, err)
	return g
}

// newWorld builds a session on an open 100×60 arena with the opening
// colas flagged for removal.
func newWorld(t *testing.T) (*game.Session, *ecs.ECS) {
	t.Helper()
	s := game.New(walledGrid(t, 100, 60, leveldata.CodeFloor), game.WithSeed(3), game.WithTickDuration(100*time.Millisecond))
	tags.Item.Each(s.ECS().World, func(e *donburi.Entry) {
		components.Item.Get(e).Removed = true
	})
	return s, s.ECS()
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	pe, ok := systems.PlayerEntry(e)
	require.True(t, ok)
	return pe
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestIntentFromEdges(t *testing.T) {
	var prev, cur systems.ActionSet
	cur[cfg.ActionPause] = true
	cur[cfg.ActionMoveLeft] = true
	cur[cfg.ActionBuy3] = true

	in := systems.IntentFrom(cur, prev, 10, 20)
	assert.True(t, in.Pause)
	assert.True(t, in.MoveLeft)
	assert.Equal(t, 3, in.Buy)
	assert.Equal(t, 10.0, in.AimX)
	assert.Equal(t, 20.0, in.AimY)

	in = systems.IntentFrom(cur, cur, 0, 0)
	assert.False(t, in.Pause, "held pause does not toggle again")
	assert.Zero(t, in.Buy)
	assert.True(t, in.MoveLeft, "movement is a held state")
}

func TestMoveCharacterStopsAtWall(t *testing.T) {
	_, e := newWorld(t)
	pe := player(t, e)
	obj := components.Object.Get(pe)
	obj.SetRect(gamemath.RectFromCenter(70, 300, cfg.Player.Width, cfg.Player.Height))

	systems.MoveCharacter(e, pe, -40, 0, false)
	assert.InDelta(t, 8, obj.Rect().X, 1e-9, "left edge rests on the wall's right side")
	assert.True(t, components.Character.Get(pe).Flip)

	systems.MoveCharacter(e, pe, 10, 0, false)
	assert.InDelta(t, 18, obj.Rect().X, 1e-9)
	assert.False(t, components.Character.Get(pe).Flip)
}

func TestDiagonalMoveIsScaled(t *testing.T) {
	_, e := newWorld(t)
	pe := player(t, e)
	before := components.Object.Get(pe).Rect()

	systems.MoveCharacter(e, pe, 6, 6, false)
	after := components.Object.Get(pe).Rect()
	moved := gamemath.Distance(before.X, before.Y, after.X, after.Y)
	assert.InDelta(t, 6, moved, 1e-6)
}

func TestDiagonalMoveResolvesXFirst(t *testing.T) {
	// The wall tile at (20, 20) covers 312..328 on both axes.
	s := game.New(walledGrid(t, 100, 60, leveldata.CodeFloor, [2]int{20, 20}), game.WithSeed(3))
	e := s.ECS()
	pe := player(t, e)
	obj := components.Object.Get(pe)
	obj.SetRect(gamemath.Rect{X: 211, Y: 211, W: cfg.Player.Width, H: cfg.Player.Height})

	systems.MoveCharacter(e, pe, 20, 20, false)
	r := obj.Rect()
	assert.InDelta(t, 211+20*math.Sqrt2/2, r.X, 1e-9, "x slides past the corner")
	assert.InDelta(t, 312-cfg.Player.Height, r.Y, 1e-9, "y stops on the tile's top")
}

func TestEnemyStunLifecycle(t *testing.T) {
	s, e := newWorld(t)
	idle := game.Input{AimX: 900, AimY: 300}

	en := factory.CreateEnemy(e, cfg.ZombieMelee, 1100, 300, 100)
	char := components.Character.Get(en)
	obj := components.Object.Get(en)
	char.Hit = true

	s.Tick(idle)
	assert.True(t, char.Stunned, "the hit stuns once the tick has run")
	assert.False(t, char.Hit)
	stunnedAt := obj.Rect()

	s.Tick(idle)
	assert.True(t, char.Stunned)
	assert.Equal(t, stunnedAt, obj.Rect(), "a stunned enemy stays put")

	s.Tick(idle)
	assert.False(t, char.Stunned, "the stun wears off after the stun cooldown")
	assert.Equal(t, stunnedAt, obj.Rect())

	s.Tick(idle)
	assert.Less(t, obj.Rect().X, stunnedAt.X, "the enemy walks again")
}

func TestStunnedEnemyDoesNotAttack(t *testing.T) {
	s, e := newWorld(t)
	idle := game.Input{AimX: 900, AimY: 300}
	pe := player(t, e)
	px, py := components.Object.Get(pe).Rect().Center()

	en := factory.CreateEnemy(e, cfg.ZombieMelee, px+40, py, 100)
	char := components.Character.Get(en)
	char.Stunned = true

	s.Tick(idle)
	s.Tick(idle)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(pe).Current)
	assert.False(t, char.Stunned)

	s.Tick(idle)
	assert.Equal(t, cfg.Player.Health-cfg.Enemy.MeleeDamage, components.Health.Get(pe).Current)
}

func TestPlayerScrollsCamera(t *testing.T) {
	s, e := newWorld(t)
	for range 100 {
		s.Tick(game.Input{MoveRight: true, AimX: 900, AimY: 300})
	}

	camera := systems.GetCamera(e)
	assert.Less(t, camera.Offset.X, 0.0)
	r := components.Object.Get(player(t, e)).Rect()
	sx, _ := systems.WorldToScreen(e, r.Right(), r.Y)
	assert.InDelta(t, float64(cfg.C.Width)-cfg.C.ScrollEdge, sx, 1e-6)

	ox, _ := systems.GetTileMap(e).Offset()
	assert.Equal(t, camera.Offset.X, ox, "tile map follows the camera")
}

func TestSemiAutomaticFire(t *testing.T) {
	s, e := newWorld(t)
	fire := game.Input{Fire: true, AimX: 900, AimY: 300}

	s.Tick(fire)
	assert.Equal(t, 1, count(e, tags.Bullet))
	assert.Contains(t, s.Events(), cfg.SoundShot)

	s.Tick(fire)
	s.Tick(fire)
	assert.Equal(t, 1, count(e, tags.Bullet), "holding the trigger fires once")

	s.Tick(game.Input{AimX: 900, AimY: 300})
	s.Tick(fire)
	assert.Equal(t, 2, count(e, tags.Bullet))
}

func TestMultishotAddsRing(t *testing.T) {
	s, e := newWorld(t)
	systems.GetPowerUps(e).Active[cfg.StarMultishot] = true
	systems.GetPowerUps(e).Since[cfg.StarMultishot] = 0

	s.Tick(game.Input{Fire: true, AimX: 900, AimY: 300})
	assert.Equal(t, 1+17, count(e, tags.Bullet))
}

func TestBulletHitsNearestEnemy(t *testing.T) {
	_, e := newWorld(t)
	far := factory.CreateEnemy(e, cfg.ZombieMelee, 800, 450, 100)
	near := factory.CreateEnemy(e, cfg.ZombieMelee, 820, 450, 100)
	factory.CreateBullet(e, 815, 450, gamemath.FireAngle(0, 0, 1, 0))

	systems.UpdateBullets(e)

	assert.Equal(t, 100, components.Health.Get(far).Current)
	assert.Less(t, components.Health.Get(near).Current, 100)
	assert.True(t, components.Character.Get(near).Hit)
	texts := 0
	components.FloatingText.Each(e.World, func(*donburi.Entry) { texts++ })
	assert.Equal(t, 1, texts)
}

func TestBulletDamage(t *testing.T) {
	_, e := newWorld(t)
	en := factory.CreateEnemy(e, cfg.ZombieMelee, 1000, 450, 140)
	boss := factory.CreateBoss(e, 3, 300, 450)

	for range 20 {
		d := systems.BulletDamage(e, en)
		assert.GreaterOrEqual(t, d, 45)
		assert.LessOrEqual(t, d, 55)
	}

	systems.GetWallet(e).DamageBonus = 10
	systems.GetPowerUps(e).Active[cfg.StarPurple] = true
	assert.Equal(t, 240, systems.BulletDamage(e, en), "purple one-shots normal enemies")
	d := systems.BulletDamage(e, boss)
	assert.GreaterOrEqual(t, d, 55*3)
	assert.LessOrEqual(t, d, 65*3)
}

func TestInvincibleContact(t *testing.T) {
	_, e := newWorld(t)
	pu := systems.GetPowerUps(e)
	pu.Active[cfg.StarInvincible] = true
	en := factory.CreateEnemy(e, cfg.ZombieMelee, 620, 300, 100)

	systems.UpdateEnemies(e)

	assert.Equal(t, 100, components.Health.Get(player(t, e)).Current, "melee is undone")
	assert.False(t, components.Character.Get(player(t, e)).Hit)
	assert.Equal(t, 50, components.Health.Get(en).Current)
	assert.True(t, components.Character.Get(en).Hit)

	systems.UpdateEnemies(e)
	assert.False(t, components.Character.Get(en).Alive)
	assert.Equal(t, 1, components.Player.Get(player(t, e)).Score)
}

func TestStarPickupAndExpiry(t *testing.T) {
	s, e := newWorld(t)
	factory.CreateStar(e, cfg.StarPurple, 600, 300, 0)

	s.Tick(game.Input{AimX: 900, AimY: 300})
	pu := systems.GetPowerUps(e)
	assert.True(t, pu.Has(cfg.StarPurple))
	assert.Contains(t, s.Events(), cfg.SoundPowerUp)
	assert.Zero(t, count(e, tags.Star))

	clock := systems.GetClock(e)
	clock.Now = pu.Since[cfg.StarPurple] + cfg.PowerUp.Duration
	systems.UpdatePowerUps(e)
	assert.False(t, pu.Has(cfg.StarPurple))
}

func TestPickupTimers(t *testing.T) {
	_, e := newWorld(t)
	clock := systems.GetClock(e)
	before := count(e, tags.Item)

	clock.Now = cfg.Items.ColaInterval - time.Millisecond
	systems.UpdatePickupTimers(e)
	assert.Equal(t, before, count(e, tags.Item))

	clock.Now = cfg.Items.ColaInterval
	systems.UpdatePickupTimers(e)
	assert.Equal(t, before+1, count(e, tags.Item))
	assert.Zero(t, count(e, tags.Star), "no stars before wave 3")

	systems.GetWave(e).Number = cfg.PowerUp.FromWave
	systems.UpdatePickupTimers(e)
	assert.Equal(t, 1, count(e, tags.Star))
}

func TestItemPickup(t *testing.T) {
	_, e := newWorld(t)
	pe := player(t, e)
	components.Health.Get(pe).Current = 90
	factory.CreateItem(e, cfg.ItemHealthPotion, 600, 300, cfg.Items.HealthValue)
	factory.CreateItem(e, cfg.ItemCoin, 610, 310, cfg.Items.CoinValue)
	factory.CreateItem(e, cfg.ItemCoin, 1100, 500, cfg.Items.CoinValue)

	systems.UpdateItems(e)

	assert.Equal(t, 100, components.Health.Get(pe).Current)
	assert.Equal(t, cfg.Items.CoinValue, systems.GetWallet(e).Coins)
}

func TestSpawnPositionFallsBackToCentre(t *testing.T) {
	s := game.New(walledGrid(t, 100, 60, leveldata.CodeWall), game.WithSeed(1))
	x, y := systems.SpawnPosition(s.ECS())
	assert.Equal(t, float64(cfg.C.Width)/2, x)
	assert.Equal(t, float64(cfg.C.Height)/2, y)
}

func TestSpawnPositionIsClear(t *testing.T) {
	_, e := newWorld(t)
	for range 50 {
		x, y := systems.SpawnPosition(e)
		assert.True(t, systems.ValidSpawn(e, x, y))
	}
}

func TestCleanupRemovesFlagged(t *testing.T) {
	_, e := newWorld(t)
	b := factory.CreateBullet(e, 600, 300, 0)
	components.Projectile.Get(b).Removed = true
	space := systems.GetSpace(e)
	objects := len(space.Objects())

	systems.UpdateCleanup(e)

	assert.False(t, b.Valid())
	assert.Zero(t, count(e, tags.Item), "flagged colas are gone too")
	assert.Less(t, len(space.Objects()), objects)
}

func TestScreenShakeKeepsStrongest(t *testing.T) {
	_, e := newWorld(t)
	systems.TriggerScreenShake(e, 15)
	systems.TriggerScreenShake(e, 3)
	assert.Equal(t, float32(15), systems.GetEffects(e).ShakeValue)

	for range 30 {
		systems.UpdateEffects(e)
	}
	assert.Zero(t, systems.GetEffects(e).ShakeValue)
	assert.Nil(t, systems.GetEffects(e).Shake)
}

func TestAutopilotTargetsNearestEnemy(t *testing.T) {
	_, e := newWorld(t)
	factory.CreateEnemy(e, cfg.ZombieMelee, 1000, 300, 100)
	factory.CreateEnemy(e, cfg.JokerMelee, 600, 500, 100)
	ap := systems.NewAutopilot(1)

	in := ap.Intent(e)
	assert.Equal(t, 600.0, in.AimX)
	assert.Equal(t, 500.0, in.AimY)
	assert.True(t, in.Fire)
	assert.True(t, in.MoveUp, "backs away from a close enemy")
	assert.False(t, in.MoveDown)
	assert.False(t, in.Dash)

	in = ap.Intent(e)
	assert.False(t, in.Fire, "releases the trigger between shots")
	assert.True(t, ap.Intent(e).Fire)
}

func TestAutopilotDashesFromEnemyFire(t *testing.T) {
	_, e := newWorld(t)
	factory.CreateEnemyBullet(e, 650, 300, 0, 5)

	assert.True(t, systems.NewAutopilot(1).Intent(e).Dash)
}

func TestAutopilotShops(t *testing.T) {
	_, e := newWorld(t)
	ap := systems.NewAutopilot(1)
	systems.GetWave(e).Phase = cfg.PhaseShop

	systems.GetWallet(e).Coins = 1000
	assert.Equal(t, 1, ap.Intent(e).Buy)

	systems.GetWallet(e).Coins = 0
	in := ap.Intent(e)
	assert.Zero(t, in.Buy)
	assert.True(t, in.Continue)

	systems.GetWave(e).Phase = cfg.PhaseGameOver
	assert.Equal(t, components.IntentData{}, ap.Intent(e))
}

func TestMenuSelectionWraps(t *testing.T) {
	_, e := newWorld(t)
	menu := systems.GetOrCreateMenu(e)
	assert.Equal(t, []components.MainMenuOption{
		components.MainMenuStart, components.MainMenuLegacy, components.MainMenuExit,
	}, menu.VisibleOptions)

	systems.MoveMenuSelection(menu, true, false)
	assert.Equal(t, 2, menu.SelectedIndex)
	systems.MoveMenuSelection(menu, false, true)
	assert.Equal(t, 0, menu.SelectedIndex)

	systems.SetMenuOptions(menu, true)
	assert.Equal(t, components.MainMenuContinue, menu.VisibleOptions[1])
	assert.Len(t, menu.VisibleOptions, 4)
}

func TestVolumeKeysOnlyWhilePaused(t *testing.T) {
	s, e := newWorld(t)
	audio := systems.GetAudio(e)
	start := audio.SFXVolume

	s.Tick(game.Input{Volume: 1})
	assert.Equal(t, start, audio.SFXVolume, "ignored during play")

	s.Tick(game.Input{Pause: true})
	s.Tick(game.Input{Volume: 1})
	assert.Equal(t, 0.75, audio.SFXVolume)
	s.Tick(game.Input{Volume: 1})
	s.Tick(game.Input{Volume: 1})
	assert.Equal(t, 1.0, audio.SFXVolume, "clamped at the top step")

	s.Tick(game.Input{Mute: true})
	assert.True(t, audio.Muted)
	assert.Zero(t, audio.SFXVolume)
	s.Tick(game.Input{Mute: true})
	assert.False(t, audio.Muted)
	assert.Equal(t, 1.0, audio.SFXVolume)
}
