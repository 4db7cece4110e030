package game

import (
	"testing"
	"time"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/systems"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/automoto/chinchilla/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const step = 100 * time.Millisecond

var idle = Input{AimX: 900, AimY: 300}

// arena returns a walled floor of cols×rows tiles with the given marker
// cells.
func arena(t *testing.T, cols, rows int, markers map[[2]int]int) *leveldata.Grid {
	t.Helper()
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				cells[r][c] = leveldata.CodeWall
			}
		}
	}
	for at, code := range markers {
		cells[at[1]][at[0]] = code
	}
	g, err := leveldata.NewGrid(cells)
	require.NoError(t, err)
	return g
}

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithSeed(42), WithTickDuration(step)}, opts...)
	s := New(arena(t, 100, 60, nil), opts...)
	clearPickups(s)
	return s
}

// clearPickups flags the opening colas so they cannot heal the player.
func clearPickups(s *Session) {
	tags.Item.Each(s.ECS().World, func(e *donburi.Entry) {
		components.Item.Get(e).Removed = true
	})
}

func tickN(s *Session, n int, in Input) {
	for range n {
		s.Tick(in)
	}
}

func tickUntil(t *testing.T, s *Session, done func() bool) {
	t.Helper()
	for range 1000 {
		if done() {
			return
		}
		s.Tick(idle)
	}
	t.Fatal("condition never met")
}

func count(s *Session, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(s.ECS().World, func(*donburi.Entry) { n++ })
	return n
}

func enterShop(s *Session, coins int) {
	systems.GetWave(s.ECS()).Phase = cfg.PhaseShop
	systems.GetWallet(s.ECS()).Coins = coins
}

func TestNewStartsInCountdown(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, cfg.PhaseCountdown, s.Phase())
	assert.Equal(t, 1, s.Wave().Number)
	assert.Equal(t, cfg.Wave.InitialRequired, s.Wave().Required)
	assert.Equal(t, 3, s.Countdown())
	assert.Equal(t, 100, s.PlayerHealth())
	assert.Zero(t, s.Coins())

	tickN(s, 10, idle)
	assert.Equal(t, 2, s.Countdown())

	tickN(s, 20, idle)
	assert.Equal(t, cfg.PhaseInProgress, s.Phase())
	assert.Zero(t, s.Countdown())
}

func TestMeleeHitRespectsHitCooldown(t *testing.T) {
	s := newSession(t)
	factory.CreateEnemy(s.ECS(), cfg.ZombieMelee, 640, 300, 100)

	s.Tick(idle)
	assert.Equal(t, 80, s.PlayerHealth())
	assert.Contains(t, s.Events(), cfg.SoundPlayerHurt)

	tickN(s, 6, idle)
	assert.Equal(t, 80, s.PlayerHealth(), "hit cooldown blocks further melee hits")

	s.Tick(idle)
	assert.Equal(t, 60, s.PlayerHealth())
}

func TestBossFiresSpreadVolley(t *testing.T) {
	s := newSession(t)
	boss := factory.CreateBoss(s.ECS(), 6, 900, 300)
	require.True(t, components.Enemy.Get(boss).Boss)

	tickN(s, 14, idle)
	assert.Zero(t, count(s, tags.EnemyBullet))

	s.Tick(idle)
	assert.Equal(t, len(cfg.Boss.Spread), count(s, tags.EnemyBullet))
	assert.Contains(t, s.Events(), cfg.SoundEnemyShot)
}

func TestKillIsCreditedOnce(t *testing.T) {
	s := newSession(t)
	en := factory.CreateEnemy(s.ECS(), cfg.ZombieMelee, 1200, 300, 100)
	components.Health.Get(en).Damage(500)
	assert.Zero(t, components.Health.Get(en).Current, "health never goes negative")

	s.Tick(idle)
	assert.False(t, components.Character.Get(en).Alive)
	assert.Equal(t, 1, s.Kills())
	assert.Equal(t, 1, s.Combo().Count)
	assert.Equal(t, cfg.Combo.KillBonus, s.Coins())

	s.Tick(idle)
	assert.Equal(t, 1, s.Kills())
	assert.Equal(t, cfg.Combo.KillBonus, s.Coins())

	tickN(s, 3, idle)
	assert.Zero(t, count(s, tags.Enemy), "corpse is removed after the death linger")
}

func TestComboWindow(t *testing.T) {
	s := newSession(t)
	e := s.ECS()

	systems.RegisterKill(e)
	s.Tick(idle)
	combo := systems.RegisterKill(e)
	assert.Equal(t, 2, combo.Count)
	assert.InDelta(t, 1.2, combo.Multiplier, 1e-9)

	tickN(s, int(cfg.Combo.Window/step)+1, idle)
	assert.Zero(t, s.Combo().Count)
	assert.Equal(t, 1.0, s.Combo().Multiplier)

	combo = systems.RegisterKill(e)
	assert.Equal(t, 1, combo.Count)
	assert.Equal(t, 1.0, combo.Multiplier)
}

func TestWaveCompletionAndContinue(t *testing.T) {
	s := newSession(t)
	tickUntil(t, s, func() bool { return s.Phase() == cfg.PhaseInProgress })

	wave := systems.GetWave(s.ECS())
	wave.Spawned = wave.Required
	s.Tick(idle)

	assert.Equal(t, cfg.PhaseComplete, s.Phase())
	assert.Equal(t, cfg.Wave.CompletionBonusPerWave, s.Coins())
	assert.Equal(t, 1, s.Wave().Survived)
	assert.Contains(t, s.Events(), cfg.SoundWaveComplete)
	assert.False(t, s.Continue(), "continue only works in the shop")

	tickUntil(t, s, func() bool { return s.Phase() == cfg.PhaseShop })
	require.True(t, s.Continue())

	assert.Equal(t, cfg.PhaseCountdown, s.Phase())
	assert.Equal(t, 2, s.Wave().Number)
	assert.Equal(t, 9, s.Wave().Required)
	assert.Equal(t, 2800*time.Millisecond, s.Wave().SpawnInterval)
	assert.Zero(t, s.Wave().Spawned)
	assert.False(t, s.Wave().BossSpawned)
	assert.Equal(t, cfg.Items.ColasPerWave, count(s, tags.Item))
	assert.False(t, s.Continue())
}

// sturdy gives the player enough health to outlast any test.
func sturdy(s *Session) {
	pe, _ := systems.PlayerEntry(s.ECS())
	*components.Health.Get(pe) = components.HealthData{Current: 1_000_000, Max: 1_000_000}
}

func TestWaveWaitsForLastEnemy(t *testing.T) {
	s := newSession(t)
	sturdy(s)
	tickUntil(t, s, func() bool { return s.Phase() == cfg.PhaseInProgress })

	wave := systems.GetWave(s.ECS())
	wave.Spawned = wave.Required
	en := factory.CreateEnemy(s.ECS(), cfg.ZombieMelee, 1100, 300, 1_000_000)

	tickN(s, 10, idle)
	assert.Equal(t, cfg.PhaseInProgress, s.Phase(), "a living enemy holds the wave open")
	assert.Zero(t, s.Coins())

	components.Health.Get(en).Current = 0
	s.Tick(idle)
	assert.Equal(t, cfg.PhaseComplete, s.Phase())
	assert.Equal(t, cfg.Combo.KillBonus+cfg.Wave.CompletionBonusPerWave, s.Coins())
}

func TestFirstWaveScenario(t *testing.T) {
	s := newSession(t)
	sturdy(s)
	tickUntil(t, s, func() bool { return s.Phase() == cfg.PhaseInProgress })

	for range 1000 {
		if s.Phase() != cfg.PhaseInProgress {
			break
		}
		coins := s.Coins()
		kills := s.Kills()
		s.Tick(idle)

		assert.LessOrEqual(t, systems.AliveEnemies(s.ECS()), 1, "wave 1 spawns one enemy per batch")
		if s.Kills() == cfg.Wave.InitialRequired && kills < s.Kills() {
			require.Equal(t, cfg.PhaseComplete, s.Phase(), "the fifth death completes the wave")
			pay := int(float64(cfg.Combo.KillBonus) * s.Combo().Multiplier)
			assert.Equal(t, coins+pay+s.Wave().Number*cfg.Wave.CompletionBonusPerWave, s.Coins())
		}

		for _, en := range systems.EnemiesInOrder(s.ECS()) {
			if components.Character.Get(en).Alive {
				components.Health.Get(en).Current = 0
			}
		}
	}

	assert.Equal(t, cfg.PhaseComplete, s.Phase())
	assert.Equal(t, 5, s.Wave().Spawned)
	assert.Equal(t, 5, s.Kills())
	assert.Equal(t, 1, s.Wave().Survived)
	assert.Zero(t, count(s, tags.Boss))
}

func TestBossCadence(t *testing.T) {
	tests := []struct {
		wave   int
		bosses int
		kind   cfg.CharacterType
	}{
		{2, 0, cfg.CharacterPlayer},
		{3, 1, cfg.ZombieMelee},
		{6, 2, cfg.JokerShooter},
	}
	for _, tt := range tests {
		s := newSession(t)
		sturdy(s)
		systems.GetWave(s.ECS()).Number = tt.wave - 1
		enterShop(s, 0)
		require.True(t, s.Continue())
		require.Equal(t, tt.wave, s.Wave().Number)

		tickUntil(t, s, func() bool { return s.Phase() == cfg.PhaseInProgress })
		tickN(s, 5, idle)
		assert.Zero(t, count(s, tags.Boss), "wave %d: no boss before the first batch", tt.wave)

		tickUntil(t, s, func() bool { return s.Wave().Spawned >= 1 })
		assert.Equal(t, tt.bosses, count(s, tags.Boss), "wave %d", tt.wave)
		assert.Equal(t, tt.bosses > 0, s.Wave().BossSpawned, "wave %d", tt.wave)
		tags.Boss.Each(s.ECS().World, func(en *donburi.Entry) {
			assert.Equal(t, tt.kind, components.Character.Get(en).Type, "wave %d", tt.wave)
			assert.Equal(t, 500+50*tt.wave, components.Health.Get(en).Max, "wave %d", tt.wave)
			assert.Equal(t, tt.wave, components.Enemy.Get(en).BossWave)
		})
	}
}

func TestWaveSpawnsUpToQuota(t *testing.T) {
	s := newSession(t)
	pe, _ := systems.PlayerEntry(s.ECS())
	*components.Health.Get(pe) = components.HealthData{Current: 1_000_000, Max: 1_000_000}
	tickUntil(t, s, func() bool { return s.Wave().Spawned >= s.Wave().Required })

	assert.Equal(t, s.Wave().Required, s.Wave().Spawned)
	assert.LessOrEqual(t, count(s, tags.Enemy), cfg.Wave.MaxAlive(1))
	assert.Zero(t, count(s, tags.Boss), "no boss in wave 1")
}

func TestPurchase(t *testing.T) {
	s := newSession(t)
	e := s.ECS()
	systems.GetWallet(e).Coins = 1000
	assert.False(t, s.Purchase(cfg.SKUWeaponUpgrade), "shop is closed")
	assert.Equal(t, 1000, s.Coins())

	enterShop(s, 100)
	require.True(t, s.Purchase(cfg.SKUWeaponUpgrade))
	wallet := systems.GetWallet(e)
	assert.Equal(t, 50, wallet.Coins)
	assert.Equal(t, 2, wallet.WeaponLevel)
	assert.Equal(t, cfg.Weapon.UpgradeDamage, wallet.DamageBonus)
	assert.False(t, s.Purchase(cfg.SKUWeaponUpgrade), "level 2 costs 100")

	assert.False(t, s.Purchase(cfg.SKUHealth), "health is full")
	pe, _ := systems.PlayerEntry(e)
	components.Health.Get(pe).Current = 90
	enterShop(s, 200)
	require.True(t, s.Purchase(cfg.SKUHealth))
	assert.Equal(t, 100, s.PlayerHealth(), "heal is capped at max")
	assert.Equal(t, 170, s.Coins())

	components.Health.Get(pe).Current = 10
	require.True(t, s.Purchase(cfg.SKUFullHeal))
	assert.Equal(t, 100, s.PlayerHealth())
	assert.Equal(t, 90, s.Coins())

	assert.False(t, s.Purchase(cfg.SKULaserSight))
	enterShop(s, 400)
	_, ok := s.AimLine()
	assert.False(t, ok)
	require.True(t, s.Purchase(cfg.SKULaserSight))
	assert.False(t, s.Purchase(cfg.SKULaserSight), "laser sight is bought once")
	assert.Equal(t, 200, s.Coins())
	s.Tick(idle)
	line, ok := s.AimLine()
	require.True(t, ok)
	assert.InDelta(t, 630, line.X0, 1e-9)
	assert.InDelta(t, 1430, line.X1, 1e-9)
}

func TestPauseFreezesClock(t *testing.T) {
	s := newSession(t)

	s.Tick(Input{Pause: true})
	assert.Zero(t, s.Now())
	tickN(s, 5, idle)
	assert.Zero(t, s.Now())

	s.Tick(Input{Pause: true})
	assert.Equal(t, step, s.Now())
}

func TestDeathEndsRunAndRestartResets(t *testing.T) {
	s := newSession(t)
	tickN(s, 5, idle)
	pe, _ := systems.PlayerEntry(s.ECS())
	components.Health.Get(pe).Current = 0

	s.Tick(idle)
	assert.Equal(t, cfg.PhaseGameOver, s.Phase())
	assert.Contains(t, s.Events(), cfg.SoundDeath)

	now := s.Now()
	tickN(s, 5, idle)
	assert.Equal(t, now, s.Now(), "the world freezes at game over")
	s.Tick(Input{Pause: true})
	assert.False(t, systems.GetPause(s.ECS()).IsPaused)

	s.Tick(Input{Restart: true})
	assert.Equal(t, cfg.PhaseCountdown, s.Phase())
	assert.Equal(t, 100, s.PlayerHealth())
	assert.Equal(t, step, s.Now())
}

func TestResetMatchesNew(t *testing.T) {
	s := newSession(t)
	fresh := newSession(t)

	tickN(s, 80, Input{Fire: true, MoveRight: true, AimX: 1000, AimY: 300})
	systems.GetWallet(s.ECS()).Coins = 77
	s.Reset()
	clearPickups(s)

	assert.Equal(t, fresh.Snapshot(), s.Snapshot())
	assert.Equal(t, count(fresh, tags.Item), count(s, tags.Item))
	assert.Zero(t, count(s, tags.Enemy))
}

func TestSameSeedSameRun(t *testing.T) {
	a := New(arena(t, 100, 60, nil), WithSeed(7), WithTickDuration(step))
	b := New(arena(t, 100, 60, nil), WithSeed(7), WithTickDuration(step))

	for i := range 120 {
		in := Input{Fire: i%2 == 0, MoveUp: i%10 < 5, MoveDown: i%10 >= 5, AimX: 900, AimY: 200}
		a.Tick(in)
		b.Tick(in)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, count(a, tags.Enemy), count(b, tags.Enemy))
	assert.Equal(t, count(a, tags.Bullet), count(b, tags.Bullet))
}

func TestLegacyModeSpawnsFromMarkers(t *testing.T) {
	grid := arena(t, 100, 60, map[[2]int]int{
		{70, 10}: leveldata.CodeMeleeSpawn,
		{80, 40}: leveldata.CodeShooterSpawn,
		{20, 50}: leveldata.CodePickupSpawn,
	})
	s := New(grid, WithSeed(1), WithMode(ModeLegacy), WithTickDuration(step))

	assert.Equal(t, cfg.PhaseIdle, s.Phase())
	assert.Equal(t, 2, count(s, tags.Enemy))
	assert.Equal(t, 1+cfg.Items.ColasPerWave, count(s, tags.Item))

	tickN(s, 60, idle)
	assert.Equal(t, cfg.PhaseIdle, s.Phase())
	assert.Zero(t, s.Wave().Spawned, "the wave director stays idle")
}

func TestAutopilotRunIsReproducible(t *testing.T) {
	play := func() *Session {
		s := New(arena(t, 100, 60, nil), WithSeed(11), WithTickDuration(step))
		pilot := systems.NewAutopilot(11)
		for range 400 {
			s.Tick(pilot.Intent(s.ECS()))
		}
		return s
	}

	a, b := play(), play()
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, count(a, tags.Enemy), count(b, tags.Enemy))
	assert.Greater(t, a.Kills(), 0, "the autopilot shoots back")
}
