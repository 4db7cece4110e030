package systems

import (
	"math"
	"time"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/leveldata"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCountdown starts the wave once the countdown has run out.
func UpdateCountdown(e *ecs.ECS) {
	wave := GetWave(e)
	if wave.Phase != cfg.PhaseCountdown {
		return
	}
	clock := GetClock(e)
	if clock.Since(wave.PhaseStart) < cfg.Wave.CountdownDuration {
		return
	}
	wave.Phase = cfg.PhaseInProgress
	wave.SpawnTimer = clock.Now

	logger.Log.WithFields(logrus.Fields{
		"wave":     wave.Number,
		"required": wave.Required,
		"interval": wave.SpawnInterval,
	}).Info("wave started")
}

// CountdownValue returns the whole seconds left on the countdown as shown
// to the player.
func CountdownValue(e *ecs.ECS) int {
	wave := GetWave(e)
	if wave.Phase != cfg.PhaseCountdown {
		return 0
	}
	elapsed := GetClock(e).Since(wave.PhaseStart)
	return int(cfg.Wave.CountdownDuration/time.Second) - int(elapsed/time.Second)
}

// UpdateWaves spawns the running wave's batches and bosses and moves a
// completed wave on to the shop after the celebration.
func UpdateWaves(e *ecs.ECS) {
	wave := GetWave(e)
	clock := GetClock(e)

	switch wave.Phase {
	case cfg.PhaseInProgress:
		spawnBatch(e, wave, clock)
		spawnBosses(e, wave)
	case cfg.PhaseComplete:
		if clock.Since(wave.PhaseStart) >= cfg.Wave.CelebrationDuration {
			wave.Phase = cfg.PhaseShop
			logger.Log.WithField("wave", wave.Number).Info("shop opened")
		}
	}
}

func spawnBatch(e *ecs.ECS, wave *components.WaveData, clock *components.ClockData) {
	alive := AliveEnemies(e)
	maxAlive := cfg.Wave.MaxAlive(wave.Number)
	if clock.Since(wave.SpawnTimer) < wave.SpawnInterval || alive >= maxAlive || wave.Spawned >= wave.Required {
		return
	}

	count := min(cfg.Wave.BatchSize(wave.Number), wave.Required-wave.Spawned, maxAlive-alive)
	for range count {
		spawnWaveEnemy(e, wave.Number)
		wave.Spawned++
	}
	wave.SpawnTimer = clock.Now

	logger.Log.WithFields(logrus.Fields{
		"wave":    wave.Number,
		"count":   count,
		"spawned": wave.Spawned,
	}).Debug("spawned batch")
}

func spawnBosses(e *ecs.ECS, wave *components.WaveData) {
	if wave.BossSpawned || wave.Spawned < 1 {
		return
	}
	count := cfg.Boss.Count(wave.Number)
	if count == 0 {
		return
	}
	for range count {
		x, y := SpawnPosition(e)
		factory.CreateBoss(e, wave.Number, x, y)
	}
	wave.BossSpawned = true
	TriggerScreenShake(e, cfg.Effects.ShakeBossSpawn+float64(count)*cfg.Effects.ShakeBossSpawnStep)
	PlaySFX(e, cfg.SoundBossSpawn)
}

// spawnWaveEnemy places one normal enemy. Health grows with the wave and
// so does the chance of a shooter.
func spawnWaveEnemy(e *ecs.ECS, n int) {
	x, y := SpawnPosition(e)
	session := GetSession(e)

	health := cfg.Enemy.BaseHealth + (n-1)*cfg.Enemy.HealthPerWave
	t := cfg.JokerShooter
	if session.Rand.Float64() >= cfg.Wave.ShooterChance(n) {
		t = []cfg.CharacterType{cfg.ZombieMelee, cfg.JokerMelee}[session.Rand.Intn(2)]
	}
	factory.CreateEnemy(e, t, x, y, health)
}

// SpawnPosition samples a world position around the player: a random
// distance and angle, clamped inside the screen margins and clear of
// obstacles. After Wave.SpawnAttempts misses it returns the screen centre.
func SpawnPosition(e *ecs.ECS) (float64, float64) {
	session := GetSession(e)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	var px, py float64
	if pe, ok := PlayerEntry(e); ok {
		px, py = components.Object.Get(pe).Rect().Center()
		px, py = WorldToScreen(e, px, py)
	}

	for range cfg.Wave.SpawnAttempts {
		d := float64(session.Between(cfg.Wave.SpawnDistanceMin, cfg.Wave.SpawnDistanceMax))
		a := session.Rand.Float64() * 2 * math.Pi
		x := clamp(px+math.Cos(a)*d, cfg.Wave.SpawnMarginX, w-cfg.Wave.SpawnMarginX)
		y := clamp(py+math.Sin(a)*d, cfg.Wave.SpawnMarginTop, h-cfg.Wave.SpawnMarginBottom)
		wx, wy := ScreenToWorld(e, x, y)
		if ValidSpawn(e, wx, wy) {
			return wx, wy
		}
	}

	logger.Log.Debug("spawn position fallback to screen centre")
	return ScreenToWorld(e, float64(cfg.C.Width/2), float64(cfg.C.Height/2))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// UpdateWaveCompletion completes the running wave once its quota has
// spawned and no enemy is left standing.
func UpdateWaveCompletion(e *ecs.ECS) {
	wave := GetWave(e)
	if !wave.InProgress() {
		return
	}
	if wave.Spawned < wave.Required || LivingEnemies(e) > 0 {
		return
	}

	wave.Phase = cfg.PhaseComplete
	wave.PhaseStart = GetClock(e).Now
	wave.Survived++
	bonus := wave.Number * cfg.Wave.CompletionBonusPerWave
	GetWallet(e).Coins += bonus
	TriggerCelebration(e)
	PlaySFX(e, cfg.SoundWaveComplete)

	logger.Log.WithFields(logrus.Fields{
		"wave":  wave.Number,
		"bonus": bonus,
	}).Info("wave complete")
}

// ContinueWave leaves the shop for the next wave's countdown. It reports
// false outside the shop.
func ContinueWave(e *ecs.ECS) bool {
	wave := GetWave(e)
	if wave.Phase != cfg.PhaseShop {
		return false
	}
	now := GetClock(e).Now

	wave.Number++
	wave.Spawned = 0
	wave.BossSpawned = false
	wave.Required = cfg.Wave.Required(wave.Number)
	wave.SpawnInterval = cfg.Wave.Interval(wave.Number)
	wave.Phase = cfg.PhaseCountdown
	wave.PhaseStart = now

	SpawnInitialColas(e)
	GetPowerUps(e).LastColaSpawn = now
	LockFire(e)

	logger.Log.WithFields(logrus.Fields{
		"wave":     wave.Number,
		"required": wave.Required,
		"interval": wave.SpawnInterval,
	}).Info("next wave")
	return true
}

// SpawnFromMarkers populates the arena from the level's spawn markers:
// melee and shooter enemies on their cells and inert coins scattered over
// the arena.
func SpawnFromMarkers(e *ecs.ECS) {
	tm := GetTileMap(e)
	session := GetSession(e)
	b := tm.Bounds()
	inset := tm.TileSize

	for _, s := range tm.Spawns {
		switch s.Kind {
		case leveldata.SpawnMelee:
			factory.CreateEnemy(e, cfg.ZombieMelee, s.X, s.Y, cfg.Enemy.BaseHealth)
		case leveldata.SpawnShooter:
			factory.CreateEnemy(e, cfg.JokerShooter, s.X, s.Y, cfg.Enemy.BaseHealth)
		case leveldata.SpawnPickup:
			x := float64(session.Between(int(b.X+inset), int(b.X+b.W-inset)))
			y := float64(session.Between(int(b.Y+inset), int(b.Y+b.H-inset)))
			factory.CreateItem(e, cfg.ItemCoin, x, y, cfg.Items.LevelCoinValue)
		}
	}
}
