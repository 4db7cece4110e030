package factory

import (
	"math"

	"github.com/automoto/chinchilla/archetypes"
	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/shared/logger"
	"github.com/automoto/chinchilla/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a normal enemy of type t centred on (cx, cy).
func CreateEnemy(ecs *ecs.ECS, t cfg.CharacterType, cx, cy float64, health int) *donburi.Entry {
	return spawnEnemy(ecs, t, cx, cy, health, 1, components.EnemyData{SpeedMultiplier: 1})
}

// CreateBoss spawns the boss of the given wave. Shooter and melee bosses
// alternate every Boss.EveryNWaves waves.
func CreateBoss(ecs *ecs.ECS, wave int, cx, cy float64) *donburi.Entry {
	t := cfg.Boss.MeleeType
	if (wave/cfg.Boss.EveryNWaves)%2 == 0 {
		t = cfg.Boss.ShooterType
	}
	health := cfg.Enemy.BaseHealth*cfg.Boss.HealthMultiplier + wave*cfg.Boss.HealthPerWave

	boss := spawnEnemy(ecs, t, cx, cy, health, cfg.Boss.Scale, components.EnemyData{
		Boss:            true,
		BossWave:        wave,
		SpeedMultiplier: BossSpeedMultiplier(wave),
	}, tags.Boss)

	logger.Log.WithFields(logrus.Fields{
		"wave":   wave,
		"type":   t.String(),
		"health": health,
	}).Info("boss spawned")

	return boss
}

// BossSpeedMultiplier returns the movement scale of a boss spawned in wave.
func BossSpeedMultiplier(wave int) float64 {
	steps := math.Floor(float64(wave) / float64(cfg.Boss.SpeedStepWaves))
	return cfg.Boss.SpeedMultiplier + steps*cfg.Boss.SpeedStep
}

func spawnEnemy(ecs *ecs.ECS, t cfg.CharacterType, cx, cy float64, health int, scale float64, data components.EnemyData, extra ...donburi.IComponentType) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	r := gamemath.RectFromCenter(cx, cy, cfg.Enemy.Width*scale, cfg.Enemy.Height*scale)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, "character", tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, enemy, obj)

	now := components.Clock.Get(components.Clock.MustFirst(ecs.World)).Now
	components.Character.SetValue(enemy, components.CharacterData{
		Type:       t,
		Alive:      true,
		LastHit:    now,
		LastAttack: now,
		LastFrame:  now,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	data.Seq = nextSeq(ecs)
	components.Enemy.SetValue(enemy, data)

	return enemy
}

// RestoreEnemy respawns a saved enemy at r with its state as it was.
func RestoreEnemy(ecs *ecs.ECS, r gamemath.Rect, char components.CharacterData, health components.HealthData, data components.EnemyData) *donburi.Entry {
	var extra []donburi.IComponentType
	if data.Boss {
		extra = append(extra, tags.Boss)
	}
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, "character", tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, enemy, obj)

	components.Character.SetValue(enemy, char)
	components.Health.SetValue(enemy, health)
	components.Enemy.SetValue(enemy, data)
	return enemy
}
