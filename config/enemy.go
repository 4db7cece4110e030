package config

import "time"

// CharacterType identifies the body a character is drawn with and, for
// enemies, which behaviour row of Enemy.Types it follows.
type CharacterType int

const (
	CharacterPlayer CharacterType = iota
	ZombieMelee
	JokerMelee
	ZombieShooter
	JokerShooter
)

func (c CharacterType) String() string {
	switch c {
	case CharacterPlayer:
		return "player"
	case ZombieMelee:
		return "zombie_melee"
	case JokerMelee:
		return "joker_melee"
	case ZombieShooter:
		return "zombie_shooter"
	case JokerShooter:
		return "joker_shooter"
	}
	return "unknown"
}

// EnemyTypeConfig contains behaviour parameters for one enemy type
type EnemyTypeConfig struct {
	Name    string
	Shooter bool

	// EngageRange is the distance beyond which the enemy keeps closing in.
	EngageRange float64
	Speed       float64
	SpeedJitter int
}

// EnemyConfig contains values shared by every non-player character
type EnemyConfig struct {
	Width  float64
	Height float64

	BaseHealth    int
	HealthPerWave int

	AttackRange float64
	MeleeDamage int

	ShootRange        float64
	ShotCooldown      time.Duration
	BulletSpeed       float64
	BulletSpeedJitter int
	BulletSize        float64
	BulletDamage      int

	StunCooldown time.Duration

	Types map[CharacterType]EnemyTypeConfig
}

// BossConfig contains boss scaling and cadence
type BossConfig struct {
	Scale            float64
	HealthMultiplier int
	HealthPerWave    int
	SpeedMultiplier  float64
	SpeedStep        float64 // added every SpeedStepWaves waves
	SpeedStepWaves   int
	ShotCooldown     time.Duration

	// Spread holds the angular offsets in degrees of a boss volley.
	Spread []float64

	// Waves before DoubleFromWave get one boss every EveryNWaves waves;
	// from DoubleFromWave on, every DoubleEveryNWaves-th wave gets two.
	EveryNWaves       int
	DoubleFromWave    int
	DoubleEveryNWaves int

	ShooterType CharacterType
	MeleeType   CharacterType

	CoinBase    int
	CoinPerWave int
	DropRolls   int
	DropScatter int
}

var Enemy EnemyConfig
var Boss BossConfig

// Count returns how many bosses wave spawns.
func (b BossConfig) Count(wave int) int {
	if wave >= b.DoubleFromWave {
		if wave%b.DoubleEveryNWaves == 0 {
			return 2
		}
		return 0
	}
	if wave%b.EveryNWaves == 0 {
		return 1
	}
	return 0
}

// EnemyType returns the behaviour row for t, falling back to ZombieMelee.
func EnemyType(t CharacterType) EnemyTypeConfig {
	if tc, ok := Enemy.Types[t]; ok {
		return tc
	}
	return Enemy.Types[ZombieMelee]
}

func init() {
	Enemy = EnemyConfig{
		Width:             96,
		Height:            96,
		BaseHealth:        100,
		HealthPerWave:     20,
		AttackRange:       60,
		MeleeDamage:       20,
		ShootRange:        500,
		ShotCooldown:      1000 * time.Millisecond,
		BulletSpeed:       7,
		BulletSpeedJitter: 1,
		BulletSize:        12,
		BulletDamage:      20,
		StunCooldown:      100 * time.Millisecond,
		Types: map[CharacterType]EnemyTypeConfig{
			ZombieMelee: {
				Name:        "Antonio Zombie",
				EngageRange: 50,
				Speed:       3,
				SpeedJitter: 1,
			},
			JokerMelee: {
				Name:        "Joker Zombie",
				EngageRange: 50,
				Speed:       3,
				SpeedJitter: 1,
			},
			ZombieShooter: {
				Name:        "Antonio Shooter",
				Shooter:     true,
				EngageRange: 500,
				Speed:       3,
				SpeedJitter: 1,
			},
			JokerShooter: {
				Name:        "Joker Shooter",
				Shooter:     true,
				EngageRange: 500,
				Speed:       3,
				SpeedJitter: 1,
			},
		},
	}

	Boss = BossConfig{
		Scale:             2,
		HealthMultiplier:  5,
		HealthPerWave:     50,
		SpeedMultiplier:   1.5,
		SpeedStep:         0.2,
		SpeedStepWaves:    3,
		ShotCooldown:      1500 * time.Millisecond,
		Spread:            []float64{-20, -10, 0, 10, 20},
		EveryNWaves:       3,
		DoubleFromWave:    6,
		DoubleEveryNWaves: 2,
		ShooterType:       JokerShooter,
		MeleeType:         ZombieMelee,
		CoinBase:          100,
		CoinPerWave:       20,
		DropRolls:         5,
		DropScatter:       50,
	}
}
