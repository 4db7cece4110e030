package systems

import (
	"math/rand"

	"github.com/automoto/chinchilla/components"
	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/shared/gamemath"
	"github.com/automoto/chinchilla/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	autopilotKiteDistance   = 250.0
	autopilotThreatRadius   = 120.0
	autopilotMinDecision    = 30
	autopilotDecisionJitter = 60
)

// Autopilot plays the arena without a human: it shoots the nearest enemy,
// backs off from anything too close, dashes out of enemy fire and spends
// its coins in the shop. It keeps its own random source so driving a
// session never disturbs the session's.
type Autopilot struct {
	rng           *rand.Rand
	fireHeld      bool
	strafe        float64
	decisionTimer int
}

// NewAutopilot returns an autopilot whose strafing follows seed.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed)), strafe: 1}
}

type targetInfo struct {
	x, y     float64
	distance float64
}

// Intent decides the next tick of input for the session in e.
func (a *Autopilot) Intent(e *ecs.ECS) components.IntentData {
	switch GetWave(e).Phase {
	case cfg.PhaseShop:
		return a.shop(e)
	case cfg.PhaseGameOver:
		return components.IntentData{}
	}

	pe, ok := PlayerEntry(e)
	if !ok {
		return components.IntentData{}
	}
	px, py := components.Object.Get(pe).Rect().Center()
	px, py = WorldToScreen(e, px, py)

	var in components.IntentData
	target, found := findNearestEnemy(e, px, py)
	if found {
		in.AimX, in.AimY = target.x, target.y
		// Release every other tick so semi-automatic fire keeps shooting.
		in.Fire = !a.fireHeld
		a.fireHeld = in.Fire
	} else {
		a.fireHeld = false
	}

	if a.decisionTimer > 0 {
		a.decisionTimer--
	} else {
		if a.rng.Intn(2) == 0 {
			a.strafe = -a.strafe
		}
		a.decisionTimer = autopilotMinDecision + a.rng.Intn(autopilotDecisionJitter)
	}

	if found && target.distance < autopilotKiteDistance {
		setMove(&in, px-target.x, py-target.y)
	} else if found {
		// Circle the target.
		setMove(&in, -(target.y-py)*a.strafe, (target.x-px)*a.strafe)
	}

	in.Dash = threatened(e, px, py)
	return in
}

// shop buys the first affordable offer, one per tick, then continues.
func (a *Autopilot) shop(e *ecs.ECS) components.IntentData {
	a.fireHeld = false
	for slot, sku := range cfg.SKUs {
		if CanAfford(e, sku) {
			return components.IntentData{Buy: slot + 1}
		}
	}
	return components.IntentData{Continue: true}
}

// findNearestEnemy returns the screen centre of the closest living enemy.
// Ties go to the oldest enemy.
func findNearestEnemy(e *ecs.ECS, px, py float64) (targetInfo, bool) {
	var best targetInfo
	found := false
	for _, entry := range EnemiesInOrder(e) {
		if !components.Character.Get(entry).Alive {
			continue
		}
		x, y := components.Object.Get(entry).Rect().Center()
		x, y = WorldToScreen(e, x, y)
		d := gamemath.Distance(px, py, x, y)
		if !found || d < best.distance {
			best = targetInfo{x: x, y: y, distance: d}
			found = true
		}
	}
	return best, found
}

// threatened reports whether an enemy bullet is within the threat radius.
func threatened(e *ecs.ECS, px, py float64) bool {
	hit := false
	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		if hit || components.Projectile.Get(entry).Removed {
			return
		}
		x, y := components.Object.Get(entry).Rect().Center()
		x, y = WorldToScreen(e, x, y)
		hit = gamemath.Distance(px, py, x, y) < autopilotThreatRadius
	})
	return hit
}

func setMove(in *components.IntentData, dx, dy float64) {
	const slack = 1.0
	in.MoveLeft = dx < -slack
	in.MoveRight = dx > slack
	in.MoveUp = dy < -slack
	in.MoveDown = dy > slack
}
