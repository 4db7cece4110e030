package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// BeginTick clears the outputs of the previous tick. It runs while paused
// too, so a paused tick reports no sounds and no scroll.
func BeginTick(e *ecs.ECS) {
	audio := GetAudio(e)
	audio.PendingSFX = audio.PendingSFX[:0]
	GetCamera(e).Scroll = math.Vec2{}
}

// UpdateClock advances simulation time by one step.
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e)
	clock.Now += clock.Step
	clock.Tick++
}
