package systems

import (
	"time"

	"github.com/automoto/pixelrpg/components"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func UpdateSimulation(ecs *ecs.ECS) {
	advanceSimulation(ecs, frameDelta)
}

// advanceSimulation runs every simulation tick due in dt. Slides freeze
// the world, and the clock restarts so no backlog fires afterwards.
func advanceSimulation(ecs *ecs.ECS, dt time.Duration) {
	entry, ok := levelEntry(ecs)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	if TransitionPhase(ecs).Sliding() {
		sim.Clock.Reset()
		return
	}

	fires := sim.Clock.Advance(dt)
	for i := 0; i < fires; i++ {
		Tick(ecs)
		if TransitionPhase(ecs).Sliding() {
			sim.Clock.Reset()
			return
		}
	}
}

// Tick is one simulation step: kinematics, locomotion, hints and the portal
// check.
func Tick(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	stepKinematics(ecs)
	updateLocomotion(ecs)
	updateHints(ecs)
	TryEnterPortal(ecs)

	if entry, ok := levelEntry(ecs); ok {
		components.Simulation.Get(entry).Ticks++
	}
	factory.SyncPlayerObject(ecs, player)
}
