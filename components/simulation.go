package components

import (
	"github.com/automoto/pixelrpg/timing"
	"github.com/yohamta/donburi"
)

// SimulationData is the fixed-cadence clock of the kinematics tick.
type SimulationData struct {
	Clock timing.Cadence
	Ticks int
}

var Simulation = donburi.NewComponentType[SimulationData]()
