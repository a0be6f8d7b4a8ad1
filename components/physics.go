package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Speed     float64 // current step length, ramps while a direction is held
	VelocityY float64

	// GroundProbe is the pre-movement check of every tick. OnGround starts
	// each tick equal to it and is overwritten by the gravity integrator on
	// gravity maps, so the two may disagree.
	GroundProbe bool
	OnGround    bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
