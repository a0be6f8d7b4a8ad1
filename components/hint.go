package components

import "github.com/yohamta/donburi"

// HintData is the on-screen prompt recomputed every simulation tick.
type HintData struct {
	Text    string // "[E] Talk" / "[E] Shop", empty when nothing is near
	X, Y    float64
	Portal  string // "[W] Enter" shown above the player, empty without a portal
	PortalX float64
	PortalY float64
}

var Hint = donburi.NewComponentType[HintData]()
