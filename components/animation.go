package components

import (
	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/assets/animations"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/timing"
	"github.com/yohamta/donburi"
)

// AttackData is the one-shot attack overlay. While Active, locomotion and
// movement input are frozen.
type AttackData struct {
	Active         bool
	Frame          int
	Sheet          *assets.Sheet
	SavedDirection cfg.Direction
	SavedFrame     int
	Clock          timing.Cadence
	Completed      int // finished sequences
}

var Attack = donburi.NewComponentType[AttackData]()

// IdleLoopData drives an ambient looping sprite such as the shop sign.
type IdleLoopData struct {
	Animation *animations.Animation
}

var IdleLoop = donburi.NewComponentType[IdleLoopData]()
