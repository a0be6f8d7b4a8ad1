package components

import (
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/automoto/pixelrpg/timing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData is the single map-transition controller. Anything other
// than TransitionIdle excludes a new transition and attack start.
type TransitionData struct {
	Phase   cfg.TransitionPhase
	Target  string
	Arrival leveldata.Point

	// Offset is the horizontal display shift applied to every world element
	// while sliding.
	Offset float64
	Step   int
	Tween  *gween.Tween
	Clock  timing.Cadence

	Cooldown timing.Cadence
	Count    int // completed transitions
}

var Transition = donburi.NewComponentType[TransitionData]()
