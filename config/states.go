package config

// Direction is the facing of the player. DirNone is only used for
// "no horizontal key pressed yet".
type Direction int

const (
	DirNone Direction = iota
	DirDown
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// TransitionPhase is the state of the map transition controller.
type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionSlidingOut
	TransitionLoading
	TransitionSlidingIn
	TransitionCooldown
)

func (p TransitionPhase) String() string {
	switch p {
	case TransitionSlidingOut:
		return "sliding-out"
	case TransitionLoading:
		return "loading"
	case TransitionSlidingIn:
		return "sliding-in"
	case TransitionCooldown:
		return "cooldown"
	}
	return "idle"
}

// Sliding reports whether the phase freezes the simulation tick.
func (p TransitionPhase) Sliding() bool {
	return p == TransitionSlidingOut || p == TransitionLoading || p == TransitionSlidingIn
}
