package systems

import (
	"log"
	"math"
	"time"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/automoto/pixelrpg/timing"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// RequestTransition starts sliding to target with the player arriving at
// arrival. Requests are rejected, not queued, unless the controller is
// idle.
func RequestTransition(ecs *ecs.ECS, target string, arrival leveldata.Point) bool {
	t := getTransition(ecs)
	level := getLevel(ecs)
	if t == nil || level == nil || t.Phase != cfg.TransitionIdle {
		return false
	}
	if _, ok := level.Registry.Get(target); !ok {
		log.Printf("[transition] unknown target map %q", target)
		return false
	}

	t.Phase = cfg.TransitionSlidingOut
	t.Target = target
	t.Arrival = arrival
	startSlide(t, 0, -surfaceWidth(ecs))

	getOrCreateInput(ecs).PortalArmed = false

	log.Printf("[transition] %s -> %s", CurrentMapID(ecs), target)
	return true
}

func surfaceWidth(ecs *ecs.ECS) float64 {
	vp := getViewport(ecs)
	if vp == nil {
		return float64(cfg.C.Width)
	}
	w, _ := vp.Surface()
	return float64(w)
}

func startSlide(t *components.TransitionData, from, to float64) {
	t.Step = 0
	t.Offset = from
	t.Tween = gween.New(float32(from), float32(to), float32(cfg.Transition.Steps), ease.Linear)
	t.Clock = timing.NewCadence(cfg.Timing.TransitionStep)
}

func UpdateTransition(ecs *ecs.ECS) {
	advanceTransition(ecs, frameDelta)
}

// advanceTransition moves the controller through its phases. Each slide
// step is one fire of the step cadence, so a long frame runs several steps.
func advanceTransition(ecs *ecs.ECS, dt time.Duration) {
	t := getTransition(ecs)
	if t == nil {
		return
	}

	switch t.Phase {
	case cfg.TransitionSlidingOut:
		if stepSlide(t, dt) {
			t.Offset = -surfaceWidth(ecs)
			t.Phase = cfg.TransitionLoading
		}
	case cfg.TransitionLoading:
		loadTarget(ecs, t)
		t.Phase = cfg.TransitionSlidingIn
		startSlide(t, surfaceWidth(ecs), 0)
	case cfg.TransitionSlidingIn:
		if stepSlide(t, dt) {
			t.Offset = 0
			factory.ApplyViewport(ecs)
			t.Phase = cfg.TransitionCooldown
			t.Cooldown = timing.NewCadence(cfg.Timing.Cooldown)
		}
	case cfg.TransitionCooldown:
		if t.Cooldown.Advance(dt) > 0 {
			t.Phase = cfg.TransitionIdle
			t.Target = ""
		}
	}
}

// stepSlide runs the slide steps due in dt and reports whether the slide
// has finished.
func stepSlide(t *components.TransitionData, dt time.Duration) bool {
	fires := t.Clock.Advance(dt)
	for i := 0; i < fires && t.Step < cfg.Transition.Steps; i++ {
		v, _ := t.Tween.Update(1)
		t.Offset = float64(v)
		t.Step++
	}
	return t.Step >= cfg.Transition.Steps
}

func loadTarget(ecs *ecs.ECS, t *components.TransitionData) {
	level := getLevel(ecs)
	def, ok := level.Registry.Get(t.Target)
	if !ok {
		// The registry was swapped by a reload mid-slide; stay where we are.
		log.Printf("[transition] target %q vanished, staying on %s", t.Target, CurrentMapID(ecs))
		return
	}
	arrival := t.Arrival
	factory.LoadMap(ecs, def, &arrival)
	t.Count++
}

// portalTarget reports the neighbor the player is standing at, if any, and
// where they arrive on it. The left edge is checked first.
func portalTarget(ecs *ecs.ECS) (string, leveldata.Point, bool) {
	level := getLevel(ecs)
	player, ok := getPlayer(ecs)
	if level == nil || level.Current == nil || !ok {
		return "", leveldata.Point{}, false
	}
	p := components.Player.Get(player)
	def := level.Current
	size := cfg.Player.Size

	arrivalY := math.Floor(gamemath.Clamp(p.Y, 0, maxY()))
	switch {
	case def.Left.Open() && p.X <= def.Left.Trigger.X2:
		return def.Left.Target, leveldata.Point{X: float64(cfg.C.Width) - size - cfg.Transition.ArrivalMargin, Y: arrivalY}, true
	case def.Right.Open() && p.X+size >= def.Right.Trigger.X1:
		return def.Right.Target, leveldata.Point{X: cfg.Transition.ArrivalMargin, Y: arrivalY}, true
	}
	return "", leveldata.Point{}, false
}

// TryEnterPortal starts a transition when the portal intent is armed, the
// controller is idle and the player stands in an open edge trigger.
func TryEnterPortal(ecs *ecs.ECS) bool {
	input := getOrCreateInput(ecs)
	if !input.PortalArmed || TransitionPhase(ecs) != cfg.TransitionIdle {
		return false
	}
	target, arrival, ok := portalTarget(ecs)
	if !ok {
		return false
	}
	return RequestTransition(ecs, target, arrival)
}
