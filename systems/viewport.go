package systems

import (
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SetSurfaceSize records the display surface size reported by Layout. The
// rescale itself happens in UpdateViewport so it runs inside the update.
func SetSurfaceSize(ecs *ecs.ECS, width, height int) {
	if vp := getViewport(ecs); vp != nil {
		vp.SurfaceW, vp.SurfaceH = width, height
	}
}

// UpdateViewport rescales display geometry when the surface size changed.
// The rescale waits while a slide is running; the controller re-runs it
// when the new map has settled.
func UpdateViewport(ecs *ecs.ECS) {
	vp := getViewport(ecs)
	if vp == nil {
		return
	}
	if vp.SurfaceW == vp.AppliedW && vp.SurfaceH == vp.AppliedH {
		return
	}
	if TransitionPhase(ecs).Sliding() {
		return
	}
	factory.ApplyViewport(ecs)
}
