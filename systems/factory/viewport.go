package factory

import (
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// ApplyViewport recomputes the scale factors from the last reported
// surface size and regenerates all display-space geometry.
func ApplyViewport(ecs *ecs.ECS) {
	vp := mustViewport(ecs)
	vp.ScaleX, vp.ScaleY, vp.Uniform = gamemath.Scales(vp.SurfaceW, vp.SurfaceH, cfg.C.Width, cfg.C.Height)
	vp.AppliedW, vp.AppliedH = vp.SurfaceW, vp.SurfaceH
	vp.PlayerSize = gamemath.DisplaySize(cfg.Player.Size, vp.Uniform, cfg.Player.MinDisplaySize)

	RebuildSpace(ecs)
}
