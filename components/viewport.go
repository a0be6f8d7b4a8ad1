package components

import (
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/yohamta/donburi"
)

// ViewportData holds the surface size reported by Layout and the scale
// factors derived from it.
type ViewportData struct {
	SurfaceW, SurfaceH int // latest reported size, 0 before first layout
	AppliedW, AppliedH int // size the scales below were computed for

	ScaleX, ScaleY, Uniform float64
	PlayerSize              int // display side of player, shop and attack sprites
}

var Viewport = donburi.NewComponentType[ViewportData]()

// Surface is the size the current scales apply to, falling back to the
// base resolution before the first layout.
func (v *ViewportData) Surface() (w, h int) {
	w, h = v.AppliedW, v.AppliedH
	if w <= 0 {
		w = cfg.C.Width
	}
	if h <= 0 {
		h = cfg.C.Height
	}
	return w, h
}

// ToDisplay converts a logical point to display coordinates.
func (v *ViewportData) ToDisplay(x, y float64) (float64, float64) {
	return x * v.ScaleX, y * v.ScaleY
}
