// Package gamemath holds the pure geometry used by the simulation: viewport
// scaling, clamping and rectangle overlap. It has no dependencies on
// ebitengine or donburi.
package gamemath

import "math"

// Rect is an axis-aligned rectangle given by its corners.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Scale maps a rectangle into display space, x by sx and y by sy.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X1: r.X1 * sx, Y1: r.Y1 * sy, X2: r.X2 * sx, Y2: r.Y2 * sy}
}

// Overlaps tests open-interval overlap. Rectangles that only share an edge
// do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X1 < b.X2 && a.X2 > b.X1 && a.Y1 < b.Y2 && a.Y2 > b.Y1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Scales returns the horizontal, vertical and uniform scale factors from the
// base resolution to the surface. An unmeasured surface (zero or negative
// dimension) falls back to the base resolution.
func Scales(surfaceW, surfaceH, baseW, baseH int) (sx, sy, uniform float64) {
	if surfaceW <= 0 {
		surfaceW = baseW
	}
	if surfaceH <= 0 {
		surfaceH = baseH
	}
	sx = float64(surfaceW) / float64(baseW)
	sy = float64(surfaceH) / float64(baseH)
	return sx, sy, math.Min(sx, sy)
}

// DisplaySize scales a logical sprite size uniformly, never below minSize.
func DisplaySize(base, uniform float64, minSize int) int {
	size := int(math.Round(base * uniform))
	if size < minSize {
		return minSize
	}
	return size
}
