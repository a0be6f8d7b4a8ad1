package systems

import (
	"github.com/automoto/pixelrpg/components"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/automoto/pixelrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collides reports whether the player box placed at logical (x, y) would
// overlap any wall of the active map. The test runs in display space with
// open intervals, so touching an edge is not a collision.
func Collides(ecs *ecs.ECS, x, y float64) bool {
	vp := getViewport(ecs)
	if vp == nil {
		return false
	}

	px, py := vp.ToDisplay(x, y)
	size := float64(vp.PlayerSize)
	box := gamemath.Rect{X1: px, Y1: py, X2: px + size, Y2: py + size}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return collidesAny(ecs, box)
	}
	space := components.Space.Get(spaceEntry)

	// resolv registers objects over [X, X+W-1], so sub-pixel overlaps can
	// land one cell past the registered span. Pad the query by a pixel on
	// every side and let the exact test decide.
	cx1, cy1 := space.WorldToSpace(box.X1-1, box.Y1-1)
	cx2, cy2 := space.WorldToSpace(box.X2+1, box.Y2+1)
	for cy := cy1; cy <= cy2; cy++ {
		for cx := cx1; cx <= cx2; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o.HasTags(tags.ResolvSolid) && gamemath.Overlaps(box, factory.WallRect(o)) {
					return true
				}
			}
		}
	}
	return false
}

// collidesAny is the linear scan used before a space exists.
func collidesAny(ecs *ecs.ECS, box gamemath.Rect) bool {
	hit := false
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		if hit {
			return
		}
		if obj := components.Object.Get(e).Object; obj != nil {
			hit = gamemath.Overlaps(box, factory.WallRect(obj))
		}
	})
	return hit
}
