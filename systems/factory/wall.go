package factory

import (
	"github.com/automoto/pixelrpg/archetypes"
	"github.com/automoto/pixelrpg/components"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/automoto/pixelrpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid box already expressed in display coordinates.
func CreateWall(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	w, h := r.Width(), r.Height()
	obj := resolv.NewObject(r.X1, r.Y1, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// RebuildWalls regenerates every wall of the active map from its logical
// definition, scaling x and y independently.
func RebuildWalls(ecs *ecs.ECS) {
	removeTagged(ecs, tags.Wall)

	level := mustLevel(ecs)
	if level.Current == nil {
		return
	}
	vp := mustViewport(ecs)
	for _, r := range level.Current.Walls() {
		CreateWall(ecs, r.Scale(vp.ScaleX, vp.ScaleY))
	}
}

// WallRect returns the display-space rectangle of a resolv object.
func WallRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X1: obj.X, Y1: obj.Y, X2: obj.X + obj.W, Y2: obj.Y + obj.H}
}
