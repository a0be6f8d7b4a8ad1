package factory

import (
	"github.com/automoto/pixelrpg/archetypes"
	"github.com/automoto/pixelrpg/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the resolv broadphase cell edge in display pixels.
const SpaceCellSize = 32

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// RebuildSpace replaces the broadphase with one sized for the current
// viewport, re-creates the display-space walls of the active map and
// re-registers the player box at its display size.
func RebuildSpace(ecs *ecs.ECS) {
	vp := mustViewport(ecs)

	if entry, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(entry.Entity())
	}
	// One spare cell on each axis so boxes touching the far edge stay inside.
	w, h := vp.Surface()
	CreateSpace(ecs, roundUpCells(w), roundUpCells(h), SpaceCellSize, SpaceCellSize)

	RebuildWalls(ecs)

	if player, ok := playerEntry(ecs); ok {
		placePlayerObject(ecs, player)
	}
}

func roundUpCells(n int) int {
	return (n/SpaceCellSize + 2) * SpaceCellSize
}
