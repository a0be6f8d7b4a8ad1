package factory

import (
	"github.com/automoto/pixelrpg/components"
	"github.com/automoto/pixelrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func mustLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		panic("level entity not created")
	}
	return components.Level.Get(entry)
}

func mustViewport(ecs *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		panic("level entity not created")
	}
	return components.Viewport.Get(entry)
}

func mustIdleLoop(ecs *ecs.ECS) *components.IdleLoopData {
	entry, ok := components.IdleLoop.First(ecs.World)
	if !ok {
		panic("level entity not created")
	}
	return components.IdleLoop.Get(entry)
}

func playerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// removeTagged destroys every entity carrying tag, taking collision boxes
// out of the space first.
func removeTagged(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var doomed []donburi.Entity
	tag.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
				obj.Space.Remove(obj)
			}
		}
		doomed = append(doomed, e.Entity())
	})
	for _, entity := range doomed {
		ecs.World.Remove(entity)
	}
}
