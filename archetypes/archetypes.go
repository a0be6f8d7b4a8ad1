package archetypes

import (
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Object,
		components.Sprite,
		components.Sheets,
		components.Attack,
		components.Economy,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Anchor,
	)
	Shop = newArchetype(
		tags.Shop,
		components.Anchor,
		components.Sprite,
	)
	// Level carries the world-wide singletons. The idle loop lives here so
	// the shop sign keeps its phase across map loads.
	Level = newArchetype(
		components.Level,
		components.Transition,
		components.Viewport,
		components.Simulation,
		components.IdleLoop,
		components.Hint,
		components.Dialog,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
