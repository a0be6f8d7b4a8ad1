package systems

import (
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/tags"
	"github.com/automoto/pixelrpg/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the scheduler delta of one Update at the configured TPS.
var frameDelta = timing.FrameDelta(cfg.C.TPS)

func levelEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Level.First(ecs.World)
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := levelEntry(ecs)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func getViewport(ecs *ecs.ECS) *components.ViewportData {
	entry, ok := levelEntry(ecs)
	if !ok {
		return nil
	}
	return components.Viewport.Get(entry)
}

func getTransition(ecs *ecs.ECS) *components.TransitionData {
	entry, ok := levelEntry(ecs)
	if !ok {
		return nil
	}
	return components.Transition.Get(entry)
}

func getDialog(ecs *ecs.ECS) *components.DialogData {
	entry, ok := levelEntry(ecs)
	if !ok {
		return nil
	}
	return components.Dialog.Get(entry)
}

func getPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// gravityEnabled reports whether the active map runs the gravity integrator.
func gravityEnabled(ecs *ecs.ECS) bool {
	level := getLevel(ecs)
	return level != nil && level.Current != nil && level.Current.Gravity
}

// TransitionPhase is the controller phase, Idle when no level exists.
func TransitionPhase(ecs *ecs.ECS) cfg.TransitionPhase {
	if t := getTransition(ecs); t != nil {
		return t.Phase
	}
	return cfg.TransitionIdle
}

// CurrentMapID is the id of the active map.
func CurrentMapID(ecs *ecs.ECS) string {
	if level := getLevel(ecs); level != nil && level.Current != nil {
		return level.Current.ID
	}
	return ""
}
