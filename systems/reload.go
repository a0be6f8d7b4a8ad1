package systems

import (
	"io/fs"
	"log"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMapReload drains changed-file events and, when the transition
// controller is idle, reloads the registry from fsys. The active map is
// rebuilt in place with the player where they stand; a broken edit is
// logged and the old registry kept.
func UpdateMapReload(ecs *ecs.ECS, events <-chan string, fsys fs.FS, worldPath string) {
	if TransitionPhase(ecs) != cfg.TransitionIdle {
		return
	}

	changed := ""
	for drained := false; !drained; {
		select {
		case name := <-events:
			changed = name
		default:
			drained = true
		}
	}
	if changed == "" {
		return
	}

	registry, err := leveldata.LoadRegistry(fsys, worldPath)
	if err != nil {
		log.Printf("[reload] %s: keeping previous maps: %v", changed, err)
		return
	}
	ReplaceRegistry(ecs, registry)
	log.Printf("[reload] %s: %d maps", changed, registry.Len())
}

// ReplaceRegistry swaps in a new registry and rebuilds the active map from
// it. If the active map no longer exists the player starts over at the new
// start map.
func ReplaceRegistry(ecs *ecs.ECS, registry *leveldata.Registry) {
	level := getLevel(ecs)
	player, ok := getPlayer(ecs)
	if level == nil || !ok {
		return
	}
	level.Registry = registry

	if def, ok := registry.Get(CurrentMapID(ecs)); ok {
		p := components.Player.Get(player)
		factory.LoadMap(ecs, def, &leveldata.Point{X: p.X, Y: p.Y})
		return
	}
	start, _ := registry.Get(registry.Start)
	factory.LoadMap(ecs, start, nil)
}
