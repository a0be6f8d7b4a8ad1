package factory

import (
	"log"

	"github.com/automoto/pixelrpg/archetypes"
	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/assets/animations"
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/automoto/pixelrpg/tags"
	"github.com/automoto/pixelrpg/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the world singletons and loads the registry's start
// map, creating the player at its spawn point. loader may be nil for
// headless worlds; a zero surface size means the base resolution.
func CreateLevel(ecs *ecs.ECS, registry *leveldata.Registry, loader *assets.Loader, surfaceW, surfaceH int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(level, components.LevelData{
		Registry: registry,
		Assets:   loader,
	})
	components.Viewport.SetValue(level, components.ViewportData{
		SurfaceW: surfaceW,
		SurfaceH: surfaceH,
	})
	components.Simulation.SetValue(level, components.SimulationData{
		Clock: timing.NewCadence(cfg.Timing.SimulationTick),
	})
	components.Transition.SetValue(level, components.TransitionData{
		Phase: cfg.TransitionIdle,
	})
	components.Settings.SetValue(level, components.SettingsData{
		ShowWalls: cfg.Debug.ShowWalls,
	})
	components.IdleLoop.SetValue(level, components.IdleLoopData{
		Animation: animations.NewAnimation(shopSheet(loader).Len(), cfg.Timing.IdleFrame),
	})

	start, ok := registry.Get(registry.Start)
	if !ok {
		// NewRegistry guarantees the start map exists
		panic("start map missing from registry: " + registry.Start)
	}
	LoadMap(ecs, start, nil)

	return level
}

// LoadMap swaps the active map for def. World content (walls, NPC, shop,
// background) is rebuilt from the definition; the player keeps everything
// except position and facing. A nil arrival places the player at the
// map's spawn point.
func LoadMap(ecs *ecs.ECS, def *leveldata.MapDefinition, arrival *leveldata.Point) {
	level := mustLevel(ecs)
	level.Current = def
	level.Background = nil
	if level.Assets != nil {
		level.Background = level.Assets.Image(def.Background)
	}

	removeTagged(ecs, tags.NPC)
	removeTagged(ecs, tags.Shop)

	pos := def.Spawn
	if arrival != nil {
		pos = *arrival
	}

	if player, ok := playerEntry(ecs); ok {
		p := components.Player.Get(player)
		p.X, p.Y = pos.X, pos.Y
		p.Direction = cfg.DirDown
		p.Frame = 0
		sheets := components.Sheets.Get(player)
		if attack := components.Attack.Get(player); !attack.Active {
			components.Sprite.SetValue(player, components.SpriteData{Sheet: sheets.WalkSheet(p.Direction)})
		}
	} else {
		CreatePlayer(ecs, pos.X, pos.Y, LoadPlayerSheets(level.Assets))
	}

	CreateNPC(ecs, def.NPC())
	CreateShop(ecs, def.Shop(), shopSheet(level.Assets))

	ApplyViewport(ecs)

	log.Printf("[level] loaded %s at (%.0f, %.0f)", def.ID, pos.X, pos.Y)
}

func shopSheet(loader *assets.Loader) *assets.Sheet {
	if loader == nil {
		return nil
	}
	return loader.Sheet(cfg.Sprites.Shop)
}
