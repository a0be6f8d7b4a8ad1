package factory

import (
	"github.com/automoto/pixelrpg/archetypes"
	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, sheets components.SheetsData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Player.Size, cfg.Player.Size)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		X:         x,
		Y:         y,
		Direction: cfg.DirDown,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Speed: cfg.Player.MoveSpeed,
	})
	components.Economy.SetValue(player, components.EconomyData{
		Gold: cfg.Economy.StartingGold,
	})

	components.Sheets.SetValue(player, sheets)
	components.Sprite.SetValue(player, components.SpriteData{
		Sheet: sheets.WalkSheet(cfg.DirDown),
	})

	placePlayerObject(ecs, player)

	return player
}

// LoadPlayerSheets reads the walk and attack strips. A nil loader yields
// empty sheets, which keeps headless worlds free of image allocation.
func LoadPlayerSheets(loader *assets.Loader) components.SheetsData {
	sheets := components.SheetsData{Walk: make(map[cfg.Direction]*assets.Sheet)}
	if loader == nil {
		return sheets
	}
	for dir, name := range cfg.Sprites.Walk {
		sheets.Walk[dir] = loader.Sheet(name)
	}
	sheets.Attack = loader.Sheet(cfg.Sprites.Attack)
	sheets.BackAttack = loader.Sheet(cfg.Sprites.BackAttack)
	return sheets
}

// placePlayerObject sizes the player box for the current viewport, moves it
// to the player's display position and makes sure it is in the space.
func placePlayerObject(ecs *ecs.ECS, player *donburi.Entry) {
	vp := mustViewport(ecs)
	p := components.Player.Get(player)
	obj := components.Object.Get(player).Object

	size := float64(vp.PlayerSize)
	if size <= 0 {
		size = cfg.Player.Size
	}
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	obj.X, obj.Y = vp.ToDisplay(p.X, p.Y)
	obj.W, obj.H = size, size
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// SyncPlayerObject moves the player box to the player's logical position.
func SyncPlayerObject(ecs *ecs.ECS, player *donburi.Entry) {
	vp := mustViewport(ecs)
	p := components.Player.Get(player)
	obj := components.Object.Get(player).Object
	obj.X, obj.Y = vp.ToDisplay(p.X, p.Y)
	obj.Update()
}
