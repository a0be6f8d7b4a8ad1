package factory

import (
	"github.com/automoto/pixelrpg/archetypes"
	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/components"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNPC places the quest giver marker.
func CreateNPC(ecs *ecs.ECS, p leveldata.Point) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)
	components.Anchor.SetValue(npc, components.AnchorData{X: p.X, Y: p.Y})
	return npc
}

// CreateShop places the shop; its frame follows the world idle loop.
func CreateShop(ecs *ecs.ECS, p leveldata.Point, sheet *assets.Sheet) *donburi.Entry {
	shop := archetypes.Shop.Spawn(ecs)
	components.Anchor.SetValue(shop, components.AnchorData{X: p.X, Y: p.Y})

	frame := 0
	if loop := mustIdleLoop(ecs); loop.Animation != nil {
		frame = loop.Animation.Frame()
	}
	components.Sprite.SetValue(shop, components.SpriteData{Sheet: sheet, Frame: frame})
	return shop
}
