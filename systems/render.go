package systems

import (
	"fmt"

	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/fonts"
	"github.com/automoto/pixelrpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hintOffsetX   = 20
	hintOffsetY   = -20
	portalOffsetY = -40
	hudMargin     = 10
	hudPadding    = 6
)

var drawOp = &ebiten.DrawImageOptions{}

// worldOffset is the horizontal slide shift shared by every world element.
func worldOffset(ecs *ecs.ECS) float64 {
	if t := getTransition(ecs); t != nil {
		return t.Offset
	}
	return 0
}

// DrawBackground stretches the map background over the whole surface.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	if level == nil || level.Background == nil {
		return
	}
	w, h := getViewport(ecs).Surface()
	bounds := level.Background.Bounds()

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(float64(w)/float64(bounds.Dx()), float64(h)/float64(bounds.Dy()))
	drawOp.GeoM.Translate(worldOffset(ecs), 0)
	screen.DrawImage(level.Background, drawOp)
}

// DrawWorld draws the NPC marker, the shop and the player.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := getViewport(ecs)
	if vp == nil {
		return
	}
	offset := worldOffset(ecs)
	size := float64(vp.PlayerSize)

	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Anchor.Get(e)
		x, y := vp.ToDisplay(a.X, a.Y)
		side := float32(cfg.Interaction.NPCMarkerSize * vp.Uniform)
		vector.FillRect(screen, float32(x+offset), float32(y), side, side, cfg.UI.NPCColor, false)
		vector.StrokeRect(screen, float32(x+offset), float32(y), side, side, 1, cfg.UI.NPCOutline, false)
	})

	tags.Shop.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Anchor.Get(e)
		x, y := vp.ToDisplay(a.X, a.Y)
		drawSprite(screen, components.Sprite.Get(e), x+offset, y, size)
	})

	if player, ok := getPlayer(ecs); ok {
		p := components.Player.Get(player)
		x, y := vp.ToDisplay(p.X, p.Y)
		drawSprite(screen, components.Sprite.Get(player), x+offset, y, size)
	}
}

// drawSprite draws one sheet frame scaled to a size x size square. Entities
// without a sheet get the placeholder.
func drawSprite(screen *ebiten.Image, sprite *components.SpriteData, x, y, size float64) {
	img := sprite.Sheet.Frame(sprite.Frame)
	if img == nil {
		img = assets.Placeholder()
	}
	b := img.Bounds()

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// DrawHints renders the interaction and portal prompts. They are hidden
// while sliding.
func DrawHints(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := levelEntry(ecs)
	if !ok || TransitionPhase(ecs).Sliding() {
		return
	}
	hint := components.Hint.Get(entry)
	vp := getViewport(ecs)
	face := fonts.Hint.Get()

	if hint.Text != "" {
		x, y := vp.ToDisplay(hint.X, hint.Y)
		text.Draw(screen, hint.Text, face, int(x)+hintOffsetX, int(y)+hintOffsetY, cfg.UI.HintColor)
	}
	if hint.Portal != "" {
		x, y := vp.ToDisplay(hint.PortalX, hint.PortalY)
		text.Draw(screen, hint.Portal, face, int(x)+hintOffsetX, int(y)+portalOffsetY, cfg.UI.PortalHintColor)
	}
}

// DrawHUD shows gold and the current map in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	econ := components.Economy.Get(player)
	line := fmt.Sprintf("Gold: %dG   Map: %s", econ.Gold, CurrentMapID(ecs))
	if n := len(econ.Inventory); n > 0 {
		line += fmt.Sprintf("   Items: %d", n)
	}

	face := fonts.HUD.Get()
	bounds := text.BoundString(face, line)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(bounds.Dx()+2*hudPadding), float32(bounds.Dy()+2*hudPadding),
		cfg.UI.HUDTextBgColor, false)
	text.Draw(screen, line, face, hudMargin+hudPadding, hudMargin+hudPadding-bounds.Min.Y, cfg.UI.HUDTextColor)
}
