package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/fonts"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/automoto/pixelrpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func toggleDebug(ecs *ecs.ECS) {
	entry, ok := levelEntry(ecs)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.ShowWalls = !settings.ShowWalls
}

// physicsReadout describes both ground checks of the last tick. The pre-move
// check gates nothing; it is shown so a disagreement with the landing flag
// can be seen while playing.
func physicsReadout(ecs *ecs.ECS) (string, bool) {
	player, ok := getPlayer(ecs)
	if !ok {
		return "", false
	}
	p := components.Player.Get(player)
	phys := components.Physics.Get(player)
	return fmt.Sprintf("pos %.1f,%.1f  vy %.1f  precheck %t  ground %t",
		p.X, p.Y, phys.VelocityY, phys.GroundProbe, phys.OnGround), true
}

// DrawDebug outlines the display-space walls and the edge triggers, and
// prints the player's physics state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := levelEntry(ecs)
	if !ok || !components.Settings.Get(entry).ShowWalls {
		return
	}
	offset := getTransition(ecs).Offset
	vp := getViewport(ecs)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		if obj := components.Object.Get(e).Object; obj != nil {
			strokeRect(screen, factory.WallRect(obj), offset, cfg.UI.DebugWallColor)
		}
	})

	if line, ok := physicsReadout(ecs); ok {
		_, h := vp.Surface()
		text.Draw(screen, line, fonts.Hint.Get(), hudMargin, h-hudMargin, cfg.UI.DebugTrigColor)
	}

	def := getLevel(ecs).Current
	if def == nil {
		return
	}
	if def.Left.HasTrigger {
		strokeRect(screen, def.Left.Trigger.Scale(vp.ScaleX, vp.ScaleY), offset, cfg.UI.DebugTrigColor)
	}
	if def.Right.HasTrigger {
		strokeRect(screen, def.Right.Trigger.Scale(vp.ScaleX, vp.ScaleY), offset, cfg.UI.DebugTrigColor)
	}
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, offset float64, clr color.Color) {
	x, y := float32(r.X1+offset), float32(r.Y1)
	w, h := float32(r.Width()), float32(r.Height())
	vector.FillRect(screen, x, y, w, 1, clr, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, clr, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, clr, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, clr, false) // Right
}
