package systems

import (
	"time"

	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/tags"
	"github.com/automoto/pixelrpg/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateLocomotion advances the walk cycle after a simulation tick. A move
// attempt steps the frame; standing still shows the idle pose.
func updateLocomotion(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	if components.Attack.Get(player).Active {
		return
	}

	p := components.Player.Get(player)
	sheets := components.Sheets.Get(player)
	sheet := sheets.WalkSheet(p.Direction)

	if p.Moved {
		if n := sheet.Len(); n > 0 {
			p.Frame = (p.Frame + 1) % n
		} else {
			p.Frame = 0
		}
	} else {
		p.Frame = 0
	}
	components.Sprite.SetValue(player, components.SpriteData{Sheet: sheet, Frame: p.Frame})
}

// StartAttack begins the one-shot attack overlay. It is rejected while an
// attack is running, while the transition controller is busy, and when
// there is no attack sheet to show.
func StartAttack(ecs *ecs.ECS) bool {
	player, ok := getPlayer(ecs)
	if !ok {
		return false
	}
	attack := components.Attack.Get(player)
	if attack.Active || TransitionPhase(ecs) != cfg.TransitionIdle {
		return false
	}

	p := components.Player.Get(player)
	sheet := attackSheet(components.Sheets.Get(player), p.LastHorizontal)
	if sheet.Len() == 0 {
		return false
	}

	attack.Active = true
	attack.Frame = 0
	attack.Sheet = sheet
	attack.SavedDirection = p.Direction
	attack.SavedFrame = p.Frame
	attack.Clock = timing.NewCadence(cfg.Timing.AttackFrame)
	components.Sprite.SetValue(player, components.SpriteData{Sheet: sheet})
	return true
}

// attackSheet picks the back strip after a left press and the forward strip
// after a right press, falling back to whichever strip has frames.
func attackSheet(sheets *components.SheetsData, last cfg.Direction) *assets.Sheet {
	switch {
	case last == cfg.DirLeft && sheets.BackAttack.Len() > 0:
		return sheets.BackAttack
	case last == cfg.DirRight && sheets.Attack.Len() > 0:
		return sheets.Attack
	case sheets.Attack.Len() > 0:
		return sheets.Attack
	}
	return sheets.BackAttack
}

func UpdateAttack(ecs *ecs.ECS) {
	advanceAttack(ecs, frameDelta)
}

// advanceAttack plays every attack frame fire in dt. The sequence ends on
// the fire that would step past the last frame.
func advanceAttack(ecs *ecs.ECS, dt time.Duration) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	attack := components.Attack.Get(player)
	if !attack.Active {
		return
	}

	fires := attack.Clock.Advance(dt)
	for i := 0; i < fires; i++ {
		attack.Frame++
		if attack.Frame >= attack.Sheet.Len() {
			finishAttack(ecs, player)
			return
		}
		components.Sprite.SetValue(player, components.SpriteData{Sheet: attack.Sheet, Frame: attack.Frame})
	}
}

func finishAttack(ecs *ecs.ECS, player *donburi.Entry) {
	attack := components.Attack.Get(player)
	p := components.Player.Get(player)

	attack.Active = false
	attack.Sheet = nil
	attack.Frame = 0
	attack.Completed++

	p.Direction = attack.SavedDirection
	p.Frame = 0
	sheets := components.Sheets.Get(player)
	components.Sprite.SetValue(player, components.SpriteData{Sheet: sheets.WalkSheet(p.Direction)})

	// Fighting in the wilds is what the quest asks for.
	if gravityEnabled(ecs) && components.Economy.Get(player).QuestActive {
		CompleteQuest(ecs)
	}
}

func UpdateIdleLoop(ecs *ecs.ECS) {
	advanceIdleLoop(ecs, frameDelta)
}

// advanceIdleLoop drives the shop sign. It never stops, whatever the
// player is doing.
func advanceIdleLoop(ecs *ecs.ECS, dt time.Duration) {
	entry, ok := components.IdleLoop.First(ecs.World)
	if !ok {
		return
	}
	anim := components.IdleLoop.Get(entry).Animation
	if anim == nil {
		return
	}
	anim.Update(dt)

	tags.Shop.Each(ecs.World, func(e *donburi.Entry) {
		components.Sprite.Get(e).Frame = anim.Frame()
	})
}
