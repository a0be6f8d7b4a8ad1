package systems

import (
	"math"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/yohamta/donburi/ecs"
)

func maxX() float64 { return float64(cfg.C.Width) - cfg.Player.Size }
func maxY() float64 { return float64(cfg.C.Height) - cfg.Player.Size }

// grounded reports whether the player stands on something at (x, y): a
// wall one unit below or within one unit of the bottom of the map.
func grounded(ecs *ecs.ECS, x, y float64) bool {
	return y >= maxY()-1 || Collides(ecs, x, y+1)
}

// stepKinematics advances the player by one simulation tick.
func stepKinematics(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	p := components.Player.Get(player)
	phys := components.Physics.Get(player)
	attacking := components.Attack.Get(player).Active
	gravity := gravityEnabled(ecs)
	input := getOrCreateInput(ecs)

	phys.GroundProbe = grounded(ecs, p.X, p.Y)
	phys.OnGround = phys.GroundProbe

	var dx, dy float64
	if !attacking {
		left, right := input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]
		up, down := input.Current[cfg.ActionMoveUp], input.Current[cfg.ActionMoveDown]

		// Horizontal wins over vertical; gravity maps ignore vertical keys.
		if dx = gamemath.StepToward(left, right, phys.Speed); dx != 0 {
			if dx < 0 {
				p.Direction = cfg.DirLeft
			} else {
				p.Direction = cfg.DirRight
			}
		} else if !gravity {
			if dy = gamemath.StepToward(up, down, phys.Speed); dy != 0 {
				if dy < 0 {
					p.Direction = cfg.DirUp
				} else {
					p.Direction = cfg.DirDown
				}
			}
		}
	}

	moving := dx != 0 || dy != 0
	if moving && !Collides(ecs, p.X+dx, p.Y+dy) {
		p.X += dx
		p.Y += dy
	}
	p.Moved = moving
	phys.Speed = gamemath.RampSpeed(phys.Speed, cfg.Player.MoveSpeed, cfg.Player.Acceleration, cfg.Player.MaxSpeed, moving)

	if gravity {
		integrateGravity(ecs, p, phys)
	} else {
		phys.VelocityY = 0
		phys.OnGround = true
	}

	p.X = gamemath.Clamp(p.X, 0, maxX())
	p.Y = gamemath.Clamp(p.Y, 0, maxY())
}

// integrateGravity applies one gravity step with bounded step correction.
func integrateGravity(ecs *ecs.ECS, p *components.PlayerData, phys *components.PhysicsData) {
	phys.VelocityY += cfg.Physics.Gravity
	attemptedY := p.Y + phys.VelocityY

	if Collides(ecs, p.X, attemptedY) {
		if phys.VelocityY < 0 {
			// head bump
			attemptedY = math.Ceil(attemptedY)
			for i := 0; i < cfg.Physics.RiseCorrectionSteps && Collides(ecs, p.X, attemptedY); i++ {
				attemptedY++
			}
		} else {
			// landing, snapped to whole units so a resting player stays put
			attemptedY = math.Floor(attemptedY)
			for i := 0; i < cfg.Physics.FallCorrectionSteps && attemptedY > 0 && Collides(ecs, p.X, attemptedY); i++ {
				attemptedY--
			}
		}
		phys.VelocityY = 0
	}

	p.Y = gamemath.Clamp(attemptedY, 0, maxY())
	phys.OnGround = math.Abs(phys.VelocityY) < cfg.Physics.GroundEpsilon && grounded(ecs, p.X, p.Y)
}

// RequestJump launches the player on a gravity map when grounded and at
// rest. OnGround stays set until the next tick re-evaluates it.
func RequestJump(ecs *ecs.ECS) bool {
	player, ok := getPlayer(ecs)
	if !ok || !gravityEnabled(ecs) {
		return false
	}
	phys := components.Physics.Get(player)
	if !phys.OnGround || math.Abs(phys.VelocityY) >= cfg.Physics.GroundEpsilon {
		return false
	}
	phys.VelocityY = cfg.Physics.JumpVelocity
	return true
}
