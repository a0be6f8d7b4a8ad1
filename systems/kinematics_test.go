package systems

import (
	"testing"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/gamemath"
)

func TestMovementDirections(t *testing.T) {
	tests := []struct {
		name    string
		held    []cfg.ActionID
		dx, dy  float64
		wantDir cfg.Direction
	}{
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, -6, 0, cfg.DirLeft},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, 6, 0, cfg.DirRight},
		{"up", []cfg.ActionID{cfg.ActionMoveUp}, 0, -6, cfg.DirUp},
		{"down", []cfg.ActionID{cfg.ActionMoveDown}, 0, 6, cfg.DirDown},
		{"horizontal wins", []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionMoveUp}, 6, 0, cfg.DirRight},
		{"left wins over right", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, -6, 0, cfg.DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := villageWorld(t)
			hold(e, tt.held...)
			Tick(e)

			p := playerData(t, e)
			if p.X != 512+tt.dx || p.Y != 384+tt.dy {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, 512+tt.dx, 384+tt.dy)
			}
			if p.Direction != tt.wantDir {
				t.Errorf("direction = %v, want %v", p.Direction, tt.wantDir)
			}
		})
	}
}

func TestBlockedMoveIsAllOrNothing(t *testing.T) {
	// Wall starts 3 units right of the player box.
	e := villageWorld(t, gamemath.Rect{X1: 579, Y1: 0, X2: 600, Y2: 768})
	hold(e, cfg.ActionMoveRight)
	Tick(e)

	p := playerData(t, e)
	if p.X != 512 {
		t.Errorf("x = %v, want 512 (no partial move into the gap)", p.X)
	}
	if p.Direction != cfg.DirRight {
		t.Errorf("facing = %v, want right even when blocked", p.Direction)
	}
}

func TestSpeedRamp(t *testing.T) {
	e := villageWorld(t)
	player := mustPlayer(t, e)
	phys := components.Physics.Get(player)

	placePlayer(t, e, 0, 384)
	hold(e, cfg.ActionMoveRight)
	for i := 0; i < 30; i++ {
		Tick(e)
		if phys.Speed > cfg.Player.MaxSpeed {
			t.Fatalf("tick %d: speed %v above max", i, phys.Speed)
		}
	}
	if phys.Speed != cfg.Player.MaxSpeed {
		t.Errorf("speed after long hold = %v, want %v", phys.Speed, cfg.Player.MaxSpeed)
	}

	hold(e)
	Tick(e)
	if phys.Speed != cfg.Player.MoveSpeed {
		t.Errorf("speed after release = %v, want %v", phys.Speed, cfg.Player.MoveSpeed)
	}
}

func TestPositionClamped(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		held   cfg.ActionID
		wx, wy float64
	}{
		{"left edge", 2, 384, cfg.ActionMoveLeft, 0, 384},
		{"right edge", 958, 384, cfg.ActionMoveRight, 960, 384},
		{"top edge", 512, 1, cfg.ActionMoveUp, 512, 0},
		{"bottom edge", 512, 703, cfg.ActionMoveDown, 512, 704},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := villageWorld(t)
			placePlayer(t, e, tt.x, tt.y)
			hold(e, tt.held)
			ticks(e, 3)

			p := playerData(t, e)
			if p.X != tt.wx || p.Y != tt.wy {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wx, tt.wy)
			}
		})
	}
}

func TestNonGravityMapAlwaysGrounded(t *testing.T) {
	e := villageWorld(t)
	player := mustPlayer(t, e)
	phys := components.Physics.Get(player)
	phys.VelocityY = 5

	Tick(e)
	if phys.VelocityY != 0 || !phys.OnGround {
		t.Errorf("velocity = %v, grounded = %v; want 0, true", phys.VelocityY, phys.OnGround)
	}
	if RequestJump(e) {
		t.Error("jump accepted on a map without gravity")
	}
}

func TestGravityRestsOnFloor(t *testing.T) {
	e := forestWorld(t)
	player := mustPlayer(t, e)
	phys := components.Physics.Get(player)

	for i := 0; i < 20; i++ {
		Tick(e)
		if p := playerData(t, e); p.Y != 672 {
			t.Fatalf("tick %d: y = %v, want 672", i, p.Y)
		}
	}
	if !phys.OnGround || phys.VelocityY != 0 {
		t.Errorf("grounded = %v, velocity = %v; want true, 0", phys.OnGround, phys.VelocityY)
	}
}

func TestFallLandsOnFloor(t *testing.T) {
	e := forestWorld(t)
	placePlayer(t, e, 300, 400)

	ticks(e, 60)
	p := playerData(t, e)
	if p.Y != 672 {
		t.Errorf("y after fall = %v, want 672", p.Y)
	}
	if !components.Physics.Get(mustPlayer(t, e)).OnGround {
		t.Error("not grounded after landing")
	}
}

func TestJumpAndLand(t *testing.T) {
	e := forestWorld(t)
	Tick(e)
	phys := components.Physics.Get(mustPlayer(t, e))

	if !RequestJump(e) {
		t.Fatal("jump rejected while resting on the floor")
	}
	if phys.VelocityY != cfg.Physics.JumpVelocity || !phys.OnGround {
		t.Errorf("after jump: velocity = %v, grounded = %v", phys.VelocityY, phys.OnGround)
	}
	if RequestJump(e) {
		t.Error("second jump accepted while moving upward")
	}

	// Velocity climbs by gravity every airborne tick until the landing
	// zeroes it.
	prev := phys.VelocityY
	minY := 672.0
	landed := false
	for i := 0; i < 120 && !landed; i++ {
		Tick(e)
		y := playerData(t, e).Y
		if y < minY {
			minY = y
		}
		if phys.VelocityY == 0 {
			landed = true
			if prev <= 0 {
				t.Errorf("tick %d: landed while still rising (previous velocity %v)", i, prev)
			}
			if !phys.OnGround {
				t.Errorf("tick %d: not grounded on the landing tick", i)
			}
			break
		}
		if phys.VelocityY <= prev {
			t.Fatalf("tick %d: velocity %v did not increase from %v", i, phys.VelocityY, prev)
		}
		if phys.OnGround {
			t.Fatalf("tick %d: grounded while airborne (y = %v)", i, y)
		}
		prev = phys.VelocityY
	}
	if !landed {
		t.Fatal("never landed")
	}
	if minY >= 600 {
		t.Errorf("apex y = %v, expected a real jump", minY)
	}

	ticks(e, 2)
	if y := playerData(t, e).Y; y != 672 {
		t.Errorf("y after landing = %v, want 672", y)
	}
	if !phys.OnGround || phys.VelocityY != 0 {
		t.Errorf("at rest: grounded = %v, velocity = %v", phys.OnGround, phys.VelocityY)
	}
}

func TestFirstAirborneTickClearsGround(t *testing.T) {
	e := forestWorld(t)
	Tick(e)
	phys := components.Physics.Get(mustPlayer(t, e))

	if !RequestJump(e) {
		t.Fatal("jump rejected")
	}
	Tick(e)
	if phys.OnGround {
		t.Error("grounded on the first tick after leaving the floor")
	}
	if !phys.GroundProbe {
		t.Error("pre-move check should still see the floor the jump started from")
	}
	if y := playerData(t, e).Y; y >= 672 {
		t.Errorf("y = %v, player did not leave the floor", y)
	}
}

func TestFallLandsFlush(t *testing.T) {
	// From 399 the fall reaches the floor less than a unit past a
	// broadphase cell line. None of these starts outruns the landing
	// correction.
	for _, start := range []float64{399, 400, 540} {
		e := forestWorld(t)
		placePlayer(t, e, 300, start)
		phys := components.Physics.Get(mustPlayer(t, e))

		prev := phys.VelocityY
		landedAt := -1
		for i := 0; i < 60; i++ {
			Tick(e)
			y := playerData(t, e).Y
			if y > 672 {
				t.Fatalf("start %v, tick %d: y = %v, inside the floor", start, i, y)
			}
			if landedAt < 0 {
				if phys.VelocityY == 0 {
					landedAt = i
					continue
				}
				if phys.VelocityY <= prev {
					t.Fatalf("start %v, tick %d: velocity %v did not increase from %v", start, i, phys.VelocityY, prev)
				}
				prev = phys.VelocityY
			}
		}
		if landedAt < 0 {
			t.Fatalf("start %v: never landed", start)
		}
		if y := playerData(t, e).Y; y != 672 || !phys.OnGround {
			t.Errorf("start %v: rest y = %v grounded = %v, want 672 true", start, y, phys.OnGround)
		}
	}
}

func TestHeadBump(t *testing.T) {
	e := forestWorld(t, gamemath.Rect{X1: 0, Y1: 560, X2: 1024, Y2: 600})
	Tick(e)
	phys := components.Physics.Get(mustPlayer(t, e))

	if !RequestJump(e) {
		t.Fatal("jump rejected")
	}
	bumped := false
	for i := 0; i < 60; i++ {
		Tick(e)
		y := playerData(t, e).Y
		if y < 600 {
			t.Fatalf("tick %d: y = %v, player passed through the ceiling", i, y)
		}
		if y == 600 && phys.VelocityY >= 0 {
			bumped = true
		}
	}
	if !bumped {
		t.Error("player never stopped against the ceiling")
	}
}

func TestVerticalKeysIgnoredWithGravity(t *testing.T) {
	e := forestWorld(t)
	Tick(e)

	hold(e, cfg.ActionMoveUp)
	ticks(e, 5)
	p := playerData(t, e)
	if p.Y != 672 {
		t.Errorf("y = %v, want 672", p.Y)
	}
	if p.Direction != cfg.DirDown {
		t.Errorf("direction = %v, want unchanged down", p.Direction)
	}
}

func TestGroundProbeKeptSeparately(t *testing.T) {
	e := forestWorld(t)
	placePlayer(t, e, 300, 400)
	phys := components.Physics.Get(mustPlayer(t, e))

	Tick(e)
	if phys.GroundProbe || phys.OnGround {
		t.Errorf("mid-air: precheck = %v, grounded = %v", phys.GroundProbe, phys.OnGround)
	}
}

func TestPhysicsReadout(t *testing.T) {
	e := forestWorld(t)
	placePlayer(t, e, 300, 600)
	Tick(e)

	line, ok := physicsReadout(e)
	if !ok {
		t.Fatal("no readout with a player present")
	}
	want := "pos 300.0,601.6  vy 1.6  precheck false  ground false"
	if line != want {
		t.Errorf("readout = %q, want %q", line, want)
	}
}
