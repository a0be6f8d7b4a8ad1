package systems

import (
	"testing"
	"time"

	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/automoto/pixelrpg/tags"
)

func TestLocomotionFrames(t *testing.T) {
	e := villageWorld(t)
	giveSheets(t, e, 4, 0, 0)
	p := playerData(t, e)
	sprite := components.Sprite.Get(mustPlayer(t, e))

	hold(e, cfg.ActionMoveRight)
	for i, want := range []int{1, 2, 3, 0, 1} {
		Tick(e)
		if p.Frame != want || sprite.Frame != want {
			t.Fatalf("tick %d: frame = %d (sprite %d), want %d", i, p.Frame, sprite.Frame, want)
		}
	}
	if sprite.Sheet.Name != "walk-right" {
		t.Errorf("sheet = %q, want walk-right", sprite.Sheet.Name)
	}

	hold(e)
	Tick(e)
	if p.Frame != 0 {
		t.Errorf("idle frame = %d, want 0", p.Frame)
	}
}

func TestLocomotionAdvancesWhenBlocked(t *testing.T) {
	e := villageWorld(t, gamemath.Rect{X1: 576, Y1: 0, X2: 600, Y2: 768})
	giveSheets(t, e, 4, 0, 0)

	hold(e, cfg.ActionMoveRight)
	Tick(e)
	p := playerData(t, e)
	if p.X != 512 {
		t.Fatalf("x = %v, expected the wall to block", p.X)
	}
	if p.Frame != 1 {
		t.Errorf("frame = %d, walking in place still animates", p.Frame)
	}
}

func TestAttackSheetSelection(t *testing.T) {
	tests := []struct {
		name         string
		last         cfg.Direction
		attack, back int
		want         string
		ok           bool
	}{
		{"left uses back", cfg.DirLeft, 3, 2, "back", true},
		{"right uses forward", cfg.DirRight, 3, 2, "attack", true},
		{"left falls back to forward", cfg.DirLeft, 3, 0, "attack", true},
		{"right falls back to back", cfg.DirRight, 0, 2, "back", true},
		{"no horizontal prefers forward", cfg.DirNone, 3, 2, "attack", true},
		{"no sheets", cfg.DirLeft, 0, 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := villageWorld(t)
			giveSheets(t, e, 4, tt.attack, tt.back)
			playerData(t, e).LastHorizontal = tt.last

			if got := StartAttack(e); got != tt.ok {
				t.Fatalf("StartAttack = %v, want %v", got, tt.ok)
			}
			attack := components.Attack.Get(mustPlayer(t, e))
			if !tt.ok {
				if attack.Active {
					t.Error("attack active without frames")
				}
				return
			}
			if attack.Sheet.Name != tt.want {
				t.Errorf("sheet = %q, want %q", attack.Sheet.Name, tt.want)
			}
		})
	}
}

func TestAttackSequence(t *testing.T) {
	e := villageWorld(t)
	giveSheets(t, e, 4, 3, 0)
	player := mustPlayer(t, e)
	p := playerData(t, e)
	p.Direction, p.Frame = cfg.DirUp, 2

	if !StartAttack(e) {
		t.Fatal("StartAttack rejected")
	}
	if StartAttack(e) {
		t.Error("second StartAttack accepted while attacking")
	}
	attack := components.Attack.Get(player)
	sprite := components.Sprite.Get(player)
	if sprite.Sheet.Name != "attack" || sprite.Frame != 0 {
		t.Errorf("start sprite = %s/%d, want attack/0", sprite.Sheet.Name, sprite.Frame)
	}

	// Movement and locomotion are frozen.
	hold(e, cfg.ActionMoveRight)
	Tick(e)
	if p.X != 512 || p.Direction != cfg.DirUp {
		t.Errorf("moved while attacking: x = %v, direction = %v", p.X, p.Direction)
	}
	hold(e)

	for _, want := range []int{1, 2} {
		advanceAttack(e, cfg.Timing.AttackFrame)
		if !attack.Active || sprite.Frame != want {
			t.Fatalf("frame = %d active = %v, want %d", sprite.Frame, attack.Active, want)
		}
	}
	advanceAttack(e, cfg.Timing.AttackFrame)

	if attack.Active {
		t.Fatal("attack still active after the last frame")
	}
	if p.Direction != cfg.DirUp || p.Frame != 0 {
		t.Errorf("restored = %v/%d, want up/0", p.Direction, p.Frame)
	}
	if sprite.Sheet.Name != "walk-up" || sprite.Frame != 0 {
		t.Errorf("sprite = %s/%d, want walk-up/0", sprite.Sheet.Name, sprite.Frame)
	}
	if attack.Completed != 1 {
		t.Errorf("completed = %d, want 1", attack.Completed)
	}
}

func TestAttackCadenceIndependentOfFrameRate(t *testing.T) {
	e := villageWorld(t)
	giveSheets(t, e, 4, 5, 0)
	player := mustPlayer(t, e)
	attack := components.Attack.Get(player)
	sprite := components.Sprite.Get(player)

	StartAttack(e)
	seen := []int{sprite.Frame}
	for attack.Active {
		advanceAttack(e, frameDelta)
		if attack.Active && sprite.Frame != seen[len(seen)-1] {
			seen = append(seen, sprite.Frame)
		}
	}
	for i, f := range seen {
		if f != i {
			t.Fatalf("frames shown = %v, want 0..4 in order", seen)
		}
	}
	if len(seen) != 5 {
		t.Errorf("frames shown = %v, want 5 frames", seen)
	}
}

func TestAttackLongFrameFinishes(t *testing.T) {
	e := villageWorld(t)
	giveSheets(t, e, 4, 3, 0)
	StartAttack(e)

	advanceAttack(e, time.Second)
	if components.Attack.Get(mustPlayer(t, e)).Active {
		t.Error("attack still active after a long frame")
	}
}

func TestAttackRejectedDuringTransition(t *testing.T) {
	e := villageWorld(t)
	giveSheets(t, e, 4, 3, 0)

	for _, phase := range []cfg.TransitionPhase{
		cfg.TransitionSlidingOut, cfg.TransitionLoading, cfg.TransitionSlidingIn, cfg.TransitionCooldown,
	} {
		getTransition(e).Phase = phase
		if StartAttack(e) {
			t.Errorf("attack started during %v", phase)
		}
	}
}

func TestIdleLoop(t *testing.T) {
	e := villageWorld(t)
	entry, _ := components.IdleLoop.First(e.World)
	anim := components.IdleLoop.Get(entry).Animation
	anim.Frames = 3

	shop, ok := tags.Shop.First(e.World)
	if !ok {
		t.Fatal("shop not created")
	}
	sprite := components.Sprite.Get(shop)

	for _, want := range []int{1, 2, 0, 1} {
		advanceIdleLoop(e, cfg.Timing.IdleFrame)
		if sprite.Frame != want {
			t.Fatalf("shop frame = %d, want %d", sprite.Frame, want)
		}
	}

	// The sign keeps its phase across a map load.
	getOrCreateInput(e).PortalArmed = true
	placePlayer(t, e, 960, 384)
	if !TryEnterPortal(e) {
		t.Fatal("portal not entered")
	}
	runTransition(t, e)
	shop, _ = tags.Shop.First(e.World)
	if got := components.Sprite.Get(shop).Frame; got != 1 {
		t.Errorf("shop frame after map load = %d, want 1", got)
	}
}
