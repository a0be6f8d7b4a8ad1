package systems

import (
	"testing"

	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/gamemath"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/automoto/pixelrpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	edgeLeft  = gamemath.Rect{X1: 0, Y1: 0, X2: 32, Y2: 768}
	edgeRight = gamemath.Rect{X1: 992, Y1: 0, X2: 1024, Y2: 768}
	floorWall = gamemath.Rect{X1: 0, Y1: 736, X2: 1024, Y2: 768}
)

// testRegistry builds a two-map world: a top-down village whose right edge
// leads to a gravity forest, and back.
func testRegistry(t *testing.T, start string, villageWalls, forestWalls []gamemath.Rect) *leveldata.Registry {
	t.Helper()
	village := leveldata.NewMapDefinition(
		leveldata.Entry{ID: "village", Right: "forest"},
		leveldata.Layout{
			Walls:        villageWalls,
			NPCs:         []leveldata.Point{{X: 800, Y: 400}},
			Shops:        []leveldata.Point{{X: 200, Y: 150}},
			Spawn:        leveldata.Point{X: 512, Y: 384},
			LeftTrigger:  &edgeLeft,
			RightTrigger: &edgeRight,
			Width:        1024,
			Height:       768,
		},
	)
	forest := leveldata.NewMapDefinition(
		leveldata.Entry{ID: "forest", Gravity: true, Left: "village"},
		leveldata.Layout{
			Walls:        forestWalls,
			NPCs:         []leveldata.Point{{X: 500, Y: 300}},
			Shops:        []leveldata.Point{{X: 100, Y: 100}},
			Spawn:        leveldata.Point{X: 100, Y: 672},
			LeftTrigger:  &edgeLeft,
			RightTrigger: &edgeRight,
			Width:        1024,
			Height:       768,
		},
	)
	reg, err := leveldata.NewRegistry(start, village, forest)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

// newTestWorld creates a headless world (no images) at the base resolution.
func newTestWorld(t *testing.T, reg *leveldata.Registry) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, reg, nil, 0, 0)
	return e
}

func villageWorld(t *testing.T, walls ...gamemath.Rect) *ecs.ECS {
	return newTestWorld(t, testRegistry(t, "village", walls, []gamemath.Rect{floorWall}))
}

func forestWorld(t *testing.T, walls ...gamemath.Rect) *ecs.ECS {
	return newTestWorld(t, testRegistry(t, "forest", nil, append([]gamemath.Rect{floorWall}, walls...)))
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	player, ok := getPlayer(e)
	if !ok {
		t.Fatal("player not created")
	}
	return player
}

func playerData(t *testing.T, e *ecs.ECS) *components.PlayerData {
	return components.Player.Get(mustPlayer(t, e))
}

// placePlayer teleports the player and keeps the collision box in sync.
func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) {
	t.Helper()
	player := mustPlayer(t, e)
	p := components.Player.Get(player)
	p.X, p.Y = x, y
	factory.SyncPlayerObject(e, player)
}

// hold replaces the held actions, shifting the old ones to Previous.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func sheet(name string, frames int) *assets.Sheet {
	if frames == 0 {
		return nil
	}
	return &assets.Sheet{Name: name, Frames: make([]*ebiten.Image, frames)}
}

// giveSheets equips the player with frame-only sheets so animation logic
// can run without images.
func giveSheets(t *testing.T, e *ecs.ECS, walk, attack, back int) {
	t.Helper()
	player := mustPlayer(t, e)
	walkSheets := make(map[cfg.Direction]*assets.Sheet)
	for _, d := range []cfg.Direction{cfg.DirDown, cfg.DirUp, cfg.DirLeft, cfg.DirRight} {
		walkSheets[d] = sheet("walk-"+d.String(), walk)
	}
	components.Sheets.SetValue(player, components.SheetsData{
		Walk:       walkSheets,
		Attack:     sheet("attack", attack),
		BackAttack: sheet("back", back),
	})
}

func ticks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		Tick(e)
	}
}

func countTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func getHint(t *testing.T, e *ecs.ECS) *components.HintData {
	t.Helper()
	entry, ok := levelEntry(e)
	if !ok {
		t.Fatal("level not created")
	}
	return components.Hint.Get(entry)
}

func getShop(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Shop.First(e.World)
}

func countNPCs(t *testing.T, e *ecs.ECS) int {
	t.Helper()
	return countTagged(e, tags.NPC)
}
