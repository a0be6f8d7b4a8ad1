package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/pixelrpg/assets"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="32" height="24" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="1024" height="32"/>
  <object id="2" x="0" y="736" width="1024" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="Triggers">
  <object id="3" name="left" x="0" y="0" width="32" height="768"/>
  <object id="4" name="Right" x="992" y="0" width="32" height="768"/>
 </objectgroup>
 <objectgroup id="3" name="NPC">
  <object id="5" x="800" y="400"/>
  <object id="6" x="10" y="10"/>
 </objectgroup>
 <objectgroup id="4" name="Shop">
  <object id="7" x="200" y="150"/>
 </objectgroup>
 <objectgroup id="5" name="PlayerSpawn">
  <object id="8" x="512" y="384"/>
 </objectgroup>
</map>`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="32" height="24" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="NPC">
  <object id="1" x="1" y="1"/>
 </objectgroup>
</map>`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"a.tmx": {Data: []byte(testTMX)}}

	layout, err := LoadLayout(fsys, "a.tmx")
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if layout.Width != 1024 || layout.Height != 768 {
		t.Errorf("size = %dx%d, want 1024x768", layout.Width, layout.Height)
	}
	if len(layout.Walls) != 2 {
		t.Fatalf("walls = %d, want 2", len(layout.Walls))
	}
	if got := layout.Walls[1]; got != (Rect{X1: 0, Y1: 736, X2: 1024, Y2: 768}) {
		t.Errorf("bottom wall = %v", got)
	}
	if layout.LeftTrigger == nil || layout.LeftTrigger.X2 != 32 {
		t.Errorf("left trigger = %v", layout.LeftTrigger)
	}
	if layout.RightTrigger == nil || layout.RightTrigger.X1 != 992 {
		t.Errorf("right trigger (case-insensitive name) = %v", layout.RightTrigger)
	}
	if len(layout.NPCs) != 2 || layout.NPCs[0] != (Point{X: 800, Y: 400}) {
		t.Errorf("npcs = %v", layout.NPCs)
	}
	if layout.Spawn != (Point{X: 512, Y: 384}) {
		t.Errorf("spawn = %v", layout.Spawn)
	}
}

func TestLoadLayoutRequiresSpawn(t *testing.T) {
	fsys := fstest.MapFS{"a.tmx": {Data: []byte(noSpawnTMX)}}
	if _, err := LoadLayout(fsys, "a.tmx"); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("err = %v, want ErrInvalidMap", err)
	}
}

func TestLoadRegistry(t *testing.T) {
	world := `start: a
maps:
  - id: a
    tmx: a.tmx
    background: a.png
    right: b
  - id: b
    tmx: a.tmx
    gravity: true
    left: a
`
	fsys := fstest.MapFS{
		"maps/world.yaml": {Data: []byte(world)},
		"maps/a.tmx":      {Data: []byte(testTMX)},
	}

	reg, err := LoadRegistry(fsys, "maps/world.yaml")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if reg.Start != "a" || reg.Len() != 2 {
		t.Fatalf("start=%q len=%d", reg.Start, reg.Len())
	}
	b, ok := reg.Get("b")
	if !ok {
		t.Fatal("map b missing")
	}
	if !b.Gravity || b.Left.Target != "a" || !b.Left.Open() || b.Right.Open() {
		t.Errorf("map b = %+v", b)
	}
	if b.NPC() != (Point{X: 800, Y: 400}) {
		t.Errorf("first NPC anchor = %v", b.NPC())
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	tests := []struct {
		name  string
		world string
		want  error
	}{
		{
			name:  "unknown target",
			world: "maps:\n  - id: a\n    tmx: a.tmx\n    right: nowhere\n",
			want:  ErrUnknownTarget,
		},
		{
			name:  "unknown start",
			world: "start: z\nmaps:\n  - id: a\n    tmx: a.tmx\n",
			want:  ErrUnknownTarget,
		},
		{
			name:  "duplicate id",
			world: "maps:\n  - id: a\n    tmx: a.tmx\n  - id: a\n    tmx: a.tmx\n",
			want:  ErrInvalidMap,
		},
		{
			name:  "missing tmx",
			world: "maps:\n  - id: a\n",
			want:  ErrInvalidMap,
		},
		{
			name:  "no maps",
			world: "start: a\n",
			want:  ErrInvalidMap,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"world.yaml": {Data: []byte(tt.world)},
				"a.tmx":      {Data: []byte(testTMX)},
			}
			_, err := LoadRegistry(fsys, "world.yaml")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRegistryMissingFiles(t *testing.T) {
	fsys := fstest.MapFS{"world.yaml": {Data: []byte("maps:\n  - id: a\n    tmx: gone.tmx\n")}}
	_, err := LoadRegistry(fsys, "world.yaml")
	if err == nil || !strings.Contains(err.Error(), "gone.tmx") {
		t.Errorf("err = %v, want mention of gone.tmx", err)
	}

	if _, err := LoadRegistry(fstest.MapFS{}, "world.yaml"); err == nil {
		t.Error("missing world file should fail")
	}
}

func TestTargetWithoutTrigger(t *testing.T) {
	a := NewMapDefinition(Entry{ID: "a", Right: "b"}, Layout{NPCs: []Point{{}}, Shops: []Point{{}}})
	b := NewMapDefinition(Entry{ID: "b"}, Layout{NPCs: []Point{{}}, Shops: []Point{{}}})
	if _, err := NewRegistry("", a, b); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("err = %v, want ErrInvalidMap", err)
	}
}

func TestDefinitionIsNotMutable(t *testing.T) {
	walls := []Rect{{X1: 0, Y1: 0, X2: 10, Y2: 10}}
	def := NewMapDefinition(Entry{ID: "a"}, Layout{Walls: walls, NPCs: []Point{{}}, Shops: []Point{{}}})

	walls[0].X2 = 99
	got := def.Walls()
	got[0].Y2 = 99

	if w := def.Walls()[0]; w != (Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}) {
		t.Errorf("definition wall changed to %v", w)
	}
}

func TestEmbeddedWorld(t *testing.T) {
	reg, err := LoadRegistry(assets.Levels(), "world.yaml")
	if err != nil {
		t.Fatalf("embedded world: %v", err)
	}
	village, ok := reg.Get("village")
	if !ok {
		t.Fatal("village missing")
	}
	if village.Gravity || village.Left.Open() || village.Right.Target != "forest" {
		t.Errorf("village = %+v", village)
	}
	forest, ok := reg.Get("forest")
	if !ok {
		t.Fatal("forest missing")
	}
	if !forest.Gravity || forest.Left.Target != "village" || forest.Right.Open() {
		t.Errorf("forest = %+v", forest)
	}
	if reg.Start != "village" {
		t.Errorf("start = %q", reg.Start)
	}
}

func TestIsMapFile(t *testing.T) {
	for path, want := range map[string]bool{
		"maps/world.yaml": true,
		"maps/a.TMX":      true,
		"maps/a.yml":      true,
		"maps/a.png":      false,
		"maps/.a.tmx.swp": false,
	} {
		if got := IsMapFile(path); got != want {
			t.Errorf("IsMapFile(%q) = %v, want %v", path, got, want)
		}
	}
}
