// Package leveldata loads and validates the map registry: a YAML world file
// naming every map and its neighbors, plus one TMX file per map holding the
// geometry. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/pixelrpg/gamemath"

// Rect is a wall or trigger rectangle in logical coordinates.
type Rect = gamemath.Rect

// Point is a logical position.
type Point struct {
	X, Y float64
}

// EdgeLink connects one side of a map to a neighbor. An empty Target means
// the edge leads nowhere.
type EdgeLink struct {
	Trigger    Rect
	HasTrigger bool
	Target     string
}

// Open reports whether the edge can be used as a portal.
func (l EdgeLink) Open() bool {
	return l.HasTrigger && l.Target != ""
}

// Layout is the geometry of a map as authored in its TMX file.
type Layout struct {
	Walls         []Rect
	NPCs          []Point
	Shops         []Point
	Spawn         Point
	LeftTrigger   *Rect
	RightTrigger  *Rect
	Width, Height int
}

// Entry is one map record of the world file.
type Entry struct {
	ID         string `yaml:"id"`
	TMX        string `yaml:"tmx"`
	Background string `yaml:"background"`
	Gravity    bool   `yaml:"gravity"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
}

// NewMapDefinition combines a world-file entry with its layout. The layout
// slices are copied.
func NewMapDefinition(e Entry, l Layout) *MapDefinition {
	m := &MapDefinition{
		ID:         e.ID,
		Background: e.Background,
		Gravity:    e.Gravity,
		Spawn:      l.Spawn,
		Width:      l.Width,
		Height:     l.Height,
		Left:       EdgeLink{Target: e.Left},
		Right:      EdgeLink{Target: e.Right},
		walls:      append([]Rect(nil), l.Walls...),
		npcs:       append([]Point(nil), l.NPCs...),
		shops:      append([]Point(nil), l.Shops...),
	}
	if l.LeftTrigger != nil {
		m.Left.Trigger, m.Left.HasTrigger = *l.LeftTrigger, true
	}
	if l.RightTrigger != nil {
		m.Right.Trigger, m.Right.HasTrigger = *l.RightTrigger, true
	}
	return m
}

// MapDefinition is a single authored map. It is never mutated after the
// registry is built; accessors hand out copies.
type MapDefinition struct {
	ID         string
	Background string
	Gravity    bool
	Spawn      Point
	Left       EdgeLink
	Right      EdgeLink
	Width      int
	Height     int

	walls []Rect
	npcs  []Point
	shops []Point
}

// Walls returns a copy of the wall rectangles in authoring order.
func (m *MapDefinition) Walls() []Rect {
	out := make([]Rect, len(m.walls))
	copy(out, m.walls)
	return out
}

// NPC is the first NPC anchor.
func (m *MapDefinition) NPC() Point {
	return m.npcs[0]
}

// Shop is the first shop anchor.
func (m *MapDefinition) Shop() Point {
	return m.shops[0]
}

// NPCs returns a copy of every NPC anchor.
func (m *MapDefinition) NPCs() []Point {
	return append([]Point(nil), m.npcs...)
}

// Shops returns a copy of every shop anchor.
func (m *MapDefinition) Shops() []Point {
	return append([]Point(nil), m.shops...)
}

// Registry is the validated set of maps, looked up by id.
type Registry struct {
	Start string
	maps  map[string]*MapDefinition
	order []string
}

// Get looks up a map by id.
func (r *Registry) Get(id string) (*MapDefinition, bool) {
	m, ok := r.maps[id]
	return m, ok
}

// IDs lists map ids in world-file order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len is the number of maps.
func (r *Registry) Len() int {
	return len(r.order)
}
