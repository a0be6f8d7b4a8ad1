package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// Object group and object names read from the TMX files.
const (
	GroupWalls    = "Walls"
	GroupTriggers = "Triggers"
	GroupNPC      = "NPC"
	GroupShop     = "Shop"
	GroupSpawn    = "PlayerSpawn"

	TriggerLeft  = "left"
	TriggerRight = "right"
)

// World is the top-level world file.
type World struct {
	Start string  `yaml:"start"`
	Maps  []Entry `yaml:"maps"`
}

// LoadRegistry reads the world file and every TMX it references, then
// validates the result. TMX paths are relative to the world file. It takes
// an fs.FS so callers can pass the embedded levels or os.DirFS.
func LoadRegistry(fsys fs.FS, worldPath string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, worldPath)
	if err != nil {
		return nil, fmt.Errorf("read world %s: %w", worldPath, err)
	}

	var world World
	if err := yaml.Unmarshal(data, &world); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", worldPath, err)
	}

	dir := path.Dir(worldPath)
	defs := make([]*MapDefinition, 0, len(world.Maps))
	for _, entry := range world.Maps {
		if entry.TMX == "" {
			return nil, fmt.Errorf("map %q: %w: no tmx file", entry.ID, ErrInvalidMap)
		}
		layout, err := LoadLayout(fsys, path.Join(dir, entry.TMX))
		if err != nil {
			return nil, fmt.Errorf("map %q: %w", entry.ID, err)
		}
		defs = append(defs, NewMapDefinition(entry, *layout))
	}

	return NewRegistry(world.Start, defs...)
}

// LoadLayout parses the object groups of a single TMX file.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	hasSpawn := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			rect := Rect{X1: o.X, Y1: o.Y, X2: o.X + o.Width, Y2: o.Y + o.Height}
			switch og.Name {
			case GroupWalls:
				layout.Walls = append(layout.Walls, rect)
			case GroupTriggers:
				switch strings.ToLower(o.Name) {
				case TriggerLeft:
					layout.LeftTrigger = &rect
				case TriggerRight:
					layout.RightTrigger = &rect
				}
			case GroupNPC:
				layout.NPCs = append(layout.NPCs, Point{X: o.X, Y: o.Y})
			case GroupShop:
				layout.Shops = append(layout.Shops, Point{X: o.X, Y: o.Y})
			case GroupSpawn:
				// First spawn wins
				if !hasSpawn {
					layout.Spawn = Point{X: o.X, Y: o.Y}
					hasSpawn = true
				}
			}
		}
	}

	if !hasSpawn {
		return nil, fmt.Errorf("TMX %s: %w: no %s object", tmxPath, ErrInvalidMap, GroupSpawn)
	}

	return layout, nil
}
