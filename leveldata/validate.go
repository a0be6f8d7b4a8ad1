package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMap marks a malformed map record.
	ErrInvalidMap = errors.New("invalid map")
	// ErrUnknownTarget marks an edge pointing at a map that does not exist.
	ErrUnknownTarget = errors.New("unknown target map")
)

// NewRegistry validates defs and indexes them by id. An empty start selects
// the first map.
func NewRegistry(start string, defs ...*MapDefinition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no maps defined", ErrInvalidMap)
	}

	r := &Registry{
		Start: start,
		maps:  make(map[string]*MapDefinition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("%w: empty map id", ErrInvalidMap)
		}
		if _, dup := r.maps[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate map id %q", ErrInvalidMap, def.ID)
		}
		if err := validateMap(def); err != nil {
			return nil, err
		}
		r.maps[def.ID] = def
		r.order = append(r.order, def.ID)
	}

	if r.Start == "" {
		r.Start = r.order[0]
	}
	if _, ok := r.maps[r.Start]; !ok {
		return nil, fmt.Errorf("start map %q: %w", r.Start, ErrUnknownTarget)
	}

	for _, id := range r.order {
		def := r.maps[id]
		edges := []struct {
			side string
			link EdgeLink
		}{{TriggerLeft, def.Left}, {TriggerRight, def.Right}}
		for _, edge := range edges {
			side, link := edge.side, edge.link
			if link.Target == "" {
				continue
			}
			if _, ok := r.maps[link.Target]; !ok {
				return nil, fmt.Errorf("map %q %s edge -> %q: %w", id, side, link.Target, ErrUnknownTarget)
			}
			if !link.HasTrigger {
				return nil, fmt.Errorf("map %q %s edge: %w: target without trigger rectangle", id, side, ErrInvalidMap)
			}
		}
	}

	return r, nil
}

func validateMap(def *MapDefinition) error {
	if len(def.npcs) == 0 {
		return fmt.Errorf("map %q: %w: no NPC anchor", def.ID, ErrInvalidMap)
	}
	if len(def.shops) == 0 {
		return fmt.Errorf("map %q: %w: no shop anchor", def.ID, ErrInvalidMap)
	}
	for i, w := range def.walls {
		if w.Width() <= 0 || w.Height() <= 0 {
			return fmt.Errorf("map %q wall %d: %w: non-positive extent", def.ID, i, ErrInvalidMap)
		}
	}
	return nil
}
