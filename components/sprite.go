package components

import (
	"github.com/automoto/pixelrpg/assets"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/yohamta/donburi"
)

// SpriteData selects the image an entity displays: a frame of a sheet.
type SpriteData struct {
	Sheet *assets.Sheet
	Frame int
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SheetsData holds the player's walk sheets and the two attack variants.
type SheetsData struct {
	Walk       map[cfg.Direction]*assets.Sheet
	Attack     *assets.Sheet
	BackAttack *assets.Sheet
}

// WalkSheet returns the sheet for d, falling back to the down sheet.
func (s *SheetsData) WalkSheet(d cfg.Direction) *assets.Sheet {
	if sheet := s.Walk[d]; sheet.Len() > 0 {
		return sheet
	}
	return s.Walk[cfg.DirDown]
}

var Sheets = donburi.NewComponentType[SheetsData]()
