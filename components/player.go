package components

import (
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/yohamta/donburi"
)

// PlayerData is the player's logical position and locomotion state. It
// survives map transitions; only X, Y and Direction are reset on arrival.
type PlayerData struct {
	X, Y           float64
	Direction      cfg.Direction
	LastHorizontal cfg.Direction // last of left/right pressed, DirNone before any
	Frame          int           // locomotion frame within the direction's sheet
	Moved          bool          // movement was committed on the last tick
}

var Player = donburi.NewComponentType[PlayerData]()
