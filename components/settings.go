package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	ShowWalls bool // debug overlay of walls and triggers
}

var Settings = donburi.NewComponentType[SettingsData]()
