package components

import "github.com/yohamta/donburi"

// AnchorData is the logical top-left of an NPC or shop.
type AnchorData struct {
	X, Y float64
}

var Anchor = donburi.NewComponentType[AnchorData]()
