package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's display-space collision box.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase holding every wall and the player box. It is
// rebuilt whenever the viewport scale changes.
var Space = donburi.NewComponentType[resolv.Space]()
