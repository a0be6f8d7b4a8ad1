package components

import (
	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Registry   *leveldata.Registry
	Current    *leveldata.MapDefinition
	Background *ebiten.Image
	Assets     *assets.Loader // nil in headless worlds
}

var Level = donburi.NewComponentType[LevelData]()
