package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pixelrpg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the start screen
type MenuScene struct {
	sceneChanger SceneChanger
	world        WorldOptions
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene; opts are handed to the world
// scene it starts.
func NewMenuScene(sc SceneChanger, opts WorldOptions) *MenuScene {
	return &MenuScene{sceneChanger: sc, world: opts}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.world))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(func() { ms.shouldStart = true })
}
