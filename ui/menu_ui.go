package ui

import (
	"github.com/automoto/pixelrpg/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI is the start screen: the title and a button into the game.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func()

	faces faces
}

func NewMenuUI(onStart func()) *MenuUI {
	mui := &MenuUI{OnStart: onStart, faces: loadFaces()}
	mui.buildUI()
	return mui
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	content := centered(24, 32, nil)
	content.AddChild(newLabel("Pixel RPG", &mui.faces.title, config.White))
	content.AddChild(newButton("Start Game", &mui.faces.normal, 200, 44, func() {
		mui.OnStart()
	}))

	rootContainer.AddChild(content)
	mui.UI = &ebitenui.UI{Container: rootContainer}
}
