package ui

import (
	"bytes"

	cfg "github.com/automoto/pixelrpg/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the ebitenui font faces shared by every window.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	return faces{
		title:  &text.GoTextFace{Source: bold, Size: cfg.UI.TitleFontSize},
		normal: &text.GoTextFace{Source: regular, Size: cfg.UI.DialogFontSize},
		small:  &text.GoTextFace{Source: regular, Size: cfg.UI.HUDFontSize},
	}
}
