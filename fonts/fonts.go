package fonts

import (
	"fmt"

	cfg "github.com/automoto/pixelrpg/config"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Hint   FontName = "hint"
	HUD    FontName = "hud"
	Dialog FontName = "dialog"
	Title  FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with, sized from the UI
// config. It must run before the first frame is drawn.
func LoadDefaults() error {
	faces := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Hint, goregular.TTF, cfg.UI.HintFontSize},
		{HUD, goregular.TTF, cfg.UI.HUDFontSize},
		{Dialog, goregular.TTF, cfg.UI.DialogFontSize},
		{Title, gobold.TTF, cfg.UI.TitleFontSize},
	}
	for _, f := range faces {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
