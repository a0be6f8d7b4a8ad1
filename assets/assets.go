package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/automoto/pixelrpg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the embedded map directory (world.yaml and the TMX files).
func Levels() fs.FS {
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("embedded levels directory missing: %v", err))
	}
	return sub
}

// Sheet is a horizontal sprite strip cut into frames.
type Sheet struct {
	Name   string
	Frames []*ebiten.Image
}

// Len is the frame count; a nil sheet has none.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Frame returns frame i wrapped into range, or nil for an empty sheet.
func (s *Sheet) Frame(i int) *ebiten.Image {
	n := s.Len()
	if n == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	return s.Frames[i%n]
}

// FrameCount is how many frames of frameWidth fit in a strip, never zero.
func FrameCount(width, frameWidth int) int {
	if frameWidth <= 0 {
		return 1
	}
	n := width / frameWidth
	if n < 1 {
		return 1
	}
	return n
}

// Loader reads images from a directory. Anything missing or undecodable is
// replaced by a gray placeholder so the session never aborts on assets.
type Loader struct {
	fsys   fs.FS
	cache  map[string]*ebiten.Image
	sheets map[string]*Sheet
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		cache:  make(map[string]*ebiten.Image),
		sheets: make(map[string]*Sheet),
	}
}

// Image loads name, falling back to the placeholder.
func (l *Loader) Image(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	img, err := l.load(name)
	if err != nil {
		log.Printf("[assets] %v, using placeholder", err)
		img = Placeholder()
	}
	l.cache[name] = img
	return img
}

func (l *Loader) load(name string) (*ebiten.Image, error) {
	if l.fsys == nil || name == "" {
		return nil, fmt.Errorf("no image source for %q", name)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

// Sheet cuts name into frames of config.Sprites.FrameWidth. The placeholder
// is cut the same way, so frame-count rules hold for it too.
func (l *Loader) Sheet(name string) *Sheet {
	if s, ok := l.sheets[name]; ok {
		return s
	}

	img := l.Image(name)
	bounds := img.Bounds()
	frameW := config.Sprites.FrameWidth
	n := FrameCount(bounds.Dx(), frameW)
	if bounds.Dx() < frameW {
		frameW = bounds.Dx()
	}

	s := &Sheet{Name: name, Frames: make([]*ebiten.Image, 0, n)}
	for i := 0; i < n; i++ {
		x := bounds.Min.X + i*frameW
		rect := image.Rect(x, bounds.Min.Y, x+frameW, bounds.Max.Y)
		s.Frames = append(s.Frames, img.SubImage(rect).(*ebiten.Image))
	}
	l.sheets[name] = s
	return s
}

var placeholder *ebiten.Image

// Placeholder is the neutral gray square used for missing images.
func Placeholder() *ebiten.Image {
	if placeholder == nil {
		size := config.Sprites.PlaceholderSize
		g := config.Sprites.PlaceholderGray
		placeholder = ebiten.NewImage(size, size)
		placeholder.Fill(color.RGBA{R: g, G: g, B: g, A: 255})
	}
	return placeholder
}
