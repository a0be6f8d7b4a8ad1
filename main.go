package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/fonts"
	"github.com/automoto/pixelrpg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// layouter is implemented by scenes that scale to the window.
type layouter interface {
	Layout(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if closer, ok := g.scene.(interface{ Close() }); ok {
		closer.Close()
	}
	g.scene = scene.(Scene)
	if l, ok := g.scene.(layouter); ok && !g.bounds.Empty() {
		l.Layout(g.bounds.Dx(), g.bounds.Dy())
	}
}

func NewGame(opts scenes.WorldOptions) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the drawing surface; the world scales its
// logical coordinates onto it.
func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	g.bounds = image.Rect(0, 0, width, height)
	if l, ok := g.scene.(layouter); ok {
		l.Layout(width, height)
	}
	return width, height
}

func main() {
	var opts scenes.WorldOptions
	flag.StringVar(&opts.MapsDir, "maps", "", "directory holding world.yaml and the TMX maps (default: embedded maps)")
	flag.BoolVar(&opts.Watch, "watch", false, "reload maps from -maps when they change")
	flag.StringVar(&opts.AssetsDir, "assets", "assets/images", "directory holding sprite and background images")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "start in the world, skipping the menu")
	flag.BoolVar(&config.Debug.ShowWalls, "debug", config.Debug.ShowWalls, "start with the wall and trigger overlay shown")
	flag.Parse()

	if opts.Watch && opts.MapsDir == "" {
		log.Printf("-watch needs -maps; embedded maps are not watched")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pixel RPG")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
