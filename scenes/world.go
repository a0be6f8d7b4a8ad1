package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/pixelrpg/assets"
	"github.com/automoto/pixelrpg/components"
	cfg "github.com/automoto/pixelrpg/config"
	"github.com/automoto/pixelrpg/leveldata"
	"github.com/automoto/pixelrpg/systems"
	"github.com/automoto/pixelrpg/systems/factory"
	"github.com/automoto/pixelrpg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions selects where maps and images come from.
type WorldOptions struct {
	MapsDir   string // empty uses the embedded maps
	WorldFile string
	Watch     bool // reload maps from MapsDir on change
	AssetsDir string
}

// WorldScene is the game itself.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         WorldOptions
	dialogUI     *ui.DialogUI
	watcher      *leveldata.Watcher
	mapsFS       fs.FS
	once         sync.Once

	surfaceW, surfaceH int
}

func NewWorldScene(sc SceneChanger, opts WorldOptions) *WorldScene {
	if opts.WorldFile == "" {
		opts.WorldFile = "world.yaml"
	}
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if d, ok := systems.PendingDialog(ws.ecs); ok {
		switch d.Kind {
		case components.DialogShop:
			ws.dialogUI.ShowShop()
		default:
			ws.dialogUI.ShowMessage(d.Title, d.Message)
		}
	}
	ws.dialogUI.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	ws.dialogUI.Draw(screen)
}

// Layout receives the surface size from the game's Layout.
func (ws *WorldScene) Layout(width, height int) {
	ws.surfaceW, ws.surfaceH = width, height
	if ws.ecs != nil {
		systems.SetSurfaceSize(ws.ecs, width, height)
	}
}

// Close stops the map watcher, if any.
func (ws *WorldScene) Close() {
	if ws.watcher != nil {
		_ = ws.watcher.Close()
	}
}

func (ws *WorldScene) configure() {
	ws.mapsFS = assets.Levels()
	if ws.opts.MapsDir != "" {
		ws.mapsFS = os.DirFS(ws.opts.MapsDir)
	}
	registry, err := leveldata.LoadRegistry(ws.mapsFS, ws.opts.WorldFile)
	if err != nil {
		panic("failed to load maps: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.DispatchIntents)
	ecs.AddSystem(systems.UpdateTransition)

	// The world freezes behind a dialog
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSimulation))

	// Animation cadences keep running behind a dialog
	ecs.AddSystem(systems.UpdateAttack)
	ecs.AddSystem(systems.UpdateIdleLoop)

	if ws.opts.Watch && ws.opts.MapsDir != "" {
		ws.startWatcher(ecs)
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHints)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	var loader *assets.Loader
	if ws.opts.AssetsDir != "" {
		loader = assets.NewLoader(os.DirFS(ws.opts.AssetsDir))
	}

	// The viewport must know the surface before the first map is scaled.
	factory.CreateLevel(ws.ecs, registry, loader, ws.surfaceW, ws.surfaceH)

	ws.dialogUI = ui.NewDialogUI(
		func() int { return systems.Gold(ws.ecs) },
		func(item cfg.ShopItem) string {
			msg, _ := systems.Purchase(ws.ecs, item)
			return msg
		},
		func() { systems.CloseDialog(ws.ecs) },
	)
}

func (ws *WorldScene) startWatcher(e *ecs.ECS) {
	w, err := leveldata.NewWatcher(ws.opts.MapsDir)
	if err != nil {
		log.Printf("[reload] watcher disabled: %v", err)
		return
	}
	ws.watcher = w
	log.Printf("[reload] watching %s", ws.opts.MapsDir)

	e.AddSystem(func(e *ecs.ECS) {
		select {
		case err := <-w.Errors:
			log.Printf("[reload] watcher error: %v", err)
		default:
		}
		systems.UpdateMapReload(e, w.Events, ws.mapsFS, ws.opts.WorldFile)
	})
}
