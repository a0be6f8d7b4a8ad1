package ui

import (
	"fmt"

	cfg "github.com/automoto/pixelrpg/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// DialogUI shows the modal windows of the world scene: a message box and
// the shop. At most one window exists; UI is nil while none is open.
type DialogUI struct {
	UI *ebitenui.UI

	// Callbacks
	Gold       func() int
	OnPurchase func(item cfg.ShopItem) string
	OnClose    func()

	faces       faces
	goldLabel   *widget.Label
	resultLabel *widget.Label
}

func NewDialogUI(gold func() int, onPurchase func(cfg.ShopItem) string, onClose func()) *DialogUI {
	return &DialogUI{
		Gold:       gold,
		OnPurchase: onPurchase,
		OnClose:    onClose,
		faces:      loadFaces(),
	}
}

// Open reports whether a window is on screen.
func (d *DialogUI) Open() bool {
	return d.UI != nil
}

// ShowMessage opens a message window with a single OK button.
func (d *DialogUI) ShowMessage(title, message string) {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel := centered(16, 10, cfg.UI.DialogBgColor)

	panel.AddChild(newLabel(title, &d.faces.normal, cfg.Orange))
	panel.AddChild(newLabel(message, &d.faces.normal, cfg.White))
	panel.AddChild(newButton("OK", &d.faces.normal, 80, 28, d.close))

	root.AddChild(panel)
	d.UI = &ebitenui.UI{Container: root}
}

// ShowShop opens the shop window listing every item for sale.
func (d *DialogUI) ShowShop() {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel := centered(16, 8, cfg.UI.DialogBgColor)

	panel.AddChild(newLabel("Shop", &d.faces.normal, cfg.Orange))
	d.goldLabel = newLabel(d.goldText(), &d.faces.normal, cfg.Yellow)
	panel.AddChild(d.goldLabel)

	for _, item := range cfg.Economy.Items {
		item := item // Capture for closure
		label := fmt.Sprintf("%s - %dG", item.Name, item.Price)
		panel.AddChild(newButton(label, &d.faces.small, 220, 26, func() {
			d.resultLabel.Label = d.OnPurchase(item)
			d.goldLabel.Label = d.goldText()
		}))
	}

	d.resultLabel = newLabel("", &d.faces.small, cfg.White)
	panel.AddChild(d.resultLabel)
	panel.AddChild(newButton("Close", &d.faces.normal, 80, 28, d.close))

	root.AddChild(panel)
	d.UI = &ebitenui.UI{Container: root}
}

func (d *DialogUI) goldText() string {
	return fmt.Sprintf("Gold: %d G", d.Gold())
}

func (d *DialogUI) close() {
	d.UI = nil
	d.goldLabel, d.resultLabel = nil, nil
	if d.OnClose != nil {
		d.OnClose()
	}
}

func (d *DialogUI) Update() {
	if d.UI == nil {
		return
	}
	d.UI.Update()
}

func (d *DialogUI) Draw(screen *ebiten.Image) {
	if d.UI == nil {
		return
	}
	d.UI.Draw(screen)
}
