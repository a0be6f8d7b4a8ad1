package components

import "github.com/yohamta/donburi"

type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogMessage
	DialogShop
)

// DialogData is a request for the UI layer. Gameplay sets Pending; the UI
// clears it when it opens the window and resets Kind when closed.
type DialogData struct {
	Kind    DialogKind
	Title   string
	Message string
	Pending bool
	Open    bool
}

// Active reports whether a dialog is requested or on screen.
func (d *DialogData) Active() bool {
	return d.Pending || d.Open
}

var Dialog = donburi.NewComponentType[DialogData]()
