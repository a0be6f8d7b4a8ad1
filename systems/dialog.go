package systems

import (
	"github.com/automoto/pixelrpg/components"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system to skip execution while a dialog is up.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if DialogActive(e) {
			return
		}
		system(e)
	}
}

// DialogActive reports whether a dialog is requested or on screen.
func DialogActive(ecs *ecs.ECS) bool {
	d := getDialog(ecs)
	return d != nil && d.Active()
}

// PendingDialog hands a requested dialog to the UI layer exactly once.
func PendingDialog(ecs *ecs.ECS) (components.DialogData, bool) {
	d := getDialog(ecs)
	if d == nil || !d.Pending {
		return components.DialogData{}, false
	}
	d.Pending = false
	d.Open = true
	return *d, true
}

// CloseDialog is called by the UI layer when its window goes away.
func CloseDialog(ecs *ecs.ECS) {
	if d := getDialog(ecs); d != nil {
		*d = components.DialogData{}
	}
}

func openDialog(ecs *ecs.ECS, kind components.DialogKind, title, message string) {
	d := getDialog(ecs)
	if d == nil {
		return
	}
	*d = components.DialogData{
		Kind:    kind,
		Title:   title,
		Message: message,
		Pending: true,
	}
}
