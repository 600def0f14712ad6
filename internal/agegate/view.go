package agegate

import "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"

// Control identifies one of the dialog's interactive controls, in focus
// order.
type Control int

const (
	ControlMonth Control = iota
	ControlDay
	ControlYear
	ControlSubmit
)

// focusOrder is the cyclic tab order of the dialog.
var focusOrder = [...]Control{ControlMonth, ControlDay, ControlYear, ControlSubmit}

// Key is a keyboard event the controller reacts to.
type Key int

const (
	KeyTab Key = iota
	KeyShiftTab
	KeyEscape
)

// View renders the gate dialog and exposes its controls. The dialog must
// present as a proper modal to assistive technology: dialog role, modal
// flag, and a labelling relationship to its heading. Render replaces any
// previously authored mount content so nothing beneath the overlay is
// perceivable.
type View interface {
	Render(cfg domain.GateConfig) error
	// Values returns the current month/day/year input buffers.
	Values() (month, day, year string)
	ShowError(msg string)
	ClearError()
	Focus(c Control)
	// Teardown removes the mount from the page.
	Teardown()
}

// PageChrome controls page state around the dialog: the mount is forced
// visible even if prior styling hid it, and page scroll is suspended while
// the dialog is open and restored on successful dismissal.
type PageChrome interface {
	ForceVisible()
	LockScroll()
	RestoreScroll()
}
