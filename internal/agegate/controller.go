package agegate

import (
	"context"
	"time"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
)

// formatErrorMessage is shown for any submission that fails parsing, range
// or calendar validation. It is deliberately distinct from the configured
// under-age rejection message.
const formatErrorMessage = "Please enter a valid date."

// State is the outcome of one submission.
type State int

const (
	StateUnverified State = iota
	StateInvalid
	StateUnderage
	StateVerified
)

// Deps are the injected capabilities for one controller invocation.
type Deps struct {
	Store  *DecisionStore
	View   View
	Chrome PageChrome
	// Defer schedules the initial focus placement after rendering settles.
	// Defaults to running immediately.
	Defer func(func())
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Controller drives one age-gate invocation: it decides whether the dialog
// is needed, renders it, validates submissions, persists the affirmative
// decision, and restores the page on success. There is no cancel path; once
// open, the only way out is successful verification.
type Controller struct {
	cfg    domain.GateConfig
	store  *DecisionStore
	view   View
	chrome PageChrome
	now    func() time.Time
	focus  Control
	open   bool
}

// Mount sets up the gate on the given block. When the decision store
// already reports verified, the mount is torn down with no dialog rendered
// and the returned controller is closed. Otherwise the configuration is
// resolved, the mount is forced visible, page scroll is locked, the dialog
// is rendered, and initial focus is deferred onto the month input.
func Mount(ctx context.Context, block *domain.Block, deps Deps) (*Controller, error) {
	if deps.Defer == nil {
		deps.Defer = func(fn func()) { fn() }
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	c := &Controller{
		store:  deps.Store,
		view:   deps.View,
		chrome: deps.Chrome,
		now:    deps.Now,
	}

	if c.store.Verified(ctx) {
		c.view.Teardown()
		return c, nil
	}

	c.cfg = ResolveConfig(block)
	c.chrome.ForceVisible()
	c.chrome.LockScroll()
	if err := c.view.Render(c.cfg); err != nil {
		c.chrome.RestoreScroll()
		return nil, err
	}
	c.open = true
	deps.Defer(func() {
		c.focus = ControlMonth
		c.view.Focus(ControlMonth)
	})
	return c, nil
}

// Open reports whether the dialog is currently presented.
func (c *Controller) Open() bool { return c.open }

// Config returns the resolved configuration. Zero when the mount
// short-circuited on a prior decision.
func (c *Controller) Config() domain.GateConfig { return c.cfg }

// Submit runs the validation state machine against the view's current input
// buffers. Any previous error is cleared before re-validating. Invalid and
// under-age submissions leave the dialog open for correction; a verified
// submission persists the decision, tears the mount down, and restores page
// scroll.
func (c *Controller) Submit(ctx context.Context) State {
	if !c.open {
		return StateVerified
	}
	c.view.ClearError()

	month, day, year := c.view.Values()
	now := c.now()
	dob, ok := ParseBirthDate(month, day, year, now)
	if !ok {
		c.view.ShowError(formatErrorMessage)
		return StateInvalid
	}
	if Age(dob, now) < c.cfg.MinAge {
		c.view.ShowError(c.cfg.ErrorMessage)
		return StateUnderage
	}

	c.store.MarkVerified(ctx, c.cfg.StorageDurationDays)
	c.view.Teardown()
	c.chrome.RestoreScroll()
	c.open = false
	return StateVerified
}

// HandleKey applies the dialog's keyboard behaviour: Tab and Shift-Tab
// cycle focus through the four controls, wrapping at either end, and
// Escape is suppressed so the gate cannot be dismissed by keyboard.
func (c *Controller) HandleKey(k Key) {
	if !c.open {
		return
	}
	switch k {
	case KeyTab:
		c.moveFocus(1)
	case KeyShiftTab:
		c.moveFocus(-1)
	case KeyEscape:
		// Non-dismissible: swallow the key.
	}
}

// FocusedControl returns the control currently holding focus.
func (c *Controller) FocusedControl() Control { return c.focus }

func (c *Controller) moveFocus(delta int) {
	n := len(focusOrder)
	idx := (int(c.focus) + delta + n) % n
	c.focus = focusOrder[idx]
	c.view.Focus(c.focus)
}
