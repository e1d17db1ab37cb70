package e2ekit

import (
	"context"
	"runtime/trace"
)

// Action performs element interactions after waiting for the element to be
// ready.  Page objects must use it instead of calling Click, Input or Clear
// on elements directly.
type Action struct {
	w  *WaitFor
	lg Logger
}

// NewAction returns an action helper that waits with w.
func NewAction(w *WaitFor, lg Logger) *Action {
	if lg == nil {
		lg = w.lg
	}
	return &Action{w: w, lg: lg}
}

// Click waits for el to be clickable and clicks it.  name identifies the
// element in errors.
func (a *Action) Click(ctx context.Context, name string, el elementer) error {
	defer trace.StartRegion(ctx, "action.Click").End()
	if err := a.w.ElementToBeClickable(ctx, el, name+" to be clickable"); err != nil {
		return err
	}
	a.lg.Debug("click", "element", name)
	if err := el.Click(ctx); err != nil {
		return ErrBrowser{Err: err, FailedTo: "click " + name}
	}
	return nil
}

// SendKeys focuses el by clicking it and types keys.
func (a *Action) SendKeys(ctx context.Context, name string, el elementer, keys string) error {
	defer trace.StartRegion(ctx, "action.SendKeys").End()
	if err := a.Click(ctx, name, el); err != nil {
		return err
	}
	a.lg.Debug("send keys", "element", name)
	if err := el.Input(ctx, keys); err != nil {
		return ErrBrowser{Err: err, FailedTo: "send keys to " + name}
	}
	return nil
}

// Clear waits for el to be visible and clears its value.
func (a *Action) Clear(ctx context.Context, name string, el elementer) error {
	defer trace.StartRegion(ctx, "action.Clear").End()
	if err := a.w.VisibilityOf(ctx, el, name+" to be visible"); err != nil {
		return err
	}
	a.lg.Debug("clear", "element", name)
	if err := el.Clear(ctx); err != nil {
		return ErrBrowser{Err: err, FailedTo: "clear " + name}
	}
	return nil
}
