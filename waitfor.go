package e2ekit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod/lib/utils"
)

const (
	selLoadingOverlay = `[data-e2e="loading-fullpage"]`

	defPollInterval    = 50 * time.Millisecond
	defMaxPollInterval = 500 * time.Millisecond
)

// ErrTimeout is the cause of a wait that did not complete in time.
var ErrTimeout = errors.New("timed out")

// ErrWait is returned when a wait condition is not met.
type ErrWait struct {
	Condition string
	Timeout   time.Duration
	Err       error
}

func (e ErrWait) Error() string {
	if errors.Is(e.Err, ErrTimeout) {
		return fmt.Sprintf("waiting for %s: timed out after %s", e.Condition, e.Timeout)
	}
	return fmt.Sprintf("waiting for %s: %v", e.Condition, e.Err)
}

func (e ErrWait) Unwrap() error {
	return e.Err
}

// WaitFor waits for page conditions.  Each wait is bounded by the timeout
// and fails with ErrWait naming the condition.
type WaitFor struct {
	timeout     time.Duration
	interval    time.Duration
	maxInterval time.Duration
	lg          Logger
}

// NewWaitFor returns a wait helper with the given per-wait timeout.
func NewWaitFor(timeout time.Duration, lg Logger) *WaitFor {
	if timeout <= 0 {
		timeout = defWaitTimeout
	}
	if lg == nil {
		lg = slog.Default()
	}
	return &WaitFor{
		timeout:     timeout,
		interval:    defPollInterval,
		maxInterval: defMaxPollInterval,
		lg:          lg,
	}
}

// Timeout returns the per-wait timeout.
func (w *WaitFor) Timeout() time.Duration {
	return w.timeout
}

func (w *WaitFor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeoutCause(ctx, w.timeout, ErrTimeout)
}

// fail wraps err.  If the wait context is done, the context cause replaces
// the driver error.
func (w *WaitFor) fail(ctx context.Context, condition string, err error) error {
	if ctx.Err() != nil {
		err = context.Cause(ctx)
	}
	w.lg.Debug("wait failed", "condition", condition, "err", err)
	return ErrWait{Condition: condition, Timeout: w.timeout, Err: err}
}

// PageToFullyLoad waits for the page load event and for the full page
// loading overlay to disappear.
func (w *WaitFor) PageToFullyLoad(ctx context.Context, p pager) error {
	const condition = "page to fully load"
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	if err := p.WaitLoad(ctx); err != nil {
		return w.fail(ctx, condition, err)
	}
	overlays, err := p.Elements(ctx, selLoadingOverlay)
	if err != nil {
		return w.fail(ctx, condition, err)
	}
	for _, el := range overlays {
		if err := el.WaitInvisible(ctx); err != nil {
			return w.fail(ctx, condition, err)
		}
	}
	return nil
}

// VisibilityOf waits for el to become visible.
func (w *WaitFor) VisibilityOf(ctx context.Context, el elementer, msg string) error {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	if err := el.WaitVisible(ctx); err != nil {
		return w.fail(ctx, msg, err)
	}
	return nil
}

// ElementToBeClickable waits for el to become visible and enabled.
func (w *WaitFor) ElementToBeClickable(ctx context.Context, el elementer, msg string) error {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	if err := el.WaitVisible(ctx); err != nil {
		return w.fail(ctx, msg, err)
	}
	if err := el.WaitEnabled(ctx); err != nil {
		return w.fail(ctx, msg, err)
	}
	return nil
}

// PresenceOf waits for an element matching selector to appear under f and
// returns it.
func (w *WaitFor) PresenceOf(ctx context.Context, f finder, selector string, msg string) (elementer, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	el, err := f.Element(ctx, selector)
	if err != nil {
		return nil, w.fail(ctx, msg, err)
	}
	return el, nil
}

// Until polls cond with backoff until it returns true or an error.
func (w *WaitFor) Until(ctx context.Context, msg string, cond func(ctx context.Context) (bool, error)) error {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	sleeper := utils.BackoffSleeper(w.interval, w.maxInterval, nil)
	if err := utils.Retry(ctx, sleeper, func() (bool, error) {
		ok, err := cond(ctx)
		if err != nil {
			// retry ignores errors unless told to stop.
			return true, err
		}
		return ok, nil
	}); err != nil {
		return w.fail(ctx, msg, err)
	}
	return nil
}

// finder is anything that can wait for a child element: a page or an
// element.
type finder interface {
	Element(ctx context.Context, selector string) (elementer, error)
}
