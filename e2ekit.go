// Package e2ekit provides go-rod based helpers for driving the community
// library page in end-to-end tests: a wait helper, the action helper, a
// multi-select widget helper and the library page object.
package e2ekit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rusq/chttp"
)

const (
	defWaitTimeout     = 15 * time.Second
	serverCheckTimeout = 10 * time.Second
	debugDelay         = 500 * time.Millisecond
)

type Option func(*options)

type options struct {
	cookies         []*http.Cookie
	userAgent       string
	mode            DeviceMode
	headless        bool
	waitTimeout     time.Duration
	useBundledBrwsr bool
	localBrowser    string
	debug           bool
	lg              Logger
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithCookie adds a cookie to the browser session.
func WithCookie(cookie ...*http.Cookie) Option {
	return func(o *options) {
		o.cookies = append(o.cookies, cookie...)
	}
}

// WithUserAgent sets the user agent for the session.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithDeviceMode sets the device that the browser emulates.
func WithDeviceMode(m DeviceMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithHeadless controls whether the browser UI is shown.
func WithHeadless(b bool) Option {
	return func(o *options) {
		o.headless = b
	}
}

// WithWaitTimeout sets the timeout of every wait condition.
func WithWaitTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.waitTimeout = d
		}
	}
}

// WithBundledBrowser forces the use of the browser downloaded by rod, even
// if there is one installed on the system.
func WithBundledBrowser() Option {
	return func(o *options) {
		o.useBundledBrwsr = true
	}
}

// WithLocalBrowser sets the path to the browser executable.
func WithLocalBrowser(path string) Option {
	return func(o *options) {
		o.localBrowser = path
	}
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.lg = l
		}
	}
}

// WithDebug enables rod tracing and slows down every browser action.
func WithDebug(b bool) Option {
	return func(o *options) {
		o.debug = b
	}
}

var (
	// ErrServerNotFound indicates that the server under test did not respond.
	ErrServerNotFound = errors.New("server not found")
	// ErrNotStarted is returned when the session browser is not running.
	ErrNotStarted = errors.New("session is not started")
	// ErrAlreadyStarted is returned by Start on a running session.
	ErrAlreadyStarted = errors.New("session is already started")
	// ErrNotFound indicates that the page does not have the element.
	ErrNotFound = errors.New("element not found")
)

// ErrExpectation is returned when the page state differs from the expected.
type ErrExpectation struct {
	What string
	Want any
	Got  any
}

func (e ErrExpectation) Error() string {
	return fmt.Sprintf("expected %s to be %v, got %v", e.What, e.Want, e.Got)
}

// ErrBadURL is returned when the base URL is invalid.
type ErrBadURL struct {
	URL string
}

func (e ErrBadURL) Error() string {
	return fmt.Sprintf("invalid base url: %q", e.URL)
}

// ErrBrowser indicates the error with browser interaction.
type ErrBrowser struct {
	Err      error
	FailedTo string
}

func (e ErrBrowser) Error() string {
	return fmt.Sprintf("browser automation error: failed to %s: %v", e.FailedTo, e.Err)
}

func (e ErrBrowser) Unwrap() error {
	return e.Err
}

// Logger is the interface for the logger.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, keyvals ...interface{})
}

// Session owns a browser with a single tab pointed at the server under test.
type Session struct {
	baseURL   string
	cleanupFn []func() error
	opts      options
	page      *rod.Page
}

// New creates a new session for the server at baseURL.  It checks that the
// server responds, but does not start the browser, see [Session.Start].
func New(baseURL string, opt ...Option) (*Session, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	opts := options{
		lg:          slog.Default(),
		headless:    true,
		waitTimeout: defWaitTimeout,
	}
	opts.apply(opt)

	ctx, cancel := context.WithTimeout(context.Background(), serverCheckTimeout)
	defer cancel()
	if err := checkServer(ctx, u, opts.cookies); err != nil {
		return nil, err
	}

	return &Session{
		baseURL: u,
		opts:    opts,
	}, nil
}

// Mode returns the device mode of the session.
func (s *Session) Mode() DeviceMode {
	return s.opts.mode
}

// BaseURL returns the normalised server URL.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Start launches the browser and opens a blank tab.  The browser lives until
// ctx is cancelled or Close is called.
func (s *Session) Start(ctx context.Context) error {
	ctx, task := trace.NewTask(ctx, "Start")
	defer task.End()

	if s.page != nil {
		return ErrAlreadyStarted
	}
	browser, err := s.startBrowser(ctx)
	if err != nil {
		return err
	}
	if err := setCookies(browser, s.opts.cookies); err != nil {
		return err
	}
	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "open page"}
	}
	if err := s.opts.setUserAgent(page); err != nil {
		return ErrBrowser{Err: err, FailedTo: "set user agent"}
	}
	s.page = page
	s.opts.lg.Debug("session started", "url", s.baseURL, "mode", s.opts.mode)
	return nil
}

// LibraryPage returns the library page object bound to the session tab.
func (s *Session) LibraryPage() (*LibraryPage, error) {
	if s.page == nil {
		return nil, ErrNotStarted
	}
	return newLibraryPage((*pageWrapper)(s.page), s.baseURL, s.waitFor(), s.opts.lg), nil
}

func (s *Session) waitFor() *WaitFor {
	return NewWaitFor(s.opts.waitTimeout, s.opts.lg)
}

// Close stops the browser and releases all resources in the reverse order of
// acquisition.
func (s *Session) Close() error {
	var errs error
	slices.Reverse(s.cleanupFn)
	for _, fn := range s.cleanupFn {
		if err := fn(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	s.cleanupFn = nil
	s.page = nil
	return errs
}

func (s *Session) atClose(fn func() error) {
	s.cleanupFn = append(s.cleanupFn, fn)
}

func parseBaseURL(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrBadURL{URL: s}
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// checkServer checks that the server under test is up.  The request carries
// the session cookies, so that servers that require login answer 200.
func checkServer(ctx context.Context, uri string, cookies []*http.Cookie) error {
	cl, err := chttp.New(uri, cookies)
	if err != nil {
		return fmt.Errorf("http client: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, uri, nil)
	if err != nil {
		return err
	}
	resp, err := cl.Do(req)
	if err != nil {
		return ErrServerNotFound
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ErrServerNotFound
	}
	return nil
}

func toerrfn(fn func()) func() error {
	return func() error {
		fn()
		return nil
	}
}
