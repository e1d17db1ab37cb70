package e2ekit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// leakless helper binary is flagged by some antivirus software on windows.
var isLeaklessEnabled = runtime.GOOS != "windows"

// ErrNoBrowsers is returned by ListBrowsers if there are no browsers
// installed on the system.
var ErrNoBrowsers = errors.New("no browsers found")

// newBrwsrLauncher creates a new browser launcher with the headless mode
// from the session options.
func (s *Session) newBrwsrLauncher() *launcher.Launcher {
	l := launcher.New().Headless(s.opts.headless).Leakless(isLeaklessEnabled).Devtools(false)
	if binpath, ok := s.opts.browserPath(); ok {
		l = l.Bin(binpath)
	}
	return l
}

// browserPath returns the browser executable to launch.  If it returns false,
// rod downloads and uses its bundled browser.
func (o options) browserPath() (string, bool) {
	if o.localBrowser != "" {
		if _, err := os.Stat(o.localBrowser); err == nil {
			return o.localBrowser, true
		}
	}
	if o.useBundledBrwsr {
		return "", false
	}
	return lookPath()
}

// startBrowser starts a new browser instance and returns a handle to it.
func (s *Session) startBrowser(ctx context.Context) (*rod.Browser, error) {
	ctx, task := trace.NewTask(ctx, "startBrowser")
	defer task.End()

	l := s.newBrwsrLauncher()
	url, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "launch"}
	}
	s.atClose(toerrfn(l.Cleanup))

	var delay time.Duration = 0
	if s.opts.debug {
		delay = debugDelay
	}

	browser := rod.New().
		Context(ctx).
		ControlURL(url).
		DefaultDevice(s.opts.mode.device()).
		Trace(s.opts.debug).
		SlowMotion(delay)
	if err := s.connect(browser); err != nil {
		return nil, err
	}
	return browser, nil
}

// connect connects to the browser.  Close is registered only for a connected
// browser, rod panics when closing one without a client.
func (s *Session) connect(browser *rod.Browser) error {
	if err := browser.Connect(); err != nil {
		return ErrBrowser{Err: err, FailedTo: "connect"}
	}
	s.atClose(browser.Close)
	return nil
}

// Browser is a browser installed on the system.
type Browser struct {
	Name string
	Path string
}

// ListBrowsers returns the Chromium-family browsers found on the system.
func ListBrowsers() ([]Browser, error) {
	var bb []Browser
	for _, path := range browserCandidates(runtime.GOOS) {
		found, err := exec.LookPath(path)
		if err != nil {
			continue
		}
		bb = append(bb, Browser{Name: filepath.Base(found), Path: found})
	}
	if len(bb) == 0 {
		return nil, ErrNoBrowsers
	}
	return bb, nil
}

// lookPath is extended launcher.LookPath that includes support for Brave
// browser.
//
// (c) MIT license: Copyright 2019 Yad Smood
func lookPath() (found string, has bool) {
	for _, path := range browserCandidates(runtime.GOOS) {
		var err error
		found, err = exec.LookPath(path)
		has = err == nil
		if has {
			break
		}
	}
	return
}

func browserCandidates(goos string) []string {
	return map[string][]string{
		"darwin": {
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser",
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
		},
		"linux": {
			"chrome",
			"google-chrome",
			"/usr/bin/google-chrome",
			"chromium",
			"chromium-browser",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/snap/bin/chromium",
			"brave-browser",
			"microsoft-edge",
		},
		"openbsd": {
			"chrome",
			"chromium",
		},
		"windows": append([]string{"chrome", "edge"}, expandWindowsExePaths(
			`Google\Chrome\Application\chrome.exe`,
			`Chromium\Application\chrome.exe`,
			`BraveSoftware\Brave-Browser\Application\brave.exe`,
			`Microsoft\Edge\Application\msedge.exe`,
		)...),
	}[goos]
}

// expandWindowsExePaths is a verbatim copy of the function from rod's
// browser.go.
//
// (c) MIT license: Copyright 2019 Yad Smood
func expandWindowsExePaths(list ...string) []string {
	newList := []string{}
	for _, p := range list {
		newList = append(
			newList,
			filepath.Join(os.Getenv("ProgramFiles"), p),
			filepath.Join(os.Getenv("ProgramFiles(x86)"), p),
			filepath.Join(os.Getenv("LocalAppData"), p),
		)
	}

	return newList
}

func setCookies(browser *rod.Browser, cookies []*http.Cookie) error {
	if len(cookies) == 0 {
		return nil
	}
	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, c := range cookies {
		params = append(params, cookieParam(c))
	}
	if err := browser.SetCookies(params); err != nil {
		return fmt.Errorf("failed to set cookies: %w", err)
	}
	return nil
}

func cookieParam(c *http.Cookie) *proto.NetworkCookieParam {
	p := &proto.NetworkCookieParam{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
	}
	if !c.Expires.IsZero() {
		p.Expires = proto.TimeSinceEpoch(c.Expires.Unix())
	}
	return p
}
