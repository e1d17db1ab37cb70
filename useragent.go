package e2ekit

import (
	"fmt"
	"runtime"

	"github.com/go-rod/rod/lib/devices"
	"github.com/go-rod/rod/lib/proto"
)

const (
	defWebkitVer = "537.36"
	defChromeVer = "129.0.0.0"
)

// DeviceMode is the kind of device the browser emulates.  The library page
// renders different search inputs for desktop and mobile browsers.
type DeviceMode int

const (
	Desktop DeviceMode = iota
	Mobile
)

func (m DeviceMode) String() string {
	switch m {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	default:
		return fmt.Sprintf("DeviceMode(%d)", int(m))
	}
}

// device returns the rod device emulated in the mode.
func (m DeviceMode) device() devices.Device {
	if m == Mobile {
		return devices.IPhoneX
	}
	return devices.Clear
}

// UserAgent returns a desktop Chrome user agent string for the given
// versions and OS token.  Empty versions are replaced with defaults.
func UserAgent(webkitVer, chromeVer, os string) string {
	if webkitVer == "" {
		webkitVer = defWebkitVer
	}
	if chromeVer == "" {
		chromeVer = defChromeVer
	}
	return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/%s (KHTML, like Gecko) Chrome/%s Safari/%s", os, webkitVer, chromeVer, webkitVer)
}

// DefaultUserAgent is the desktop user agent for the current OS.
func DefaultUserAgent() string {
	return UserAgent("", "", userAgentOS(runtime.GOOS))
}

func userAgentOS(goos string) string {
	switch goos {
	case "darwin":
		return "Macintosh; Intel Mac OS X 10_15_7"
	case "windows":
		return "Windows NT 10.0; Win64; x64"
	default:
		return "X11; Linux x86_64"
	}
}

//go:generate mockgen -destination=useragent_mocks_test.go -package=e2ekit -source useragent.go

type userAgentSetter interface {
	SetUserAgent(req *proto.NetworkSetUserAgentOverride) error
}

// setUserAgent sets the user agent for the page.  In mobile mode the device
// user agent is kept.
func (o options) setUserAgent(page userAgentSetter) error {
	if o.userAgent == "" || o.mode == Mobile {
		return nil
	}
	return page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: o.userAgent})
}
