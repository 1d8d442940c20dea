// SPDX-License-Identifier: Unlicense OR MIT

// Package platform selects the active windowing backend, exposes the
// matching native symbol resolver, and constructs the opaque window
// handles context-creation code consumes.
package platform

import (
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/DDholder/opentk"
)

// Backend identifies a native windowing backend.
type Backend uint8

const (
	// Dummy is the no-op backend, always available as a fallback.
	Dummy Backend = iota
	// X11 is the X window system backend.
	X11
	// Win32 is the Windows backend.
	Win32
	// Cocoa is the modern macOS backend.
	Cocoa
	// Carbon is the legacy macOS backend.
	Carbon
	// SDL2 delegates windowing to SDL2.
	SDL2
)

func (b Backend) String() string {
	switch b {
	case X11:
		return "X11"
	case Win32:
		return "Win32"
	case Cocoa:
		return "Cocoa"
	case Carbon:
		return "Carbon"
	case SDL2:
		return "SDL2"
	default:
		return "Dummy"
	}
}

var (
	detectOnce sync.Once
	active     Backend
)

// Detect returns the active backend. The choice is made once, at first
// use, and holds for the process lifetime. OPENTK_BACKEND overrides
// probing (values: x11, win32, cocoa, carbon, sdl2, dummy); otherwise
// the platform is probed from GOOS and the environment, falling back
// to the dummy backend when no windowing system is reachable.
func Detect() Backend {
	detectOnce.Do(func() {
		active = detectBackend()
		opentk.Logger().Info("backend selected", slog.String("backend", active.String()))
	})
	return active
}

func detectBackend() Backend {
	switch os.Getenv("OPENTK_BACKEND") {
	case "x11":
		return X11
	case "win32":
		return Win32
	case "cocoa":
		return Cocoa
	case "carbon":
		return Carbon
	case "sdl2":
		return SDL2
	case "dummy":
		return Dummy
	}
	switch runtime.GOOS {
	case "windows":
		return Win32
	case "darwin":
		return Cocoa
	case "linux", "freebsd", "openbsd":
		if os.Getenv("DISPLAY") != "" {
			return X11
		}
	}
	return Dummy
}

// errorTrapping is the process-wide native error-interception switch.
// It is only toggled from setup code before worker activity begins, so
// a plain bool with last-writer-wins semantics is sufficient.
var errorTrapping bool

// SetErrorTrapping toggles interception of native windowing errors by
// the host's own error switch. The trapping itself happens outside
// this package; only the flag lives here.
func SetErrorTrapping(on bool) {
	errorTrapping = on
}

// ErrorTrapping reports whether native error interception is enabled.
func ErrorTrapping() bool { return errorTrapping }
