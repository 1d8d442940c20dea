// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"runtime"
	"testing"
)

func TestBackendOverride(t *testing.T) {
	for _, tc := range []struct {
		env  string
		want Backend
	}{
		{"x11", X11},
		{"win32", Win32},
		{"cocoa", Cocoa},
		{"carbon", Carbon},
		{"sdl2", SDL2},
		{"dummy", Dummy},
	} {
		t.Setenv("OPENTK_BACKEND", tc.env)
		if got := detectBackend(); got != tc.want {
			t.Errorf("OPENTK_BACKEND=%s selected %v, expected %v", tc.env, got, tc.want)
		}
	}
}

func TestBackendProbe(t *testing.T) {
	t.Setenv("OPENTK_BACKEND", "")
	got := detectBackend()
	switch runtime.GOOS {
	case "windows":
		if got != Win32 {
			t.Errorf("got %v on windows, expected Win32", got)
		}
	case "darwin":
		if got != Cocoa {
			t.Errorf("got %v on darwin, expected Cocoa", got)
		}
	case "linux", "freebsd", "openbsd":
		t.Setenv("DISPLAY", ":0")
		if got := detectBackend(); got != X11 {
			t.Errorf("got %v with DISPLAY set, expected X11", got)
		}
		t.Setenv("DISPLAY", "")
		if got := detectBackend(); got != Dummy {
			t.Errorf("got %v without DISPLAY, expected Dummy", got)
		}
	default:
		if got != Dummy {
			t.Errorf("got %v, expected the Dummy fallback", got)
		}
	}
}

func TestBackendString(t *testing.T) {
	names := map[Backend]string{
		X11:    "X11",
		Win32:  "Win32",
		Cocoa:  "Cocoa",
		Carbon: "Carbon",
		SDL2:   "SDL2",
		Dummy:  "Dummy",
	}
	for b, want := range names {
		if got := b.String(); got != want {
			t.Errorf("got %q, expected %q", got, want)
		}
	}
}

func TestErrorTrapping(t *testing.T) {
	defer SetErrorTrapping(false)
	if ErrorTrapping() {
		t.Error("error trapping enabled before any setup toggled it")
	}
	SetErrorTrapping(true)
	if !ErrorTrapping() {
		t.Error("error trapping not visible after enabling")
	}
	SetErrorTrapping(false)
	if ErrorTrapping() {
		t.Error("error trapping still visible after disabling")
	}
}

func TestNullResolver(t *testing.T) {
	if addr := nullResolver("glGenBuffers"); addr != 0 {
		t.Errorf("got %#x from the null resolver, expected 0", addr)
	}
}
