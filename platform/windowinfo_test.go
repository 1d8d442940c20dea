// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"strings"
	"testing"
)

func TestWindowInfoBackends(t *testing.T) {
	xoff := func() int { return 10 }
	yoff := func() int { return 20 }
	for _, tc := range []struct {
		info   *WindowInfo
		want   Backend
		handle uintptr
	}{
		{NewX11WindowInfo(0xd15b, 0, 0x300001, 0x1a6, 0xa1), X11, 0x300001},
		{NewWin32WindowInfo(0xbeef), Win32, 0xbeef},
		{NewCocoaWindowInfo(0xcafe, 0xface, xoff, yoff), Cocoa, 0xcafe},
		{NewCarbonWindowInfo(0xcab0, true, xoff, yoff), Carbon, 0xcab0},
		{NewSDL2WindowInfo(0x5d12), SDL2, 0x5d12},
		{NewDummyWindowInfo(), Dummy, 0},
	} {
		if got := tc.info.Backend(); got != tc.want {
			t.Errorf("got backend %v, expected %v", got, tc.want)
		}
		if got := tc.info.Handle(); got != tc.handle {
			t.Errorf("%v: got handle %#x, expected %#x", tc.want, got, tc.handle)
		}
		if s := tc.info.String(); !strings.Contains(s, tc.want.String()) {
			t.Errorf("String %q does not name backend %v", s, tc.want)
		}
	}
}
