// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

// WindowInfo is an opaque handle to a native window, tagged by backend.
// Constructors are total over well-formed native handles; a null or
// stale native handle is the backend's problem, not validated here.
// The caller owns the WindowInfo and discards it when the backend
// window goes away; this package never mutates one after construction.
type WindowInfo struct {
	backend Backend

	// X11 payload.
	display uintptr
	screen  int
	root    uintptr
	visual  uintptr

	// Primary native handle: X11 window, Win32 HWND, NSWindow,
	// Carbon WindowRef or SDL_Window.
	handle uintptr

	// Cocoa payload.
	view uintptr

	// Carbon payload.
	isControl bool

	// Viewport offset callbacks for Cocoa/Carbon child views.
	xOffset, yOffset func() int
}

// NewX11WindowInfo wraps an X11 window. display is the Display pointer
// from XOpenDisplay, window and root are window IDs, visual the chosen
// XVisualInfo.
func NewX11WindowInfo(display uintptr, screen int, window, root, visual uintptr) *WindowInfo {
	return &WindowInfo{
		backend: X11,
		display: display,
		screen:  screen,
		handle:  window,
		root:    root,
		visual:  visual,
	}
}

// NewWin32WindowInfo wraps a Win32 window handle.
func NewWin32WindowInfo(hwnd uintptr) *WindowInfo {
	return &WindowInfo{backend: Win32, handle: hwnd}
}

// NewCocoaWindowInfo wraps an NSWindow and its content NSView. The
// offset callbacks report the view's viewport origin within the
// window; either may be nil for a view at the origin.
func NewCocoaWindowInfo(window, view uintptr, xOffset, yOffset func() int) *WindowInfo {
	return &WindowInfo{
		backend: Cocoa,
		handle:  window,
		view:    view,
		xOffset: xOffset,
		yOffset: yOffset,
	}
}

// NewCarbonWindowInfo wraps a Carbon WindowRef. isControl marks a
// handle that refers to an embedded control rather than a whole
// window; the offset callbacks locate its viewport as for Cocoa.
func NewCarbonWindowInfo(window uintptr, isControl bool, xOffset, yOffset func() int) *WindowInfo {
	return &WindowInfo{
		backend:   Carbon,
		handle:    window,
		isControl: isControl,
		xOffset:   xOffset,
		yOffset:   yOffset,
	}
}

// NewSDL2WindowInfo wraps an SDL_Window handle.
func NewSDL2WindowInfo(window uintptr) *WindowInfo {
	return &WindowInfo{backend: SDL2, handle: window}
}

// NewDummyWindowInfo returns the no-op handle for the dummy backend.
func NewDummyWindowInfo() *WindowInfo {
	return &WindowInfo{backend: Dummy}
}

// Backend returns the backend tag, the only part of a WindowInfo this
// module ever interprets.
func (w *WindowInfo) Backend() Backend { return w.backend }

// Handle returns the primary native handle.
func (w *WindowInfo) Handle() uintptr { return w.handle }

func (w *WindowInfo) String() string {
	switch w.backend {
	case X11:
		return fmt.Sprintf("X11.WindowInfo: display %#x, screen %d, window %#x, root %#x", w.display, w.screen, w.handle, w.root)
	case Dummy:
		return "Dummy.WindowInfo"
	default:
		return fmt.Sprintf("%v.WindowInfo: handle %#x", w.backend, w.handle)
	}
}
