// SPDX-License-Identifier: Unlicense OR MIT

// Package graphics defines the visual/framebuffer mode requested for a
// rendering context and the negotiation policy that degrades an
// unsatisfiable request one attribute at a time.
package graphics

import "fmt"

// Mode is a requested visual configuration. It is a value: negotiation
// returns new Modes, never mutates one in place.
type Mode struct {
	// Color is the color bit depth.
	Color int
	// Depth is the depth-buffer bit depth.
	Depth int
	// Stencil is the stencil-buffer bit depth.
	Stencil int
	// Samples is the antialiasing sample count.
	Samples int
	// Accum is the accumulator-buffer bit depth.
	Accum int
	// Buffers is the number of color buffers (2 = double buffering).
	Buffers int
	// Stereo requests stereoscopic rendering.
	Stereo bool
}

// Default is the canonical starting request: 32-bit color, 24-bit
// depth, double buffered.
var Default = Mode{Color: 32, Depth: 24, Buffers: 2}

func (m Mode) String() string {
	return fmt.Sprintf("color %d, depth %d, stencil %d, samples %d, accum %d, buffers %d, stereo %v",
		m.Color, m.Depth, m.Stencil, m.Samples, m.Accum, m.Buffers, m.Stereo)
}
