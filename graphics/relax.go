// SPDX-License-Identifier: Unlicense OR MIT

package graphics

// Relax degrades exactly one attribute of m and reports whether it
// changed anything. Callers loop: attempt context creation, on failure
// relax and retry, until creation succeeds or Relax reports false.
//
// The order encodes policy, most to least expendable, and changing it
// changes which visual ambiguous hardware ends up with:
// accumulator buffers are obsolete and go first; sample counts step
// down one at a time rather than collapsing to zero; color is nearly
// always needed, so it is forced to 24 bits rather than dropped; and
// as a last resort the buffer count is zeroed, accepting whatever
// single or double buffering the platform picks.
func Relax(m Mode) (Mode, bool) {
	switch {
	case m.Accum != 0:
		m.Accum = 0
	case m.Buffers > 2:
		m.Buffers = 2
	case m.Samples > 0:
		m.Samples--
	case m.Stereo:
		m.Stereo = false
	case m.Stencil != 0:
		m.Stencil = 0
	case m.Depth != 0:
		m.Depth = 0
	case m.Color != 24:
		m.Color = 24
	case m.Buffers != 0:
		m.Buffers = 0
	default:
		return m, false
	}
	return m, true
}
