// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"unsafe"

	"github.com/DDholder/opentk/binding"
)

// Surface is a capability surface for one of the GL namespaces.
type Surface struct {
	*binding.Table
}

// Supported reports whether the named entry point is currently
// available, probing it afresh through resolve. The probe goes through
// the single-slot loader, so a stale binding heals without a full
// namespace reload; a change marks the surface dirty for extension
// caches downstream.
func (s *Surface) Supported(resolve binding.Resolver, name string) bool {
	return binding.LoadOne(s, resolve, name)
}

func sig(fn any) binding.Signature { return binding.SignatureOf(fn) }

// NewSurface returns the "GL" capability surface: the core-extension
// entry points later GL versions and common ARB/EXT extensions add on
// top of the baseline exports.
func NewSurface() *Surface {
	return &Surface{binding.NewTable("GL", []binding.Desc{
		{Name: "glGenBuffers", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glDeleteBuffers", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glBindBuffer", Sig: sig((func(uint32, uint32))(nil))},
		{Name: "glBufferData", Sig: sig((func(uint32, int, unsafe.Pointer, uint32))(nil))},
		{Name: "glBufferSubData", Sig: sig((func(uint32, int, int, unsafe.Pointer))(nil))},
		{Name: "glMapBufferRange", Sig: sig((func(uint32, int, int, uint32) unsafe.Pointer)(nil))},
		{Name: "glUnmapBuffer", Sig: sig((func(uint32) byte)(nil))},
		{Name: "glGenVertexArrays", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glDeleteVertexArrays", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glBindVertexArray", Sig: sig((func(uint32))(nil))},
		{Name: "glGenFramebuffers", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glDeleteFramebuffers", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glBindFramebuffer", Sig: sig((func(uint32, uint32))(nil))},
		{Name: "glFramebufferTexture2D", Sig: sig((func(uint32, uint32, uint32, uint32, int32))(nil))},
		{Name: "glFramebufferRenderbuffer", Sig: sig((func(uint32, uint32, uint32, uint32))(nil))},
		{Name: "glCheckFramebufferStatus", Sig: sig((func(uint32) uint32)(nil))},
		{Name: "glBlitFramebuffer", Sig: sig((func(int32, int32, int32, int32, int32, int32, int32, int32, uint32, uint32))(nil))},
		{Name: "glGenRenderbuffers", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glDeleteRenderbuffers", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glBindRenderbuffer", Sig: sig((func(uint32, uint32))(nil))},
		{Name: "glRenderbufferStorage", Sig: sig((func(uint32, uint32, int32, int32))(nil))},
		{Name: "glRenderbufferStorageMultisample", Sig: sig((func(uint32, int32, uint32, int32, int32))(nil))},
		{Name: "glSampleCoverage", Sig: sig((func(float32, byte))(nil))},
		{Name: "glCreateShader", Sig: sig((func(uint32) uint32)(nil))},
		{Name: "glShaderSource", Sig: sig((func(uint32, int32, **byte, *int32))(nil))},
		{Name: "glCompileShader", Sig: sig((func(uint32))(nil))},
		{Name: "glGetShaderiv", Sig: sig((func(uint32, uint32, *int32))(nil))},
		{Name: "glGetShaderInfoLog", Sig: sig((func(uint32, int32, *int32, *byte))(nil))},
		{Name: "glDeleteShader", Sig: sig((func(uint32))(nil))},
		{Name: "glCreateProgram", Sig: sig((func() uint32)(nil))},
		{Name: "glAttachShader", Sig: sig((func(uint32, uint32))(nil))},
		{Name: "glLinkProgram", Sig: sig((func(uint32))(nil))},
		{Name: "glGetProgramiv", Sig: sig((func(uint32, uint32, *int32))(nil))},
		{Name: "glUseProgram", Sig: sig((func(uint32))(nil))},
		{Name: "glDeleteProgram", Sig: sig((func(uint32))(nil))},
		{Name: "glGetUniformLocation", Sig: sig((func(uint32, *byte) int32)(nil))},
		{Name: "glUniform1i", Sig: sig((func(int32, int32))(nil))},
		{Name: "glUniformMatrix4fv", Sig: sig((func(int32, int32, byte, *float32))(nil))},
		{Name: "glGetStringi", Sig: sig((func(uint32, uint32) *byte)(nil))},
		{Name: "glGenQueries", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glDeleteQueries", Sig: sig((func(int32, *uint32))(nil))},
		{Name: "glBeginQuery", Sig: sig((func(uint32, uint32))(nil))},
		{Name: "glEndQuery", Sig: sig((func(uint32))(nil))},
		{Name: "glGetQueryObjectuiv", Sig: sig((func(uint32, uint32, *uint32))(nil))},
	})}
}
