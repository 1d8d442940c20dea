// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"unsafe"

	"github.com/DDholder/opentk/binding"
)

// NewGLXSurface returns the "GLX" capability surface: the X11
// framebuffer-config, context-creation and swap-control extensions.
func NewGLXSurface() *Surface {
	return &Surface{binding.NewTable("GLX", []binding.Desc{
		{Name: "glXQueryExtensionsString", Sig: sig((func(uintptr, int32) *byte)(nil))},
		{Name: "glXChooseFBConfig", Sig: sig((func(uintptr, int32, *int32, *int32) *uintptr)(nil))},
		{Name: "glXGetFBConfigAttrib", Sig: sig((func(uintptr, uintptr, int32, *int32) int32)(nil))},
		{Name: "glXGetVisualFromFBConfig", Sig: sig((func(uintptr, uintptr) unsafe.Pointer)(nil))},
		{Name: "glXCreateContextAttribsARB", Sig: sig((func(uintptr, uintptr, uintptr, int32, *int32) uintptr)(nil))},
		{Name: "glXCreateNewContext", Sig: sig((func(uintptr, uintptr, int32, uintptr, int32) uintptr)(nil))},
		{Name: "glXSwapIntervalEXT", Sig: sig((func(uintptr, uintptr, int32))(nil))},
		{Name: "glXSwapIntervalSGI", Sig: sig((func(int32) int32)(nil))},
		{Name: "glXSwapIntervalMESA", Sig: sig((func(uint32) int32)(nil))},
	})}
}
