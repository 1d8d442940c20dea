// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "github.com/DDholder/opentk/binding"

// NewWGLSurface returns the "WGL" capability surface: the Windows
// pixel-format and context-creation extensions. None of these exist in
// the opengl32 export table, so every slot depends on the driver.
func NewWGLSurface() *Surface {
	return &Surface{binding.NewTable("WGL", []binding.Desc{
		{Name: "wglGetExtensionsStringARB", Sig: sig((func(uintptr) *byte)(nil))},
		{Name: "wglGetExtensionsStringEXT", Sig: sig((func() *byte)(nil))},
		{Name: "wglChoosePixelFormatARB", Sig: sig((func(uintptr, *int32, *float32, uint32, *int32, *uint32) int32)(nil))},
		{Name: "wglGetPixelFormatAttribivARB", Sig: sig((func(uintptr, int32, int32, uint32, *int32, *int32) int32)(nil))},
		{Name: "wglGetPixelFormatAttribfvARB", Sig: sig((func(uintptr, int32, int32, uint32, *int32, *float32) int32)(nil))},
		{Name: "wglCreateContextAttribsARB", Sig: sig((func(uintptr, uintptr, *int32) uintptr)(nil))},
		{Name: "wglSwapIntervalEXT", Sig: sig((func(int32) int32)(nil))},
		{Name: "wglGetSwapIntervalEXT", Sig: sig((func() int32)(nil))},
		{Name: "wglCreatePbufferARB", Sig: sig((func(uintptr, int32, int32, int32, *int32) uintptr)(nil))},
		{Name: "wglGetPbufferDCARB", Sig: sig((func(uintptr) uintptr)(nil))},
		{Name: "wglReleasePbufferDCARB", Sig: sig((func(uintptr, uintptr) int32)(nil))},
		{Name: "wglDestroyPbufferARB", Sig: sig((func(uintptr) int32)(nil))},
		{Name: "wglQueryPbufferARB", Sig: sig((func(uintptr, int32, *int32) int32)(nil))},
	})}
}
