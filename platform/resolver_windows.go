// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows

package platform

import (
	"runtime"
	"unsafe"

	"github.com/DDholder/opentk/binding"
	syscall "golang.org/x/sys/windows"
)

// glResolver resolves through opengl32.dll. Extension entry points come
// from wglGetProcAddress, which only works with a current context; core
// 1.1 entry points live in the DLL's export table, so that is the
// fallback.
func glResolver() binding.Resolver {
	opengl32 := syscall.NewLazySystemDLL("opengl32.dll")
	wglGetProcAddress := opengl32.NewProc("wglGetProcAddress")
	return func(name string) uintptr {
		cname := append([]byte(name), 0)
		if wglGetProcAddress.Find() == nil {
			addr, _, _ := wglGetProcAddress.Call(uintptr(unsafe.Pointer(&cname[0])))
			runtime.KeepAlive(cname)
			// wglGetProcAddress reports failure with small sentinel
			// values as well as null.
			if addr > 3 && addr != ^uintptr(0) {
				return addr
			}
		}
		proc := opengl32.NewProc(name)
		if proc.Find() != nil {
			return 0
		}
		return proc.Addr()
	}
}

// sdlResolver resolves through SDL2's own loader.
func sdlResolver() binding.Resolver {
	sdl2 := syscall.NewLazySystemDLL("SDL2.dll")
	getProcAddress := sdl2.NewProc("SDL_GL_GetProcAddress")
	return func(name string) uintptr {
		if getProcAddress.Find() != nil {
			return 0
		}
		cname := append([]byte(name), 0)
		addr, _, _ := getProcAddress.Call(uintptr(unsafe.Pointer(&cname[0])))
		runtime.KeepAlive(cname)
		return addr
	}
}
