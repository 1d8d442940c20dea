// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd

package platform

import (
	"log/slog"
	"os"

	"github.com/DDholder/opentk"
	"github.com/DDholder/opentk/binding"
	"github.com/ebitengine/purego"
)

// glResolver resolves through libGL. Extension entry points come from
// glXGetProcAddressARB, which may return a stub for any name; symbols
// the library exports directly are the fallback when it is missing.
// OPENTK_LIBGL overrides the library name for nonstandard installs.
func glResolver() binding.Resolver {
	lib := os.Getenv("OPENTK_LIBGL")
	if lib == "" {
		lib = "libGL.so.1"
	}
	handle, err := purego.Dlopen(lib, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		opentk.Logger().Warn("libGL unavailable", slog.String("lib", lib), slog.Any("err", err))
		return nullResolver
	}
	var getProcAddress func(name string) uintptr
	if sym, err := purego.Dlsym(handle, "glXGetProcAddressARB"); err == nil && sym != 0 {
		purego.RegisterFunc(&getProcAddress, sym)
	}
	return func(name string) uintptr {
		if getProcAddress != nil {
			if addr := getProcAddress(name); addr != 0 {
				return addr
			}
		}
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return 0
		}
		return addr
	}
}

// sdlResolver resolves through SDL2's own loader.
func sdlResolver() binding.Resolver {
	handle, err := purego.Dlopen("libSDL2-2.0.so.0", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		opentk.Logger().Warn("libSDL2 unavailable", slog.Any("err", err))
		return nullResolver
	}
	var getProcAddress func(name string) uintptr
	sym, err := purego.Dlsym(handle, "SDL_GL_GetProcAddress")
	if err != nil || sym == 0 {
		return nullResolver
	}
	purego.RegisterFunc(&getProcAddress, sym)
	return func(name string) uintptr {
		return getProcAddress(name)
	}
}
