// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin

package platform

import (
	"log/slog"

	"github.com/DDholder/opentk"
	"github.com/DDholder/opentk/binding"
	"github.com/ebitengine/purego"
)

const openGLFramework = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// glResolver resolves against the OpenGL framework. All entry points,
// core and extension alike, are plain exports there, so Dlsym is the
// whole mechanism.
func glResolver() binding.Resolver {
	handle, err := purego.Dlopen(openGLFramework, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		opentk.Logger().Warn("OpenGL framework unavailable", slog.Any("err", err))
		return nullResolver
	}
	return func(name string) uintptr {
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return 0
		}
		return addr
	}
}

// sdlResolver resolves through SDL2's own loader.
func sdlResolver() binding.Resolver {
	handle, err := purego.Dlopen("libSDL2-2.0.0.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
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
