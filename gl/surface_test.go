// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/DDholder/opentk/binding"
	"github.com/DDholder/opentk/gl"
)

func TestSurfaceDeclarations(t *testing.T) {
	for _, tc := range []struct {
		surface   *gl.Surface
		namespace string
		prefix    string
	}{
		{gl.NewSurface(), "GL", "gl"},
		{gl.NewWGLSurface(), "WGL", "wgl"},
		{gl.NewGLXSurface(), "GLX", "glX"},
	} {
		if got := tc.surface.Namespace(); got != tc.namespace {
			t.Errorf("got namespace %q, expected %q", got, tc.namespace)
		}
		slots := tc.surface.Slots()
		if len(slots) == 0 {
			t.Fatalf("%s surface declares no slots", tc.namespace)
		}
		for _, s := range slots {
			if !strings.HasPrefix(s.Name, tc.prefix) {
				t.Errorf("%s slot %q does not carry the %q prefix", tc.namespace, s.Name, tc.prefix)
			}
			if s.Sig == nil || s.Sig.Kind() != reflect.Func {
				t.Errorf("%s slot %q has no function signature", tc.namespace, s.Name)
			}
			if s.Available() {
				t.Errorf("%s slot %q is bound before any load", tc.namespace, s.Name)
			}
		}
	}
}

func TestSupportedHealsBinding(t *testing.T) {
	s := gl.NewSurface()
	addrs := map[string]uintptr{}
	resolve := func(name string) uintptr { return addrs[name] }

	if s.Supported(resolve, "glGenBuffers") {
		t.Error("got supported before the entry point exists")
	}
	if s.Dirty() {
		t.Error("failed probe marked the surface dirty")
	}

	// The extension appears (for example, after a context change); the
	// next query binds it without a full namespace reload.
	addrs["glGenBuffers"] = 0x4000
	if !s.Supported(resolve, "glGenBuffers") {
		t.Error("got unsupported after the entry point appeared")
	}
	if !s.Dirty() {
		t.Error("availability change did not mark the surface dirty")
	}
	if !s.Lookup("glGenBuffers").Available() {
		t.Error("probe reported support but left the slot unbound")
	}
}

func TestLoadAllOverSurface(t *testing.T) {
	s := gl.NewGLXSurface()
	n, err := binding.LoadAll(s, func(name string) uintptr {
		if name == "glXCreateContextAttribsARB" || name == "glXChooseFBConfig" {
			return 0x7000
		}
		return 0
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("got %d bound slots, expected 2", n)
	}
}
