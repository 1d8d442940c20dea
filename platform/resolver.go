// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"sync"

	"github.com/DDholder/opentk/binding"
)

var (
	resolverOnce sync.Once
	resolver     binding.Resolver
)

// ProcResolver returns the symbol resolver for the active backend. The
// selection happens once, at first use, and the resolver is held for
// the process lifetime; it is just a function choice, with no teardown.
// The resolver itself is stateless and safe to call from any thread.
func ProcResolver() binding.Resolver {
	resolverOnce.Do(func() {
		switch Detect() {
		case Dummy:
			resolver = nullResolver
		case SDL2:
			resolver = sdlResolver()
		default:
			resolver = glResolver()
		}
	})
	return resolver
}

// nullResolver is the dummy backend's resolver: nothing resolves.
func nullResolver(string) uintptr { return 0 }
