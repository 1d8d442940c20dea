// SPDX-License-Identifier: Unlicense OR MIT

package binding

import (
	"log/slog"

	"github.com/DDholder/opentk"
)

// LoadAll resolves every slot in the surface and rebinds it, returning
// the number of slots that resolved to a non-null entry point. A slot
// that fails to resolve is recorded as unavailable, not an error.
//
// Every binding is overwritten unconditionally; the surface's dirty
// flag is set when any slot's underlying target changed during the
// pass. Loading runs once per namespace per process in the expected
// case, so the full O(n) walk over native resolution calls is the
// intended cost and no caching beyond the surface itself is kept.
//
// LoadAll fails with *ConfigurationError when the surface is malformed:
// a nil or empty member list signals a build bug, never a capability
// gap, and is not swallowed.
func LoadAll(s Surface, resolve Resolver) (int, error) {
	slots := s.Slots()
	if len(slots) == 0 {
		return 0, &ConfigurationError{
			Namespace: s.Namespace(),
			Reason:    "no slots to load",
		}
	}
	for _, sl := range slots {
		if sl.Sig == nil {
			return 0, &ConfigurationError{
				Namespace: s.Namespace(),
				Reason:    "slot " + sl.Name + " has no signature",
			}
		}
	}
	bound := 0
	changed := false
	for _, sl := range slots {
		addr := resolve(sl.Name)
		if addr != sl.bound.Addr() {
			changed = true
		}
		sl.bound = sl.bind(addr)
		if addr != 0 {
			bound++
		}
		opentk.Logger().Debug("resolved slot",
			slog.String("namespace", s.Namespace()),
			slog.String("name", sl.Name),
			slog.Bool("available", addr != 0))
	}
	if changed {
		s.setDirty()
	}
	opentk.Logger().Info("loaded surface",
		slog.String("namespace", s.Namespace()),
		slog.Int("bound", bound),
		slog.Int("slots", len(slots)))
	return bound, nil
}

// LoadOne re-resolves the single named slot, the caller-invoked retry
// path for one suspect extension (for example after a context change).
// It reports whether the slot holds a non-null binding after the call.
//
// It returns false without touching the surface when the surface has no
// member list or no slot of that name. A resolution whose underlying
// target matches the current binding is a no-op: the bindings are
// compared by native address, not wrapper identity, so a freshly
// constructed wrapper around an unchanged address records no change and
// causes no dirty-flag churn. Only an actual change overwrites the
// binding and sets the dirty flag.
func LoadOne(s Surface, resolve Resolver, name string) bool {
	if s.Slots() == nil {
		return false
	}
	sl := lookup(s, name)
	if sl == nil {
		return false
	}
	addr := resolve(name)
	if addr == sl.bound.Addr() {
		return addr != 0
	}
	sl.bound = sl.bind(addr)
	s.setDirty()
	opentk.Logger().Debug("rebound slot",
		slog.String("namespace", s.Namespace()),
		slog.String("name", name),
		slog.Bool("available", addr != 0))
	return addr != 0
}

func lookup(s Surface, name string) *Slot {
	if t, ok := s.(interface{ Lookup(string) *Slot }); ok {
		return t.Lookup(name)
	}
	for _, sl := range s.Slots() {
		if sl.Name == name {
			return sl
		}
	}
	return nil
}
