// SPDX-License-Identifier: Unlicense OR MIT

// Package binding implements the generic extension-function binding
// mechanism: named slots grouped into per-namespace capability surfaces,
// resolved against the active platform's symbol resolver.
//
// A namespace (GL, WGL, GLX, ...) declares the entry points it can bind
// as an ordered list of slots; the loader walks them and records which
// resolved. Surfaces carry a dirty flag so higher layers know when a
// cached extension-availability table must be rebuilt.
package binding

import (
	"fmt"
	"reflect"
)

// Resolver maps a native entry-point name to its runtime address.
// It returns 0 when the symbol does not exist on the current system.
// Exactly one resolver is active per process, chosen by the platform
// package at first use.
type Resolver func(name string) uintptr

// Signature is the expected call shape of a native entry point, carried
// as the Go function type the entry point is exposed through.
type Signature = reflect.Type

// SignatureOf returns the Signature of the function prototype fn,
// typically a nil function value of the desired type:
//
//	binding.SignatureOf((func(uint32) uintptr)(nil))
func SignatureOf(fn any) Signature {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		panic("binding: signature prototype is not a function")
	}
	return t
}

// Func is a native entry point bound to a slot. Two Funcs constructed
// separately may wrap the same native address; identity comparisons use
// Addr, never the wrapper value.
type Func struct {
	name string
	sig  Signature
	addr uintptr
}

// Name returns the native entry-point name the Func was resolved from.
func (f *Func) Name() string { return f.name }

// Sig returns the declared call shape.
func (f *Func) Sig() Signature { return f.sig }

// Addr returns the underlying native address.
func (f *Func) Addr() uintptr {
	if f == nil {
		return 0
	}
	return f.addr
}

// Valid reports whether the Func wraps a resolved address.
func (f *Func) Valid() bool { return f.Addr() != 0 }

// Slot is one named, typed native entry point within a surface.
type Slot struct {
	// Name is the native entry-point name, unique within its surface.
	Name string
	// Sig is the expected call shape, used to construct the bound Func.
	Sig Signature

	bound *Func
}

// Bound returns the currently bound Func, or nil when the entry point
// is unavailable.
func (s *Slot) Bound() *Func { return s.bound }

// Available reports whether the slot currently holds a non-null binding.
func (s *Slot) Available() bool { return s.bound.Valid() }

// bind wraps addr into a Func typed by the slot's signature. A zero
// address yields a nil binding: an unsupported extension, not an error.
func (s *Slot) bind(addr uintptr) *Func {
	if addr == 0 {
		return nil
	}
	return &Func{name: s.Name, sig: s.Sig, addr: addr}
}

// Surface is the reflection contract every API namespace implements to
// participate in extension loading: an enumerable member list of slots
// with stable names, plus dirty-flag storage.
//
// The loader mutates slot bindings and the dirty flag without internal
// locking; callers serialize loads against readers of Bound.
type Surface interface {
	// Namespace identifies the API the surface binds (e.g. "GL").
	Namespace() string
	// Slots returns the ordered member list, or nil if the surface
	// has none to offer.
	Slots() []*Slot
	// Dirty reports whether resolved bindings changed since the flag
	// was last cleared.
	Dirty() bool

	setDirty()
}

// ConfigurationError reports a structurally malformed surface: a build
// or integration bug, never a runtime capability gap.
type ConfigurationError struct {
	Namespace string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("binding: surface %q misconfigured: %s", e.Namespace, e.Reason)
}
