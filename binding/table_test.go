// SPDX-License-Identifier: Unlicense OR MIT

package binding_test

import (
	"testing"

	"github.com/DDholder/opentk/binding"
)

func TestTableOrderAndLookup(t *testing.T) {
	tbl := newTestTable()
	want := []string{"testProcA", "testProcB", "testProcC", "testProcD"}
	slots := tbl.Slots()
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, expected %d", len(slots), len(want))
	}
	for i, name := range want {
		if slots[i].Name != name {
			t.Errorf("slot %d is %q, expected %q", i, slots[i].Name, name)
		}
		if tbl.Lookup(name) != slots[i] {
			t.Errorf("Lookup(%q) did not return the declared slot", name)
		}
	}
	if tbl.Lookup("nosuch") != nil {
		t.Error("Lookup of an undeclared name returned a slot")
	}
	if tbl.Namespace() != "TEST" {
		t.Errorf("got namespace %q, expected TEST", tbl.Namespace())
	}
	if tbl.Dirty() {
		t.Error("new table is dirty before any load")
	}
}

func TestTableDuplicateSlotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate slot name did not panic")
		}
	}()
	binding.NewTable("DUP", []binding.Desc{
		{Name: "testProcA", Sig: voidSig},
		{Name: "testProcA", Sig: voidSig},
	})
}

func TestSignatureOf(t *testing.T) {
	sig := binding.SignatureOf((func(uint32) uintptr)(nil))
	if sig.NumIn() != 1 || sig.NumOut() != 1 {
		t.Errorf("got signature %v, expected func(uint32) uintptr", sig)
	}

	defer func() {
		if recover() == nil {
			t.Error("non-function prototype did not panic")
		}
	}()
	binding.SignatureOf(42)
}
