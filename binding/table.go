// SPDX-License-Identifier: Unlicense OR MIT

package binding

// Table is the reusable Surface implementation namespaces build on: an
// ordered slot list with a name index and the dirty flag.
type Table struct {
	namespace string
	slots     []*Slot
	index     map[string]*Slot
	dirty     bool
}

// Desc declares one slot for NewTable.
type Desc struct {
	Name string
	Sig  Signature
}

// NewTable builds a surface for namespace from descriptors. Duplicate
// slot names panic: slot lists are static per-namespace declarations,
// so a duplicate is a programming error caught at construction.
func NewTable(namespace string, descs []Desc) *Table {
	t := &Table{
		namespace: namespace,
		slots:     make([]*Slot, 0, len(descs)),
		index:     make(map[string]*Slot, len(descs)),
	}
	for _, d := range descs {
		if _, ok := t.index[d.Name]; ok {
			panic("binding: duplicate slot " + d.Name + " in surface " + namespace)
		}
		s := &Slot{Name: d.Name, Sig: d.Sig}
		t.slots = append(t.slots, s)
		t.index[d.Name] = s
	}
	return t
}

// Namespace implements Surface.
func (t *Table) Namespace() string { return t.namespace }

// Slots implements Surface.
func (t *Table) Slots() []*Slot { return t.slots }

// Lookup returns the named slot, or nil if the table has none.
func (t *Table) Lookup(name string) *Slot { return t.index[name] }

// Dirty implements Surface.
func (t *Table) Dirty() bool { return t.dirty }

// ClearDirty acknowledges a rebuild of downstream availability caches.
func (t *Table) ClearDirty() { t.dirty = false }

func (t *Table) setDirty() { t.dirty = true }
