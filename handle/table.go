package handle

import (
	"sync"
)

// Table is a generation-checked handle table. It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	entries  []entry
	freeList []uint32
	closed   bool
}

type entry struct {
	value      any
	typeID     uint32
	generation uint32
	valid      bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]uint32, 0, 16),
	}
}

// Insert stores a value and returns its handle, or Nil if the table is
// closed.
func (t *Table) Insert(typeID uint32, value any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return Nil
	}

	if n := len(t.freeList); n > 0 {
		slot := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		e := &t.entries[slot-1]
		e.value = value
		e.typeID = typeID
		e.valid = true
		return pack(slot, e.generation)
	}

	t.entries = append(t.entries, entry{
		value:  value,
		typeID: typeID,
		valid:  true,
	})
	return pack(uint32(len(t.entries)), 0)
}

// lookup returns the entry for h if the slot is live and the generation
// matches. Callers hold at least a read lock.
func (t *Table) lookup(h Handle) *entry {
	slot := h.slot()
	if slot == 0 || int(slot) > len(t.entries) {
		return nil
	}
	e := &t.entries[slot-1]
	if !e.valid || e.generation != h.generation() {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (t *Table) Get(h Handle) (any, bool) {
	if h == Nil {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(h)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// GetTyped retrieves a value only if it matches the expected type ID.
func (t *Table) GetTyped(h Handle, typeID uint32) (any, bool) {
	if h == Nil {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(h)
	if e == nil || e.typeID != typeID {
		return nil, false
	}
	return e.value, true
}

// TypeID returns the type ID for a live handle.
func (t *Table) TypeID(h Handle) (uint32, bool) {
	if h == Nil {
		return 0, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	e := t.lookup(h)
	if e == nil {
		return 0, false
	}
	return e.typeID, true
}

// Remove drops a value and returns (value, true) if the handle was live.
// The slot's generation advances so the removed handle can never resolve
// again, even after the slot is reused. Values implementing Dropper get
// their Drop method called.
func (t *Table) Remove(h Handle) (any, bool) {
	if h == Nil {
		return nil, false
	}

	t.mu.Lock()
	e := t.lookup(h)
	if e == nil {
		t.mu.Unlock()
		return nil, false
	}

	value := e.value
	e.value = nil
	e.valid = false
	e.generation++
	t.freeList = append(t.freeList, h.slot())
	t.mu.Unlock()

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	return value, true
}

// Len returns the number of live values.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for i := range t.entries {
		if t.entries[i].valid {
			count++
		}
	}
	return count
}

// Each iterates over all live values. The callback runs under the table's
// read lock and must not call back into the table.
func (t *Table) Each(fn func(Handle, uint32, any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.entries {
		e := &t.entries[i]
		if !e.valid {
			continue
		}
		if !fn(pack(uint32(i+1), e.generation), e.typeID, e.value) {
			break
		}
	}
}

// Close drops every live value and stops accepting inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	var droppers []Dropper
	for i := range t.entries {
		e := &t.entries[i]
		if !e.valid {
			continue
		}
		if d, ok := e.value.(Dropper); ok {
			droppers = append(droppers, d)
		}
		e.valid = false
		e.value = nil
		e.generation++
	}
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, d := range droppers {
		d.Drop()
	}
	return nil
}

// Typed is a type-safe view over a shared Table for one entity kind.
type Typed[T any] struct {
	table  *Table
	typeID uint32
}

// NewTyped creates a typed view with the given type ID.
func NewTyped[T any](table *Table, typeID uint32) *Typed[T] {
	return &Typed[T]{table: table, typeID: typeID}
}

// Insert adds a value and returns its handle.
func (tt *Typed[T]) Insert(value T) Handle {
	return tt.table.Insert(tt.typeID, value)
}

// Get retrieves a value by handle.
func (tt *Typed[T]) Get(h Handle) (T, bool) {
	var zero T
	v, ok := tt.table.GetTyped(h, tt.typeID)
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Remove drops a value and returns (value, true) if the handle was live and
// of this view's type.
func (tt *Typed[T]) Remove(h Handle) (T, bool) {
	var zero T
	if _, ok := tt.table.GetTyped(h, tt.typeID); !ok {
		return zero, false
	}
	v, ok := tt.table.Remove(h)
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of live values of this view's type.
func (tt *Typed[T]) Len() int {
	count := 0
	tt.table.Each(func(_ Handle, typeID uint32, _ any) bool {
		if typeID == tt.typeID {
			count++
		}
		return true
	})
	return count
}
