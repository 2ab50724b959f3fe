package resource

import (
	"sync"
)

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Table is an in-memory handle table with free-list recycling.
type Table struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
}

type entry struct {
	value any
	valid bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Create stores a value and returns its handle.
func (t *Table) Create(value any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := entry{value: value, valid: true}

	if len(t.freeList) > 0 {
		handle := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
		return handle
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.value, true
}

// Drop removes a value and returns (value, true) if it was live.
func (t *Table) Drop(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid {
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	t.freeList = append(t.freeList, handle)

	return value, true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for i := range t.entries {
		if t.entries[i].valid {
			n++
		}
	}
	return n
}

// Each iterates over live entries until fn returns false.
func (t *Table) Each(fn func(Handle, any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.entries {
		if t.entries[i].valid {
			if !fn(Handle(i+1), t.entries[i].value) {
				return
			}
		}
	}
}
