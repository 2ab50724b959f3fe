// Package resource provides the handle table backing the in-memory
// geometry engine.
//
// Geometry nodes live behind opaque integer handles so that callers outside
// the engine never hold direct references to engine-owned state. Handle 0 is
// reserved and always invalid, which gives "no geometry" a natural encoding
// on the engine surface.
//
// # Handle Table
//
// The Table maps integer handles to values:
//
//	table := resource.NewTable()
//
//	// Store a value, get a handle
//	handle := table.Create(node)
//
//	// Retrieve value by handle
//	value, ok := table.Get(handle)
//
//	// Remove and get value (for destruction)
//	value, ok := table.Drop(handle)
//
// Dropped handles are recycled through a free list, so handle values may be
// reused after Drop. Holding a handle past its Drop is a caller bug.
//
// # Leak Accounting
//
// Len reports the number of live entries. Tests use it to verify that every
// created geometry handle is destroyed exactly once.
package resource
