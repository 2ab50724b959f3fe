// Package engine defines the external geometry engine surface and provides
// an in-memory reference implementation.
//
// The transcoder package treats the engine as an opaque collaborator: it
// creates geometry handles, populates them point by point or from WKB
// buffers, walks their coordinates and child geometries through read
// accessors, and destroys the handles it owns. Any backend that satisfies
// Engine can sit behind the codec; Mem is the bundled pure-Go backend.
//
// # Handle Semantics
//
//	h := eng.Create(code)     // 0 means the engine refused to allocate
//	defer eng.Destroy(h)      // no-op on 0, recursive on children
//
//	child := eng.ChildRef(h, 0) // non-owning view, dies with the parent
//	eng.AddChildOwned(h, sub)   // ownership of sub transfers into h
//
// Destroying a child reference independently is a caller bug: the parent
// still holds it and destruction would strike twice.
//
// # Coordinate Dimension
//
// Every node reports a coordinate dimension of 2 or 3. Creating a node from
// a 3D-flagged type code, adding a point through AddPoint3D, or attaching a
// 3D child all promote the node to dimension 3. GeometryType reflects the
// promotion by setting the 3D flag on the reported code.
//
// # WKB
//
// Mem reads and writes extended WKB: one byte-order byte, a uint32 type
// word whose high bit marks a Z coordinate, then the type-specific payload.
// Both byte orders are accepted on import; little-endian is emitted.
//
// # Thread Safety
//
// A Mem engine may be shared across goroutines, but a geometry handle must
// be owned by one call tree at a time; the engine does not synchronize
// mutation of a single node.
package engine
