package engine

import (
	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/resource"
)

// Handle is an opaque reference to an engine-owned geometry node.
// Handle 0 is reserved and always invalid.
type Handle = resource.Handle

// Engine is the geometry engine surface the transcoder is written against.
//
// Read accessors are tolerant: called with an invalid handle or index they
// return zero values rather than failing, mirroring the C geometry APIs
// this surface abstracts. Lifecycle operations report failure explicitly.
type Engine interface {
	// Create allocates a new empty node for the given type code and
	// returns its handle, or 0 if the engine refuses the code.
	Create(code geometrycodec.TypeCode) Handle

	// Destroy releases a node and every child it owns. No-op on 0.
	Destroy(h Handle)

	// ImportWKB replaces the node's content with the geometry parsed from
	// a WKB buffer. The buffer's base type must match the node's.
	ImportWKB(h Handle, data []byte) error

	// ExportWKB serializes the node to a WKB buffer.
	ExportWKB(h Handle) ([]byte, error)

	// PointCount returns the number of coordinates stored directly on the
	// node (0 for container kinds).
	PointCount(h Handle) int

	// X, Y and Z return one component of the coordinate at index i.
	X(h Handle, i int) float64
	Y(h Handle, i int) float64
	Z(h Handle, i int) float64

	// CoordinateDimension returns 2 or 3.
	CoordinateDimension(h Handle) int

	// GeometryType returns the node's raw type code, 3D flag included.
	GeometryType(h Handle) geometrycodec.TypeCode

	// ChildCount returns the number of child geometries.
	ChildCount(h Handle) int

	// ChildRef returns a non-owning reference to the i-th child, or 0 if
	// the index is out of range. The reference is valid only as long as
	// the parent and must never be destroyed independently.
	ChildRef(h Handle, i int) Handle

	// AddPoint2D appends an (x, y) coordinate to the node.
	AddPoint2D(h Handle, x, y float64)

	// AddPoint3D appends an (x, y, z) coordinate and promotes the node to
	// dimension 3.
	AddPoint3D(h Handle, x, y, z float64)

	// AddChildOwned attaches child to parent, transferring ownership.
	// After a successful call the child handle belongs to the parent and
	// must not be destroyed by the caller.
	AddChildOwned(parent, child Handle) error

	// CloseRing appends a copy of the first coordinate if the node's
	// first and last coordinates differ. Idempotent.
	CloseRing(h Handle)
}
