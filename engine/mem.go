package engine

import (
	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/errors"
	"github.com/wippyai/geometry-codec/resource"
)

// node is one engine-owned geometry. Leaf kinds store coordinates directly;
// container kinds store owned child handles. The code field always carries
// the base type; dim carries the 3D-ness.
type node struct {
	code     geometrycodec.TypeCode
	dim      int
	coords   [][3]float64
	children []Handle
}

// Mem is the in-memory reference engine. Every node lives behind a handle
// in a resource table, so handle misuse (double destroy, stale child refs)
// surfaces as a lookup miss instead of memory corruption.
type Mem struct {
	table *resource.Table
}

// NewMem creates an empty in-memory engine.
func NewMem() *Mem {
	return &Mem{table: resource.NewTable()}
}

// Live returns the number of live geometry nodes, counting children.
// Tests use it to verify that handles are neither leaked nor double-freed.
func (m *Mem) Live() int {
	return m.table.Len()
}

func (m *Mem) node(h Handle) *node {
	v, ok := m.table.Get(h)
	if !ok {
		return nil
	}
	return v.(*node)
}

// Create allocates a new empty node for the given type code.
// Unknown and None are not constructible; Create returns 0 for them.
func (m *Mem) Create(code geometrycodec.TypeCode) Handle {
	base := code.Base()
	switch base {
	case geometrycodec.CodePoint,
		geometrycodec.CodeLineString,
		geometrycodec.CodePolygon,
		geometrycodec.CodeMultiPoint,
		geometrycodec.CodeMultiLineString,
		geometrycodec.CodeMultiPolygon,
		geometrycodec.CodeGeometryCollection,
		geometrycodec.CodeLinearRing:
	default:
		debugf("create refused for type code %d", code)
		return 0
	}

	dim := 2
	if code.Is3D() {
		dim = 3
	}
	return m.table.Create(&node{code: base, dim: dim})
}

// Destroy releases a node and, recursively, every child it owns.
func (m *Mem) Destroy(h Handle) {
	if h == 0 {
		return
	}
	v, ok := m.table.Drop(h)
	if !ok {
		debugf("destroy of dead handle %d", h)
		return
	}
	n := v.(*node)
	for _, c := range n.children {
		m.Destroy(c)
	}
}

// PointCount returns the number of coordinates stored directly on the node.
func (m *Mem) PointCount(h Handle) int {
	n := m.node(h)
	if n == nil {
		return 0
	}
	return len(n.coords)
}

// X returns the x component of the coordinate at index i.
func (m *Mem) X(h Handle, i int) float64 {
	return m.component(h, i, 0)
}

// Y returns the y component of the coordinate at index i.
func (m *Mem) Y(h Handle, i int) float64 {
	return m.component(h, i, 1)
}

// Z returns the z component of the coordinate at index i.
func (m *Mem) Z(h Handle, i int) float64 {
	return m.component(h, i, 2)
}

func (m *Mem) component(h Handle, i, c int) float64 {
	n := m.node(h)
	if n == nil || i < 0 || i >= len(n.coords) {
		return 0
	}
	return n.coords[i][c]
}

// CoordinateDimension returns 2 or 3.
func (m *Mem) CoordinateDimension(h Handle) int {
	n := m.node(h)
	if n == nil {
		return 0
	}
	return n.dim
}

// GeometryType returns the node's type code with the 3D flag reflecting
// the node's coordinate dimension.
func (m *Mem) GeometryType(h Handle) geometrycodec.TypeCode {
	n := m.node(h)
	if n == nil {
		return geometrycodec.CodeUnknown
	}
	if n.dim == 3 {
		return n.code.With3D()
	}
	return n.code
}

// ChildCount returns the number of child geometries.
func (m *Mem) ChildCount(h Handle) int {
	n := m.node(h)
	if n == nil {
		return 0
	}
	return len(n.children)
}

// ChildRef returns a non-owning reference to the i-th child.
func (m *Mem) ChildRef(h Handle, i int) Handle {
	n := m.node(h)
	if n == nil || i < 0 || i >= len(n.children) {
		return 0
	}
	return n.children[i]
}

// AddPoint2D appends an (x, y) coordinate to the node.
func (m *Mem) AddPoint2D(h Handle, x, y float64) {
	n := m.node(h)
	if n == nil {
		return
	}
	n.coords = append(n.coords, [3]float64{x, y, 0})
}

// AddPoint3D appends an (x, y, z) coordinate and promotes the node to
// dimension 3.
func (m *Mem) AddPoint3D(h Handle, x, y, z float64) {
	n := m.node(h)
	if n == nil {
		return
	}
	n.coords = append(n.coords, [3]float64{x, y, z})
	n.dim = 3
}

// AddChildOwned attaches child to parent, transferring ownership. A 3D
// child promotes the parent to dimension 3.
func (m *Mem) AddChildOwned(parent, child Handle) error {
	p := m.node(parent)
	if p == nil {
		return errors.NullHandle(errors.PhaseEngine)
	}
	c := m.node(child)
	if c == nil {
		return errors.NullHandle(errors.PhaseEngine)
	}
	p.children = append(p.children, child)
	if c.dim == 3 {
		p.dim = 3
	}
	return nil
}

// CloseRing appends a copy of the first coordinate if the node's first and
// last coordinates differ. Idempotent on closed rings and a no-op on nodes
// with fewer than two coordinates.
func (m *Mem) CloseRing(h Handle) {
	n := m.node(h)
	if n == nil || len(n.coords) < 2 {
		return
	}
	if n.coords[0] != n.coords[len(n.coords)-1] {
		n.coords = append(n.coords, n.coords[0])
	}
}

// ImportWKB replaces the node's content with the geometry parsed from a
// WKB buffer. The buffer's base type must match the node's type.
func (m *Mem) ImportWKB(h Handle, data []byte) error {
	n := m.node(h)
	if n == nil {
		return errors.NullHandle(errors.PhaseEngine)
	}

	parsed, err := decodeWKB(data)
	if err != nil {
		debugf("WKB import failed: %v", err)
		return err
	}
	if parsed.code != n.code {
		return errors.InvalidData(errors.PhaseEngine, nil,
			"WKB type does not match handle type")
	}

	// The node may already hold content from a previous import.
	for _, c := range n.children {
		m.Destroy(c)
	}

	n.dim = parsed.dim
	n.coords = parsed.coords
	n.children = nil
	for _, part := range parsed.parts {
		n.children = append(n.children, m.adopt(part))
	}
	return nil
}

// adopt materializes a parsed WKB subtree as table-backed nodes.
func (m *Mem) adopt(g *wkbGeom) Handle {
	n := &node{code: g.code, dim: g.dim, coords: g.coords}
	for _, part := range g.parts {
		n.children = append(n.children, m.adopt(part))
	}
	return m.table.Create(n)
}

// ExportWKB serializes the node to a little-endian WKB buffer.
func (m *Mem) ExportWKB(h Handle) ([]byte, error) {
	n := m.node(h)
	if n == nil {
		return nil, errors.NullHandle(errors.PhaseEngine)
	}
	return m.encodeWKB(n)
}
