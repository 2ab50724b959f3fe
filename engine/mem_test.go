package engine

import (
	"testing"

	geometrycodec "github.com/wippyai/geometry-codec"
)

func TestMem_CreateRefusesNonConstructible(t *testing.T) {
	m := NewMem()
	for _, code := range []geometrycodec.TypeCode{
		geometrycodec.CodeUnknown,
		geometrycodec.CodeNone,
		geometrycodec.TypeCode(42),
	} {
		if h := m.Create(code); h != 0 {
			t.Errorf("Create(%d) = %d, want 0", code, h)
		}
	}
	if m.Live() != 0 {
		t.Errorf("refused creates left %d nodes live", m.Live())
	}
}

func TestMem_Lifecycle(t *testing.T) {
	m := NewMem()

	h := m.Create(geometrycodec.CodePoint)
	if h == 0 {
		t.Fatal("Create returned null handle")
	}
	if m.Live() != 1 {
		t.Fatalf("Live = %d, want 1", m.Live())
	}

	m.AddPoint2D(h, 1, 2)
	if m.PointCount(h) != 1 {
		t.Errorf("PointCount = %d, want 1", m.PointCount(h))
	}
	if x, y := m.X(h, 0), m.Y(h, 0); x != 1 || y != 2 {
		t.Errorf("coordinate = (%g, %g), want (1, 2)", x, y)
	}
	if d := m.CoordinateDimension(h); d != 2 {
		t.Errorf("CoordinateDimension = %d, want 2", d)
	}

	m.Destroy(h)
	if m.Live() != 0 {
		t.Errorf("Live = %d after destroy, want 0", m.Live())
	}
}

func TestMem_DoubleDestroy(t *testing.T) {
	m := NewMem()
	h := m.Create(geometrycodec.CodePoint)
	m.Destroy(h)
	m.Destroy(h) // must not panic or corrupt the table
	m.Destroy(0)
	if m.Live() != 0 {
		t.Errorf("Live = %d, want 0", m.Live())
	}
}

func TestMem_DestroyRecursesIntoChildren(t *testing.T) {
	m := NewMem()

	coll := m.Create(geometrycodec.CodeGeometryCollection)
	inner := m.Create(geometrycodec.CodeGeometryCollection)
	pt := m.Create(geometrycodec.CodePoint)

	if err := m.AddChildOwned(inner, pt); err != nil {
		t.Fatalf("AddChildOwned: %v", err)
	}
	if err := m.AddChildOwned(coll, inner); err != nil {
		t.Fatalf("AddChildOwned: %v", err)
	}
	if m.Live() != 3 {
		t.Fatalf("Live = %d, want 3", m.Live())
	}

	m.Destroy(coll)
	if m.Live() != 0 {
		t.Errorf("Live = %d after recursive destroy, want 0", m.Live())
	}
}

func TestMem_3DPromotion(t *testing.T) {
	m := NewMem()

	h := m.Create(geometrycodec.CodeLineString)
	defer m.Destroy(h)

	m.AddPoint2D(h, 0, 0)
	if m.CoordinateDimension(h) != 2 {
		t.Fatal("fresh node should be 2D")
	}

	m.AddPoint3D(h, 1, 1, 5)
	if m.CoordinateDimension(h) != 3 {
		t.Error("AddPoint3D should promote the node to 3D")
	}
	if z := m.Z(h, 1); z != 5 {
		t.Errorf("Z = %g, want 5", z)
	}
	if got := m.GeometryType(h); !got.Is3D() || got.Base() != geometrycodec.CodeLineString {
		t.Errorf("GeometryType = %#x, want LineString with 3D flag", uint32(got))
	}
}

func TestMem_3DChildPromotesParent(t *testing.T) {
	m := NewMem()

	mp := m.Create(geometrycodec.CodeMultiPoint)
	defer m.Destroy(mp)

	pt := m.Create(geometrycodec.CodePoint)
	m.AddPoint3D(pt, 1, 2, 3)
	if err := m.AddChildOwned(mp, pt); err != nil {
		t.Fatalf("AddChildOwned: %v", err)
	}

	if m.CoordinateDimension(mp) != 3 {
		t.Error("3D child should promote the parent to 3D")
	}
}

func TestMem_Create3DFlag(t *testing.T) {
	m := NewMem()
	h := m.Create(geometrycodec.CodePoint.With3D())
	defer m.Destroy(h)

	if m.CoordinateDimension(h) != 3 {
		t.Error("creating with the 3D flag should yield a 3D node")
	}
	if got := m.GeometryType(h).Base(); got != geometrycodec.CodePoint {
		t.Errorf("base type = %d, want Point", got)
	}
}

func TestMem_ChildAccess(t *testing.T) {
	m := NewMem()

	coll := m.Create(geometrycodec.CodeGeometryCollection)
	defer m.Destroy(coll)

	a := m.Create(geometrycodec.CodePoint)
	b := m.Create(geometrycodec.CodePoint)
	m.AddChildOwned(coll, a)
	m.AddChildOwned(coll, b)

	if n := m.ChildCount(coll); n != 2 {
		t.Fatalf("ChildCount = %d, want 2", n)
	}
	if m.ChildRef(coll, 0) != a || m.ChildRef(coll, 1) != b {
		t.Error("ChildRef order does not match attachment order")
	}
	if m.ChildRef(coll, 2) != 0 || m.ChildRef(coll, -1) != 0 {
		t.Error("out-of-range ChildRef should return null handle")
	}
}

func TestMem_CloseRing(t *testing.T) {
	m := NewMem()

	h := m.Create(geometrycodec.CodeLinearRing)
	defer m.Destroy(h)

	// Fewer than two coordinates: no-op.
	m.AddPoint2D(h, 0, 0)
	m.CloseRing(h)
	if m.PointCount(h) != 1 {
		t.Fatal("CloseRing on a single coordinate should be a no-op")
	}

	m.AddPoint2D(h, 0, 1)
	m.AddPoint2D(h, 1, 1)
	m.CloseRing(h)
	if m.PointCount(h) != 4 {
		t.Fatalf("PointCount = %d after closing, want 4", m.PointCount(h))
	}
	if m.X(h, 3) != 0 || m.Y(h, 3) != 0 {
		t.Error("closing coordinate should copy the first")
	}

	// Already closed: idempotent.
	m.CloseRing(h)
	if m.PointCount(h) != 4 {
		t.Error("CloseRing on a closed ring should not append")
	}
}

func TestMem_ImportWKBTypeMismatch(t *testing.T) {
	m := NewMem()

	pt := m.Create(geometrycodec.CodePoint)
	m.AddPoint2D(pt, 1, 2)
	data, err := m.ExportWKB(pt)
	if err != nil {
		t.Fatalf("ExportWKB: %v", err)
	}
	m.Destroy(pt)

	ls := m.Create(geometrycodec.CodeLineString)
	defer m.Destroy(ls)
	if err := m.ImportWKB(ls, data); err == nil {
		t.Fatal("importing Point WKB into a LineString handle should fail")
	}
}

func TestMem_ImportWKBReplacesContent(t *testing.T) {
	m := NewMem()

	// Build a MultiPoint with one child, export it.
	mp := m.Create(geometrycodec.CodeMultiPoint)
	pt := m.Create(geometrycodec.CodePoint)
	m.AddPoint2D(pt, 7, 8)
	m.AddChildOwned(mp, pt)
	data, err := m.ExportWKB(mp)
	if err != nil {
		t.Fatalf("ExportWKB: %v", err)
	}

	// Import over it twice; old children must be released each time.
	if err := m.ImportWKB(mp, data); err != nil {
		t.Fatalf("ImportWKB: %v", err)
	}
	if err := m.ImportWKB(mp, data); err != nil {
		t.Fatalf("second ImportWKB: %v", err)
	}
	if m.Live() != 2 {
		t.Errorf("Live = %d, want 2 (container plus one child)", m.Live())
	}

	m.Destroy(mp)
	if m.Live() != 0 {
		t.Errorf("Live = %d after destroy, want 0", m.Live())
	}
}
