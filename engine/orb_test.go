package engine

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"
	orbwkb "github.com/paulmach/orb/encoding/wkb"

	geometrycodec "github.com/wippyai/geometry-codec"
)

func TestOrbRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		g    orb.Geometry
	}{
		{"Point", orb.Point{1, 2}},
		{"LineString", orb.LineString{{0, 0}, {1, 1}, {2, 0}}},
		{"Polygon", orb.Polygon{{{0, 0}, {0, 3}, {3, 3}, {0, 0}}}},
		{"MultiPoint", orb.MultiPoint{{0, 0}, {1, 1}}},
		{"MultiLineString", orb.MultiLineString{{{0, 0}, {1, 0}}, {{0, 1}, {1, 1}}}},
		{"MultiPolygon", orb.MultiPolygon{{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}}}},
		{
			"Collection",
			orb.Collection{orb.Point{5, 5}, orb.LineString{{0, 0}, {1, 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMem()
			h, err := FromOrb(m, tt.g)
			if err != nil {
				t.Fatalf("FromOrb: %v", err)
			}
			got, err := ToOrb(m, h)
			if err != nil {
				t.Fatalf("ToOrb: %v", err)
			}
			if !reflect.DeepEqual(got, tt.g) {
				t.Errorf("round trip changed geometry:\n got %v\nwant %v", got, tt.g)
			}
			m.Destroy(h)
			if m.Live() != 0 {
				t.Errorf("leaked %d handles", m.Live())
			}
		})
	}
}

func TestFromOrb_RingIsClosed(t *testing.T) {
	m := NewMem()
	h, err := FromOrb(m, orb.Ring{{0, 0}, {0, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("FromOrb: %v", err)
	}
	defer m.Destroy(h)

	if n := m.PointCount(h); n != 4 {
		t.Fatalf("PointCount = %d, want 4 (ring closed on import)", n)
	}
	if m.X(h, 3) != 0 || m.Y(h, 3) != 0 {
		t.Error("ring closing coordinate should copy the first")
	}
}

func TestToOrb_Flattens3D(t *testing.T) {
	m := NewMem()
	h := m.Create(geometrycodec.CodePoint)
	defer m.Destroy(h)
	m.AddPoint3D(h, 1, 2, 3)

	g, err := ToOrb(m, h)
	if err != nil {
		t.Fatalf("ToOrb: %v", err)
	}
	if g != (orb.Point{1, 2}) {
		t.Errorf("ToOrb = %v, want (1, 2) with Z dropped", g)
	}
}

func TestImportWKB_FromOrbEncoder(t *testing.T) {
	m := NewMem()

	src := orb.MultiPoint{{1, 1}, {2, 2}, {3, 3}}
	data, err := orbwkb.Marshal(src)
	if err != nil {
		t.Fatalf("orb marshal: %v", err)
	}

	h := m.Create(geometrycodec.CodeMultiPoint)
	defer m.Destroy(h)
	if err := m.ImportWKB(h, data); err != nil {
		t.Fatalf("ImportWKB: %v", err)
	}

	got, err := ToOrb(m, h)
	if err != nil {
		t.Fatalf("ToOrb: %v", err)
	}
	if !reflect.DeepEqual(got, src) {
		t.Errorf("imported geometry = %v, want %v", got, src)
	}
}

func TestExportWKB_ReadableByOrb(t *testing.T) {
	m := NewMem()

	h, err := FromOrb(m, orb.LineString{{0, 0}, {4, 4}})
	if err != nil {
		t.Fatalf("FromOrb: %v", err)
	}
	defer m.Destroy(h)

	data, err := m.ExportWKB(h)
	if err != nil {
		t.Fatalf("ExportWKB: %v", err)
	}

	got, err := orbwkb.Unmarshal(data)
	if err != nil {
		t.Fatalf("orb unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, orb.LineString{{0, 0}, {4, 4}}) {
		t.Errorf("orb read back %v", got)
	}
}
