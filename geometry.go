package geometrycodec

import (
	"encoding/json"
	"fmt"
)

// TypeCode identifies a geometry kind on the engine side of the boundary.
// The low values follow the WKB numbering; 100 and 101 mirror the engine's
// None and LinearRing pseudo-codes. Setting Flag3D on any base code denotes
// the 3D variant of the same kind.
type TypeCode uint32

const (
	CodeUnknown            TypeCode = 0
	CodePoint              TypeCode = 1
	CodeLineString         TypeCode = 2
	CodePolygon            TypeCode = 3
	CodeMultiPoint         TypeCode = 4
	CodeMultiLineString    TypeCode = 5
	CodeMultiPolygon       TypeCode = 6
	CodeGeometryCollection TypeCode = 7
	CodeNone               TypeCode = 100
	CodeLinearRing         TypeCode = 101
)

// Flag3D marks the 3D variant of a base type code.
const Flag3D TypeCode = 0x80000000

// Base returns the code with the 3D flag masked off.
func (c TypeCode) Base() TypeCode {
	return c &^ Flag3D
}

// Is3D reports whether the 3D flag is set.
func (c TypeCode) Is3D() bool {
	return c&Flag3D != 0
}

// With3D returns the 3D-flagged variant of the code.
func (c TypeCode) With3D() TypeCode {
	return c | Flag3D
}

// TypeName is a geometry kind as it appears in the tagged tree form.
type TypeName string

const (
	TypeUnknown            TypeName = "Unknown"
	TypePoint              TypeName = "Point"
	TypeLineString         TypeName = "LineString"
	TypeLinearRing         TypeName = "LinearRing"
	TypePolygon            TypeName = "Polygon"
	TypeMultiPoint         TypeName = "MultiPoint"
	TypeMultiLineString    TypeName = "MultiLineString"
	TypeMultiPolygon       TypeName = "MultiPolygon"
	TypeGeometryCollection TypeName = "GeometryCollection"
	TypeNone               TypeName = "None"
)

// Coordinate is an ordered (x, y) pair or (x, y, z) triple.
type Coordinate []float64

// X returns the first component.
func (c Coordinate) X() float64 { return c[0] }

// Y returns the second component.
func (c Coordinate) Y() float64 { return c[1] }

// Z returns the third component and whether it is present.
func (c Coordinate) Z() (float64, bool) {
	if len(c) > 2 {
		return c[2], true
	}
	return 0, false
}

// Equal reports component-wise equality.
func (c Coordinate) Equal(other Coordinate) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Geometry is the tagged in-memory tree form of a geometry. Exactly one of
// the storage fields is populated, chosen by Type:
//
//	Point                      Point
//	LineString, LinearRing     Coordinates
//	MultiPoint                 Coordinates
//	Polygon, MultiLineString   Rings
//	MultiPolygon               Polygons
//	GeometryCollection         Geometries
//
// Polygon and Multi* parts are flattened coordinate sequences, not nested
// tagged nodes; only GeometryCollection nests full Geometry values. This
// matches the GeoJSON interchange convention.
type Geometry struct {
	Type        TypeName
	Point       Coordinate
	Coordinates []Coordinate
	Rings       [][]Coordinate
	Polygons    [][][]Coordinate
	Geometries  []*Geometry
}

// coordinates returns the value stored under the "coordinates" JSON key.
func (g *Geometry) coordinates() any {
	switch g.Type {
	case TypePoint:
		return g.Point
	case TypeLineString, TypeLinearRing, TypeMultiPoint:
		return g.Coordinates
	case TypePolygon, TypeMultiLineString:
		return g.Rings
	case TypeMultiPolygon:
		return g.Polygons
	}
	return nil
}

type geometryJSON struct {
	Type        TypeName        `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []*Geometry     `json:"geometries,omitempty"`
}

// MarshalJSON renders the tree as a GeoJSON geometry object: a "type" field
// plus either "coordinates" or, for GeometryCollection, "geometries".
func (g *Geometry) MarshalJSON() ([]byte, error) {
	if g.Type == TypeGeometryCollection {
		geoms := g.Geometries
		if geoms == nil {
			geoms = []*Geometry{}
		}
		return json.Marshal(struct {
			Type       TypeName    `json:"type"`
			Geometries []*Geometry `json:"geometries"`
		}{g.Type, geoms})
	}
	return json.Marshal(struct {
		Type        TypeName `json:"type"`
		Coordinates any      `json:"coordinates"`
	}{g.Type, g.coordinates()})
}

// UnmarshalJSON parses a GeoJSON geometry object into the tagged tree form.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw geometryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*g = Geometry{Type: raw.Type}

	switch raw.Type {
	case TypeGeometryCollection:
		g.Geometries = raw.Geometries
		return nil
	case TypePoint:
		return json.Unmarshal(raw.Coordinates, &g.Point)
	case TypeLineString, TypeLinearRing, TypeMultiPoint:
		return json.Unmarshal(raw.Coordinates, &g.Coordinates)
	case TypePolygon, TypeMultiLineString:
		return json.Unmarshal(raw.Coordinates, &g.Rings)
	case TypeMultiPolygon:
		return json.Unmarshal(raw.Coordinates, &g.Polygons)
	}
	return fmt.Errorf("geometry type %q not supported", raw.Type)
}

// String returns a compact description, e.g. "Polygon(2 rings)".
func (g *Geometry) String() string {
	switch g.Type {
	case TypePoint:
		return "Point"
	case TypeLineString, TypeLinearRing, TypeMultiPoint:
		return fmt.Sprintf("%s(%d points)", g.Type, len(g.Coordinates))
	case TypePolygon, TypeMultiLineString:
		unit := "rings"
		if g.Type == TypeMultiLineString {
			unit = "lines"
		}
		return fmt.Sprintf("%s(%d %s)", g.Type, len(g.Rings), unit)
	case TypeMultiPolygon:
		return fmt.Sprintf("MultiPolygon(%d polygons)", len(g.Polygons))
	case TypeGeometryCollection:
		return fmt.Sprintf("GeometryCollection(%d geometries)", len(g.Geometries))
	}
	return string(g.Type)
}
