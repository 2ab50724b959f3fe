package transcoder

import (
	"fmt"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/engine"
	"github.com/wippyai/geometry-codec/errors"
)

// Decoder walks engine geometry handles into tagged geometry trees.
type Decoder struct {
	eng engine.Engine
}

// NewDecoder creates a decoder reading from eng.
func NewDecoder(eng engine.Engine) *Decoder {
	return &Decoder{eng: eng}
}

// Decode produces the tagged tree for an engine geometry. The handle is
// only read, never destroyed; it remains the caller's to manage.
func (d *Decoder) Decode(h engine.Handle) (*geometrycodec.Geometry, error) {
	return d.decode(h, nil)
}

func (d *Decoder) decode(h engine.Handle, path []string) (*geometrycodec.Geometry, error) {
	if h == 0 {
		return nil, errors.NullHandle(errors.PhaseDecode)
	}

	// Type and dimension are read once here and applied uniformly to
	// every coordinate this subtree emits.
	code := d.eng.GeometryType(h)
	dim := d.eng.CoordinateDimension(h)

	name, err := NameForCode(code)
	if err != nil {
		return nil, err
	}

	switch name {
	case geometrycodec.TypePoint:
		return &geometrycodec.Geometry{
			Type:  name,
			Point: d.coordinate(h, 0, dim),
		}, nil

	case geometrycodec.TypeLineString, geometrycodec.TypeLinearRing:
		return &geometrycodec.Geometry{
			Type:        name,
			Coordinates: d.coordinates(h, dim),
		}, nil

	case geometrycodec.TypeMultiPoint:
		coords, err := flatParts(d, h, path, func(sub *geometrycodec.Geometry) (geometrycodec.Coordinate, bool) {
			if sub.Type != geometrycodec.TypePoint {
				return nil, false
			}
			return sub.Point, true
		})
		if err != nil {
			return nil, err
		}
		return &geometrycodec.Geometry{Type: name, Coordinates: coords}, nil

	case geometrycodec.TypePolygon, geometrycodec.TypeMultiLineString:
		rings, err := flatParts(d, h, path, func(sub *geometrycodec.Geometry) ([]geometrycodec.Coordinate, bool) {
			switch sub.Type {
			case geometrycodec.TypeLineString, geometrycodec.TypeLinearRing:
				return sub.Coordinates, true
			}
			return nil, false
		})
		if err != nil {
			return nil, err
		}
		return &geometrycodec.Geometry{Type: name, Rings: rings}, nil

	case geometrycodec.TypeMultiPolygon:
		polys, err := flatParts(d, h, path, func(sub *geometrycodec.Geometry) ([][]geometrycodec.Coordinate, bool) {
			if sub.Type != geometrycodec.TypePolygon {
				return nil, false
			}
			return sub.Rings, true
		})
		if err != nil {
			return nil, err
		}
		return &geometrycodec.Geometry{Type: name, Polygons: polys}, nil

	case geometrycodec.TypeGeometryCollection:
		n := d.eng.ChildCount(h)
		geoms := make([]*geometrycodec.Geometry, 0, n)
		for i := 0; i < n; i++ {
			sub, err := d.decode(d.eng.ChildRef(h, i), childPath(path, i))
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, sub)
		}
		return &geometrycodec.Geometry{Type: name, Geometries: geoms}, nil
	}

	// Unknown, None, or anything else the registry resolved but the tree
	// form cannot carry.
	return nil, errors.Unsupported(errors.PhaseDecode, path, string(name))
}

// flatParts decodes each child and keeps only its coordinate shape,
// discarding the child's own type tag. extract rejects children whose
// shape does not match the singular form.
func flatParts[T any](d *Decoder, h engine.Handle, path []string, extract func(*geometrycodec.Geometry) (T, bool)) ([]T, error) {
	n := d.eng.ChildCount(h)
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		sub, err := d.decode(d.eng.ChildRef(h, i), childPath(path, i))
		if err != nil {
			return nil, err
		}
		part, ok := extract(sub)
		if !ok {
			return nil, errors.Unsupported(errors.PhaseDecode, childPath(path, i), string(sub.Type))
		}
		out = append(out, part)
	}
	return out, nil
}

func childPath(path []string, i int) []string {
	return append(path[:len(path):len(path)], fmt.Sprintf("parts[%d]", i))
}

// coordinate reads one coordinate; z is requested only when the subtree's
// dimension exceeds 2.
func (d *Decoder) coordinate(h engine.Handle, i, dim int) geometrycodec.Coordinate {
	c := geometrycodec.Coordinate{d.eng.X(h, i), d.eng.Y(h, i)}
	if dim > 2 {
		c = append(c, d.eng.Z(h, i))
	}
	return c
}

// coordinates reads every coordinate in engine index order.
func (d *Decoder) coordinates(h engine.Handle, dim int) []geometrycodec.Coordinate {
	n := d.eng.PointCount(h)
	out := make([]geometrycodec.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.coordinate(h, i, dim))
	}
	return out
}

// DecodeWKB selects the geometry type from the buffer's type tag at byte
// offset 1, imports the buffer into a scratch engine handle, decodes it,
// and destroys the scratch handle on every exit path. The scratch handle
// is owned here and freed exactly once.
func (d *Decoder) DecodeWKB(data []byte) (*geometrycodec.Geometry, error) {
	if len(data) < 5 {
		return nil, errors.MalformedWKB("buffer too short for WKB header", nil)
	}

	code := geometrycodec.TypeCode(data[1])
	h := d.eng.Create(code)
	if h == 0 {
		return nil, errors.HandleCreationFailed(errors.PhaseImport, uint32(code))
	}
	defer d.eng.Destroy(h)

	if err := d.eng.ImportWKB(h, data); err != nil {
		return nil, errors.Wrap(errors.PhaseImport, errors.KindMalformedWKB, err, "WKB import")
	}
	return d.Decode(h)
}
