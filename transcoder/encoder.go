package transcoder

import (
	"fmt"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/engine"
	"github.com/wippyai/geometry-codec/errors"
)

// Encoder builds engine geometry handles from tagged geometry trees.
type Encoder struct {
	eng engine.Engine
}

// NewEncoder creates an encoder building into eng.
func NewEncoder(eng engine.Engine) *Encoder {
	return &Encoder{eng: eng}
}

// Encode builds a new engine geometry for the tree. On success the caller
// owns the returned handle and must eventually destroy it (or transfer
// ownership onward). On failure nothing escapes: every handle created for
// the tree is destroyed before the error propagates.
func (e *Encoder) Encode(g *geometrycodec.Geometry) (engine.Handle, error) {
	return e.encode(g, nil)
}

func (e *Encoder) encode(g *geometrycodec.Geometry, path []string) (engine.Handle, error) {
	if g == nil {
		return 0, errors.MalformedTree(path, "", "nil geometry")
	}

	switch g.Type {
	case geometrycodec.TypePoint:
		if len(g.Point) == 0 {
			return 0, errors.MalformedTree(path, string(g.Type), "point has no coordinate")
		}
		return e.leaf(geometrycodec.CodePoint, []geometrycodec.Coordinate{g.Point}, false, g.Type, path)

	case geometrycodec.TypeLineString:
		return e.leaf(geometrycodec.CodeLineString, g.Coordinates, false, g.Type, path)

	case geometrycodec.TypeLinearRing:
		return e.leaf(geometrycodec.CodeLinearRing, g.Coordinates, true, g.Type, path)

	case geometrycodec.TypePolygon:
		return e.polygon(g.Rings, path)

	case geometrycodec.TypeMultiPoint:
		return e.container(geometrycodec.CodeMultiPoint, len(g.Coordinates), path, func(i int) (engine.Handle, error) {
			sub := &geometrycodec.Geometry{Type: geometrycodec.TypePoint, Point: g.Coordinates[i]}
			return e.encode(sub, childEncPath(path, i))
		})

	case geometrycodec.TypeMultiLineString:
		return e.container(geometrycodec.CodeMultiLineString, len(g.Rings), path, func(i int) (engine.Handle, error) {
			sub := &geometrycodec.Geometry{Type: geometrycodec.TypeLineString, Coordinates: g.Rings[i]}
			return e.encode(sub, childEncPath(path, i))
		})

	case geometrycodec.TypeMultiPolygon:
		return e.container(geometrycodec.CodeMultiPolygon, len(g.Polygons), path, func(i int) (engine.Handle, error) {
			return e.polygon(g.Polygons[i], childEncPath(path, i))
		})

	case geometrycodec.TypeGeometryCollection:
		return e.container(geometrycodec.CodeGeometryCollection, len(g.Geometries), path, func(i int) (engine.Handle, error) {
			return e.encode(g.Geometries[i], childEncPath(path, i))
		})
	}

	return 0, errors.Unsupported(errors.PhaseEncode, path, string(g.Type))
}

// create asks the engine for a fresh node and converts a refusal into
// HandleCreationFailed.
func (e *Encoder) create(code geometrycodec.TypeCode) (engine.Handle, error) {
	h := e.eng.Create(code)
	if h == 0 {
		return 0, errors.HandleCreationFailed(errors.PhaseEncode, uint32(code))
	}
	return h, nil
}

// leaf builds a coordinate-bearing node. ring additionally closes it.
func (e *Encoder) leaf(code geometrycodec.TypeCode, coords []geometrycodec.Coordinate, ring bool, name geometrycodec.TypeName, path []string) (h engine.Handle, err error) {
	h, err = e.create(code)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			e.eng.Destroy(h)
			h = 0
		}
	}()

	for i, c := range coords {
		switch len(c) {
		case 2:
			e.eng.AddPoint2D(h, c[0], c[1])
		case 3:
			e.eng.AddPoint3D(h, c[0], c[1], c[2])
		default:
			err = errors.MalformedTree(
				append(path[:len(path):len(path)], fmt.Sprintf("coordinates[%d]", i)),
				string(name),
				fmt.Sprintf("coordinate has %d components, want 2 or 3", len(c)))
			return
		}
	}

	if ring {
		e.eng.CloseRing(h)
	}
	return h, nil
}

// polygon builds a Polygon node; the first coordinate sequence is the
// shell, the remainder are holes. Each ring sub-handle transfers into the
// polygon on attachment.
func (e *Encoder) polygon(rings [][]geometrycodec.Coordinate, path []string) (engine.Handle, error) {
	return e.container(geometrycodec.CodePolygon, len(rings), path, func(i int) (engine.Handle, error) {
		ringPath := append(path[:len(path):len(path)], fmt.Sprintf("rings[%d]", i))
		return e.leaf(geometrycodec.CodeLinearRing, rings[i], true, geometrycodec.TypeLinearRing, ringPath)
	})
}

// container builds a node with n owned children. A child build failure or
// attachment failure destroys the container (and through it every child
// already attached) before propagating; a child that was built but not yet
// attached is destroyed separately.
func (e *Encoder) container(code geometrycodec.TypeCode, n int, path []string, build func(int) (engine.Handle, error)) (h engine.Handle, err error) {
	h, err = e.create(code)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			e.eng.Destroy(h)
			h = 0
		}
	}()

	for i := 0; i < n; i++ {
		child, cerr := build(i)
		if cerr != nil {
			err = cerr
			return
		}
		if aerr := e.eng.AddChildOwned(h, child); aerr != nil {
			e.eng.Destroy(child)
			err = aerr
			return
		}
	}
	return h, nil
}

func childEncPath(path []string, i int) []string {
	return append(path[:len(path):len(path)], fmt.Sprintf("parts[%d]", i))
}

// EncodeWKB encodes the tree and exports it as a WKB buffer. The
// intermediate handle never escapes; it is destroyed on every exit path.
func (e *Encoder) EncodeWKB(g *geometrycodec.Geometry) ([]byte, error) {
	h, err := e.Encode(g)
	if err != nil {
		return nil, err
	}
	defer e.eng.Destroy(h)
	return e.eng.ExportWKB(h)
}
