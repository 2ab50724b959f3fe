package engine

import (
	"encoding/binary"
	"math"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/errors"
)

// WKB byte order markers.
const (
	wkbXDR = 0 // big-endian
	wkbNDR = 1 // little-endian
)

// isoZOffset is the ISO SQL/MM offset for Z type codes (1001 = Point Z and
// so on). Accepted on import; the extended high-bit form is emitted.
const isoZOffset = 1000

// wkbGeom is a parsed WKB geometry, not yet backed by table handles.
type wkbGeom struct {
	code   geometrycodec.TypeCode
	dim    int
	coords [][3]float64
	parts  []*wkbGeom
}

// decodeWKB parses a complete WKB buffer. Trailing bytes are an error.
func decodeWKB(data []byte) (*wkbGeom, error) {
	r := &wkbReader{data: data}
	g, err := r.geometry()
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, errors.MalformedWKB("trailing bytes after geometry", nil)
	}
	return g, nil
}

type wkbReader struct {
	data []byte
	pos  int
}

func (r *wkbReader) remaining() int { return len(r.data) - r.pos }

func (r *wkbReader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, errors.MalformedWKB("buffer truncated", nil)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *wkbReader) geometry() (*wkbGeom, error) {
	header, err := r.take(5)
	if err != nil {
		return nil, err
	}

	var order binary.ByteOrder
	switch header[0] {
	case wkbXDR:
		order = binary.BigEndian
	case wkbNDR:
		order = binary.LittleEndian
	default:
		return nil, errors.New(errors.PhaseImport, errors.KindMalformedWKB).
			Detail("invalid byte order marker 0x%02x", header[0]).
			Build()
	}

	raw := geometrycodec.TypeCode(order.Uint32(header[1:5]))
	base := raw.Base()
	dim := 2
	if raw.Is3D() {
		dim = 3
	}
	if base >= isoZOffset && base < 2*isoZOffset {
		base -= isoZOffset
		dim = 3
	}

	g := &wkbGeom{code: base, dim: dim}

	switch base {
	case geometrycodec.CodePoint:
		c, err := r.coordinate(order, dim)
		if err != nil {
			return nil, err
		}
		g.coords = [][3]float64{c}

	case geometrycodec.CodeLineString, geometrycodec.CodeLinearRing:
		coords, err := r.coordinates(order, dim)
		if err != nil {
			return nil, err
		}
		g.coords = coords

	case geometrycodec.CodePolygon:
		n, err := r.count(order)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			coords, err := r.coordinates(order, dim)
			if err != nil {
				return nil, err
			}
			g.parts = append(g.parts, &wkbGeom{
				code:   geometrycodec.CodeLinearRing,
				dim:    dim,
				coords: coords,
			})
		}

	case geometrycodec.CodeMultiPoint,
		geometrycodec.CodeMultiLineString,
		geometrycodec.CodeMultiPolygon:
		want := base - 3 // singular code of the multi kind
		if err := r.children(g, want, order); err != nil {
			return nil, err
		}

	case geometrycodec.CodeGeometryCollection:
		if err := r.children(g, geometrycodec.CodeUnknown, order); err != nil {
			return nil, err
		}

	default:
		return nil, errors.New(errors.PhaseImport, errors.KindMalformedWKB).
			Detail("unsupported WKB type code %d", uint32(raw)).
			Value(uint32(raw)).
			Build()
	}

	return g, nil
}

// children reads a count followed by that many embedded full geometries.
// The count uses the enclosing geometry's byte order; each child carries
// its own. want constrains the child base type; CodeUnknown accepts any.
func (r *wkbReader) children(g *wkbGeom, want geometrycodec.TypeCode, order binary.ByteOrder) error {
	n, err := r.count(order)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		child, err := r.geometry()
		if err != nil {
			return err
		}
		if want != geometrycodec.CodeUnknown && child.code != want {
			return errors.New(errors.PhaseImport, errors.KindMalformedWKB).
				Detail("child type code %d inside collection of %d",
					uint32(child.code), uint32(g.code)).
				Build()
		}
		if child.dim == 3 {
			g.dim = 3
		}
		g.parts = append(g.parts, child)
	}
	return nil
}

func (r *wkbReader) count(order binary.ByteOrder) (int, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	n := order.Uint32(b)
	if int(n) > r.remaining() {
		return 0, errors.OutOfBounds(errors.PhaseImport, nil, int(n), r.remaining())
	}
	return int(n), nil
}

func (r *wkbReader) coordinates(order binary.ByteOrder, dim int) ([][3]float64, error) {
	n, err := r.count(order)
	if err != nil {
		return nil, err
	}
	coords := make([][3]float64, 0, n)
	for i := 0; i < n; i++ {
		c, err := r.coordinate(order, dim)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func (r *wkbReader) coordinate(order binary.ByteOrder, dim int) ([3]float64, error) {
	b, err := r.take(dim * 8)
	if err != nil {
		return [3]float64{}, err
	}
	var c [3]float64
	for i := 0; i < dim; i++ {
		c[i] = math.Float64frombits(order.Uint64(b[i*8:]))
	}
	return c, nil
}

// encodeWKB serializes a node tree to little-endian WKB.
func (m *Mem) encodeWKB(n *node) ([]byte, error) {
	w := &wkbWriter{}
	if err := m.writeGeometry(w, n); err != nil {
		return nil, err
	}
	return w.buf, nil
}

type wkbWriter struct {
	buf []byte
}

func (w *wkbWriter) u8(v byte) {
	w.buf = append(w.buf, v)
}

func (w *wkbWriter) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *wkbWriter) f64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

func (w *wkbWriter) coordinate(c [3]float64, dim int) {
	for i := 0; i < dim; i++ {
		w.f64(c[i])
	}
}

func (w *wkbWriter) ring(coords [][3]float64, dim int) {
	w.u32(uint32(len(coords)))
	for _, c := range coords {
		w.coordinate(c, dim)
	}
}

func (m *Mem) writeGeometry(w *wkbWriter, n *node) error {
	// A bare LinearRing has no WKB code of its own; it exports as a
	// LineString.
	code := n.code
	if code == geometrycodec.CodeLinearRing {
		code = geometrycodec.CodeLineString
	}

	w.u8(wkbNDR)
	if n.dim == 3 {
		code = code.With3D()
	}
	w.u32(uint32(code))

	switch n.code {
	case geometrycodec.CodePoint:
		if len(n.coords) == 0 {
			// Empty point convention: NaN components.
			for i := 0; i < n.dim; i++ {
				w.f64(math.NaN())
			}
			return nil
		}
		w.coordinate(n.coords[0], n.dim)
		return nil

	case geometrycodec.CodeLineString, geometrycodec.CodeLinearRing:
		w.ring(n.coords, n.dim)
		return nil

	case geometrycodec.CodePolygon:
		w.u32(uint32(len(n.children)))
		for _, ch := range n.children {
			ring := m.node(ch)
			if ring == nil {
				return errors.InvalidData(errors.PhaseEngine, nil,
					"polygon ring handle is dead")
			}
			w.ring(ring.coords, n.dim)
		}
		return nil

	case geometrycodec.CodeMultiPoint,
		geometrycodec.CodeMultiLineString,
		geometrycodec.CodeMultiPolygon,
		geometrycodec.CodeGeometryCollection:
		w.u32(uint32(len(n.children)))
		for _, ch := range n.children {
			child := m.node(ch)
			if child == nil {
				return errors.InvalidData(errors.PhaseEngine, nil,
					"child handle is dead")
			}
			if err := m.writeGeometry(w, child); err != nil {
				return err
			}
		}
		return nil
	}

	return errors.InvalidData(errors.PhaseEngine, nil,
		"node type has no WKB form")
}
