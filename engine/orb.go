package engine

import (
	"github.com/paulmach/orb"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/errors"
)

// FromOrb builds an engine geometry from an orb value. The caller owns the
// returned handle. orb geometries are strictly 2D, so the result always has
// coordinate dimension 2.
func FromOrb(e Engine, g orb.Geometry) (Handle, error) {
	switch v := g.(type) {
	case orb.Point:
		h, err := create(e, geometrycodec.CodePoint)
		if err != nil {
			return 0, err
		}
		e.AddPoint2D(h, v[0], v[1])
		return h, nil

	case orb.LineString:
		return lineFromOrb(e, geometrycodec.CodeLineString, v)

	case orb.Ring:
		h, err := lineFromOrb(e, geometrycodec.CodeLinearRing, orb.LineString(v))
		if err != nil {
			return 0, err
		}
		e.CloseRing(h)
		return h, nil

	case orb.Polygon:
		return collectionFromOrb(e, geometrycodec.CodePolygon, len(v), func(i int) (Handle, error) {
			return FromOrb(e, v[i])
		})

	case orb.MultiPoint:
		return collectionFromOrb(e, geometrycodec.CodeMultiPoint, len(v), func(i int) (Handle, error) {
			return FromOrb(e, v[i])
		})

	case orb.MultiLineString:
		return collectionFromOrb(e, geometrycodec.CodeMultiLineString, len(v), func(i int) (Handle, error) {
			return FromOrb(e, v[i])
		})

	case orb.MultiPolygon:
		return collectionFromOrb(e, geometrycodec.CodeMultiPolygon, len(v), func(i int) (Handle, error) {
			return FromOrb(e, v[i])
		})

	case orb.Collection:
		return collectionFromOrb(e, geometrycodec.CodeGeometryCollection, len(v), func(i int) (Handle, error) {
			return FromOrb(e, v[i])
		})
	}

	return 0, errors.Unsupported(errors.PhaseEngine, nil, g.GeoJSONType())
}

func create(e Engine, code geometrycodec.TypeCode) (Handle, error) {
	h := e.Create(code)
	if h == 0 {
		return 0, errors.HandleCreationFailed(errors.PhaseEngine, uint32(code))
	}
	return h, nil
}

func lineFromOrb(e Engine, code geometrycodec.TypeCode, ls orb.LineString) (Handle, error) {
	h, err := create(e, code)
	if err != nil {
		return 0, err
	}
	for _, p := range ls {
		e.AddPoint2D(h, p[0], p[1])
	}
	return h, nil
}

func collectionFromOrb(e Engine, code geometrycodec.TypeCode, n int, build func(int) (Handle, error)) (Handle, error) {
	h, err := create(e, code)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		child, err := build(i)
		if err != nil {
			e.Destroy(h)
			return 0, err
		}
		if err := e.AddChildOwned(h, child); err != nil {
			e.Destroy(child)
			e.Destroy(h)
			return 0, err
		}
	}
	return h, nil
}

// ToOrb reads an engine geometry into an orb value. 3D geometries flatten
// to 2D on the way out; orb carries no Z coordinate.
func ToOrb(e Engine, h Handle) (orb.Geometry, error) {
	if h == 0 {
		return nil, errors.NullHandle(errors.PhaseEngine)
	}

	switch e.GeometryType(h).Base() {
	case geometrycodec.CodePoint:
		return orb.Point{e.X(h, 0), e.Y(h, 0)}, nil

	case geometrycodec.CodeLineString:
		return orb.LineString(orbPoints(e, h)), nil

	case geometrycodec.CodeLinearRing:
		return orb.Ring(orbPoints(e, h)), nil

	case geometrycodec.CodePolygon:
		poly := make(orb.Polygon, 0, e.ChildCount(h))
		for i := 0; i < e.ChildCount(h); i++ {
			poly = append(poly, orb.Ring(orbPoints(e, e.ChildRef(h, i))))
		}
		return poly, nil

	case geometrycodec.CodeMultiPoint:
		mp := make(orb.MultiPoint, 0, e.ChildCount(h))
		for i := 0; i < e.ChildCount(h); i++ {
			ch := e.ChildRef(h, i)
			mp = append(mp, orb.Point{e.X(ch, 0), e.Y(ch, 0)})
		}
		return mp, nil

	case geometrycodec.CodeMultiLineString:
		mls := make(orb.MultiLineString, 0, e.ChildCount(h))
		for i := 0; i < e.ChildCount(h); i++ {
			mls = append(mls, orb.LineString(orbPoints(e, e.ChildRef(h, i))))
		}
		return mls, nil

	case geometrycodec.CodeMultiPolygon:
		mp := make(orb.MultiPolygon, 0, e.ChildCount(h))
		for i := 0; i < e.ChildCount(h); i++ {
			sub, err := ToOrb(e, e.ChildRef(h, i))
			if err != nil {
				return nil, err
			}
			poly, ok := sub.(orb.Polygon)
			if !ok {
				return nil, errors.InvalidData(errors.PhaseEngine, nil,
					"MultiPolygon child is not a Polygon")
			}
			mp = append(mp, poly)
		}
		return mp, nil

	case geometrycodec.CodeGeometryCollection:
		coll := make(orb.Collection, 0, e.ChildCount(h))
		for i := 0; i < e.ChildCount(h); i++ {
			sub, err := ToOrb(e, e.ChildRef(h, i))
			if err != nil {
				return nil, err
			}
			coll = append(coll, sub)
		}
		return coll, nil
	}

	return nil, errors.Unsupported(errors.PhaseEngine, nil, "")
}

func orbPoints(e Engine, h Handle) []orb.Point {
	pts := make([]orb.Point, 0, e.PointCount(h))
	for i := 0; i < e.PointCount(h); i++ {
		pts = append(pts, orb.Point{e.X(h, i), e.Y(h, i)})
	}
	return pts
}
