package main

import (
	"math"

	geometrycodec "github.com/wippyai/geometry-codec"
)

// canvas rasterizes geometry outlines into braille cells. Each terminal
// cell holds a 2x4 micro-pixel block encoded as a bit mask in the
// U+2800 braille range.
type canvas struct {
	w, h  int // in cells
	cells [][]uint8
}

func newCanvas(w, h int) *canvas {
	cells := make([][]uint8, h)
	for i := range cells {
		cells[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

// braille dot numbering is not row-major; the bit for each micro-pixel
// position follows the Unicode braille pattern layout.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// mark sets one micro-pixel. Coordinates outside the canvas are ignored.
func (c *canvas) mark(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.cells[cy][cx] |= brailleBits[my%4][mx%2]
}

// segment draws a micro-pixel line with Bresenham's algorithm.
func (c *canvas) segment(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		c.mark(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			if mask := c.cells[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// bounds is an axis-aligned bounding box over a geometry's X/Y components.
type bounds struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func (b *bounds) extend(c geometrycodec.Coordinate) {
	if len(c) < 2 {
		return
	}
	x, y := c.X(), c.Y()
	if !b.set {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

// paths flattens a geometry tree into drawable coordinate sequences. A
// single coordinate renders as a dot; longer sequences render as joined
// segments. Ring closure is preserved as-is: closed rings already repeat
// their first coordinate.
func paths(g *geometrycodec.Geometry) ([][]geometrycodec.Coordinate, bounds) {
	var out [][]geometrycodec.Coordinate
	var bb bounds

	var walk func(g *geometrycodec.Geometry)
	walk = func(g *geometrycodec.Geometry) {
		if g == nil {
			return
		}
		switch g.Type {
		case geometrycodec.TypePoint:
			if g.Point != nil {
				out = append(out, []geometrycodec.Coordinate{g.Point})
			}
		case geometrycodec.TypeMultiPoint:
			for _, c := range g.Coordinates {
				out = append(out, []geometrycodec.Coordinate{c})
			}
		case geometrycodec.TypeLineString, geometrycodec.TypeLinearRing:
			out = append(out, g.Coordinates)
		case geometrycodec.TypePolygon, geometrycodec.TypeMultiLineString:
			for _, ring := range g.Rings {
				out = append(out, ring)
			}
		case geometrycodec.TypeMultiPolygon:
			for _, poly := range g.Polygons {
				for _, ring := range poly {
					out = append(out, ring)
				}
			}
		case geometrycodec.TypeGeometryCollection:
			for _, sub := range g.Geometries {
				walk(sub)
			}
		}
	}
	walk(g)

	for _, path := range out {
		for _, c := range path {
			bb.extend(c)
		}
	}
	return out, bb
}

// render projects a geometry into a braille canvas. zoom scales around the
// bounding box center; offsetX/offsetY pan in cell units.
func render(g *geometrycodec.Geometry, w, h int, zoom float64, offsetX, offsetY int) []string {
	cv := newCanvas(w, h)
	segs, bb := paths(g)
	if !bb.set {
		return cv.rows()
	}

	spanX := bb.maxX - bb.minX
	spanY := bb.maxY - bb.minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	wMic, hMic := w*2, h*4
	project := func(c geometrycodec.Coordinate) (int, int) {
		nx := (c.X() - bb.minX) / spanX
		ny := (c.Y() - bb.minY) / spanY
		zx := 0.5 + (nx-0.5)*zoom
		zy := 0.5 + (ny-0.5)*zoom
		mx := int(zx*float64(wMic-1)) + offsetX*2
		my := int((1-zy)*float64(hMic-1)) + offsetY*4
		return mx, my
	}

	for _, path := range segs {
		if len(path) == 1 {
			mx, my := project(path[0])
			cv.mark(mx, my)
			continue
		}
		for i := 1; i < len(path); i++ {
			x0, y0 := project(path[i-1])
			x1, y1 := project(path[i])
			cv.segment(x0, y0, x1, y1)
		}
	}
	return cv.rows()
}
