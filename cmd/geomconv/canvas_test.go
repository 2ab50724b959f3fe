package main

import (
	"strings"
	"testing"

	geometrycodec "github.com/wippyai/geometry-codec"
)

func TestCanvasMarkAndRows(t *testing.T) {
	cv := newCanvas(2, 1)
	cv.mark(0, 0) // dot 1 of the first cell
	rows := cv.rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	got := []rune(rows[0])
	if got[0] != rune(0x2801) {
		t.Errorf("cell = %U, want U+2801", got[0])
	}
	if got[1] != ' ' {
		t.Errorf("untouched cell should be blank, got %U", got[1])
	}

	// Out-of-range marks are ignored.
	cv.mark(-1, 0)
	cv.mark(100, 100)
}

func TestCanvasSegmentDiagonal(t *testing.T) {
	cv := newCanvas(4, 2)
	cv.segment(0, 0, 7, 7)
	marked := 0
	for _, row := range cv.rows() {
		for _, r := range row {
			if r != ' ' {
				marked++
			}
		}
	}
	if marked == 0 {
		t.Fatal("diagonal segment left the canvas empty")
	}
}

func TestPathsFlattensTree(t *testing.T) {
	g := &geometrycodec.Geometry{
		Type: geometrycodec.TypeGeometryCollection,
		Geometries: []*geometrycodec.Geometry{
			{Type: geometrycodec.TypePoint, Point: geometrycodec.Coordinate{5, 5}},
			{
				Type: geometrycodec.TypePolygon,
				Rings: [][]geometrycodec.Coordinate{
					{{0, 0}, {0, 10}, {10, 10}, {0, 0}},
				},
			},
		},
	}

	segs, bb := paths(g)
	if len(segs) != 2 {
		t.Fatalf("paths = %d, want 2", len(segs))
	}
	if !bb.set || bb.minX != 0 || bb.maxX != 10 || bb.minY != 0 || bb.maxY != 10 {
		t.Errorf("bounds = %+v", bb)
	}
}

func TestRenderProducesInk(t *testing.T) {
	g := &geometrycodec.Geometry{
		Type:        geometrycodec.TypeLineString,
		Coordinates: []geometrycodec.Coordinate{{0, 0}, {10, 10}},
	}

	rows := render(g, 20, 10, 1, 0, 0)
	if len(rows) != 10 {
		t.Fatalf("rows = %d, want 10", len(rows))
	}
	joined := strings.Join(rows, "")
	if strings.TrimSpace(joined) == "" {
		t.Fatal("render produced a blank canvas")
	}
}

func TestRenderEmptyGeometry(t *testing.T) {
	rows := render(&geometrycodec.Geometry{Type: geometrycodec.TypeGeometryCollection}, 10, 4, 1, 0, 0)
	for _, row := range rows {
		if strings.TrimSpace(row) != "" {
			t.Fatal("empty geometry should render a blank canvas")
		}
	}
}
