package diagram

import (
	"image/color"
	"math"
)

const (
	// DashLength is the drawn run of a dashed line.
	DashLength = 10.0
	// GapLength is the skipped run between dashes.
	GapLength = 6.0
)

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Segment is a straight run between two points.
type Segment struct {
	From, To Point
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// DashSegments walks (x1,y1)->(x2,y2) in alternating runs of dashLen drawn
// and gapLen skipped, starting with a dash at the origin. The last dash is
// clipped to the segment end. A zero-length segment yields no dashes.
func DashSegments(x1, y1, x2, y2, dashLen, gapLen float64) []Segment {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	if dashLen <= 0 {
		return []Segment{{From: Point{x1, y1}, To: Point{x2, y2}}}
	}
	if gapLen < 0 {
		gapLen = 0
	}
	ux, uy := dx/length, dy/length
	var segments []Segment
	for pos := 0.0; pos < length; {
		end := math.Min(pos+dashLen, length)
		segments = append(segments, Segment{
			From: Point{x1 + ux*pos, y1 + uy*pos},
			To:   Point{x1 + ux*end, y1 + uy*end},
		})
		pos = end + gapLen
	}
	return segments
}

// ArrowHead returns the triangle for an arrow pointing from (x1,y1) to
// (x2,y2): the tip, then the two back corners at headSize from the tip,
// 30 degrees either side of the shaft.
func ArrowHead(x1, y1, x2, y2, headSize float64) [3]Point {
	angle := math.Atan2(y2-y1, x2-x1)
	return [3]Point{
		{x2, y2},
		{x2 - headSize*math.Cos(angle-math.Pi/6), y2 - headSize*math.Sin(angle-math.Pi/6)},
		{x2 - headSize*math.Cos(angle+math.Pi/6), y2 - headSize*math.Sin(angle+math.Pi/6)},
	}
}

// DrawDashedLine strokes the dashes of DashSegments with the default
// dash and gap lengths.
func (c *Canvas) DrawDashedLine(x1, y1, x2, y2 float64, col color.Color, width float64) {
	for _, s := range DashSegments(x1, y1, x2, y2, DashLength, GapLength) {
		c.line(s.From.X, s.From.Y, s.To.X, s.To.Y, col, width)
	}
}
