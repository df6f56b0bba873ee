package donut

import "math"

// Point is a 2D point. Screen convention: y grows downward, angle 0 points
// along +x, so the half-donut range [-pi, 0] is the upper half of the ring.
type Point struct {
	X, Y float64
}

// DataPoint is one chart input value.
//
// ID is the sole continuity key across updates. An empty ID is auto-assigned
// by position when the data enters the chart (see Chart.UpdateData).
type DataPoint struct {
	ID    string
	Value float64
	Color Color
}

// Span is the angular range assigned to one id.
type Span struct {
	ID    string
	Start float64
	End   float64
}

// ComputeAngles partitions [startAngle, endAngle] proportionally to each
// value's share of the dataset total.
//
// Duplicate ids collapse to their last occurrence (its value and position).
// The final span's end is pinned to endAngle exactly, so accumulated
// rounding cannot open a gap at the boundary. Returns ErrInvalidInput when
// the total is not positive.
func ComputeAngles(data []DataPoint, startAngle, endAngle float64) ([]Span, error) {
	points := dedupeLastWins(data)

	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	if total <= 0 {
		return nil, ErrInvalidInput
	}

	spans := make([]Span, 0, len(points))
	full := endAngle - startAngle
	cursor := startAngle
	for i, p := range points {
		end := cursor + full*(p.Value/total)
		if i == len(points)-1 {
			end = endAngle
		}
		spans = append(spans, Span{ID: p.ID, Start: cursor, End: end})
		cursor = end
	}
	return spans, nil
}

// dedupeLastWins keeps, for every id, only its last occurrence.
func dedupeLastWins(data []DataPoint) []DataPoint {
	last := make(map[string]int, len(data))
	for i, p := range data {
		last[p.ID] = i
	}
	if len(last) == len(data) {
		return data
	}
	out := make([]DataPoint, 0, len(last))
	for i, p := range data {
		if last[p.ID] == i {
			out = append(out, p)
		}
	}
	return out
}

// ArcPolygon builds the closed outline of an annulus segment, centered on
// the origin: the outer arc walked from start toward end in precision-sized
// angular steps plus the exact endpoint, then the inner arc walked back plus
// the exact start point. The walk follows the sign of end-start, so
// descending ranges work too.
//
// Smaller precision gives smoother curvature and more points. A zero-width
// span returns nil, which renders as nothing.
func ArcPolygon(inner, outer, start, end, precision float64) []Point {
	if start == end {
		return nil
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}
	step := precision
	if end < start {
		step = -precision
	}

	n := int(math.Abs(end-start)/precision) + 2
	pts := make([]Point, 0, 2*n)

	for a := start; (end-a)*step > 0; a += step {
		pts = append(pts, Point{X: math.Cos(a) * outer, Y: math.Sin(a) * outer})
	}
	pts = append(pts, Point{X: math.Cos(end) * outer, Y: math.Sin(end) * outer})

	for a := end; (a-start)*step > 0; a -= step {
		pts = append(pts, Point{X: math.Cos(a) * inner, Y: math.Sin(a) * inner})
	}
	pts = append(pts, Point{X: math.Cos(start) * inner, Y: math.Sin(start) * inner})

	return pts
}
