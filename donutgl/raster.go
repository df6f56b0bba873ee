package donutgl

import (
	"math"
	"sort"

	"github.com/divizend/donutchart/donut"
)

// fillPolygon rasterizes a closed polygon with even-odd scanline fill. The
// outline points are scaled about the origin and offset by (ox, oy) before
// rasterization; sampling is at pixel centers.
func fillPolygon(t Target, pts []donut.Point, ox, oy, scale float64, c donut.Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, p := range pts {
		y := oy + p.Y*scale
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= h {
		y1 = h - 1
	}

	xs := make([]float64, 0, 8)
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n]
			ay := oy + a.Y*scale
			by := oy + b.Y*scale
			if (ay <= yc) == (by <= yc) {
				continue
			}
			ax := ox + a.X*scale
			bx := ox + b.X*scale
			xs = append(xs, ax+(yc-ay)*(bx-ax)/(by-ay))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(xs[k] + 0.5)
			x1 := int(xs[k+1] + 0.5)
			if x0 < 0 {
				x0 = 0
			}
			if x1 > w {
				x1 = w
			}
			for x := x0; x < x1; x++ {
				t.SetPixel(x, y, c)
			}
		}
	}
}
