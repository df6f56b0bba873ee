package donutgl

import (
	"testing"

	"github.com/divizend/donutchart/donut"
)

func square(half float64) []donut.Point {
	return []donut.Point{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
}

func TestFillPolygonSquare(t *testing.T) {
	tg := newMemTarget(32, 32)
	c := donut.RGB(0xFF, 0, 0)

	fillPolygon(tg, square(5), 10, 10, 1, c)

	if got := len(tg.pix); got != 100 {
		t.Fatalf("filled %d pixels, want 100", got)
	}
	if tg.pix[[2]int{10, 10}] != c {
		t.Error("center pixel not filled")
	}
	if _, ok := tg.pix[[2]int{0, 0}]; ok {
		t.Error("pixel outside polygon filled")
	}
}

func TestFillPolygonScale(t *testing.T) {
	tg := newMemTarget(64, 64)
	c := donut.RGB(0, 0xFF, 0)

	fillPolygon(tg, square(5), 32, 32, 2, c)

	if got := len(tg.pix); got != 400 {
		t.Fatalf("filled %d pixels at scale 2, want 400", got)
	}
}

func TestFillPolygonClipsToTarget(t *testing.T) {
	tg := newMemTarget(8, 8)
	fillPolygon(tg, square(100), 4, 4, 1, donut.RGB(1, 1, 1))
	if got := len(tg.pix); got != 64 {
		t.Fatalf("clipped fill covered %d pixels, want 64", got)
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	tg := newMemTarget(8, 8)
	fillPolygon(tg, nil, 4, 4, 1, donut.RGB(1, 1, 1))
	fillPolygon(tg, square(0), 4, 4, 1, donut.RGB(1, 1, 1))
	if len(tg.pix) != 0 {
		t.Fatalf("degenerate polygons filled %d pixels", len(tg.pix))
	}
}
