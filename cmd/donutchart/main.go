// Command donutchart opens a window with an animated half-donut chart fed
// by a periodic random dataset. Clicking a segment pops it out; the up and
// down arrows change the number of segments; escape quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/divizend/donutchart/donut"
	"github.com/divizend/donutchart/donutgl"
	"github.com/divizend/donutchart/hal"
	"github.com/divizend/donutchart/internal/buildinfo"
)

const (
	minSlices = 2
	maxSlices = 8
)

var palette = []donut.Color{
	donut.RGB(0xE8, 0x5D, 0x4F),
	donut.RGB(0xF2, 0xA6, 0x3C),
	donut.RGB(0xF7, 0xD0, 0x54),
	donut.RGB(0x6F, 0xBF, 0x73),
	donut.RGB(0x4F, 0x9D, 0xD9),
	donut.RGB(0x7E, 0x6B, 0xC9),
	donut.RGB(0xC9, 0x6B, 0xB5),
	donut.RGB(0x8A, 0x99, 0xA6),
}

type app struct {
	host  *hal.Host
	scene *donutgl.Scene
	chart *donut.Chart

	now      uint64
	interval uint64
	slices   int
	rng      uint32
	total    float64
}

func main() {
	width := flag.Int("width", 480, "window width in pixels")
	height := flag.Int("height", 360, "window height in pixels")
	slices := flag.Int("slices", 4, "initial number of segments")
	interval := flag.Uint64("interval", 150, "ticks between random updates (0 disables)")
	headless := flag.Bool("headless", false, "run without a window for a fixed number of ticks")
	headlessTicks := flag.Uint64("headless-ticks", 600, "how many ticks -headless runs for")
	flag.Parse()

	host := hal.New(*width, *height)
	log := host.Logger()

	a, err := newApp(host, *width, *height, *slices, *interval)
	if err != nil {
		log.WriteLineString("donutchart: " + err.Error())
		os.Exit(1)
	}
	defer a.chart.Destroy()

	title := "Donut chart (" + buildinfo.Short() + ")"
	if *headless {
		err = hal.RunHeadless(context.Background(), a.step, hal.HeadlessConfig{Ticks: *headlessTicks})
	} else {
		err = hal.RunWindow(host, title, a.step)
	}
	if err != nil {
		log.WriteLineString("donutchart: " + err.Error())
		os.Exit(1)
	}
}

func newApp(host *hal.Host, width, height, slices int, interval uint64) (*app, error) {
	a := &app{
		host:     host,
		interval: interval,
		slices:   clampSlices(slices),
		rng:      0x12345678,
	}

	cfg := donut.Config{
		InnerRadius: 70,
		OuterRadius: 130,
		PopDistance: 18,
		StartAngle:  -math.Pi,
		EndAngle:    0,
		Width:       float64(width),
		Height:      float64(height),
		FormatLabel: formatEuro,
	}

	fb := host.Framebuffer()
	target := &donutgl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	cx, cy := cfg.Center()
	a.scene = donutgl.NewScene(target, cx, cy, 2*maxSlices)

	data := a.randomData()
	chart, err := donut.New(cfg, a.scene, data, a.total)
	if err != nil {
		return nil, err
	}
	a.chart = chart
	return a, nil
}

// step runs once per frame: input, periodic data, timelines, then redraw.
func (a *app) step() error {
	a.now++

input:
	for {
		select {
		case ev := <-a.host.Keyboard().Events():
			if err := a.handleKey(ev); err != nil {
				return err
			}
		case ev := <-a.host.Pointer().Events():
			if id, ok := a.chart.SliceAt(float64(ev.X), float64(ev.Y)); ok {
				if err := a.chart.Activate(id); err != nil {
					return err
				}
			}
		default:
			break input
		}
	}

	if a.interval > 0 && a.now%a.interval == 0 {
		if err := a.pushRandomData(); err != nil {
			return err
		}
	}

	if err := a.chart.Step(a.now); err != nil {
		return err
	}

	a.scene.Render()
	a.scene.DrawText(6, 6, "click: pop   up/down: slices   enter: shuffle", donut.RGB(0x90, 0xA0, 0xB8))
	return a.host.Framebuffer().Present()
}

func (a *app) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		return ebiten.Termination
	case hal.KeyUp:
		a.slices = clampSlices(a.slices + 1)
		return a.pushRandomData()
	case hal.KeyDown:
		a.slices = clampSlices(a.slices - 1)
		return a.pushRandomData()
	case hal.KeyEnter:
		return a.pushRandomData()
	}
	return nil
}

// pushRandomData requests a transition to a fresh dataset and refreshes the
// label. A request dropped because a transition is running is fine; the next
// periodic update will land.
func (a *app) pushRandomData() error {
	if err := a.chart.UpdateData(a.randomData()); err != nil {
		return err
	}
	return a.chart.UpdateLabelValue(a.total)
}

// randomData keeps positional ids, so slice k animates between datasets
// instead of being recreated.
func (a *app) randomData() []donut.DataPoint {
	data := make([]donut.DataPoint, a.slices)
	a.total = 0
	for i := range data {
		a.rng = xorshift32(a.rng)
		v := float64(10 + a.rng%90)
		a.total += v * 10
		data[i] = donut.DataPoint{
			ID:    fmt.Sprintf("slice-%d", i),
			Value: v,
			Color: palette[i%len(palette)],
		}
	}
	return data
}

func clampSlices(n int) int {
	if n < minSlices {
		return minSlices
	}
	if n > maxSlices {
		return maxSlices
	}
	return n
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// formatEuro renders a value like "12 340 €" with thousands grouping.
func formatEuro(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + " " + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s + " €"
}
