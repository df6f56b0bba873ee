package donutgl

import (
	"errors"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"github.com/divizend/donutchart/donut"
)

var (
	ErrSceneFull = errors.New("donutgl: scene full")
	ErrBadHandle = errors.New("donutgl: invalid shape handle")
	ErrDestroyed = errors.New("donutgl: scene destroyed")
)

// shape is one retained drawable. Outline points are relative to the scene
// center; the transform offsets and scales them about it.
type shape struct {
	pts    []donut.Point
	fill   donut.Color
	dx, dy float64
	scale  float64
}

// Scene is a retained set of shape drawables plus one text label, with a
// fixed shape capacity. It implements donut.Surface.
type Scene struct {
	target Target
	cx, cy float64

	// Background is the clear color painted before every frame.
	Background donut.Color
	// LabelColor is the text color of the center label.
	LabelColor donut.Color

	font   tinyfont.Fonter
	fontH  int16
	label  string
	shapes []shape
	alive  []bool

	destroyed bool
}

// NewScene creates a scene rendering into target, with the chart center at
// (cx, cy) and a fixed shape capacity.
func NewScene(target Target, cx, cy float64, maxShapes int) *Scene {
	if maxShapes < 0 {
		maxShapes = 0
	}
	return &Scene{
		target:     target,
		cx:         cx,
		cy:         cy,
		Background: donut.RGB(0x05, 0x08, 0x12),
		LabelColor: donut.RGB(0xE0, 0xE8, 0xFF),
		font:       &freemono.Regular9pt7b,
		fontH:      16,
		shapes:     make([]shape, maxShapes),
		alive:      make([]bool, maxShapes),
	}
}

// AddShape allocates an empty drawable slot and returns its handle.
func (s *Scene) AddShape() (int, error) {
	if s.destroyed {
		return -1, ErrDestroyed
	}
	for i := range s.shapes {
		if s.alive[i] {
			continue
		}
		s.shapes[i] = shape{scale: 1}
		s.alive[i] = true
		return i, nil
	}
	return -1, ErrSceneFull
}

func (s *Scene) SetShapePath(handle int, pts []donut.Point, fill donut.Color) error {
	sh, err := s.shapeAt(handle)
	if err != nil {
		return err
	}
	sh.pts = append(sh.pts[:0], pts...)
	sh.fill = fill
	return nil
}

func (s *Scene) SetShapeTransform(handle int, dx, dy, scale float64) error {
	sh, err := s.shapeAt(handle)
	if err != nil {
		return err
	}
	sh.dx = dx
	sh.dy = dy
	sh.scale = scale
	return nil
}

func (s *Scene) RemoveShape(handle int) error {
	sh, err := s.shapeAt(handle)
	if err != nil {
		return err
	}
	*sh = shape{}
	s.alive[handle] = false
	return nil
}

func (s *Scene) SetLabel(text string) error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.label = text
	return nil
}

// Destroy releases all drawables and the label. Idempotent; rendering a
// destroyed scene is a no-op.
func (s *Scene) Destroy() error {
	if s.destroyed {
		return nil
	}
	s.destroyed = true
	s.shapes = nil
	s.alive = nil
	s.label = ""
	return nil
}

func (s *Scene) shapeAt(handle int) (*shape, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	if handle < 0 || handle >= len(s.shapes) || !s.alive[handle] {
		return nil, ErrBadHandle
	}
	return &s.shapes[handle], nil
}

// Render paints the whole scene into the target: background, every alive
// shape, then the label centered on the scene center.
func (s *Scene) Render() {
	if s == nil || s.target == nil || s.destroyed {
		return
	}
	s.target.Clear(s.Background)

	for i := range s.shapes {
		if !s.alive[i] {
			continue
		}
		sh := &s.shapes[i]
		if len(sh.pts) < 3 {
			continue
		}
		fillPolygon(s.target, sh.pts, s.cx+sh.dx, s.cy+sh.dy, sh.scale, sh.fill)
	}

	if s.label != "" {
		_, w := tinyfont.LineWidth(s.font, s.label)
		x := int16(s.cx) - int16(w)/2
		y := int16(s.cy) + s.fontH/2
		s.text(x, y, s.label, s.LabelColor)
	}
}

// DrawText writes a line of text directly onto the target, for HUD overlays
// drawn after Render.
func (s *Scene) DrawText(x, y int, str string, c donut.Color) {
	if s == nil || s.target == nil || s.destroyed {
		return
	}
	s.text(int16(x), int16(y)+s.fontH, str, c)
}

func (s *Scene) text(x, y int16, str string, c donut.Color) {
	d := &targetDisplayer{t: s.target}
	tinyfont.WriteLine(d, s.font, x, y, str, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// targetDisplayer adapts a Target to the displayer interface tinyfont draws
// through.
type targetDisplayer struct {
	t Target
}

func (d *targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), donut.RGBA(c.R, c.G, c.B, c.A))
}

func (d *targetDisplayer) Display() error { return nil }
