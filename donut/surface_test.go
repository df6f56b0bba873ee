package donut

import "errors"

var errSurface = errors.New("surface failure")

type fakeShape struct {
	pts      []Point
	fill     Color
	dx, dy   float64
	scale    float64
	pathSets int
}

// fakeSurface records every scene operation for assertions.
type fakeSurface struct {
	next      int
	shapes    map[int]*fakeShape
	label     string
	destroyed bool

	addCalls    int
	removeCalls int

	failAdd    bool
	failPath   bool
	failRemove bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{shapes: make(map[int]*fakeShape)}
}

func (f *fakeSurface) AddShape() (int, error) {
	f.addCalls++
	if f.failAdd {
		return -1, errSurface
	}
	h := f.next
	f.next++
	f.shapes[h] = &fakeShape{scale: 1}
	return h, nil
}

func (f *fakeSurface) SetShapePath(handle int, pts []Point, fill Color) error {
	if f.failPath {
		return errSurface
	}
	sh, ok := f.shapes[handle]
	if !ok {
		return errSurface
	}
	sh.pts = append([]Point(nil), pts...)
	sh.fill = fill
	sh.pathSets++
	return nil
}

func (f *fakeSurface) SetShapeTransform(handle int, dx, dy, scale float64) error {
	sh, ok := f.shapes[handle]
	if !ok {
		return errSurface
	}
	sh.dx = dx
	sh.dy = dy
	sh.scale = scale
	return nil
}

func (f *fakeSurface) RemoveShape(handle int) error {
	f.removeCalls++
	if f.failRemove {
		return errSurface
	}
	if _, ok := f.shapes[handle]; !ok {
		return errSurface
	}
	delete(f.shapes, handle)
	return nil
}

func (f *fakeSurface) SetLabel(text string) error {
	f.label = text
	return nil
}

func (f *fakeSurface) Destroy() error {
	f.destroyed = true
	return nil
}
