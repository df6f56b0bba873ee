package donut

// Surface is the drawing backend the chart renders through. It retains
// drawables between frames (a scene graph); the chart updates them in place.
//
// A shape handle identifies one drawable, owned by exactly one slice at a
// time. Outline points are relative to the chart center. Errors propagate
// synchronously to the chart operation that triggered the draw; the chart
// never retries on its own.
type Surface interface {
	// AddShape allocates an empty drawable and returns its handle. A fresh
	// drawable renders nothing until it receives a path.
	AddShape() (int, error)

	// SetShapePath replaces the drawable's closed outline and fill color.
	// An empty outline renders as nothing.
	SetShapePath(handle int, pts []Point, fill Color) error

	// SetShapeTransform sets the drawable's offset from the chart center
	// and its scale about it. The baseline is (0, 0, 1).
	SetShapeTransform(handle int, dx, dy, scale float64) error

	// RemoveShape detaches the drawable from the scene and releases it.
	RemoveShape(handle int) error

	// SetLabel creates or updates the single text label.
	SetLabel(text string) error

	// Destroy tears down the whole scene. Must be idempotent.
	Destroy() error
}
