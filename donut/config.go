package donut

// DefaultPrecision is the angular step used for arc outlines when the
// config does not set one.
const DefaultPrecision = 0.02

// Config describes chart geometry and placement.
//
// Angles are radians. StartAngle and EndAngle bound the full ring range;
// [-pi, 0] is the classic upper half-donut, [-pi, pi] a full circle.
type Config struct {
	InnerRadius float64
	OuterRadius float64
	PopDistance float64 // radial excursion of the pop animation, in pixels
	StartAngle  float64
	EndAngle    float64
	Width       float64
	Height      float64

	// Precision is the angular step for arc outlines. Zero selects
	// DefaultPrecision.
	Precision float64

	// FormatLabel renders the label value shown in the donut hole. Nil
	// selects a plain numeric format; the hosting page usually installs a
	// currency formatter here.
	FormatLabel func(value float64) string
}

func (c Config) validate() error {
	if c.InnerRadius >= c.OuterRadius {
		return ErrInvalidConfig
	}
	if c.StartAngle == c.EndAngle {
		return ErrInvalidConfig
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Center returns the chart center in screen coordinates. All shape outlines
// handed to the Surface are relative to this point.
func (c Config) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}

func (c Config) precision() float64 {
	if c.Precision > 0 {
		return c.Precision
	}
	return DefaultPrecision
}
