package donut

import "errors"

var (
	// ErrInvalidInput rejects a dataset whose total value is not positive.
	ErrInvalidInput = errors.New("donut: dataset total must be positive")

	// ErrInvalidConfig rejects a config at construction time.
	ErrInvalidConfig = errors.New("donut: invalid config")

	// ErrDestroyed is returned by operations on a destroyed chart.
	ErrDestroyed = errors.New("donut: chart destroyed")
)
