package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after this many ticks; 0 runs until ctx is done
}

// RunHeadless drives step from a wall-clock ticker without opening a window.
// Input channels stay silent. Useful for smoke runs and profiling.
func RunHeadless(ctx context.Context, step func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid headless hz %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				if errors.Is(err, ErrHeadlessDone) {
					return nil
				}
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// ErrHeadlessDone stops RunHeadless cleanly when returned from step.
var ErrHeadlessDone = errors.New("hal: headless run done")
