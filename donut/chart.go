package donut

import (
	"fmt"
	"math"
	"strconv"
)

// Chart wires the geometry, registry, transition and pop machinery to one
// Surface. It is single-threaded: all methods, including Step, must be
// called from the host's frame loop.
type Chart struct {
	cfg  Config
	surf Surface

	reg   *registry
	trans *transitionEngine
	pops  *popController

	destroyed bool
}

// New validates cfg, lays out the initial dataset synchronously (no
// animation on first paint) and shows the initial label value. On any error
// nothing is left behind on the surface.
func New(cfg Config, surf Surface, data []DataPoint, labelValue float64) (*Chart, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	reg := newRegistry()
	c := &Chart{
		cfg:   cfg,
		surf:  surf,
		reg:   reg,
		trans: newTransitionEngine(cfg, surf, reg),
		pops:  newPopController(cfg, surf, reg),
	}

	if err := c.initialLayout(assignIDs(data)); err != nil {
		return nil, err
	}
	if err := surf.SetLabel(c.formatLabel(labelValue)); err != nil {
		c.teardownShapes()
		return nil, err
	}
	return c, nil
}

func (c *Chart) initialLayout(data []DataPoint) error {
	spans, err := ComputeAngles(data, c.cfg.StartAngle, c.cfg.EndAngle)
	if err != nil {
		return err
	}

	byID := make(map[string]DataPoint, len(data))
	for _, p := range data {
		byID[p.ID] = p
	}

	for _, sp := range spans {
		p := byID[sp.ID]
		handle, err := c.surf.AddShape()
		if err != nil {
			c.teardownShapes()
			return err
		}
		pts := ArcPolygon(c.cfg.InnerRadius, c.cfg.OuterRadius, sp.Start, sp.End, c.cfg.precision())
		if err := c.surf.SetShapePath(handle, pts, p.Color); err != nil {
			_ = c.surf.RemoveShape(handle)
			c.teardownShapes()
			return err
		}
		c.reg.upsert(&Slice{
			ID:     sp.ID,
			Value:  p.Value,
			Color:  p.Color,
			Start:  sp.Start,
			End:    sp.End,
			Handle: handle,
		})
	}
	return nil
}

func (c *Chart) teardownShapes() {
	for _, s := range c.reg.slices() {
		_ = c.surf.RemoveShape(s.Handle)
	}
	c.reg.clearAll()
}

// UpdateData requests an animated transition to a new dataset. Empty ids are
// auto-assigned as "slice-<index>" by position. The request is dropped when
// a transition is already in flight; a dataset whose total is not positive
// is rejected with ErrInvalidInput and changes nothing.
func (c *Chart) UpdateData(data []DataPoint) error {
	if c.destroyed {
		return ErrDestroyed
	}
	return c.trans.requestUpdate(assignIDs(data))
}

// UpdateLabelValue sets the displayed label to the formatted value. It is an
// independent side channel and never touches slice geometry or the registry.
func (c *Chart) UpdateLabelValue(value float64) error {
	if c.destroyed {
		return ErrDestroyed
	}
	return c.surf.SetLabel(c.formatLabel(value))
}

// Activate triggers the pop animation for the slice with the given id,
// reading its committed angles at this moment. Unknown ids are ignored.
func (c *Chart) Activate(id string) error {
	if c.destroyed {
		return ErrDestroyed
	}
	c.pops.activate(id)
	return nil
}

// Step advances all running timelines to the given clock tick. The tick
// counter must be monotonic; on the desktop host it runs at 60 ticks/s.
func (c *Chart) Step(now uint64) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if err := c.trans.step(now); err != nil {
		return err
	}
	return c.pops.step(now)
}

// Transitioning reports whether a transition timeline is in flight.
func (c *Chart) Transitioning() bool {
	return c.trans.state == stateTransitioning
}

// Slices returns a snapshot of the committed slice set in commit order.
// Mid-transition it still reflects the previous commit.
func (c *Chart) Slices() []Slice {
	out := make([]Slice, 0, c.reg.len())
	for _, s := range c.reg.slices() {
		out = append(out, *s)
	}
	return out
}

// SliceAt maps a screen position to the committed slice under it, for
// routing pointer activation events. It only consults at-rest state, so a
// click during a transition hits the previously committed layout. A shared
// boundary belongs to the following slice; the chart's end boundary belongs
// to the last one, so the covered range has no dead angles.
//
// The test uses atan2, so it expects the configured angle range to lie
// within (-pi, pi].
func (c *Chart) SliceAt(x, y float64) (string, bool) {
	cx, cy := c.cfg.Center()
	dx := x - cx
	dy := y - cy
	r := math.Hypot(dx, dy)
	if r < c.cfg.InnerRadius || r > c.cfg.OuterRadius {
		return "", false
	}
	a := math.Atan2(dy, dx)
	slices := c.reg.slices()
	for i, s := range slices {
		lo, hi := s.Start, s.End
		if lo > hi {
			lo, hi = hi, lo
		}
		if a < lo || a > hi {
			continue
		}
		if a == s.End && i != len(slices)-1 {
			continue
		}
		return s.ID, true
	}
	return "", false
}

// Destroy releases every owner handle, clears the registry and tears down
// the scene. It is idempotent; all other operations fail with ErrDestroyed
// afterwards.
func (c *Chart) Destroy() error {
	if c.destroyed {
		return nil
	}
	c.destroyed = true
	c.trans.reset()
	c.pops.reset()
	c.teardownShapes()
	return c.surf.Destroy()
}

func (c *Chart) formatLabel(value float64) string {
	if c.cfg.FormatLabel != nil {
		return c.cfg.FormatLabel(value)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// assignIDs fills empty ids by position, matching the "slice-<index>"
// convention of the hosting page.
func assignIDs(data []DataPoint) []DataPoint {
	needs := false
	for _, p := range data {
		if p.ID == "" {
			needs = true
			break
		}
	}
	if !needs {
		return data
	}
	out := make([]DataPoint, len(data))
	copy(out, data)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = fmt.Sprintf("slice-%d", i)
		}
	}
	return out
}
