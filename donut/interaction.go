package donut

import "math"

// popScale is the peak scale-up factor of a popped slice.
const popScale = 1.08

// pop is one transient pop animation: the drawable moves out along the
// slice's mid-angle by the configured distance while scaling up, then
// reverses back to the baseline. The excursion vector is captured at
// activation time and does not follow a concurrent transition.
type pop struct {
	handle  int
	dx, dy  float64 // full excursion at peak
	started bool
	epoch   uint64
}

// at returns the excursion factor in [0, 1] at elapsed ticks, and whether
// the pop has finished.
func (p *pop) at(elapsed uint64) (float64, bool) {
	if elapsed >= 2*popTicks {
		return 0, true
	}
	if elapsed < popTicks {
		return easeOutCubic(float64(elapsed) / popTicks), false
	}
	return easeOutCubic(float64(2*popTicks-elapsed) / popTicks), false
}

// popController runs pop animations independently of the transition engine.
// Pops on different slices are mutually independent; there is deliberately
// no exclusion against a transition touching the same drawable, so both at
// once may show a visible jump.
type popController struct {
	cfg  Config
	surf Surface
	reg  *registry

	pops map[string]*pop
}

func newPopController(cfg Config, surf Surface, reg *registry) *popController {
	return &popController{cfg: cfg, surf: surf, reg: reg, pops: make(map[string]*pop)}
}

// activate starts (or restarts) the pop for id. Unknown ids are ignored: the
// slice may have been removed between event dispatch and handling.
func (c *popController) activate(id string) {
	s, ok := c.reg.lookup(id)
	if !ok {
		return
	}
	mid := (s.Start + s.End) / 2
	c.pops[id] = &pop{
		handle: s.Handle,
		dx:     math.Cos(mid) * c.cfg.PopDistance,
		dy:     math.Sin(mid) * c.cfg.PopDistance,
	}
}

func (c *popController) step(now uint64) error {
	for id, p := range c.pops {
		// A commit may have released the drawable mid-pop (the id was
		// dropped from the dataset); the pop dies with it.
		if s, ok := c.reg.lookup(id); !ok || s.Handle != p.handle {
			delete(c.pops, id)
			continue
		}
		if !p.started {
			p.started = true
			p.epoch = now
		}
		k, done := p.at(now - p.epoch)
		if done {
			delete(c.pops, id)
			if err := c.surf.SetShapeTransform(p.handle, 0, 0, 1); err != nil {
				return err
			}
			continue
		}
		scale := 1 + (popScale-1)*k
		if err := c.surf.SetShapeTransform(p.handle, p.dx*k, p.dy*k, scale); err != nil {
			return err
		}
	}
	return nil
}

func (c *popController) reset() {
	c.pops = make(map[string]*pop)
}
