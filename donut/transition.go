package donut

type transitionState uint8

const (
	stateIdle transitionState = iota
	stateTransitioning
)

// transitionEngine reconciles a requested dataset against the committed
// registry and drives one coordinated animated transition at a time.
//
// Requests arriving while a transition is in flight are dropped whole; this
// is lossy by design, trading smoothness for a simple at-most-one-in-flight
// model. A request either fully enters the timeline or has no effect at all.
type transitionEngine struct {
	cfg  Config
	surf Surface
	reg  *registry

	state    transitionState
	tweens   []tween
	next     []*Slice // target registry, committed when the timeline ends
	released map[int]bool
	started  bool
	epoch    uint64 // tick of the first step after accept
}

func newTransitionEngine(cfg Config, surf Surface, reg *registry) *transitionEngine {
	return &transitionEngine{cfg: cfg, surf: surf, reg: reg}
}

// requestUpdate diffs newData against the registry and, if idle, starts the
// transition timeline. Geometry is computed fully before any tween exists,
// so targets never change mid-flight. On any error the registry and the
// scene are left as they were.
func (e *transitionEngine) requestUpdate(newData []DataPoint) error {
	if e.state == stateTransitioning {
		return nil // dropped, not queued
	}

	spans, err := ComputeAngles(newData, e.cfg.StartAngle, e.cfg.EndAngle)
	if err != nil {
		return err
	}

	byID := make(map[string]DataPoint, len(newData))
	for _, p := range newData {
		byID[p.ID] = p // last occurrence wins, matching ComputeAngles
	}

	tweens := make([]tween, 0, len(spans))
	next := make([]*Slice, 0, len(spans))
	var added []int

	for i, sp := range spans {
		p := byID[sp.ID]

		var from Span
		var handle int
		if cur, ok := e.reg.lookup(sp.ID); ok {
			from = Span{ID: sp.ID, Start: cur.Start, End: cur.End}
			handle = cur.Handle
		} else {
			// New id: grow open from a zero-width segment at its target start.
			from = Span{ID: sp.ID, Start: sp.Start, End: sp.Start}
			handle, err = e.surf.AddShape()
			if err != nil {
				for _, h := range added {
					_ = e.surf.RemoveShape(h)
				}
				return err
			}
			added = append(added, handle)
		}

		tweens = append(tweens, tween{
			id:     sp.ID,
			handle: handle,
			color:  p.Color,
			from:   from,
			to:     sp,
			delay:  uint64(i) * staggerTicks,
		})
		next = append(next, &Slice{
			ID:     sp.ID,
			Value:  p.Value,
			Color:  p.Color,
			Start:  sp.Start,
			End:    sp.End,
			Handle: handle,
		})
	}

	// Registry ids absent from the target set are not animated; they stay
	// rendered at their committed angles until commit removes them.

	e.tweens = tweens
	e.next = next
	e.started = false
	e.state = stateTransitioning
	return nil
}

// step advances the timeline by one clock tick. Surface failures propagate
// to the caller; the transition stays in flight and the registry untouched.
func (e *transitionEngine) step(now uint64) error {
	if e.state != stateTransitioning {
		return nil
	}
	if !e.started {
		e.started = true
		e.epoch = now
	}
	elapsed := now - e.epoch

	done := true
	for i := range e.tweens {
		tw := &e.tweens[i]
		sp, fin := tw.at(elapsed)
		if !fin {
			done = false
		}
		pts := ArcPolygon(e.cfg.InnerRadius, e.cfg.OuterRadius, sp.Start, sp.End, e.cfg.precision())
		if err := e.surf.SetShapePath(tw.handle, pts, tw.color); err != nil {
			return err
		}
	}
	if !done {
		return nil
	}
	return e.commit()
}

// commit atomically replaces the registry with the target slice set and
// releases drawables whose ids did not survive. The registry is not touched
// until every surface release has succeeded, so a failed commit leaves it in
// its last fully committed state and the next step retries.
func (e *transitionEngine) commit() error {
	surviving := make(map[string]bool, len(e.next))
	for _, s := range e.next {
		surviving[s.ID] = true
	}
	for _, s := range e.reg.slices() {
		if surviving[s.ID] || e.released[s.Handle] {
			continue
		}
		if err := e.surf.RemoveShape(s.Handle); err != nil {
			return err
		}
		if e.released == nil {
			e.released = make(map[int]bool)
		}
		e.released[s.Handle] = true
	}

	e.reg.replace(e.next)
	e.tweens = nil
	e.next = nil
	e.released = nil
	e.state = stateIdle
	return nil
}

func (e *transitionEngine) reset() {
	// Shapes allocated for not-yet-committed new ids are owned by the
	// abandoned timeline, not the registry; hand them back here.
	for _, s := range e.next {
		if _, ok := e.reg.lookup(s.ID); ok {
			continue
		}
		_ = e.surf.RemoveShape(s.Handle)
	}
	e.tweens = nil
	e.next = nil
	e.released = nil
	e.state = stateIdle
	e.started = false
}
