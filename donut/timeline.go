package donut

// Visual tunables at 60 ticks/s. The stagger is smaller than the duration,
// so consecutive slices overlap in flight (the "wave" look).
const (
	transitionTicks = 45 // per-slice transition duration
	staggerTicks    = 6  // start offset between consecutive slices
	popTicks        = 9  // pop excursion duration, each direction
)

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// tween carries one slice's interpolation state for the current transition.
// from and to are captured when the update is accepted; the registry is not
// consulted again until commit.
type tween struct {
	id     string
	handle int
	color  Color
	from   Span
	to     Span
	delay  uint64 // stagger offset, in ticks
}

// at returns the interpolated span at elapsed ticks since the timeline
// started, and whether this entry has finished.
func (tw *tween) at(elapsed uint64) (Span, bool) {
	if elapsed < tw.delay {
		return tw.from, false
	}
	local := elapsed - tw.delay
	if local >= transitionTicks {
		return tw.to, true
	}
	f := easeInOutQuad(float64(local) / transitionTicks)
	return Span{
		ID:    tw.id,
		Start: lerp(tw.from.Start, tw.to.Start, f),
		End:   lerp(tw.from.End, tw.to.End, f),
	}, false
}
