package donut

// Slice is the committed render state of one segment.
type Slice struct {
	ID     string
	Value  float64
	Color  Color
	Start  float64
	End    float64
	Handle int // drawable owned exclusively by this slice
}

// registry stores the committed slices keyed by id, preserving commit order.
//
// It is consulted only when an update is accepted and when a transition
// commits. Interpolation works on state captured at accept time and never
// reads the registry mid-flight, so redraws can never observe a half-updated
// slice set.
type registry struct {
	order []string
	byID  map[string]*Slice
}

func newRegistry() *registry {
	return &registry{byID: make(map[string]*Slice)}
}

func (r *registry) lookup(id string) (*Slice, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// upsert inserts or replaces the slice for s.ID. An existing id keeps its
// position in commit order; a new id is appended.
func (r *registry) upsert(s *Slice) {
	if _, ok := r.byID[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
}

func (r *registry) remove(id string) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *registry) len() int { return len(r.order) }

// slices returns the committed slices in commit order.
func (r *registry) slices() []*Slice {
	out := make([]*Slice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// replace swaps the whole committed set in one step.
func (r *registry) replace(next []*Slice) {
	r.order = r.order[:0]
	clear(r.byID)
	for _, s := range next {
		r.upsert(s)
	}
}

func (r *registry) clearAll() {
	r.order = nil
	r.byID = make(map[string]*Slice)
}
