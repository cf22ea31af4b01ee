package main

const (
	sectionRevealThreshold = 0.12
	cardRevealThreshold    = 0.08
)

// Revealer marks elements visible the first time enough of them enters
// the viewport. Revealed elements are never observed again.
type Revealer struct {
	threshold float64
	observed  map[string]bool
}

func NewRevealer(threshold float64) *Revealer {
	return &Revealer{threshold: threshold, observed: make(map[string]bool)}
}

func (r *Revealer) Observe(ids ...string) {
	for _, id := range ids {
		r.observed[id] = true
	}
}

// Observing reports whether id is still waiting to be revealed.
func (r *Revealer) Observing(id string) bool {
	return r.observed[id]
}

// Intersect reports an intersection ratio for id. It returns the reveal
// patch and true only on the first crossing of the threshold.
func (r *Revealer) Intersect(id string, ratio float64) (Patch, bool) {
	if !r.observed[id] || ratio <= r.threshold {
		return Patch{}, false
	}
	delete(r.observed, id)
	return classPatch("#"+id, "visible", true), true
}
