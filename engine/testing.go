package engine

// SequenceRand replays a fixed sequence of values for deterministic apple placement
// Each value is reduced modulo n; the sequence repeats when exhausted
type SequenceRand struct {
	Values []int
	next   int
}

// NewSequenceRand creates a SequenceRand over values
func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{Values: values}
}

// Intn returns the next value modulo n
func (r *SequenceRand) Intn(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v % n
}
