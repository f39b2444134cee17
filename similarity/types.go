// This file declares the option set and the visited pair-set shared by the
// scorer and the equality predicates.
package similarity

// PairSet records visited (node id, target id) pairs during recursive
// comparison, terminating revisits on cyclic input.
type PairSet map[[2]int64]struct{}

// NewPairSet returns an empty PairSet.
func NewPairSet() PairSet { return make(PairSet) }

// Contains reports whether the (a, b) pair was already visited.
func (p PairSet) Contains(a, b int64) bool {
	_, ok := p[[2]int64{a, b}]

	return ok
}

// Add records the (a, b) pair.
func (p PairSet) Add(a, b int64) { p[[2]int64{a, b}] = struct{}{} }

// Options holds the configurable parameters of Score and the equality
// predicates.
type Options struct {
	// IncludeSubstituents compares attached substituent groups.
	IncludeSubstituents bool

	// IncludeModifications compares backbone modifications and reduction.
	IncludeModifications bool

	// IncludeChildren recurses into child subtrees via optimal assignment.
	IncludeChildren bool

	// Exact widens the expected count by the probe-side attachments that
	// found no partner, penalizing extras.
	Exact bool

	// IgnoreReduction removes reducing-end state from the counts.
	IgnoreReduction bool

	// Visited carries the comparison's id-pair set; shared across the whole
	// recursion. Nil means a fresh set.
	Visited PairSet
}

// DefaultOptions compares substituents and modifications exactly, without
// descending into children.
func DefaultOptions() Options {
	return Options{
		IncludeSubstituents:  true,
		IncludeModifications: true,
		IncludeChildren:      false,
		Exact:                true,
	}
}

// Option configures Score and the equality predicates.
type Option func(*Options)

// WithChildren descends into child subtrees.
func WithChildren() Option {
	return func(o *Options) { o.IncludeChildren = true }
}

// WithoutSubstituents skips substituent comparison.
func WithoutSubstituents() Option {
	return func(o *Options) { o.IncludeSubstituents = false }
}

// WithoutModifications skips modification comparison.
func WithoutModifications() Option {
	return func(o *Options) { o.IncludeModifications = false }
}

// Fuzzy stops unmatched probe-side attachments from widening the
// expectation.
func Fuzzy() Option {
	return func(o *Options) { o.Exact = false }
}

// IgnoreReduction removes reducing-end state from the counts.
func IgnoreReduction() Option {
	return func(o *Options) { o.IgnoreReduction = true }
}

// WithVisited seeds the comparison's visited pair-set.
func WithVisited(visited PairSet) Option {
	return func(o *Options) { o.Visited = visited }
}
