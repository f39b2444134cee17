// This file declares the option set shared by the inclusion predicates and
// the occurrence search.
package subtree

import "github.com/glykit/glykit/similarity"

// NotFound is the id sentinel returned by SubtreeOf when no residue of the
// reference roots an occurrence of the probe.
const NotFound int64 = 0

// Options holds the configurable parameters of the inclusion predicates.
type Options struct {
	// Substituents includes substituent groups in residue comparison.
	Substituents bool

	// Tolerance widens Commutative residue matching: a pair matches when
	// observed ≥ expected − Tolerance in either direction.
	Tolerance int

	// Visited carries the comparison's id-pair set across a recursion.
	Visited similarity.PairSet
}

// DefaultOptions matches substituents with zero tolerance.
func DefaultOptions() Options {
	return Options{Substituents: true}
}

// Option configures the inclusion predicates.
type Option func(*Options)

// WithTolerance widens residue matching by tolerance trait points.
func WithTolerance(tolerance int) Option {
	return func(o *Options) { o.Tolerance = tolerance }
}

// WithoutSubstituents skips substituent comparison.
func WithoutSubstituents() Option {
	return func(o *Options) { o.Substituents = false }
}

// WithVisited seeds the visited pair-set.
func WithVisited(visited similarity.PairSet) Option {
	return func(o *Options) { o.Visited = visited }
}
