// This file implements the two inclusion predicates.
package subtree

import (
	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/similarity"
)

// TopologicalInclusion tests whether the subtree rooted at target is
// contained, order-independently, in the subtree rooted at reference. The
// reference may carry children the target lacks, but every target child
// must claim a distinct, recursively included reference child, through an
// optimal assignment over pair scores. The score counts one point per
// matched residue pair; 0 means not contained.
func TopologicalInclusion(target, reference *core.Monosaccharide, opts ...Option) int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Visited == nil {
		o.Visited = similarity.NewPairSet()
	}

	return topologicalInclusion(target, reference, &o)
}

func topologicalInclusion(target, reference *core.Monosaccharide, o *Options) int {
	if o.Visited.Contains(target.ID(), reference.ID()) {
		return 1
	}
	o.Visited.Add(target.ID(), reference.ID())

	if !commutativeSimilar(target, reference, o) {
		return 0
	}

	// Score every (target child, reference child) pairing that includes.
	targetChildren := target.Children()
	referenceChildren := reference.Children()
	index := make(map[[2]int64]int)
	var aOrder []int64
	seenA := map[int64]struct{}{}
	for _, tc := range targetChildren {
		if _, ok := seenA[tc.Value.ID()]; !ok {
			seenA[tc.Value.ID()] = struct{}{}
			aOrder = append(aOrder, tc.Value.ID())
		}
		for _, rc := range referenceChildren {
			if s := topologicalInclusion(tc.Value, rc.Value, o); s > 0 {
				index[[2]int64{tc.Value.ID(), rc.Value.ID()}] = s
			}
		}
	}

	pairs, score := assignChildren(index, aOrder)
	switch {
	case len(pairs) > 0:
		return 1 + score
	case len(targetChildren) == 0:
		return 1
	default:
		return 0
	}
}

// assignChildren picks the non-overlapping pairing that covers every target
// child and maximizes the summed scores. Returns nil when no pairing covers
// them all.
func assignChildren(index map[[2]int64]int, required []int64) ([][2]int64, int) {
	candidates := make(map[int64][]int64, len(required))
	for pair := range index {
		candidates[pair[0]] = append(candidates[pair[0]], pair[1])
	}

	var best [][2]int64
	bestScore := -1

	var extend func(depth int, taken map[int64]struct{}, current [][2]int64)
	extend = func(depth int, taken map[int64]struct{}, current [][2]int64) {
		if depth == len(required) {
			total := 0
			for _, pair := range current {
				total += index[pair]
			}
			if total > bestScore {
				bestScore = total
				best = append([][2]int64(nil), current...)
			}

			return
		}
		for _, b := range candidates[required[depth]] {
			if _, used := taken[b]; used {
				continue
			}
			taken[b] = struct{}{}
			extend(depth+1, taken, append(current, [2]int64{required[depth], b}))
			delete(taken, b)
		}
	}
	extend(0, make(map[int64]struct{}), nil)

	if best == nil {
		return nil, 0
	}

	return best, bestScore
}

// ExactOrderingInclusion tests whether the subtree rooted at target is
// contained in the subtree rooted at reference with matching attachment
// positions throughout. The reference may still carry extra attachments at
// other positions; the relation is therefore not commutative.
func ExactOrderingInclusion(target, reference *core.Monosaccharide, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Visited == nil {
		o.Visited = similarity.NewPairSet()
	}

	return exactOrderingInclusion(target, reference, &o)
}

func exactOrderingInclusion(target, reference *core.Monosaccharide, o *Options) bool {
	if o.Visited.Contains(target.ID(), reference.ID()) {
		return true
	}
	o.Visited.Add(target.ID(), reference.ID())

	if !commutativeSimilar(target, reference, o) {
		return false
	}

	if o.Substituents {
		refSubs := map[int]*core.Substituent{}
		for _, e := range reference.Substituents() {
			refSubs[e.Position] = e.Value
		}
		for _, e := range target.Substituents() {
			rs, ok := refSubs[e.Position]
			if !ok || !e.Value.Equal(rs) {
				return false
			}
		}
	}

	refMods := map[int]core.Modification{}
	for _, e := range reference.Modifications.Items() {
		refMods[e.Position] = e.Value
	}
	for _, e := range target.Modifications.Items() {
		rm, ok := refMods[e.Position]
		if !ok || rm != e.Value {
			return false
		}
	}

	refChildren := map[int]*core.Monosaccharide{}
	for _, e := range reference.Children() {
		refChildren[e.Position] = e.Value
	}
	for _, e := range target.Children() {
		rc, ok := refChildren[e.Position]
		if !ok {
			return false
		}
		if !exactOrderingInclusion(e.Value, rc, o) {
			return false
		}
	}

	return true
}

// commutativeSimilar adapts the option set to similarity.Commutative.
func commutativeSimilar(a, b *core.Monosaccharide, o *Options) bool {
	var simOpts []similarity.Option
	if !o.Substituents {
		simOpts = append(simOpts, similarity.WithoutSubstituents())
	}

	return similarity.Commutative(a, b, o.Tolerance, simOpts...)
}
