// This file implements the trait-counting scorer and its optimal child
// assignment.
package similarity

import (
	"github.com/glykit/glykit/core"
)

// Score counts matching traits between node and target. It returns the
// number of observed matches and the number expected under perfect
// equality. Target-side unknown descriptors count as matches, so Score is
// not symmetric; see Commutative.
func Score(node, target *core.Monosaccharide, opts ...Option) (observed, expected int) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Visited == nil {
		o.Visited = NewPairSet()
	}

	return score(node, target, &o)
}

func score(node, target *core.Monosaccharide, o *Options) (int, int) {
	if o.Visited.Contains(node.ID(), target.ID()) {
		return 0, 0
	}
	o.Visited.Add(node.ID(), target.ID())

	res, qs := 0, 0

	// 1. Ring descriptors; unknowns on the target side are wild.
	if node.Anomer == target.Anomer || target.Anomer == core.AnomerUnknown {
		res++
	}
	qs++
	if node.SuperClass == target.SuperClass || target.SuperClass == core.SuperClassUnknown {
		res++
	}
	qs++
	if stemsEqual(node.Stem, target.Stem) || (len(target.Stem) > 0 && target.Stem[0] == core.StemUnknown) {
		res++
	}
	qs++
	if configurationsEqual(node.Configuration, target.Configuration) ||
		(len(target.Configuration) > 0 && target.Configuration[0] == core.ConfigUnknown) {
		res++
	}
	qs++

	// 2. Modifications as a multiset, with reduction folded in as a
	// pseudo-modification.
	if o.IncludeModifications {
		nodeMods := modificationBag(node)
		nodeReduced, targetReduced := false, false
		for _, mod := range modificationBag(target) {
			if mod == core.ModAlditol {
				targetReduced = true
			}
			if i := indexOfMod(nodeMods, mod); i >= 0 {
				if mod == core.ModAlditol {
					nodeReduced = true
				}
				res++
				nodeMods = append(nodeMods[:i], nodeMods[i+1:]...)
			}
			qs++
		}
		if o.IgnoreReduction {
			if targetReduced {
				qs--
			}
			if nodeReduced {
				res--
			}
		}
		if o.Exact {
			qs += len(nodeMods)
		}
	}

	// 3. Substituents as a multiset by group identity.
	if o.IncludeSubstituents {
		nodeSubs := make([]*core.Substituent, 0, 4)
		for _, e := range node.Substituents() {
			nodeSubs = append(nodeSubs, e.Value)
		}
		for _, e := range target.Substituents() {
			if i := indexOfSub(nodeSubs, e.Value); i >= 0 {
				res++
				nodeSubs = append(nodeSubs[:i], nodeSubs[i+1:]...)
			}
			qs++
		}
		if o.Exact {
			qs += len(nodeSubs)
		}
	}

	// 4. Children through brute-force optimal assignment on (res - qs).
	if o.IncludeChildren {
		nodeChildren := node.Children()
		targetChildren := target.Children()
		index := make(map[[2]int64][2]int, len(nodeChildren)*len(targetChildren))
		var aOrder []int64
		for _, nc := range nodeChildren {
			aOrder = append(aOrder, nc.Value.ID())
			for _, tc := range targetChildren {
				cRes, cQs := score(nc.Value, tc.Value, o)
				index[[2]int64{nc.Value.ID(), tc.Value.ID()}] = [2]int{cRes, cQs}
			}
		}
		for _, pair := range optimalAssignment(index, aOrder) {
			counts := index[pair]
			res += counts[0]
			qs += counts[1]
		}
	}

	return res, qs
}

// Commutative reports whether node and target score within tolerance of a
// perfect match in either direction.
func Commutative(node, target *core.Monosaccharide, tolerance int, opts ...Option) bool {
	obs, expect := Score(node, target, opts...)
	if obs-expect >= -tolerance {
		return true
	}
	obs, expect = Score(target, node, opts...)

	return obs-expect >= -tolerance
}

// optimalAssignment picks, among all ways of pairing every probe child with
// a distinct target child, the one maximizing total (observed - expected).
// Probe children with no free partner kill a candidate pairing outright.
func optimalAssignment(index map[[2]int64][2]int, aOrder []int64) [][2]int64 {
	candidates := make(map[int64][]int64, len(aOrder))
	for pair := range index {
		candidates[pair[0]] = append(candidates[pair[0]], pair[1])
	}

	var best [][2]int64
	bestScore := 0
	haveBest := false

	var extend func(depth int, taken map[int64]struct{}, current [][2]int64)
	extend = func(depth int, taken map[int64]struct{}, current [][2]int64) {
		if depth == len(aOrder) {
			total := 0
			for _, pair := range current {
				counts := index[pair]
				total += counts[0] - counts[1]
			}
			if !haveBest || total > bestScore {
				haveBest = true
				bestScore = total
				best = append([][2]int64(nil), current...)
			}

			return
		}
		a := aOrder[depth]
		for _, b := range candidates[a] {
			if _, used := taken[b]; used {
				continue
			}
			taken[b] = struct{}{}
			extend(depth+1, taken, append(current, [2]int64{a, b}))
			delete(taken, b)
		}
	}
	extend(0, make(map[int64]struct{}), nil)

	return best
}

// modificationBag lists a residue's modifications plus the alditol
// pseudo-modification carried by a reduced terminus.
func modificationBag(m *core.Monosaccharide) []core.Modification {
	mods := append([]core.Modification(nil), m.Modifications.Values()...)
	if m.ReducedEnd != nil {
		mods = append(mods, core.ModAlditol)
	}

	return mods
}

func indexOfMod(mods []core.Modification, mod core.Modification) int {
	for i, v := range mods {
		if v == mod {
			return i
		}
	}

	return -1
}

func indexOfSub(subs []*core.Substituent, sub *core.Substituent) int {
	for i, v := range subs {
		if v.Equal(sub) {
			return i
		}
	}

	return -1
}

func stemsEqual(a, b []core.Stem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func configurationsEqual(a, b []core.Configuration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
