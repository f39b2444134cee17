// This file implements the three equality predicates and the glycan-level
// wrappers.
package similarity

import "github.com/glykit/glykit/core"

// FlatEqual compares every scalar feature of two residues plus their
// attachment counts and total compositions, without descending into
// children.
func FlatEqual(a, b *core.Monosaccharide) bool {
	return flatEqual(a, b, true)
}

func flatEqual(a, b *core.Monosaccharide, lengths bool) bool {
	flat := a.Anomer == b.Anomer &&
		a.RingStart == b.RingStart &&
		a.RingEnd == b.RingEnd &&
		a.SuperClass == b.SuperClass &&
		modificationsEqual(a, b) &&
		configurationsEqual(a.Configuration, b.Configuration) &&
		stemsEqual(a.Stem, b.Stem)
	if !flat {
		return false
	}
	if lengths {
		flat = a.Links().Len() == b.Links().Len() &&
			a.SubstituentLinks().Len() == b.SubstituentLinks().Len() &&
			a.TotalComposition().Equal(b.TotalComposition())
	}

	return flat
}

// ExactOrderingEqual compares two residues and their subtrees requiring
// attachment positions and sibling order to match exactly. It is the
// strictest predicate: a true result implies TopologicalEqual and
// FlatEqual.
func ExactOrderingEqual(a, b *core.Monosaccharide, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Visited == nil {
		o.Visited = NewPairSet()
	}

	return exactOrderingEqual(a, b, &o)
}

func exactOrderingEqual(a, b *core.Monosaccharide, o *Options) bool {
	if o.Visited.Contains(a.ID(), b.ID()) {
		return true
	}
	o.Visited.Add(a.ID(), b.ID())

	if !flatEqual(a, b, true) {
		return false
	}
	if o.IncludeSubstituents {
		aSubs, bSubs := a.Substituents(), b.Substituents()
		for i := 0; i < len(aSubs) && i < len(bSubs); i++ {
			if aSubs[i].Position != bSubs[i].Position || !aSubs[i].Value.Equal(bSubs[i].Value) {
				return false
			}
		}
	}
	aMods, bMods := a.Modifications.Items(), b.Modifications.Items()
	for i := 0; i < len(aMods) && i < len(bMods); i++ {
		if aMods[i] != bMods[i] {
			return false
		}
	}
	aChildren, bChildren := a.Children(), b.Children()
	for i := 0; i < len(aChildren) && i < len(bChildren); i++ {
		if aChildren[i].Position != bChildren[i].Position {
			return false
		}
		if !exactOrderingEqual(aChildren[i].Value, bChildren[i].Value, o) {
			return false
		}
	}

	return true
}

// TopologicalEqual compares two residues and their subtrees independent of
// sibling order: every child of a must claim a distinct, equal child of b,
// and every child of b must be claimed.
func TopologicalEqual(a, b *core.Monosaccharide, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Visited == nil {
		o.Visited = NewPairSet()
	}

	return topologicalEqual(a, b, &o)
}

func topologicalEqual(a, b *core.Monosaccharide, o *Options) bool {
	if o.Visited.Contains(a.ID(), b.ID()) {
		return true
	}
	o.Visited.Add(a.ID(), b.ID())

	if !flatEqual(a, b, true) {
		return false
	}
	if o.IncludeSubstituents && !matchSubstituents(a, b) {
		return false
	}

	type claim struct {
		pos int
		id  int64
	}
	taken := map[claim]struct{}{}
	bChildren := b.Children()
	for _, ac := range a.Children() {
		matched := false
		for _, bc := range bChildren {
			key := claim{pos: bc.Position, id: bc.Value.ID()}
			if _, used := taken[key]; used {
				continue
			}
			if topologicalEqual(ac.Value, bc.Value, o) {
				matched = true
				taken[key] = struct{}{}

				break
			}
		}
		if !matched {
			return false
		}
	}

	return len(taken) == len(bChildren)
}

// matchSubstituents matches substituents order-independently. Unknown
// positions on the b side may be claimed repeatedly, up to their count.
func matchSubstituents(a, b *core.Monosaccharide) bool {
	takenB := map[int]struct{}{}
	bNumUnknown := b.SubstituentLinks().CountAt(core.UnknownPosition)
	unknownCount := 0
	bSubs := b.Substituents()

	for _, as := range a.Substituents() {
		matched := false
		for _, bs := range bSubs {
			if _, used := takenB[bs.Position]; used {
				if bs.Position != core.UnknownPosition {
					continue
				}
				if unknownCount < bNumUnknown {
					unknownCount++
				} else {
					continue
				}
			}
			if bs.Value.Equal(as.Value) {
				matched = true
				takenB[bs.Position] = struct{}{}

				break
			}
		}
		if !matched {
			return false
		}
	}

	return len(takenB)+unknownCount == len(bSubs)
}

// GlycanEqual reports exact-ordering equality of two whole structures.
func GlycanEqual(a, b *core.Glycan) bool {
	if a.Root() == nil || b.Root() == nil {
		return a.Root() == b.Root()
	}

	return ExactOrderingEqual(a.Root(), b.Root())
}

// GlycanTopologicalEqual reports order-independent equality of two whole
// structures.
func GlycanTopologicalEqual(a, b *core.Glycan) bool {
	if a.Root() == nil || b.Root() == nil {
		return a.Root() == b.Root()
	}

	return TopologicalEqual(a.Root(), b.Root())
}

// modificationsEqual compares the modification multimaps as position-keyed
// multisets.
func modificationsEqual(a, b *core.Monosaccharide) bool {
	if a.Modifications.Len() != b.Modifications.Len() {
		return false
	}
	counts := map[core.Entry[core.Modification]]int{}
	for _, e := range a.Modifications.Items() {
		counts[e]++
	}
	for _, e := range b.Modifications.Items() {
		counts[e]--
		if counts[e] < 0 {
			return false
		}
	}

	return true
}
