// This file implements whole-structure occurrence search and lock-step
// co-traversal.
package subtree

import (
	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/similarity"
)

// SubtreeOf scans tree in traversal order for a residue whose subtree
// includes probe, and returns that residue's id. With exact, inclusion is
// position-sensitive; otherwise order-independent. NotFound (0) when no
// residue matches.
func SubtreeOf(probe, tree *core.Glycan, exact bool, opts ...Option) int64 {
	probeRoot := probe.Root()
	if probeRoot == nil {
		return NotFound
	}
	for _, node := range tree.Index() {
		if includes(probeRoot, node, exact, opts) {
			return node.ID()
		}
	}

	return NotFound
}

// FindMatchingSubtreeRoots returns every residue of tree whose subtree
// includes probe.
func FindMatchingSubtreeRoots(probe, tree *core.Glycan, exact bool, opts ...Option) []*core.Monosaccharide {
	probeRoot := probe.Root()
	if probeRoot == nil {
		return nil
	}
	var matched []*core.Monosaccharide
	for _, node := range tree.Index() {
		if includes(probeRoot, node, exact, opts) {
			matched = append(matched, node)
		}
	}

	return matched
}

func includes(probeRoot, node *core.Monosaccharide, exact bool, opts []Option) bool {
	if exact {
		return ExactOrderingInclusion(probeRoot, node, opts...)
	}

	return TopologicalInclusion(probeRoot, node, opts...) > 0
}

// NodePair aligns a reference residue with its query counterpart.
type NodePair struct {
	Reference *core.Monosaccharide
	Query     *core.Monosaccharide
}

// WalkWith traverses reference and query in lock step, pairing each
// reference residue with the query residue its bonds align to under
// comparator (Commutative with zero tolerance when nil). Traversal stops
// extending wherever no aligned neighbor exists, so the result covers the
// shared region reachable from the roots.
func WalkWith(query, reference *core.Glycan, comparator func(a, b *core.Monosaccharide) bool) []NodePair {
	if query.Root() == nil || reference.Root() == nil {
		return nil
	}
	if comparator == nil {
		comparator = func(a, b *core.Monosaccharide) bool {
			return similarity.Commutative(a, b, 0)
		}
	}

	visited := similarity.NewPairSet()
	var out []NodePair
	stack := []NodePair{{Reference: reference.Root(), Query: query.Root()}}
	for len(stack) > 0 {
		pair := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rnode, qnode := pair.Reference, pair.Query
		if visited.Contains(rnode.ID(), qnode.ID()) {
			continue
		}
		visited.Add(rnode.ID(), qnode.ID())
		out = append(out, pair)

		for _, e := range rnode.Links().Items() {
			rlink := e.Value
			rparent, rok := rlink.Parent.(*core.Monosaccharide)
			rchild, cok := rlink.Child.(*core.Monosaccharide)
			if !rok || !cok {
				continue
			}

			if e.Position != core.UnknownPosition {
				// Align by shared position first.
				for _, qe := range qnode.Links().Get(e.Position) {
					if qparent, ok := qe.Parent.(*core.Monosaccharide); ok && comparator(qparent, rparent) {
						if !visited.Contains(rparent.ID(), qparent.ID()) {
							stack = append(stack, NodePair{Reference: rparent, Query: qparent})
						}

						break
					}
				}
				for _, qe := range qnode.Links().Get(e.Position) {
					if qchild, ok := qe.Child.(*core.Monosaccharide); ok && comparator(qchild, rchild) {
						if !visited.Contains(rchild.ID(), qchild.ID()) {
							stack = append(stack, NodePair{Reference: rchild, Query: qchild})
						}

						break
					}
				}

				continue
			}

			// Unknown position: align by both endpoints matching.
			for _, qe := range qnode.Links().Values() {
				qparent, pok := qe.Parent.(*core.Monosaccharide)
				qchild, qok := qe.Child.(*core.Monosaccharide)
				if !pok || !qok || !comparator(qparent, rparent) || !comparator(qchild, rchild) {
					continue
				}
				if rnode == rparent && visited.Contains(rchild.ID(), qchild.ID()) {
					continue
				}
				if rnode == rchild && visited.Contains(rparent.ID(), qparent.ID()) {
					continue
				}
				if !visited.Contains(rparent.ID(), qparent.ID()) {
					stack = append(stack, NodePair{Reference: rparent, Query: qparent})
				}
				if !visited.Contains(rchild.ID(), qchild.ID()) {
					stack = append(stack, NodePair{Reference: rchild, Query: qchild})
				}

				break
			}
		}
	}

	return out
}
