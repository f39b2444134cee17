// This file implements the maximum-common-subgraph solver.
package subtree

import (
	"gonum.org/v1/gonum/mat"

	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/similarity"
)

// MCSResult carries the outcome of MaximumCommonSubgraph: the best pair
// score, the extracted common structure (empty when nothing matched), and
// the full |A|×|B| score matrix for diagnostics.
type MCSResult struct {
	Score  float64
	Tree   *core.Glycan
	Matrix *mat.Dense
}

// MaximumCommonSubgraph finds the largest shared substructure of a and b
// using the similarity-matrix tree matching of Aoki et al. (2003). Every
// residue pair is scored by a deep recursive comparison — in exact mode a
// pair contributes one point only on a perfect trait match, otherwise its
// observed/expected ratio — and the best-scoring cell seeds a greedy
// lock-step extraction mirroring a's topology. A zero best score yields an
// empty Tree.
func MaximumCommonSubgraph(a, b *core.Glycan, exact bool) *MCSResult {
	seqA, seqB := a.Index(), b.Index()
	matrix := mat.NewDense(max(len(seqA), 1), max(len(seqB), 1), nil)
	for i, aNode := range seqA {
		for j, bNode := range seqB {
			matrix.Set(i, j, compareNodes(aNode, bNode, exact, similarity.NewPairSet()))
		}
	}

	score, ixA, ixB := findMaxOfMatrix(matrix, len(seqA), len(seqB))
	if score == 0 || len(seqA) == 0 || len(seqB) == 0 {
		return &MCSResult{Score: 0, Tree: core.NewGlycan(nil), Matrix: matrix}
	}

	return &MCSResult{
		Score:  score,
		Tree:   extractMaximumCommonSubgraph(seqA[ixA], seqB[ixB], exact),
		Matrix: matrix,
	}
}

// compareNodes scores nodeA against nodeB and, recursively, the full cross
// product of their children. The pair-set spans one matrix cell, so shared
// subtrees are rescored per cell and repeated pairs contribute once.
func compareNodes(nodeA, nodeB *core.Monosaccharide, exact bool, visited similarity.PairSet) float64 {
	if visited.Contains(nodeA.ID(), nodeB.ID()) {
		return 0
	}
	visited.Add(nodeA.ID(), nodeB.ID())

	var score float64
	observed, expected := similarity.Score(nodeA, nodeB)
	if exact {
		if observed == expected {
			score++
		}
	} else if expected > 0 {
		score += float64(observed) / float64(expected)
	}
	for _, ca := range nodeA.Children() {
		for _, cb := range nodeB.Children() {
			score += compareNodes(ca.Value, cb.Value, exact, visited)
		}
	}

	return score
}

// findMaxOfMatrix returns the value and coordinates of the first maximum in
// row-major order.
func findMaxOfMatrix(matrix *mat.Dense, rows, cols int) (score float64, ixA, ixB int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := matrix.At(i, j); v > score {
				score, ixA, ixB = v, i, j
			}
		}
	}

	return score, ixA, ixB
}

// extractMaximumCommonSubgraph walks the two structures together from the
// seed pair, copying a's branches into a fresh structure wherever b still
// offers a matching, unclaimed child. In exact mode a branch survives only
// on a perfect deep match; otherwise the child minimizing the expectation
// gap wins, deeper subtrees breaking ties.
func extractMaximumCommonSubgraph(nodeA, nodeB *core.Monosaccharide, exact bool) *core.Glycan {
	rootClone := nodeA.Clone(false)
	index := map[int64]*core.Monosaccharide{nodeA.ID(): rootClone}
	bTaken := map[int64]struct{}{}

	type frame struct {
		mcsNode *core.Monosaccharide
		a, b    *core.Monosaccharide
	}
	stack := []frame{{mcsNode: rootClone, a: nodeA, b: nodeB}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ac := range f.a.Children() {
			if f.b.Links().Len() == 0 {
				continue
			}

			var matched *core.Monosaccharide
			type contestant struct {
				gap  int
				node *core.Monosaccharide
			}
			var contestants []contestant
			for _, bc := range f.b.Children() {
				if _, taken := bTaken[bc.Value.ID()]; taken {
					continue
				}
				observed, expected := similarity.Score(ac.Value, bc.Value, similarity.WithChildren())
				if exact && observed == expected {
					matched = bc.Value

					break
				}
				if !exact {
					contestants = append(contestants, contestant{gap: expected - observed, node: bc.Value})
				}
			}
			if !exact && len(contestants) > 0 {
				best := contestants[0]
				bestDepth := best.node.Depth()
				for _, c := range contestants[1:] {
					if c.gap < best.gap {
						best = c
						bestDepth = c.node.Depth()
					} else if c.gap == best.gap {
						if d := c.node.Depth(); d > bestDepth {
							best = c
							bestDepth = d
						}
					}
				}
				matched = best.node
			}
			if matched == nil {
				continue
			}

			bTaken[matched.ID()] = struct{}{}
			terminal, ok := index[ac.Value.ID()]
			if !ok {
				terminal = ac.Value.Clone(false)
				index[ac.Value.ID()] = terminal
			}
			for _, l := range f.a.Links().Get(ac.Position) {
				if l.IsChild(ac.Value) {
					l.CloneBetween(f.mcsNode, terminal)

					break
				}
			}
			stack = append(stack, frame{mcsNode: terminal, a: ac.Value, b: matched})
		}
	}

	return core.NewGlycan(rootClone)
}
