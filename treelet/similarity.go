// This file implements the n-saccharide similarity kernel.
package treelet

import (
	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/similarity"
)

// NSaccharideSimilarity scores how alike two structures are at the
// n-residue fragment level, the tree kernel of Aoki et al. (Genome
// Informatics, 2003). Each distinct n-treelet of a is matched against the
// still-unpaired n-treelets of b; the score is matched pairs over the
// larger treelet count, 0 when neither structure has an n-treelet. exact
// selects position-sensitive fragment equality instead of topological.
func NSaccharideSimilarity(a, b *core.Glycan, n int, exact bool) float64 {
	comparator := similarity.GlycanTopologicalEqual
	if exact {
		comparator = similarity.GlycanEqual
	}

	aTreelets := Enumerate(a, n)
	bTreelets := Enumerate(b, n)
	denominator := len(aTreelets)
	if len(bTreelets) > denominator {
		denominator = len(bTreelets)
	}
	if denominator == 0 {
		return 0
	}

	matched := 0.0
	paired := make(map[int]struct{})
	for _, at := range aTreelets {
		for j, bt := range bTreelets {
			if _, done := paired[j]; done {
				continue
			}
			if comparator(at.Subtree, bt.Subtree) {
				matched++
				paired[j] = struct{}{}
			}
		}
	}

	return matched / float64(denominator)
}
