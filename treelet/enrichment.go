// This file implements the treelet enrichment test between two sets of
// structures.
package treelet

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/glykit/glykit/core"
)

// EnrichmentResult reports one treelet shape from the tested condition.
type EnrichmentResult struct {
	// Treelet is one exemplar occurrence of the shape.
	Treelet *Treelet

	// Signature is the id-free canonical form identifying the shape
	// across structures.
	Signature string

	// Cond1Occurrences and Cond2Occurrences count enumerated treelets of
	// this shape per condition.
	Cond1Occurrences int
	Cond2Occurrences int

	// Cond1Structures and Cond2Structures count the structures of each
	// condition containing the shape at least once.
	Cond1Structures int
	Cond2Structures int

	// PValue is the one-sided Fisher's exact probability of drawing at
	// least Cond1Structures carriers among the first condition's
	// structures, were the shape equally common in both conditions.
	PValue float64
}

// TreeletEnrichment tests every k-treelet shape of cond1 for enrichment
// against cond2, the background condition. Results are sorted by ascending
// p-value, ties by signature.
func TreeletEnrichment(cond1, cond2 []*core.Glycan, k int, opts ...Option) []EnrichmentResult {
	type tally struct {
		exemplar    *Treelet
		occurrences [2]int
		structures  [2]map[int]struct{}
	}
	tallies := make(map[string]*tally)

	count := func(cond []*core.Glycan, side int) {
		for i, g := range cond {
			for _, t := range Enumerate(g, k, opts...) {
				sig := t.Signature()
				entry, ok := tallies[sig]
				if !ok {
					entry = &tally{
						exemplar:   t,
						structures: [2]map[int]struct{}{{}, {}},
					}
					tallies[sig] = entry
				}
				entry.occurrences[side]++
				entry.structures[side][i] = struct{}{}
			}
		}
	}
	count(cond1, 0)
	count(cond2, 1)

	population := len(cond1) + len(cond2)
	draws := len(cond1)

	out := make([]EnrichmentResult, 0, len(tallies))
	for sig, entry := range tallies {
		nPos := len(entry.structures[0])
		if nPos == 0 {
			// Only shapes present in the tested condition are scored.
			continue
		}
		nNeg := len(entry.structures[1])
		out = append(out, EnrichmentResult{
			Treelet:          entry.exemplar,
			Signature:        sig,
			Cond1Occurrences: entry.occurrences[0],
			Cond2Occurrences: entry.occurrences[1],
			Cond1Structures:  nPos,
			Cond2Structures:  nNeg,
			PValue:           hypergeometricTail(population, nPos+nNeg, draws, nPos),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PValue != out[j].PValue {
			return out[i].PValue < out[j].PValue
		}

		return out[i].Signature < out[j].Signature
	})

	return out
}

// hypergeometricTail sums P(X ≥ observed) for X hypergeometric with the
// given population size, success count and draw count. Terms are computed
// in log space.
func hypergeometricTail(population, successes, draws, observed int) float64 {
	if draws <= 0 || observed <= 0 {
		return 1
	}
	upper := successes
	if draws < upper {
		upper = draws
	}

	p := 0.0
	logTotal := combin.LogGeneralizedBinomial(float64(population), float64(draws))
	for x := observed; x <= upper; x++ {
		if draws-x > population-successes {
			continue
		}
		lp := combin.LogGeneralizedBinomial(float64(successes), float64(x)) +
			combin.LogGeneralizedBinomial(float64(population-successes), float64(draws-x)) -
			logTotal
		p += math.Exp(lp)
	}
	if p > 1 {
		p = 1
	}

	return p
}
