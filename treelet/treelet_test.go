// Package treelet_test validates treelet expansion, k-treelet enumeration,
// the fragment similarity kernel and the enrichment test against the named
// reference structures.
package treelet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glykit/glykit/builder"
	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/treelet"
)

// ------------------------------------------------------------------------
// 1. Treelet expansion
// ------------------------------------------------------------------------

func TestFromMonosaccharide(t *testing.T) {
	core5 := builder.NLinkedCore()

	seed := treelet.FromMonosaccharide(core5.Root())
	assert.Equal(t, 1, seed.Len())
	assert.Equal(t, int64(1), seed.Root().ID(), "reference ids are preserved")
	assert.Equal(t, []int64{3}, seed.FrontierIDs())
}

func TestExpand_GrowsByOneFrontierResidue(t *testing.T) {
	core5 := builder.NLinkedCore()
	seed := treelet.FromMonosaccharide(core5.Root())

	grown, err := seed.Expand(core5, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, grown.Len())
	assert.Equal(t, []int64{5}, grown.FrontierIDs(),
		"the consumed entry is replaced by the new residue's children")

	// The receiver is left alone.
	assert.Equal(t, 1, seed.Len())
	assert.Equal(t, []int64{3}, seed.FrontierIDs())
}

func TestExpand_RejectsNonFrontierIDs(t *testing.T) {
	core5 := builder.NLinkedCore()
	seed := treelet.FromMonosaccharide(core5.Root())

	_, err := seed.Expand(core5, 6)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestExpandAll_OnePerFrontierEntry(t *testing.T) {
	core5 := builder.NLinkedCore()
	man, err := core5.Get(5)
	require.NoError(t, err)

	grown, err := treelet.FromMonosaccharide(man).ExpandAll(core5)
	require.NoError(t, err)
	require.Len(t, grown, 2)
	assert.Equal(t, []int64{7}, grown[0].FrontierIDs())
	assert.Equal(t, []int64{6}, grown[1].FrontierIDs())
}

// ------------------------------------------------------------------------
// 2. Enumeration
// ------------------------------------------------------------------------

func TestEnumerate_NLinkedCore(t *testing.T) {
	core5 := builder.NLinkedCore()

	assert.Len(t, treelet.Enumerate(core5, 1), 5)
	assert.Len(t, treelet.Enumerate(core5, 2), 4, "one per bond")
	assert.Len(t, treelet.Enumerate(core5, 3), 4)
	assert.Empty(t, treelet.Enumerate(core5, 6), "no subtree has six residues")
	assert.Nil(t, treelet.Enumerate(core5, 0))
	assert.Nil(t, treelet.Enumerate(core.NewGlycan(nil), 2))
}

func TestEnumerate_ComplexGlycan(t *testing.T) {
	complex := builder.ComplexGlycan()

	assert.Len(t, treelet.Enumerate(complex, 1), 21)
	assert.Len(t, treelet.Enumerate(complex, 2), 20)
	assert.Len(t, treelet.Enumerate(complex, 3), 27)
}

func TestEnumerate_WithDuplicates(t *testing.T) {
	core5 := builder.NLinkedCore()

	// The branch point's cherry is reached through both expansion orders.
	assert.Len(t, treelet.Enumerate(core5, 3, treelet.WithDuplicates()), 5)
}

func TestSignature_StableAcrossBuilds(t *testing.T) {
	collect := func(g *core.Glycan) map[string]int {
		sigs := make(map[string]int)
		for _, tl := range treelet.Enumerate(g, 3) {
			sigs[tl.Signature()]++
		}

		return sigs
	}

	assert.Equal(t, collect(builder.NLinkedCore()), collect(builder.NLinkedCore()))
}

func TestSignature_SeparatesLinkPositions(t *testing.T) {
	core5 := builder.NLinkedCore()
	man, err := core5.Get(5)
	require.NoError(t, err)

	arms, err := treelet.FromMonosaccharide(man).ExpandAll(core5)
	require.NoError(t, err)
	require.Len(t, arms, 2)
	assert.NotEqual(t, arms[0].Signature(), arms[1].Signature(),
		"the 3-arm and 6-arm differ by bond position alone")
}

// ------------------------------------------------------------------------
// 3. Fragment similarity
// ------------------------------------------------------------------------

func TestNSaccharideSimilarity_Identity(t *testing.T) {
	core5 := builder.NLinkedCore()

	assert.Equal(t, 1.0, treelet.NSaccharideSimilarity(core5, builder.NLinkedCore(), 2, false))
	assert.Equal(t, 1.0, treelet.NSaccharideSimilarity(core5, builder.NLinkedCore(), 2, true))
}

func TestNSaccharideSimilarity_CoreFucosylation(t *testing.T) {
	core5 := builder.NLinkedCore()

	grafted := builder.NLinkedCore().Clone(true)
	fuc := builder.Fucose()
	fuc.SetID(9)
	require.NoError(t, grafted.Root().AddMonosaccharide(fuc, 3, 1))
	grafted = core.NewGlycan(grafted.Root())

	// Four of the five disaccharide fragments still pair up.
	assert.InDelta(t, 0.8, treelet.NSaccharideSimilarity(core5, grafted, 2, false), 1e-12)
	assert.InDelta(t, 0.8, treelet.NSaccharideSimilarity(grafted, core5, 2, false), 1e-12)
}

func TestNSaccharideSimilarity_NoFragments(t *testing.T) {
	single := core.NewGlycan(builder.Mannose(core.AnomerBeta))

	assert.Zero(t, treelet.NSaccharideSimilarity(single, core.NewGlycan(builder.Mannose(core.AnomerBeta)), 2, false))
}

// ------------------------------------------------------------------------
// 4. Enrichment
// ------------------------------------------------------------------------

func TestTreeletEnrichment_SharedShapesAreNotEnriched(t *testing.T) {
	cond1 := []*core.Glycan{builder.NLinkedCore(), builder.NLinkedCore()}
	cond2 := []*core.Glycan{builder.NLinkedCore()}

	results := treelet.TreeletEnrichment(cond1, cond2, 2)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, 2, r.Cond1Occurrences)
		assert.Equal(t, 1, r.Cond2Occurrences)
		assert.Equal(t, 2, r.Cond1Structures)
		assert.Equal(t, 1, r.Cond2Structures)
		assert.InDelta(t, 1.0, r.PValue, 1e-12)
		require.NotNil(t, r.Treelet)
		assert.Equal(t, r.Signature, r.Treelet.Signature())
	}
}

func TestTreeletEnrichment_ExclusiveShapesScoreLower(t *testing.T) {
	cond1 := []*core.Glycan{builder.ComplexGlycan()}
	cond2 := []*core.Glycan{builder.NLinkedCore()}

	results := treelet.TreeletEnrichment(cond1, cond2, 2)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, 1, r.Cond1Structures)
		if r.Cond2Structures == 0 {
			assert.InDelta(t, 0.5, r.PValue, 1e-12)
		} else {
			assert.InDelta(t, 1.0, r.PValue, 1e-12)
		}
	}
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].PValue, results[i].PValue, "sorted by p-value")
	}
	assert.InDelta(t, 0.5, results[0].PValue, 1e-12,
		"the complex-only shapes lead the ranking")
}
