// Package subtree_test validates inclusion scoring, occurrence search and
// the maximum-common-subgraph solver against the named reference
// structures.
package subtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glykit/glykit/builder"
	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/similarity"
	"github.com/glykit/glykit/subtree"
)

// ------------------------------------------------------------------------
// 1. Inclusion
// ------------------------------------------------------------------------

func TestTopologicalInclusion_Self(t *testing.T) {
	branchy := builder.BranchyGlycan()
	score := subtree.TopologicalInclusion(branchy.Root(), branchy.Root())
	assert.Equal(t, 10, score, "one point per residue of the probe")
}

func TestTopologicalInclusion_AllowsExtraReferenceChildren(t *testing.T) {
	branchy := builder.BranchyGlycan()
	broad := builder.BroadNGlycan()

	node, err := broad.Get(3)
	require.NoError(t, err)
	assert.Positive(t, subtree.TopologicalInclusion(branchy.Root(), node),
		"the decorated antennae still cover the probe")
	assert.Zero(t, subtree.TopologicalInclusion(branchy.Root(), broad.Root()))
}

func TestExactOrderingInclusion(t *testing.T) {
	core5 := builder.NLinkedCore()
	broad := builder.BroadNGlycan()

	assert.True(t, subtree.ExactOrderingInclusion(core5.Root(), broad.Root()))
	assert.False(t, subtree.ExactOrderingInclusion(broad.Root(), core5.Root()),
		"inclusion is one-directional")
}

// ------------------------------------------------------------------------
// 2. Occurrence search
// ------------------------------------------------------------------------

func TestSubtreeOf_NGlycanCore(t *testing.T) {
	core5 := builder.NLinkedCore()

	assert.Equal(t, int64(1), subtree.SubtreeOf(core5, builder.BroadNGlycan(), true))
	assert.Equal(t, int64(1), subtree.SubtreeOf(core5, builder.ComplexGlycan(), true))
	assert.Equal(t, int64(1), subtree.SubtreeOf(core5, builder.ComplexGlycan(), false))
	assert.Equal(t, subtree.NotFound, subtree.SubtreeOf(core5, builder.BranchyGlycan(), false))
}

func TestSubtreeOf_ReportsFirstMatchingRoot(t *testing.T) {
	branchy := builder.BranchyGlycan()
	broad := builder.BroadNGlycan()

	assert.Equal(t, int64(3), subtree.SubtreeOf(branchy, broad, false),
		"the probe roots at the second GlcNAc of the reference")
	assert.Equal(t, subtree.NotFound, subtree.SubtreeOf(broad, builder.NLinkedCore(), false))
}

func TestFindMatchingSubtreeRoots(t *testing.T) {
	branchy := builder.BranchyGlycan()
	broad := builder.BroadNGlycan()

	roots := subtree.FindMatchingSubtreeRoots(branchy, broad, false)
	require.NotEmpty(t, roots)
	ids := make([]int64, 0, len(roots))
	for _, r := range roots {
		ids = append(ids, r.ID())
	}
	assert.Contains(t, ids, int64(3))
}

func TestWalkWith(t *testing.T) {
	core5 := builder.NLinkedCore()
	broad := builder.BroadNGlycan()

	pairs := subtree.WalkWith(core5, broad, nil)
	require.NotEmpty(t, pairs)
	assert.Equal(t, broad.Root().ID(), pairs[0].Reference.ID())
	assert.Equal(t, core5.Root().ID(), pairs[0].Query.ID())
	assert.LessOrEqual(t, len(pairs), core5.Len())
}

// ------------------------------------------------------------------------
// 3. Maximum common subgraph
// ------------------------------------------------------------------------

func TestMaximumCommonSubgraph_CoreVsBranchy(t *testing.T) {
	res := subtree.MaximumCommonSubgraph(builder.NLinkedCore(), builder.BranchyGlycan(), true)

	assert.InDelta(t, 6.0, res.Score, 1e-9)
	require.NotNil(t, res.Tree)
	assert.Equal(t, 4, res.Tree.Len(), "GlcNAc-Man with both arms")
	require.NotNil(t, res.Matrix)
	r, c := res.Matrix.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 10, c)
}

func TestMaximumCommonSubgraph_Self(t *testing.T) {
	core5 := builder.NLinkedCore()
	res := subtree.MaximumCommonSubgraph(core5, builder.NLinkedCore(), true)

	assert.InDelta(t, 7.0, res.Score, 1e-9)
	assert.Equal(t, core5.Len(), res.Tree.Len())
	assert.True(t, similarity.GlycanEqual(core5, res.Tree))
}

func TestMaximumCommonSubgraph_NoOverlap(t *testing.T) {
	a := core.NewGlycan(builder.Fucose())
	b := core.NewGlycan(builder.NeuAc("n-acetyl"))

	res := subtree.MaximumCommonSubgraph(a, b, true)
	assert.Zero(t, res.Score)
	assert.Nil(t, res.Tree.Root(), "no overlap yields an empty tree")
}

func TestMaximumCommonSubgraph_ScoreBoundedBySmallerInput(t *testing.T) {
	core5 := builder.NLinkedCore()
	branchy := builder.BranchyGlycan()

	res := subtree.MaximumCommonSubgraph(core5, branchy, false)
	assert.GreaterOrEqual(t, res.Score, 6.0, "fuzzy scoring never scores below exact")
	assert.LessOrEqual(t, res.Tree.Len(), core5.Len())
}
