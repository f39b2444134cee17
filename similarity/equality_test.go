// The three equality predicates and their strictness ordering.
package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glykit/glykit/builder"
	"github.com/glykit/glykit/core"
	"github.com/glykit/glykit/similarity"
)

// armSwappedPair builds two mannoses with identical 3- and 6-arms attached
// in opposite declaration order: flat- and topologically equal, but not in
// exact ordering.
func armSwappedPair(t *testing.T) (*core.Monosaccharide, *core.Monosaccharide) {
	t.Helper()
	a := builder.Mannose(core.AnomerBeta)
	require.NoError(t, a.AddMonosaccharide(builder.GlcNAc(core.AnomerBeta), 3, 1))
	require.NoError(t, a.AddMonosaccharide(builder.Mannose(core.AnomerAlpha), 6, 1))

	b := builder.Mannose(core.AnomerBeta)
	require.NoError(t, b.AddMonosaccharide(builder.Mannose(core.AnomerAlpha), 6, 1))
	require.NoError(t, b.AddMonosaccharide(builder.GlcNAc(core.AnomerBeta), 3, 1))

	return a, b
}

func TestFlatEqual(t *testing.T) {
	assert.True(t, similarity.FlatEqual(builder.GlcNAc(core.AnomerBeta), builder.GlcNAc(core.AnomerBeta)))
	assert.False(t, similarity.FlatEqual(builder.GlcNAc(core.AnomerBeta), builder.GlcNAc(core.AnomerAlpha)))
	assert.False(t, similarity.FlatEqual(builder.GlcNAc(core.AnomerBeta), builder.Glucose(core.AnomerBeta)),
		"substituent link counts differ")
	assert.False(t, similarity.FlatEqual(builder.Galactose(core.AnomerBeta), builder.Glucose(core.AnomerBeta)))
}

func TestFlatEqual_CountsBondsNotSubtrees(t *testing.T) {
	a, b := armSwappedPair(t)
	assert.True(t, similarity.FlatEqual(a, b))

	// A third bond breaks the count.
	require.NoError(t, a.AddMonosaccharide(builder.Fucose(), 2, 1))
	assert.False(t, similarity.FlatEqual(a, b))
}

func TestExactOrderingEqual(t *testing.T) {
	a := builder.NLinkedCore()
	b := builder.NLinkedCore()
	assert.True(t, similarity.ExactOrderingEqual(a.Root(), b.Root()))

	swappedA, swappedB := armSwappedPair(t)
	assert.False(t, similarity.ExactOrderingEqual(swappedA, swappedB),
		"sibling order matters in exact mode")
}

func TestTopologicalEqual(t *testing.T) {
	a, b := armSwappedPair(t)
	assert.True(t, similarity.TopologicalEqual(a, b))

	// Extra unclaimed child on the b side fails the coverage check.
	require.NoError(t, b.AddMonosaccharide(builder.Fucose(), 2, 1))
	assert.False(t, similarity.TopologicalEqual(a, b))
}

func TestEquality_StrictnessOrdering(t *testing.T) {
	a, b := armSwappedPair(t)

	// exact => topological => flat; the converses do not hold.
	assert.False(t, similarity.ExactOrderingEqual(a, b))
	assert.True(t, similarity.TopologicalEqual(a, b))
	assert.True(t, similarity.FlatEqual(a, b))

	c := builder.NLinkedCore().Root()
	d := builder.NLinkedCore().Root()
	assert.True(t, similarity.ExactOrderingEqual(c, d))
	assert.True(t, similarity.TopologicalEqual(c, d))
	assert.True(t, similarity.FlatEqual(c, d))
}

func TestGlycanEqual(t *testing.T) {
	g := builder.BranchyGlycan()

	assert.True(t, similarity.GlycanEqual(g, g.Clone(false)))
	assert.True(t, similarity.GlycanTopologicalEqual(g, g.Clone(false)))
	assert.False(t, similarity.GlycanEqual(g, builder.NLinkedCore()))
	assert.True(t, similarity.GlycanEqual(nil, nil))
	assert.False(t, similarity.GlycanEqual(g, nil))
}

func TestModificationMultiset(t *testing.T) {
	a := builder.Fucose()
	b := builder.Fucose()
	assert.True(t, similarity.FlatEqual(a, b))

	// Same modification at a different position is not flat-equal.
	c := builder.Hexose(core.AnomerAlpha, core.ConfigL, core.StemGal)
	require.NoError(t, c.AddModification(core.ModDeoxy, 2))
	assert.False(t, similarity.FlatEqual(a, c))
}
