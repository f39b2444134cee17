// Package builder_test validates the sticky-error assembler, the
// standalone residue factories and the named reference structures.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glykit/glykit/builder"
	"github.com/glykit/glykit/core"
)

const massTolerance = 1e-7

// ------------------------------------------------------------------------
// 1. Assembler
// ------------------------------------------------------------------------

func TestBuilder_IndicesDoubleAsIDs(t *testing.T) {
	b := builder.New()
	glc := b.Residue(core.SuperClassHex,
		core.WithAnomer(core.AnomerBeta),
		core.WithConfiguration(core.ConfigD),
		core.WithStem(core.StemGlc),
	)
	nAc := b.Substituent("n-acetyl")
	b.Bond(glc, 2, nAc, 1)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, glc)
	assert.Equal(t, 2, nAc)
	assert.Equal(t, int64(1), g.Root().ID())
	require.Len(t, g.Root().Substituents(), 1)
	assert.Equal(t, int64(2), g.Root().Substituents()[0].Value.ID())
}

func TestBuilder_FirstParentlessResidueRoots(t *testing.T) {
	b := builder.New()
	child := b.Residue(core.SuperClassHex, core.WithStem(core.StemGal))
	parent := b.Residue(core.SuperClassHex, core.WithStem(core.StemGlc))
	b.Bond(parent, 4, child, 1)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, int64(parent), g.Root().ID(),
		"declaration order does not decide the root, parentlessness does")
}

func TestBuilder_StickyErrors(t *testing.T) {
	t.Run("unknown substituent", func(t *testing.T) {
		b := builder.New()
		b.Residue(core.SuperClassHex)
		b.Substituent("frobnicate")
		_, err := b.Build()
		assert.ErrorIs(t, err, core.ErrUnknownSubstituent)
	})

	t.Run("bad node index", func(t *testing.T) {
		b := builder.New()
		res := b.Residue(core.SuperClassHex)
		b.Bond(res, 4, 7, 1)
		_, err := b.Build()
		assert.ErrorIs(t, err, builder.ErrBadIndex)
	})

	t.Run("substituent as bond parent", func(t *testing.T) {
		b := builder.New()
		res := b.Residue(core.SuperClassHex)
		nAc := b.Substituent("n-acetyl")
		b.Bond(nAc, 1, res, 1)
		_, err := b.Build()
		assert.ErrorIs(t, err, builder.ErrBadParent)
	})

	t.Run("occupied site", func(t *testing.T) {
		b := builder.New()
		parent := b.Residue(core.SuperClassHex)
		b.Bond(parent, 4, b.Residue(core.SuperClassHex), 1)
		b.Bond(parent, 4, b.Residue(core.SuperClassHex), 1)
		_, err := b.Build()
		assert.ErrorIs(t, err, core.ErrSiteOccupied)
	})

	t.Run("no root", func(t *testing.T) {
		_, err := builder.New().Build()
		assert.ErrorIs(t, err, builder.ErrNoRoot)
	})

	t.Run("first error wins", func(t *testing.T) {
		b := builder.New()
		b.Substituent("frobnicate")
		b.Bond(9, 4, 10, 1)
		assert.ErrorIs(t, b.Err(), core.ErrUnknownSubstituent)
		assert.NotErrorIs(t, b.Err(), builder.ErrBadIndex)
	})
}

func TestMustBuild_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { builder.New().MustBuild() })
}

// ------------------------------------------------------------------------
// 2. Residue factories
// ------------------------------------------------------------------------

func TestResidueFactories_Masses(t *testing.T) {
	assert.InDelta(t, 180.06338810,
		builder.Glucose(core.AnomerAlpha).TotalComposition().MustMass(), massTolerance)
	assert.InDelta(t, 221.08993720321,
		builder.GlcNAc(core.AnomerBeta).TotalComposition().MustMass(), massTolerance)
	assert.InDelta(t, 164.06847348,
		builder.Fucose().TotalComposition().MustMass(), massTolerance)
}

func TestNeuAc_AcylVariants(t *testing.T) {
	neuAc := builder.NeuAc("n-acetyl")
	neuGc := builder.NeuAc("n-glycolyl")

	assert.Equal(t, core.SuperClassNon, neuAc.SuperClass)
	assert.Greater(t, neuGc.TotalComposition().MustMass(), neuAc.TotalComposition().MustMass(),
		"the glycolyl group carries one more oxygen")
}

// ------------------------------------------------------------------------
// 3. Named structures
// ------------------------------------------------------------------------

func TestNLinkedCore(t *testing.T) {
	g := builder.NLinkedCore()

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, int64(1), g.Root().ID())
	assert.Equal(t, 2, g.CountBranches())
	mass, err := g.Mass()
	require.NoError(t, err)
	assert.InDelta(t, 910.32777998, mass, massTolerance)
}

func TestBranchyGlycan_BranchCount(t *testing.T) {
	g := builder.BranchyGlycan()

	assert.Equal(t, 10, g.Len())
	assert.Equal(t, 3, g.CountBranches())
	assert.Equal(t, core.AnomerUnknown, g.Root().Anomer)
}

func TestBroadNGlycan(t *testing.T) {
	g := builder.BroadNGlycan()

	assert.Equal(t, 14, g.Len())
	fuc, err := g.Get(10)
	require.NoError(t, err)
	require.Len(t, fuc.Parents(), 1)
	assert.Equal(t, 3, fuc.Parents()[0].Position)
}

func TestSulfatedGlycan(t *testing.T) {
	g := builder.SulfatedGlycan()

	assert.Equal(t, 6, g.Len())
	assert.Equal(t, core.AnomerUncyclized, g.Root().Anomer)

	sulfates := 0
	for _, node := range g.Index() {
		for _, e := range node.Substituents() {
			if e.Value.Name == "sulfate" {
				sulfates++
			}
		}
	}
	assert.Equal(t, 3, sulfates)
}

func TestComplexGlycan(t *testing.T) {
	g := builder.ComplexGlycan()

	assert.Equal(t, 21, g.Len())
	assert.Equal(t, int64(1), g.Root().ID())

	coreFuc, err := g.Get(32)
	require.NoError(t, err)
	require.Len(t, coreFuc.Parents(), 1)
	assert.Equal(t, int64(1), coreFuc.Parents()[0].Value.ID())

	// The undetermined sialic linkages settle on their first candidate.
	sia, err := g.Get(24)
	require.NoError(t, err)
	require.Len(t, sia.Parents(), 1)
	assert.Equal(t, 3, sia.Parents()[0].Position)
}
