// Package core_test validates residue construction, site occupancy,
// modification and substituent bookkeeping, and composition/mass totals.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glykit/glykit/composition"
	"github.com/glykit/glykit/core"
)

const massTolerance = 1e-9

func glucose() *core.Monosaccharide {
	return core.NewMonosaccharide(core.SuperClassHex,
		core.WithAnomer(core.AnomerBeta),
		core.WithConfiguration(core.ConfigD),
		core.WithStem(core.StemGlc),
		core.WithRing(1, 5),
	)
}

func mustSubstituent(t *testing.T, name string) *core.Substituent {
	t.Helper()
	s, err := core.NewSubstituent(name)
	require.NoError(t, err)

	return s
}

// ------------------------------------------------------------------------
// 1. Construction defaults
// ------------------------------------------------------------------------

func TestNewMonosaccharide_Defaults(t *testing.T) {
	m := core.NewMonosaccharide(core.SuperClassHex)

	assert.Equal(t, core.AnomerUnknown, m.Anomer)
	assert.Equal(t, []core.Configuration{core.ConfigUnknown}, m.Configuration)
	assert.Equal(t, []core.Stem{core.StemUnknown}, m.Stem)
	assert.Equal(t, core.UnknownPosition, m.RingStart)
	assert.Equal(t, core.UnknownPosition, m.RingEnd)
	assert.True(t, m.Composition.Equal(composition.MustParse("C6H12O6")),
		"hexose base composition, got %v", m.Composition)
	assert.Positive(t, m.ID())
}

func TestRingType(t *testing.T) {
	tests := []struct {
		start, end int
		want       core.RingType
	}{
		{1, 5, core.RingPyranose},
		{1, 4, core.RingFuranose},
		{2, 6, core.RingPyranose},
		{0, 0, core.RingOpen},
		{core.UnknownPosition, core.UnknownPosition, core.RingUnknown},
		{1, core.UnknownPosition, core.RingUnknown},
	}
	for _, tc := range tests {
		m := core.NewMonosaccharide(core.SuperClassHex, core.WithRing(tc.start, tc.end))
		if got := m.RingType(); got != tc.want {
			t.Errorf("RingType(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Occupancy
// ------------------------------------------------------------------------

func TestIsOccupied(t *testing.T) {
	m := glucose()
	require.NoError(t, m.AddSubstituent(mustSubstituent(t, "n-acetyl"), 2))

	occ, err := m.IsOccupied(2)
	require.NoError(t, err)
	assert.Equal(t, 1, occ)

	occ, err = m.IsOccupied(3)
	require.NoError(t, err)
	assert.Zero(t, occ)

	// Unknown positions never block.
	occ, err = m.IsOccupied(core.UnknownPosition)
	require.NoError(t, err)
	assert.Zero(t, occ)

	_, err = m.IsOccupied(7)
	assert.ErrorIs(t, err, core.ErrPositionOutOfRange)
	_, err = m.IsOccupied(0)
	assert.ErrorIs(t, err, core.ErrPositionOutOfRange)
}

func TestIsOccupied_KetoExempt(t *testing.T) {
	m := glucose()
	require.NoError(t, m.AddModification(core.ModKeto, 2))

	occ, err := m.IsOccupied(2)
	require.NoError(t, err)
	assert.Zero(t, occ, "carbonyl carbon stays available")
}

func TestOpenAttachmentSites(t *testing.T) {
	m := glucose()
	sites, unknowns := m.OpenAttachmentSites(0)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, sites, "ring-closing carbon excluded")
	assert.Zero(t, unknowns)

	require.NoError(t, m.AddSubstituent(mustSubstituent(t, "n-acetyl"), 2))
	sites, unknowns = m.OpenAttachmentSites(0)
	assert.Equal(t, []int{1, 3, 4, 6}, sites)
	assert.Zero(t, unknowns)
}

func TestOpenAttachmentSites_UnknownPlacement(t *testing.T) {
	// An occupant at an unknown position makes every open site unknowable.
	m := glucose()
	require.NoError(t, m.AddSubstituent(mustSubstituent(t, "n-acetyl"), core.UnknownPosition))
	sites, unknowns := m.OpenAttachmentSites(0)
	assert.Equal(t, 1, unknowns)
	require.Len(t, sites, 5)
	for _, s := range sites {
		assert.Equal(t, core.UnknownPosition, s)
	}

	// An undetermined ring end additionally reserves one slot.
	open := core.NewMonosaccharide(core.SuperClassHex,
		core.WithConfiguration(core.ConfigD), core.WithStem(core.StemGlc))
	sites, unknowns = open.OpenAttachmentSites(0)
	assert.Zero(t, unknowns)
	require.Len(t, sites, 5)
	for _, s := range sites {
		assert.Equal(t, core.UnknownPosition, s)
	}
}

// ------------------------------------------------------------------------
// 3. Modifications
// ------------------------------------------------------------------------

func TestAddDropModification(t *testing.T) {
	m := glucose()
	base := m.Composition.Clone()

	require.NoError(t, m.AddModification(core.ModDeoxy, 6))
	assert.True(t, m.Composition.Equal(composition.MustParse("C6H12O5")),
		"deoxy drops one oxygen, got %v", m.Composition)

	require.NoError(t, m.DropModification(core.ModDeoxy, 6))
	assert.True(t, m.Composition.Equal(base))

	err := m.DropModification(core.ModDeoxy, 6)
	assert.ErrorIs(t, err, core.ErrModificationNotFound)
}

func TestAddModification_Occupied(t *testing.T) {
	m := glucose()
	require.NoError(t, m.AddModification(core.ModDeoxy, 6))
	err := m.AddModification(core.ModDeoxy, 6)
	assert.ErrorIs(t, err, core.ErrSiteOccupied)
}

func TestAddModification_Unknown(t *testing.T) {
	err := glucose().AddModification(core.Modification("z"), 2)
	assert.ErrorIs(t, err, core.ErrUnknownModification)
}

// ------------------------------------------------------------------------
// 4. Substituents and children
// ------------------------------------------------------------------------

func TestAddSubstituent_MassAndRoundTrip(t *testing.T) {
	m := glucose()
	sub := mustSubstituent(t, "n-acetyl")
	require.NoError(t, m.AddSubstituent(sub, 2))

	// N-acetylglucosamine: C8H15NO6.
	assert.True(t, m.TotalComposition().Equal(composition.MustParse("C8H15NO6")),
		"got %v", m.TotalComposition())
	mass, err := m.Mass()
	require.NoError(t, err)
	assert.InDelta(t, 221.08993720321, mass, massTolerance)

	require.NoError(t, m.DropSubstituent(2, sub, true))
	mass, err = m.Mass()
	require.NoError(t, err)
	assert.InDelta(t, 180.06338810, mass, 1e-7, "refund restores the free hexose")
}

func TestAddMonosaccharide_OccupiedSite(t *testing.T) {
	parent := glucose()
	require.NoError(t, parent.AddMonosaccharide(glucose(), 4, 1))
	err := parent.AddMonosaccharide(glucose(), 4, 1)
	assert.ErrorIs(t, err, core.ErrSiteOccupied)
}

func TestDropMonosaccharide(t *testing.T) {
	parent := glucose()
	child := glucose()
	total := parent.Composition.Clone()
	total.Add(child.Composition)

	require.NoError(t, parent.AddMonosaccharide(child, 4, 1))
	require.Len(t, parent.Children(), 1)

	require.NoError(t, parent.DropMonosaccharide(4, child, true))
	assert.Empty(t, parent.Children())
	assert.Empty(t, child.Parents())

	restored := parent.Composition.Clone()
	restored.Add(child.Composition)
	assert.True(t, restored.Equal(total), "refund restores both endpoints")

	err := parent.DropMonosaccharide(4, nil, true)
	assert.ErrorIs(t, err, core.ErrLinkNotFound)
}

func TestChildrenParentsOrder(t *testing.T) {
	parent := glucose()
	c3 := glucose()
	c6 := glucose()
	require.NoError(t, parent.AddMonosaccharide(c3, 3, 1))
	require.NoError(t, parent.AddMonosaccharide(c6, 6, 1))

	children := parent.Children()
	require.Len(t, children, 2)
	assert.Equal(t, 3, children[0].Position)
	assert.Same(t, c3, children[0].Value)
	assert.Equal(t, 6, children[1].Position)
	assert.Same(t, c6, children[1].Value)

	parents := c3.Parents()
	require.Len(t, parents, 1)
	assert.Same(t, parent, parents[0].Value)
	assert.Equal(t, 3, parents[0].Position)
}

// ------------------------------------------------------------------------
// 5. Cloning
// ------------------------------------------------------------------------

func TestMonosaccharideClone(t *testing.T) {
	m := glucose()
	require.NoError(t, m.AddSubstituent(mustSubstituent(t, "n-acetyl"), 2))
	require.NoError(t, m.AddModification(core.ModDeoxy, 6))

	kept := m.Clone(true)
	assert.Equal(t, m.ID(), kept.ID())
	assert.True(t, kept.TotalComposition().Equal(m.TotalComposition()))
	require.Len(t, kept.Substituents(), 1)
	assert.NotSame(t, m.Substituents()[0].Value, kept.Substituents()[0].Value)

	fresh := m.Clone(false)
	assert.NotEqual(t, m.ID(), fresh.ID())
	assert.True(t, fresh.TotalComposition().Equal(m.TotalComposition()))
}

func TestSubstituentEqual(t *testing.T) {
	a := mustSubstituent(t, "n-acetyl")
	b := mustSubstituent(t, "n_acetyl")
	c := mustSubstituent(t, "sulfate")

	assert.True(t, a.Equal(b), "name internalization makes these the same group")
	assert.False(t, a.Equal(c))
}

func TestNewSubstituent_Unknown(t *testing.T) {
	_, err := core.NewSubstituent("frobnicate")
	assert.True(t, errors.Is(err, core.ErrUnknownSubstituent))
}
