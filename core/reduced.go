// This file implements the ReducedEnd marker attached to reducing-terminal
// residues.
package core

import "github.com/glykit/glykit/composition"

// ReducedEnd marks an open-chain reduction of a residue's reducing
// terminus. It contributes its composition shift (two hydrogens for the
// plain alditol) to the carrier's total composition and mass.
type ReducedEnd struct {
	// Composition is the mass shift of the reduction.
	Composition composition.Composition

	id int64
}

// NewReducedEnd returns the standard two-hydrogen reduction. A nil shift
// selects the default.
func NewReducedEnd(shift composition.Composition) *ReducedEnd {
	if shift == nil {
		shift = composition.Composition{"H": 2}
	}

	return &ReducedEnd{Composition: shift.Clone(), id: nextNodeID()}
}

// ID returns the marker id.
func (r *ReducedEnd) ID() int64 { return r.id }

// SetID overwrites the marker id.
func (r *ReducedEnd) SetID(id int64) { r.id = id }

// Mass returns the monoisotopic mass of the shift.
func (r *ReducedEnd) Mass() (float64, error) { return r.Composition.Mass() }

// Equal reports shift identity with other. Two nils are equal.
func (r *ReducedEnd) Equal(other *ReducedEnd) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.Composition.Equal(other.Composition)
}

// Clone copies the marker. preserveID keeps the original id.
func (r *ReducedEnd) Clone(preserveID bool) *ReducedEnd {
	if r == nil {
		return nil
	}
	out := NewReducedEnd(r.Composition)
	if preserveID {
		out.id = r.id
	}

	return out
}
