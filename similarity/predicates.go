// This file implements membership predicates over residues and structures.
package similarity

import "github.com/glykit/glykit/core"

// HasSubstituent reports whether the residue carries a substituent with the
// given name, at any position.
func HasSubstituent(m *core.Monosaccharide, name string) bool {
	internal := core.InternalizeSubstituentName(name)
	for _, e := range m.Substituents() {
		if e.Value.Name == internal {
			return true
		}
	}

	return false
}

// HasModification reports whether the residue carries mod at any position.
func HasModification(m *core.Monosaccharide, mod core.Modification) bool {
	for _, v := range m.Modifications.Values() {
		if v == mod {
			return true
		}
	}

	return false
}

// IsReduced reports whether the residue carries a reduced terminus, either
// as a ReducedEnd marker or an alditol modification.
func IsReduced(m *core.Monosaccharide) bool {
	return m.ReducedEnd != nil || HasModification(m, core.ModAlditol)
}

// HasMonosaccharide scans the structure for a residue within tolerance of
// target under Commutative scoring and returns the first hit, or nil.
func HasMonosaccharide(g *core.Glycan, target *core.Monosaccharide, tolerance int, opts ...Option) *core.Monosaccharide {
	for _, node := range g.Index() {
		if Commutative(node, target, tolerance, opts...) {
			return node
		}
	}

	return nil
}
