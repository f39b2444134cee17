// This file provides standalone factories for the residues the named
// structures are made of. Factory residues draw generated ids; use the
// Builder when declaration-order ids matter.
package builder

import "github.com/glykit/glykit/core"

// Hexose builds a plain six-carbon pyranose residue.
func Hexose(anomer core.Anomer, config core.Configuration, stem core.Stem) *core.Monosaccharide {
	return core.NewMonosaccharide(core.SuperClassHex,
		core.WithAnomer(anomer),
		core.WithConfiguration(config),
		core.WithStem(stem),
		core.WithRing(1, 5),
	)
}

// Mannose builds d-mannopyranose.
func Mannose(anomer core.Anomer) *core.Monosaccharide {
	return Hexose(anomer, core.ConfigD, core.StemMan)
}

// Galactose builds d-galactopyranose.
func Galactose(anomer core.Anomer) *core.Monosaccharide {
	return Hexose(anomer, core.ConfigD, core.StemGal)
}

// Glucose builds d-glucopyranose.
func Glucose(anomer core.Anomer) *core.Monosaccharide {
	return Hexose(anomer, core.ConfigD, core.StemGlc)
}

// GlcNAc builds N-acetyl-d-glucosamine: glucose carrying an n-acetyl group
// at position 2.
func GlcNAc(anomer core.Anomer) *core.Monosaccharide {
	m := Glucose(anomer)
	s, err := core.NewSubstituent("n-acetyl")
	if err != nil {
		panic(err)
	}
	if err := m.AddSubstituent(s, 2); err != nil {
		panic(err)
	}

	return m
}

// Fucose builds l-fucopyranose: 6-deoxy-l-galactose.
func Fucose() *core.Monosaccharide {
	m := Hexose(core.AnomerAlpha, core.ConfigL, core.StemGal)
	if err := m.AddModification(core.ModDeoxy, 6); err != nil {
		panic(err)
	}

	return m
}

// NeuAc builds N-acetylneuraminic acid: the nine-carbon sialic acid with
// acid/keto/deoxy modifications at carbons 1-3 and an n-acetyl at 5.
// Passing "n-glycolyl" yields NeuGc instead.
func NeuAc(acyl string) *core.Monosaccharide {
	m := core.NewMonosaccharide(core.SuperClassNon,
		core.WithAnomer(core.AnomerAlpha),
		core.WithConfiguration(core.ConfigD, core.ConfigD),
		core.WithStem(core.StemGro, core.StemGal),
		core.WithRing(2, 6),
	)
	for _, mod := range []struct {
		mod core.Modification
		pos int
	}{
		{core.ModAcid, 1},
		{core.ModKeto, 2},
		{core.ModDeoxy, 3},
	} {
		if err := m.AddModification(mod.mod, mod.pos); err != nil {
			panic(err)
		}
	}
	s, err := core.NewSubstituent(acyl)
	if err != nil {
		panic(err)
	}
	if err := m.AddSubstituent(s, 5); err != nil {
		panic(err)
	}

	return m
}
