// This file defines the named reference structures. Each mirrors a
// condensed-notation definition residue for residue, so node ids match the
// published numbering (substituents hold ids of their own).
package builder

import "github.com/glykit/glykit/core"

func hexose(b *Builder, anomer core.Anomer, config core.Configuration, stem core.Stem) int {
	return b.Residue(core.SuperClassHex,
		core.WithAnomer(anomer),
		core.WithConfiguration(config),
		core.WithStem(stem),
		core.WithRing(1, 5),
	)
}

// nAcHexose declares a hexose immediately followed by its n-acetyl group,
// bonded at position 2. Returns the residue index; the group takes the
// next one.
func nAcHexose(b *Builder, anomer core.Anomer, stem core.Stem) int {
	m := hexose(b, anomer, core.ConfigD, stem)
	s := b.Substituent("n-acetyl")
	b.Bond(m, 2, s, 1)

	return m
}

func glcNAc(b *Builder, anomer core.Anomer) int {
	return nAcHexose(b, anomer, core.StemGlc)
}

func fucose(b *Builder) int {
	m := hexose(b, core.AnomerAlpha, core.ConfigL, core.StemGal)
	b.Modify(m, 6, core.ModDeoxy)

	return m
}

// neuAc declares a sialic acid followed by its 5-linked acyl group.
func neuAc(b *Builder, acyl string) int {
	m := b.Residue(core.SuperClassNon,
		core.WithAnomer(core.AnomerAlpha),
		core.WithConfiguration(core.ConfigD, core.ConfigD),
		core.WithStem(core.StemGro, core.StemGal),
		core.WithRing(2, 6),
	)
	b.Modify(m, 1, core.ModAcid)
	b.Modify(m, 2, core.ModKeto)
	b.Modify(m, 3, core.ModDeoxy)
	s := b.Substituent(acyl)
	b.Bond(m, 5, s, 1)

	return m
}

// NLinkedCore builds the five-residue core shared by N-linked glycans:
// GlcNAc β1-4 GlcNAc β1-4 Man, with α-mannoses on the 3- and 6-arms.
func NLinkedCore() *core.Glycan {
	b := New()
	gn1 := glcNAc(b, core.AnomerBeta) // 1, group 2
	gn2 := glcNAc(b, core.AnomerBeta) // 3, group 4
	man := hexose(b, core.AnomerBeta, core.ConfigD, core.StemMan)  // 5
	arm3 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 6
	arm6 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 7

	b.Bond(gn1, 4, gn2, 1)
	b.Bond(gn2, 4, man, 1)
	b.Bond(man, 3, arm3, 1)
	b.Bond(man, 6, arm6, 1)

	return b.MustBuild()
}

// CommonGlycan builds a linear lactosamine repeat decorated with fucoses:
// ten residues, two branch points.
func CommonGlycan() *core.Glycan {
	b := New()
	glc := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGlc) // 1
	gal1 := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 2
	gn1 := glcNAc(b, core.AnomerBeta)                              // 3, group 4
	fuc1 := fucose(b)                                              // 5
	gal2 := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 6
	gn2 := glcNAc(b, core.AnomerBeta)                              // 7, group 8
	fuc2 := fucose(b)                                              // 9
	gal3 := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 10

	b.Bond(glc, 4, gal1, 1)
	b.Bond(gal1, 3, gn1, 1)
	b.Bond(gn1, 3, fuc1, 1)
	b.Bond(gn1, 4, gal2, 1)
	b.Bond(gal2, 3, gn2, 1)
	b.Bond(gn2, 3, fuc2, 1)
	b.Bond(gn2, 4, gal3, 1)

	return b.MustBuild()
}

// BranchyGlycan builds a biantennary fragment rooted at a ring-unknown
// GlcNAc: fourteen declared nodes, three branch points among its ten
// residues.
func BranchyGlycan() *core.Glycan {
	b := New()
	root := b.Residue(core.SuperClassHex, // 1: anomer and ring undetermined
		core.WithConfiguration(core.ConfigD),
		core.WithStem(core.StemGlc),
	)
	rootNAc := b.Substituent("n-acetyl") // 2
	b.Bond(root, 2, rootNAc, 1)
	man := hexose(b, core.AnomerBeta, core.ConfigD, core.StemMan)  // 3
	arm6 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 4
	gn6b := glcNAc(b, core.AnomerBeta)                              // 5, group 6
	gal6b := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 7
	gn6a := glcNAc(b, core.AnomerBeta)                              // 8, group 9
	gal6a := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 10
	arm3 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 11
	gn3 := glcNAc(b, core.AnomerBeta)                               // 12, group 13
	gal3 := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal)  // 14

	b.Bond(root, 4, man, 1)
	b.Bond(man, 3, arm3, 1)
	b.Bond(man, 6, arm6, 1)
	b.Bond(arm6, 2, gn6a, 1)
	b.Bond(arm6, 6, gn6b, 1)
	b.Bond(gn6b, 4, gal6b, 1)
	b.Bond(gn6a, 4, gal6a, 1)
	b.Bond(arm3, 2, gn3, 1)
	b.Bond(gn3, 4, gal3, 1)

	return b.MustBuild()
}

// BroadNGlycan builds a triantennary N-glycan with a core fucose on one
// antenna: twenty declared nodes over fourteen residues.
func BroadNGlycan() *core.Glycan {
	b := New()
	gn1 := glcNAc(b, core.AnomerBeta) // 1, group 2
	gn2 := glcNAc(b, core.AnomerBeta) // 3, group 4
	man := hexose(b, core.AnomerBeta, core.ConfigD, core.StemMan)   // 5
	arm6 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 6
	gn6b := glcNAc(b, core.AnomerBeta)                              // 7, group 8
	gal6b := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 9
	fuc := fucose(b)                                                // 10
	gn6a := glcNAc(b, core.AnomerBeta)                              // 11, group 12
	gal6a := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 13
	arm3 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 14
	gn3b := glcNAc(b, core.AnomerBeta)                              // 15, group 16
	gal3b := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 17
	gn3a := glcNAc(b, core.AnomerBeta)                              // 18, group 19
	gal3a := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 20

	b.Bond(gn1, 4, gn2, 1)
	b.Bond(gn2, 4, man, 1)
	b.Bond(man, 3, arm3, 1)
	b.Bond(man, 6, arm6, 1)
	b.Bond(arm6, 2, gn6a, 1)
	b.Bond(arm6, 6, gn6b, 1)
	b.Bond(gn6b, 3, fuc, 1)
	b.Bond(gn6b, 4, gal6b, 1)
	b.Bond(gn6a, 4, gal6a, 1)
	b.Bond(arm3, 2, gn3a, 1)
	b.Bond(arm3, 4, gn3b, 1)
	b.Bond(gn3b, 4, gal3b, 1)
	b.Bond(gn3a, 4, gal3a, 1)

	return b.MustBuild()
}

// SulfatedGlycan builds a reduced, triply sulfated lactosamine chain
// capped with NeuAc.
func SulfatedGlycan() *core.Glycan {
	b := New()
	root := b.Residue(core.SuperClassHex, // 1: open chain, alditol
		core.WithAnomer(core.AnomerUncyclized),
		core.WithConfiguration(core.ConfigD),
		core.WithStem(core.StemGal),
		core.WithRing(0, 0),
	)
	b.Modify(root, 1, core.ModAlditol)
	gn1 := glcNAc(b, core.AnomerBeta)                               // 2, group 3
	gal1 := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal)  // 4
	gn2 := glcNAc(b, core.AnomerBeta)                               // 5, group 6
	gal2 := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal)  // 7
	sia := neuAc(b, "n-acetyl")                                     // 8, group 9
	sulfate1 := b.Substituent("sulfate")                            // 10
	sulfate2 := b.Substituent("sulfate")                            // 11
	sulfate3 := b.Substituent("sulfate")                            // 12

	b.Bond(root, 3, gn1, 1)
	b.Bond(gn1, 4, gal1, 1)
	b.Bond(gal1, 3, gn2, 1)
	b.Bond(gn2, 4, gal2, 1)
	b.Bond(gal2, 6, sia, 2)
	b.Bond(gn2, 6, sulfate1, 1)
	b.Bond(gal1, 6, sulfate2, 1)
	b.Bond(gn1, 6, sulfate3, 1)

	return b.MustBuild()
}

// ComplexGlycan builds a tetraantennary, core-fucosylated N-glycan with
// sialylated and fucosylated antennae: thirty-two declared nodes over
// twenty-one residues. Two sialic acids sit on ambiguous 3-or-6 linkages.
func ComplexGlycan() *core.Glycan {
	b := New()
	gn1 := b.Residue(core.SuperClassHex, // 1: anomer undetermined
		core.WithConfiguration(core.ConfigD),
		core.WithStem(core.StemGlc),
		core.WithRing(1, 5),
	)
	gn1NAc := b.Substituent("n-acetyl") // 2
	b.Bond(gn1, 2, gn1NAc, 1)
	gn2 := glcNAc(b, core.AnomerBeta) // 3, group 4
	man := hexose(b, core.AnomerBeta, core.ConfigD, core.StemMan)   // 5
	arm3 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 6
	gn3a := glcNAc(b, core.AnomerBeta)                              // 7, group 8
	fuc3a := fucose(b)                                              // 9
	gal3a := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 10
	sia3a := neuAc(b, "n-glycolyl")                                 // 11, group 12
	gn3b := glcNAc(b, core.AnomerBeta)                              // 13, group 14
	galNAc3b := nAcHexose(b, core.AnomerBeta, core.StemGal)         // 15, group 16
	gn4 := glcNAc(b, core.AnomerBeta)                               // 17, group 18
	arm6 := hexose(b, core.AnomerAlpha, core.ConfigD, core.StemMan) // 19
	gn6a := glcNAc(b, core.AnomerBeta)                              // 20, group 21
	fuc6a := fucose(b)                                              // 22
	gal6a := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 23
	sia6a := neuAc(b, "n-glycolyl")                                 // 24, group 25
	gn6b := glcNAc(b, core.AnomerBeta)                              // 26, group 27
	fuc6b := fucose(b)                                              // 28
	gal6b := hexose(b, core.AnomerBeta, core.ConfigD, core.StemGal) // 29
	sia6b := neuAc(b, "n-acetyl")                                   // 30, group 31
	coreFuc := fucose(b)                                            // 32

	b.Bond(gn1, 4, gn2, 1)
	b.Bond(gn2, 4, man, 1)
	b.Bond(man, 3, arm3, 1)
	b.Bond(arm3, 2, gn3a, 1)
	b.Bond(gn3a, 3, fuc3a, 1)
	b.Bond(gn3a, 4, gal3a, 1)
	b.Bond(gal3a, 3, sia3a, 2)
	b.Bond(arm3, 4, gn3b, 1)
	b.Bond(gn3b, 4, galNAc3b, 1)
	b.Bond(man, 4, gn4, 1)
	b.Bond(man, 6, arm6, 1)
	b.Bond(arm6, 2, gn6a, 1)
	b.Bond(gn6a, 3, fuc6a, 1)
	b.Bond(gn6a, 4, gal6a, 1)
	b.AmbiguousBond(gal6a, []int{3, 6}, sia6a, 2)
	b.Bond(arm6, 6, gn6b, 1)
	b.Bond(gn6b, 3, fuc6b, 1)
	b.Bond(gn6b, 4, gal6b, 1)
	b.AmbiguousBond(gal6b, []int{3, 6}, sia6b, 2)
	b.Bond(gn1, 6, coreFuc, 1)

	return b.MustBuild()
}
