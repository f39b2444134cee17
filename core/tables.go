// This file holds the chemistry tables: superclass base compositions,
// modification composition deltas, and the registered substituent groups
// with their attachment losses.
package core

import "github.com/glykit/glykit/composition"

// superClassSize maps each superclass to its backbone carbon count.
var superClassSize = map[SuperClass]int{
	SuperClassTri: 3,
	SuperClassTet: 4,
	SuperClassPen: 5,
	SuperClassHex: 6,
	SuperClassHep: 7,
	SuperClassOct: 8,
	SuperClassNon: 9,
}

// superClassComposition maps each superclass to the composition of the
// unmodified open-chain saccharide, (CH2O) per backbone carbon.
var superClassComposition = map[SuperClass]composition.Composition{
	SuperClassTri: composition.MustParse("C3H6O3"),
	SuperClassTet: composition.MustParse("C4H8O4"),
	SuperClassPen: composition.MustParse("C5H10O5"),
	SuperClassHex: composition.MustParse("C6H12O6"),
	SuperClassHep: composition.MustParse("C7H14O7"),
	SuperClassOct: composition.MustParse("C8H16O8"),
	SuperClassNon: composition.MustParse("C9H18O9"),
}

// modificationDelta maps each modification to the composition change it
// applies to its residue.
var modificationDelta = map[Modification]composition.Composition{
	ModDeoxy:   {"O": -1},
	ModAcid:    {"H": -2, "O": 1},
	ModKeto:    {"H": -2},
	ModEn:      {"H": -2, "O": -1},
	ModAlditol: {"H": 2},
}

// substituentComposition maps registered substituent names to their free
// base compositions.
var substituentComposition = map[string]composition.Composition{
	"n_acetyl":     composition.MustParse("C2H5NO"),
	"n_glycolyl":   composition.MustParse("C2H5NO2"),
	"n_sulfate":    composition.MustParse("H3NO3S"),
	"amino":        composition.MustParse("H3N"),
	"imino":        composition.MustParse("HN"),
	"sulfate":      composition.MustParse("H2O3S"),
	"phosphate":    composition.MustParse("H3O4P"),
	"methyl":       composition.MustParse("CH4"),
	"acetyl":       composition.MustParse("C2H4O"),
	"glycolyl":     composition.MustParse("C2H4O2"),
	"fluoro":       composition.MustParse("HF"),
	"chloro":       composition.MustParse("HCl"),
	"bromo":        composition.MustParse("HBr"),
	"iodo":         composition.MustParse("HI"),
	"anhydro":      composition.MustParse("H2O"),
	"pyruvate":     composition.MustParse("C3H4O3"),
	"formyl":       composition.MustParse("CH2O"),
	"ethanolamine": composition.MustParse("C2H7NO"),
}

// substituentAttachmentLoss maps substituent names to the composition the
// PARENT residue loses when the bond forms. Nitrogen-linked groups displace
// the whole hydroxyl; everything else costs a single hydrogen.
var substituentAttachmentLoss = map[string]composition.Composition{
	"n_acetyl":   composition.MustParse("HO"),
	"n_glycolyl": composition.MustParse("HO"),
	"n_sulfate":  composition.MustParse("HO"),
	"amino":      composition.MustParse("HO"),
	"imino":      composition.MustParse("HO"),
	"anhydro":    composition.MustParse("H"),
	"sulfate":    composition.MustParse("H"),
	"phosphate":  composition.MustParse("H"),
	"methyl":     composition.MustParse("H"),
}

// defaultAttachmentLoss is the parent-side loss for any substituent without
// a table entry.
var defaultAttachmentLoss = composition.MustParse("H")

// defaultChildLoss is the child-side loss for every newly formed bond.
var defaultChildLoss = composition.MustParse("H")

// defaultParentLoss is the parent-side loss of a glycosidic bond: the
// hydroxyl that condenses with the child's hydrogen into water.
var defaultParentLoss = composition.MustParse("HO")
