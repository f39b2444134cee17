// This file declares the enumerated ring descriptors, shared constants,
// sentinel errors, and the option types used across the package.
package core

import "errors"

// UnknownPosition marks an attachment whose backbone position is not
// determined. Unknown positions never count toward site occupancy.
const UnknownPosition = -1

// Sentinel errors for structural operations.
var (
	// ErrSiteOccupied indicates the attachment site already holds an occupant.
	ErrSiteOccupied = errors.New("core: attachment site already occupied")

	// ErrPositionOutOfRange indicates a position outside the backbone limits.
	ErrPositionOutOfRange = errors.New("core: position out of backbone range")

	// ErrNodeNotFound indicates the requested node id is not indexed.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates the requested link id is not indexed.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrUnknownSubstituent indicates a name with no registered composition.
	ErrUnknownSubstituent = errors.New("core: unknown substituent name")

	// ErrUnknownModification indicates a modification with no composition delta.
	ErrUnknownModification = errors.New("core: unknown modification")

	// ErrModificationNotFound indicates a drop of a modification that is absent.
	ErrModificationNotFound = errors.New("core: modification not found at position")

	// ErrLinkDetached indicates an operation that requires an attached link.
	ErrLinkDetached = errors.New("core: link is not attached")

	// ErrNoOpenPosition indicates an ambiguous link found no open site left.
	ErrNoOpenPosition = errors.New("core: no open position available")

	// ErrDetachedRoot indicates a glycan operation on a nil root.
	ErrDetachedRoot = errors.New("core: glycan has no root")
)

// Anomer describes the anomeric configuration of the ring-forming carbon.
type Anomer string

// Anomer values.
const (
	AnomerAlpha      Anomer = "alpha"
	AnomerBeta       Anomer = "beta"
	AnomerUncyclized Anomer = "uncyclized"
	AnomerUnknown    Anomer = "x"
)

// Configuration is the D/L chirality descriptor of a stem unit.
type Configuration string

// Configuration values.
const (
	ConfigD       Configuration = "d"
	ConfigL       Configuration = "l"
	ConfigUnknown Configuration = "x"
)

// Stem names the base carbohydrate stereochemistry series.
type Stem string

// Stem values.
const (
	StemGlc     Stem = "glc"
	StemGal     Stem = "gal"
	StemMan     Stem = "man"
	StemGul     Stem = "gul"
	StemAlt     Stem = "alt"
	StemAll     Stem = "all"
	StemTal     Stem = "tal"
	StemIdo     Stem = "ido"
	StemGro     Stem = "gro"
	StemEry     Stem = "ery"
	StemRib     Stem = "rib"
	StemAra     Stem = "ara"
	StemXyl     Stem = "xyl"
	StemLyx     Stem = "lyx"
	StemThr     Stem = "thr"
	StemUnknown Stem = "x"
)

// SuperClass fixes the carbon backbone size of a monosaccharide.
type SuperClass string

// SuperClass values.
const (
	SuperClassTri     SuperClass = "tri"
	SuperClassTet     SuperClass = "tet"
	SuperClassPen     SuperClass = "pen"
	SuperClassHex     SuperClass = "hex"
	SuperClassHep     SuperClass = "hep"
	SuperClassOct     SuperClass = "oct"
	SuperClassNon     SuperClass = "non"
	SuperClassUnknown SuperClass = "x"
)

// Cardinality returns the number of backbone carbons, or 0 when unknown.
func (s SuperClass) Cardinality() int {
	return superClassSize[s]
}

// Modification is a backbone alteration applied at a single position.
type Modification string

// Modification values.
const (
	ModDeoxy   Modification = "d"    // loss of a hydroxyl
	ModAcid    Modification = "a"    // carboxylic acid
	ModKeto    Modification = "keto" // carbonyl; does not occupy its site
	ModEn      Modification = "en"   // double bond
	ModAlditol Modification = "aldi" // open-chain reduction
	ModUnknown Modification = "x"
)

// RingType classifies the ring size implied by the ring bounds.
type RingType string

// RingType values.
const (
	RingPyranose RingType = "pyranose"
	RingFuranose RingType = "furanose"
	RingOpen     RingType = "open"
	RingUnknown  RingType = "x"
)
