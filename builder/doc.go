// Package builder assembles structures programmatically, residue by
// residue, and ships the named reference structures used across the test
// suites.
//
// What:
//   - Builder: a sticky-error assembler. Residue and Substituent declare
//     nodes and return their declaration-order index, which becomes the
//     node id; Bond and AmbiguousBond form the links between declared
//     nodes; Build locates the parentless residue and wraps it in an
//     indexed Glycan.
//   - Standalone residue factories (GlcNAc, Mannose, Galactose, Fucose,
//     NeuAc) for grafting onto existing structures.
//   - Named structures: NLinkedCore, CommonGlycan, BranchyGlycan,
//     BroadNGlycan, SulfatedGlycan and ComplexGlycan.
//
// Why:
//
//	Declaration order doubles as the id sequence, so a structure built
//	here carries the same node numbering as its condensed-notation
//	definition; searches that report node ids stay comparable across
//	builds.
//
// The first failure (unknown substituent, occupied site, missing root)
// sticks and is returned by Build; calls after a failure are no-ops.
package builder
