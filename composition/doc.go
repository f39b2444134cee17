// Package composition models elemental compositions — integer bags of
// chemical element counts — and their monoisotopic masses.
//
// What:
//   - Composition: element symbol → signed count, with Add/Sub/Clone/Equal.
//   - Parse: chemical formula text ("C6H12O6", "COCH3") → Composition.
//   - Mass: monoisotopic mass in Daltons from a built-in isotope table.
//
// Why:
//
//	Every residue, substituent and link in a glycan carries a composition;
//	structural edits move whole-number element counts between neighbors, so
//	masses reconstruct exactly after any apply/refund round trip.
//
// Complexity:
//   - All operations are O(k) in the number of distinct elements k.
//
// Errors:
//
//	ErrBadFormula   - formula text is empty or malformed.
//	ErrUnknownElement - element symbol has no entry in the isotope table.
package composition
