// Package treelet enumerates the connected k-residue subtrees of a
// structure and tests treelet frequencies between two sets of structures
// for enrichment.
//
// What:
//   - Treelet: a rooted subtree copied out of a larger structure, carrying
//     the frontier of reference node ids that could extend it by one
//     residue. Expand grows a treelet across one frontier node; ExpandAll
//     grows it across every frontier node.
//   - Enumerate: all k-treelets of a structure, rooted at every residue in
//     breadth-first order. Distinct mode keeps one treelet per residue set;
//     the same residues reached through different expansion orders count
//     once.
//   - TreeletEnrichment: counts how many structures of each condition
//     contain each treelet of the first condition, then scores the
//     imbalance with a one-sided Fisher's exact test (hypergeometric upper
//     tail).
//   - NSaccharideSimilarity: the n-saccharide kernel of Aoki et al.
//     (Genome Informatics, 2003) built on treelet enumeration.
//
// Why:
//
//	Enumeration dedupes on residue identity, not shape: two branches of
//	the same structure with identical layout are two occurrences, so
//	occurrence counts stay honest. Cross-structure identity uses the
//	id-free canonical form instead, exposed as Signature.
//
// Complexity: a structure with n residues and branching factor b has
// O(n · bᵏ⁻¹) candidate k-treelets; enumeration visits each once per
// expansion order.
//
// Enumeration returns empty slices for degenerate input (nil structure,
// k < 1); errors are reserved for frontier ids that do not resolve in the
// reference structure.
package treelet
