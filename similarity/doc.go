// Package similarity scores and compares monosaccharide residues.
//
// What:
//   - Score: a trait-counting heuristic returning (observed, expected)
//     match counts over anomericity, superclass, stem, configuration,
//     modifications, substituents and, optionally, whole child subtrees.
//     Unknown descriptors on the target side match anything.
//   - Commutative: direction-insensitive wrapper over Score with an
//     integer tolerance.
//   - FlatEqual / ExactOrderingEqual / TopologicalEqual: the three
//     equality predicates, in strictness order
//     exact-ordering ⊆ topological ⊆ flat.
//   - GlycanEqual / GlycanTopologicalEqual: whole-structure equality.
//   - HasSubstituent / HasModification / HasMonosaccharide: membership
//     predicates over residues and structures.
//
// Why:
//
//	Score is deliberately a counting heuristic, not a metric: observed may
//	exceed expected when the target side carries unknowns, and exactness
//	only controls whether unmatched attachments on the probe side widen
//	the expectation. Child matching uses brute-force optimal assignment,
//	which is exponential in the child count — glycan branching keeps it
//	tiny in practice.
//
// Complexity:
//   - Score without children: O(traits + attachments).
//   - Score with children, and the equality predicates: O(product of
//     subtree sizes) in the worst case, cycle-safe through visited
//     id-pair sets.
//
// Every recursive comparison carries a PairSet of visited (id, id) pairs
// and treats a revisited pair as already matched, so malformed cyclic
// input terminates.
package similarity
