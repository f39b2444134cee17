// Package subtree searches structures inside structures: one-directional
// inclusion predicates, whole-structure occurrence search, lock-step
// co-traversal, and a maximum-common-subgraph solver.
//
// What:
//   - TopologicalInclusion: order-independent containment of a target
//     subtree in a reference subtree, scored one point per matched residue
//     pair; 0 means not contained. Extra reference children are allowed,
//     but every target child must claim a distinct reference child.
//   - ExactOrderingInclusion: position-sensitive containment; the
//     reference may carry extras at other positions.
//   - SubtreeOf / FindMatchingSubtreeRoots: scan a structure for residues
//     whose subtree includes the probe, returning the first id or all
//     matching roots.
//   - WalkWith: traverse a reference structure in lock step with the
//     aligned nodes of a query structure.
//   - MaximumCommonSubgraph: the similarity-matrix tree matching method of
//     Aoki et al. (Genome Informatics, 2003): score every residue pair of
//     the two structures with a deep recursive comparison, seed at the
//     best cell, then greedily extract the best matching branches into a
//     fresh structure mirroring the first input's topology.
//
// Why:
//
//	The pair scores deliberately recompute shared subtree comparisons
//	rather than memoizing across matrix cells: each cell carries its own
//	visited pair-set, which keeps cyclically malformed input safe and the
//	scores independent.
//
// Complexity:
//   - Inclusion: O(|target| · |reference|) pair comparisons in the worst
//     case, times the child-assignment search.
//   - MaximumCommonSubgraph: O(|A| · |B|) cells, each a deep comparison.
//
// Search functions return sentinels (0, nil, empty) for "not found";
// errors are reserved for structural failures.
package subtree
