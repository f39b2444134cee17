// Package core defines the structural model of a glycan: Monosaccharide and
// Substituent nodes, typed parent→child Links between them, and the Glycan
// container that roots a connected structure and provides indexing,
// traversal, cloning and canonical rendering.
//
// What:
//   - Monosaccharide: ring descriptors (anomericity, configuration, stem,
//     superclass, ring bounds), position-keyed modifications, backbone links,
//     substituent links, and an elemental composition.
//   - Substituent: a named non-saccharide group with its own composition and
//     links.
//   - Link / AmbiguousLink: a typed bond carrying parent/child positions and
//     the composition each endpoint loses when the bond forms. Apply, Break
//     and Reconnect move those losses atomically so masses always
//     reconstruct exactly.
//   - LinkMask: a scoped guard that detaches links and guarantees their
//     reattachment through a single idempotent Restore.
//   - Glycan: root + rebuildable node/link indices, DFS/BFS traversal,
//     Reindex/Deindex, Reroot, Clone, branch labeling, mass and canonical
//     text rendering.
//
// Why:
//
//	Glycans are trees in the common case but the model must stay safe on
//	malformed cyclic input: every traversal and recursive comparison carries
//	an explicit visited id-set and terminates on revisit. Graph mutations
//	validate occupancy up front and either fully apply or leave the
//	structure untouched.
//
// Concurrency:
//
//	None of the types synchronize internally. A Glycan and every node in it
//	are owned by one goroutine at a time; Clone produces fully independent
//	copies safe to hand to another goroutine.
//
// Complexity:
//   - Traversal, Reindex, Clone: O(V+E).
//   - Node mutations: O(occupants at position).
//
// Errors:
//
//	ErrSiteOccupied       - attachment site already holds an occupant.
//	ErrPositionOutOfRange - position outside the backbone.
//	ErrNodeNotFound       - id is not in the glycan's index.
//	ErrLinkNotFound       - id is not in the glycan's link index.
//	ErrUnknownSubstituent - substituent name has no registered composition.
//	ErrLinkDetached       - operation requires an attached link.
//	ErrNoOpenPosition     - ambiguous link has no remaining open site.
package core
