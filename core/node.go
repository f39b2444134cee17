// This file declares the Node interface satisfied by Monosaccharide and
// Substituent, and the shared id generator.
package core

import (
	"sync/atomic"

	"github.com/glykit/glykit/composition"
)

// nodeIDSource issues process-unique positive ids to freshly built nodes
// and links. Glycan.Reindex later compacts them to 1..n; Builder callers
// may override them outright with SetID.
var nodeIDSource atomic.Int64

func nextNodeID() int64 { return nodeIDSource.Add(1) }

// Node is either a *Monosaccharide or a *Substituent: anything a Link can
// join. The mutating half of the contract is package-private so that Link
// remains the only writer of attachment state.
type Node interface {
	// ID returns the node's graph-local identifier.
	ID() int64

	// SetID overwrites the node's identifier.
	SetID(int64)

	// TotalComposition returns the node's composition including every
	// attached substituent, as an independent copy.
	TotalComposition() composition.Composition

	// Mass returns the monoisotopic mass of TotalComposition.
	Mass() (float64, error)

	// Order returns the number of links attached to this node, counting
	// substituent links.
	Order() int

	attach(l *Link, position int, asParent bool)
	detach(l *Link, position int, asParent bool) bool
	applyLoss(c composition.Composition)
	refundLoss(c composition.Composition)
}
