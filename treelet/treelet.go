// This file implements the treelet type and the k-treelet enumerator.
package treelet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/glykit/glykit/core"
)

// Treelet is a rooted subtree lifted out of a reference structure. Subtree
// keeps the reference node ids, so a treelet remembers which residues of
// the reference it covers; the frontier holds the ids of reference
// residues that are children of covered residues and could extend the
// treelet by one.
type Treelet struct {
	// Subtree is the copied subtree, ids preserved from the reference.
	Subtree *core.Glycan

	frontier map[int64]struct{}
}

// FromMonosaccharide starts a one-residue treelet rooted at node. The
// residue is copied with its substituents; its children in the reference
// become the frontier.
func FromMonosaccharide(node *core.Monosaccharide) *Treelet {
	subtree := core.NewGlycan(node.Clone(true))
	frontier := make(map[int64]struct{})
	for _, e := range node.Children() {
		frontier[e.Value.ID()] = struct{}{}
	}

	return &Treelet{Subtree: subtree, frontier: frontier}
}

// Len reports the number of residues covered.
func (t *Treelet) Len() int { return t.Subtree.Len() }

// Root returns the treelet's root residue.
func (t *Treelet) Root() *core.Monosaccharide { return t.Subtree.Root() }

// FrontierIDs lists the reference ids that could extend the treelet, in
// ascending order.
func (t *Treelet) FrontierIDs() []int64 {
	ids := make([]int64, 0, len(t.frontier))
	for id := range t.frontier {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Signature renders the treelet's id-free canonical form. Two treelets cut
// from different structures share a Signature exactly when their shapes,
// descriptors and link positions agree.
func (t *Treelet) Signature() string { return t.Subtree.CanonicalForm() }

// occurrenceKey identifies which residues of the reference the treelet
// covers. Within one structure a residue set determines the treelet, so
// the sorted id list is enough to collapse repeat expansion orders.
func (t *Treelet) occurrenceKey() string {
	index := t.Subtree.Index()
	ids := make([]int64, 0, len(index))
	for _, node := range index {
		ids = append(ids, node.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}

	return b.String()
}

// Expand returns a new treelet covering one more residue: the frontier
// node frontierID of reference, attached under its parent's copy. The
// receiver is not modified.
func (t *Treelet) Expand(reference *core.Glycan, frontierID int64) (*Treelet, error) {
	if _, ok := t.frontier[frontierID]; !ok {
		return nil, fmt.Errorf("%w: %d is not on the frontier", core.ErrNodeNotFound, frontierID)
	}
	node, err := reference.Get(frontierID)
	if err != nil {
		return nil, err
	}

	// 1. Copy the subtree and the joining residue.
	newNode := node.Clone(true)
	tree := t.Subtree.Clone(true)

	// 2. Re-create every bond from a covered parent to the new residue.
	for _, e := range node.Links().Items() {
		l := e.Value
		if !l.IsChild(node) {
			continue
		}
		parent, err := tree.Get(l.Parent.ID())
		if err != nil {
			return nil, err
		}
		l.CloneBetween(parent, newNode)
	}

	// 3. Rebuild the index around the grown tree; positive ids survive.
	grown := core.NewGlycan(tree.Root())

	// 4. The consumed frontier entry is replaced by the new residue's
	// children.
	frontier := make(map[int64]struct{}, len(t.frontier))
	for id := range t.frontier {
		if id != frontierID {
			frontier[id] = struct{}{}
		}
	}
	for _, e := range node.Children() {
		frontier[e.Value.ID()] = struct{}{}
	}

	return &Treelet{Subtree: grown, frontier: frontier}, nil
}

// ExpandAll grows the treelet across every frontier node, one treelet per
// entry, in ascending frontier id order.
func (t *Treelet) ExpandAll(reference *core.Glycan) ([]*Treelet, error) {
	out := make([]*Treelet, 0, len(t.frontier))
	for _, id := range t.FrontierIDs() {
		next, err := t.Expand(reference, id)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
	}

	return out, nil
}

// Options holds the enumeration parameters.
type Options struct {
	// Distinct keeps one treelet per covered residue set; repeat
	// expansion orders over the same residues are dropped.
	Distinct bool
}

// DefaultOptions enumerates distinct treelets.
func DefaultOptions() Options {
	return Options{Distinct: true}
}

// Option configures Enumerate.
type Option func(*Options)

// WithDuplicates keeps every enumerated treelet, repeat expansion orders
// included.
func WithDuplicates() Option {
	return func(o *Options) { o.Distinct = false }
}

// Enumerate lists the k-residue treelets of g: every connected subtree of
// k residues, rooted at its topmost residue. Roots are visited in
// breadth-first order from g's root.
func Enumerate(g *core.Glycan, k int, opts ...Option) []*Treelet {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil || g.Root() == nil || k < 1 {
		return nil
	}

	var out []*Treelet
	seen := make(map[string]struct{})
	emit := func(t *Treelet) {
		key := t.occurrenceKey()
		if _, dup := seen[key]; dup && o.Distinct {
			return
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}

	var extend func(t *Treelet, size int) error
	extend = func(t *Treelet, size int) error {
		if size == k {
			emit(t)

			return nil
		}
		grown, err := t.ExpandAll(g)
		if err != nil {
			return err
		}
		for _, next := range grown {
			if err := extend(next, size+1); err != nil {
				return err
			}
		}

		return nil
	}

	queue := []*core.Monosaccharide{g.Root()}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, e := range node.Children() {
			queue = append(queue, e.Value)
		}
		// Frontier ids always resolve in the structure they came from.
		_ = extend(FromMonosaccharide(node), 1)
	}

	return out
}
