// This file implements the Glycan container: indexing, cloning, rerooting,
// branch labeling, and aggregate composition.
package core

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/glykit/glykit/composition"
)

// MainBranchSymbol labels the unbranched backbone in LabelBranches output.
const MainBranchSymbol = "-"

// Glycan roots a connected saccharide structure and caches traversal
// indices over its nodes and links. The indices are rebuilt by Reindex and
// may go stale after manual link surgery; every accessor that needs them
// says so.
type Glycan struct {
	root      *Monosaccharide
	index     []*Monosaccharide
	linkIndex []*Link

	// BranchLengths and BranchParentMap are filled by LabelBranches.
	BranchLengths   map[string]int
	BranchParentMap map[string]string
}

// GlycanOption configures NewGlycan.
type GlycanOption func(*glycanConfig)

type glycanConfig struct {
	skipIndex bool
	method    TraversalMethod
}

// WithoutIndex skips index construction; call Reindex before using indexed
// accessors.
func WithoutIndex() GlycanOption {
	return func(cfg *glycanConfig) { cfg.skipIndex = true }
}

// WithIndexMethod selects the traversal that orders the index.
func WithIndexMethod(method TraversalMethod) GlycanOption {
	return func(cfg *glycanConfig) { cfg.method = method }
}

// NewGlycan wraps root in a Glycan and builds its indices depth-first.
// Existing positive node ids are preserved; only unassigned (non-positive)
// ids are renumbered.
func NewGlycan(root *Monosaccharide, opts ...GlycanOption) *Glycan {
	cfg := glycanConfig{method: TraverseDFS}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Glycan{root: root}
	if !cfg.skipIndex && root != nil {
		g.Reindex(cfg.method)
	}

	return g
}

// Root returns the root residue.
func (g *Glycan) Root() *Monosaccharide { return g.root }

// SetRoot replaces the root. Indices go stale until Reindex.
func (g *Glycan) SetRoot(root *Monosaccharide) { g.root = root }

// Index returns the node index in traversal order. Shared slice; do not
// mutate.
func (g *Glycan) Index() []*Monosaccharide { return g.index }

// LinkIndex returns the link index in traversal order. Shared slice.
func (g *Glycan) LinkIndex() []*Link { return g.linkIndex }

// Len returns the number of indexed residues.
func (g *Glycan) Len() int { return len(g.index) }

// Get returns the indexed residue with the given id.
func (g *Glycan) Get(id int64) (*Monosaccharide, error) {
	for _, node := range g.index {
		if node.ID() == id {
			return node, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
}

// GetLink returns the indexed link with the given id.
func (g *Glycan) GetLink(id int64) (*Link, error) {
	for _, l := range g.linkIndex {
		if l.ID() == id {
			return l, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrLinkNotFound, id)
}

// Reindex rebuilds the node and link indices in the given traversal order
// and refreshes the branch labels. When an index already exists its ids are
// mangled first, so a repeat Reindex renumbers every node 1..n in traversal
// order; a first Reindex keeps caller-assigned positive node ids. Link ids
// are always renumbered 1..n.
func (g *Glycan) Reindex(method TraversalMethod) *Glycan {
	if g.root == nil {
		return g
	}
	g.Deindex()

	index := g.Traverse(method)
	next := int64(1)
	for _, node := range index {
		if node.ID() <= 0 {
			node.SetID(next)
		}
		next++
	}
	g.index = index

	linkIndex := g.collectLinks(method)
	for i, l := range linkIndex {
		l.SetID(int64(i + 1))
	}
	g.linkIndex = linkIndex
	g.LabelBranches()

	return g
}

// Deindex mangles every indexed node and link id to a unique negative
// value, so structures can be grafted together without id collisions
// masquerading as cycles. No-op when no index exists.
func (g *Glycan) Deindex() *Glycan {
	if len(g.index) == 0 {
		return g
	}
	base := randomIDBase()
	for _, node := range g.index {
		node.SetID(-(node.ID() + base))
	}
	for _, l := range g.linkIndex {
		l.SetID(-(l.ID() + base))
	}

	return g
}

// randomIDBase draws a positive random offset for Deindex mangling.
func randomIDBase() int64 {
	u := uuid.New()
	v := int64(binary.BigEndian.Uint64(u[:8]) >> 1)
	if v == 0 {
		v = 1
	}

	return v
}

// Reroot moves the root to the indexed node with the smallest id and
// reindexes.
func (g *Glycan) Reroot(method TraversalMethod) *Glycan {
	if len(g.index) == 0 {
		return g
	}
	lowest := g.index[0]
	for _, node := range g.index[1:] {
		if node.ID() < lowest.ID() {
			lowest = node
		}
	}
	g.root = lowest

	return g.Reindex(method)
}

// Leaves returns the indexed residues with no children.
func (g *Glycan) Leaves() []*Monosaccharide {
	var out []*Monosaccharide
	for _, node := range g.index {
		if len(node.Children()) == 0 {
			out = append(out, node)
		}
	}

	return out
}

// CountBranches counts branches: the first residue with more than two
// backbone bonds opens two, each further one opens one more.
func (g *Glycan) CountBranches() int {
	count := 0
	for _, node := range g.index {
		if node.links.Len() > 2 {
			if count == 0 {
				count += 2
			} else {
				count++
			}
		}
	}

	return count
}

// LabelBranches assigns alphabetic branch labels to every backbone link:
// an unbranched run keeps its parent's symbol with an increasing depth
// ("a1", "a2", ...), each split opens fresh symbols. Also fills
// BranchLengths and BranchParentMap; the MainBranchSymbol entry carries the
// longest branch length.
func (g *Glycan) LabelBranches() {
	lengths := map[string]int{}
	parents := map[string]string{}
	lastSymbol := MainBranchSymbol

	parentSymbol := func(node *Monosaccharide) string {
		for _, e := range node.links.Items() {
			if e.Value.IsChild(node) {
				if e.Value.Label == "" {
					return MainBranchSymbol
				}

				return e.Value.Label[:1]
			}
		}

		return MainBranchSymbol
	}

	for _, node := range g.index {
		var links []*Link
		for _, e := range node.links.Items() {
			if !e.Value.IsChild(node) {
				links = append(links, e.Value)
			}
		}

		switch {
		case len(links) == 1:
			key := parentSymbol(node)
			lengths[key]++
			links[0].Label = fmt.Sprintf("%s%d", key, lengths[key])
		case len(links) > 1:
			key := parentSymbol(node)
			count := lengths[key]
			for _, l := range links {
				if lastSymbol == MainBranchSymbol {
					lastSymbol = "a"
				} else {
					lastSymbol = string(lastSymbol[0] + 1)
				}
				parents[lastSymbol] = key
				lengths[lastSymbol] = count + 1
				l.Label = fmt.Sprintf("%s%d", lastSymbol, lengths[lastSymbol])
			}
		}
	}

	// Propagate child branch lengths up to their parents.
	symbols := make([]string, 0, len(lengths))
	for sym := range lengths {
		symbols = append(symbols, sym)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(symbols)))
	longest := 0
	for _, sym := range symbols {
		if sym == MainBranchSymbol {
			continue
		}
		length := lengths[sym]
		if length > longest {
			longest = length
		}
		if parent, ok := parents[sym]; ok && length > lengths[parent] {
			lengths[parent] = length
		}
	}
	lengths[MainBranchSymbol] = longest

	g.BranchLengths = lengths
	g.BranchParentMap = parents
}

// TotalComposition sums every residue's total composition.
func (g *Glycan) TotalComposition() composition.Composition {
	total := composition.New()
	for _, node := range g.index {
		total.Add(node.TotalComposition())
	}

	return total
}

// Mass returns the monoisotopic mass of the whole structure.
func (g *Glycan) Mass() (float64, error) {
	return g.TotalComposition().Mass()
}

// Clone deep-copies the structure. preserveIDs keeps node and link ids,
// which grafting callers rely on; otherwise clones draw fresh ids. A node
// id met twice marks the affected clone MaybeCyclic and the extra edge is
// still formed.
func (g *Glycan) Clone(preserveIDs bool) *Glycan {
	if g.root == nil {
		return &Glycan{}
	}

	return NewGlycan(CloneSubtree(g.root, preserveIDs), WithoutIndex()).Reindex(TraverseDFS)
}

// Substructures returns an independent glycan for every subtree of the
// structure: one rooted copy per indexed residue. preserveIDs keeps the
// source node ids in the copies.
func (g *Glycan) Substructures(preserveIDs bool) []*Glycan {
	out := make([]*Glycan, 0, len(g.index))
	for _, node := range g.index {
		out = append(out, NewGlycan(CloneSubtree(node, preserveIDs)))
	}

	return out
}

// CloneSubtree deep-copies node and all of its descendants, substituents
// included, without the bond to its parent.
func CloneSubtree(node *Monosaccharide, preserveIDs bool) *Monosaccharide {
	clones := map[int64]*Monosaccharide{}

	var walk func(src *Monosaccharide) *Monosaccharide
	walk = func(src *Monosaccharide) *Monosaccharide {
		if dup, seen := clones[src.ID()]; seen {
			dup.MaybeCyclic = true

			return dup
		}
		dup := src.Clone(preserveIDs)
		clones[src.ID()] = dup
		for _, e := range src.links.Items() {
			l := e.Value
			if l.IsChild(src) {
				continue
			}
			child, ok := l.Child.(*Monosaccharide)
			if !ok {
				continue
			}
			childDup := walk(child)
			nl := &Link{
				id:             l.id,
				Parent:         dup,
				Child:          childDup,
				ParentPosition: l.ParentPosition,
				ChildPosition:  l.ChildPosition,
				ParentLoss:     l.ParentLoss.Clone(),
				ChildLoss:      l.ChildLoss.Clone(),
				Label:          l.Label,
			}
			nl.attachRaw()
		}

		return dup
	}

	return walk(node)
}
