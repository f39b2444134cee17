// This file implements node and link traversal over a glycan graph.
package core

import "sort"

// TraversalMethod selects the node visiting strategy.
type TraversalMethod int

// Traversal methods.
const (
	TraverseDFS TraversalMethod = iota
	TraverseBFS
)

// TraverseOption configures a traversal.
type TraverseOption func(*traverseConfig)

type traverseConfig struct {
	start   *Monosaccharide
	visited map[int64]struct{}
	apply   func(*Monosaccharide)
}

// FromNode starts the traversal at node instead of the root.
func FromNode(node *Monosaccharide) TraverseOption {
	return func(cfg *traverseConfig) { cfg.start = node }
}

// WithVisited seeds the traversal's visited id-set; the ids already present
// are never entered and the set is extended in place as nodes are visited.
func WithVisited(visited map[int64]struct{}) TraverseOption {
	return func(cfg *traverseConfig) { cfg.visited = visited }
}

// WithApply calls fn on each node as it is visited, in visit order.
func WithApply(fn func(*Monosaccharide)) TraverseOption {
	return func(cfg *traverseConfig) { cfg.apply = fn }
}

// Traverse walks the structure with the given method and returns the nodes
// in visit order. Children are explored in descending bond-order for DFS
// and ascending for BFS; the traversal also climbs parent bonds, so a start
// node in mid-graph still reaches the whole connected component. A visited
// id-set makes the walk terminate on cyclic input.
func (g *Glycan) Traverse(method TraversalMethod, opts ...TraverseOption) []*Monosaccharide {
	cfg := traverseConfig{start: g.root}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.start == nil {
		return nil
	}
	if cfg.visited == nil {
		cfg.visited = make(map[int64]struct{})
	}

	var out []*Monosaccharide
	pending := []*Monosaccharide{cfg.start}
	for len(pending) > 0 {
		var node *Monosaccharide
		if method == TraverseBFS {
			node = pending[0]
			pending = pending[1:]
		} else {
			node = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
		}
		if _, seen := cfg.visited[node.ID()]; seen {
			continue
		}
		cfg.visited[node.ID()] = struct{}{}
		if cfg.apply != nil {
			cfg.apply(node)
		}
		out = append(out, node)

		var next []*Monosaccharide
		for _, e := range node.links.Items() {
			for _, terminal := range []Node{e.Value.Parent, e.Value.Child} {
				m, ok := terminal.(*Monosaccharide)
				if !ok || m == node {
					continue
				}
				if _, seen := cfg.visited[m.ID()]; !seen {
					next = append(next, m)
				}
			}
		}
		sort.SliceStable(next, func(i, j int) bool { return next[i].Order() < next[j].Order() })
		pending = append(pending, next...)
	}

	return out
}

// DepthFirst is Traverse with TraverseDFS.
func (g *Glycan) DepthFirst(opts ...TraverseOption) []*Monosaccharide {
	return g.Traverse(TraverseDFS, opts...)
}

// BreadthFirst is Traverse with TraverseBFS.
func (g *Glycan) BreadthFirst(opts ...TraverseOption) []*Monosaccharide {
	return g.Traverse(TraverseBFS, opts...)
}

// collectLinks returns every backbone link once, in node traversal order.
func (g *Glycan) collectLinks(method TraversalMethod) []*Link {
	seen := map[*Link]struct{}{}
	var out []*Link
	for _, node := range g.Traverse(method) {
		for _, e := range node.links.Items() {
			if _, ok := seen[e.Value]; ok {
				continue
			}
			seen[e.Value] = struct{}{}
			out = append(out, e.Value)
		}
	}

	return out
}

// IterLinks returns (parent position, link) pairs in traversal order,
// optionally including substituent links.
func (g *Glycan) IterLinks(method TraversalMethod, substituents bool) []Entry[*Link] {
	seen := map[*Link]struct{}{}
	var out []Entry[*Link]
	for _, node := range g.Traverse(method) {
		if substituents {
			for _, e := range node.substituentLinks.Items() {
				if _, ok := seen[e.Value]; ok {
					continue
				}
				seen[e.Value] = struct{}{}
				out = append(out, e)
			}
		}
		for _, e := range node.links.Items() {
			if _, ok := seen[e.Value]; ok {
				continue
			}
			seen[e.Value] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}
