// This file implements the deterministic canonical text rendering used for
// structure hashing and treelet deduplication.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// CanonicalForm renders the structure as deterministic text: identical
// output if and only if two structures share topology, descriptors,
// modifications, substituents and link positions. Node ids do not
// participate, so the form is stable across renumbering.
func (g *Glycan) CanonicalForm() string {
	if g.root == nil {
		return ""
	}

	return canonicalSubtree(g.root, make(map[int64]struct{}))
}

// CanonicalResidue renders a single residue without its children.
func CanonicalResidue(m *Monosaccharide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-", m.Anomer)
	for _, c := range m.Configuration {
		fmt.Fprintf(&b, "%s", c)
	}
	b.WriteString("-")
	for _, s := range m.Stem {
		fmt.Fprintf(&b, "%s", s)
	}
	fmt.Fprintf(&b, "-%s-%d:%d", m.SuperClass, m.RingStart, m.RingEnd)

	if m.Modifications.Len() > 0 {
		mods := make([]string, 0, m.Modifications.Len())
		for _, e := range m.Modifications.Items() {
			mods = append(mods, fmt.Sprintf("%d*%s", e.Position, e.Value))
		}
		sort.Strings(mods)
		fmt.Fprintf(&b, "|%s", strings.Join(mods, ","))
	}

	if subs := m.Substituents(); len(subs) > 0 {
		parts := make([]string, 0, len(subs))
		for _, e := range subs {
			parts = append(parts, fmt.Sprintf("%d*%s", e.Position, e.Value.Name))
		}
		sort.Strings(parts)
		fmt.Fprintf(&b, "{%s}", strings.Join(parts, ","))
	}
	if m.ReducedEnd != nil {
		b.WriteString("&red")
	}

	return b.String()
}

// canonicalSubtree renders node and its descendants, children ordered by
// (parent position, rendered form) so sibling order never matters.
func canonicalSubtree(node *Monosaccharide, visited map[int64]struct{}) string {
	if _, seen := visited[node.ID()]; seen {
		return "!cycle"
	}
	visited[node.ID()] = struct{}{}

	var b strings.Builder
	b.WriteString(CanonicalResidue(node))

	children := node.Children()
	if len(children) > 0 {
		rendered := make([]string, 0, len(children))
		for _, e := range children {
			rendered = append(rendered, fmt.Sprintf("(%d+%s)", e.Position, canonicalSubtree(e.Value, visited)))
		}
		sort.Strings(rendered)
		b.WriteString(strings.Join(rendered, ""))
	}
	delete(visited, node.ID())

	return b.String()
}
