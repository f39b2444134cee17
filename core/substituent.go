// This file implements the Substituent node type.
package core

import (
	"fmt"
	"strings"

	"github.com/glykit/glykit/composition"
)

// Substituent is a non-saccharide group bound to a monosaccharide backbone
// or, rarely, to another substituent. Its Name is stored in internal form:
// lowercase with underscores ("n_acetyl").
type Substituent struct {
	// Name is the internalized group name.
	Name string

	// Composition is the group's own element bag, already reduced by any
	// attachment losses from formed bonds.
	Composition composition.Composition

	id             int64
	links          *MultiMap[*Link]
	attachmentLoss composition.Composition
}

// NewSubstituent builds a registered substituent by name. The name is
// internalized first, so "n-acetyl" and "nAcetyl" are not needed — callers
// pass "n-acetyl" or "n_acetyl" interchangeably. Unregistered names yield
// ErrUnknownSubstituent.
func NewSubstituent(name string) (*Substituent, error) {
	internal := InternalizeSubstituentName(name)
	base, ok := substituentComposition[internal]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubstituent, name)
	}
	loss, ok := substituentAttachmentLoss[internal]
	if !ok {
		loss = defaultAttachmentLoss
	}

	return &Substituent{
		Name:           internal,
		Composition:    base.Clone(),
		id:             nextNodeID(),
		links:          NewMultiMap[*Link](),
		attachmentLoss: loss.Clone(),
	}, nil
}

// NewCustomSubstituent registers nothing; it builds a one-off group from an
// explicit composition and parent-side attachment loss (nil means the
// default single hydrogen).
func NewCustomSubstituent(name string, comp, attachmentLoss composition.Composition) *Substituent {
	if attachmentLoss == nil {
		attachmentLoss = defaultAttachmentLoss
	}

	return &Substituent{
		Name:           InternalizeSubstituentName(name),
		Composition:    comp.Clone(),
		id:             nextNodeID(),
		links:          NewMultiMap[*Link](),
		attachmentLoss: attachmentLoss.Clone(),
	}
}

// InternalizeSubstituentName lowercases name and maps separators to
// underscores.
func InternalizeSubstituentName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")

	return name
}

// ID returns the node id.
func (s *Substituent) ID() int64 { return s.id }

// SetID overwrites the node id.
func (s *Substituent) SetID(id int64) { s.id = id }

// Order returns the number of bonds this group participates in.
func (s *Substituent) Order() int { return s.links.Len() }

// Links exposes the group's bond multimap. Callers must not mutate it.
func (s *Substituent) Links() *MultiMap[*Link] { return s.links }

// AttachmentCompositionLoss returns a copy of the composition the parent
// loses when bonding this group.
func (s *Substituent) AttachmentCompositionLoss() composition.Composition {
	return s.attachmentLoss.Clone()
}

// IsOccupied reports the number of occupants at position.
func (s *Substituent) IsOccupied(position int) int {
	if position == UnknownPosition {
		return 0
	}

	return s.links.CountAt(position)
}

// Children returns child substituents attached below this one.
func (s *Substituent) Children() []Entry[*Substituent] {
	var out []Entry[*Substituent]
	for _, e := range s.links.Items() {
		if e.Value.IsChild(s) {
			continue
		}
		if child, ok := e.Value.Child.(*Substituent); ok {
			out = append(out, Entry[*Substituent]{Position: e.Position, Value: child})
		}
	}

	return out
}

// Parents returns the nodes this group hangs from.
func (s *Substituent) Parents() []Entry[Node] {
	var out []Entry[Node]
	for _, e := range s.links.Items() {
		if e.Value.IsChild(s) {
			out = append(out, Entry[Node]{Position: e.Position, Value: e.Value.Parent})
		}
	}

	return out
}

// TotalComposition returns this group's composition plus that of every
// child substituent, as a fresh bag.
func (s *Substituent) TotalComposition() composition.Composition {
	total := s.Composition.Clone()
	for _, child := range s.Children() {
		total.Add(child.Value.TotalComposition())
	}

	return total
}

// Mass returns the monoisotopic mass of TotalComposition.
func (s *Substituent) Mass() (float64, error) {
	return s.TotalComposition().Mass()
}

// Equal reports name and composition identity with other.
func (s *Substituent) Equal(other *Substituent) bool {
	if other == nil {
		return false
	}

	return s.Name == other.Name && s.Composition.Equal(other.Composition)
}

// Clone copies the group and, deeply, its child substituents. Bonds to
// parents are not copied. preserveID keeps the original node ids.
func (s *Substituent) Clone(preserveID bool) *Substituent {
	out := &Substituent{
		Name:           s.Name,
		Composition:    s.Composition.Clone(),
		id:             nextNodeID(),
		links:          NewMultiMap[*Link](),
		attachmentLoss: s.attachmentLoss.Clone(),
	}
	if preserveID {
		out.id = s.id
	}
	for _, e := range s.links.Items() {
		l := e.Value
		if l.IsChild(s) {
			continue
		}
		if child, ok := l.Child.(*Substituent); ok {
			dup := child.Clone(preserveID)
			// Recreate the bond with identical positions and losses. The
			// losses were already paid on both sides, so attach raw.
			nl := &Link{
				id:             l.id,
				Parent:         out,
				Child:          dup,
				ParentPosition: l.ParentPosition,
				ChildPosition:  l.ChildPosition,
				ParentLoss:     l.ParentLoss.Clone(),
				ChildLoss:      l.ChildLoss.Clone(),
				Label:          l.Label,
			}
			nl.attachRaw()
		}
	}

	return out
}

func (s *Substituent) attach(l *Link, position int, _ bool) {
	s.links.Append(position, l)
}

func (s *Substituent) detach(l *Link, position int, _ bool) bool {
	return s.links.Delete(position, func(v *Link) bool { return v == l })
}

func (s *Substituent) applyLoss(c composition.Composition)  { s.Composition.Sub(c) }
func (s *Substituent) refundLoss(c composition.Composition) { s.Composition.Add(c) }
