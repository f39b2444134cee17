// This file implements the Monosaccharide node type and its mutations.
package core

import (
	"fmt"

	"github.com/glykit/glykit/composition"
)

// Monosaccharide is a single saccharide residue: ring descriptors, a
// position-keyed set of modifications, backbone links to other residues,
// substituent links, and an elemental composition that every mutation keeps
// exact.
type Monosaccharide struct {
	// Anomer is the anomeric configuration of the ring-forming carbon.
	Anomer Anomer

	// Configuration holds one chirality descriptor per stem unit.
	Configuration []Configuration

	// Stem holds the base stereochemistry series, usually one value.
	Stem []Stem

	// SuperClass fixes the backbone size.
	SuperClass SuperClass

	// RingStart and RingEnd bound the ring; 0,0 means open chain and
	// UnknownPosition an undetermined ring.
	RingStart int
	RingEnd   int

	// Modifications maps backbone position to applied modifications.
	Modifications *MultiMap[Modification]

	// Composition is the residue's own element bag, net of all losses paid
	// to formed bonds and applied modifications.
	Composition composition.Composition

	// ReducedEnd marks a reduced reducing terminus, nil when absent.
	ReducedEnd *ReducedEnd

	// MaybeCyclic is set by Glycan.Clone when a repeated node id suggests
	// the source graph contains a cycle.
	MaybeCyclic bool

	id               int64
	links            *MultiMap[*Link]
	substituentLinks *MultiMap[*Link]
}

// MonosaccharideOption configures a new residue.
type MonosaccharideOption func(*Monosaccharide)

// WithAnomer sets the anomeric descriptor.
func WithAnomer(a Anomer) MonosaccharideOption {
	return func(m *Monosaccharide) { m.Anomer = a }
}

// WithConfiguration sets the chirality tuple.
func WithConfiguration(cfg ...Configuration) MonosaccharideOption {
	return func(m *Monosaccharide) { m.Configuration = cfg }
}

// WithStem sets the stem tuple.
func WithStem(stems ...Stem) MonosaccharideOption {
	return func(m *Monosaccharide) { m.Stem = stems }
}

// WithRing sets the ring bounds.
func WithRing(start, end int) MonosaccharideOption {
	return func(m *Monosaccharide) { m.RingStart, m.RingEnd = start, end }
}

// WithID fixes the residue id instead of drawing a generated one.
func WithID(id int64) MonosaccharideOption {
	return func(m *Monosaccharide) { m.id = id }
}

// WithComposition overrides the superclass base composition.
func WithComposition(c composition.Composition) MonosaccharideOption {
	return func(m *Monosaccharide) { m.Composition = c.Clone() }
}

// NewMonosaccharide builds a residue of the given superclass. Descriptors
// default to unknown, the ring to undetermined, and the composition to the
// superclass base (one CH2O per backbone carbon).
func NewMonosaccharide(superclass SuperClass, opts ...MonosaccharideOption) *Monosaccharide {
	m := &Monosaccharide{
		Anomer:           AnomerUnknown,
		Configuration:    []Configuration{ConfigUnknown},
		Stem:             []Stem{StemUnknown},
		SuperClass:       superclass,
		RingStart:        UnknownPosition,
		RingEnd:          UnknownPosition,
		Modifications:    NewMultiMap[Modification](),
		links:            NewMultiMap[*Link](),
		substituentLinks: NewMultiMap[*Link](),
	}
	if base, ok := superClassComposition[superclass]; ok {
		m.Composition = base.Clone()
	} else {
		m.Composition = composition.New()
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.id == 0 {
		m.id = nextNodeID()
	}

	return m
}

// ID returns the residue id.
func (m *Monosaccharide) ID() int64 { return m.id }

// SetID overwrites the residue id.
func (m *Monosaccharide) SetID(id int64) { m.id = id }

// Links exposes the backbone bond multimap. Callers must not mutate it.
func (m *Monosaccharide) Links() *MultiMap[*Link] { return m.links }

// SubstituentLinks exposes the substituent bond multimap. Callers must not
// mutate it.
func (m *Monosaccharide) SubstituentLinks() *MultiMap[*Link] { return m.substituentLinks }

// Order returns the number of bonds on this residue, substituent bonds
// included.
func (m *Monosaccharide) Order() int {
	return m.links.Len() + m.substituentLinks.Len()
}

// RingType classifies the ring size implied by the ring bounds.
func (m *Monosaccharide) RingType() RingType {
	if m.RingStart == UnknownPosition || m.RingEnd == UnknownPosition {
		return RingUnknown
	}
	switch m.RingEnd - m.RingStart {
	case 4:
		return RingPyranose
	case 3:
		return RingFuranose
	case 0:
		return RingOpen
	default:
		return RingUnknown
	}
}

// IsOccupied returns the number of occupants at position. A keto
// modification does not block its carbonyl carbon, and unknown positions
// are always available. Positions outside the backbone yield
// ErrPositionOutOfRange.
func (m *Monosaccharide) IsOccupied(position int) (int, error) {
	if position == UnknownPosition {
		return 0, nil
	}
	if size := m.SuperClass.Cardinality(); position < 1 || (size > 0 && position > size) {
		return 0, fmt.Errorf("%w: %d on %s backbone", ErrPositionOutOfRange, position, m.SuperClass)
	}

	n := m.links.CountAt(position) + m.substituentLinks.CountAt(position)
	for _, mod := range m.Modifications.Get(position) {
		if mod != ModKeto {
			n++
		}
	}

	return n, nil
}

// OpenAttachmentSites lists the backbone positions holding at most
// maxOccupancy occupants, excluding the ring-closing carbon, plus the
// number of occupants sitting at unknown positions. When any occupant has
// an unknown position (or the ring end is undetermined) concrete sites
// cannot be promised, and every open site is reported as UnknownPosition.
func (m *Monosaccharide) OpenAttachmentSites(maxOccupancy int) (sites []int, unknowns int) {
	size := m.SuperClass.Cardinality()
	slots := make([]int, size)
	count := func(position int, mod Modification) {
		if mod == ModKeto {
			return
		}
		if position == UnknownPosition {
			unknowns++
		} else if position >= 1 && position <= size {
			slots[position-1]++
		}
	}
	for _, e := range m.Modifications.Items() {
		count(e.Position, e.Value)
	}
	for _, e := range m.links.Items() {
		count(e.Position, "")
	}
	for _, e := range m.substituentLinks.Items() {
		count(e.Position, "")
	}

	cannotDetermine := unknowns > 0 || m.RingEnd == UnknownPosition
	for i, occupied := range slots {
		if occupied <= maxOccupancy && i+1 != m.RingEnd {
			if cannotDetermine {
				sites = append(sites, UnknownPosition)
			} else {
				sites = append(sites, i+1)
			}
		}
	}
	if m.RingEnd == UnknownPosition && len(sites) > 0 {
		sites = sites[:len(sites)-1]
	}

	return sites, unknowns
}

// AddModification applies mod at position, charging its composition delta.
func (m *Monosaccharide) AddModification(mod Modification, position int) error {
	delta, ok := modificationDelta[mod]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownModification, mod)
	}
	occ, err := m.IsOccupied(position)
	if err != nil {
		return err
	}
	if occ > 0 {
		return fmt.Errorf("%w: node %d position %d", ErrSiteOccupied, m.id, position)
	}

	m.Composition.Add(delta)
	m.Modifications.Append(position, mod)

	return nil
}

// DropModification removes one instance of mod from position and refunds
// its composition delta.
func (m *Monosaccharide) DropModification(mod Modification, position int) error {
	if !m.Modifications.Delete(position, func(v Modification) bool { return v == mod }) {
		return fmt.Errorf("%w: %q at %d", ErrModificationNotFound, mod, position)
	}
	m.Composition.Sub(modificationDelta[mod])

	return nil
}

// AddSubstituent bonds sub below this residue at position. The parent-side
// loss defaults to the group's attachment table entry and the child side to
// one hydrogen; the group's own attachment position is 1.
func (m *Monosaccharide) AddSubstituent(sub *Substituent, position int, opts ...LinkOption) error {
	_, err := NewLink(m, sub, position, 1, opts...)

	return err
}

// AddMonosaccharide bonds child below this residue (glycosidic defaults:
// the parent loses a hydroxyl, the child a hydrogen).
func (m *Monosaccharide) AddMonosaccharide(child *Monosaccharide, parentPosition, childPosition int, opts ...LinkOption) error {
	_, err := NewLink(m, child, parentPosition, childPosition, opts...)

	return err
}

// DropSubstituent detaches the first substituent bond at position, or the
// bond to sub when sub is non-nil. With refund, both endpoints regain their
// losses.
func (m *Monosaccharide) DropSubstituent(position int, sub *Substituent, refund bool) error {
	for _, e := range m.substituentLinks.Items() {
		if e.Position != position {
			continue
		}
		if sub != nil && e.Value.Child != Node(sub) {
			continue
		}
		_, _, err := e.Value.Break(refund)

		return err
	}

	return fmt.Errorf("%w: no substituent at %d", ErrLinkNotFound, position)
}

// DropMonosaccharide detaches the first child bond at position, or the bond
// to child when child is non-nil.
func (m *Monosaccharide) DropMonosaccharide(position int, child *Monosaccharide, refund bool) error {
	for _, e := range m.links.Items() {
		if e.Position != position || e.Value.IsChild(m) {
			continue
		}
		if child != nil && e.Value.Child != Node(child) {
			continue
		}
		_, _, err := e.Value.Break(refund)

		return err
	}

	return fmt.Errorf("%w: no child at %d", ErrLinkNotFound, position)
}

// Children returns (position, child residue) for every backbone bond in
// which this residue is the parent, in insertion order.
func (m *Monosaccharide) Children() []Entry[*Monosaccharide] {
	var out []Entry[*Monosaccharide]
	for _, e := range m.links.Items() {
		if e.Value.IsChild(m) {
			continue
		}
		if child, ok := e.Value.Child.(*Monosaccharide); ok {
			out = append(out, Entry[*Monosaccharide]{Position: e.Position, Value: child})
		}
	}

	return out
}

// Parents returns (position, parent residue) for every backbone bond in
// which this residue is the child.
func (m *Monosaccharide) Parents() []Entry[*Monosaccharide] {
	var out []Entry[*Monosaccharide]
	for _, e := range m.links.Items() {
		if !e.Value.IsChild(m) {
			continue
		}
		if parent, ok := e.Value.Parent.(*Monosaccharide); ok {
			out = append(out, Entry[*Monosaccharide]{Position: e.Position, Value: parent})
		}
	}

	return out
}

// Substituents returns (position, group) for every substituent bond.
func (m *Monosaccharide) Substituents() []Entry[*Substituent] {
	var out []Entry[*Substituent]
	for _, e := range m.substituentLinks.Items() {
		if sub, ok := e.Value.Child.(*Substituent); ok {
			out = append(out, Entry[*Substituent]{Position: e.Position, Value: sub})
		}
	}

	return out
}

// TotalComposition returns the residue composition plus every attached
// substituent and the reducing-end shift, as a fresh bag.
func (m *Monosaccharide) TotalComposition() composition.Composition {
	total := m.Composition.Clone()
	for _, e := range m.Substituents() {
		total.Add(e.Value.TotalComposition())
	}
	if m.ReducedEnd != nil {
		total.Add(m.ReducedEnd.Composition)
	}

	return total
}

// Mass returns the monoisotopic residue mass, substituents included.
func (m *Monosaccharide) Mass() (float64, error) {
	return m.TotalComposition().Mass()
}

// Depth returns the height of the subtree rooted here: 1 for a leaf.
// Cycle-safe through an id visited set.
func (m *Monosaccharide) Depth() int {
	return m.depth(make(map[int64]struct{}))
}

func (m *Monosaccharide) depth(visited map[int64]struct{}) int {
	if _, seen := visited[m.id]; seen {
		return 0
	}
	visited[m.id] = struct{}{}
	d := 1
	for _, child := range m.Children() {
		if cd := 1 + child.Value.depth(visited); cd > d {
			d = cd
		}
	}

	return d
}

// Clone copies the residue: descriptors, modifications, substituents (deep)
// and the reducing end. Backbone bonds are not copied. preserveID keeps the
// original node ids throughout.
func (m *Monosaccharide) Clone(preserveID bool) *Monosaccharide {
	out := &Monosaccharide{
		Anomer:           m.Anomer,
		Configuration:    append([]Configuration(nil), m.Configuration...),
		Stem:             append([]Stem(nil), m.Stem...),
		SuperClass:       m.SuperClass,
		RingStart:        m.RingStart,
		RingEnd:          m.RingEnd,
		Modifications:    m.Modifications.Clone(),
		Composition:      m.Composition.Clone(),
		ReducedEnd:       m.ReducedEnd.Clone(preserveID),
		id:               nextNodeID(),
		links:            NewMultiMap[*Link](),
		substituentLinks: NewMultiMap[*Link](),
	}
	if preserveID {
		out.id = m.id
	}
	for _, e := range m.substituentLinks.Items() {
		l := e.Value
		sub, ok := l.Child.(*Substituent)
		if !ok {
			continue
		}
		dup := sub.Clone(preserveID)
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

	return out
}

func (m *Monosaccharide) attach(l *Link, position int, asParent bool) {
	if asParent && l.IsSubstituentLink() {
		m.substituentLinks.Append(position, l)

		return
	}
	m.links.Append(position, l)
}

func (m *Monosaccharide) detach(l *Link, position int, asParent bool) bool {
	if asParent && l.IsSubstituentLink() {
		return m.substituentLinks.Delete(position, func(v *Link) bool { return v == l })
	}

	return m.links.Delete(position, func(v *Link) bool { return v == l })
}

func (m *Monosaccharide) applyLoss(c composition.Composition)  { m.Composition.Sub(c) }
func (m *Monosaccharide) refundLoss(c composition.Composition) { m.Composition.Add(c) }
