// This file implements Link, AmbiguousLink, and the LinkMask guard.
package core

import (
	"fmt"

	"github.com/glykit/glykit/composition"
)

// Link is a typed parent→child bond. Forming the bond costs each endpoint a
// composition loss (for a glycosidic bond, a hydroxyl from the parent and a
// hydrogen from the child — one water in total); breaking it with refund
// restores those losses exactly.
type Link struct {
	// Parent and Child are the bond's endpoints.
	Parent Node
	Child  Node

	// ParentPosition and ChildPosition are the backbone attachment sites;
	// UnknownPosition when undetermined.
	ParentPosition int
	ChildPosition  int

	// ParentLoss and ChildLoss are the compositions each endpoint paid when
	// the bond formed.
	ParentLoss composition.Composition
	ChildLoss  composition.Composition

	// Label carries the branch label assigned by Glycan.LabelBranches.
	Label string

	id       int64
	attached bool
}

// LinkOption configures a bond before it forms.
type LinkOption func(*linkConfig)

type linkConfig struct {
	parentLoss   composition.Composition
	childLoss    composition.Composition
	maxOccupancy int
	id           int64
}

// WithParentLoss overrides the parent-side composition loss.
func WithParentLoss(c composition.Composition) LinkOption {
	return func(cfg *linkConfig) { cfg.parentLoss = c.Clone() }
}

// WithChildLoss overrides the child-side composition loss.
func WithChildLoss(c composition.Composition) LinkOption {
	return func(cfg *linkConfig) { cfg.childLoss = c.Clone() }
}

// WithMaxOccupancy raises the number of occupants a site may already hold
// before the bond is refused. Default 0: only free sites accept bonds.
func WithMaxOccupancy(n int) LinkOption {
	return func(cfg *linkConfig) { cfg.maxOccupancy = n }
}

// WithLinkID fixes the new bond's id instead of drawing a generated one.
func WithLinkID(id int64) LinkOption {
	return func(cfg *linkConfig) { cfg.id = id }
}

// buildLink assembles an unapplied Link value and the occupancy limit.
// Callers must apply the link at its final address: attachment tables store
// the pointer identity.
func buildLink(parent, child Node, parentPosition, childPosition int, opts ...LinkOption) (Link, int) {
	cfg := linkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.parentLoss == nil {
		if sub, ok := child.(*Substituent); ok {
			cfg.parentLoss = sub.AttachmentCompositionLoss()
		} else {
			cfg.parentLoss = defaultParentLoss.Clone()
		}
	}
	if cfg.childLoss == nil {
		cfg.childLoss = defaultChildLoss.Clone()
	}
	if cfg.id == 0 {
		cfg.id = nextNodeID()
	}

	return Link{
		Parent:         parent,
		Child:          child,
		ParentPosition: parentPosition,
		ChildPosition:  childPosition,
		ParentLoss:     cfg.parentLoss,
		ChildLoss:      cfg.childLoss,
		id:             cfg.id,
	}, cfg.maxOccupancy
}

// NewLink forms a bond between parent and child and applies it immediately.
// Losses default to the glycosidic hydroxyl/hydrogen split; for substituent
// children the parent-side default comes from the group's attachment table.
// The structure is untouched when an occupancy check fails.
func NewLink(parent, child Node, parentPosition, childPosition int, opts ...LinkOption) (*Link, error) {
	l, maxOccupancy := buildLink(parent, child, parentPosition, childPosition, opts...)
	lp := &l
	if err := lp.apply(maxOccupancy); err != nil {
		return nil, err
	}

	return lp, nil
}

// ID returns the link id.
func (l *Link) ID() int64 { return l.id }

// SetID overwrites the link id.
func (l *Link) SetID(id int64) { l.id = id }

// IsParent reports whether node is the bond's parent endpoint.
func (l *Link) IsParent(node Node) bool { return l.Parent == node }

// IsChild reports whether node is the bond's child endpoint.
func (l *Link) IsChild(node Node) bool { return l.Child == node }

// To returns the endpoint opposite node, or nil if node is not an endpoint.
func (l *Link) To(node Node) Node {
	switch {
	case l.Parent == node:
		return l.Child
	case l.Child == node:
		return l.Parent
	default:
		return nil
	}
}

// IsSubstituentLink reports whether the bond hangs a substituent off a
// monosaccharide backbone.
func (l *Link) IsSubstituentLink() bool {
	_, childIsSub := l.Child.(*Substituent)
	_, parentIsMono := l.Parent.(*Monosaccharide)

	return childIsSub && parentIsMono
}

// IsAttached reports whether the bond currently joins its endpoints. With
// deep, the attachment tables of both endpoints are consulted instead of
// the cached flag.
func (l *Link) IsAttached(deep ...bool) bool {
	if len(deep) == 0 || !deep[0] {
		return l.attached
	}

	foundParent, foundChild := false, false
	if m, ok := l.Parent.(*Monosaccharide); ok {
		for _, e := range m.links.Items() {
			if e.Value == l {
				foundParent = true
			}
		}
		for _, e := range m.substituentLinks.Items() {
			if e.Value == l {
				foundParent = true
			}
		}
	} else if s, ok := l.Parent.(*Substituent); ok {
		for _, e := range s.links.Items() {
			if e.Value == l {
				foundParent = true
			}
		}
	}
	switch c := l.Child.(type) {
	case *Monosaccharide:
		for _, e := range c.links.Items() {
			if e.Value == l {
				foundChild = true
			}
		}
	case *Substituent:
		for _, e := range c.links.Items() {
			if e.Value == l {
				foundChild = true
			}
		}
	}

	return foundParent && foundChild
}

// apply validates occupancy on both endpoints, pays the losses, and records
// the bond in both attachment tables.
func (l *Link) apply(maxOccupancy int) error {
	if l.attached {
		return fmt.Errorf("core: link %d already attached", l.id)
	}
	if err := checkOccupancy(l.Parent, l.ParentPosition, maxOccupancy); err != nil {
		return err
	}
	if err := checkOccupancy(l.Child, l.ChildPosition, maxOccupancy); err != nil {
		return err
	}

	l.Parent.applyLoss(l.ParentLoss)
	l.Child.applyLoss(l.ChildLoss)
	l.attachRaw()

	return nil
}

// attachRaw records the bond in both endpoint tables without touching
// compositions. Clone paths use it to rebuild already-paid bonds.
func (l *Link) attachRaw() {
	l.Parent.attach(l, l.ParentPosition, true)
	l.Child.attach(l, l.ChildPosition, false)
	l.attached = true
}

// CloneBetween duplicates the bond between a new parent and child, keeping
// positions, losses, label and id. The endpoints' compositions are assumed
// to have already paid the losses (as clones of bonded nodes have), so
// nothing is charged again.
func (l *Link) CloneBetween(parent, child Node) *Link {
	nl := &Link{
		Parent:         parent,
		Child:          child,
		ParentPosition: l.ParentPosition,
		ChildPosition:  l.ChildPosition,
		ParentLoss:     l.ParentLoss.Clone(),
		ChildLoss:      l.ChildLoss.Clone(),
		Label:          l.Label,
		id:             l.id,
	}
	nl.attachRaw()

	return nl
}

// Break detaches the bond. With refund, the losses paid at formation are
// returned to both endpoints. Returns the two endpoints for convenience.
func (l *Link) Break(refund bool) (parent, child Node, err error) {
	if !l.attached {
		return nil, nil, ErrLinkDetached
	}

	l.Parent.detach(l, l.ParentPosition, true)
	l.Child.detach(l, l.ChildPosition, false)
	l.attached = false
	if refund {
		l.Refund()
	}

	return l.Parent, l.Child, nil
}

// Refund returns the formation losses to both endpoints.
func (l *Link) Refund() {
	l.Parent.refundLoss(l.ParentLoss)
	l.Child.refundLoss(l.ChildLoss)
}

// Reconnect reapplies a broken bond. With refund, the losses are charged
// again (matching a Break with refund).
func (l *Link) Reconnect(refund bool) error {
	if l.attached {
		return fmt.Errorf("core: link %d already attached", l.id)
	}
	if refund {
		l.Parent.applyLoss(l.ParentLoss)
		l.Child.applyLoss(l.ChildLoss)
	}
	l.attachRaw()

	return nil
}

// checkOccupancy rejects attachment when the site already holds more than
// maxOccupancy occupants. Unknown positions are always open.
func checkOccupancy(node Node, position int, maxOccupancy int) error {
	switch n := node.(type) {
	case *Monosaccharide:
		occ, err := n.IsOccupied(position)
		if err != nil {
			return err
		}
		if occ > maxOccupancy {
			return fmt.Errorf("%w: node %d position %d", ErrSiteOccupied, n.ID(), position)
		}
	case *Substituent:
		if n.IsOccupied(position) > maxOccupancy {
			return fmt.Errorf("%w: node %d position %d", ErrSiteOccupied, n.ID(), position)
		}
	}

	return nil
}
