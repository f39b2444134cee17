// This file implements AmbiguousLink and the LinkMask guard.
package core

import "fmt"

// LinkConfiguration is one concrete resolution of an ambiguous bond.
type LinkConfiguration struct {
	Parent         Node
	Child          Node
	ParentPosition int
	ChildPosition  int
}

// AmbiguousLink is a bond whose endpoints or positions are only known to
// lie within candidate sets. It behaves as a Link in whichever
// configuration is currently applied; Reconfigure moves it between
// candidates without losing composition bookkeeping.
type AmbiguousLink struct {
	Link

	// ParentChoices and ChildChoices are the candidate endpoints. The
	// applied Parent/Child always appear among them.
	ParentChoices []Node
	ChildChoices  []Node

	// ParentPositionChoices and ChildPositionChoices are the candidate
	// sites, aligned with nothing: any pairing is admissible.
	ParentPositionChoices []int
	ChildPositionChoices  []int
}

// NewAmbiguousLink forms the bond in its first candidate configuration.
func NewAmbiguousLink(parents []Node, children []Node, parentPositions, childPositions []int, opts ...LinkOption) (*AmbiguousLink, error) {
	if len(parents) == 0 || len(children) == 0 || len(parentPositions) == 0 || len(childPositions) == 0 {
		return nil, fmt.Errorf("%w: empty candidate set", ErrNoOpenPosition)
	}

	base, maxOccupancy := buildLink(parents[0], children[0], parentPositions[0], childPositions[0], opts...)
	al := &AmbiguousLink{
		Link:                  base,
		ParentChoices:         parents,
		ChildChoices:          children,
		ParentPositionChoices: parentPositions,
		ChildPositionChoices:  childPositions,
	}
	// Apply at the embedded address: endpoint tables store pointer identity.
	if err := al.Link.apply(maxOccupancy); err != nil {
		return nil, err
	}

	return al, nil
}

// Configurations enumerates the full candidate cross product.
func (al *AmbiguousLink) Configurations() []LinkConfiguration {
	out := make([]LinkConfiguration, 0,
		len(al.ParentChoices)*len(al.ChildChoices)*len(al.ParentPositionChoices)*len(al.ChildPositionChoices))
	for _, p := range al.ParentChoices {
		for _, c := range al.ChildChoices {
			for _, pp := range al.ParentPositionChoices {
				for _, cp := range al.ChildPositionChoices {
					out = append(out, LinkConfiguration{Parent: p, Child: c, ParentPosition: pp, ChildPosition: cp})
				}
			}
		}
	}

	return out
}

// Reconfigure breaks the current bond (refunding losses) and reapplies it
// in the given configuration.
func (al *AmbiguousLink) Reconfigure(cfg LinkConfiguration) error {
	if al.attached {
		if _, _, err := al.Break(true); err != nil {
			return err
		}
	}
	al.Parent = cfg.Parent
	al.Child = cfg.Child
	al.ParentPosition = cfg.ParentPosition
	al.ChildPosition = cfg.ChildPosition

	return al.Reconnect(true)
}

// FindOpenPosition moves the bond to the first candidate parent position
// that is currently unoccupied. ErrNoOpenPosition when every site is taken.
func (al *AmbiguousLink) FindOpenPosition() error {
	wasAttached := al.attached
	if wasAttached {
		if _, _, err := al.Break(true); err != nil {
			return err
		}
	}

	for _, pos := range al.ParentPositionChoices {
		if err := checkOccupancy(al.Parent, pos, 0); err != nil {
			continue
		}
		al.ParentPosition = pos

		return al.Reconnect(true)
	}

	// Leave the structure as found.
	if wasAttached {
		_ = al.Reconnect(true)
	}

	return ErrNoOpenPosition
}

// LinkMask is a scoped guard over temporarily detached bonds. Mask breaks
// every given link with refund; Restore reattaches them in reverse order
// and is safe to call more than once, so a deferred Restore covers every
// exit path.
type LinkMask struct {
	links    []*Link
	restored bool
}

// MaskLinks breaks each link (refunding losses) and returns the guard.
// Already broken links are recorded but not re-broken.
func MaskLinks(links ...*Link) *LinkMask {
	m := &LinkMask{links: links}
	for _, l := range links {
		if l.attached {
			_, _, _ = l.Break(true)
		}
	}

	return m
}

// Restore reattaches every masked link. Idempotent.
func (m *LinkMask) Restore() {
	if m.restored {
		return
	}
	m.restored = true
	for i := len(m.links) - 1; i >= 0; i-- {
		if !m.links[i].attached {
			_ = m.links[i].Reconnect(true)
		}
	}
}
