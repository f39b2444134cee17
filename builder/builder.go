// This file implements the sticky-error structure assembler.
package builder

import (
	"errors"
	"fmt"

	"github.com/glykit/glykit/core"
)

// Sentinel errors reported by Build.
var (
	// ErrNoRoot means no declared residue is parentless.
	ErrNoRoot = errors.New("builder: structure has no parentless residue")

	// ErrBadIndex means a bond referenced an undeclared node index.
	ErrBadIndex = errors.New("builder: node index out of range")

	// ErrBadParent means a bond named a substituent as its parent.
	ErrBadParent = errors.New("builder: substituent parents are not supported")
)

// Builder accumulates residues, substituents and bonds, then produces an
// indexed Glycan. The first error sticks: later calls are no-ops and Build
// reports it.
type Builder struct {
	nodes []core.Node
	err   error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Err reports the first failure, nil while the build is healthy.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Residue declares a monosaccharide of the given superclass and returns
// its index. Indices start at 1 and double as node ids.
func (b *Builder) Residue(superclass core.SuperClass, opts ...core.MonosaccharideOption) int {
	id := int64(len(b.nodes) + 1)
	withID := make([]core.MonosaccharideOption, 0, len(opts)+1)
	withID = append(withID, opts...)
	withID = append(withID, core.WithID(id))
	b.nodes = append(b.nodes, core.NewMonosaccharide(superclass, withID...))

	return int(id)
}

// Substituent declares a registered group by name and returns its index.
// Unknown names stick as the build error.
func (b *Builder) Substituent(name string) int {
	id := len(b.nodes) + 1
	s, err := core.NewSubstituent(name)
	if err != nil {
		b.fail(err)
		s = core.NewCustomSubstituent(name, nil, nil)
	}
	s.SetID(int64(id))
	b.nodes = append(b.nodes, s)

	return id
}

// Modify adds a modification at position on the residue at index res.
func (b *Builder) Modify(res, position int, mod core.Modification) {
	if b.err != nil {
		return
	}
	m, err := b.monosaccharide(res)
	if err != nil {
		b.fail(err)

		return
	}
	if err := m.AddModification(mod, position); err != nil {
		b.fail(err)
	}
}

// Reduce puts a reducing end on the residue at index res. comp nil means
// the plain two-hydrogen reduction.
func (b *Builder) Reduce(res int, comp *core.ReducedEnd) {
	if b.err != nil {
		return
	}
	m, err := b.monosaccharide(res)
	if err != nil {
		b.fail(err)

		return
	}
	if comp == nil {
		comp = core.NewReducedEnd(nil)
	}
	m.ReducedEnd = comp
}

// Bond attaches the node at index child under the residue at index parent.
// Monosaccharide children form glycosidic bonds with the default
// hydroxyl/hydrogen losses; substituent children pay the group's
// registered attachment loss and childPos is ignored (groups bond through
// their first site).
func (b *Builder) Bond(parent, parentPos, child, childPos int, opts ...core.LinkOption) {
	if b.err != nil {
		return
	}
	p, err := b.monosaccharide(parent)
	if err != nil {
		b.fail(err)

		return
	}
	c, err := b.node(child)
	if err != nil {
		b.fail(err)

		return
	}

	switch c := c.(type) {
	case *core.Monosaccharide:
		err = p.AddMonosaccharide(c, parentPos, childPos, opts...)
	case *core.Substituent:
		err = p.AddSubstituent(c, parentPos, opts...)
	default:
		err = fmt.Errorf("%w: index %d", ErrBadIndex, child)
	}
	if err != nil {
		b.fail(err)
	}
}

// AmbiguousBond attaches child under parent at one of parentPositions,
// whichever is open first; the candidate set is kept on the link.
func (b *Builder) AmbiguousBond(parent int, parentPositions []int, child, childPos int, opts ...core.LinkOption) {
	if b.err != nil {
		return
	}
	p, err := b.monosaccharide(parent)
	if err != nil {
		b.fail(err)

		return
	}
	c, err := b.node(child)
	if err != nil {
		b.fail(err)

		return
	}

	al, err := core.NewAmbiguousLink(
		[]core.Node{p}, []core.Node{c}, parentPositions, []int{childPos}, opts...)
	if err != nil {
		b.fail(err)

		return
	}
	if err := al.FindOpenPosition(); err != nil {
		b.fail(err)
	}
}

// Node returns the declared node at index i.
func (b *Builder) Node(i int) (core.Node, error) {
	return b.node(i)
}

// Build returns the assembled structure rooted at the first parentless
// residue, indexed depth-first.
func (b *Builder) Build() (*core.Glycan, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, n := range b.nodes {
		m, ok := n.(*core.Monosaccharide)
		if !ok {
			continue
		}
		if len(m.Parents()) == 0 {
			return core.NewGlycan(m), nil
		}
	}

	return nil, ErrNoRoot
}

// MustBuild is Build for known-good definitions; it panics on failure.
func (b *Builder) MustBuild() *core.Glycan {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}

func (b *Builder) node(i int) (core.Node, error) {
	if i < 1 || i > len(b.nodes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadIndex, i, len(b.nodes))
	}

	return b.nodes[i-1], nil
}

func (b *Builder) monosaccharide(i int) (*core.Monosaccharide, error) {
	n, err := b.node(i)
	if err != nil {
		return nil, err
	}
	m, ok := n.(*core.Monosaccharide)
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrBadParent, i)
	}

	return m, nil
}
