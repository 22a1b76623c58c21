// Package quotient: elements of a finite quotient.
package quotient

import (
	"github.com/katalvlaran/stallings/freegroup"
)

// Element is one element of a finite quotient group, held as the canonical
// free-group representative of its kernel coset. Two elements are equal
// exactly when their representatives coincide.
type Element struct {
	group *Group
	rep   freegroup.Element
}

// NewElement names an element by any lift word; the word is reduced to the
// canonical coset representative. Words outside the lift yield ErrNotInGroup.
func (g *Group) NewElement(w freegroup.Element) (Element, error) {
	rep, err := g.canonicalRep(w)
	if err != nil {
		return Element{}, err
	}

	return Element{group: g, rep: rep}, nil
}

// Group returns the quotient this element belongs to.
func (e Element) Group() *Group { return e.group }

// Rep returns the canonical free-group representative.
func (e Element) Rep() freegroup.Element { return e.rep }

// IsIdentity reports whether e is the identity coset.
func (e Element) IsIdentity() bool { return e.rep.IsIdentity() }

// checkGroup panics on elements of different quotient instances; mixing
// them is a programming error.
func (e Element) checkGroup(f Element) {
	if e.group != f.group {
		panic(ErrGroupMismatch)
	}
}

// Mul returns e·f, canonicalized.
func (e Element) Mul(f Element) Element {
	e.checkGroup(f)
	rep, err := e.group.canonicalRep(e.rep.Mul(f.rep))
	if err != nil {
		panic(err) // products of lift words stay in the lift
	}

	return Element{group: e.group, rep: rep}
}

// Inverse returns e⁻¹.
func (e Element) Inverse() Element {
	rep, err := e.group.canonicalRep(e.rep.Inverse())
	if err != nil {
		panic(err)
	}

	return Element{group: e.group, rep: rep}
}

// Pow returns eⁿ for any integer n.
func (e Element) Pow(n int) Element {
	if n < 0 {
		return e.Inverse().Pow(-n)
	}
	out := e.group.Identity()
	sq := e
	for n > 0 {
		if n%2 == 1 {
			out = out.Mul(sq)
		}
		sq = sq.Mul(sq)
		n /= 2
	}

	return out
}

// Equal reports whether e and f are the same coset of the same quotient.
func (e Element) Equal(f Element) bool {
	return e.group == f.group && e.rep.Equal(f.rep)
}

// Order returns the least n >= 1 with eⁿ equal to the identity. Finite by
// construction of the group.
func (e Element) Order() int {
	id := e.group.Identity()
	cur := e
	n := 1
	for !cur.Equal(id) {
		cur = cur.Mul(e)
		n++
	}

	return n
}

// Conjugate returns by·e·by⁻¹.
func (e Element) Conjugate(by Element) Element {
	return by.Mul(e).Mul(by.Inverse())
}

// Conjugates returns the conjugacy class of e, one entry per group element
// (with repetitions, in Elements order).
func (e Element) Conjugates() []Element {
	elems := e.group.Elements()
	out := make([]Element, len(elems))
	for i, g := range elems {
		out[i] = e.Conjugate(g)
	}

	return out
}

// String renders the canonical representative.
func (e Element) String() string { return e.rep.String() }
