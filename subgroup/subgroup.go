// Package subgroup: the Subgroup value, constructors, and membership.
package subgroup

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stallings/coset"
	"github.com/katalvlaran/stallings/freegroup"
)

// Subgroup is a finitely generated subgroup of a free group, held as a
// folded, canonically labeled coset graph together with the derived free
// basis. A Subgroup is immutable after construction: every operation that
// would change it returns a fresh value.
type Subgroup struct {
	group  *freegroup.Group
	graph  *coset.Graph
	gens   []freegroup.Element
	byEdge map[*coset.Edge]freegroup.Element
	genIdx map[string]int
}

// New builds the subgroup generated by words. Duplicate, inverse, and
// redundant generators are welcome; folding absorbs them.
func New(group *freegroup.Group, words ...freegroup.Element) (*Subgroup, error) {
	g := coset.NewGraph(group)
	for _, w := range words {
		if err := g.PushWord(w); err != nil {
			return nil, fmt.Errorf("subgroup: pushing generator %s: %w", w, err)
		}
	}

	return fromGraph(group, g), nil
}

// MustNew is New for generators known to be well formed.
func MustNew(group *freegroup.Group, words ...freegroup.Element) *Subgroup {
	s, err := New(group, words...)
	if err != nil {
		panic(err)
	}

	return s
}

// Parse builds a subgroup from generator expressions in the word syntax.
func Parse(group *freegroup.Group, exprs ...string) (*Subgroup, error) {
	words := make([]freegroup.Element, len(exprs))
	for i, expr := range exprs {
		w, err := freegroup.Parse(group, expr)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	return New(group, words...)
}

// MustParse is Parse for expressions known to be well formed.
func MustParse(group *freegroup.Group, exprs ...string) *Subgroup {
	s, err := Parse(group, exprs...)
	if err != nil {
		panic(err)
	}

	return s
}

// Full returns the whole group as a subgroup of itself (the rose graph).
func Full(group *freegroup.Group) *Subgroup {
	return MustNew(group, group.Gens()...)
}

// Trivial returns the identity subgroup (the one-vertex graph).
func Trivial(group *freegroup.Group) *Subgroup {
	return MustNew(group)
}

// fromGraph canonicalizes g and derives the basis. g must not be mutated
// afterwards; the subgroup owns it.
func fromGraph(group *freegroup.Group, g *coset.Graph) *Subgroup {
	byEdge, gens := g.CycleGenerators()
	genIdx := make(map[string]int, len(gens))
	for i, w := range gens {
		genIdx[w.String()] = i
	}

	return &Subgroup{group: group, graph: g, gens: gens, byEdge: byEdge, genIdx: genIdx}
}

// Group returns the ambient free group.
func (s *Subgroup) Group() *freegroup.Group { return s.group }

// Gens returns the free basis (Nielsen–Schreier generators), sorted by the
// word order. The slice is shared; treat it as read-only.
func (s *Subgroup) Gens() []freegroup.Element { return s.gens }

// SignedGens returns every basis word and its inverse, the conjugator set
// used when saturating under conjugation.
func (s *Subgroup) SignedGens() []freegroup.Element {
	out := make([]freegroup.Element, 0, 2*len(s.gens))
	for _, g := range s.gens {
		out = append(out, g.Inverse(), g)
	}

	return out
}

// Rank returns the rank of the subgroup as a free group.
func (s *Subgroup) Rank() int { return len(s.gens) }

// IsTrivial reports whether the subgroup is the identity subgroup.
func (s *Subgroup) IsTrivial() bool { return len(s.gens) == 0 }

// ContainsElement reports whether w belongs to the subgroup: w must trace a
// loop at the basepoint of the coset graph. Panics with ErrGroupMismatch on a
// word from another group.
func (s *Subgroup) ContainsElement(w freegroup.Element) bool {
	if w.Group() != s.group {
		panic(ErrGroupMismatch)
	}
	_, end, ok := s.graph.Walk(s.graph.Basepoint(), w)

	return ok && end == s.graph.Basepoint()
}

// ContainsSubgroup reports whether every element of o belongs to s. It
// suffices to test o's basis.
func (s *Subgroup) ContainsSubgroup(o *Subgroup) bool {
	if o.group != s.group {
		panic(ErrGroupMismatch)
	}
	for _, w := range o.gens {
		if !s.ContainsElement(w) {
			return false
		}
	}

	return true
}

// Equal reports whether s and o are the same subgroup (mutual containment).
func (s *Subgroup) Equal(o *Subgroup) bool {
	return s.ContainsSubgroup(o) && o.ContainsSubgroup(s)
}

// Copy returns an independent subgroup with the same elements, rebuilt from
// the basis.
func (s *Subgroup) Copy() *Subgroup {
	return MustNew(s.group, s.gens...)
}

// String renders the basis as <a^2, b*a*b^-1>; the trivial subgroup is <1>.
func (s *Subgroup) String() string {
	if s.IsTrivial() {
		return "<1>"
	}
	parts := make([]string, len(s.gens))
	for i, w := range s.gens {
		parts[i] = w.String()
	}

	return "<" + strings.Join(parts, ", ") + ">"
}

// basisIndex returns the position of a basis word in Gens().
func (s *Subgroup) basisIndex(w freegroup.Element) int {
	return s.genIdx[w.String()]
}
