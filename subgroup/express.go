// Package subgroup: rewriting members over the free basis.
package subgroup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stallings/freegroup"
)

// BasisFactor is one syllable of a basis word: a basis generator, its
// position in Gens(), and a non-zero exponent.
type BasisFactor struct {
	Gen   freegroup.Element
	Index int
	Pow   int
}

// BasisWord is a member of a subgroup written over the subgroup's free
// basis, reduced (no two adjacent factors share a generator).
type BasisWord struct {
	group   *freegroup.Group
	factors []BasisFactor
}

// Factors returns a copy of the factor sequence.
func (b BasisWord) Factors() []BasisFactor {
	out := make([]BasisFactor, len(b.factors))
	copy(out, b.factors)

	return out
}

// IsIdentity reports whether the basis word is empty.
func (b BasisWord) IsIdentity() bool { return len(b.factors) == 0 }

// Evaluate multiplies the basis word back out into an ambient element.
func (b BasisWord) Evaluate() freegroup.Element {
	out := b.group.Identity()
	for _, f := range b.factors {
		out = out.Mul(f.Gen.Pow(f.Pow))
	}

	return out
}

// String renders factors as (a^2)^1 * (b*a*b^-1)^-2, or "1" when empty.
func (b BasisWord) String() string {
	if b.IsIdentity() {
		return "1"
	}
	parts := make([]string, len(b.factors))
	for i, f := range b.factors {
		parts[i] = "(" + f.Gen.String() + ")^" + strconv.Itoa(f.Pow)
	}

	return strings.Join(parts, " * ")
}

// Express rewrites a member over the free basis: the walk spelling w visits
// a sequence of edges, tree edges contribute nothing (the labels telescope),
// and each non-tree edge contributes its basis generator, signed by the
// traversal direction. Returns ErrNotContained when w is not a member.
func (s *Subgroup) Express(w freegroup.Element) (BasisWord, error) {
	if w.Group() != s.group {
		return BasisWord{}, fmt.Errorf("%w: expressing %s", ErrGroupMismatch, w)
	}
	steps, end, ok := s.graph.Walk(s.graph.Basepoint(), w)
	if !ok || end != s.graph.Basepoint() {
		return BasisWord{}, fmt.Errorf("%w: %s", ErrNotContained, w)
	}

	b := BasisWord{group: s.group}
	for _, st := range steps {
		gen, nonTree := s.byEdge[st.Edge]
		if !nonTree {
			continue
		}
		b.factors = appendFactor(b.factors, gen, s.basisIndex(gen), st.Sign)
	}

	return b, nil
}

// appendFactor appends one signed basis generator, merging and cancelling at
// the junction. Sound because the basis is free.
func appendFactor(factors []BasisFactor, gen freegroup.Element, idx, pow int) []BasisFactor {
	if n := len(factors); n > 0 && factors[n-1].Index == idx {
		factors[n-1].Pow += pow
		if factors[n-1].Pow == 0 {
			factors = factors[:n-1]
		}

		return factors
	}

	return append(factors, BasisFactor{Gen: gen, Index: idx, Pow: pow})
}
