// Package subgroup: normality tests, normal closure, and the normalizer.
package subgroup

import (
	"fmt"

	"github.com/katalvlaran/stallings/freegroup"
)

// IsNormal reports whether the subgroup is normal in the whole group:
// conjugating the basis by every ambient generator and its inverse must stay
// inside the subgroup.
func (s *Subgroup) IsNormal() bool {
	return s.closedUnderConjugation(s.group.Gens())
}

// IsNormalIn reports whether s is a normal subgroup of k. False when s is
// not contained in k at all.
func (s *Subgroup) IsNormalIn(k *Subgroup) bool {
	if k.group != s.group {
		panic(ErrGroupMismatch)
	}
	if !k.ContainsSubgroup(s) {
		return false
	}

	return s.closedUnderConjugation(k.gens)
}

// closedUnderConjugation checks h^c ∈ s for every basis word h and every
// conjugator c drawn from by and its inverses. Conjugation by a set closed
// under inversion generates conjugation by the whole subgroup.
func (s *Subgroup) closedUnderConjugation(by []freegroup.Element) bool {
	for _, c := range by {
		for _, h := range s.gens {
			if !s.ContainsElement(h.Conjugate(c)) || !s.ContainsElement(h.Conjugate(c.Inverse())) {
				return false
			}
		}
	}

	return true
}

// Normalization returns the normal closure of s in the whole group: the
// smallest normal subgroup containing s. The closure of a finitely generated
// subgroup need not be finitely generated, so the iteration is bounded;
// ErrNormalizationDepth reports a closure that did not stabilize in time.
func (s *Subgroup) Normalization(opts ...Option) (*Subgroup, error) {
	return s.normalClosure(s.group.Gens(), buildOptions(opts))
}

// NormalizationIn returns the normal closure of s inside k, bounded the same
// way as Normalization.
func (s *Subgroup) NormalizationIn(k *Subgroup, opts ...Option) (*Subgroup, error) {
	if k.group != s.group {
		return nil, ErrGroupMismatch
	}
	if !k.ContainsSubgroup(s) {
		return nil, fmt.Errorf("%w: not a subgroup of %s", ErrNotContained, k)
	}

	return s.normalClosure(k.gens, buildOptions(opts))
}

// normalClosure saturates s under conjugation by the given generators and
// their inverses. Each round folds in all missing conjugates at once; the
// loop stops at the first round that adds nothing.
func (s *Subgroup) normalClosure(by []freegroup.Element, o options) (*Subgroup, error) {
	cur := s
	for round := 0; round < o.maxRounds; round++ {
		var missing []freegroup.Element
		for _, c := range by {
			for _, h := range cur.gens {
				for _, conj := range []freegroup.Element{h.Conjugate(c), h.Conjugate(c.Inverse())} {
					if !cur.ContainsElement(conj) {
						missing = append(missing, conj)
					}
				}
			}
		}
		if len(missing) == 0 {
			return cur, nil
		}
		next, err := cur.WithAddedElements(missing...)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return nil, fmt.Errorf("%w: after %d rounds", ErrNormalizationDepth, o.maxRounds)
}

// NormalizerIn returns the normalizer of s inside k, the largest subgroup of
// k in which s is normal. Computed over the finitely many cosets of s in k,
// so s must have finite index in k.
func (s *Subgroup) NormalizerIn(k *Subgroup) (*Subgroup, error) {
	reps, err := s.RightCosetRepresentativesIn(k)
	if err != nil {
		return nil, err
	}
	var stabilizing []freegroup.Element
	for _, r := range reps {
		conj, err := s.Conjugate(r)
		if err != nil {
			return nil, err
		}
		if conj.Equal(s) {
			stabilizing = append(stabilizing, r)
		}
	}

	return s.WithAddedElements(stabilizing...)
}
