// Package subgroup: operations that build new subgroups from old.
package subgroup

import (
	"fmt"

	"github.com/katalvlaran/stallings/coset"
	"github.com/katalvlaran/stallings/freegroup"
)

// WithAddedElements returns the subgroup generated by s together with the
// given words.
func (s *Subgroup) WithAddedElements(words ...freegroup.Element) (*Subgroup, error) {
	all := make([]freegroup.Element, 0, len(s.gens)+len(words))
	all = append(all, s.gens...)
	all = append(all, words...)

	return New(s.group, all...)
}

// Conjugate returns w·H·w⁻¹: the coset graph rebuilt and rerooted at the
// vertex w⁻¹ reaches from the basepoint.
func (s *Subgroup) Conjugate(w freegroup.Element) (*Subgroup, error) {
	if w.Group() != s.group {
		return nil, fmt.Errorf("%w: conjugating by %s", ErrGroupMismatch, w)
	}
	g := coset.NewGraph(s.group)
	for _, gen := range s.gens {
		if err := g.PushWord(gen); err != nil {
			return nil, err
		}
	}
	if err := g.Reroot(w); err != nil {
		return nil, err
	}

	return fromGraph(s.group, g), nil
}

// Intersect returns H ∩ K via the product of the two coset graphs.
func (s *Subgroup) Intersect(o *Subgroup) (*Subgroup, error) {
	if o.group != s.group {
		return nil, ErrGroupMismatch
	}
	g, err := coset.Product(s.group, []*coset.Graph{s.graph, o.graph})
	if err != nil {
		return nil, err
	}

	return fromGraph(s.group, g), nil
}

// CoreIn returns the largest subgroup of s that is normal in k: the
// intersection of the conjugates r·s·r⁻¹ over left coset representatives r
// of s in k. Requires finite index of s in k.
func (s *Subgroup) CoreIn(k *Subgroup) (*Subgroup, error) {
	reps, err := s.LeftCosetRepresentativesIn(k)
	if err != nil {
		return nil, err
	}
	core := s
	for _, r := range reps {
		conj, err := s.Conjugate(r)
		if err != nil {
			return nil, err
		}
		core, err = core.Intersect(conj)
		if err != nil {
			return nil, err
		}
	}

	return core, nil
}
