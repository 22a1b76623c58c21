// Package subgroup: cosets, index, and the relative operations.
//
// The relative operations (index of H inside K rather than inside the whole
// group) rewrite H's basis over K's basis and recurse into an abstract free
// group of K's rank. K is free on its basis, so the rewritten subgroup has
// the same index in the abstract group as H has in K.
package subgroup

import (
	"fmt"

	"github.com/katalvlaran/stallings/freegroup"
)

// HasFiniteIndex reports whether the subgroup has finite index: the coset
// graph must be complete, with every generator entering and leaving every
// vertex.
func (s *Subgroup) HasFiniteIndex() bool {
	rank := s.group.Rank()
	for _, v := range s.graph.Vertices() {
		if v.OutDegree() != rank || v.InDegree() != rank {
			return false
		}
	}

	return true
}

// Index returns the index of the subgroup, the number of right cosets, or
// ErrInfiniteIndex. Each vertex of a complete coset graph is one coset.
func (s *Subgroup) Index() (int, error) {
	if !s.HasFiniteIndex() {
		return 0, ErrInfiniteIndex
	}

	return s.graph.VertexCount(), nil
}

// CosetRepresentative returns the canonical representative of the right
// coset H·w: the label of the vertex reached by the longest walkable prefix
// of w, extended by the suffix the graph could not absorb. Members map to
// the identity.
func (s *Subgroup) CosetRepresentative(w freegroup.Element) freegroup.Element {
	if w.Group() != s.group {
		panic(ErrGroupMismatch)
	}
	v := s.graph.Basepoint()
	letters := w.Letters()
	i := 0
	for ; i < len(letters); i++ {
		_, next := s.graph.Neighbor(v, letters[i].Gen, letters[i].Sign)
		if next == nil {
			break
		}
		v = next
	}
	rep := v.Label()
	for ; i < len(letters); i++ {
		rep = rep.Mul(s.group.Gen(letters[i].Gen).Pow(letters[i].Sign))
	}

	return rep
}

// Decompose splits w into a member and the canonical coset representative:
// w = member·rep with member in the subgroup.
func (s *Subgroup) Decompose(w freegroup.Element) (member, rep freegroup.Element) {
	rep = s.CosetRepresentative(w)

	return w.Mul(rep.Inverse()), rep
}

// RightCosetRepresentatives enumerates one canonical representative per
// right coset, in graph traversal order starting with the identity. Fails
// with ErrInfiniteIndex on an incomplete graph.
func (s *Subgroup) RightCosetRepresentatives() ([]freegroup.Element, error) {
	if !s.HasFiniteIndex() {
		return nil, ErrInfiniteIndex
	}
	reps := make([]freegroup.Element, 0, s.graph.VertexCount())
	for _, v := range s.graph.Vertices() {
		reps = append(reps, v.Label())
	}

	return reps, nil
}

// LeftCosetRepresentatives enumerates one representative per left coset.
// w·H and H·w⁻¹ biject, so these are the inverted right representatives.
func (s *Subgroup) LeftCosetRepresentatives() ([]freegroup.Element, error) {
	reps, err := s.RightCosetRepresentatives()
	if err != nil {
		return nil, err
	}
	for i, r := range reps {
		reps[i] = r.Inverse()
	}

	return reps, nil
}

// RewriteIn rewrites s over k's basis: the result is the image of s inside
// an abstract free group whose generator i stands for k's basis word i. The
// image has the same index in the abstract group as s has in k; the quotient
// package leans on this to do coset arithmetic over a complete graph.
// Fails with ErrNotContained unless s is a subgroup of k.
func (s *Subgroup) RewriteIn(k *Subgroup) (*Subgroup, *freegroup.Group, error) {
	if s.group != k.group {
		return nil, nil, ErrGroupMismatch
	}
	if k.IsTrivial() {
		if !s.IsTrivial() {
			return nil, nil, fmt.Errorf("%w: not a subgroup of %s", ErrNotContained, k)
		}
		// The trivial group has no basis; a rank-one stand-in keeps the
		// abstract picture index-one, which is the right answer for the
		// only possible pair of trivial subgroups.
		abstract := freegroup.MustNew("g0")

		return Full(abstract), abstract, nil
	}

	names := make([]string, k.Rank())
	for i := range names {
		names[i] = fmt.Sprintf("g%d", i)
	}
	abstract := freegroup.MustNew(names...)

	words := make([]freegroup.Element, 0, s.Rank())
	for _, h := range s.gens {
		bw, err := k.Express(h)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: generator %s of %s", ErrNotContained, h, s)
		}
		word := abstract.Identity()
		for _, f := range bw.Factors() {
			word = word.Mul(abstract.Gen(f.Index).Pow(f.Pow))
		}
		words = append(words, word)
	}
	rel, err := New(abstract, words...)
	if err != nil {
		return nil, nil, err
	}

	return rel, abstract, nil
}

// HasFiniteIndexIn reports whether s has finite index inside k. Fails with
// ErrNotContained unless s is a subgroup of k.
func (s *Subgroup) HasFiniteIndexIn(k *Subgroup) (bool, error) {
	rel, _, err := s.RewriteIn(k)
	if err != nil {
		return false, err
	}

	return rel.HasFiniteIndex(), nil
}

// IndexIn returns the index of s inside k, or ErrInfiniteIndex.
func (s *Subgroup) IndexIn(k *Subgroup) (int, error) {
	rel, _, err := s.RewriteIn(k)
	if err != nil {
		return 0, err
	}

	return rel.Index()
}

// RightCosetRepresentativesIn enumerates representatives of the right cosets
// of s inside k, as ambient words. The identity coset comes first.
func (s *Subgroup) RightCosetRepresentativesIn(k *Subgroup) ([]freegroup.Element, error) {
	rel, _, err := s.RewriteIn(k)
	if err != nil {
		return nil, err
	}
	abstractReps, err := rel.RightCosetRepresentatives()
	if err != nil {
		return nil, err
	}

	reps := make([]freegroup.Element, len(abstractReps))
	for i, r := range abstractReps {
		if k.IsTrivial() {
			reps[i] = s.group.Identity()

			continue
		}
		amb, err := r.Substitute(s.group, k.gens)
		if err != nil {
			return nil, err
		}
		reps[i] = amb
	}

	return reps, nil
}

// LeftCosetRepresentativesIn enumerates representatives of the left cosets
// of s inside k.
func (s *Subgroup) LeftCosetRepresentativesIn(k *Subgroup) ([]freegroup.Element, error) {
	reps, err := s.RightCosetRepresentativesIn(k)
	if err != nil {
		return nil, err
	}
	for i, r := range reps {
		reps[i] = r.Inverse()
	}

	return reps, nil
}
