// Package subgroup_test: construction, membership, and containment.
package subgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stallings/freegroup"
	"github.com/katalvlaran/stallings/subgroup"
)

func rank2(t *testing.T) (*freegroup.Group, freegroup.Element, freegroup.Element) {
	t.Helper()
	f := freegroup.MustNew("a", "b")

	return f, f.Gen(0), f.Gen(1)
}

func TestNew_FoldsRedundantGenerators(t *testing.T) {
	f, a, _ := rank2(t)
	s := subgroup.MustNew(f, a, a.Inverse(), a.Pow(3))

	assert.Equal(t, 1, s.Rank())
	assert.True(t, s.Gens()[0].Equal(a))
}

func TestBasisSoundness(t *testing.T) {
	f, _, _ := rank2(t)
	relations := []freegroup.Element{
		freegroup.MustParse(f, "a^2"),
		freegroup.MustParse(f, "b^3"),
		freegroup.MustParse(f, "a*b*a^-1*b^-1"),
	}
	s := subgroup.MustNew(f, relations...)

	// Every basis word is a member.
	for _, g := range s.Gens() {
		assert.True(t, s.ContainsElement(g))
	}
	// Every relation word rewrites over the basis and evaluates back.
	for _, r := range relations {
		bw, err := s.Express(r)
		require.NoError(t, err)
		assert.True(t, bw.Evaluate().Equal(r))
	}
}

func TestRankBound(t *testing.T) {
	f, _, _ := rank2(t)
	cases := [][]string{
		{"a"},
		{"a", "b*a*b^-1"},
		{"a^2", "b^2", "a*b"},
		{"a*b", "b*a", "a^3", "b^-1*a*b"},
	}
	for _, exprs := range cases {
		s := subgroup.MustParse(f, exprs...)
		assert.LessOrEqual(t, s.Rank(), len(exprs), "generators %v", exprs)
	}
}

func TestContainsElement_FullAndTrivial(t *testing.T) {
	f, a, _ := rank2(t)

	assert.True(t, subgroup.Full(f).ContainsElement(a))
	assert.False(t, subgroup.Trivial(f).ContainsElement(a))
	assert.True(t, subgroup.Trivial(f).ContainsElement(f.Identity()))
	assert.True(t, subgroup.Trivial(f).IsTrivial())
}

func TestContainsElement_GroupMismatchPanics(t *testing.T) {
	f, _, _ := rank2(t)
	other := freegroup.MustNew("a", "b")
	s := subgroup.Full(f)

	assert.PanicsWithValue(t, subgroup.ErrGroupMismatch, func() {
		s.ContainsElement(other.Gen(0))
	})
}

func TestContainmentAndEquality(t *testing.T) {
	f, _, _ := rank2(t)
	h := subgroup.MustParse(f, "a", "b^2", "b*a*b^-1")
	k := subgroup.MustParse(f, "a", "b*a*b^-1", "b^2", "b^2*a*b^-2")

	// The extra generator of k is redundant, so the two coincide.
	assert.True(t, h.ContainsSubgroup(k))
	assert.True(t, k.ContainsSubgroup(h))
	assert.True(t, h.Equal(k))

	small := subgroup.MustParse(f, "a")
	assert.True(t, h.ContainsSubgroup(small))
	assert.False(t, small.ContainsSubgroup(h))
	assert.False(t, h.Equal(small))
}

func TestCopy_Independent(t *testing.T) {
	f, _, _ := rank2(t)
	s := subgroup.MustParse(f, "a^2", "b^3")
	c := s.Copy()

	assert.True(t, s.Equal(c))
	assert.Equal(t, s.Rank(), c.Rank())
}

func TestString(t *testing.T) {
	f, _, _ := rank2(t)

	assert.Equal(t, "<1>", subgroup.Trivial(f).String())
	assert.Equal(t, "<a>", subgroup.MustParse(f, "a").String())
}

func TestScenario_PresentedIndexSix(t *testing.T) {
	f, _, _ := rank2(t)
	s := subgroup.MustParse(f, "a^2", "b^3", "a*b*a^-1*b^-1")

	// The relators generate a rank-3 subgroup that misses b, so its own
	// index is infinite; index 6 belongs to the normal closure.
	_, err := s.Index()
	assert.ErrorIs(t, err, subgroup.ErrInfiniteIndex)

	n, err := s.Normalization()
	require.NoError(t, err)
	idx, err := n.Index()
	require.NoError(t, err)
	assert.Equal(t, 6, idx)
	// Nielsen–Schreier: rank = index·(ambient rank − 1) + 1.
	assert.Equal(t, 7, n.Rank())
}

func TestScenario_IndexThreeSubgroup(t *testing.T) {
	f, a, b := rank2(t)
	s := subgroup.MustNew(f,
		a,
		b.Pow(2),
		a.Pow(2).Conjugate(b),
		b.Conjugate(b.Mul(a)),
	)

	idx, err := s.Index()
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 4, s.Rank())
	assert.False(t, s.IsNormal())

	byA, err := s.Conjugate(a)
	require.NoError(t, err)
	assert.True(t, s.Equal(byA))
	byB, err := s.Conjugate(b)
	require.NoError(t, err)
	assert.False(t, s.Equal(byB))
}
