package freegroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stallings/freegroup"
)

func TestParse_Basic(t *testing.T) {
	g := freegroup.MustNew("a", "b")
	a, b := g.Gen(0), g.Gen(1)

	got, err := freegroup.Parse(g, "a*b^-2*a")
	require.NoError(t, err)
	assert.True(t, got.Equal(a.Mul(b.Pow(-2)).Mul(a)))
}

func TestParse_Identity(t *testing.T) {
	g := freegroup.MustNew("a")

	for _, expr := range []string{"", "  ", "1", "a*a^-1"} {
		got, err := freegroup.Parse(g, expr)
		require.NoError(t, err, "expr %q", expr)
		assert.True(t, got.IsIdentity(), "expr %q", expr)
	}
}

func TestParse_Parenthesized(t *testing.T) {
	g := freegroup.MustNew("a", "b")
	a, b := g.Gen(0), g.Gen(1)

	got, err := freegroup.Parse(g, "(a*b)^3")
	require.NoError(t, err)
	assert.True(t, got.Equal(a.Mul(b).Pow(3)))

	got, err = freegroup.Parse(g, "(a*b^-1)^-2*a")
	require.NoError(t, err)
	want := a.Mul(b.Inverse()).Pow(-2).Mul(a)
	assert.True(t, got.Equal(want))
}

func TestParse_UnknownGenerator(t *testing.T) {
	g := freegroup.MustNew("a")
	_, err := freegroup.Parse(g, "a*z")
	assert.ErrorIs(t, err, freegroup.ErrUnknownGenerator)
}

func TestParse_Malformed(t *testing.T) {
	g := freegroup.MustNew("a", "b")
	for _, expr := range []string{"a*", "^2", "a^", "(a*b", "a b"} {
		_, err := freegroup.Parse(g, expr)
		assert.Error(t, err, "expr %q", expr)
	}
}

func TestParse_RoundTripsString(t *testing.T) {
	g := freegroup.MustNew("a", "b", "c")
	w := freegroup.MustParse(g, "a^2*b^-3*c*a^-1")
	back, err := freegroup.Parse(g, w.String())
	require.NoError(t, err)
	assert.True(t, back.Equal(w))
}
