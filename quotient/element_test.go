package quotient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stallings/freegroup"
	"github.com/katalvlaran/stallings/quotient"
	"github.com/katalvlaran/stallings/subgroup"
)

// z6 builds the cyclic group of order 6 as F(a)/<<a^6>>.
func z6(t *testing.T) (*quotient.Group, quotient.Element) {
	t.Helper()
	f := freegroup.MustNew("a")
	q, err := quotient.ByNormalClosure(f, []freegroup.Element{f.Gen(0).Pow(6)})
	require.NoError(t, err)
	a, err := q.NewElement(f.Gen(0))
	require.NoError(t, err)

	return q, a
}

func TestElement_Arithmetic(t *testing.T) {
	q, a := z6(t)

	assert.Equal(t, 6, q.Order())
	assert.True(t, a.Pow(6).IsIdentity())
	assert.False(t, a.Pow(3).IsIdentity())
	assert.True(t, a.Pow(-1).Equal(a.Pow(5)))
	assert.True(t, a.Mul(a.Inverse()).IsIdentity())
	assert.True(t, a.Pow(2).Mul(a.Pow(3)).Equal(a.Pow(5)))
}

func TestElement_Order(t *testing.T) {
	q, a := z6(t)

	assert.Equal(t, 1, q.Identity().Order())
	assert.Equal(t, 6, a.Order())
	assert.Equal(t, 3, a.Pow(2).Order())
	assert.Equal(t, 2, a.Pow(3).Order())
}

func TestElement_CanonicalRepresentatives(t *testing.T) {
	_, a := z6(t)

	// a^7 and a name the same coset, with one canonical representative.
	seven := a.Pow(7)
	assert.True(t, seven.Equal(a))
	assert.Equal(t, a.Rep().String(), seven.Rep().String())
}

func TestElement_ConjugatesInAbelianGroup(t *testing.T) {
	_, a := z6(t)

	for _, c := range a.Conjugates() {
		assert.True(t, c.Equal(a))
	}
}

func TestElement_MixingGroupsPanics(t *testing.T) {
	_, a := z6(t)
	_, b := z6(t)

	assert.Panics(t, func() { a.Mul(b) })
}

func TestNewElement_OutsideLift(t *testing.T) {
	f := freegroup.MustNew("a", "b")

	q, err := quotient.New(
		subgroup.MustParse(f, "a", "b*a*b^-1", "b^2"),
		subgroup.MustParse(f, "a", "b*a*b^-1", "b^2*a*b^-2", "b^3*a*b^-3", "b^4"),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Order())

	_, err = q.NewElement(f.Gen(1))
	assert.ErrorIs(t, err, quotient.ErrNotInGroup)
}
