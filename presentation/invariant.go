package presentation

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/stallings/quotient"
	"github.com/katalvlaran/stallings/subgroup"
)

// Realize builds the finite group presented by a relation subgroup: the
// quotient of the ambient free group by the normal closure of the relators.
func Realize(relators *subgroup.Subgroup, opts ...subgroup.Option) (*quotient.Group, error) {
	closure, err := relators.Normalization(opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "realizing %s", relators)
	}

	return quotient.New(subgroup.Full(relators.Group()), closure)
}

// Invariant computes an isomorphism-sensitive integer for a relation
// subgroup: with N the normal closure, rank(N) − [F:N]·rank(F). By the
// Nielsen–Schreier formula this equals 1 − [F:N], so presentations of
// groups of different orders are always told apart.
func Invariant(relators *subgroup.Subgroup, opts ...subgroup.Option) (int, error) {
	closure, err := relators.Normalization(opts...)
	if err != nil {
		return 0, errors.Wrapf(err, "invariant of %s", relators)
	}
	idx, err := closure.Index()
	if err != nil {
		return 0, errors.Wrapf(err, "invariant of %s", relators)
	}

	return closure.Rank() - idx*relators.Group().Rank(), nil
}
