// Package subgroup represents finitely generated subgroups of free groups
// and answers the classical algorithmic questions about them.
//
// Overview:
//
//   - A Subgroup wraps a folded, canonically labeled coset graph
//     (package coset) and derives from it a free basis, so rank, membership,
//     and rewriting over the basis come for free. Values are immutable:
//     Conjugate, Intersect, WithAddedElements, and the closures all return
//     fresh subgroups.
//   - Membership (ContainsElement) is a walk in the graph; containment and
//     equality reduce to membership of basis words.
//   - Express rewrites a member over the basis; Decompose splits any word
//     into a member and the canonical right-coset representative.
//   - Index, coset enumeration, and their relative variants (inside another
//     subgroup rather than the whole group) live in index.go. The relative
//     operations rewrite over the enclosing subgroup's basis and recurse
//     into an abstract free group of its rank.
//   - Normality, normal closure, and the normalizer live in normal.go.
//     Normal closures of finitely generated subgroups need not be finitely
//     generated, so the closure iteration is bounded: DefaultMaxRounds,
//     overridable per call with WithMaxRounds.
//
// Errors:
//
//   - Mixing subgroups of different free groups is a programming error:
//     predicate methods panic with ErrGroupMismatch, fallible operations
//     return it.
//   - ErrNotContained, ErrInfiniteIndex, and ErrNormalizationDepth report
//     the mathematical failure modes and are matched with errors.Is.
package subgroup
