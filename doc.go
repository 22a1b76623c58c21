// Package stallings is a toolkit for computing with finitely generated
// subgroups of free groups — folded coset graphs, free bases, cosets, and
// the finite quotients built from them.
//
// 🚀 What is stallings?
//
//	A library that brings the classical subgroup algorithms together:
//		• Free groups: reduced words, a parser, homomorphisms
//		• Coset graphs: folding engine, canonical labels, spanning trees
//		• Subgroups: membership, basis, rank, index, cosets, conjugation,
//		  intersection, normal closures, normalizers, cores
//		• Finite quotients: element arithmetic, centers, centralizers,
//		  subgroup lattices of presented groups
//		• Presentations: cyclic, dihedral, quaternion, symmetric, products
//
// ✨ Why choose stallings?
//
//   - Deterministic – folding, labeling, and enumeration never depend on
//     map iteration order; identical inputs give identical output
//   - Total error discipline – sentinel errors for every mathematical
//     failure mode (infinite index, non-membership, closure depth)
//   - Pure values – subgroups and quotients are immutable after
//     construction; combining operations return fresh values
//
// Everything is organized under five subpackages:
//
//	freegroup/    — groups, reduced-word elements, parsing, homomorphisms
//	coset/        — the folded graph: primitives, folding, canonicalizer,
//	                product automaton
//	subgroup/     — the Subgroup value and the algorithmic questions
//	quotient/     — finite groups as lift/kernel pairs
//	presentation/ — relator builders for the classical finite groups
//
// Quick start:
//
//	f := freegroup.MustNew("a", "b")
//	rel := subgroup.MustParse(f, "a^2", "b^3", "a*b*a^-1*b^-1")
//	n, _ := rel.Normalization()    // normal closure of the relators
//	idx, _ := n.Index()            // 6
//	rank := n.Rank()               // 7, per Nielsen–Schreier
//	ok := n.ContainsElement(freegroup.MustParse(f, "a^2*b^3"))
package stallings
