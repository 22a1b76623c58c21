// Package freegroup implements free groups over a finite alphabet and the
// reduced-word arithmetic the rest of the module is built on.
//
// Overview:
//
//   - Group: a free group over an ordered alphabet of named generators.
//     Group identity is pointer identity; elements of different Group
//     instances never mix.
//   - Element: an immutable, always-reduced word of (generator, exponent)
//     syllables. Supports Mul, Inverse, Pow, Conjugate, Substitute, and a
//     well-founded total order (Compare/Less).
//   - Parse: reads word expressions such as "a*b^-2*(a*b)^3".
//   - Homomorphism: generator-image maps between free groups, with Apply
//     and Compose.
//
// Word order:
//
//	Words compare by letter length first, then letterwise: generators in
//	alphabet order, and each generator before its own inverse. The order is
//	total, well-founded, and compatible with right multiplication by a fixed
//	letter, which is what the coset-graph canonicalizer relies on.
//
// Error handling (sentinel errors):
//
//   - ErrBadGeneratorName, ErrDuplicateGenerator, ErrNoGenerators:
//     alphabet validation in New.
//   - ErrGroupMismatch:
//     operands from different groups. Element arithmetic panics with it
//     (programming error); package-boundary functions return it.
//   - ErrUnknownGenerator:
//     Parse saw a name outside the alphabet.
//   - ErrBadImageCount:
//     a homomorphism was defined with the wrong number of images.
//
// Thread safety:
//
//   - Group and Element are immutable after construction and safe for
//     concurrent use.
package freegroup
