// Package quotient builds finite groups as quotients lift/kernel of free
// group subgroups and does element arithmetic in them.
//
// Overview:
//
//   - A Group is a pair of subgroups: a lift (whose words name the
//     elements) and a normal, finite-index kernel (whose cosets are the
//     elements). Subgroups, quotients, centers, centralizers, normalizers,
//     and cores of a Group are again Groups over the same ambient free
//     group, so chains like (G/N).Center().CoreIn(...) compose freely.
//   - An Element stores the canonical free-group representative of its
//     coset; multiplication reduces products back to canonical form through
//     the kernel's coset graph, rewritten over the lift's basis where the
//     graph is complete.
//   - ByNormalClosure presents a group by relations in one call.
//
// Errors:
//
//   - Construction validates containment, normality, and finiteness and
//     reports each violation with its own sentinel, wrapped with the
//     offending subgroups for context.
//   - Mixing elements of different Group instances panics with
//     ErrGroupMismatch, mirroring freegroup element arithmetic.
package quotient
