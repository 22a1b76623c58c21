// Package coset implements the folded coset graph (Stallings graph) at the
// heart of the module: primitives, the folding engine, the canonicalizer,
// and the product construction.
//
// Overview:
//
//   - A Graph is an arena of vertices with stable handles and one
//     distinguished basepoint. Each edge is labeled by a single generator
//     and is indexed bidirectionally: source.out[gen] and target.in[gen]
//     are its only storage, and direction encodes sign.
//   - PushWord (fold.go) grows the graph with a path spelling a relation
//     word and glues the endpoint onto the basepoint, cascading vertex
//     identifications until the folded invariant holds: at most one
//     outgoing and one incoming edge per generator at every vertex.
//   - Relabel (relabel.go) canonicalizes vertex labels to the minimal
//     reachable words, inducing a spanning tree; CycleGenerators extracts
//     the free basis (Nielsen–Schreier generators), one per non-tree edge.
//   - Product (product.go) builds the synchronized product automaton used
//     for subgroup intersection.
//
// Invariants (outside an in-progress folding step):
//
//   - Folded: per vertex and generator, at most one edge each way.
//   - Connected: every vertex is reachable from the basepoint via a mixed
//     forward/backward path.
//   - After Relabel: target.label == source.label·gen on spanning-tree
//     edges; every other edge yields the non-trivial basis word
//     source.label·gen·target.label⁻¹.
//
// Determinism:
//
//   - Traversals, folding, and relabeling visit generators in alphabet
//     order and never iterate Go maps directly, so results are stable
//     across runs.
//
// Error handling (sentinel errors):
//
//   - ErrGroupMismatch: word and graph built over different free groups.
//   - ErrEdgeConflict:  AddEdge on an occupied direction (check Neighbor
//     first).
//   - ErrFolding:       internal engine inconsistency; indicates a bug in
//     the folding algorithm, never user input.
//
// Concurrency:
//
//   - Single-threaded by design. A Graph is exclusively owned; combining
//     operations (Product) only read their inputs, so independent graphs
//     may be processed in parallel by callers.
package coset
