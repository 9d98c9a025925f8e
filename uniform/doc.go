// Package uniform computes a Minimum Spanning Tree (MST) of the complete graph K_n
// in which every edge has the same weight, and times the construction.
//
// What & Why
//
//   - With uniform weights every spanning tree of K_n is minimal, with total
//     weight (n-1)·UniformWeight. The interesting quantity is not the tree but
//     the cost of finding it with the label-scanning form of Prim's algorithm.
//
//   - The graph is implicit. Materialising K_n would need n(n-1)/2 edges, which
//     is 2·10⁸ at n = 20000; Prim never needs to read an edge weight here, so it
//     works on vertex indices only.
//
// Algorithm
//
//   - Prim(n int, opts ...Option) ([]Edge, float64, error)
//
//   - Strategy: start from vertex 0; repeatedly attach the unvisited vertex with
//     the smallest label, joined to the lowest-indexed visited vertex. Labels
//     start at UniformWeight and are never relaxed.
//
//   - Complexity: O(n²) time, O(n) memory.
//
//   - Determinism: ties on labels break towards the lowest index and the
//     attachment point is always the lowest visited index, so the result is
//     the star centred on vertex 0, in ascending order of leaves.
//
// Verification
//
//   - Validate(n, edges) checks the spanning-tree invariants (n-1 edges, in-range
//     endpoints, no loops, no duplicates, acyclic, connected) with a union-find
//     forest.
//
// Error Conditions
//
//   - ErrInvalidVertexCount: n < 1 (Prim and Validate).
//   - ErrNoCandidate: carried by a panic if selection finds no unvisited vertex
//     while the tree is incomplete. Unreachable under the loop invariant.
//   - ErrEdgeCount, ErrVertexOutOfRange, ErrSelfLoop, ErrDuplicateEdge, ErrCycle,
//     ErrDisconnected: Validate only.
//
// Non-uniform weights are out of scope. Supporting them requires real label
// maintenance (relaxation after each attachment) and a true nearest visited
// neighbour; neither can be bolted onto this package.
package uniform
