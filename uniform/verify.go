package uniform

import "fmt"

const methodValidate = "Validate"

// Validate reports whether edges form a spanning tree of the vertex set [0, n).
//
// Error Conditions:
//   - ErrInvalidVertexCount : if n < 1.
//   - ErrEdgeCount          : if len(edges) != n-1.
//   - ErrVertexOutOfRange   : if an endpoint is outside [0, n).
//   - ErrSelfLoop           : if an edge has From == To.
//   - ErrDuplicateEdge      : if an unordered pair appears twice.
//   - ErrCycle              : if an edge joins two already-connected vertices.
//   - ErrDisconnected       : if the edges leave more than one component.
//
// Steps:
//  1. Check n and the edge count.
//  2. Initialise a disjoint-set forest with one singleton per vertex.
//  3. For each edge, check endpoints, then union; a failed union means the
//     endpoints were already connected (duplicate or cycle).
//  4. With n-1 successful unions there is exactly one component left; the
//     final check guards the invariant anyway.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func Validate(n int, edges []Edge) error {
	// 1. Size checks.
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w", methodValidate, n, ErrInvalidVertexCount)
	}
	if len(edges) != n-1 {
		return fmt.Errorf("%s: got %d edges for n=%d: %w", methodValidate, len(edges), n, ErrEdgeCount)
	}

	// 2. Disjoint-set forest.
	ds := newDisjointSet(n)
	seen := make(map[Edge]struct{}, len(edges))

	// 3. Walk the edges.
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%s: edge %d (%d,%d): %w", methodValidate, i, e.From, e.To, ErrVertexOutOfRange)
		}
		if e.From == e.To {
			return fmt.Errorf("%s: edge %d (%d,%d): %w", methodValidate, i, e.From, e.To, ErrSelfLoop)
		}

		key := canonical(e)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s: edge %d (%d,%d): %w", methodValidate, i, e.From, e.To, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}

		if !ds.union(e.From, e.To) {
			return fmt.Errorf("%s: edge %d (%d,%d): %w", methodValidate, i, e.From, e.To, ErrCycle)
		}
	}

	// 4. One component.
	if ds.components != 1 {
		return fmt.Errorf("%s: %d components: %w", methodValidate, ds.components, ErrDisconnected)
	}

	return nil
}

// TotalWeight returns the weight of edges under the uniform weight function.
func TotalWeight(edges []Edge) int64 {
	return int64(len(edges)) * UniformWeight
}

// canonical orders an edge's endpoints so (u,v) and (v,u) compare equal.
func canonical(e Edge) Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}

	return e
}

// disjointSet is a union-find forest with path compression and union by rank.
type disjointSet struct {
	parent     []int
	rank       []int
	components int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for v := range ds.parent {
		ds.parent[v] = v
	}

	return ds
}

// find walks to the root, pointing each visited node at its grandparent.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets holding u and v. It returns false if they were
// already in the same set.
func (ds *disjointSet) union(u, v int) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if ds.rank[rootU] < ds.rank[rootV] {
		ds.parent[rootU] = rootV
	} else {
		ds.parent[rootV] = rootU
		if ds.rank[rootU] == ds.rank[rootV] {
			ds.rank[rootU]++
		}
	}
	ds.components--

	return true
}
