// Package uniform provides Prim's Minimum Spanning Tree algorithm specialised
// to the complete graph K_n where every edge has the same weight.
package uniform

import (
	"fmt"
	"math"
)

const methodPrim = "Prim"

// Prim builds a spanning tree of the complete uniform-weight graph K_n and
// reports how long the construction took.
//
// The graph is never materialised: with every weight equal to UniformWeight,
// vertex v's label is fixed at 1 and any visited vertex is an optimal
// attachment point.
//
// Error Conditions:
//   - ErrInvalidVertexCount : if n < 1.
//
// Steps:
//  1. Validate n and start the clock.
//  2. Mark vertex 0 visited; label every other vertex with UniformWeight.
//  3. While fewer than n vertices are visited:
//     a. Pick w, the unvisited vertex with the smallest label. Scan is in
//     ascending index order and only a strictly smaller label replaces the
//     current pick, so ties go to the lowest index.
//     b. Pick the lowest-indexed visited vertex as the attachment point.
//     c. Append (closest, w) to the tree and mark w visited.
//     Labels are never relaxed: no edge can beat UniformWeight.
//  4. Stop the clock and return the edges with the elapsed seconds.
//
// Complexity: O(n²) time (one linear scan per attached vertex), O(n) memory.
//
// Prim panics with an error wrapping ErrNoCandidate if step 3a finds nothing,
// which the loop invariant rules out.
func Prim(n int, opts ...Option) ([]Edge, float64, error) {
	// 1. Validate input before touching the clock.
	if n < 1 {
		return nil, 0, fmt.Errorf("%s: n=%d: %w", methodPrim, n, ErrInvalidVertexCount)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := o.Clock()

	// 2. Initialise visited set, labels and tree.
	visited := make([]bool, n)
	visited[0] = true
	visitedCount := 1

	labels := make([]int64, n)
	for v := 1; v < n; v++ {
		labels[v] = UniformWeight
	}

	tree := make([]Edge, 0, n-1)
	var stats Stats

	// 3. Grow the tree one vertex at a time.
	for visitedCount < n {
		w := selectMinLabel(visited, labels, &stats)
		if w < 0 {
			panic(fmt.Errorf("%s: %d of %d visited: %w", methodPrim, visitedCount, n, ErrNoCandidate))
		}

		closest := lowestVisited(visited)
		tree = append(tree, Edge{From: closest, To: w})

		visited[w] = true
		visitedCount++
		stats.Iterations++
	}

	// 4. Stop timing.
	elapsed := o.Clock().Sub(start).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	if o.Stats != nil {
		*o.Stats = stats
	}

	return tree, elapsed, nil
}

// selectMinLabel returns the lowest-indexed unvisited vertex holding the
// minimum label, or -1 if every vertex is visited.
func selectMinLabel(visited []bool, labels []int64, stats *Stats) int {
	w := -1
	minLabel := int64(math.MaxInt64)
	for v, seen := range visited {
		if seen {
			continue
		}
		stats.Comparisons++
		if labels[v] < minLabel {
			minLabel = labels[v]
			w = v
		}
	}

	return w
}

// lowestVisited returns the smallest visited vertex index. Vertex 0 is
// visited before the first call, so this returns immediately in practice.
func lowestVisited(visited []bool) int {
	for v, seen := range visited {
		if seen {
			return v
		}
	}

	return -1
}
