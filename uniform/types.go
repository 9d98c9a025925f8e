package uniform

import (
	"errors"
	"time"
)

// ErrInvalidVertexCount indicates that a spanning tree was requested for n < 1 vertices.
var ErrInvalidVertexCount = errors.New("uniform: vertex count must be at least 1")

// ErrNoCandidate signals that the selection step found no unvisited vertex
// while the visited set was still incomplete. It is only ever carried by a panic.
var ErrNoCandidate = errors.New("uniform: no unvisited candidate vertex")

// Validation errors returned by Validate.
var (
	// ErrEdgeCount indicates the tree does not contain exactly n-1 edges.
	ErrEdgeCount = errors.New("uniform: spanning tree must have n-1 edges")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("uniform: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints are equal.
	ErrSelfLoop = errors.New("uniform: self-loop in tree")

	// ErrDuplicateEdge indicates the same unordered pair appears twice.
	ErrDuplicateEdge = errors.New("uniform: duplicate edge in tree")

	// ErrCycle indicates an edge joins two vertices that are already connected.
	ErrCycle = errors.New("uniform: edge closes a cycle")

	// ErrDisconnected indicates the edges do not connect every vertex.
	ErrDisconnected = errors.New("uniform: tree does not span all vertices")
)

// UniformWeight is the cost of every edge in the complete graph, and therefore
// the initial (and final) label of every unvisited vertex.
const UniformWeight int64 = 1

// VertexID identifies a vertex of the complete graph K_n, in [0, n).
type VertexID = int

// Edge is an undirected tree edge.
//
// From is the endpoint that was already in the tree when the edge was added;
// To is the vertex the edge attached.
type Edge struct {
	From VertexID
	To   VertexID
}

// Stats records the work done by one Prim call.
type Stats struct {
	// Iterations is the number of vertices attached (n-1 on success).
	Iterations int

	// Comparisons counts label comparisons made while selecting the next vertex.
	Comparisons int64
}

// Options configures a Prim call. Use the With* helpers to set fields.
type Options struct {
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Stats, when non-nil, is overwritten with counters for the call.
	Stats *Stats
}

// Option mutates Options.
type Option func(*Options)

// WithClock overrides the clock used to measure elapsed time.
// A nil clock is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithStats asks Prim to fill s with work counters.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns Options with the wall clock and no stats sink.
func DefaultOptions() Options {
	return Options{Clock: time.Now}
}
