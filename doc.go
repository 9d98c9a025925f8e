// Package mstbench measures how long Prim's algorithm takes to build a
// Minimum Spanning Tree of the complete graph K_n when every edge weighs 1.
//
// What is in here?
//
//	uniform/       — uniform-weight Prim (Prim), spanning-tree checks (Validate)
//	bench/         — the fixed size sweep (Sizes) and the sequential Runner
//	internal/      — env config, zerolog setup, cobra command
//	cmd/mstbench/  — the binary
//
// The sweep is 2 vertices, then 500 to 20000 in steps of 500. Each run is
// timed on its own and printed as
//
//	Execution time for uniform weight with 500 nodes: 0.012345 seconds
//
// Quick start:
//
//	go run ./cmd/mstbench
//	MSTBENCH_LOG_FORMAT=console go run ./cmd/mstbench --verbose --verify
package mstbench
