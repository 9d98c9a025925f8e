// Package bench drives the uniform-weight Prim benchmark over a fixed sweep
// of graph sizes and prints one timing line per size.
//
// Runs execute strictly one after another on the calling goroutine, so each
// measurement is uncontended. Results go to the Runner's writer as
//
//	Execution time for uniform weight with <N> nodes: <T> seconds
//
// with <T> printed to six decimal places. Diagnostics go to the Runner's
// zerolog.Logger, never to the result writer.
package bench
