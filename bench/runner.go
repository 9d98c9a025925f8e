package bench

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mstbench/uniform"
)

// ErrNilWriter indicates a Runner was used without a result writer.
var ErrNilWriter = errors.New("bench: nil result writer")

// lineFormat is the result line written once per run.
const lineFormat = "Execution time for uniform weight with %d nodes: %.6f seconds\n"

// MeasureFunc builds a spanning tree over n vertices and reports elapsed seconds.
// uniform.Prim satisfies it.
type MeasureFunc func(n int, opts ...uniform.Option) ([]uniform.Edge, float64, error)

// Result is the outcome of one run.
type Result struct {
	Nodes   int
	Seconds float64
	Stats   uniform.Stats
}

// Runner executes benchmark runs sequentially.
type Runner struct {
	out     io.Writer
	logger  zerolog.Logger
	measure MeasureFunc
	verify  bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the diagnostics logger. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithMeasure replaces uniform.Prim as the measured function.
// A nil function is ignored.
func WithMeasure(fn MeasureFunc) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.measure = fn
		}
	}
}

// WithVerify makes every run check its tree with uniform.Validate.
func WithVerify(verify bool) RunnerOption {
	return func(r *Runner) { r.verify = verify }
}

// NewRunner returns a Runner writing result lines to out.
func NewRunner(out io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		out:     out,
		logger:  zerolog.Nop(),
		measure: uniform.Prim,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FormatLine renders the result line for n vertices measured at seconds.
func FormatLine(n int, seconds float64) string {
	return fmt.Sprintf(lineFormat, n, seconds)
}

// Run measures every size in order, writing one line per size. It stops at
// the first failing run and returns the results gathered so far.
func (r *Runner) Run(sizes []int) ([]Result, error) {
	if r.out == nil {
		return nil, ErrNilWriter
	}

	r.logger.Info().Ints("sizes", sizes).Msg("sweep started")

	results := make([]Result, 0, len(sizes))
	var total float64
	for _, n := range sizes {
		res, err := r.RunOne(n)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		total += res.Seconds
	}

	r.logger.Info().
		Int("runs", len(results)).
		Float64("total_seconds", total).
		Msg("sweep finished")

	return results, nil
}

// RunOne measures a single size and writes its result line.
func (r *Runner) RunOne(n int) (Result, error) {
	if r.out == nil {
		return Result{}, ErrNilWriter
	}

	var stats uniform.Stats
	edges, seconds, err := r.measure(n, uniform.WithStats(&stats))
	if err != nil {
		return Result{}, fmt.Errorf("bench: run n=%d: %w", n, err)
	}

	if r.verify {
		if err := uniform.Validate(n, edges); err != nil {
			return Result{}, fmt.Errorf("bench: verify n=%d: %w", n, err)
		}
	}

	if _, err := io.WriteString(r.out, FormatLine(n, seconds)); err != nil {
		return Result{}, fmt.Errorf("bench: write n=%d: %w", n, err)
	}

	// n² is the reference curve the comparison count is plotted against.
	r.logger.Debug().
		Int("nodes", n).
		Int("edges", len(edges)).
		Float64("seconds", seconds).
		Int64("comparisons", stats.Comparisons).
		Int64("n_squared", int64(n)*int64(n)).
		Bool("verified", r.verify).
		Msg("run finished")

	return Result{Nodes: n, Seconds: seconds, Stats: stats}, nil
}
