// Package cli implements the command-line interface for mstbench.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/logging"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// sweep supplies the vertex counts to run; tests swap in a shorter sweep.
var sweep = bench.Sizes

// NewRootCommand builds the mstbench command. Results are written to the
// command's stdout and diagnostics to its stderr.
func NewRootCommand() *cobra.Command {
	var (
		verbose bool
		verify  bool
	)

	cmd := &cobra.Command{
		Use:   "mstbench",
		Short: "Benchmark uniform-weight Prim MST construction",
		Long: `mstbench times Prim's minimum spanning tree algorithm on complete graphs
whose edges all weigh 1, for 2 vertices and then 500 to 20000 vertices in
steps of 500. One line per size is printed to stdout.

Diagnostics are controlled by MSTBENCH_LOG_LEVEL and MSTBENCH_LOG_FORMAT
(json or console). MSTBENCH_VERIFY=true checks every tree.`,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = zerolog.LevelDebugValue
			}
			if cmd.Flags().Changed("verify") {
				cfg.Verify = verify
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	cmd.Flags().BoolVar(&verify, "verify", false, "check that every computed tree is a spanning tree")

	return cmd
}

// run configures logging and executes the full sweep.
func run(stdout, stderr io.Writer, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logging.Init(stderr, level, cfg.Human())

	runner := bench.NewRunner(stdout,
		bench.WithLogger(logging.WithPhase("sweep")),
		bench.WithVerify(cfg.Verify),
	)
	_, err = runner.Run(sweep())

	return err
}

// Execute runs the root command against os.Args.
func Execute() error {
	cmd := NewRootCommand()
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	return cmd.Execute()
}
