package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/internal/config"
)

// shortSweep replaces the full sweep for the duration of a test.
func shortSweep(t *testing.T, sizes ...int) {
	t.Helper()
	prev := sweep
	sweep = func() []int { return append([]int(nil), sizes...) }
	t.Cleanup(func() { sweep = prev })
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_PrintsOneLinePerSize(t *testing.T) {
	shortSweep(t, 2, 10, 20)
	t.Setenv("MSTBENCH_LOG_LEVEL", "info")
	t.Setenv("MSTBENCH_LOG_FORMAT", "json")

	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Execution time for uniform weight with 2 nodes: "))
	assert.True(t, strings.HasPrefix(lines[1], "Execution time for uniform weight with 10 nodes: "))
	assert.True(t, strings.HasPrefix(lines[2], "Execution time for uniform weight with 20 nodes: "))

	assert.Contains(t, stderr, `"phase":"sweep"`)
	assert.NotContains(t, stderr, "run finished", "per-run logs are debug only")
}

func TestRoot_VerboseAndVerify(t *testing.T) {
	shortSweep(t, 3)
	t.Setenv("MSTBENCH_LOG_LEVEL", "warn")
	t.Setenv("MSTBENCH_LOG_FORMAT", "json")

	_, stderr, err := execute(t, "--verbose", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "run finished")
	assert.Contains(t, stderr, `"verified":true`)
}

func TestRoot_RejectsArgs(t *testing.T) {
	shortSweep(t, 2)

	stdout, _, err := execute(t, "extra")
	assert.Error(t, err)
	assert.Empty(t, stdout)
}

func TestRoot_InvalidConfig(t *testing.T) {
	shortSweep(t, 2)
	t.Setenv("MSTBENCH_LOG_LEVEL", "info")
	t.Setenv("MSTBENCH_LOG_FORMAT", "yaml")

	stdout, _, err := execute(t)
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
	assert.Empty(t, stdout)
}
