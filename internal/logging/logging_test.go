package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_JSON(t *testing.T) {
	defer Init(os.Stderr, zerolog.InfoLevel, false)

	var buf bytes.Buffer
	Init(&buf, zerolog.InfoLevel, false)

	L().Info().Int("nodes", 500).Msg("run")
	L().Debug().Msg("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, `"nodes":500`)
	assert.Contains(t, out, `"message":"run"`)
	assert.NotContains(t, out, "hidden at info level")
}

func TestInit_DebugHuman(t *testing.T) {
	defer Init(os.Stderr, zerolog.InfoLevel, false)

	var buf bytes.Buffer
	Init(&buf, zerolog.DebugLevel, true)

	L().Debug().Msg("visible at debug level")

	out := buf.String()
	assert.Contains(t, out, "visible at debug level")
	assert.NotContains(t, out, `"message"`, "console writer must not emit JSON")
}

func TestWithPhase(t *testing.T) {
	defer Init(os.Stderr, zerolog.InfoLevel, false)

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	log := WithPhase("sweep")
	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"phase":"sweep"`)
}
