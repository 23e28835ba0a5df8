package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter("production", "warn", &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Str("component", "engine").Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"component":"engine"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNew_ConsoleInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter("development", "debug", &buf)

	logger.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		logger := newWithWriter("production", level, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel(), "level %q", level)
	}
}
