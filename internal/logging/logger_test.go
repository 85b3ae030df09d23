package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("deck written", "slides", 11)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, Prefix)
	assert.Contains(t, out, "deck written")
	assert.Contains(t, out, "slides=11")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)

	_, err = ParseLevel("loud")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("dropped")
	})
}
