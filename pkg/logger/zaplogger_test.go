package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_InfoWritesStructuredFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewZapLogger("mausam-test", []io.Writer{buf}, WithEnv("test"))

	l.Info("city selected", map[string]any{"city": "Delhi"})

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "city selected", lines[0]["msg"])
	assert.Equal(t, "Delhi", lines[0]["city"])
	assert.Equal(t, "mausam-test", lines[0]["app_name"])
	assert.Equal(t, "test", lines[0]["app_env"])
	assert.Contains(t, lines[0]["caller_file"], "zaplogger_test.go")
	assert.NotEmpty(t, lines[0]["timestamp"])
}

func TestLogger_ErrorCarriesErrorText(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewZapLogger("mausam-test", []io.Writer{buf})

	l.Error(errors.New("boom"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "boom", lines[0]["error"])
	assert.NotEmpty(t, lines[0]["stack"])
}

func TestLogger_WithLevelFiltersDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewZapLogger("mausam-test", []io.Writer{buf}, WithLevel("warn"))

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warning("visible")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "visible", lines[0]["msg"])
}

func TestLogger_MultipleWriters(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	l := NewZapLogger("mausam-test", []io.Writer{a, b})

	l.Warning("fan out")

	assert.Contains(t, a.String(), "fan out")
	assert.Contains(t, b.String(), "fan out")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("nothing")
		l.Error(errors.New("nothing"))
	})
}
