package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_JSONFieldsAndApp(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "livestock-tracker", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("animal added", map[string]any{
		"animal_id": "42",
		"err":       errors.New("boom"),
		"":          "ignored",
	})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "info", lines[0]["level"])
	require.Equal(t, "animal added", lines[0]["msg"])
	require.Equal(t, "livestock-tracker", lines[0]["app"])
	require.Equal(t, "r-1", lines[0]["request_id"])
	require.Equal(t, "42", lines[0]["animal_id"])
	require.Equal(t, "boom", lines[0]["err"])
	require.NotContains(t, lines[0], "")
	require.Contains(t, lines[0], "ts")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	l.Debug("debug", nil)
	l.Info("info", nil)
	l.Warn("warn", nil)
	l.Error("error", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, "warn", lines[0]["msg"])
	require.Equal(t, "error", lines[1]["msg"])
}

func TestParseLevelAndFormat(t *testing.T) {
	require.Equal(t, Debug, ParseLevel(" DEBUG "))
	require.Equal(t, Warn, ParseLevel("warning"))
	require.Equal(t, Info, ParseLevel("nope"))
	require.Equal(t, FormatJSON, ParseFormat("json"))
	require.Equal(t, FormatText, ParseFormat(""))
}

func TestNop(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"k": "v"}).Error("discarded", nil)
	require.NoError(t, l.Sync())
}
