package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinlab/internal/ports"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "generator"})
	require.NoError(t, err)

	child := log.With("provider", "gemini")
	child.Info(context.Background(), "request sent", "model", "gemini-3-flash-preview")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "request sent", entry["message"])
	require.Equal(t, "gemini", entry["provider"])
	require.Equal(t, "gemini-3-flash-preview", entry["model"])
	require.Equal(t, "generator", entry["component"])
	require.Equal(t, "infrastructure", entry["layer"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesCorrelationAndCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, Layer: "application"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "corr-1")
	log.Error(ctx, "generation failed", "error", errors.New("boom"), "reason", "transport")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "generation failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "transport", entry["reason"])
	require.Equal(t, "corr-1", entry["correlation_id"])
	require.Equal(t, "application", entry["layer"])
}

func TestLoggerRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}
