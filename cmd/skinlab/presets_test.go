package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsCommand_TableOutput(t *testing.T) {
	app, _ := newTestApp(t, nil)

	stdout, _, err := executeCommand(t, app, "presets")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "PRIMARY")
	require.Contains(t, stdout, "kosmos")
	require.Contains(t, stdout, "Synthwave")
	// buffer output is not a terminal, so icons fall back to ASCII
	require.NotContains(t, stdout, "🌌")
}

func TestPresetsCommand_JSONOutput(t *testing.T) {
	app, _ := newTestApp(t, nil)

	stdout, _, err := executeCommand(t, app, "presets", "--json")
	require.NoError(t, err)

	var payload presetsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, len(app.Presets), payload.Count)
	require.Equal(t, "kosmos", payload.Themes[0].ID)
	require.True(t, payload.Themes[0].Colors.Complete())
}

func TestPresetsCommand_InvalidConfigFails(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"SKINLAB_PROVIDER": "claude"})

	_, _, err := executeCommand(t, app, "presets")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
}
