package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinlab/internal/presets"
)

const neonFragment = `{"name":"Neon Rain","icon":"🌧","colors":{"primary":"#ff00aa","textMain":"#f0f0ff"}}`

func generatorEnv(baseURL string) map[string]string {
	return map[string]string{
		"SKINLAB_BASE_URL": baseURL,
		"GEMINI_API_KEY":   "AIzaTEST",
	}
}

func TestGenerateCommand_PrintsBundle(t *testing.T) {
	srv, calls := fakeGemini(t, neonFragment)
	app, _ := newTestApp(t, generatorEnv(srv.URL))

	stdout, stderr, err := executeCommand(t, app, "generate", "neon", "rain")
	require.NoError(t, err)
	require.EqualValues(t, 1, calls.Load())

	require.Contains(t, stderr, "Generated 🌧 Neon Rain from kosmos with gemini/")
	require.Contains(t, stdout, `[data-theme="gen-`)
	require.Contains(t, stdout, "--primary: #ff00aa;")
	require.Contains(t, stdout, "name: '🌧 Neon Rain'")
}

func TestGenerateCommand_JSONFillsFromBase(t *testing.T) {
	builtin, err := presets.Builtin()
	require.NoError(t, err)
	var daylightBg string
	for _, p := range builtin {
		if p.ID == "daylight" {
			daylightBg = p.Colors.BgMain
		}
	}
	require.NotEmpty(t, daylightBg)

	srv, _ := fakeGemini(t, neonFragment)
	app, _ := newTestApp(t, generatorEnv(srv.URL))

	stdout, _, err := executeCommand(t, app, "generate", "--base", "daylight", "--json", "  soft paper  ")
	require.NoError(t, err)

	var payload generateJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "soft paper", payload.Prompt)
	require.Equal(t, "daylight", payload.Base)
	require.Equal(t, "gemini", payload.Provider)
	require.True(t, strings.HasPrefix(payload.Theme.ID, "gen-"))
	require.Equal(t, "Neon Rain", payload.Theme.Name)
	require.Equal(t, "#ff00aa", payload.Theme.Colors.Primary)
	require.Equal(t, daylightBg, payload.Theme.Colors.BgMain)
	require.True(t, payload.Theme.Colors.Complete())
}

func TestGenerateCommand_UnknownBase(t *testing.T) {
	srv, calls := fakeGemini(t, neonFragment)
	app, _ := newTestApp(t, generatorEnv(srv.URL))

	_, _, err := executeCommand(t, app, "generate", "--base", "nope", "anything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to select base theme")
	require.Zero(t, calls.Load())
}

func TestGenerateCommand_MissingAPIKey(t *testing.T) {
	srv, calls := fakeGemini(t, neonFragment)
	app, _ := newTestApp(t, map[string]string{"SKINLAB_BASE_URL": srv.URL})

	_, _, err := executeCommand(t, app, "generate", "ocean")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to generate skin: authenticating")
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
	require.Zero(t, calls.Load())
}

func TestGenerateCommand_MalformedReply(t *testing.T) {
	srv, _ := fakeGemini(t, "I cannot help with that")
	app, _ := newTestApp(t, generatorEnv(srv.URL))

	_, _, err := executeCommand(t, app, "generate", "ocean")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing the response")
}

func TestGenerateCommand_BlankPrompt(t *testing.T) {
	srv, calls := fakeGemini(t, neonFragment)
	app, _ := newTestApp(t, generatorEnv(srv.URL))

	_, _, err := executeCommand(t, app, "generate", "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading prompt")
	require.Zero(t, calls.Load())
}

func TestGenerateCommand_CopyAndJSONLogsToFile(t *testing.T) {
	srv, _ := fakeGemini(t, neonFragment)
	app, _ := newTestApp(t, generatorEnv(srv.URL))
	clip := &recordingClipboard{}
	useClipboard(app, clip)
	logPath := filepath.Join(t.TempDir(), "logs", "skinlab.log")

	_, _, err := executeCommand(t, app, "generate", "--copy", "--log-format", "json", "--log-file", logPath, "-v", "neon")
	require.NoError(t, err)
	require.Contains(t, clip.text, "/* theme-manager.js Registration */")
	require.NoError(t, app.Close())

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	first := strings.SplitN(strings.TrimSpace(string(raw)), "\n", 2)[0]
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(first), &entry), "log lines are JSON objects")
	require.Contains(t, string(raw), "generation.completed")
}

func TestGenerateCommand_ConfigFile(t *testing.T) {
	srv, calls := fakeGemini(t, neonFragment)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator:\n  provider: gemini\n  model: gemini-test\n  base_url: "+srv.URL+"\n  api_key_env: MY_KEY\n"), 0o644))

	app, _ := newTestApp(t, map[string]string{"MY_KEY": "secret"})
	_, _, err := executeCommand(t, app, "--config", path, "generate", "--json", "neon")
	require.NoError(t, err)
	require.EqualValues(t, 1, calls.Load())
	require.Equal(t, "gemini-test", app.Config.Generator.Model)
}

func TestRootCommand_MissingExplicitConfig(t *testing.T) {
	app, _ := newTestApp(t, nil)

	_, _, err := executeCommand(t, app, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "presets")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
}
