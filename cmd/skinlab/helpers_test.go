package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingClipboard struct {
	text  string
	err   error
	osc52 bool
}

func (c *recordingClipboard) Copy(_ context.Context, text string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.text = text
	return "memory", nil
}

func newTestApp(t *testing.T, env map[string]string) (*AppContext, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	logs := &bytes.Buffer{}
	app := newAppContext()
	app.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	app.logSink = logs
	t.Cleanup(func() { _ = app.Close() })
	return app, logs
}

func useClipboard(app *AppContext, clip *recordingClipboard) {
	app.newClipboard = func(_ io.Writer, osc52Only bool) clipboardCopier {
		clip.osc52 = osc52Only
		return clip
	}
}

func executeCommand(t *testing.T, app *AppContext, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd(app)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeGemini answers every request with a generateContent envelope around text.
func fakeGemini(t *testing.T, text string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	envelope, err := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []interface{}{map[string]interface{}{"text": text}},
				},
			},
		},
	})
	require.NoError(t, err)

	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}
