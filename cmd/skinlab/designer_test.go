package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDesignerCommand_RequiresTerminal(t *testing.T) {
	app, _ := newTestApp(t, nil)

	_, _, err := executeCommand(t, app, "designer")
	require.Error(t, err)
	require.ErrorIs(t, err, errNotTerminal)
	require.Contains(t, err.Error(), "skinlab generate")
}

func TestRootCommand_DefaultsToDesigner(t *testing.T) {
	app, _ := newTestApp(t, nil)

	_, _, err := executeCommand(t, app)
	require.ErrorIs(t, err, errNotTerminal)
}
