package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinlab/internal/export"
	tuidesigner "github.com/alexisbeaulieu97/skinlab/internal/tui/designer"
)

var errNotTerminal = errors.New("standard output is not a terminal")

func newDesignerCmd(app *AppContext) *cobra.Command {
	var osc52Only bool

	cmd := &cobra.Command{
		Use:         "designer",
		Short:       "Launch the interactive skin designer",
		Long:        `Launch the TUI to describe a skin, preview it on the mock dashboard and copy the export.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignerWith(cmd, app, osc52Only)
		},
	}

	cmd.Flags().BoolVar(&osc52Only, "osc52", false, "Copy through the terminal (OSC 52) only, e.g. over SSH")

	return cmd
}

func runDesigner(cmd *cobra.Command, app *AppContext) error {
	return runDesignerWith(cmd, app, false)
}

func runDesignerWith(cmd *cobra.Command, app *AppContext, osc52Only bool) error {
	ctx, logger := app.CommandContext(cmd, "command.designer")

	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("launch designer", "checking terminal", errNotTerminal, "Run skinlab in an interactive terminal, or use 'skinlab generate' for scripts.")
	}

	service, err := app.DesignerService(logger)
	if err != nil {
		return err
	}

	info := service.Generator()
	logger.Info(ctx, "launching designer", "provider", info.Provider, "model", info.Model)

	m := tuidesigner.NewModel(tuidesigner.Options{
		Context:   ctx,
		Service:   service,
		Clipboard: export.DefaultClipboard(os.Stderr, osc52Only),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "designer exited with error", "error", err)
		return newCommandError("run designer", "terminal session", err, "Try resizing the terminal or rerun with --log-file to capture details.")
	}

	logger.Info(ctx, "designer closed", "history", len(service.Store().History()))
	return nil
}
