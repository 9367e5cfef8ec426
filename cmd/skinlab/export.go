package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/export"
)

const (
	formatBundle       = "bundle"
	formatCSS          = "css"
	formatRegistration = "registration"
)

// clipboardCopier copies text and reports which mechanism succeeded.
type clipboardCopier interface {
	Copy(ctx context.Context, text string) (string, error)
}

// ClipboardFactory builds the clipboard used by --copy.
type ClipboardFactory func(out io.Writer, osc52Only bool) clipboardCopier

func defaultClipboardFactory(out io.Writer, osc52Only bool) clipboardCopier {
	return export.DefaultClipboard(out, osc52Only)
}

type exportOptions struct {
	format     string
	copy       bool
	osc52      bool
	themesFile string
}

func newExportCmd(app *AppContext) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <theme-id>",
		Short: "Print the CSS variables and registration entry for a skin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", formatBundle, "Output: bundle, css or registration")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.osc52, "osc52", false, "Copy through the terminal (OSC 52) only")
	cmd.Flags().StringVar(&opts.themesFile, "themes", "", "Additional themes document to search")

	return cmd
}

func runExport(cmd *cobra.Command, app *AppContext, id string, opts *exportOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.export")

	themes, err := loadThemes(app, opts.themesFile)
	if err != nil {
		return err
	}
	t, err := findTheme(themes, id)
	if err != nil {
		return err
	}

	text, err := renderExport(t, opts.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	logger.Debug(ctx, "theme exported", "theme_id", t.ID, "format", opts.format)

	if !opts.copy {
		return nil
	}
	return copyText(ctx, cmd, app, text, opts.osc52, t.ID)
}

func renderExport(t theme.Theme, format string) (string, error) {
	switch format {
	case formatBundle:
		return export.Bundle(t), nil
	case formatCSS:
		return export.Stylesheet(t), nil
	case formatRegistration:
		return export.Registration(t), nil
	default:
		return "", newCommandError("export", "choosing output format", fmt.Errorf("unknown format %q", format), "Use --format bundle, css or registration.")
	}
}

func copyText(ctx context.Context, cmd *cobra.Command, app *AppContext, text string, osc52Only bool, themeID string) error {
	via, err := app.newClipboard(cmd.ErrOrStderr(), osc52Only).Copy(ctx, text)
	if err != nil {
		app.Logger.Warn(ctx, "clipboard copy failed", "theme_id", themeID, "error", err.Error())
		return newCommandError("copy to clipboard", themeID, err, "Pass --osc52 when working over SSH, or redirect the output to a file.")
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s via %s\n", themeID, via)
	return nil
}
