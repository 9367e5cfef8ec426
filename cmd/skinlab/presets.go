package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
)

type presetsOptions struct {
	jsonOutput bool
}

func newPresetsCmd(app *AppContext) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in skins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return renderPresetsJSON(cmd, app.Presets)
			}
			return renderPresetsTable(cmd, app.Presets)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderPresetsTable(cmd *cobra.Command, presets []theme.Theme) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tICON\tPRIMARY\tBACKGROUND")

	useUnicode := isTerminal(cmd.OutOrStdout())

	for _, t := range presets {
		icon := t.Icon
		if !useUnicode {
			icon = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, icon, t.Colors.Primary, t.Colors.BgMain)
	}

	return writer.Flush()
}

type presetsJSONPayload struct {
	Version string        `json:"version"`
	Count   int           `json:"count"`
	Themes  []theme.Theme `json:"themes"`
}

func renderPresetsJSON(cmd *cobra.Command, presets []theme.Theme) error {
	payload := presetsJSONPayload{
		Version: "1.0",
		Count:   len(presets),
		Themes:  presets,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
