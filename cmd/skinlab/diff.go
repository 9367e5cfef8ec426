package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinlab/internal/export"
)

func newDiffCmd(app *AppContext) *cobra.Command {
	var themesFile string

	cmd := &cobra.Command{
		Use:   "diff <theme-id> <theme-id>",
		Short: "Compare the stylesheets of two skins",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := loadThemes(app, themesFile)
			if err != nil {
				return err
			}
			a, err := findTheme(themes, args[0])
			if err != nil {
				return err
			}
			b, err := findTheme(themes, args[1])
			if err != nil {
				return err
			}

			text, stats := export.Diff(a, b)
			if text == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Themes render identically.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d added, %d removed\n", stats.Added, stats.Removed)
			return nil
		},
	}

	cmd.Flags().StringVar(&themesFile, "themes", "", "Additional themes document to search")

	return cmd
}
