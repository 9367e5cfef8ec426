package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFormat  string
	logFile    string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "skinlab",
		Short: "skinlab designs colour skins for the Kosmos panel",
		Long: `skinlab turns a short description into a complete colour skin, previews it
on a mock dashboard and exports it as CSS variables plus a registration entry.

Run without arguments to open the interactive designer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{annotationInteractive: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationSkipBootstrap] == "true" {
				return nil
			}
			return app.Bootstrap(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the designer
			if len(args) == 0 {
				return runDesigner(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default: $XDG_CONFIG_HOME/skinlab/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newDesignerCmd(app))
	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newPresetsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
