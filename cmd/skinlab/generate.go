package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/export"
)

type generateOptions struct {
	base       string
	jsonOutput bool
	copy       bool
	osc52      bool
}

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Generate a skin from a description and print its export",
		Example: `  skinlab generate neon rain over a sleeping city
  skinlab generate --base daylight --json soft paper and ink`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.base, "base", "", "Preset to fill the slots the model leaves out (default: first preset)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the generated theme as JSON")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the export to the clipboard")
	cmd.Flags().BoolVar(&opts.osc52, "osc52", false, "Copy through the terminal (OSC 52) only")

	return cmd
}

type generateJSONPayload struct {
	Version  string      `json:"version"`
	Prompt   string      `json:"prompt"`
	Base     string      `json:"base"`
	Provider string      `json:"provider"`
	Model    string      `json:"model"`
	Theme    theme.Theme `json:"theme"`
}

func runGenerate(cmd *cobra.Command, app *AppContext, prompt string, opts *generateOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.generate")

	service, err := app.DesignerService(logger)
	if err != nil {
		return err
	}

	if opts.base != "" {
		if _, err := service.Select(ctx, opts.base); err != nil {
			return newCommandError("select base theme", opts.base, err, "Run 'skinlab presets' to list the available ids.")
		}
	}
	base := service.Store().Active()

	generated, err := service.Generate(ctx, prompt)
	if err != nil {
		step, suggestion := generationSuggestion(err)
		return newCommandError("generate skin", step, err, suggestion)
	}

	info := service.Generator()
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(generateJSONPayload{
			Version:  "1.0",
			Prompt:   strings.TrimSpace(prompt),
			Base:     base.ID,
			Provider: info.Provider,
			Model:    info.Model,
			Theme:    generated,
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s from %s with %s/%s\n", generated.Label(), base.ID, info.Provider, info.Model)
		if err := export.WriteBundle(cmd.OutOrStdout(), generated); err != nil {
			return err
		}
	}

	if !opts.copy {
		return nil
	}
	return copyText(ctx, cmd, app, service.Export(ctx, generated), opts.osc52, generated.ID)
}
