package main

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/presets"
)

// loadThemes returns the built-in presets followed by the themes in path, if
// given. A theme in path may not reuse a built-in id.
func loadThemes(app *AppContext, path string) ([]theme.Theme, error) {
	themes := append([]theme.Theme(nil), app.Presets...)
	if path == "" {
		return themes, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newCommandError("load themes", path, err, "Check that the file exists and is readable.")
	}
	extra, err := presets.Parse(path, data)
	if err != nil {
		return nil, newCommandError("load themes", path, err, "The file must hold a 'presets:' list with every colour slot set.")
	}
	for _, t := range extra {
		if _, ok := app.FindPreset(t.ID); ok {
			return nil, newCommandError("load themes", path, fmt.Errorf("theme id %q is already used by a built-in preset", t.ID), "Rename the theme id.")
		}
	}
	return append(themes, extra...), nil
}

func findTheme(themes []theme.Theme, id string) (theme.Theme, error) {
	for _, t := range themes {
		if t.ID == id {
			return t, nil
		}
	}
	return theme.Theme{}, newCommandError("find theme", id, fmt.Errorf("no theme with id %q", id), "Run 'skinlab presets' to list the available ids.")
}
