package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LookupEnv matches os.LookupEnv so tests can supply a fixed environment.
type LookupEnv func(key string) (string, bool)

// DefaultPath returns $XDG_CONFIG_HOME/skinlab/config.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "skinlab", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file is only an error when
// required is true; otherwise defaults are used. Environment overrides and
// the API key are applied from lookup before validation.
func Load(path string, required bool, lookup LookupEnv) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, data, &cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, skinerrors.NewParseError(path, 0, err)
		}
	}

	applyEnv(&cfg, lookup)
	applyDefaults(&cfg)
	cfg.Generator.APIKey = cfg.Generator.ResolveAPIKey(lookup)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return skinerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

// Validate checks cfg against its struct rules.
func Validate(cfg *Config) error {
	if cfg == nil {
		return skinerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return ConvertValidationError("config", err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
