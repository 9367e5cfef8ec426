// Package presets loads the preset themes baked into the binary.
package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/skinlab/internal/config"
	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

const builtinSource = "presets.yaml"

//go:embed presets.yaml
var builtinYAML []byte

var (
	builtinOnce   sync.Once
	builtinThemes []theme.Theme
	builtinErr    error

	yamlLine = regexp.MustCompile(`line (\d+)`)
)

type document struct {
	Presets []theme.Theme `yaml:"presets" validate:"required,min=1,dive"`
}

// Builtin returns the embedded presets. The first one is the initial active
// theme. The document is parsed once; callers receive their own copy.
func Builtin() ([]theme.Theme, error) {
	builtinOnce.Do(func() {
		builtinThemes, builtinErr = Parse(builtinSource, builtinYAML)
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return append([]theme.Theme(nil), builtinThemes...), nil
}

// Parse decodes and validates a presets document. Every preset must carry all
// colour slots, a well-formed unique id and a single-glyph icon.
func Parse(source string, data []byte) ([]theme.Theme, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, skinerrors.NewParseError(source, lineOf(err), err)
	}

	if err := config.GetValidator().Struct(doc); err != nil {
		return nil, config.ConvertValidationError("", err)
	}

	seen := make(map[string]int, len(doc.Presets))
	for i, t := range doc.Presets {
		if prev, dup := seen[t.ID]; dup {
			field := fmt.Sprintf("presets[%d].id", i)
			return nil, skinerrors.NewValidationError(field, fmt.Sprintf("duplicate preset id %q (also presets[%d])", t.ID, prev), nil)
		}
		seen[t.ID] = i

		if missing := t.Colors.Missing(); len(missing) > 0 {
			field := fmt.Sprintf("presets[%d].colors.%s", i, missing[0])
			return nil, skinerrors.NewValidationError(field, fmt.Sprintf("preset %q leaves %d slot(s) blank", t.ID, len(missing)), nil)
		}
	}

	return doc.Presets, nil
}

func lineOf(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
