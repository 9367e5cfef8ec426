package config

import (
	"testing"
)

func TestGetValidator(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}

func TestCustomRules(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name  string
		tag   string
		value string
		ok    bool
	}{
		{"theme id", "theme_id", "kosmos", true},
		{"theme id with dash", "theme_id", "gen-1739812345678-1a2b3c4d", true},
		{"theme id upper", "theme_id", "Kosmos", false},
		{"theme id leading dash", "theme_id", "-kosmos", false},
		{"theme id empty", "theme_id", "", false},

		{"glyph emoji", "glyph", "✨", true},
		{"glyph zwj sequence", "glyph", "👩‍🚀", true},
		{"glyph flag", "glyph", "🇯🇵", true},
		{"glyph ascii", "glyph", "K", true},
		{"glyph two emoji", "glyph", "✨✨", false},
		{"glyph padded", "glyph", " ✨", false},
		{"glyph empty", "glyph", "", false},

		{"env name", "env_name", "GEMINI_API_KEY", true},
		{"env name digit first", "env_name", "1KEY", false},
		{"env name dash", "env_name", "MY-KEY", false},

		{"model", "model_name", "gemini-3-flash-preview", true},
		{"model with path", "model_name", "openrouter/anthropic:beta", true},
		{"model space", "model_name", "gpt 4", false},

		{"endpoint https", "endpoint", "https://generativelanguage.googleapis.com/v1beta", true},
		{"endpoint local", "endpoint", "http://127.0.0.1:8080/v1", true},
		{"endpoint no host", "endpoint", "https:///v1", false},
		{"endpoint query", "endpoint", "https://example.com/v1?key=x", false},
		{"endpoint scheme", "endpoint", "ftp://example.com", false},
		{"endpoint space", "endpoint", "https://example.com/ v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if (err == nil) != tt.ok {
				t.Errorf("%s(%q): expected ok=%v, got err=%v", tt.tag, tt.value, tt.ok, err)
			}
		})
	}
}
