package config

import "time"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel   = "gemini-3-flash-preview"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"

	DefaultTimeout = 60 * time.Second
)

// Config represents the full skinlab configuration document.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// GeneratorConfig selects and parameterises the palette generation backend.
type GeneratorConfig struct {
	Provider  string        `yaml:"provider" validate:"required,oneof=gemini openai"`
	Model     string        `yaml:"model" validate:"required,model_name"`
	BaseURL   string        `yaml:"base_url" validate:"required,endpoint"`
	APIKeyEnv string        `yaml:"api_key_env,omitempty" validate:"omitempty,env_name"`
	Timeout   time.Duration `yaml:"timeout,omitempty" validate:"gt=0,max=10m"`

	// APIKey is resolved from the environment and never read from the file.
	APIKey string `yaml:"-"`
}

// LogConfig controls where and how logs are written.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" validate:"oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"oneof=text json"`
	File   string `yaml:"file,omitempty" validate:"omitempty,filepath"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	gen := &cfg.Generator
	if gen.Provider == "" {
		gen.Provider = ProviderGemini
	}
	switch gen.Provider {
	case ProviderOpenAI:
		if gen.Model == "" {
			gen.Model = DefaultOpenAIModel
		}
		if gen.BaseURL == "" {
			gen.BaseURL = DefaultOpenAIBaseURL
		}
	case ProviderGemini:
		if gen.Model == "" {
			gen.Model = DefaultGeminiModel
		}
		if gen.BaseURL == "" {
			gen.BaseURL = DefaultGeminiBaseURL
		}
	}
	if gen.Timeout == 0 {
		gen.Timeout = DefaultTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
