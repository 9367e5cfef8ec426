package config

import (
	"strings"
	"time"
)

const (
	EnvProvider = "SKINLAB_PROVIDER"
	EnvModel    = "SKINLAB_MODEL"
	EnvBaseURL  = "SKINLAB_BASE_URL"
	EnvTimeout  = "SKINLAB_TIMEOUT"
	EnvLogLevel = "SKINLAB_LOG_LEVEL"
	EnvAPIKey   = "SKINLAB_API_KEY"

	envGenericAPIKey = "API_KEY"
	envGeminiAPIKey  = "GEMINI_API_KEY"
	envOpenAIAPIKey  = "OPENAI_API_KEY"
)

func applyEnv(cfg *Config, lookup LookupEnv) {
	if v, ok := lookupTrimmed(lookup, EnvProvider); ok {
		v = strings.ToLower(v)
		if v != cfg.Generator.Provider {
			// Provider-specific defaults must be recomputed for the new backend.
			cfg.Generator.Model = ""
			cfg.Generator.BaseURL = ""
		}
		cfg.Generator.Provider = v
	}
	if v, ok := lookupTrimmed(lookup, EnvModel); ok {
		cfg.Generator.Model = v
	}
	if v, ok := lookupTrimmed(lookup, EnvBaseURL); ok {
		cfg.Generator.BaseURL = v
	}
	if v, ok := lookupTrimmed(lookup, EnvTimeout); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Generator.Timeout = d
		}
	}
	if v, ok := lookupTrimmed(lookup, EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
}

// ResolveAPIKey returns the first non-blank key from: the variable named by
// api_key_env, SKINLAB_API_KEY, API_KEY, then the provider's conventional
// variable. It returns "" when none is set.
func (g GeneratorConfig) ResolveAPIKey(lookup LookupEnv) string {
	candidates := make([]string, 0, 4)
	if g.APIKeyEnv != "" {
		candidates = append(candidates, g.APIKeyEnv)
	}
	candidates = append(candidates, EnvAPIKey, envGenericAPIKey)
	switch g.Provider {
	case ProviderOpenAI:
		candidates = append(candidates, envOpenAIAPIKey)
	default:
		candidates = append(candidates, envGeminiAPIKey)
	}

	for _, name := range candidates {
		if v, ok := lookupTrimmed(lookup, name); ok {
			return v
		}
	}
	return ""
}

func lookupTrimmed(lookup LookupEnv, key string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
