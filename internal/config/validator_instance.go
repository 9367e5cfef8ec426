package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeIDPattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)
	envNamePattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	modelNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:/-]*$`)
)

// validatorInstance configures and returns the shared validator instance used
// for configuration files and preset themes.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})

		// A glyph is exactly one user-perceived character, emoji sequences included.
		_ = v.RegisterValidation("glyph", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if strings.TrimSpace(s) != s {
				return false
			}
			return uniseg.GraphemeClusterCount(s) == 1
		})

		_ = v.RegisterValidation("env_name", func(fl validator.FieldLevel) bool {
			return envNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("model_name", func(fl validator.FieldLevel) bool {
			return modelNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("endpoint", func(fl validator.FieldLevel) bool {
			return isEndpoint(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isEndpoint accepts absolute http(s) URLs with a host and no query or fragment.
func isEndpoint(raw string) bool {
	if raw == "" || strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}
	return u.Host != "" && u.RawQuery == "" && u.Fragment == ""
}
