package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

// ConvertValidationError normalizes validator errors into skinlab validation
// errors. Only the first failing field is reported; root replaces the Go type
// name at the head of the namespace, or drops it when empty.
func ConvertValidationError(root string, err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlishFieldName(root, fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, fe.Param())
		}
		return skinerrors.NewValidationError(field, msg, err)
	}

	return skinerrors.NewValidationError(root, err.Error(), err)
}

// yamlishFieldName turns "Config.Generator.BaseURL" into "config.generator.baseurl".
func yamlishFieldName(root string, fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	switch {
	case len(parts) < 2:
	case root == "":
		parts = parts[1:]
	default:
		parts[0] = root
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
