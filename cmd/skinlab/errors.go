package main

import (
	"errors"
	"fmt"

	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	var existing *commandError
	if errors.As(cause, &existing) {
		return cause
	}
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// generationSuggestion maps a generation failure to the next step for the user.
func generationSuggestion(err error) (string, string) {
	var genErr *skinerrors.GenerationError
	if !errors.As(err, &genErr) {
		return "generating palette", "Try again, or check the log output with --verbose."
	}
	switch genErr.Reason {
	case skinerrors.ReasonEmptyPrompt:
		return "reading prompt", "Describe the skin you want, e.g. skinlab generate neon rain at night."
	case skinerrors.ReasonMissingAPIKey:
		return "authenticating", "Set GEMINI_API_KEY (or OPENAI_API_KEY with provider openai), or SKINLAB_API_KEY."
	case skinerrors.ReasonTransport:
		return "contacting the generation service", "Check your network, API key and generator.base_url."
	case skinerrors.ReasonEmptyResponse:
		return "reading the response", "The model returned nothing usable; try rephrasing the prompt."
	case skinerrors.ReasonMalformedResponse:
		return "parsing the response", "The model did not return a palette; try again or switch generator.model."
	default:
		return "generating palette", "Try again, or check the log output with --verbose."
	}
}
