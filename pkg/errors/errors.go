package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EmptyPromptError is returned when a generation is requested with a blank
// prompt. Callers treat it as a silent no-op.
type EmptyPromptError struct{}

func (e *EmptyPromptError) Error() string {
	return "prompt is empty"
}

// GenerationReason classifies why a palette generation failed.
type GenerationReason string

const (
	ReasonEmptyPrompt       GenerationReason = "empty_prompt"
	ReasonMissingAPIKey     GenerationReason = "missing_api_key"
	ReasonTransport         GenerationReason = "transport"
	ReasonEmptyResponse     GenerationReason = "empty_response"
	ReasonMalformedResponse GenerationReason = "malformed_response"
)

// GenerationError represents a hard failure of a palette generation request.
// The theme store is never modified when one is returned.
type GenerationError struct {
	Reason GenerationReason
	Err    error
}

// NewGenerationError constructs a GenerationError.
func NewGenerationError(reason GenerationReason, err error) error {
	return &GenerationError{Reason: reason, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("generation error [%s]: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation error [%s]", e.Reason)
}

// Unwrap exposes the underlying error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
