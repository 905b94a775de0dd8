package config

import (
	"errors"
	"fmt"
)

// ErrInvalidValue indicates a setting is outside its allowed range.
var ErrInvalidValue = errors.New("invalid config value")

// ParseError reports a malformed config file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a setting that failed validation.
type ValidationError struct {
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidValue.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}
