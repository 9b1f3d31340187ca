package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor is returned for colour values that are not 3, 4, 6 or 8
	// hex digits.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidValue is returned for out of range settings.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
