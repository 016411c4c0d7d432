package domain

import (
	"fmt"
	"math"
	"strings"
)

// FieldError describes a single schema violation at a JSON field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found while validating a
// document or template. Validation never stops at the first failure.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records one violation at the given field path.
func (e *ValidationError) Add(path, message string) {
	e.Fields = append(e.Fields, FieldError{Path: path, Message: message})
}

func (e *ValidationError) addf(path, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Merge folds a nested validation result into e, prefixing each path.
func (e *ValidationError) Merge(prefix string, err error) {
	if err == nil {
		return
	}
	nested, ok := err.(*ValidationError)
	if !ok {
		e.addf(prefix, "%v", err)
		return
	}
	for _, f := range nested.Fields {
		path := prefix
		if f.Path != "" {
			path = prefix + "." + f.Path
		}
		e.Fields = append(e.Fields, FieldError{Path: path, Message: f.Message})
	}
}

// ErrOrNil returns e as an error only when at least one violation was
// recorded.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) requirePositive(path string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.addf(path, "must be a finite number")
		return
	}
	if v <= 0 {
		e.addf(path, "must be positive")
	}
}

func (e *ValidationError) requireUnitInterval(path string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.addf(path, "must be a finite number")
		return
	}
	if v < 0 || v > 1 {
		e.addf(path, "must be between 0 and 1")
	}
}

func (e *ValidationError) requireNonEmpty(path, v string) {
	if strings.TrimSpace(v) == "" {
		e.addf(path, "is required")
	}
}
