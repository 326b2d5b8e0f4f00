package service

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("not permitted")
	ErrConflict   = errors.New("the post was changed by someone else")
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports rejected input. Submitted holds the values as the
// caller sent them so a form can be shown again with nothing lost.
type ValidationError struct {
	Fields    map[string]string // field name -> problem
	Submitted any
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// fieldErrors collects problems before deciding whether to fail.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, seen := f[field]; !seen {
		f[field] = msg
	}
}

func (f fieldErrors) err(submitted any) error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f, Submitted: submitted}
}
