// Package transform provides composable what-if edits to a profile, such as
// raising the salary or switching the new-regime edition. Transforms never
// modify their input; each returns a new profile.
package transform

import (
	"fmt"

	"github.com/rgehrsitz/intax/internal/domain"
)

// ProfileTransform is a single named edit to a profile
type ProfileTransform interface {
	// Apply returns a modified copy of base
	Apply(base domain.Profile) (domain.Profile, error)

	// Name returns a short identifier (e.g. "raise_salary")
	Name() string

	// Description returns a human-readable summary of the edit
	Description() string

	// Validate checks the parameters against base without applying them
	Validate(base domain.Profile) error
}

// ApplyTransforms applies transforms in order, each to the previous output
func ApplyTransforms(base domain.Profile, transforms []ProfileTransform) (domain.Profile, error) {
	current := clone(base)
	for i, t := range transforms {
		if t == nil {
			return current, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return current, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return current, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// clone copies a profile including its expense slice
func clone(p domain.Profile) domain.Profile {
	out := p
	if p.Expenses != nil {
		out.Expenses = append([]domain.ExpenseItem(nil), p.Expenses...)
	}
	return out
}

// TransformError represents an error that occurred during transformation
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
