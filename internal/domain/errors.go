package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable signals that the catalog backend could not be
	// reached or returned a malformed response. Distinct from an empty result.
	ErrBackendUnavailable = errors.New("catalog backend unavailable")
	// ErrMissingScore signals a record without a numeric score that a
	// ranked intent requires.
	ErrMissingScore = errors.New("record missing required score")
	// ErrInvalidQuery signals an empty or unusable query string.
	ErrInvalidQuery = errors.New("no query provided")
)

// MissingScoreError wraps ErrMissingScore with the offending record and field.
type MissingScoreError struct {
	Creature string
	Field    string
}

func (e *MissingScoreError) Error() string {
	return fmt.Sprintf("%s: %q has no %s", ErrMissingScore.Error(), e.Creature, e.Field)
}

func (e *MissingScoreError) Unwrap() error { return ErrMissingScore }

// NewMissingScore creates a missing-score error for one record field.
func NewMissingScore(creature, field string) error {
	return &MissingScoreError{Creature: creature, Field: field}
}
