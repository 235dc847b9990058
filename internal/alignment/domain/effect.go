package domain

import (
	"fmt"

	apperrors "github.com/veilstar/forcealignment/internal/errors"
)

// Category classifies an effect's alignment polarity.
type Category string

const (
	// CategoryBenevolent pulls the balance toward the light side.
	CategoryBenevolent Category = "benevolent"
	// CategoryCorrupting pulls the balance toward the dark side.
	CategoryCorrupting Category = "corrupting"
	// CategoryOther marks effects with no alignment polarity.
	CategoryOther Category = "other"
)

// ErrInvalidEffect indicates an effect with a negative magnitude.
var ErrInvalidEffect = apperrors.New(apperrors.CodeInvalidEffect, "effect magnitude must be non-negative")

// Effect describes a power applied to a character by the game event source.
type Effect struct {
	// Name identifies the power, e.g. "battle meditation".
	Name string
	// Category is the alignment polarity of the effect.
	Category Category
	// Magnitude is the potency of the effect, non-negative.
	Magnitude int
}

// Validate checks effect invariants.
func (e Effect) Validate() error {
	if e.Magnitude < 0 {
		return ErrInvalidEffect
	}
	return nil
}

// AlignmentRelevant reports whether applying the effect moves the balance.
// Only polar effects with a positive magnitude count.
func (e Effect) AlignmentRelevant() bool {
	if e.Magnitude <= 0 {
		return false
	}
	return e.Category == CategoryBenevolent || e.Category == CategoryCorrupting
}

// Sign returns +1 for benevolent effects, -1 for corrupting ones, 0 otherwise.
func (e Effect) Sign() int {
	switch e.Category {
	case CategoryBenevolent:
		return 1
	case CategoryCorrupting:
		return -1
	default:
		return 0
	}
}

// FirstApplicationReason is the display reason for a first-time application.
func FirstApplicationReason(name string) string {
	return fmt.Sprintf("first application of %s", name)
}

// RepeatApplicationReason is the display reason for a repeat application.
func RepeatApplicationReason(name string) string {
	return fmt.Sprintf("repeat application of %s", name)
}
