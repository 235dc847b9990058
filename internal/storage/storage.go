package storage

import (
	"context"

	apperrors "github.com/veilstar/forcealignment/internal/errors"
)

// ErrNotFound indicates a requested flag field is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// FlagStore persists per-character flag fields as opaque JSON payloads.
// It mirrors the host application's document flag model: one value per
// (character, field) pair, with get/set semantics and no transactions.
type FlagStore interface {
	// Get fetches the raw payload for a character field.
	// The boolean reports whether the field exists.
	Get(ctx context.Context, characterID, field string) ([]byte, bool, error)
	// Set persists the raw payload for a character field.
	Set(ctx context.Context, characterID, field string, payload []byte) error
	// ListCharacterIDs returns every character with at least one stored field.
	ListCharacterIDs(ctx context.Context) ([]string, error)
}
