package domain

import (
	"time"

	apperrors "github.com/veilstar/forcealignment/internal/errors"
)

var (
	// ErrEmptyReason indicates a transaction without a reason.
	ErrEmptyReason = apperrors.New(apperrors.CodeEmptyReason, "transaction reason is required")
	// ErrZeroDelta indicates a transaction that would not change the balance.
	ErrZeroDelta = apperrors.New(apperrors.CodeInvalidAmount, "transaction delta must be non-zero")
)

// Transaction is one signed, reasoned, timestamped entry in a character's
// alignment ledger. The timestamp doubles as the transaction identifier
// and is unique per character.
//
// FirstApplication and EffectName tag entries created by the first use of
// a power so rollback can reverse cast tracking without parsing the
// display text in Reason.
type Transaction struct {
	// Timestamp is milliseconds since the Unix epoch, unique per character.
	Timestamp int64
	// Delta is the signed balance change (positive = light, negative = dark).
	Delta int
	// Reason is a free-text description, display-only.
	Reason string
	// FirstApplication marks the first use of the named effect.
	FirstApplication bool
	// EffectName is set when the transaction was produced by an effect.
	EffectName string
}

// Time returns the transaction timestamp as a UTC time value.
func (t Transaction) Time() time.Time {
	return time.UnixMilli(t.Timestamp).UTC()
}

// DisplayTime renders the timestamp for listing alongside the raw identifier.
func (t Transaction) DisplayTime() string {
	return t.Time().Format(time.RFC3339)
}

// ValidateTransaction checks invariants that hold for every ledger entry.
func ValidateTransaction(tx Transaction) error {
	if tx.Reason == "" {
		return ErrEmptyReason
	}
	if tx.Delta == 0 {
		return ErrZeroDelta
	}
	return nil
}
