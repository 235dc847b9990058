package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/veilstar/forcealignment/internal/alignment/domain"
)

// Flag field names, stable across store implementations.
const (
	FieldBalance             = "balance"
	FieldAcknowledgedBalance = "acknowledged-balance"
	FieldTransactions        = "transactions"
	FieldPreviouslyCast      = "previously-cast"
	FieldBenevolences        = "benevolences"
	FieldCorruptions         = "corruptions"
)

// Flags wraps a FlagStore with typed accessors for the alignment fields.
type Flags struct {
	store FlagStore
}

// NewFlags creates a typed flag adapter over a raw store.
func NewFlags(store FlagStore) *Flags {
	return &Flags{store: store}
}

// EnsureDefaults initializes any missing fields for a character to their
// defaults. It reports whether any field was initialized.
func (f *Flags) EnsureDefaults(ctx context.Context, characterID string) (bool, error) {
	if f == nil || f.store == nil {
		return false, fmt.Errorf("flag store is not configured")
	}
	if strings.TrimSpace(characterID) == "" {
		return false, fmt.Errorf("character id is required")
	}

	defaults := domain.DefaultLedgerState()
	fields := []struct {
		name  string
		value any
	}{
		{name: FieldBalance, value: defaults.Balance},
		{name: FieldAcknowledgedBalance, value: defaults.AcknowledgedBalance},
		{name: FieldTransactions, value: defaults.Transactions},
		{name: FieldPreviouslyCast, value: defaults.PreviouslyCast},
		{name: FieldBenevolences, value: defaults.Benevolences},
		{name: FieldCorruptions, value: defaults.Corruptions},
	}

	initialized := false
	for _, field := range fields {
		_, ok, err := f.store.Get(ctx, characterID, field.name)
		if err != nil {
			return initialized, fmt.Errorf("get %s: %w", field.name, err)
		}
		if ok {
			continue
		}
		if err := f.setJSON(ctx, characterID, field.name, field.value); err != nil {
			return initialized, err
		}
		initialized = true
	}
	return initialized, nil
}

// Balance loads the stored balance. A missing field reads as zero.
func (f *Flags) Balance(ctx context.Context, characterID string) (int, error) {
	var balance int
	if err := f.getJSON(ctx, characterID, FieldBalance, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// SetBalance persists the stored balance.
func (f *Flags) SetBalance(ctx context.Context, characterID string, balance int) error {
	return f.setJSON(ctx, characterID, FieldBalance, balance)
}

// AcknowledgedBalance loads the last balance the player confirmed seeing.
func (f *Flags) AcknowledgedBalance(ctx context.Context, characterID string) (int, error) {
	var balance int
	if err := f.getJSON(ctx, characterID, FieldAcknowledgedBalance, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// SetAcknowledgedBalance persists the acknowledged balance.
func (f *Flags) SetAcknowledgedBalance(ctx context.Context, characterID string, balance int) error {
	return f.setJSON(ctx, characterID, FieldAcknowledgedBalance, balance)
}

// Transactions loads the transaction log in stored order.
func (f *Flags) Transactions(ctx context.Context, characterID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := f.getJSON(ctx, characterID, FieldTransactions, &transactions); err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

// SetTransactions persists the transaction log.
func (f *Flags) SetTransactions(ctx context.Context, characterID string, transactions []domain.Transaction) error {
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return f.setJSON(ctx, characterID, FieldTransactions, transactions)
}

// PreviouslyCast loads the set of effect names applied at least once.
func (f *Flags) PreviouslyCast(ctx context.Context, characterID string) ([]string, error) {
	return f.stringList(ctx, characterID, FieldPreviouslyCast)
}

// SetPreviouslyCast persists the cast-tracking set.
func (f *Flags) SetPreviouslyCast(ctx context.Context, characterID string, names []string) error {
	if names == nil {
		names = []string{}
	}
	return f.setJSON(ctx, characterID, FieldPreviouslyCast, names)
}

// Benevolences loads the pass-through benevolence labels.
func (f *Flags) Benevolences(ctx context.Context, characterID string) ([]string, error) {
	return f.stringList(ctx, characterID, FieldBenevolences)
}

// Corruptions loads the pass-through corruption labels.
func (f *Flags) Corruptions(ctx context.Context, characterID string) ([]string, error) {
	return f.stringList(ctx, characterID, FieldCorruptions)
}

// ListCharacterIDs returns every character with stored alignment flags.
func (f *Flags) ListCharacterIDs(ctx context.Context) ([]string, error) {
	if f == nil || f.store == nil {
		return nil, fmt.Errorf("flag store is not configured")
	}
	return f.store.ListCharacterIDs(ctx)
}

func (f *Flags) stringList(ctx context.Context, characterID, field string) ([]string, error) {
	var values []string
	if err := f.getJSON(ctx, characterID, field, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// getJSON decodes a field payload into target. Missing fields leave the
// target at its zero value.
func (f *Flags) getJSON(ctx context.Context, characterID, field string, target any) error {
	if f == nil || f.store == nil {
		return fmt.Errorf("flag store is not configured")
	}
	if strings.TrimSpace(characterID) == "" {
		return fmt.Errorf("character id is required")
	}

	payload, ok, err := f.store.Get(ctx, characterID, field)
	if err != nil {
		return fmt.Errorf("get %s: %w", field, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("unmarshal %s: %w", field, err)
	}
	return nil
}

func (f *Flags) setJSON(ctx context.Context, characterID, field string, value any) error {
	if f == nil || f.store == nil {
		return fmt.Errorf("flag store is not configured")
	}
	if strings.TrimSpace(characterID) == "" {
		return fmt.Errorf("character id is required")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", field, err)
	}
	if err := f.store.Set(ctx, characterID, field, payload); err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}
	return nil
}
