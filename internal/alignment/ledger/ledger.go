package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/veilstar/forcealignment/internal/alignment/domain"
	apperrors "github.com/veilstar/forcealignment/internal/errors"
	"github.com/veilstar/forcealignment/internal/storage"
)

// Anomaly reports a transaction whose timestamp precedes its
// predecessor's. Summation is order-independent, so anomalies are
// diagnostics, not failures.
type Anomaly struct {
	// Index is the position of the offending transaction in stored order.
	Index int
	// Timestamp is the offending transaction's timestamp.
	Timestamp int64
	// PreviousTimestamp is the predecessor's timestamp.
	PreviousTimestamp int64
}

// Ledger owns the transaction log for one character.
type Ledger struct {
	flags       *storage.Flags
	characterID string
	clock       func() time.Time
}

// New creates a ledger over the character's persisted transactions.
func New(flags *storage.Flags, characterID string) (*Ledger, error) {
	if flags == nil {
		return nil, fmt.Errorf("flag store is not configured")
	}
	if strings.TrimSpace(characterID) == "" {
		return nil, apperrors.New(apperrors.CodeEmptyCharacterID, "character id is required")
	}
	return &Ledger{
		flags:       flags,
		characterID: characterID,
		clock:       time.Now,
	}, nil
}

// WithClock overrides the wall clock, for tests.
func (l *Ledger) WithClock(clock func() time.Time) *Ledger {
	l.clock = clock
	return l
}

// Append stamps the transaction and persists it at the end of the log.
// The assigned timestamp is strictly greater than every existing
// timestamp in the log, so identifiers stay unique even when the wall
// clock has not advanced since the previous append.
func (l *Ledger) Append(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	if err := domain.ValidateTransaction(tx); err != nil {
		return domain.Transaction{}, err
	}

	transactions, err := l.flags.Transactions(ctx, l.characterID)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx.Timestamp = nextTimestamp(transactions, l.now())
	transactions = append(transactions, tx)
	if err := l.flags.SetTransactions(ctx, l.characterID, transactions); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

// DeriveBalance folds the log in stored order, summing deltas on top of
// initial. Chronology anomalies are returned alongside the total.
func (l *Ledger) DeriveBalance(ctx context.Context, initial int) (int, []Anomaly, error) {
	transactions, err := l.flags.Transactions(ctx, l.characterID)
	if err != nil {
		return 0, nil, err
	}
	balance, anomalies := Derive(transactions, initial)
	return balance, anomalies, nil
}

// FindByTimestamp looks up a transaction by its identifier.
func (l *Ledger) FindByTimestamp(ctx context.Context, timestamp int64) (domain.Transaction, bool, error) {
	transactions, err := l.flags.Transactions(ctx, l.characterID)
	if err != nil {
		return domain.Transaction{}, false, err
	}
	for _, tx := range transactions {
		if tx.Timestamp == timestamp {
			return tx, true, nil
		}
	}
	return domain.Transaction{}, false, nil
}

// Remove deletes exactly one transaction by its identifier and returns
// the removed entry. Absent identifiers yield CodeTransactionNotFound.
func (l *Ledger) Remove(ctx context.Context, timestamp int64) (domain.Transaction, error) {
	transactions, err := l.flags.Transactions(ctx, l.characterID)
	if err != nil {
		return domain.Transaction{}, err
	}

	for i, tx := range transactions {
		if tx.Timestamp != timestamp {
			continue
		}
		remaining := append(transactions[:i:i], transactions[i+1:]...)
		if err := l.flags.SetTransactions(ctx, l.characterID, remaining); err != nil {
			return domain.Transaction{}, err
		}
		return tx, nil
	}

	return domain.Transaction{}, apperrors.WithMetadata(
		apperrors.CodeTransactionNotFound,
		fmt.Sprintf("transaction %d not found", timestamp),
		map[string]string{"character_id": l.characterID},
	)
}

// Transactions returns a copy of the log in stored order.
func (l *Ledger) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return l.flags.Transactions(ctx, l.characterID)
}

// CharacterID returns the character this ledger belongs to.
func (l *Ledger) CharacterID() string {
	return l.characterID
}

func (l *Ledger) now() time.Time {
	if l.clock == nil {
		return time.Now()
	}
	return l.clock()
}

// Derive sums deltas over transactions in stored order starting from
// initial, collecting chronology anomalies along the way.
func Derive(transactions []domain.Transaction, initial int) (int, []Anomaly) {
	balance := initial
	var anomalies []Anomaly
	var lastTimestamp int64
	for i, tx := range transactions {
		if tx.Timestamp < lastTimestamp {
			anomalies = append(anomalies, Anomaly{
				Index:             i,
				Timestamp:         tx.Timestamp,
				PreviousTimestamp: lastTimestamp,
			})
		}
		lastTimestamp = tx.Timestamp
		balance += tx.Delta
	}
	return balance, anomalies
}

// nextTimestamp picks the wall-clock time in milliseconds, bumped past
// the newest existing timestamp when the clock has not advanced.
func nextTimestamp(transactions []domain.Transaction, now time.Time) int64 {
	stamp := now.UnixMilli()
	var max int64
	for _, tx := range transactions {
		if tx.Timestamp > max {
			max = tx.Timestamp
		}
	}
	if stamp <= max {
		stamp = max + 1
	}
	return stamp
}
