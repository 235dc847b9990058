package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/veilstar/forcealignment/internal/alignment/domain"
	"github.com/veilstar/forcealignment/internal/alignment/ledger"
	"github.com/veilstar/forcealignment/internal/alignment/notify"
	apperrors "github.com/veilstar/forcealignment/internal/errors"
	"github.com/veilstar/forcealignment/internal/storage"
)

var (
	// ErrInvalidAmount indicates a non-positive increment or decrement amount.
	ErrInvalidAmount = apperrors.New(apperrors.CodeInvalidAmount, "amount must be greater than zero")
)

// TransactionView annotates a transaction with a human-readable time for
// listing. RawTimestamp remains the identifier used for rollback.
type TransactionView struct {
	Transaction domain.Transaction
	DisplayTime string
}

// Controller coordinates the ledger, the cast-tracking set, and the
// stored balance for a single character.
type Controller struct {
	mu          sync.Mutex
	characterID string
	flags       *storage.Flags
	ledger      *ledger.Ledger
	sink        notify.Sink
}

// NewController creates a controller for one character. The registry is
// the usual constructor path; direct construction is for tests.
func NewController(flags *storage.Flags, characterID string, sink notify.Sink) (*Controller, error) {
	if flags == nil {
		return nil, fmt.Errorf("flag store is not configured")
	}
	if strings.TrimSpace(characterID) == "" {
		return nil, apperrors.New(apperrors.CodeEmptyCharacterID, "character id is required")
	}

	led, err := ledger.New(flags, characterID)
	if err != nil {
		return nil, err
	}
	return &Controller{
		characterID: characterID,
		flags:       flags,
		ledger:      led,
		sink:        sink,
	}, nil
}

// WithClock overrides the ledger clock, for tests.
func (c *Controller) WithClock(clock func() time.Time) *Controller {
	c.ledger.WithClock(clock)
	return c
}

// CharacterID returns the character this controller belongs to.
func (c *Controller) CharacterID() string {
	return c.characterID
}

// Balance returns the stored alignment balance.
func (c *Controller) Balance(ctx context.Context) (int, error) {
	return c.flags.Balance(ctx, c.characterID)
}

// AcknowledgedBalance returns the last balance the player confirmed seeing.
func (c *Controller) AcknowledgedBalance(ctx context.Context) (int, error) {
	return c.flags.AcknowledgedBalance(ctx, c.characterID)
}

// PreviouslyCast returns a copy of the cast-tracking set.
func (c *Controller) PreviouslyCast(ctx context.Context) ([]string, error) {
	return c.flags.PreviouslyCast(ctx, c.characterID)
}

// Benevolences returns a copy of the pass-through benevolence labels.
func (c *Controller) Benevolences(ctx context.Context) ([]string, error) {
	return c.flags.Benevolences(ctx, c.characterID)
}

// Corruptions returns a copy of the pass-through corruption labels.
func (c *Controller) Corruptions(ctx context.Context) ([]string, error) {
	return c.flags.Corruptions(ctx, c.characterID)
}

// Transactions lists the ledger most-recent-first, each entry annotated
// with a human-readable timestamp beside the raw identifier.
func (c *Controller) Transactions(ctx context.Context) ([]TransactionView, error) {
	transactions, err := c.ledger.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(transactions))
	for i := len(transactions) - 1; i >= 0; i-- {
		views = append(views, TransactionView{
			Transaction: transactions[i],
			DisplayTime: transactions[i].DisplayTime(),
		})
	}
	return views, nil
}

// Increment appends a positive transaction and raises the stored balance.
func (c *Controller) Increment(ctx context.Context, reason string, amount int) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, ErrInvalidAmount
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(ctx, domain.Transaction{Delta: amount, Reason: reason})
}

// Decrement appends a negative transaction and lowers the stored balance.
func (c *Controller) Decrement(ctx context.Context, reason string, amount int) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, ErrInvalidAmount
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(ctx, domain.Transaction{Delta: -amount, Reason: reason})
}

// AcknowledgeBalance records that the player has seen the current
// balance. No ledger interaction.
func (c *Controller) AcknowledgeBalance(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	balance, err := c.flags.Balance(ctx, c.characterID)
	if err != nil {
		return err
	}
	return c.flags.SetAcknowledgedBalance(ctx, c.characterID, balance)
}

// OnEffectApplied handles a power-used event. Irrelevant effects are
// ignored. The first application of a power is weighted by its full
// magnitude and marks the cast set; repeats are weighted uniformly at 1.
// It reports whether a transaction was appended.
func (c *Controller) OnEffectApplied(ctx context.Context, effect domain.Effect) (domain.Transaction, bool, error) {
	if err := effect.Validate(); err != nil {
		return domain.Transaction{}, false, err
	}
	if !effect.AlignmentRelevant() {
		return domain.Transaction{}, false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cast, err := c.flags.PreviouslyCast(ctx, c.characterID)
	if err != nil {
		return domain.Transaction{}, false, err
	}

	var pending domain.Transaction
	first := !domain.HasCast(cast, effect.Name)
	if first {
		pending = domain.Transaction{
			Delta:            effect.Sign() * effect.Magnitude,
			Reason:           domain.FirstApplicationReason(effect.Name),
			FirstApplication: true,
			EffectName:       effect.Name,
		}
	} else {
		pending = domain.Transaction{
			Delta:      effect.Sign(),
			Reason:     domain.RepeatApplicationReason(effect.Name),
			EffectName: effect.Name,
		}
	}

	tx, err := c.apply(ctx, pending)
	if err != nil {
		return domain.Transaction{}, false, err
	}

	if first {
		if err := c.flags.SetPreviouslyCast(ctx, c.characterID, domain.MarkCast(cast, effect.Name)); err != nil {
			return domain.Transaction{}, false, err
		}
	}
	return tx, true, nil
}

// Rollback removes the transaction identified by timestamp and reverses
// its side effects: the stored balance drops by the transaction's delta,
// and a first-application entry unmarks its effect from the cast set.
// A missing transaction is surfaced as a warning and returns false with
// nothing mutated. The removed record is deleted outright; no
// compensating entry is appended.
func (c *Controller) Rollback(ctx context.Context, timestamp int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, ok, err := c.ledger.FindByTimestamp(ctx, timestamp)
	if err != nil {
		return false, err
	}
	if !ok {
		c.warnf(ctx, "cannot roll back transaction %d for character %s: not found", timestamp, c.characterID)
		return false, nil
	}

	if tx.FirstApplication && tx.EffectName != "" {
		cast, err := c.flags.PreviouslyCast(ctx, c.characterID)
		if err != nil {
			return false, err
		}
		updated, found := domain.UnmarkCast(cast, tx.EffectName)
		if !found {
			c.warnf(ctx, "rollback of first application of %s for character %s found no cast record", tx.EffectName, c.characterID)
		}
		if err := c.flags.SetPreviouslyCast(ctx, c.characterID, updated); err != nil {
			return false, err
		}
	}

	if _, err := c.ledger.Remove(ctx, timestamp); err != nil {
		return false, err
	}

	balance, err := c.flags.Balance(ctx, c.characterID)
	if err != nil {
		return false, err
	}
	if err := c.flags.SetBalance(ctx, c.characterID, balance-tx.Delta); err != nil {
		return false, err
	}
	return true, nil
}

// apply appends a transaction and folds its delta into the stored
// balance. Callers must hold c.mu.
func (c *Controller) apply(ctx context.Context, pending domain.Transaction) (domain.Transaction, error) {
	tx, err := c.ledger.Append(ctx, pending)
	if err != nil {
		return domain.Transaction{}, err
	}

	balance, err := c.flags.Balance(ctx, c.characterID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := c.flags.SetBalance(ctx, c.characterID, balance+tx.Delta); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

func (c *Controller) warnf(ctx context.Context, format string, args ...any) {
	if c.sink == nil {
		return
	}
	c.sink.Warnf(ctx, format, args...)
}
