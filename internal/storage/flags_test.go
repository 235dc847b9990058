package storage_test

import (
	"context"
	"testing"

	"github.com/veilstar/forcealignment/internal/alignment/domain"
	"github.com/veilstar/forcealignment/internal/storage"
	"github.com/veilstar/forcealignment/internal/storage/memory"
)

func TestEnsureDefaultsInitializesOnce(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	ctx := context.Background()

	initialized, err := flags.EnsureDefaults(ctx, "char-1")
	if err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	if !initialized {
		t.Fatal("expected first call to initialize fields")
	}

	initialized, err = flags.EnsureDefaults(ctx, "char-1")
	if err != nil {
		t.Fatalf("ensure defaults again: %v", err)
	}
	if initialized {
		t.Fatal("expected second call to be a no-op")
	}

	balance, err := flags.Balance(ctx, "char-1")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected default balance 0, got %d", balance)
	}
	transactions, err := flags.Transactions(ctx, "char-1")
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(transactions) != 0 {
		t.Fatalf("expected empty transactions, got %v", transactions)
	}
}

func TestEnsureDefaultsPreservesExistingValues(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	ctx := context.Background()

	if err := flags.SetBalance(ctx, "char-1", 7); err != nil {
		t.Fatalf("set balance: %v", err)
	}
	if _, err := flags.EnsureDefaults(ctx, "char-1"); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}

	balance, err := flags.Balance(ctx, "char-1")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 7 {
		t.Fatalf("expected balance 7 preserved, got %d", balance)
	}
}

func TestBalanceRoundTrip(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	ctx := context.Background()

	if err := flags.SetBalance(ctx, "char-1", -4); err != nil {
		t.Fatalf("set balance: %v", err)
	}
	balance, err := flags.Balance(ctx, "char-1")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != -4 {
		t.Fatalf("expected balance -4, got %d", balance)
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	ctx := context.Background()

	stored := []domain.Transaction{
		{Timestamp: 1700000000000, Delta: 3, Reason: "cast light power"},
		{Timestamp: 1700000000001, Delta: -1, Reason: "first application of drain", FirstApplication: true, EffectName: "drain"},
	}
	if err := flags.SetTransactions(ctx, "char-1", stored); err != nil {
		t.Fatalf("set transactions: %v", err)
	}

	loaded, err := flags.Transactions(ctx, "char-1")
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected two transactions, got %d", len(loaded))
	}
	if loaded[1].FirstApplication != true || loaded[1].EffectName != "drain" {
		t.Fatalf("expected first-application tag preserved, got %+v", loaded[1])
	}
	if loaded[0].Delta != 3 || loaded[0].Reason != "cast light power" {
		t.Fatalf("unexpected first transaction %+v", loaded[0])
	}
}

func TestPreviouslyCastRoundTrip(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	ctx := context.Background()

	if err := flags.SetPreviouslyCast(ctx, "char-1", []string{"heal", "drain"}); err != nil {
		t.Fatalf("set previously cast: %v", err)
	}
	cast, err := flags.PreviouslyCast(ctx, "char-1")
	if err != nil {
		t.Fatalf("previously cast: %v", err)
	}
	if len(cast) != 2 || cast[0] != "heal" || cast[1] != "drain" {
		t.Fatalf("unexpected cast set %v", cast)
	}
}

func TestMissingFieldsReadAsDefaults(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	ctx := context.Background()

	balance, err := flags.Balance(ctx, "char-unseen")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected 0, got %d", balance)
	}

	benevolences, err := flags.Benevolences(ctx, "char-unseen")
	if err != nil {
		t.Fatalf("benevolences: %v", err)
	}
	if len(benevolences) != 0 {
		t.Fatalf("expected empty list, got %v", benevolences)
	}
}

func TestFlagsRequireCharacterID(t *testing.T) {
	flags := storage.NewFlags(memory.New())
	if err := flags.SetBalance(context.Background(), "  ", 1); err == nil {
		t.Fatal("expected error")
	}
}
