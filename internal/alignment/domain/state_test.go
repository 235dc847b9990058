package domain

import (
	"testing"
)

func TestDefaultLedgerState(t *testing.T) {
	state := DefaultLedgerState()
	if state.Balance != 0 {
		t.Fatalf("expected balance 0, got %d", state.Balance)
	}
	if state.AcknowledgedBalance != 0 {
		t.Fatalf("expected acknowledged balance 0, got %d", state.AcknowledgedBalance)
	}
	if state.Transactions == nil || len(state.Transactions) != 0 {
		t.Fatalf("expected empty transactions, got %v", state.Transactions)
	}
	if state.PreviouslyCast == nil || len(state.PreviouslyCast) != 0 {
		t.Fatalf("expected empty cast set, got %v", state.PreviouslyCast)
	}
}

func TestMarkCastIdempotent(t *testing.T) {
	cast := MarkCast(nil, "battle meditation")
	cast = MarkCast(cast, "battle meditation")
	if len(cast) != 1 {
		t.Fatalf("expected one entry, got %d", len(cast))
	}
	if cast[0] != "battle meditation" {
		t.Fatalf("unexpected cast entry %q", cast[0])
	}
}

func TestUnmarkCast(t *testing.T) {
	cast := []string{"heal", "drain", "sever force"}
	updated, found := UnmarkCast(cast, "drain")
	if !found {
		t.Fatal("expected name to be found")
	}
	if len(updated) != 2 {
		t.Fatalf("expected two entries, got %d", len(updated))
	}
	if updated[0] != "heal" || updated[1] != "sever force" {
		t.Fatalf("unexpected cast set %v", updated)
	}
	// The original backing array must not be clobbered.
	if cast[0] != "heal" || cast[1] != "drain" || cast[2] != "sever force" {
		t.Fatalf("original cast set mutated: %v", cast)
	}
}

func TestUnmarkCastAbsent(t *testing.T) {
	updated, found := UnmarkCast([]string{"heal"}, "drain")
	if found {
		t.Fatal("expected name not to be found")
	}
	if len(updated) != 1 || updated[0] != "heal" {
		t.Fatalf("expected cast set unchanged, got %v", updated)
	}
}

func TestHasCast(t *testing.T) {
	cast := []string{"heal"}
	if !HasCast(cast, "heal") {
		t.Fatal("expected heal to be cast")
	}
	if HasCast(cast, "drain") {
		t.Fatal("expected drain not to be cast")
	}
}
