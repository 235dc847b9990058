package memory

import (
	"context"
	"testing"
)

func TestGetMissingField(t *testing.T) {
	store := New()
	_, ok, err := store.Get(context.Background(), "char-1", "balance")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected field to be missing")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	if err := store.Set(ctx, "char-1", "balance", []byte("3")); err != nil {
		t.Fatalf("set: %v", err)
	}

	payload, ok, err := store.Get(ctx, "char-1", "balance")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected field to exist")
	}
	if string(payload) != "3" {
		t.Fatalf("expected payload 3, got %q", payload)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()

	if err := store.Set(ctx, "char-1", "balance", []byte("3")); err != nil {
		t.Fatalf("set: %v", err)
	}
	payload, _, err := store.Get(ctx, "char-1", "balance")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	payload[0] = '9'

	again, _, err := store.Get(ctx, "char-1", "balance")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(again) != "3" {
		t.Fatalf("expected stored payload unchanged, got %q", again)
	}
}

func TestSetRequiresCharacterID(t *testing.T) {
	store := New()
	if err := store.Set(context.Background(), " ", "balance", []byte("0")); err == nil {
		t.Fatal("expected error")
	}
}

func TestListCharacterIDs(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, id := range []string{"char-b", "char-a"} {
		if err := store.Set(ctx, id, "balance", []byte("0")); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	ids, err := store.ListCharacterIDs(ctx)
	if err != nil {
		t.Fatalf("list character ids: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected two ids, got %d", len(ids))
	}
	if ids[0] != "char-a" || ids[1] != "char-b" {
		t.Fatalf("expected sorted ids, got %v", ids)
	}
}
