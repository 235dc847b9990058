// Package memory provides an in-memory flag store for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Store is a thread-safe in-memory FlagStore implementation.
type Store struct {
	mu    sync.RWMutex
	flags map[string]map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{flags: make(map[string]map[string][]byte)}
}

// Get fetches the raw payload for a character field.
func (s *Store) Get(ctx context.Context, characterID, field string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(characterID) == "" {
		return nil, false, fmt.Errorf("character id is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.flags[characterID]
	if !ok {
		return nil, false, nil
	}
	payload, ok := fields[field]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	return copied, true, nil
}

// Set persists the raw payload for a character field.
func (s *Store) Set(ctx context.Context, characterID, field string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(characterID) == "" {
		return fmt.Errorf("character id is required")
	}
	if strings.TrimSpace(field) == "" {
		return fmt.Errorf("field name is required")
	}

	copied := make([]byte, len(payload))
	copy(copied, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.flags[characterID]
	if !ok {
		fields = make(map[string][]byte)
		s.flags[characterID] = fields
	}
	fields[field] = copied
	return nil
}

// ListCharacterIDs returns every character with at least one stored field.
func (s *Store) ListCharacterIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.flags))
	for id := range s.flags {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
