package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/veilstar/forcealignment/internal/alignment/notify"
	"github.com/veilstar/forcealignment/internal/alignment/reconcile"
	apperrors "github.com/veilstar/forcealignment/internal/errors"
	"github.com/veilstar/forcealignment/internal/storage"
)

// Registry hands out one controller per character for the lifetime of a
// session. The first lookup of a character initializes its flag fields
// to defaults and runs a reconciliation check; later lookups return the
// cached controller.
type Registry struct {
	mu          sync.Mutex
	flags       *storage.Flags
	sink        notify.Sink
	controllers map[string]*Controller
}

// NewRegistry creates an empty registry over the given flag store.
func NewRegistry(flags *storage.Flags, sink notify.Sink) *Registry {
	return &Registry{
		flags:       flags,
		sink:        sink,
		controllers: make(map[string]*Controller),
	}
}

// Controller returns the controller for a character, materializing it on
// first use.
func (r *Registry) Controller(ctx context.Context, characterID string) (*Controller, error) {
	if r == nil || r.flags == nil {
		return nil, fmt.Errorf("registry is not configured")
	}
	if strings.TrimSpace(characterID) == "" {
		return nil, apperrors.New(apperrors.CodeEmptyCharacterID, "character id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if controller, ok := r.controllers[characterID]; ok {
		return controller, nil
	}

	if _, err := r.flags.EnsureDefaults(ctx, characterID); err != nil {
		return nil, err
	}
	// Drift is reported, never auto-corrected.
	if _, err := reconcile.Check(ctx, r.flags, characterID, r.sink); err != nil {
		return nil, err
	}

	controller, err := NewController(r.flags, characterID, r.sink)
	if err != nil {
		return nil, err
	}
	r.controllers[characterID] = controller
	return controller, nil
}

// Len reports how many characters have been materialized this session.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}
