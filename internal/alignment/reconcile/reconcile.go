// Package reconcile detects drift between a character's stored balance
// and the balance implied by its transaction log.
//
// Reconciliation never auto-corrects: a mismatch usually means a write
// path bypassed the controller, and silently fixing the number would
// hide the bug. It warns and leaves both values as-is.
package reconcile

import (
	"context"
	"fmt"

	"github.com/veilstar/forcealignment/internal/alignment/ledger"
	"github.com/veilstar/forcealignment/internal/alignment/notify"
	"github.com/veilstar/forcealignment/internal/storage"
)

// Check compares the stored balance against the ledger-derived balance
// for one character. On mismatch it emits exactly one warning naming the
// character and both values. Chronology anomalies found while deriving
// are surfaced as additional diagnostics.
func Check(ctx context.Context, flags *storage.Flags, characterID string, sink notify.Sink) (bool, error) {
	if flags == nil {
		return false, fmt.Errorf("flag store is not configured")
	}

	led, err := ledger.New(flags, characterID)
	if err != nil {
		return false, err
	}

	stored, err := flags.Balance(ctx, characterID)
	if err != nil {
		return false, err
	}
	derived, anomalies, err := led.DeriveBalance(ctx, 0)
	if err != nil {
		return false, err
	}

	if sink != nil {
		for _, anomaly := range anomalies {
			sink.Warnf(ctx, "transaction %d for character %s predates its predecessor %d",
				anomaly.Timestamp, characterID, anomaly.PreviousTimestamp)
		}
	}

	if stored == derived {
		return true, nil
	}
	if sink != nil {
		sink.Warnf(ctx, "balance discrepancy for character %s: stored balance %d does not match derived balance %d",
			characterID, stored, derived)
	}
	return false, nil
}
