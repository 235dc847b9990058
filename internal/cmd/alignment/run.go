package alignment

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/veilstar/forcealignment/internal/alignment/notify"
	"github.com/veilstar/forcealignment/internal/alignment/reconcile"
	entrypoint "github.com/veilstar/forcealignment/internal/platform/cmd"
	"github.com/veilstar/forcealignment/internal/storage"
	"github.com/veilstar/forcealignment/internal/storage/sqlite"
)

// Run sweeps every stored character and reconciles its balance against
// its ledger. Discrepancies are warnings, not failures; only store
// errors make the sweep exit non-zero.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAlignment, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()

		flags := storage.NewFlags(store)
		sink := notify.NewLogSink(log.New(stderr, "", log.LstdFlags))
		return sweep(ctx, flags, sink, stdout)
	})
}

func sweep(ctx context.Context, flags *storage.Flags, sink notify.Sink, stdout io.Writer) error {
	ids, err := flags.ListCharacterIDs(ctx)
	if err != nil {
		return err
	}

	mismatched := 0
	for _, id := range ids {
		ok, err := reconcile.Check(ctx, flags, id, sink)
		if err != nil {
			return fmt.Errorf("reconcile %s: %w", id, err)
		}
		if !ok {
			mismatched++
		}
	}

	fmt.Fprintf(stdout, "reconciled %d characters, %d discrepancies\n", len(ids), mismatched)
	return nil
}
