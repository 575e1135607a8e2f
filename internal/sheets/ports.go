package sheets

import (
	"context"

	"ledger/internal/analytics"
	"ledger/internal/core"
)

// Ports for outbound adapters.
type (
	// LedgerExporter mirrors a full ledger snapshot and its report somewhere
	// outside the local store. Each call replaces what the previous one wrote.
	LedgerExporter interface {
		Export(ctx context.Context, snapshot []core.Transaction, report analytics.Report) error
	}

	// SnapshotReader is the read side of the store an exporter mirrors.
	SnapshotReader interface {
		ReadAll(ctx context.Context) ([]core.Transaction, error)
	}
)
