package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ledger/internal/amqp"
	"ledger/internal/analytics"
	applog "ledger/internal/log"
	"ledger/internal/sheets"
)

// ExportWorker mirrors the ledger to an exporter. Change events carry only
// an id, so every export re-reads the whole snapshot. Exports run one at a
// time so the newest snapshot is always the last one written.
type ExportWorker struct {
	reader   sheets.SnapshotReader
	exporter sheets.LedgerExporter
	window   int

	mu sync.Mutex
}

func NewExportWorker(reader sheets.SnapshotReader, exporter sheets.LedgerExporter, window int) *ExportWorker {
	if window <= 0 {
		window = analytics.DefaultWindow
	}
	return &ExportWorker{
		reader:   reader,
		exporter: exporter,
		window:   window,
	}
}

// HandleChange processes a single transaction change message from AMQP.
func (w *ExportWorker) HandleChange(ctx context.Context, msg *amqp.TransactionChangedMessage) error {
	logger(ctx).InfoContext(ctx, "Processing transaction change",
		applog.FieldOperation, string(msg.Op),
		applog.FieldTxID, msg.ID)

	if err := w.ExportNow(ctx); err != nil {
		return fmt.Errorf("export after %s #%d: %w", msg.Op, msg.ID, err)
	}
	return nil
}

// ExportNow reads the current snapshot, builds its report and exports both.
func (w *ExportWorker) ExportNow(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	snapshot, err := w.reader.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	report := analytics.Build(snapshot, w.window)
	if err := w.exporter.Export(ctx, snapshot, report); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	return nil
}

// RunPeriodic exports every interval until ctx is done. It is the backup for
// change events that never arrived.
func (w *ExportWorker) RunPeriodic(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.ExportNow(ctx); err != nil {
				logger(ctx).ErrorContext(ctx, "Periodic export failed",
					applog.FieldOperation, applog.OpExport,
					applog.FieldError, err)
			}
		}
	}
}

// logger is the logger carried by ctx, tagged as the worker.
func logger(ctx context.Context) *applog.Logger {
	return applog.FromContext(ctx).WithComponent(applog.ComponentWorker)
}
