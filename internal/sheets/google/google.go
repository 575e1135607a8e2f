package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"ledger/internal/analytics"
	"ledger/internal/core"
	applog "ledger/internal/log"
	ports "ledger/internal/sheets"
)

const exportTimeout = 60 * time.Second

// Ensure interface conformance
var _ ports.LedgerExporter = (*Client)(nil)

// Settings select the spreadsheet and the service account used to write it.
type Settings struct {
	SpreadsheetID   string
	DataSheet       string
	SummarySheet    string
	CredentialsJSON string
	CredentialsFile string
}

// rangeWriter replaces the contents of one sheet.
type rangeWriter interface {
	Replace(ctx context.Context, sheet string, rows [][]any) error
}

type Client struct {
	writer       rangeWriter
	dataSheet    string
	summarySheet string
}

// New creates a Sheets client authenticated with a service account.
func New(ctx context.Context, s Settings) (*Client, error) {
	if s.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if s.DataSheet == "" || s.SummarySheet == "" {
		return nil, errors.New("missing sheet names")
	}

	svc, err := newSheetsService(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return newClient(&valuesWriter{svc: svc, spreadsheetID: s.SpreadsheetID}, s.DataSheet, s.SummarySheet), nil
}

func newClient(w rangeWriter, dataSheet, summarySheet string) *Client {
	return &Client{
		writer:       w,
		dataSheet:    dataSheet,
		summarySheet: summarySheet,
	}
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context, s Settings) (*gsheet.Service, error) {
	var credentialsJSON []byte
	switch {
	case s.CredentialsJSON != "":
		credentialsJSON = []byte(s.CredentialsJSON)
	case s.CredentialsFile != "":
		data, err := os.ReadFile(s.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// Export rewrites the transactions sheet and the summary sheet. The two
// sheets are written concurrently; the first failure cancels the other.
func (c *Client) Export(ctx context.Context, snapshot []core.Transaction, report analytics.Report) error {
	if c.writer == nil {
		return errors.New("sheets service not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.writer.Replace(gctx, c.dataSheet, transactionRows(snapshot)); err != nil {
			return fmt.Errorf("write %s: %w", c.dataSheet, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.writer.Replace(gctx, c.summarySheet, summaryRows(report)); err != nil {
			return fmt.Errorf("write %s: %w", c.summarySheet, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Exported ledger to Google Sheets",
		applog.FieldComponent, applog.ComponentSheets,
		applog.FieldOperation, applog.OpExport,
		applog.FieldCount, len(snapshot))
	return nil
}

// valuesWriter clears a sheet and writes rows from A1.
type valuesWriter struct {
	svc           *gsheet.Service
	spreadsheetID string
}

func (w *valuesWriter) Replace(ctx context.Context, sheet string, rows [][]any) error {
	name := quoteSheet(sheet)

	_, err := w.svc.Spreadsheets.Values.Clear(w.spreadsheetID, name, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	vr := &gsheet.ValueRange{Values: rows}
	_, err = w.svc.Spreadsheets.Values.Update(w.spreadsheetID, name+"!A1", vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

// quoteSheet wraps a sheet name for A1 notation.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
