package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledger/internal/config"
	applog "ledger/internal/log"
)

func TestSetupLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger("warn", applog.ComponentApp, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOpenLogFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ledger.log")
	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	f, err = OpenLogFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	f.WriteString("line\n")
	f.Close()

	data, _ := os.ReadFile(path)
	if string(data) != "line\nline\n" {
		t.Fatalf("log file should be appended to, got %q", data)
	}
}

func TestInitLedgerAndCatalog(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(dir, "ledger.db"),
		TagsFile:     filepath.Join(dir, "tags.yaml"),
	}
	logger := applog.New(applog.Config{Component: applog.ComponentApp, Writer: &bytes.Buffer{}})

	res, err := InitLedger(context.Background(), logger, cfg)
	if err != nil {
		t.Fatalf("InitLedger() error = %v", err)
	}
	defer res.Cleanup()

	catalog, err := LoadCatalog(cfg)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if catalog.Len() != 6 || catalog.Resolve(0) != "food" {
		t.Fatalf("unexpected catalog %v", catalog.Tags())
	}
}

func TestInitLedgerRejectsUnknownBackend(t *testing.T) {
	logger := applog.New(applog.Config{Writer: &bytes.Buffer{}})
	if _, err := InitLedger(context.Background(), logger, &config.Config{DataBackend: "csv"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
