package backend

import (
	"context"
	"path/filepath"
	"testing"

	"ledger/internal/config"
	"ledger/internal/core"
)

func TestCreateBackend(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "memory",
			config: Config{Type: MemoryBackend},
		},
		{
			name:   "sqlite",
			config: Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "ledger.db")},
		},
		{
			name:    "sqlite without path",
			config:  Config{Type: SQLiteBackend},
			wantErr: true,
		},
		{
			name:    "unknown type",
			config:  Config{Type: "sheets"},
			wantErr: true,
		},
		{
			name:    "amqp without queue",
			config:  Config{Type: MemoryBackend, AMQPURL: "amqp://localhost/", AMQPExchange: "ledger"},
			wantErr: true,
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewFactory(nil).CreateBackend(ctx, tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CreateBackend() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateBackend() error = %v", err)
			}
			defer res.Cleanup()

			id, err := res.Ledger.Insert(ctx, core.Transaction{Source: "x", Amount: 1, Kind: core.Debit, Tag: "food", Date: "2026-01-01"})
			if err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			all, err := res.Ledger.ReadAll(ctx)
			if err != nil || len(all) != 1 || all[0].ID != id {
				t.Fatalf("ReadAll() = %v, %v", all, err)
			}
		})
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("nil config should fail")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "csv"}); err == nil {
		t.Fatalf("unknown backend should fail")
	}

	cfg, err := FromAppConfig(&config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "/tmp/ledger.db",
		AMQPURL:      "amqp://localhost/",
		AMQPExchange: "ledger",
		AMQPQueue:    "ledger_changes",
	})
	if err != nil {
		t.Fatalf("FromAppConfig() error = %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "/tmp/ledger.db" || cfg.AMQPQueue != "ledger_changes" {
		t.Fatalf("FromAppConfig() = %+v", cfg)
	}
}

func TestGetBackendTypeStrings(t *testing.T) {
	got := GetBackendTypeStrings()
	if len(got) != 2 || got[0] != "sqlite" || got[1] != "memory" {
		t.Fatalf("GetBackendTypeStrings() = %v", got)
	}
}
