package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"ledger/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "ledger.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	all, err := repo.ReadAll(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("fresh database: %v %v", all, err)
	}

	foodID, err := repo.Insert(ctx, core.Transaction{Source: "market", Amount: 100, Kind: core.Debit, Tag: "food", Date: "2026-01-15"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	salaryID, err := repo.Insert(ctx, core.Transaction{Source: "acme", Amount: 500, Kind: core.Credit, Tag: "salary", Date: "2026-01-20"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if foodID == salaryID {
		t.Fatalf("ids must be unique")
	}

	all, err = repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 2 || all[0].ID != salaryID || all[1].ID != foodID {
		t.Fatalf("expected newest first, got %+v", all)
	}
	want := core.Transaction{ID: foodID, Source: "market", Amount: 100, Kind: core.Debit, Tag: "food", Date: "2026-01-15"}
	if all[1] != want {
		t.Fatalf("round trip = %+v, want %+v", all[1], want)
	}

	want.Source = "farmers market"
	want.Amount = 120.5
	want.Date = "2026-02-01"
	if err := repo.Update(ctx, want); err != nil {
		t.Fatalf("update: %v", err)
	}
	all, _ = repo.ReadAll(ctx)
	if all[0] != want {
		t.Fatalf("after update newest should be %+v, got %+v", want, all[0])
	}

	if err := repo.Delete(ctx, salaryID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ = repo.ReadAll(ctx)
	if len(all) != 1 || all[0].ID != foodID {
		t.Fatalf("unexpected after delete: %+v", all)
	}
}

func TestSQLiteRepositoryMissingID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if err := repo.Delete(ctx, 404); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete missing: %v", err)
	}
	err := repo.Update(ctx, core.Transaction{ID: 404, Kind: core.Credit, Date: "2026-01-01"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("update missing: %v", err)
	}
}

func TestSQLiteRepositoryRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Insert(context.Background(), core.Transaction{Source: "x", Amount: -5, Kind: core.Debit})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	for i := 0; i < 2; i++ {
		repo, err := NewSQLiteRepository(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		repo.Close()
	}
}
