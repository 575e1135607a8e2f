package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ledger/internal/core"
	applog "ledger/internal/log"

	_ "modernc.org/sqlite"
)

const (
	selectAllSQL = `SELECT id, source, amount, kind, tag, date
FROM transactions
ORDER BY date DESC, id DESC`

	insertSQL = `INSERT INTO transactions (source, amount, kind, tag, date)
VALUES (?, ?, ?, ?, ?)`

	updateSQL = `UPDATE transactions
SET source = ?, amount = ?, kind = ?, tag = ?, date = ?,
    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
WHERE id = ?`

	deleteSQL = `DELETE FROM transactions WHERE id = ?`
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One handle, used from one goroutine.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadAll returns every transaction, newest date first.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			tx   core.Transaction
			kind string
			tag  string
		)
		if err := rows.Scan(&tx.ID, &tx.Source, &tx.Amount, &kind, &tag, &tx.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if tx.Kind, err = core.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", tx.ID, err)
		}
		tx.Tag = core.Tag(tag)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// Insert stores tx and returns the id SQLite assigned.
func (r *SQLiteRepository) Insert(ctx context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, fmt.Errorf("validate transaction: %w", err)
	}
	res, err := r.db.ExecContext(ctx, insertSQL, tx.Source, tx.Amount, string(tx.Kind), string(tx.Tag), tx.Date)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		applog.NewFields().
			WithComponent(applog.ComponentStorage).
			WithOperation(applog.OpCreate).
			WithTransaction(id, tx.Source, tx.Amount, tx.Kind.String(), tx.Tag.String(), tx.Date).
			ToSlice()...)

	return id, nil
}

// Update replaces every field of the row with tx.ID.
func (r *SQLiteRepository) Update(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("validate transaction: %w", err)
	}
	res, err := r.db.ExecContext(ctx, updateSQL, tx.Source, tx.Amount, string(tx.Kind), string(tx.Tag), tx.Date, tx.ID)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", tx.ID, err)
	}
	if err := expectOneRow(res, tx.ID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction updated in SQLite",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldTxID, tx.ID)
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteSQL, id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if err := expectOneRow(res, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction deleted from SQLite",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldTxID, id)
	return nil
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("transaction %d: %w", id, core.ErrNotFound)
	}
	return nil
}
