// Package memory is a process-local transaction store. It backs tests and the
// "memory" backend; nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ledger/internal/core"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

func New(seed ...core.Transaction) *Store {
	s := &Store{}
	for _, tx := range seed {
		_, _ = s.Insert(context.Background(), tx)
	}
	return s
}

// ReadAll returns a copy ordered by date then id, newest first.
func (s *Store) ReadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.Transaction(nil), s.items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Insert stores tx under a fresh id. Any id on tx is ignored.
func (s *Store) Insert(_ context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	tx.ID = s.nextID
	s.items = append(s.items, tx)
	return tx.ID, nil
}

func (s *Store) Update(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(tx.ID)
	if i < 0 {
		return fmt.Errorf("update %d: %w", tx.ID, core.ErrNotFound)
	}
	s.items[i] = tx
	return nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", id, core.ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, tx := range s.items {
		if tx.ID == id {
			return i
		}
	}
	return -1
}
