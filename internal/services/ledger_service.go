package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ledger/internal/amqp"
	"ledger/internal/core"
	applog "ledger/internal/log"
)

// Repository is the persistence a LedgerService writes through.
type Repository interface {
	ReadAll(ctx context.Context) ([]core.Transaction, error)
	Insert(ctx context.Context, tx core.Transaction) (int64, error)
	Update(ctx context.Context, tx core.Transaction) error
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Publisher sends change events. *amqp.Client satisfies it.
type Publisher interface {
	PublishTransactionChanged(ctx context.Context, op amqp.ChangeOp, id int64) error
	Close() error
}

// LedgerService orchestrates ledger writes across the store and AMQP.
type LedgerService struct {
	repo      Repository
	publisher Publisher
}

// NewLedgerService wraps repo. publisher may be nil, in which case no change
// events are sent.
func NewLedgerService(repo Repository, publisher Publisher) *LedgerService {
	return &LedgerService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *LedgerService) ReadAll(ctx context.Context) ([]core.Transaction, error) {
	return s.repo.ReadAll(ctx)
}

// Insert saves tx and publishes a created event.
func (s *LedgerService) Insert(ctx context.Context, tx core.Transaction) (int64, error) {
	id, err := s.repo.Insert(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("save transaction: %w", err)
	}
	s.publish(ctx, amqp.ChangeCreated, id)
	return id, nil
}

// Update replaces a stored transaction and publishes an updated event.
func (s *LedgerService) Update(ctx context.Context, tx core.Transaction) error {
	if err := s.repo.Update(ctx, tx); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	s.publish(ctx, amqp.ChangeUpdated, tx.ID)
	return nil
}

// Delete removes a stored transaction and publishes a deleted event.
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.publish(ctx, amqp.ChangeDeleted, id)
	return nil
}

// publish never fails the write: the row is already stored locally.
func (s *LedgerService) publish(ctx context.Context, op amqp.ChangeOp, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionChanged(ctx, op, id); err != nil {
		slog.WarnContext(ctx, "Failed to publish transaction change",
			applog.FieldComponent, applog.ComponentService,
			applog.FieldOperation, applog.OpPublish,
			applog.FieldTxID, id,
			"change", string(op),
			applog.FieldError, err)
	}
}

// Close closes both storage and AMQP connections
func (s *LedgerService) Close() error {
	var errs []error

	if s.repo != nil {
		if err := s.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %w", errors.Join(errs...))
	}

	return nil
}
