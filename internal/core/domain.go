package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	Credit Kind = "credit"
	Debit  Kind = "debit"
)

type (
	// Kind tells whether a transaction adds to or takes from the balance.
	Kind string

	Transaction struct {
		ID     int64 // Assigned by the store
		Source string
		Amount float64 // Non-negative magnitude
		Kind   Kind
		Tag    Tag
		Date   string // YYYY-MM-DD, kept as entered
	}
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidKind   = errors.New("invalid kind")
)

// ParseKind accepts the stored text form of a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Toggle flips Credit and Debit.
func (k Kind) Toggle() Kind {
	if k == Credit {
		return Debit
	}
	return Credit
}

func (k Kind) String() string {
	return string(k)
}

// Label is the capitalized form shown to the user.
func (k Kind) Label() string {
	switch k {
	case Credit:
		return "Credit"
	case Debit:
		return "Debit"
	default:
		return "Unknown"
	}
}

// Signed returns the amount with the sign it contributes to the balance.
func (t Transaction) Signed() float64 {
	if t.Kind == Credit {
		return t.Amount
	}
	return -t.Amount
}

// Validate checks what the store relies on. Source and date are free text.
func (t Transaction) Validate() error {
	if t.Kind != Credit && t.Kind != Debit {
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(t.Kind))
	}
	if t.Amount < 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ErrInvalidAmount
	}
	return nil
}
