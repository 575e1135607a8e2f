// Package core provides money parsing and handling utilities.
//
// This file contains the functions that turn typed amount text into the
// non-negative magnitudes stored on a Transaction.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user-typed text to a non-negative amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Returns ErrInvalidAmount for empty text, signs, garbage, NaN or infinities.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-1")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// AmountOrZero is the commit-time policy: anything ParseAmount rejects becomes 0.
func AmountOrZero(s string) float64 {
	v, err := ParseAmount(s)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmountInput renders an amount back into editable text that
// ParseAmount maps to the same value.
func FormatAmountInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
