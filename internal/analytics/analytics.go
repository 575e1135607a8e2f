// Package analytics aggregates a snapshot of transactions into the figures
// shown on the statistics view. Every function is pure: the same snapshot
// always yields the same result and nothing is read or written elsewhere.
package analytics

import (
	"sort"

	"ledger/internal/core"
)

// DefaultWindow is how many months MonthlyHistory keeps when not told otherwise.
const DefaultWindow = 6

// monthKeyLen is the rune length of a "YYYY-MM" prefix.
const monthKeyLen = 7

type (
	// MonthlyBucket holds the summed credits and debits of one month key.
	MonthlyBucket struct {
		Month    string
		Credited float64
		Debited  float64
	}

	// TagTotal is the debited total of a single tag.
	TagTotal struct {
		Tag     core.Tag
		Debited float64
	}

	// TagShare is a TagTotal with its percentage of all debits.
	TagShare struct {
		TagTotal
		Percent float64
	}
)

// Net is credited minus debited for the bucket.
func (b MonthlyBucket) Net() float64 {
	return b.Credited - b.Debited
}

func TotalCredited(txs []core.Transaction) float64 {
	return sumKind(txs, core.Credit)
}

func TotalDebited(txs []core.Transaction) float64 {
	return sumKind(txs, core.Debit)
}

// Balance is TotalCredited minus TotalDebited.
func Balance(txs []core.Transaction) float64 {
	return TotalCredited(txs) - TotalDebited(txs)
}

func sumKind(txs []core.Transaction, kind core.Kind) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Kind == kind {
			total += tx.Amount
		}
	}
	return total
}

// PerTagDebited sums debits by tag. Tags without debits are absent, not zero.
func PerTagDebited(txs []core.Transaction) map[core.Tag]float64 {
	out := make(map[core.Tag]float64)
	for _, tx := range txs {
		if tx.Kind != core.Debit {
			continue
		}
		out[tx.Tag] += tx.Amount
	}
	return out
}

// TopTags orders per-tag totals from largest to smallest.
// Equal totals are ordered by tag name so the ranking is stable across runs.
func TopTags(perTag map[core.Tag]float64) []TagTotal {
	out := make([]TagTotal, 0, len(perTag))
	for tag, total := range perTag {
		out = append(out, TagTotal{Tag: tag, Debited: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Debited != out[j].Debited {
			return out[i].Debited > out[j].Debited
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// TagShares adds each tag's percentage of the summed totals.
func TagShares(top []TagTotal) []TagShare {
	var total float64
	for _, t := range top {
		total += t.Debited
	}
	out := make([]TagShare, len(top))
	for i, t := range top {
		out[i].TagTotal = t
		if total > 0 {
			out[i].Percent = t.Debited / total * 100
		}
	}
	return out
}

// Extrema returns the transactions with the largest and smallest amount.
// On ties the first one encountered wins. Both are nil for an empty snapshot.
func Extrema(txs []core.Transaction) (largest, smallest *core.Transaction) {
	if len(txs) == 0 {
		return nil, nil
	}
	maxIdx, minIdx := 0, 0
	for i := 1; i < len(txs); i++ {
		if txs[i].Amount > txs[maxIdx].Amount {
			maxIdx = i
		}
		if txs[i].Amount < txs[minIdx].Amount {
			minIdx = i
		}
	}
	hi, lo := txs[maxIdx], txs[minIdx]
	return &hi, &lo
}

// MonthKey is the first seven characters of date, or the whole date when
// shorter. Malformed dates are grouped under whatever that yields.
func MonthKey(date string) string {
	n := 0
	for i := range date {
		if n == monthKeyLen {
			return date[:i]
		}
		n++
	}
	return date
}

// MonthlyHistory groups the snapshot by MonthKey and returns the most
// recent window buckets, newest first.
func MonthlyHistory(txs []core.Transaction, window int) []MonthlyBucket {
	if window <= 0 {
		return []MonthlyBucket{}
	}
	byMonth := make(map[string]*MonthlyBucket)
	keys := make([]string, 0)
	for _, tx := range txs {
		key := MonthKey(tx.Date)
		b, ok := byMonth[key]
		if !ok {
			b = &MonthlyBucket{Month: key}
			byMonth[key] = b
			keys = append(keys, key)
		}
		switch tx.Kind {
		case core.Credit:
			b.Credited += tx.Amount
		case core.Debit:
			b.Debited += tx.Amount
		}
	}
	sort.Strings(keys)

	n := len(keys)
	if n > window {
		n = window
	}
	out := make([]MonthlyBucket, 0, n)
	for i := len(keys) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, *byMonth[keys[i]])
	}
	return out
}

// SavingsRate is the share of credits left after debits, as a percentage.
// It never goes below zero and is zero when nothing was credited.
func SavingsRate(credited, debited float64) float64 {
	if credited <= 0 {
		return 0
	}
	rate := (credited - debited) / credited * 100
	if rate < 0 {
		return 0
	}
	return rate
}
