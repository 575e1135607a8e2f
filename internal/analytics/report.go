package analytics

import "ledger/internal/core"

// Report bundles every aggregate the renderer draws for one snapshot.
type Report struct {
	Count       int
	Credited    float64
	Debited     float64
	Balance     float64
	SavingsRate float64
	PerTag      map[core.Tag]float64
	TopTags     []TagTotal
	Shares      []TagShare
	Largest     *core.Transaction
	Smallest    *core.Transaction
	Monthly     []MonthlyBucket
}

// Build computes a Report over txs keeping window months of history.
func Build(txs []core.Transaction, window int) Report {
	credited := TotalCredited(txs)
	debited := TotalDebited(txs)
	perTag := PerTagDebited(txs)
	top := TopTags(perTag)
	largest, smallest := Extrema(txs)

	return Report{
		Count:       len(txs),
		Credited:    credited,
		Debited:     debited,
		Balance:     credited - debited,
		SavingsRate: SavingsRate(credited, debited),
		PerTag:      perTag,
		TopTags:     top,
		Shares:      TagShares(top),
		Largest:     largest,
		Smallest:    smallest,
		Monthly:     MonthlyHistory(txs, window),
	}
}
