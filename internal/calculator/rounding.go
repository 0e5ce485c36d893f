package calculator

import (
	"github.com/shopspring/decimal"

	"TriOracle/internal/model"
)

// RoundStakes rounds each stake to the given number of decimal places and
// recomputes payouts against the rounded total. The worst-case profit is the
// smallest per-outcome profit after rounding.
func RoundStakes(stakes, odds []float64, places int32) (rounded []model.RoundedStake, total, worst decimal.Decimal) {
	n := len(stakes)
	if len(odds) < n {
		n = len(odds)
	}
	if n == 0 {
		return nil, decimal.Zero, decimal.Zero
	}

	amounts := make([]decimal.Decimal, n)
	total = decimal.Zero
	for i := 0; i < n; i++ {
		amounts[i] = decimal.NewFromFloat(stakes[i]).Round(places)
		total = total.Add(amounts[i])
	}

	rounded = make([]model.RoundedStake, n)
	for i := 0; i < n; i++ {
		payout := amounts[i].Mul(decimal.NewFromFloat(odds[i])).Round(places)
		profit := payout.Sub(total)
		rounded[i] = model.RoundedStake{Stake: amounts[i], Payout: payout, Profit: profit}
		if i == 0 || profit.LessThan(worst) {
			worst = profit
		}
	}
	return rounded, total, worst
}
