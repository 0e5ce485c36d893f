package analysis

import (
	"github.com/shopspring/decimal"

	"TriOracle/internal/calculator"
	"TriOracle/internal/model"
)

// Arbitrage runs the arbitrage check and, when a book is found, rounds the
// stakes to placeable amounts.
func (e *Engine) Arbitrage(odds []float64, bankroll float64) *model.ArbitrageReport {
	res := calculator.ProcessArbitrage(odds, bankroll)
	report := &model.ArbitrageReport{
		Result:          res,
		RoundedTotal:    decimal.Zero,
		WorstCaseProfit: decimal.Zero,
	}
	if !res.OK() || !res.Found {
		return report
	}
	report.Rounded, report.RoundedTotal, report.WorstCaseProfit =
		calculator.RoundStakes(res.Stakes, res.Odds, e.th.StakePlaces)
	return report
}
