package model

import "github.com/shopspring/decimal"

// ArbitrageResult is the outcome of an arbitrage check over 2 or 3 decimal odds.
// Error is non-empty when the input could not be evaluated; the numeric
// fields are then zero.
type ArbitrageResult struct {
	Odds         []float64
	Bankroll     float64
	ImpliedProbs []float64
	TotalImplied float64
	Found        bool
	Stakes       []float64 // empty unless Found
	Profit       float64
	Error        string
}

// OK reports whether the calculation succeeded.
func (r *ArbitrageResult) OK() bool { return r.Error == "" }

// Overround returns the bookmaker margin in percent, 0 when the book is not overround.
func (r *ArbitrageResult) Overround() float64 {
	if r.TotalImplied <= 1.0 {
		return 0
	}
	return (r.TotalImplied - 1.0) * 100
}

// Efficiency is the share of the bankroll left on the table by the market (1 - total).
func (r *ArbitrageResult) Efficiency() float64 {
	return 1.0 - r.TotalImplied
}

// ProfitPercent returns the guaranteed profit relative to the bankroll.
func (r *ArbitrageResult) ProfitPercent() float64 {
	if r.Bankroll == 0 {
		return 0
	}
	return r.Profit / r.Bankroll * 100
}

// RoundedStake is a stake rounded to a placeable amount.
type RoundedStake struct {
	Stake  decimal.Decimal
	Payout decimal.Decimal
	Profit decimal.Decimal // payout minus the rounded total stake
}

// ArbitrageReport adds placeable stakes to an ArbitrageResult.
type ArbitrageReport struct {
	Result          *ArbitrageResult
	Rounded         []RoundedStake
	RoundedTotal    decimal.Decimal
	WorstCaseProfit decimal.Decimal
}
