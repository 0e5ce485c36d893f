package calculator

import (
	"errors"
	"fmt"
	"math"

	"TriOracle/internal/model"
)

var (
	ErrOddsCount = errors.New("expected 2 or 3 odds")
	ErrOdds      = errors.New("odds must be positive finite numbers")
	ErrBankroll  = errors.New("bankroll must be a positive finite number")
)

// ImpliedProbability converts decimal odds to the probability they encode.
// Non-positive odds yield 0.
func ImpliedProbability(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 1 / odds
}

// TotalImplied sums implied probabilities.
func TotalImplied(probs []float64) float64 {
	total := 0.0
	for _, p := range probs {
		total += p
	}
	return total
}

// Stakes splits the bankroll proportionally to the implied probabilities.
// total must be positive.
func Stakes(bankroll float64, probs []float64, total float64) []float64 {
	stakes := make([]float64, len(probs))
	for i, p := range probs {
		stakes[i] = bankroll * p / total
	}
	return stakes
}

// ProcessArbitrage checks 2 or 3 decimal odds for a guaranteed-profit book.
// It never panics: invalid input and internal failures are reported in the
// Error field of the result.
func ProcessArbitrage(odds []float64, bankroll float64) (res *model.ArbitrageResult) {
	defer func() {
		if r := recover(); r != nil {
			res = failedArbitrage(odds, bankroll, fmt.Errorf("arbitrage calculation: %v", r))
		}
	}()

	if err := validateArbitrage(odds, bankroll); err != nil {
		return failedArbitrage(odds, bankroll, err)
	}

	probs := make([]float64, len(odds))
	for i, o := range odds {
		probs[i] = ImpliedProbability(o)
	}
	total := TotalImplied(probs)

	res = &model.ArbitrageResult{
		Odds:         append([]float64(nil), odds...),
		Bankroll:     bankroll,
		ImpliedProbs: probs,
		TotalImplied: total,
		Stakes:       []float64{},
	}
	if total < 1.0 {
		res.Found = true
		res.Stakes = Stakes(bankroll, probs, total)
		// Proportional staking pays the same on every outcome.
		res.Profit = res.Stakes[0]*odds[0] - bankroll
	}
	return res
}

func validateArbitrage(odds []float64, bankroll float64) error {
	if len(odds) < 2 || len(odds) > 3 {
		return fmt.Errorf("%w, got %d", ErrOddsCount, len(odds))
	}
	for i, o := range odds {
		if o <= 0 || math.IsNaN(o) || math.IsInf(o, 0) {
			return fmt.Errorf("outcome %c: %w", 'A'+i, ErrOdds)
		}
	}
	if bankroll <= 0 || math.IsNaN(bankroll) || math.IsInf(bankroll, 0) {
		return ErrBankroll
	}
	return nil
}

func failedArbitrage(odds []float64, bankroll float64, err error) *model.ArbitrageResult {
	return &model.ArbitrageResult{
		Odds:         append([]float64(nil), odds...),
		Bankroll:     bankroll,
		ImpliedProbs: []float64{},
		Stakes:       []float64{},
		Error:        err.Error(),
	}
}
