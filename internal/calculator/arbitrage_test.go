package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpliedProbability(t *testing.T) {
	assert.Equal(t, 0.5, ImpliedProbability(2.0))
	assert.Equal(t, 0.0, ImpliedProbability(0))
	assert.Equal(t, 0.0, ImpliedProbability(-3))
}

func TestProcessArbitrage_TwoWayFound(t *testing.T) {
	res := ProcessArbitrage([]float64{2.5, 2.5}, 100)
	require.True(t, res.OK(), res.Error)
	assert.True(t, res.Found)
	assert.InDelta(t, 0.8, res.TotalImplied, 1e-12)
	require.Len(t, res.Stakes, 2)
	assert.InDelta(t, 50, res.Stakes[0], 1e-9)
	assert.InDelta(t, 50, res.Stakes[1], 1e-9)
	assert.InDelta(t, 25, res.Profit, 1e-9)
	assert.InDelta(t, 25, res.ProfitPercent(), 1e-9)
	assert.Zero(t, res.Overround())
}

func TestProcessArbitrage_ThreeWayOverround(t *testing.T) {
	// 0.5 + 0.333 + 0.25 > 1: the book is overround, no arbitrage.
	res := ProcessArbitrage([]float64{2.0, 3.0, 4.0}, 100)
	require.True(t, res.OK(), res.Error)
	assert.False(t, res.Found)
	assert.InDelta(t, 1.0833333, res.TotalImplied, 1e-6)
	assert.Empty(t, res.Stakes)
	assert.Zero(t, res.Profit)
	assert.Len(t, res.ImpliedProbs, 3)
	assert.InDelta(t, 8.3333333, res.Overround(), 1e-6)
}

func TestProcessArbitrage_ExactlyOneIsNotFound(t *testing.T) {
	res := ProcessArbitrage([]float64{2.0, 2.0}, 100)
	require.True(t, res.OK(), res.Error)
	assert.Equal(t, 1.0, res.TotalImplied)
	assert.False(t, res.Found)
}

func TestProcessArbitrage_StakesSumToBankroll(t *testing.T) {
	books := [][]float64{
		{2.1, 2.1},
		{3.5, 1.6},
		{3.2, 3.4, 3.6},
		{1.9, 2.3},
		{4.0, 4.0, 2.1},
	}
	for _, odds := range books {
		res := ProcessArbitrage(odds, 250)
		require.True(t, res.OK(), res.Error)

		expected := 0.0
		for _, o := range odds {
			expected += 1 / o
		}
		assert.InDelta(t, expected, res.TotalImplied, 1e-12, "odds %v", odds)
		assert.Equal(t, expected < 1.0, res.Found, "odds %v", odds)

		if !res.Found {
			continue
		}
		sum := 0.0
		for i, s := range res.Stakes {
			sum += s
			// every outcome pays the same profit
			assert.InDelta(t, res.Profit, s*odds[i]-250, 1e-9, "odds %v", odds)
		}
		assert.InDelta(t, 250, sum, 1e-9, "odds %v", odds)
	}
}

func TestProcessArbitrage_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		odds     []float64
		bankroll float64
	}{
		{"single outcome", []float64{2.0}, 100},
		{"four outcomes", []float64{2, 3, 4, 5}, 100},
		{"zero odds", []float64{0, 2.0}, 100},
		{"negative odds", []float64{2.0, -1}, 100},
		{"nan odds", []float64{math.NaN(), 2.0}, 100},
		{"zero bankroll", []float64{2.5, 2.5}, 0},
		{"infinite bankroll", []float64{2.5, 2.5}, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ProcessArbitrage(tt.odds, tt.bankroll)
			assert.False(t, res.OK())
			assert.NotEmpty(t, res.Error)
			assert.False(t, res.Found)
			assert.Empty(t, res.Stakes)
			assert.Empty(t, res.ImpliedProbs)
			assert.Zero(t, res.TotalImplied)
			assert.Zero(t, res.Profit)
		})
	}
}

func TestProcessArbitrage_Idempotent(t *testing.T) {
	a := ProcessArbitrage([]float64{2.2, 2.3}, 100)
	b := ProcessArbitrage([]float64{2.2, 2.3}, 100)
	assert.Equal(t, a, b)
}

func TestRoundStakes(t *testing.T) {
	res := ProcessArbitrage([]float64{2.2, 2.3}, 100)
	require.True(t, res.Found)

	rounded, total, worst := RoundStakes(res.Stakes, res.Odds, 2)
	require.Len(t, rounded, 2)
	assert.Equal(t, "51.11", rounded[0].Stake.StringFixed(2))
	assert.Equal(t, "48.89", rounded[1].Stake.StringFixed(2))
	assert.Equal(t, "100.00", total.StringFixed(2))
	assert.Equal(t, "112.44", rounded[0].Payout.StringFixed(2))
	assert.Equal(t, "112.45", rounded[1].Payout.StringFixed(2))
	assert.Equal(t, "12.44", worst.StringFixed(2))

	none, total, worst := RoundStakes(nil, nil, 2)
	assert.Nil(t, none)
	assert.True(t, total.IsZero())
	assert.True(t, worst.IsZero())
}
