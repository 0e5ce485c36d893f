package calculator

import (
	"github.com/markcheno/go-talib"

	"TriOracle/internal/model"
)

// SmoothedRSI computes the Wilder-smoothed RSI with ta-lib.
// Returns 50.0 if fewer than period+1 prices are given.
func SmoothedRSI(prices []float64, period int) float64 {
	if period < 2 {
		period = DefaultPeriod
	}
	if len(prices) < period+1 {
		return 50.0
	}
	out := talib.Rsi(prices, period)
	return clamp(out[len(out)-1], 0, 100)
}

// SmoothedDMI computes Wilder-smoothed +DI/-DI with ta-lib.
// Returns (25, 25) if fewer than period+1 bars are given.
func SmoothedDMI(highs, lows, closes []float64, period int) (model.DirectionalIndex, error) {
	if len(highs) != len(lows) || len(highs) != len(closes) {
		return model.DirectionalIndex{}, ErrSeriesMismatch
	}
	if period < 2 {
		period = DefaultPeriod
	}
	if len(highs) < period+1 {
		return model.DirectionalIndex{PDI: 25, MDI: 25}, nil
	}
	pdi := talib.PlusDI(highs, lows, closes, period)
	mdi := talib.MinusDI(highs, lows, closes, period)
	return model.DirectionalIndex{
		PDI: clamp(pdi[len(pdi)-1], 0, 100),
		MDI: clamp(mdi[len(mdi)-1], 0, 100),
	}, nil
}
