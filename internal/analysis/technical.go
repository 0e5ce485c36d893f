package analysis

import (
	"fmt"

	"TriOracle/internal/calculator"
	"TriOracle/internal/classify"
	"TriOracle/internal/model"
)

// Technical computes the simplified RSI on prices and DMI on the high/low/close
// bars, interprets both and adds the Wilder-smoothed values for comparison.
func (e *Engine) Technical(highs, lows, closes, prices []float64) (*model.TechnicalReading, error) {
	dmi, err := calculator.DMI(highs, lows, closes, calculator.DefaultPeriod)
	if err != nil {
		return nil, fmt.Errorf("dmi: %w", err)
	}
	rsi := calculator.RSI(prices, calculator.DefaultPeriod)

	r := &model.TechnicalReading{
		RSI:      rsi,
		DMI:      dmi,
		Trend:    classify.TrendBands.Classify(dmi),
		Momentum: classify.MomentumBands.Classify(rsi),
	}
	r.Confluence = classify.ConfluenceTable.Classify(classify.TechnicalSignals{
		Trend:    r.Trend,
		Momentum: r.Momentum,
	})

	if len(prices) > calculator.DefaultPeriod && len(highs) > calculator.DefaultPeriod {
		smoothed, err := calculator.SmoothedDMI(highs, lows, closes, calculator.DefaultPeriod)
		if err != nil {
			return nil, fmt.Errorf("smoothed dmi: %w", err)
		}
		r.Smoothed = true
		r.SmoothedRSI = calculator.SmoothedRSI(prices, calculator.DefaultPeriod)
		r.SmoothedDMI = smoothed
	}
	return r, nil
}
