package analysis

import (
	"math"

	"TriOracle/internal/calculator"
	"TriOracle/internal/model"
)

// Market evaluates trend against MA50, Fibonacci alignment and swing compression.
func (e *Engine) Market(price, ma50, high, low float64) *model.MarketStructure {
	levels := calculator.FibonacciLevels(high, low)
	closest, dist := calculator.ClosestLevel(levels, price)

	m := &model.MarketStructure{
		Price:           price,
		MA50:            ma50,
		High:            high,
		Low:             low,
		Bullish:         price > ma50,
		TrendStatus:     model.TrendStatusBearish,
		Levels:          levels,
		Closest:         closest,
		ClosestDistance: dist,
		Range:           high - low,
	}
	if m.Bullish {
		m.TrendStatus = model.TrendStatusBullish
	}
	m.Compressed = m.Range < e.th.CompressionRange

	for _, l := range levels.Retracements() {
		if math.Abs(price-l.Price) < e.th.ApproachLevel {
			m.Highlighted = append(m.Highlighted, l)
		}
	}

	// an inverted swing reports the midpoint
	m.Position, _ = calculator.RangePosition(price, high, low)
	return m
}
