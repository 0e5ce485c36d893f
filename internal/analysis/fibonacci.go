package analysis

import (
	"math"

	"TriOracle/internal/calculator"
	"TriOracle/internal/classify"
	"TriOracle/internal/model"
)

// Fibonacci evaluates a swing against the current price on a timeframe.
// An empty timeframe means calculator.DefaultTimeframe.
func (e *Engine) Fibonacci(high, low, price float64, timeframe string) *model.FibonacciReport {
	if timeframe == "" {
		timeframe = calculator.DefaultTimeframe
	}
	levels := calculator.FibonacciLevels(high, low)
	closest, dist := calculator.ClosestLevel(levels, price)
	minutes := calculator.TimeframeMinutes(timeframe)

	r := &model.FibonacciReport{
		High:            high,
		Low:             low,
		Price:           price,
		Levels:          levels,
		Closest:         closest,
		ClosestDistance: dist,
		Timeframe:       timeframe,
		Minutes:         minutes,
		Horizon:         classify.HorizonBands.Classify(minutes),
	}

	bands := classify.ProximityBands(e.th.NearLevel, e.th.ApproachLevel)
	for _, l := range levels.Retracements() {
		d := math.Abs(price - l.Price)
		r.Proximity = append(r.Proximity, model.LevelProximity{
			Level:     l,
			Distance:  d,
			Proximity: bands.Classify(d),
		})
	}

	mid, _ := levels.Get(model.Level500)
	r.AboveMidpoint = price > mid

	l382, _ := levels.Get(model.Level382)
	l618, _ := levels.Get(model.Level618)
	r.ReversalZone = math.Abs(price-l382) < e.th.NearLevel || math.Abs(price-l618) < e.th.NearLevel
	return r
}
