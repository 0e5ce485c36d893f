package calculator

import (
	"math"

	"TriOracle/internal/model"
)

var fibRatios = []struct {
	label string
	ratio float64
}{
	{model.Level236, 0.236},
	{model.Level382, 0.382},
	{model.Level500, 0.500},
	{model.Level618, 0.618},
	{model.Level786, 0.786},
}

// FibonacciLevels computes retracement levels measured down from high,
// followed by support (low) and resistance (high).
// high < low is not rejected; the levels are then computed from the negative range.
func FibonacciLevels(high, low float64) model.FibonacciLevels {
	diff := high - low
	levels := make(model.FibonacciLevels, 0, len(fibRatios)+2)
	for _, r := range fibRatios {
		levels = append(levels, model.FibLevel{Label: r.label, Price: high - diff*r.ratio})
	}
	levels = append(levels,
		model.FibLevel{Label: model.LevelSupport, Price: low},
		model.FibLevel{Label: model.LevelResistance, Price: high},
	)
	return levels
}

// ClosestLevel returns the level nearest to price and its distance.
// On ties the earlier level wins. An empty list yields a zero level and distance.
func ClosestLevel(levels model.FibonacciLevels, price float64) (model.FibLevel, float64) {
	if len(levels) == 0 {
		return model.FibLevel{}, 0
	}
	best := levels[0]
	bestDist := math.Abs(price - best.Price)
	for _, l := range levels[1:] {
		if d := math.Abs(price - l.Price); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best, bestDist
}
