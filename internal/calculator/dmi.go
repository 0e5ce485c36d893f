package calculator

import (
	"errors"
	"math"

	"TriOracle/internal/model"
)

// ErrSeriesMismatch is returned when paired series differ in length.
var ErrSeriesMismatch = errors.New("high, low and close series must have the same length")

// DMI computes simplified positive and negative directional indicators over
// the most recent period bars. Directional moves and true ranges are summed,
// not smoothed.
// Requires at least period+1 bars. Returns (25, 25) if data is insufficient
// and (0, 0) when the bars have no range at all.
func DMI(highs, lows, closes []float64, period int) (model.DirectionalIndex, error) {
	if len(highs) != len(lows) || len(highs) != len(closes) {
		return model.DirectionalIndex{}, ErrSeriesMismatch
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	if len(highs) < period+1 {
		return model.DirectionalIndex{PDI: 25, MDI: 25}, nil
	}

	n := len(highs)
	var trSum, hdSum, ldSum float64
	for i := 1; i <= period; i++ {
		cur, prev := n-i, n-i-1

		tr := math.Max(highs[cur]-lows[cur], math.Max(
			math.Abs(highs[cur]-closes[prev]),
			math.Abs(lows[cur]-closes[prev]),
		))
		trSum += tr

		hd := highs[cur] - highs[prev]
		ld := lows[prev] - lows[cur]
		if hd > 0 && hd > ld {
			hdSum += hd
		}
		if ld > 0 && ld > hd {
			ldSum += ld
		}
	}

	if trSum == 0 {
		return model.DirectionalIndex{}, nil
	}
	return model.DirectionalIndex{
		PDI: math.Min(hdSum/trSum*100, 100),
		MDI: math.Min(ldSum/trSum*100, 100),
	}, nil
}
