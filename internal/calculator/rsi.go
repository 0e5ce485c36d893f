package calculator

// DefaultPeriod is the lookback used by RSI and DMI.
const DefaultPeriod = 14

// RSI computes a simplified RSI: gains and losses are summed over the most
// recent period price changes without smoothing.
// Requires at least period+1 prices. Returns 50.0 if data is insufficient.
// A non-positive period falls back to DefaultPeriod.
func RSI(prices []float64, period int) float64 {
	if period <= 0 {
		period = DefaultPeriod
	}
	if len(prices) < period+1 {
		return 50.0 // default when data insufficient
	}

	n := len(prices)
	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := prices[n-i] - prices[n-i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change // make positive
		}
	}

	if losses == 0 {
		return 100.0
	}
	if gains == 0 {
		return 0
	}
	rs := gains / losses
	rsi := 100.0 - 100.0/(1.0+rs)
	return clamp(rsi, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
