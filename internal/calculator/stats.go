package calculator

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// headMean averages the first n values (all of them when fewer).
func headMean(values []float64, n int) float64 {
	if n > len(values) {
		n = len(values)
	}
	return mean(values[:n])
}

// tailMean averages the last n values (all of them when fewer).
func tailMean(values []float64, n int) float64 {
	if n > len(values) {
		n = len(values)
	}
	return mean(values[len(values)-n:])
}

// RangePosition returns where price sits within [low, high], clamped to 0.0~1.0.
// A flat range yields 0.5; an inverted range yields 0.5 and ok=false.
func RangePosition(price, high, low float64) (pos float64, ok bool) {
	if high == low {
		return 0.5, true
	}
	if high < low {
		return 0.5, false
	}
	pos = (price - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, true
}
