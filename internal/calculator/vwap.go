package calculator

// VWAP returns the volume-weighted average price.
// Mismatched or empty series, and a zero total volume, fall back to the plain
// mean of prices (0 when there are none).
func VWAP(prices, volumes []float64) float64 {
	if len(prices) != len(volumes) || len(prices) == 0 {
		return mean(prices)
	}

	var totalValue, totalVolume float64
	for i, p := range prices {
		totalValue += p * volumes[i]
	}
	for _, v := range volumes {
		totalVolume += v
	}
	if totalVolume > 0 {
		return totalValue / totalVolume
	}
	return mean(prices)
}
