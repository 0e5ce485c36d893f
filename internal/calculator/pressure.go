package calculator

// PressureGauge returns (long - short) / (long + short), or 0 when there is no open interest.
func PressureGauge(longOI, shortOI float64) float64 {
	total := longOI + shortOI
	if total == 0 {
		return 0
	}
	return (longOI - shortOI) / total
}
