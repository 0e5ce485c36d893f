package model

// PressureReading is the interpreted long/short open interest imbalance.
type PressureReading struct {
	LongOI  float64
	ShortOI float64
	TotalOI float64
	Gauge   float64 // -1.0 ~ 1.0
	Band    PressureBand
	Note    CongestionNote
	Bias    string // LONG or SHORT, set with CongestionAsymmetry
}
