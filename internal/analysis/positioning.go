package analysis

import (
	"TriOracle/internal/calculator"
	"TriOracle/internal/classify"
	"TriOracle/internal/model"
)

// Positioning interprets long and short open interest.
func (e *Engine) Positioning(longOI, shortOI float64) *model.PressureReading {
	gauge := calculator.PressureGauge(longOI, shortOI)
	r := &model.PressureReading{
		LongOI:  longOI,
		ShortOI: shortOI,
		TotalOI: longOI + shortOI,
		Gauge:   gauge,
		Band:    classify.PressureBands.Classify(gauge),
		Note:    classify.CongestionNotes.Classify(gauge),
	}
	if r.Note == model.CongestionAsymmetry {
		r.Bias = "SHORT"
		if gauge > 0 {
			r.Bias = "LONG"
		}
	}
	return r
}
