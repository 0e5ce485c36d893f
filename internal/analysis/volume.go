package analysis

import (
	"TriOracle/internal/calculator"
	"TriOracle/internal/classify"
	"TriOracle/internal/model"
)

// Volume evaluates the current volume against its history and the given price
// against the VWAP of prices/volumes.
func (e *Engine) Volume(current float64, history, prices, volumes []float64, price float64) *model.VolumeReport {
	reading := calculator.VolumeAnalysis(current, history)
	vwap := calculator.VWAP(prices, volumes)

	v := model.VWAPReading{
		VWAP:      vwap,
		Price:     price,
		Diff:      price - vwap,
		AboveVWAP: price > vwap,
	}
	if vwap != 0 {
		v.DiffPct = (price/vwap - 1) * 100
	}

	return &model.VolumeReport{
		Volume: reading,
		VWAP:   v,
		Note:   classify.VolumeNotes.Classify(reading),
	}
}
