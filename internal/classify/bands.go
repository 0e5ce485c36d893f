package classify

import (
	"math"

	"TriOracle/internal/model"
)

// PressureBands classifies a pressure gauge in [-1, 1].
// The extreme checks run before the high checks.
var PressureBands = New(model.PressureBalanced,
	Above(0.5, model.PressureExtremeLongs),
	Below(-0.5, model.PressureExtremeShorts),
	Above(0.2, model.PressureHighLongs),
	Below(-0.2, model.PressureHighShorts),
)

// CongestionNotes flags crowded positioning from a pressure gauge.
var CongestionNotes = New(model.CongestionNone,
	Above(0.7, model.CongestionExtremeLong),
	Below(-0.7, model.CongestionExtremeShort),
	When(func(g float64) bool { return math.Abs(g) > 0.3 }, model.CongestionAsymmetry),
)

// HorizonBands classifies a timeframe length in minutes.
var HorizonBands = New(model.HorizonLongTerm,
	AtMost(60, model.HorizonShortTerm),
	AtMost(1440, model.HorizonBalanced),
)

// MomentumBands classifies an RSI value.
var MomentumBands = New(model.MomentumNeutral,
	Above(70.0, model.MomentumOverbought),
	Below(30.0, model.MomentumOversold),
)

// TrendBands classifies a PDI/MDI pair. One side must lead by more than 10 points.
var TrendBands = New(model.TrendNeutral,
	When(func(d model.DirectionalIndex) bool { return d.PDI > d.MDI+10 }, model.TrendBullish),
	When(func(d model.DirectionalIndex) bool { return d.MDI > d.PDI+10 }, model.TrendBearish),
)

// TechnicalSignals is the input of the confluence table.
type TechnicalSignals struct {
	Trend    model.TrendStrength
	Momentum model.Momentum
}

func signals(trend model.TrendStrength, momentum model.Momentum, label model.Confluence) Rule[TechnicalSignals, model.Confluence] {
	return When(func(s TechnicalSignals) bool { return s.Trend == trend && s.Momentum == momentum }, label)
}

// ConfluenceTable is the trend x momentum decision table.
var ConfluenceTable = New(model.ConfluenceMixed,
	signals(model.TrendBullish, model.MomentumNeutral, model.ConfluenceBullish),
	signals(model.TrendBearish, model.MomentumNeutral, model.ConfluenceBearish),
	signals(model.TrendBullish, model.MomentumOversold, model.ConfluenceBullishDivergence),
	signals(model.TrendBearish, model.MomentumOverbought, model.ConfluenceBearishDivergence),
)

// VolumeStatusBands classifies the current/average volume ratio.
var VolumeStatusBands = New(model.VolumeAverage,
	Above(1.5, model.VolumeHigh),
	Below(0.7, model.VolumeLow),
)

// VolumeTrend pairs the recent and older average volumes.
type VolumeTrend struct {
	Recent float64
	Older  float64
}

// VolumeDeltaBands classifies the change between older and recent volume.
var VolumeDeltaBands = New(model.DeltaStable,
	When(func(t VolumeTrend) bool { return t.Recent > t.Older*1.2 }, model.DeltaIncreasing),
	When(func(t VolumeTrend) bool { return t.Recent < t.Older*0.8 }, model.DeltaDecreasing),
)

// VolumeNotes combines status and delta into a hint.
var VolumeNotes = New(model.VolumeNoteNone,
	When(func(r model.VolumeReading) bool {
		return r.Status == model.VolumeHigh && r.Delta == model.DeltaIncreasing
	}, model.VolumeNoteBreakoutWatch),
	When(func(r model.VolumeReading) bool {
		return r.Status == model.VolumeLow && r.Delta == model.DeltaDecreasing
	}, model.VolumeNoteConsolidation),
)

// ProximityBands classifies the distance between a price and a level.
func ProximityBands(near, approach float64) Table[float64, model.Proximity] {
	return New(model.ProximityNone,
		Below(near, model.ProximityNear),
		Below(approach, model.ProximityApproaching),
	)
}
