package classify

import (
	"testing"

	"TriOracle/internal/model"
)

func TestPressureBands_AllBoundaries(t *testing.T) {
	tests := []struct {
		gauge float64
		band  model.PressureBand
	}{
		{1.0, model.PressureExtremeLongs},
		{0.51, model.PressureExtremeLongs},
		{0.5, model.PressureHighLongs},
		{0.21, model.PressureHighLongs},
		{0.2, model.PressureBalanced},
		{0, model.PressureBalanced},
		{-0.2, model.PressureBalanced},
		{-0.21, model.PressureHighShorts},
		{-0.5, model.PressureHighShorts},
		{-0.51, model.PressureExtremeShorts},
		{-1.0, model.PressureExtremeShorts},
	}
	for _, tt := range tests {
		if got := PressureBands.Classify(tt.gauge); got != tt.band {
			t.Errorf("gauge %.2f: expected %q, got %q", tt.gauge, tt.band, got)
		}
	}
}

func TestCongestionNotes(t *testing.T) {
	tests := []struct {
		gauge float64
		note  model.CongestionNote
	}{
		{0.8, model.CongestionExtremeLong},
		{0.7, model.CongestionAsymmetry},
		{0.31, model.CongestionAsymmetry},
		{0.3, model.CongestionNone},
		{-0.3, model.CongestionNone},
		{-0.5, model.CongestionAsymmetry},
		{-0.71, model.CongestionExtremeShort},
	}
	for _, tt := range tests {
		if got := CongestionNotes.Classify(tt.gauge); got != tt.note {
			t.Errorf("gauge %.2f: expected %q, got %q", tt.gauge, tt.note, got)
		}
	}
}

func TestHorizonBands(t *testing.T) {
	tests := []struct {
		minutes int
		horizon model.Horizon
	}{
		{1, model.HorizonShortTerm},
		{60, model.HorizonShortTerm},
		{61, model.HorizonBalanced},
		{240, model.HorizonBalanced},
		{1440, model.HorizonBalanced},
		{1441, model.HorizonLongTerm},
		{10080, model.HorizonLongTerm},
	}
	for _, tt := range tests {
		if got := HorizonBands.Classify(tt.minutes); got != tt.horizon {
			t.Errorf("%d minutes: expected %q, got %q", tt.minutes, tt.horizon, got)
		}
	}
}

func TestMomentumBands(t *testing.T) {
	tests := []struct {
		rsi      float64
		momentum model.Momentum
	}{
		{100, model.MomentumOverbought},
		{70.01, model.MomentumOverbought},
		{70, model.MomentumNeutral},
		{50, model.MomentumNeutral},
		{30, model.MomentumNeutral},
		{29.99, model.MomentumOversold},
		{0, model.MomentumOversold},
	}
	for _, tt := range tests {
		if got := MomentumBands.Classify(tt.rsi); got != tt.momentum {
			t.Errorf("rsi %.2f: expected %q, got %q", tt.rsi, tt.momentum, got)
		}
	}
}

func TestTrendBands(t *testing.T) {
	tests := []struct {
		pdi, mdi float64
		trend    model.TrendStrength
	}{
		{40, 20, model.TrendBullish},
		{30, 20, model.TrendNeutral},
		{20, 30, model.TrendNeutral},
		{20, 40, model.TrendBearish},
		{25, 25, model.TrendNeutral},
	}
	for _, tt := range tests {
		got := TrendBands.Classify(model.DirectionalIndex{PDI: tt.pdi, MDI: tt.mdi})
		if got != tt.trend {
			t.Errorf("pdi %.0f mdi %.0f: expected %q, got %q", tt.pdi, tt.mdi, tt.trend, got)
		}
	}
}

func TestConfluenceTable(t *testing.T) {
	tests := []struct {
		trend      model.TrendStrength
		momentum   model.Momentum
		confluence model.Confluence
	}{
		{model.TrendBullish, model.MomentumNeutral, model.ConfluenceBullish},
		{model.TrendBearish, model.MomentumNeutral, model.ConfluenceBearish},
		{model.TrendBullish, model.MomentumOversold, model.ConfluenceBullishDivergence},
		{model.TrendBearish, model.MomentumOverbought, model.ConfluenceBearishDivergence},
		{model.TrendBullish, model.MomentumOverbought, model.ConfluenceMixed},
		{model.TrendBearish, model.MomentumOversold, model.ConfluenceMixed},
		{model.TrendNeutral, model.MomentumNeutral, model.ConfluenceMixed},
		{model.TrendNeutral, model.MomentumOversold, model.ConfluenceMixed},
	}
	for _, tt := range tests {
		got := ConfluenceTable.Classify(TechnicalSignals{Trend: tt.trend, Momentum: tt.momentum})
		if got != tt.confluence {
			t.Errorf("%s/%s: expected %q, got %q", tt.trend, tt.momentum, tt.confluence, got)
		}
	}
}

func TestVolumeBands(t *testing.T) {
	if got := VolumeStatusBands.Classify(1.5); got != model.VolumeAverage {
		t.Errorf("ratio 1.5: expected AVERAGE, got %q", got)
	}
	if got := VolumeStatusBands.Classify(1.51); got != model.VolumeHigh {
		t.Errorf("ratio 1.51: expected HIGH, got %q", got)
	}
	if got := VolumeStatusBands.Classify(0.69); got != model.VolumeLow {
		t.Errorf("ratio 0.69: expected LOW, got %q", got)
	}

	if got := VolumeDeltaBands.Classify(VolumeTrend{Recent: 130, Older: 100}); got != model.DeltaIncreasing {
		t.Errorf("expected INCREASING, got %q", got)
	}
	if got := VolumeDeltaBands.Classify(VolumeTrend{Recent: 70, Older: 100}); got != model.DeltaDecreasing {
		t.Errorf("expected DECREASING, got %q", got)
	}
	if got := VolumeDeltaBands.Classify(VolumeTrend{Recent: 110, Older: 100}); got != model.DeltaStable {
		t.Errorf("expected STABLE, got %q", got)
	}
}

func TestProximityBands(t *testing.T) {
	bands := ProximityBands(500, 1000)
	tests := []struct {
		distance  float64
		proximity model.Proximity
	}{
		{0, model.ProximityNear},
		{499.99, model.ProximityNear},
		{500, model.ProximityApproaching},
		{999, model.ProximityApproaching},
		{1000, model.ProximityNone},
	}
	for _, tt := range tests {
		if got := bands.Classify(tt.distance); got != tt.proximity {
			t.Errorf("distance %.2f: expected %q, got %q", tt.distance, tt.proximity, got)
		}
	}
}

func TestTable_FirstMatchWins(t *testing.T) {
	table := New("none",
		Above(1.0, "first"),
		Above(0.0, "second"),
	)
	if got := table.Classify(2.0); got != "first" {
		t.Errorf("expected first, got %q", got)
	}
	if got := table.Classify(0.5); got != "second" {
		t.Errorf("expected second, got %q", got)
	}
	if got := table.Classify(-1.0); got != "none" {
		t.Errorf("expected fallback, got %q", got)
	}
}
