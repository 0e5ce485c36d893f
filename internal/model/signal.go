package model

// PressureBand classifies a pressure gauge reading.
type PressureBand string

const (
	PressureExtremeLongs  PressureBand = "EXTREME LONGS"
	PressureExtremeShorts PressureBand = "EXTREME SHORTS"
	PressureHighLongs     PressureBand = "HIGH LONGS"
	PressureHighShorts    PressureBand = "HIGH SHORTS"
	PressureBalanced      PressureBand = "BALANCED"
)

// CongestionNote flags crowded positioning beyond the band label.
type CongestionNote string

const (
	CongestionNone         CongestionNote = ""
	CongestionExtremeLong  CongestionNote = "EXTREME LONG CONGESTION"
	CongestionExtremeShort CongestionNote = "EXTREME SHORT CONGESTION"
	CongestionAsymmetry    CongestionNote = "POSITIONING ASYMMETRY"
)

// Horizon describes the trading horizon implied by a timeframe.
type Horizon string

const (
	HorizonShortTerm Horizon = "SHORT-TERM"
	HorizonBalanced  Horizon = "BALANCED"
	HorizonLongTerm  Horizon = "LONG-TERM"
)

// Proximity describes how close the price is to a Fibonacci level.
type Proximity string

const (
	ProximityNone        Proximity = ""
	ProximityNear        Proximity = "NEAR"
	ProximityApproaching Proximity = "APPROACHING"
)

// TrendStrength is the DMI interpretation.
type TrendStrength string

const (
	TrendBullish TrendStrength = "BULLISH"
	TrendBearish TrendStrength = "BEARISH"
	TrendNeutral TrendStrength = "NEUTRAL"
)

// Momentum is the RSI interpretation.
type Momentum string

const (
	MomentumOverbought Momentum = "OVERBOUGHT"
	MomentumOversold   Momentum = "OVERSOLD"
	MomentumNeutral    Momentum = "NEUTRAL"
)

// Confluence combines trend strength and momentum.
type Confluence string

const (
	ConfluenceBullish           Confluence = "BULLISH CONFLUENCE"
	ConfluenceBearish           Confluence = "BEARISH CONFLUENCE"
	ConfluenceBullishDivergence Confluence = "BULLISH DIVERGENCE"
	ConfluenceBearishDivergence Confluence = "BEARISH DIVERGENCE"
	ConfluenceMixed             Confluence = "MIXED"
)

// VolumeStatus compares the current volume to the historical average.
type VolumeStatus string

const (
	VolumeHigh    VolumeStatus = "HIGH"
	VolumeLow     VolumeStatus = "LOW"
	VolumeAverage VolumeStatus = "AVERAGE"
	VolumeNeutral VolumeStatus = "NEUTRAL"
)

// VolumeDelta is the direction of the volume trend.
type VolumeDelta string

const (
	DeltaIncreasing VolumeDelta = "INCREASING"
	DeltaDecreasing VolumeDelta = "DECREASING"
	DeltaStable     VolumeDelta = "STABLE"
	DeltaNeutral    VolumeDelta = "NEUTRAL"
)

// VolumeNote is the combined status/delta hint.
type VolumeNote string

const (
	VolumeNoteNone          VolumeNote = ""
	VolumeNoteBreakoutWatch VolumeNote = "BREAKOUT WATCH"
	VolumeNoteConsolidation VolumeNote = "CONSOLIDATION"
)
