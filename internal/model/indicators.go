package model

// DirectionalIndex holds the positive and negative directional indicators.
type DirectionalIndex struct {
	PDI float64
	MDI float64
}

// TechnicalReading holds the simplified RSI/DMI pair and their interpretation.
type TechnicalReading struct {
	RSI        float64
	DMI        DirectionalIndex
	Trend      TrendStrength
	Momentum   Momentum
	Confluence Confluence

	// Wilder-smoothed companions; zero values when Smoothed is false.
	Smoothed    bool
	SmoothedRSI float64
	SmoothedDMI DirectionalIndex
}
