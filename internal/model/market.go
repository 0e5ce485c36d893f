package model

// Trend labels for price against MA50.
const (
	TrendStatusBullish = "BULLISH (AETOS ACTIVE)"
	TrendStatusBearish = "BEARISH (KHRUSOS ACTIVE)"
)

// MarketStructure is the market analysis panel: trend, Fibonacci alignment and range.
type MarketStructure struct {
	Price           float64
	MA50            float64
	High            float64
	Low             float64
	Bullish         bool
	TrendStatus     string
	Levels          FibonacciLevels
	Closest         FibLevel
	ClosestDistance float64
	Highlighted     []FibLevel // retracement levels within the approach distance
	Range           float64
	Compressed      bool
	Position        float64 // 0.0 ~ 1.0 within the swing
}
