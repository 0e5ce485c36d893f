// Package analysis turns calculator outputs into the interpreted panels shown to users.
package analysis

// Thresholds holds the absolute price distances and rounding used by the panels.
type Thresholds struct {
	NearLevel        float64 // a Fibonacci level closer than this is NEAR
	ApproachLevel    float64 // closer than this is APPROACHING
	CompressionRange float64 // a swing narrower than this is compressed
	StakePlaces      int32   // decimal places for placeable stakes
}

// DefaultThresholds returns the distances tuned for BTC/USDT prices.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NearLevel:        500,
		ApproachLevel:    1000,
		CompressionRange: 1000,
		StakePlaces:      2,
	}
}

// Engine evaluates panels with a fixed set of thresholds. It holds no other state.
type Engine struct {
	th Thresholds
}

// NewEngine creates an Engine. Zero thresholds are replaced by defaults.
func NewEngine(th Thresholds) *Engine {
	def := DefaultThresholds()
	if th.NearLevel <= 0 {
		th.NearLevel = def.NearLevel
	}
	if th.ApproachLevel <= 0 {
		th.ApproachLevel = def.ApproachLevel
	}
	if th.CompressionRange <= 0 {
		th.CompressionRange = def.CompressionRange
	}
	if th.StakePlaces <= 0 {
		th.StakePlaces = def.StakePlaces
	}
	return &Engine{th: th}
}

// Thresholds returns the thresholds in use.
func (e *Engine) Thresholds() Thresholds { return e.th }
