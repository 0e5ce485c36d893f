package model

// Fibonacci level labels, in the order they are produced.
const (
	Level236        = "23.6%"
	Level382        = "38.2%"
	Level500        = "50.0%"
	Level618        = "61.8%"
	Level786        = "78.6%"
	LevelSupport    = "support"
	LevelResistance = "resistance"
)

// FibLevel is a single labelled price level.
type FibLevel struct {
	Label string
	Price float64
}

// IsRetracement reports whether the level is a ratio level rather than support/resistance.
func (l FibLevel) IsRetracement() bool {
	return l.Label != LevelSupport && l.Label != LevelResistance
}

// FibonacciLevels keeps levels in insertion order; the order breaks distance ties.
type FibonacciLevels []FibLevel

// Get returns the price for a label.
func (ls FibonacciLevels) Get(label string) (float64, bool) {
	for _, l := range ls {
		if l.Label == label {
			return l.Price, true
		}
	}
	return 0, false
}

// Retracements returns only the ratio levels.
func (ls FibonacciLevels) Retracements() FibonacciLevels {
	out := make(FibonacciLevels, 0, len(ls))
	for _, l := range ls {
		if l.IsRetracement() {
			out = append(out, l)
		}
	}
	return out
}

// LevelProximity is a retracement level with its distance from the price.
type LevelProximity struct {
	Level     FibLevel
	Distance  float64
	Proximity Proximity
}

// FibonacciReport is the full Fibonacci panel for a swing, a price and a timeframe.
type FibonacciReport struct {
	High            float64
	Low             float64
	Price           float64
	Levels          FibonacciLevels
	Closest         FibLevel
	ClosestDistance float64
	Proximity       []LevelProximity
	Timeframe       string
	Minutes         int
	Horizon         Horizon
	AboveMidpoint   bool
	ReversalZone    bool
}
