package calculator

// DefaultTimeframe is used when no timeframe is given.
const DefaultTimeframe = "1h"

// Timeframes lists the supported codes from shortest to longest.
var Timeframes = []string{"1m", "5m", "15m", "30m", "1h", "4h", "1d", "1w"}

var timeframeMinutes = map[string]int{
	"1m":  1,
	"5m":  5,
	"15m": 15,
	"30m": 30,
	"1h":  60,
	"4h":  240,
	"1d":  1440,
	"1w":  10080,
}

// TimeframeMinutes returns the length of a timeframe in minutes. Unknown codes map to 60.
func TimeframeMinutes(code string) int {
	if m, ok := timeframeMinutes[code]; ok {
		return m
	}
	return 60
}

// ValidTimeframe reports whether code is one of Timeframes.
func ValidTimeframe(code string) bool {
	_, ok := timeframeMinutes[code]
	return ok
}
