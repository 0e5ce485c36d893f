package calculator

import (
	"TriOracle/internal/classify"
	"TriOracle/internal/model"
)

// deltaWindow is the number of bars averaged at each end of the history.
const deltaWindow = 5

// VolumeAnalysis compares the current volume with the history average and
// classifies the trend between the oldest and newest bars.
// Fewer than 2 history points yield a neutral reading whose ratio is the
// placeholder 50, not a real ratio.
func VolumeAnalysis(current float64, history []float64) model.VolumeReading {
	if len(history) < 2 {
		return model.VolumeReading{
			Current: current,
			Ratio:   50,
			Status:  model.VolumeNeutral,
			Delta:   model.DeltaNeutral,
		}
	}

	avg := mean(history)
	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}

	trend := classify.VolumeTrend{
		Recent: tailMean(history, deltaWindow),
		Older:  headMean(history, deltaWindow),
	}

	return model.VolumeReading{
		Current: current,
		Average: avg,
		Ratio:   ratio,
		Status:  classify.VolumeStatusBands.Classify(ratio),
		Delta:   classify.VolumeDeltaBands.Classify(trend),
	}
}
