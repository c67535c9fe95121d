package wellness

import (
	"math"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

// WindowSize is the number of most recent records one analysis looks at.
const WindowSize = 7

// Signals are the aggregates the advice rules are evaluated against.
type Signals struct {
	AvgMood      float64
	AvgHeartRate float64
	WeightChange float64
}

// Analyze computes Signals over window.
//
// The window must be ordered newest first. WeightChange compares the first
// and the last weighed record by position, so a window delivered in another
// order yields a different value.
//
// A missing heart rate is averaged in as zero, unlike weight where missing
// readings are excluded.
//
// An empty window yields zero Signals.
func Analyze(window []models.HealthRecord) Signals {
	if len(window) == 0 {
		return Signals{}
	}

	var moodSum, hrSum float64
	weights := make([]float64, 0, len(window))

	for _, r := range window {
		moodSum += float64(MoodScore(r.Mood))
		hrSum += float64(r.HeartRate)
		if r.Weight != nil {
			weights = append(weights, *r.Weight)
		}
	}

	n := float64(len(window))
	s := Signals{
		AvgMood:      moodSum / n,
		AvgHeartRate: hrSum / n,
	}
	if len(weights) >= 2 {
		s.WeightChange = math.Abs(weights[0] - weights[len(weights)-1])
	}
	return s
}

// IsNewestFirst reports whether window is sorted by timestamp descending.
func IsNewestFirst(window []models.HealthRecord) bool {
	for i := 1; i < len(window); i++ {
		if window[i].Timestamp.After(window[i-1].Timestamp) {
			return false
		}
	}
	return true
}
