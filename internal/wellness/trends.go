package wellness

import (
	"sort"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

// BuildTrends turns records into chart series ordered oldest first.
// Mood and heart rate have one point per record (a missing heart rate is
// plotted as 0); weight only has points for records that carry a weight.
func BuildTrends(records []models.HealthRecord) models.Trends {
	sorted := make([]models.HealthRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	t := models.Trends{
		Mood:      make([]models.TrendPoint, 0, len(sorted)),
		HeartRate: make([]models.TrendPoint, 0, len(sorted)),
		Weight:    []models.TrendPoint{},
	}
	for _, r := range sorted {
		t.Mood = append(t.Mood, models.TrendPoint{Date: r.Timestamp, Value: float64(MoodScore(r.Mood))})
		t.HeartRate = append(t.HeartRate, models.TrendPoint{Date: r.Timestamp, Value: float64(r.HeartRate)})
		if r.Weight != nil {
			t.Weight = append(t.Weight, models.TrendPoint{Date: r.Timestamp, Value: *r.Weight})
		}
	}
	return t
}
