package api

import (
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

func RecordFromModel(r models.HealthRecord) Record {
	return Record{
		ID:            r.ID,
		Timestamp:     r.Timestamp,
		Mood:          r.Mood,
		BloodPressure: r.BloodPressure,
		HeartRate:     r.HeartRate,
		Weight:        r.Weight,
		Symptoms:      r.Symptoms,
		Notes:         r.Notes,
	}
}

// ToModel converts the wire record; the owner always comes from the
// authenticated caller, never from the payload.
func (r Record) ToModel(ownerID string) models.HealthRecord {
	return models.HealthRecord{
		ID:            r.ID,
		OwnerID:       ownerID,
		Timestamp:     r.Timestamp,
		Mood:          r.Mood,
		BloodPressure: r.BloodPressure,
		HeartRate:     r.HeartRate,
		Weight:        r.Weight,
		Symptoms:      r.Symptoms,
		Notes:         r.Notes,
	}
}

func RecordsFromModels(in []models.HealthRecord) []Record {
	out := make([]Record, 0, len(in))
	for _, r := range in {
		out = append(out, RecordFromModel(r))
	}
	return out
}

func RecommendationFromModel(r models.Recommendation) Recommendation {
	return Recommendation{ID: r.ID, GeneratedOn: r.GeneratedOn, Text: r.Text, Source: r.Source}
}

func RecommendationsFromModels(in []models.Recommendation) []Recommendation {
	out := make([]Recommendation, 0, len(in))
	for _, r := range in {
		out = append(out, RecommendationFromModel(r))
	}
	return out
}

func trendPoints(in []models.TrendPoint) []TrendPoint {
	out := make([]TrendPoint, 0, len(in))
	for _, p := range in {
		out = append(out, TrendPoint{Date: p.Date, Value: p.Value})
	}
	return out
}

func TrendsFromModel(t models.Trends) *TrendsResponse {
	return &TrendsResponse{
		Mood:      trendPoints(t.Mood),
		HeartRate: trendPoints(t.HeartRate),
		Weight:    trendPoints(t.Weight),
	}
}

// ReminderFromModel converts a stored reminder. next is its upcoming
// trigger time; the weekday is only reported for weekly reminders.
func ReminderFromModel(r models.Reminder, next time.Time) Reminder {
	out := Reminder{
		ID:        r.ID,
		Message:   r.Message,
		Repeat:    r.Repeat,
		Clock:     r.Clock,
		CreatedAt: r.CreatedAt,
		NextFire:  next,
	}
	if r.Repeat == "weekly" {
		out.Weekday = r.Weekday.String()
	}
	return out
}
