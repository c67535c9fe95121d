package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

func TestBuildTrends_OldestFirstAndWeightFiltered(t *testing.T) {
	recs := window(
		[]string{"feliz", "triste", "raro"},
		[]int{70, 0, 90},
		[]*float64{kg(71), nil, kg(72.5)},
	)

	got := BuildTrends(recs)

	require.Len(t, got.Mood, 3)
	assert.Equal(t, recs[2].Timestamp, got.Mood[0].Date)
	assert.Equal(t, []float64{3, 2, 5}, values(got.Mood))
	assert.Equal(t, []float64{90, 0, 70}, values(got.HeartRate))
	assert.Equal(t, []float64{72.5, 71}, values(got.Weight))

	// input left untouched
	assert.Equal(t, "feliz", recs[0].Mood)
}

func TestBuildTrends_Empty(t *testing.T) {
	got := BuildTrends(nil)
	assert.Empty(t, got.Mood)
	assert.Empty(t, got.HeartRate)
	assert.NotNil(t, got.Weight)
}

func values(pts []models.TrendPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}
