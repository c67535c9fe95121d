package wellness

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
	"github.com/dmitrijs2005/moodkeeper/internal/timex"
)

// RecordSource returns up to limit of the owner's records, newest first.
type RecordSource interface {
	RecentRecords(ctx context.Context, ownerID string, limit int) ([]models.HealthRecord, error)
}

// RecommendationSink appends a recommendation and returns its id.
type RecommendationSink interface {
	SaveRecommendation(ctx context.Context, rec *models.Recommendation) (string, error)
}

// Engine generates recommendations from an owner's recent records.
// It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	records RecordSource
	sink    RecommendationSink
	logger  logging.Logger
	now     func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces time.Now, which dates generated recommendations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(records RecordSource, sink RecommendationSink, logger logging.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = logging.Nop{}
	}
	e := &Engine{
		records: records,
		sink:    sink,
		logger:  logger.With("module", "wellness_engine"),
		now:     time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Generate analyses the owner's last WindowSize records and appends a new
// recommendation with the resulting advice.
//
// Outcomes:
//   - common.ErrUnauthenticated when ownerID is empty; nothing is read.
//   - common.ErrNoData when the owner has no records; nothing is written.
//   - an error wrapping common.ErrPersistenceFailure when the read or the
//     write fails; no recommendation is returned.
//
// Calls are not deduplicated: every successful call appends a new record.
func (e *Engine) Generate(ctx context.Context, ownerID string) (*models.Recommendation, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}

	window, err := e.records.RecentRecords(ctx, ownerID, WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading records: %w", common.ErrPersistenceFailure, err)
	}
	if len(window) == 0 {
		return nil, common.ErrNoData
	}
	if len(window) > WindowSize {
		window = window[:WindowSize]
	}
	if !IsNewestFirst(window) {
		e.logger.Warn(ctx, "record window is not ordered newest first", "owner", ownerID, "size", len(window))
	}

	signals := Analyze(window)
	e.logger.Debug(ctx, "signals computed", "owner", ownerID,
		"avg_mood", signals.AvgMood, "avg_heart_rate", signals.AvgHeartRate, "weight_change", signals.WeightChange)

	rec := &models.Recommendation{
		OwnerID:     ownerID,
		GeneratedOn: timex.Today(e.now()),
		Text:        Compose(signals),
		Source:      Source,
	}

	id, err := e.sink.SaveRecommendation(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: saving recommendation: %w", common.ErrPersistenceFailure, err)
	}
	rec.ID = id

	e.logger.Info(ctx, "recommendation generated", "owner", ownerID, "id", id)
	return rec, nil
}
