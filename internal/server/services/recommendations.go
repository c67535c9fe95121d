package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodkeeper/internal/wellness"
)

// RecommendationService runs the wellness engine over the stored records
// and manages the generated recommendations.
type RecommendationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	engine      *wellness.Engine
}

func NewRecommendationService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, opts ...wellness.Option) *RecommendationService {
	s := &RecommendationService{db: db, repomanager: m}
	s.engine = wellness.NewEngine(recordSource{s}, recommendationSink{s}, logger, opts...)
	return s
}

// Generate appends a recommendation computed from the owner's latest
// records. It returns common.ErrNoData when there is nothing to analyse.
func (s *RecommendationService) Generate(ctx context.Context, ownerID string) (*models.Recommendation, error) {
	return s.engine.Generate(ctx, ownerID)
}

func (s *RecommendationService) List(ctx context.Context, ownerID string) ([]models.Recommendation, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}
	out, err := s.repomanager.Recommendations(s.db).SelectByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing recommendations: %w", err)
	}
	return out, nil
}

// Accept marks a recommendation as taken on board by removing it.
func (s *RecommendationService) Accept(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return common.ErrUnauthenticated
	}
	if id == "" {
		return fmt.Errorf("%w: recommendation id is required", common.ErrorValidation)
	}
	return s.repomanager.Recommendations(s.db).Delete(ctx, ownerID, id)
}

type recordSource struct{ s *RecommendationService }

func (r recordSource) RecentRecords(ctx context.Context, ownerID string, limit int) ([]models.HealthRecord, error) {
	return r.s.repomanager.Records(r.s.db).SelectRecent(ctx, ownerID, limit)
}

type recommendationSink struct{ s *RecommendationService }

func (r recommendationSink) SaveRecommendation(ctx context.Context, rec *models.Recommendation) (string, error) {
	return r.s.repomanager.Recommendations(r.s.db).Create(ctx, rec)
}
