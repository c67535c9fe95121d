package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodkeeper/internal/wellness"
)

type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewRecordService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *RecordService {
	return &RecordService{db: db, repomanager: m, logger: logger.With("module", "record_service")}
}

// Add validates and stores a record for ownerID and returns its id.
// Any owner id carried by rec is replaced.
func (s *RecordService) Add(ctx context.Context, ownerID string, rec models.HealthRecord) (string, error) {
	if ownerID == "" {
		return "", common.ErrUnauthenticated
	}
	rec.OwnerID = ownerID
	rec.Mood = strings.TrimSpace(rec.Mood)
	rec.BloodPressure = strings.TrimSpace(rec.BloodPressure)
	rec.Symptoms = cleanSymptoms(rec.Symptoms)

	if err := validateRecord(rec); err != nil {
		return "", err
	}

	id, err := s.repomanager.Records(s.db).Create(ctx, &rec)
	if err != nil {
		return "", fmt.Errorf("error creating record: %w", err)
	}
	s.logger.Debug(ctx, "record stored", "owner", ownerID, "id", id)
	return id, nil
}

// List returns all of the owner's records, newest first.
func (s *RecordService) List(ctx context.Context, ownerID string) ([]models.HealthRecord, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}
	out, err := s.repomanager.Records(s.db).SelectAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return out, nil
}

func (s *RecordService) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return common.ErrUnauthenticated
	}
	if id == "" {
		return fmt.Errorf("%w: record id is required", common.ErrorValidation)
	}
	return s.repomanager.Records(s.db).Delete(ctx, ownerID, id)
}

// Trends returns the owner's chart series.
func (s *RecordService) Trends(ctx context.Context, ownerID string) (models.Trends, error) {
	recs, err := s.List(ctx, ownerID)
	if err != nil {
		return models.Trends{}, err
	}
	return wellness.BuildTrends(recs), nil
}

func validateRecord(r models.HealthRecord) error {
	var missing []string
	if r.Timestamp.IsZero() {
		missing = append(missing, "timestamp")
	}
	if r.Mood == "" {
		missing = append(missing, "mood")
	}
	if r.BloodPressure == "" {
		missing = append(missing, "blood pressure")
	}
	if r.HeartRate <= 0 {
		missing = append(missing, "heart rate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", common.ErrorValidation, strings.Join(missing, ", "))
	}
	if r.Weight != nil && *r.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", common.ErrorValidation)
	}
	return nil
}

func cleanSymptoms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
