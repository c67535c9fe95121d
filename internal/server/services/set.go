package services

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

// The interfaces below are what the transports depend on.

type Accounts interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type Records interface {
	Add(ctx context.Context, ownerID string, rec models.HealthRecord) (string, error)
	List(ctx context.Context, ownerID string) ([]models.HealthRecord, error)
	Delete(ctx context.Context, ownerID, id string) error
	Trends(ctx context.Context, ownerID string) (models.Trends, error)
}

type Recommendations interface {
	Generate(ctx context.Context, ownerID string) (*models.Recommendation, error)
	List(ctx context.Context, ownerID string) ([]models.Recommendation, error)
	Accept(ctx context.Context, ownerID, id string) error
}

type Reminders interface {
	Add(ctx context.Context, ownerID, message, repeat, clock string) (*ScheduledReminder, error)
	List(ctx context.Context, ownerID string) ([]ScheduledReminder, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Exporter interface {
	Export(ctx context.Context, ownerID string) (*ExportResult, error)
}

// Set bundles the services a transport serves.
type Set struct {
	Accounts        Accounts
	Records         Records
	Recommendations Recommendations
	Reminders       Reminders
	Exporter        Exporter
}

var (
	_ Accounts        = (*UserService)(nil)
	_ Records         = (*RecordService)(nil)
	_ Recommendations = (*RecommendationService)(nil)
	_ Reminders       = (*ReminderService)(nil)
	_ Exporter        = (*ExportService)(nil)
)
