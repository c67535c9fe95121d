package client

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
)

// GenerateResult is the outcome of asking for a recommendation. NoData is
// set when the user has no records yet.
type GenerateResult struct {
	Recommendation *api.Recommendation
	NoData         bool
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout()

	AddRecord(ctx context.Context, rec api.Record) (string, error)
	ListRecords(ctx context.Context) ([]api.Record, error)
	DeleteRecord(ctx context.Context, id string) error
	Trends(ctx context.Context) (*api.TrendsResponse, error)

	GenerateRecommendation(ctx context.Context) (*GenerateResult, error)
	ListRecommendations(ctx context.Context) ([]api.Recommendation, error)
	AcceptRecommendation(ctx context.Context, id string) error

	AddReminder(ctx context.Context, message, repeat, clock string) (*api.Reminder, error)
	ListReminders(ctx context.Context) ([]api.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error

	Export(ctx context.Context) (*api.ExportRecordsResponse, error)
}

var _ Client = (*GRPCClient)(nil)
