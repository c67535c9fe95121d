// Package servicetest provides programmable fakes of the service
// interfaces for transport tests.
package servicetest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
	"github.com/dmitrijs2005/moodkeeper/internal/server/services"
)

// Calls records the owner ids the fakes were invoked with.
type Calls struct {
	mu     sync.Mutex
	owners []string
}

func (c *Calls) add(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owners = append(c.owners, owner)
}

// Owners returns the owner ids seen so far, in call order.
func (c *Calls) Owners() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.owners...)
}

type Accounts struct {
	RegisterFn func(ctx context.Context, username, password string) (*models.User, error)
	LoginFn    func(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshFn  func(ctx context.Context, token string) (*services.TokenPair, error)
}

func (a *Accounts) Register(ctx context.Context, username, password string) (*models.User, error) {
	if a.RegisterFn == nil {
		return &models.User{ID: "u1", UserName: username}, nil
	}
	return a.RegisterFn(ctx, username, password)
}

func (a *Accounts) Login(ctx context.Context, username, password string) (*services.TokenPair, error) {
	if a.LoginFn == nil {
		return &services.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
	}
	return a.LoginFn(ctx, username, password)
}

func (a *Accounts) RefreshToken(ctx context.Context, token string) (*services.TokenPair, error) {
	if a.RefreshFn == nil {
		return &services.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}, nil
	}
	return a.RefreshFn(ctx, token)
}

type Records struct {
	Calls
	AddFn    func(ctx context.Context, ownerID string, rec models.HealthRecord) (string, error)
	ListFn   func(ctx context.Context, ownerID string) ([]models.HealthRecord, error)
	DeleteFn func(ctx context.Context, ownerID, id string) error
	TrendsFn func(ctx context.Context, ownerID string) (models.Trends, error)
}

func (r *Records) Add(ctx context.Context, ownerID string, rec models.HealthRecord) (string, error) {
	r.add(ownerID)
	if r.AddFn == nil {
		return "rec-1", nil
	}
	return r.AddFn(ctx, ownerID, rec)
}

func (r *Records) List(ctx context.Context, ownerID string) ([]models.HealthRecord, error) {
	r.add(ownerID)
	if r.ListFn == nil {
		return []models.HealthRecord{}, nil
	}
	return r.ListFn(ctx, ownerID)
}

func (r *Records) Delete(ctx context.Context, ownerID, id string) error {
	r.add(ownerID)
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, ownerID, id)
}

func (r *Records) Trends(ctx context.Context, ownerID string) (models.Trends, error) {
	r.add(ownerID)
	if r.TrendsFn == nil {
		return models.Trends{}, nil
	}
	return r.TrendsFn(ctx, ownerID)
}

type Recommendations struct {
	Calls
	GenerateFn func(ctx context.Context, ownerID string) (*models.Recommendation, error)
	ListFn     func(ctx context.Context, ownerID string) ([]models.Recommendation, error)
	AcceptFn   func(ctx context.Context, ownerID, id string) error
}

func (r *Recommendations) Generate(ctx context.Context, ownerID string) (*models.Recommendation, error) {
	r.add(ownerID)
	if r.GenerateFn == nil {
		return &models.Recommendation{ID: "rc-1", OwnerID: ownerID}, nil
	}
	return r.GenerateFn(ctx, ownerID)
}

func (r *Recommendations) List(ctx context.Context, ownerID string) ([]models.Recommendation, error) {
	r.add(ownerID)
	if r.ListFn == nil {
		return []models.Recommendation{}, nil
	}
	return r.ListFn(ctx, ownerID)
}

func (r *Recommendations) Accept(ctx context.Context, ownerID, id string) error {
	r.add(ownerID)
	if r.AcceptFn == nil {
		return nil
	}
	return r.AcceptFn(ctx, ownerID, id)
}

type Reminders struct {
	Calls
	AddFn    func(ctx context.Context, ownerID, message, repeat, clock string) (*services.ScheduledReminder, error)
	ListFn   func(ctx context.Context, ownerID string) ([]services.ScheduledReminder, error)
	DeleteFn func(ctx context.Context, ownerID, id string) error
}

func (r *Reminders) Add(ctx context.Context, ownerID, message, repeat, clock string) (*services.ScheduledReminder, error) {
	r.add(ownerID)
	if r.AddFn == nil {
		return &services.ScheduledReminder{Reminder: models.Reminder{ID: "rm-1", OwnerID: ownerID, Message: message, Repeat: repeat, Clock: clock}}, nil
	}
	return r.AddFn(ctx, ownerID, message, repeat, clock)
}

func (r *Reminders) List(ctx context.Context, ownerID string) ([]services.ScheduledReminder, error) {
	r.add(ownerID)
	if r.ListFn == nil {
		return []services.ScheduledReminder{}, nil
	}
	return r.ListFn(ctx, ownerID)
}

func (r *Reminders) Delete(ctx context.Context, ownerID, id string) error {
	r.add(ownerID)
	if r.DeleteFn == nil {
		return nil
	}
	return r.DeleteFn(ctx, ownerID, id)
}

type Exporter struct {
	Calls
	ExportFn func(ctx context.Context, ownerID string) (*services.ExportResult, error)
}

func (e *Exporter) Export(ctx context.Context, ownerID string) (*services.ExportResult, error) {
	e.add(ownerID)
	if e.ExportFn == nil {
		return &services.ExportResult{Key: "k", URL: "https://signed", Count: 0}, nil
	}
	return e.ExportFn(ctx, ownerID)
}

// Fakes groups one fake of each service.
type Fakes struct {
	Accounts        *Accounts
	Records         *Records
	Recommendations *Recommendations
	Reminders       *Reminders
	Exporter        *Exporter
}

func New() *Fakes {
	return &Fakes{
		Accounts:        &Accounts{},
		Records:         &Records{},
		Recommendations: &Recommendations{},
		Reminders:       &Reminders{},
		Exporter:        &Exporter{},
	}
}

// Set exposes the fakes as a services.Set.
func (f *Fakes) Set() services.Set {
	return services.Set{
		Accounts:        f.Accounts,
		Records:         f.Records,
		Recommendations: f.Recommendations,
		Reminders:       f.Reminders,
		Exporter:        f.Exporter,
	}
}
