package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/recommendations"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/reminders"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/users"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// -------- users --------

type fakeUsers struct {
	mu     sync.Mutex
	byName map[string]*models.User
	getErr error
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byName == nil {
		f.byName = map[string]*models.User{}
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	f.byName[u.UserName] = &cp
	return u, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

// -------- refresh tokens --------

type fakeTokens struct {
	mu        sync.Mutex
	tokens    map[string]models.RefreshToken
	createErr error
	deleteErr error
}

func (f *fakeTokens) Create(_ context.Context, userID, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if f.tokens == nil {
		f.tokens = map[string]models.RefreshToken{}
	}
	f.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (f *fakeTokens) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.tokens, token)
	return nil
}

// -------- records --------

type fakeRecords struct {
	mu      sync.Mutex
	rows    []models.HealthRecord
	readErr error
}

func (f *fakeRecords) Create(_ context.Context, rec *models.HealthRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	cp.ID = uuid.NewString()
	f.rows = append(f.rows, cp)
	return cp.ID, nil
}

func (f *fakeRecords) SelectRecent(ctx context.Context, ownerID string, limit int) ([]models.HealthRecord, error) {
	all, err := f.SelectAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRecords) SelectAll(_ context.Context, ownerID string) ([]models.HealthRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := []models.HealthRecord{}
	for _, r := range f.rows {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakeRecords) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id && r.OwnerID == ownerID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// -------- recommendations --------

type fakeRecommendations struct {
	mu   sync.Mutex
	rows []models.Recommendation
}

func (f *fakeRecommendations) Create(_ context.Context, rec *models.Recommendation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	cp.ID = uuid.NewString()
	f.rows = append(f.rows, cp)
	return cp.ID, nil
}

func (f *fakeRecommendations) SelectByOwner(_ context.Context, ownerID string) ([]models.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Recommendation{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].OwnerID == ownerID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeRecommendations) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id && r.OwnerID == ownerID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// -------- reminders --------

type fakeReminders struct {
	mu        sync.Mutex
	rows      []models.Reminder
	createErr error
}

func (f *fakeReminders) Create(_ context.Context, r *models.Reminder) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	cp := *r
	cp.ID = uuid.NewString()
	f.rows = append(f.rows, cp)
	return cp.ID, nil
}

func (f *fakeReminders) SelectByOwner(_ context.Context, ownerID string) ([]models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Reminder{}
	for _, r := range f.rows {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminders) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id && r.OwnerID == ownerID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// -------- manager --------

type fakeRepoManager struct {
	users           *fakeUsers
	tokens          *fakeTokens
	records         *fakeRecords
	recommendations *fakeRecommendations
	reminders       *fakeReminders
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:           &fakeUsers{},
		tokens:          &fakeTokens{},
		records:         &fakeRecords{},
		recommendations: &fakeRecommendations{},
		reminders:       &fakeReminders{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.tokens }
func (m *fakeRepoManager) Records(dbx.DBTX) records.Repository             { return m.records }
func (m *fakeRepoManager) Recommendations(dbx.DBTX) recommendations.Repository {
	return m.recommendations
}
func (m *fakeRepoManager) Reminders(dbx.DBTX) reminders.Repository { return m.reminders }
