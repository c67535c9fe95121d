package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/client"
	"github.com/dmitrijs2005/moodkeeper/internal/client/config"
)

type fakeClient struct {
	mu sync.Mutex

	pingErr error
	pings   int

	regUser   string
	regPass   []byte
	regErr    error
	logUser   string
	logPass   []byte
	loginErr  error
	loggedOut bool

	added      []api.Record
	records    []api.Record
	deleted    []string
	deleteErr  error
	trends     *api.TrendsResponse
	generate   *client.GenerateResult
	recs       []api.Recommendation
	accepted   []string
	reminder   *api.Reminder
	remArgs    []string
	reminders  []api.Reminder
	remDeleted []string
	export     *api.ExportRecordsResponse
	exportErr  error
	closed     bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeClient) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeClient) Register(_ context.Context, u string, p []byte) error {
	f.regUser, f.regPass = u, append([]byte(nil), p...)
	return f.regErr
}

func (f *fakeClient) Login(_ context.Context, u string, p []byte) error {
	f.logUser, f.logPass = u, append([]byte(nil), p...)
	return f.loginErr
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) AddRecord(_ context.Context, rec api.Record) (string, error) {
	f.added = append(f.added, rec)
	return "rec-1", nil
}

func (f *fakeClient) ListRecords(context.Context) ([]api.Record, error) { return f.records, nil }

func (f *fakeClient) DeleteRecord(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeClient) Trends(context.Context) (*api.TrendsResponse, error) {
	if f.trends == nil {
		return &api.TrendsResponse{}, nil
	}
	return f.trends, nil
}

func (f *fakeClient) GenerateRecommendation(context.Context) (*client.GenerateResult, error) {
	return f.generate, nil
}

func (f *fakeClient) ListRecommendations(context.Context) ([]api.Recommendation, error) {
	return f.recs, nil
}

func (f *fakeClient) AcceptRecommendation(_ context.Context, id string) error {
	f.accepted = append(f.accepted, id)
	return nil
}

func (f *fakeClient) AddReminder(_ context.Context, message, repeat, clock string) (*api.Reminder, error) {
	f.remArgs = []string{message, repeat, clock}
	return f.reminder, nil
}

func (f *fakeClient) ListReminders(context.Context) ([]api.Reminder, error) { return f.reminders, nil }

func (f *fakeClient) DeleteReminder(_ context.Context, id string) error {
	f.remDeleted = append(f.remDeleted, id)
	return nil
}

func (f *fakeClient) Export(context.Context) (*api.ExportRecordsResponse, error) {
	return f.export, f.exportErr
}

var _ client.Client = (*fakeClient)(nil)

// newTestApp returns an App reading input from the given lines and
// writing into the returned buffer.
func newTestApp(f *fakeClient, lines ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	return &App{
		config: cfg,
		client: f,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &syncWriter{w: out},
	}, out
}
