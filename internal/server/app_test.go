package server

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/server/config"
)

type blockingRunner struct{ stopped atomic.Bool }

func (b *blockingRunner) Run(ctx context.Context) error {
	<-ctx.Done()
	b.stopped.Store(true)
	return nil
}

type failingRunner struct{ err error }

func (f failingRunner) Run(context.Context) error { return f.err }

type countingCloser struct{ n atomic.Int32 }

func (c *countingCloser) Close() error {
	c.n.Add(1)
	return nil
}

func TestRun_FailureStopsOthers(t *testing.T) {
	boom := errors.New("listen: address in use")
	blocker := &blockingRunner{}
	closer := &countingCloser{}
	app := &App{
		logger:  logging.Nop{},
		closers: []io.Closer{closer},
		runners: []runner{blocker, failingRunner{err: boom}},
	}

	err := app.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.True(t, blocker.stopped.Load())
	assert.Equal(t, int32(1), closer.n.Load())
}

func TestRun_StopsOnCancel(t *testing.T) {
	blocker := &blockingRunner{}
	app := &App{logger: logging.Nop{}, runners: []runner{blocker}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, blocker.stopped.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_DBError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(context.Context, string) (*sql.DB, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}
