// Package server wires the moodkeeper backend together: configuration,
// logging, the Postgres store, the services and both transports. It also
// handles graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/server/config"
	"github.com/dmitrijs2005/moodkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/moodkeeper/internal/server/grpc"
)

// runner is a transport that serves until its context is cancelled.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	closers []io.Closer
	runners []runner
}

var openDB = repomanager.OpenDB

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, logCloser := logging.NewServerLogger(c.LogFile, slog.LevelInfo)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = logCloser.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	set := services.Set{
		Accounts:        services.NewUserService(db, m, c, logger),
		Records:         services.NewRecordService(db, m, logger),
		Recommendations: services.NewRecommendationService(db, m, logger),
		Reminders:       services.NewReminderService(db, m, logger),
		Exporter:        services.NewExportService(db, m, c, logger),
	}

	return &App{
		config:  c,
		logger:  logger,
		closers: []io.Closer{db, logCloser},
		runners: []runner{
			gs.NewGRPCServer(c.EndpointAddrGRPC, logger, set, c.SecretKey),
			httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, set, c.SecretKey),
		},
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			app.logger.Info(ctx, "Shutdown signal received")
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run starts every transport and blocks until all of them have stopped.
// A transport that fails brings the others down with it.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, r := range app.runners {
		wg.Add(1)
		go func(r runner) {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, "server stopped", "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancelFunc()
			}
		}(r)
	}
	wg.Wait()

	app.close(context.Background())
	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}

func (app *App) close(ctx context.Context) {
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Warn(ctx, "close failed", "error", err)
		}
	}
}
