package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/sales-panel/config"
	httpapi "github.com/jekabolt/sales-panel/internal/api/http"
	"github.com/jekabolt/sales-panel/internal/apisrv/admin"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/ingest"
	"github.com/jekabolt/sales-panel/internal/marketplace"
	"github.com/jekabolt/sales-panel/internal/metrics"
	"github.com/jekabolt/sales-panel/internal/reenrich"
	"github.com/jekabolt/sales-panel/internal/store"
)

const shutdownTimeout = 15 * time.Second

// App is the main application
type App struct {
	hs       *httpapi.Server
	reenrich *reenrich.Worker
	db       dependency.Repository
	c        *config.Config
	done     chan struct{}
	once     sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting sales panel")

	// the store outlives ctx so in-flight requests finish during Stop
	a.db, err = store.New(context.WithoutCancel(ctx), a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	m := metrics.NewRegistry()

	adminS, err := admin.New(&a.c.Reports, a.db, m)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new admin server",
			slog.String("err", err.Error()),
		)
		return err
	}

	ing := ingest.New(a.db, marketplace.New(&a.c.Marketplace), m)

	a.reenrich = reenrich.New(&a.c.Reenrich, a.db, m)
	if err := a.reenrich.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start re-enrichment worker",
			slog.String("err", err.Error()),
		)
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, adminS, ing, a.db, m)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.reenrich != nil {
		if err := a.reenrich.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop re-enrichment worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
