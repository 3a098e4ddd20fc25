package reenrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/metrics"
)

// Worker periodically runs Recompute.
type Worker struct {
	repo    dependency.Repository
	metrics *metrics.Registry
	c       *Config
	ctx     context.Context
	stop    context.CancelFunc
}

// New creates a new re-enrichment worker.
func New(c *Config, repo dependency.Repository, m *metrics.Registry) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = time.Hour
	}
	return &Worker{
		repo:    repo,
		metrics: m,
		c:       c,
	}
}

// Start starts the worker. A disabled worker does nothing.
func (w *Worker) Start(ctx context.Context) error {
	if !w.c.Enabled {
		slog.Default().InfoContext(ctx, "re-enrichment worker disabled")
		return nil
	}
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("re-enrichment worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		if !w.c.Enabled {
			return nil
		}
		return fmt.Errorf("re-enrichment worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := Recompute(ctx, w.repo, w.metrics); err != nil {
				slog.Default().ErrorContext(ctx, "can't re-enrich orders",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
