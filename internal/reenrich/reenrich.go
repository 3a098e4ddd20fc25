// Package reenrich keeps the persisted order costs in line with the product catalog.
package reenrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/sales-panel/internal/costing"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/jekabolt/sales-panel/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for the re-enrichment worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		WorkerInterval: time.Hour,
	}
}

// Recompute enriches every stored order against the current catalog and
// writes back the orders whose costs changed. It returns how many were updated.
func Recompute(ctx context.Context, repo dependency.Repository, m *metrics.Registry) (int, error) {
	var (
		orders   []entity.Order
		products []entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = repo.Orders().ListOrders(gctx)
		if err != nil {
			return fmt.Errorf("can't list orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = repo.Products().ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("can't list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	idx := costing.BuildIndex(products)
	costing.LogConflicts(ctx, idx)
	m.SetSKUConflicts(len(idx.Conflicts()))

	updated := 0
	for i := range orders {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		o := &orders[i]
		costs := costing.Enrich(o, idx)
		if !costs.Changed(o) {
			continue
		}
		if err := repo.Orders().UpdateOrderCosts(ctx, o.ID, costs.ProductCost, costs.OperationalCost); err != nil {
			return updated, fmt.Errorf("can't update costs of order %s: %w", o.ID, err)
		}
		updated++
	}
	m.Reenriched(updated)

	slog.Default().InfoContext(ctx, "orders re-enriched",
		slog.Int("orders", len(orders)),
		slog.Int("products", len(products)),
		slog.Int("updated", updated),
	)
	return updated, nil
}
