// Package ingest turns marketplace order notifications into enriched, stored orders.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/sales-panel/internal/costing"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/dto"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/jekabolt/sales-panel/internal/metrics"
)

// Failure stages reported to metrics.
const (
	StageFetch     = "fetch"
	StageNormalize = "normalize"
	StageStore     = "store"
)

// Ingester runs the notification pipeline: fetch the order detail, normalize,
// enrich against a fresh cost index and upsert.
type Ingester struct {
	repo        dependency.Repository
	marketplace dependency.Marketplace
	metrics     *metrics.Registry
}

// New returns an Ingester. m may be nil.
func New(repo dependency.Repository, mp dependency.Marketplace, m *metrics.Registry) *Ingester {
	return &Ingester{
		repo:        repo,
		marketplace: mp,
		metrics:     m,
	}
}

// Handle processes one notification. Notifications for other topics are
// skipped and return nil.
func (in *Ingester) Handle(ctx context.Context, n *dto.Notification) error {
	in.metrics.NotificationReceived(n.Topic)

	notificationID := n.ID
	if notificationID == "" {
		notificationID = uuid.NewString()
	}
	log := slog.Default().With(
		slog.String("notification_id", notificationID),
		slog.String("resource", n.Resource),
	)

	if n.Topic != dto.TopicOrders {
		log.InfoContext(ctx, "notification topic ignored", slog.String("topic", n.Topic))
		return nil
	}

	start := time.Now()
	mo, err := in.marketplace.GetOrder(ctx, n.Resource)
	if err != nil {
		in.metrics.IngestFailed(StageFetch)
		return fmt.Errorf("can't fetch order %s: %w", n.Resource, err)
	}

	order, err := dto.ConvertMarketplaceOrder(mo)
	if err != nil {
		in.metrics.IngestFailed(StageNormalize)
		return fmt.Errorf("can't normalize order %s: %w", n.Resource, err)
	}

	var costs costing.Costs
	err = in.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		existing, err := rep.Orders().GetOrderById(ctx, order.ID)
		switch {
		case err == nil:
			order.ManualFreightOverride = existing.ManualFreightOverride
		case errors.Is(err, gerr.OrderNotFound):
		default:
			return fmt.Errorf("can't get stored order: %w", err)
		}

		products, err := rep.Products().ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("can't list products: %w", err)
		}
		idx := costing.BuildIndex(products)
		costing.LogConflicts(ctx, idx)
		in.metrics.SetSKUConflicts(len(idx.Conflicts()))

		costs = costing.Enrich(order, idx)
		costs.Apply(order)

		return rep.Orders().UpsertOrder(ctx, order)
	})
	if err != nil {
		in.metrics.IngestFailed(StageStore)
		return fmt.Errorf("can't store order %s: %w", order.ID, err)
	}

	in.metrics.OrderIngested(time.Since(start).Seconds())
	log.InfoContext(ctx, "order ingested",
		slog.String("order_id", order.ID),
		slog.String("status", order.Status),
		slog.String("product_cost", order.ProductCost.String()),
		slog.String("operational_cost", order.OperationalCost.String()),
		slog.Bool("freight_overridden", costs.FreightOverridden),
	)
	return nil
}
