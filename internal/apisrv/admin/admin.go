package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jekabolt/sales-panel/internal/costing"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/dto"
	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/jekabolt/sales-panel/internal/metrics"
	"github.com/jekabolt/sales-panel/internal/reenrich"
	"github.com/jekabolt/sales-panel/internal/report"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	TimeZone      string `mapstructure:"time_zone"`
	LabelLayout   string `mapstructure:"label_layout"`
	TopProducts   int    `mapstructure:"top_products"`
	DefaultMonths int    `mapstructure:"default_months"`
	// GroupBy is "title" or "sku".
	GroupBy string `mapstructure:"group_by"`
}

// Server implements handlers for the back office.
type Server struct {
	repo     dependency.Repository
	metrics  *metrics.Registry
	calendar report.Calendar
	topK     int
	months   int
	groupBy  report.GroupKey
}

// New creates a new server with admin handlers.
func New(c *Config, r dependency.Repository, m *metrics.Registry) (*Server, error) {
	cal, err := report.NewCalendar(c.TimeZone, c.LabelLayout)
	if err != nil {
		return nil, err
	}
	groupBy := report.GroupByTitle
	switch c.GroupBy {
	case "", "title":
	case "sku":
		groupBy = report.GroupBySKU
	default:
		return nil, fmt.Errorf("unknown report group_by %q", c.GroupBy)
	}
	topK := c.TopProducts
	if topK <= 0 {
		topK = report.DefaultTopProducts
	}
	return &Server{
		repo:     r,
		metrics:  m,
		calendar: cal,
		topK:     topK,
		months:   c.DefaultMonths,
		groupBy:  groupBy,
	}, nil
}

// costIndex reads the catalog and builds a fresh cost index.
func costIndex(ctx context.Context, rep dependency.Repository) (*costing.Index, error) {
	products, err := rep.Products().ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}
	idx := costing.BuildIndex(products)
	costing.LogConflicts(ctx, idx)
	return idx, nil
}

// enrichedOrders fetches orders and the catalog concurrently and returns the
// orders with costs recomputed against the current catalog.
func (s *Server) enrichedOrders(ctx context.Context, fetch func(ctx context.Context) ([]entity.Order, error)) ([]entity.Order, error) {
	var (
		orders []entity.Order
		idx    *costing.Index
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		idx, err = costIndex(gctx, s.repo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return costing.EnrichAll(orders, idx), nil
}

// ORDERS

// ListOrders returns all orders enriched with the current catalog costs.
func (s *Server) ListOrders(ctx context.Context) ([]dto.Order, error) {
	orders, err := s.enrichedOrders(ctx, s.repo.Orders().ListOrders)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list orders",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return dto.ConvertEntityOrdersToDto(orders), nil
}

func (s *Server) GetOrder(ctx context.Context, id string) (*dto.Order, error) {
	orders, err := s.enrichedOrders(ctx, func(ctx context.Context) ([]entity.Order, error) {
		o, err := s.repo.Orders().GetOrderById(ctx, id)
		if err != nil {
			return nil, err
		}
		return []entity.Order{*o}, nil
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get order",
			slog.String("err", err.Error()),
			slog.String("order_id", id),
		)
		return nil, err
	}
	o := dto.ConvertEntityOrderToDto(&orders[0])
	return &o, nil
}

// UpdateFreight sets or clears the manual freight override of an order from
// a {"manualFreightOverride": number|null} body, then recomputes and stores
// the order costs.
func (s *Server) UpdateFreight(ctx context.Context, id string, body []byte) (*dto.Order, error) {
	upd, err := dto.ParseFreightOverride(body)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		o, err := rep.Orders().GetOrderById(ctx, id)
		if err != nil {
			return err
		}
		if upd.Remove {
			err = rep.Orders().RemoveFreightOverride(ctx, id)
			o.ManualFreightOverride.Valid = false
		} else {
			err = rep.Orders().SetFreightOverride(ctx, id, upd.Value)
			o.ManualFreightOverride.Decimal = upd.Value
			o.ManualFreightOverride.Valid = true
		}
		if err != nil {
			return err
		}

		idx, err := costIndex(ctx, rep)
		if err != nil {
			return err
		}
		costing.Enrich(o, idx).Apply(o)
		if err := rep.Orders().UpdateOrderCosts(ctx, id, o.ProductCost, o.OperationalCost); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't update freight override",
			slog.String("err", err.Error()),
			slog.String("order_id", id),
		)
		return nil, err
	}

	slog.Default().InfoContext(ctx, "freight override updated",
		slog.String("order_id", id),
		slog.Bool("removed", upd.Remove),
		slog.String("operational_cost", order.OperationalCost.String()),
	)
	res := dto.ConvertEntityOrderToDto(order)
	return &res, nil
}

// PRODUCTS

func (s *Server) ListProducts(ctx context.Context) ([]dto.Product, error) {
	products, err := s.repo.Products().ListProducts(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list products",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return dto.ConvertEntityProductsToDto(products), nil
}

func (s *Server) GetProduct(ctx context.Context, id string) (*dto.Product, error) {
	p, err := s.repo.Products().GetProductById(ctx, id)
	if err != nil {
		return nil, err
	}
	res := dto.ConvertEntityProductToDto(p)
	return &res, nil
}

func validateProduct(pi *entity.ProductInsert) error {
	pi.Normalize()
	if err := pi.Validate(); err != nil {
		return fmt.Errorf("%w: %v", gerr.BadRequest, err)
	}
	return nil
}

func (s *Server) AddProduct(ctx context.Context, body []byte) (*dto.Product, error) {
	req, err := dto.DecodeProductRequest(body)
	if err != nil {
		return nil, err
	}
	pi := req.ToInsert(nil)
	if err := validateProduct(pi); err != nil {
		return nil, err
	}

	p, err := s.repo.Products().AddProduct(ctx, pi)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add product",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	s.catalogChanged(ctx)
	res := dto.ConvertEntityProductToDto(p)
	return &res, nil
}

// UpdateProduct applies the fields present in body on top of the stored product.
func (s *Server) UpdateProduct(ctx context.Context, id string, body []byte) (*dto.Product, error) {
	req, err := dto.DecodeProductRequest(body)
	if err != nil {
		return nil, err
	}

	var p *entity.Product
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		current, err := rep.Products().GetProductById(ctx, id)
		if err != nil {
			return err
		}
		pi := req.ToInsert(current)
		if err := validateProduct(pi); err != nil {
			return err
		}
		p, err = rep.Products().UpdateProduct(ctx, id, pi)
		return err
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't update product",
			slog.String("err", err.Error()),
			slog.String("product_id", id),
		)
		return nil, err
	}
	s.catalogChanged(ctx)
	res := dto.ConvertEntityProductToDto(p)
	return &res, nil
}

func (s *Server) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Products().DeleteProductById(ctx, id); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete product",
			slog.String("err", err.Error()),
			slog.String("product_id", id),
		)
		return err
	}
	s.catalogChanged(ctx)
	return nil
}

// catalogChanged refreshes the persisted order costs. A failure leaves the
// catalog change in place; the periodic worker retries it.
func (s *Server) catalogChanged(ctx context.Context) {
	if _, err := reenrich.Recompute(ctx, s.repo, s.metrics); err != nil {
		slog.Default().ErrorContext(ctx, "can't re-enrich orders after catalog change",
			slog.String("err", err.Error()),
		)
	}
}

// REPORTS

// SalesSeries returns revenue and order count per period between startDate
// and endDate (YYYY-MM-DD, both inclusive).
func (s *Server) SalesSeries(ctx context.Context, startDate, endDate, granularity string) (*dto.SalesSeries, error) {
	g, ok := entity.ParseMetricsGranularity(granularity)
	if !ok {
		return nil, fmt.Errorf("%w: unknown granularity %q", gerr.BadRequest, granularity)
	}
	tr, err := s.calendar.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.Orders().ListOrdersCreatedBetween(ctx, tr.From, tr.To)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders for sales series",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return dto.ConvertTimeSeriesToDto(report.SeriesForRange(orders, tr, g, s.calendar)), nil
}

// Summary returns KPIs over the orders of the last months months. An empty
// months uses the configured default; 0 covers every order.
func (s *Server) Summary(ctx context.Context, months string) (*dto.SalesSummary, error) {
	n := s.months
	if months != "" {
		v, err := strconv.Atoi(months)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: months must be a non-negative integer", gerr.BadRequest)
		}
		n = v
	}

	orders, err := s.enrichedOrders(ctx, s.repo.Orders().ListOrders)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders for summary",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	orders = report.TrailingWindow(orders, n, s.repo.Now())
	summary := report.Summarize(orders, s.topK, s.groupBy)
	return dto.ConvertSalesSummaryToDto(&summary), nil
}
