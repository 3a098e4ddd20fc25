package reenrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/sales-panel/internal/dependency/mocks"
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/jekabolt/sales-panel/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*mocks.Repository, *mocks.Orders, *mocks.Products) {
	repo := mocks.NewRepository(t)
	orders := mocks.NewOrders(t)
	products := mocks.NewProducts(t)
	repo.EXPECT().Orders().Return(orders).Maybe()
	repo.EXPECT().Products().Return(products).Maybe()
	return repo, orders, products
}

func TestRecomputeUpdatesChangedOrders(t *testing.T) {
	repo, orders, products := newRepo(t)
	ctx := context.Background()

	stored := []entity.Order{
		{
			ID:              "fresh",
			Items:           []entity.OrderItem{{SKU: "A1", Quantity: 1}},
			ProductCost:     decimal.NewFromInt(10),
			OperationalCost: decimal.NewFromInt(2),
		},
		{
			ID:              "stale",
			Items:           []entity.OrderItem{{SKU: "A1", Quantity: 3, SaleFee: decimal.NewFromInt(1)}},
			ProductCost:     decimal.Zero,
			OperationalCost: decimal.Zero,
		},
	}
	orders.EXPECT().ListOrders(mock.Anything).Return(stored, nil)
	products.EXPECT().ListProducts(mock.Anything).Return([]entity.Product{
		{ID: "p1", SKU: "A1", UnitCost: decimal.NewFromInt(10), AverageFreightCost: decimal.NewFromInt(2)},
	}, nil)
	orders.EXPECT().UpdateOrderCosts(mock.Anything, "stale",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(30)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(7)) }),
	).Return(nil)

	m := metrics.NewRegistry()
	n, err := Recompute(ctx, repo, m)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersReenriched))
}

func TestRecomputeListError(t *testing.T) {
	repo, orders, products := newRepo(t)
	boom := errors.New("boom")
	orders.EXPECT().ListOrders(mock.Anything).Return(nil, boom)
	products.EXPECT().ListProducts(mock.Anything).Return(nil, nil).Maybe()

	_, err := Recompute(context.Background(), repo, nil)
	assert.ErrorIs(t, err, boom)
}

func TestWorkerStartStop(t *testing.T) {
	repo, orders, products := newRepo(t)
	orders.EXPECT().ListOrders(mock.Anything).Return(nil, nil).Maybe()
	products.EXPECT().ListProducts(mock.Anything).Return(nil, nil).Maybe()

	w := New(&Config{Enabled: true, WorkerInterval: 10 * time.Millisecond}, repo, nil)
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}

func TestWorkerDisabled(t *testing.T) {
	w := New(&Config{Enabled: false}, nil, nil)
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
}
