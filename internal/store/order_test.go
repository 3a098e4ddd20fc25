package store

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id string, createdAt time.Time) *entity.Order {
	return &entity.Order{
		ID:           id,
		Status:       "paid",
		CreatedAt:    createdAt,
		TotalAmount:  decimal.RequireFromString("100.00"),
		CurrencyCode: "BRL",
		Buyer:        entity.Buyer{ID: 7, Nickname: "BUYER"},
		Items: []entity.OrderItem{
			{ItemID: "MLB1", Title: "Cup", Quantity: 2, UnitPrice: decimal.NewFromInt(40), SKU: "A1", SaleFee: decimal.NewFromInt(5)},
			{ItemID: "MLB2", Title: "Gift", Quantity: 1, UnitPrice: decimal.NewFromInt(20)},
		},
		ProductCost:     decimal.NewFromInt(15),
		OperationalCost: decimal.NewFromInt(7),
	}
}

func TestUpsertOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	created := time.Date(2025, 9, 2, 13, 0, 0, 0, time.UTC)

	o := testOrder("1001", created)
	require.NoError(t, db.Orders().UpsertOrder(ctx, o))

	got, err := db.Orders().GetOrderById(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "paid", got.Status)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, o.TotalAmount.Equal(got.TotalAmount))
	assert.Equal(t, int64(7), got.Buyer.ID)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "A1", got.Items[0].SKU)
	assert.Equal(t, "", got.Items[1].SKU)
	assert.False(t, got.ManualFreightOverride.Valid)

	// Override survives a later upsert from the marketplace.
	require.NoError(t, db.Orders().SetFreightOverride(ctx, "1001", decimal.NewFromInt(9)))
	o.Status = "delivered"
	o.Items = o.Items[:1]
	require.NoError(t, db.Orders().UpsertOrder(ctx, o))

	got, err = db.Orders().GetOrderById(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "delivered", got.Status)
	assert.Len(t, got.Items, 1)
	require.True(t, got.ManualFreightOverride.Valid)
	assert.True(t, decimal.NewFromInt(9).Equal(got.ManualFreightOverride.Decimal))

	require.NoError(t, db.Orders().RemoveFreightOverride(ctx, "1001"))
	got, err = db.Orders().GetOrderById(ctx, "1001")
	require.NoError(t, err)
	assert.False(t, got.ManualFreightOverride.Valid)
}

func TestGetOrderByIdNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Orders().GetOrderById(context.Background(), "missing")
	assert.ErrorIs(t, err, gerr.OrderNotFound)
}

func TestListOrdersCreatedBetween(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Orders().UpsertOrder(ctx, testOrder("1", day.Add(-time.Minute))))
	require.NoError(t, db.Orders().UpsertOrder(ctx, testOrder("2", day)))
	require.NoError(t, db.Orders().UpsertOrder(ctx, testOrder("3", day.Add(23*time.Hour))))
	require.NoError(t, db.Orders().UpsertOrder(ctx, testOrder("4", day.AddDate(0, 0, 1))))

	orders, err := db.Orders().ListOrdersCreatedBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "2", orders[0].ID)
	assert.Equal(t, "3", orders[1].ID)
	assert.Len(t, orders[0].Items, 2)

	all, err := db.Orders().ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUpdateOrderCosts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Orders().UpsertOrder(ctx, testOrder("1", time.Now().UTC())))

	require.NoError(t, db.Orders().UpdateOrderCosts(ctx, "1", decimal.NewFromInt(30), decimal.RequireFromString("12.50")))
	got, err := db.Orders().GetOrderById(ctx, "1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(got.ProductCost))
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.OperationalCost))
}

func TestUpsertOrderInTx(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		return rep.Orders().UpsertOrder(ctx, testOrder("tx", time.Now().UTC()))
	})
	require.NoError(t, err)

	_, err = db.Orders().GetOrderById(ctx, "tx")
	assert.NoError(t, err)
}
