package store

import (
	"context"
	"testing"

	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	p, err := db.Products().AddProduct(ctx, &entity.ProductInsert{
		Name:               "Cup",
		SKU:                "A1",
		AliasSKUs:          []string{"A1-OLD", "A1-KIT"},
		UnitCost:           decimal.NewFromInt(10),
		AverageFreightCost: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Len(t, p.ID, 36)
	assert.Equal(t, []string{"A1-OLD", "A1-KIT"}, p.AliasSKUs)
	assert.False(t, p.CreatedAt.IsZero())

	upd, err := db.Products().UpdateProduct(ctx, p.ID, &entity.ProductInsert{
		Name:               "Cup XL",
		SKU:                "A1",
		AliasSKUs:          []string{"A1-KIT"},
		UnitCost:           decimal.NewFromInt(12),
		AverageFreightCost: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cup XL", upd.Name)
	assert.Equal(t, []string{"A1-KIT"}, upd.AliasSKUs)
	assert.True(t, decimal.NewFromInt(12).Equal(upd.UnitCost))

	second, err := db.Products().AddProduct(ctx, &entity.ProductInsert{Name: "Plate", SKU: "B1"})
	require.NoError(t, err)

	list, err := db.Products().ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, p.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Empty(t, list[1].AliasSKUs)

	require.NoError(t, db.Products().DeleteProductById(ctx, p.ID))
	_, err = db.Products().GetProductById(ctx, p.ID)
	assert.ErrorIs(t, err, gerr.ProductNotFound)
	assert.ErrorIs(t, db.Products().DeleteProductById(ctx, p.ID), gerr.ProductNotFound)
}

func TestUpdateProductNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Products().UpdateProduct(context.Background(), "missing", &entity.ProductInsert{Name: "x", SKU: "y"})
	assert.ErrorIs(t, err, gerr.ProductNotFound)
}
