package dto

import (
	"encoding/json"
	"testing"
	"time"

	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderPayload = `{
	"id": 2000003508419013,
	"status": "paid",
	"date_created": "2025-09-02T10:15:00.000-03:00",
	"total_amount": 100.00,
	"currency_id": "BRL",
	"buyer": {"id": 74425755, "nickname": "TEST_BUYER"},
	"order_items": [
		{"item": {"id": "MLB1", "title": "Caneca", "seller_sku": " A1 "}, "quantity": 2, "unit_price": 50, "sale_fee": 6.5},
		{"item": {"id": "MLB2", "title": "Brinde", "seller_sku": null}, "quantity": 1, "unit_price": 0, "sale_fee": 0}
	]
}`

func TestConvertMarketplaceOrder(t *testing.T) {
	var mo MarketplaceOrder
	require.NoError(t, json.Unmarshal([]byte(orderPayload), &mo))

	o, err := ConvertMarketplaceOrder(&mo)
	require.NoError(t, err)
	assert.Equal(t, "2000003508419013", o.ID)
	assert.Equal(t, "paid", o.Status)
	assert.Equal(t, "BRL", o.CurrencyCode)
	assert.Equal(t, int64(74425755), o.Buyer.ID)
	assert.Equal(t, "TEST_BUYER", o.Buyer.Nickname)
	assert.True(t, o.CreatedAt.Equal(time.Date(2025, 9, 2, 13, 15, 0, 0, time.UTC)))
	assert.Equal(t, "100", o.TotalAmount.String())

	require.Len(t, o.Items, 2)
	assert.Equal(t, "A1", o.Items[0].SKU)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, "6.5", o.Items[0].SaleFee.String())
	assert.Equal(t, "", o.Items[1].SKU)

	assert.False(t, o.ManualFreightOverride.Valid)
	assert.True(t, o.ProductCost.IsZero())
}

func TestConvertMarketplaceOrderInvalid(t *testing.T) {
	_, err := ConvertMarketplaceOrder(nil)
	assert.ErrorIs(t, err, gerr.InvalidMarketplace)

	_, err = ConvertMarketplaceOrder(&MarketplaceOrder{})
	assert.ErrorIs(t, err, gerr.InvalidMarketplace)

	_, err = ConvertMarketplaceOrder(&MarketplaceOrder{
		ID:         "1",
		OrderItems: []MarketplaceOrderItem{{Item: MarketplaceItem{ID: "x"}, Quantity: 0}},
	})
	assert.ErrorIs(t, err, gerr.InvalidMarketplace)
}

func TestConvertMarketplaceOrderNoItems(t *testing.T) {
	o, err := ConvertMarketplaceOrder(&MarketplaceOrder{ID: "42"})
	require.NoError(t, err)
	assert.Empty(t, o.Items)
	assert.NotNil(t, o.Items)
}
