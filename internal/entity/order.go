package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a completed marketplace sale together with its derived cost fields.
type Order struct {
	ID           string          `db:"id"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	CurrencyCode string          `db:"currency_code"`
	Buyer        Buyer
	Items        []OrderItem

	// ManualFreightOverride replaces the computed freight estimate when valid.
	ManualFreightOverride decimal.NullDecimal `db:"manual_freight_override"`

	// ProductCost and OperationalCost are a persisted cache of the enrichment
	// result and are rewritten whenever the catalog changes.
	ProductCost     decimal.Decimal `db:"product_cost"`
	OperationalCost decimal.Decimal `db:"operational_cost"`
	LastUpdated     time.Time       `db:"last_updated"`
}

// TotalCost is productCost + operationalCost.
func (o *Order) TotalCost() decimal.Decimal {
	return o.ProductCost.Add(o.OperationalCost)
}

// Profit is totalAmount minus the total cost of the order.
func (o *Order) Profit() decimal.Decimal {
	return o.TotalAmount.Sub(o.TotalCost())
}

type Buyer struct {
	ID       int64  `db:"buyer_id"`
	Nickname string `db:"buyer_nickname"`
}

// OrderItem is one line of an order. SKU may be empty.
type OrderItem struct {
	ItemID    string          `db:"item_id"`
	Title     string          `db:"title"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	SKU       string          `db:"sku"`
	SaleFee   decimal.Decimal `db:"sale_fee"`
}

// Subtotal returns unitPrice * quantity.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
