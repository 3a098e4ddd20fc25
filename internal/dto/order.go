package dto

import (
	"time"

	"github.com/jekabolt/sales-panel/internal/currency"
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
)

// Order is the JSON view of an enriched order.
type Order struct {
	ID                    string           `json:"id"`
	Status                string           `json:"status"`
	CreatedAt             time.Time        `json:"createdAt"`
	TotalAmount           decimal.Decimal  `json:"totalAmount"`
	CurrencyCode          string           `json:"currencyCode"`
	Buyer                 Buyer            `json:"buyer"`
	Items                 []OrderItem      `json:"items"`
	ManualFreightOverride *decimal.Decimal `json:"manualFreightOverride,omitempty"`
	ProductCost           decimal.Decimal  `json:"productCost"`
	OperationalCost       decimal.Decimal  `json:"operationalCost"`
	Profit                decimal.Decimal  `json:"profit"`
	LastUpdated           time.Time        `json:"lastUpdated"`
}

type Buyer struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

type OrderItem struct {
	ItemID    string          `json:"itemId"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	SKU       string          `json:"sku,omitempty"`
	SaleFee   decimal.Decimal `json:"saleFee"`
}

// ConvertEntityOrderToDto converts an entity order to its JSON view. Costs
// and profit are rounded to the precision of the order currency.
func ConvertEntityOrderToDto(o *entity.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ItemID:    it.ItemID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			SKU:       it.SKU,
			SaleFee:   it.SaleFee,
		})
	}
	var override *decimal.Decimal
	if o.ManualFreightOverride.Valid {
		v := o.ManualFreightOverride.Decimal
		override = &v
	}
	return Order{
		ID:                    o.ID,
		Status:                o.Status,
		CreatedAt:             o.CreatedAt,
		TotalAmount:           o.TotalAmount,
		CurrencyCode:          o.CurrencyCode,
		Buyer:                 Buyer{ID: o.Buyer.ID, Nickname: o.Buyer.Nickname},
		Items:                 items,
		ManualFreightOverride: override,
		ProductCost:           currency.Round(o.ProductCost, o.CurrencyCode),
		OperationalCost:       currency.Round(o.OperationalCost, o.CurrencyCode),
		Profit:                currency.Round(o.Profit(), o.CurrencyCode),
		LastUpdated:           o.LastUpdated,
	}
}

// ConvertEntityOrdersToDto converts a list of orders.
func ConvertEntityOrdersToDto(orders []entity.Order) []Order {
	res := make([]Order, 0, len(orders))
	for i := range orders {
		res = append(res, ConvertEntityOrderToDto(&orders[i]))
	}
	return res
}
