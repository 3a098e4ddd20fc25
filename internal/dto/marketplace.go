// Package dto contains data transfer objects exchanged with the marketplace
// API and the HTTP clients of the back office.
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/shopspring/decimal"
)

// TopicOrders is the notification topic carrying order changes.
const TopicOrders = "orders_v2"

// Notification is the webhook body the marketplace posts on every resource change.
type Notification struct {
	ID            string    `json:"_id"`
	Resource      string    `json:"resource"`
	UserID        int64     `json:"user_id"`
	Topic         string    `json:"topic"`
	ApplicationID int64     `json:"application_id"`
	Attempts      int       `json:"attempts"`
	Sent          time.Time `json:"sent"`
	Received      time.Time `json:"received"`
}

// MarketplaceOrder is the order detail returned by GET /orders/{id}.
type MarketplaceOrder struct {
	ID          json.Number            `json:"id"`
	Status      string                 `json:"status"`
	DateCreated time.Time              `json:"date_created"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	CurrencyID  string                 `json:"currency_id"`
	Buyer       MarketplaceBuyer       `json:"buyer"`
	OrderItems  []MarketplaceOrderItem `json:"order_items"`
}

type MarketplaceBuyer struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

type MarketplaceOrderItem struct {
	Item      MarketplaceItem `json:"item"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SaleFee   decimal.Decimal `json:"sale_fee"`
}

type MarketplaceItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	SellerSKU *string `json:"seller_sku"`
}

// ConvertMarketplaceOrder normalizes a marketplace order payload into the
// persisted order shape. Costs and the freight override are left unset.
func ConvertMarketplaceOrder(mo *MarketplaceOrder) (*entity.Order, error) {
	if mo == nil {
		return nil, fmt.Errorf("%w: empty order", gerr.InvalidMarketplace)
	}
	id := strings.TrimSpace(mo.ID.String())
	if id == "" || id == "0" {
		return nil, fmt.Errorf("%w: order without id", gerr.InvalidMarketplace)
	}

	items := make([]entity.OrderItem, 0, len(mo.OrderItems))
	for i, oi := range mo.OrderItems {
		if oi.Quantity <= 0 {
			return nil, fmt.Errorf("%w: order %s item %d has quantity %d", gerr.InvalidMarketplace, id, i, oi.Quantity)
		}
		sku := ""
		if oi.Item.SellerSKU != nil {
			sku = strings.TrimSpace(*oi.Item.SellerSKU)
		}
		items = append(items, entity.OrderItem{
			ItemID:    oi.Item.ID,
			Title:     oi.Item.Title,
			Quantity:  oi.Quantity,
			UnitPrice: oi.UnitPrice,
			SKU:       sku,
			SaleFee:   oi.SaleFee,
		})
	}

	return &entity.Order{
		ID:           id,
		Status:       mo.Status,
		CreatedAt:    mo.DateCreated,
		TotalAmount:  mo.TotalAmount,
		CurrencyCode: mo.CurrencyID,
		Buyer: entity.Buyer{
			ID:       mo.Buyer.ID,
			Nickname: mo.Buyer.Nickname,
		},
		Items: items,
	}, nil
}
