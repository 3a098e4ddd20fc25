package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/shopspring/decimal"
)

type orderStore struct {
	*MYSQLStore
}

// Orders returns an object implementing orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &orderStore{
		MYSQLStore: ms,
	}
}

const selectOrder = `
	SELECT id, status, created_at, total_amount, currency_code, buyer_id, buyer_nickname,
		manual_freight_override, product_cost, operational_cost, last_updated
	FROM sale_order`

type orderRow struct {
	ID                    string              `db:"id"`
	Status                string              `db:"status"`
	CreatedAt             time.Time           `db:"created_at"`
	TotalAmount           decimal.Decimal     `db:"total_amount"`
	CurrencyCode          string              `db:"currency_code"`
	BuyerID               int64               `db:"buyer_id"`
	BuyerNickname         string              `db:"buyer_nickname"`
	ManualFreightOverride decimal.NullDecimal `db:"manual_freight_override"`
	ProductCost           decimal.Decimal     `db:"product_cost"`
	OperationalCost       decimal.Decimal     `db:"operational_cost"`
	LastUpdated           time.Time           `db:"last_updated"`
}

func (r *orderRow) toEntity(items []entity.OrderItem) entity.Order {
	if items == nil {
		items = []entity.OrderItem{}
	}
	return entity.Order{
		ID:                    r.ID,
		Status:                r.Status,
		CreatedAt:             r.CreatedAt,
		TotalAmount:           r.TotalAmount,
		CurrencyCode:          r.CurrencyCode,
		Buyer:                 entity.Buyer{ID: r.BuyerID, Nickname: r.BuyerNickname},
		Items:                 items,
		ManualFreightOverride: r.ManualFreightOverride,
		ProductCost:           r.ProductCost,
		OperationalCost:       r.OperationalCost,
		LastUpdated:           r.LastUpdated,
	}
}

type orderItemRow struct {
	OrderID  string `db:"order_id"`
	Position int    `db:"position"`
	entity.OrderItem
}

// UpsertOrder inserts the order or refreshes its marketplace fields and costs.
// manual_freight_override is only written on insert. Items are replaced.
func (ms *MYSQLStore) UpsertOrder(ctx context.Context, o *entity.Order) error {
	return ms.txOrCurrent(ctx, func(ctx context.Context, rep dependency.Repository) error {
		query := `
		INSERT INTO sale_order
		(id, status, created_at, total_amount, currency_code, buyer_id, buyer_nickname,
			manual_freight_override, product_cost, operational_cost, last_updated)
		VALUES (:id, :status, :createdAt, :totalAmount, :currencyCode, :buyerId, :buyerNickname,
			:manualFreightOverride, :productCost, :operationalCost, :lastUpdated)
		ON DUPLICATE KEY UPDATE
			status = VALUES(status),
			created_at = VALUES(created_at),
			total_amount = VALUES(total_amount),
			currency_code = VALUES(currency_code),
			buyer_id = VALUES(buyer_id),
			buyer_nickname = VALUES(buyer_nickname),
			product_cost = VALUES(product_cost),
			operational_cost = VALUES(operational_cost),
			last_updated = VALUES(last_updated)`

		_, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
			"id":                    o.ID,
			"status":                o.Status,
			"createdAt":             o.CreatedAt.UTC(),
			"totalAmount":           o.TotalAmount,
			"currencyCode":          o.CurrencyCode,
			"buyerId":               o.Buyer.ID,
			"buyerNickname":         o.Buyer.Nickname,
			"manualFreightOverride": o.ManualFreightOverride,
			"productCost":           o.ProductCost,
			"operationalCost":       o.OperationalCost,
			"lastUpdated":           rep.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("can't upsert order %s: %w", o.ID, err)
		}

		if err := deleteOrderItems(ctx, rep, o.ID); err != nil {
			return err
		}
		return insertOrderItems(ctx, rep, o.ID, o.Items)
	})
}

var orderItemColumns = []string{"order_id", "position", "item_id", "title", "quantity", "unit_price", "sku", "sale_fee"}

func insertOrderItems(ctx context.Context, rep dependency.Repository, orderID string, items []entity.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for i, item := range items {
		rows = append(rows, []any{orderID, i, item.ItemID, item.Title, item.Quantity, item.UnitPrice, item.SKU, item.SaleFee})
	}
	if err := BulkInsert(ctx, rep.DB(), "sale_order_item", orderItemColumns, rows); err != nil {
		return fmt.Errorf("can't insert order items: %w", err)
	}
	return nil
}

func deleteOrderItems(ctx context.Context, rep dependency.Repository, orderID string) error {
	query := `DELETE FROM sale_order_item WHERE order_id = :orderId`
	_, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
		"orderId": orderID,
	})
	if err != nil {
		return fmt.Errorf("can't delete order items: %w", err)
	}
	return nil
}

func getOrdersItems(ctx context.Context, rep dependency.Repository, orderIds ...string) (map[string][]entity.OrderItem, error) {
	if len(orderIds) == 0 {
		return map[string][]entity.OrderItem{}, nil
	}
	query := `
	SELECT order_id, position, item_id, title, quantity, unit_price, sku, sale_fee
	FROM sale_order_item
	WHERE order_id IN (:orderIds)
	ORDER BY order_id, position`

	rows, err := QueryListNamed[orderItemRow](ctx, rep.DB(), query, map[string]any{
		"orderIds": orderIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	res := make(map[string][]entity.OrderItem, len(orderIds))
	for _, r := range rows {
		res[r.OrderID] = append(res[r.OrderID], r.OrderItem)
	}
	return res, nil
}

func withItems(ctx context.Context, rep dependency.Repository, rows []orderRow) ([]entity.Order, error) {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	items, err := getOrdersItems(ctx, rep, ids...)
	if err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].toEntity(items[rows[i].ID]))
	}
	return orders, nil
}

// GetOrderById returns gerr.OrderNotFound when no order has the id.
func (ms *MYSQLStore) GetOrderById(ctx context.Context, id string) (*entity.Order, error) {
	query := selectOrder + ` WHERE id = :id`
	row, err := QueryNamedOne[orderRow](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", gerr.OrderNotFound, id)
		}
		return nil, fmt.Errorf("can't get order %s: %w", id, err)
	}

	orders, err := withItems(ctx, ms, []orderRow{row})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (ms *MYSQLStore) ListOrders(ctx context.Context) ([]entity.Order, error) {
	query := selectOrder + ` ORDER BY created_at, id`
	rows, err := QueryListNamed[orderRow](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list orders: %w", err)
	}
	return withItems(ctx, ms, rows)
}

func (ms *MYSQLStore) ListOrdersCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	query := selectOrder + `
	WHERE created_at >= :from AND created_at < :to
	ORDER BY created_at, id`
	rows, err := QueryListNamed[orderRow](ctx, ms.DB(), query, map[string]any{
		"from": from.UTC(),
		"to":   to.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("can't list orders between %s and %s: %w", from, to, err)
	}
	return withItems(ctx, ms, rows)
}

func (ms *MYSQLStore) SetFreightOverride(ctx context.Context, id string, value decimal.Decimal) error {
	query := `UPDATE sale_order SET manual_freight_override = :value WHERE id = :id`
	_, err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":    id,
		"value": value,
	})
	if err != nil {
		return fmt.Errorf("can't set freight override for order %s: %w", id, err)
	}
	return nil
}

func (ms *MYSQLStore) RemoveFreightOverride(ctx context.Context, id string) error {
	query := `UPDATE sale_order SET manual_freight_override = NULL WHERE id = :id`
	_, err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't remove freight override for order %s: %w", id, err)
	}
	return nil
}

func (ms *MYSQLStore) UpdateOrderCosts(ctx context.Context, id string, productCost, operationalCost decimal.Decimal) error {
	query := `
	UPDATE sale_order
	SET product_cost = :productCost, operational_cost = :operationalCost
	WHERE id = :id`
	_, err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":              id,
		"productCost":     productCost,
		"operationalCost": operationalCost,
	})
	if err != nil {
		return fmt.Errorf("can't update costs of order %s: %w", id, err)
	}
	return nil
}
