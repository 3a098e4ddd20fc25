package report

import (
	"sort"
	"time"

	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
)

// DefaultTopProducts is the size of the product ranking.
const DefaultTopProducts = 5

var hundred = decimal.NewFromInt(100)

// GroupKey selects how line items are grouped in the product ranking.
type GroupKey int

const (
	GroupByTitle GroupKey = iota
	// GroupBySKU groups by SKU, falling back to the title for items without one.
	GroupBySKU
)

// Summarize computes revenue, profit and ticket KPIs over orders plus the
// top-k products by quantity sold. Ratios are zero when their denominator is.
func Summarize(orders []entity.Order, k int, key GroupKey) entity.SalesSummary {
	gross := decimal.Zero
	cost := decimal.Zero
	for i := range orders {
		gross = gross.Add(orders[i].TotalAmount)
		cost = cost.Add(orders[i].TotalCost())
	}

	s := entity.SalesSummary{
		GrossRevenue:  gross,
		NetProfit:     gross.Sub(cost),
		ProfitMargin:  decimal.Zero,
		OrderCount:    len(orders),
		AverageTicket: decimal.Zero,
		TopProducts:   TopProducts(orders, k, key),
	}
	if !gross.IsZero() {
		s.ProfitMargin = s.NetProfit.Div(gross).Mul(hundred)
	}
	if s.OrderCount > 0 {
		s.AverageTicket = gross.Div(decimal.NewFromInt(int64(s.OrderCount)))
	}
	return s
}

// TopProducts groups all line items by key, sums quantities and returns the
// k groups with the highest quantity. Ties keep first-encounter order.
func TopProducts(orders []entity.Order, k int, key GroupKey) []entity.ProductMetric {
	if k <= 0 {
		k = DefaultTopProducts
	}
	var (
		ranked []*entity.ProductMetric
		byKey  = make(map[string]*entity.ProductMetric)
	)
	for i := range orders {
		for _, it := range orders[i].Items {
			gk := groupKey(it, key)
			m, ok := byKey[gk]
			if !ok {
				m = &entity.ProductMetric{
					Key:         gk,
					ProductName: it.Title,
					SKU:         it.SKU,
					Value:       decimal.Zero,
				}
				byKey[gk] = m
				ranked = append(ranked, m)
			}
			m.Count += it.Quantity
			m.Value = m.Value.Add(it.Subtotal())
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	res := make([]entity.ProductMetric, len(ranked))
	for i, m := range ranked {
		res[i] = *m
	}
	return res
}

func groupKey(it entity.OrderItem, key GroupKey) string {
	if key == GroupBySKU && it.SKU != "" {
		return it.SKU
	}
	return it.Title
}

// TrailingWindow keeps the orders created within the last months months
// before now. months <= 0 keeps everything.
func TrailingWindow(orders []entity.Order, months int, now time.Time) []entity.Order {
	if months <= 0 {
		return orders
	}
	since := now.AddDate(0, -months, 0)
	res := make([]entity.Order, 0, len(orders))
	for i := range orders {
		if !orders[i].CreatedAt.Before(since) {
			res = append(res, orders[i])
		}
	}
	return res
}
