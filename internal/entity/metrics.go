package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsGranularity controls time bucket size for time series (day, week, month).
type MetricsGranularity int

const (
	MetricsGranularityDay   MetricsGranularity = 1
	MetricsGranularityWeek  MetricsGranularity = 2
	MetricsGranularityMonth MetricsGranularity = 3
)

// ParseMetricsGranularity maps "day", "week" and "month" to a granularity.
// An empty string means day.
func ParseMetricsGranularity(s string) (MetricsGranularity, bool) {
	switch s {
	case "", "day":
		return MetricsGranularityDay, true
	case "week":
		return MetricsGranularityWeek, true
	case "month":
		return MetricsGranularityMonth, true
	default:
		return 0, false
	}
}

type TimeRange struct {
	From time.Time
	To   time.Time
}

// TimeSeriesPoint is a single bucket of a sales series.
type TimeSeriesPoint struct {
	Date  time.Time
	Label string
	Value decimal.Decimal
	Count int
}

// ProductMetric aggregates sold quantity (Count) and revenue (Value) for one product key.
type ProductMetric struct {
	Key         string
	ProductName string
	SKU         string
	Value       decimal.Decimal
	Count       int
}

// SalesSummary contains the KPIs computed over a set of orders.
type SalesSummary struct {
	GrossRevenue  decimal.Decimal
	NetProfit     decimal.Decimal
	ProfitMargin  decimal.Decimal
	OrderCount    int
	AverageTicket decimal.Decimal
	TopProducts   []ProductMetric
}
