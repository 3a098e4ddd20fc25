package dto

import (
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
)

// SalesSeries is the chart payload: datasets are positionally aligned with labels.
type SalesSeries struct {
	Labels   []string       `json:"labels"`
	Datasets SeriesDatasets `json:"datasets"`
}

type SeriesDatasets struct {
	Value []decimal.Decimal `json:"value"`
	Count []int             `json:"count"`
}

func ConvertTimeSeriesToDto(points []entity.TimeSeriesPoint) *SalesSeries {
	s := &SalesSeries{
		Labels: make([]string, 0, len(points)),
		Datasets: SeriesDatasets{
			Value: make([]decimal.Decimal, 0, len(points)),
			Count: make([]int, 0, len(points)),
		},
	}
	for _, p := range points {
		s.Labels = append(s.Labels, p.Label)
		s.Datasets.Value = append(s.Datasets.Value, p.Value)
		s.Datasets.Count = append(s.Datasets.Count, p.Count)
	}
	return s
}

type SalesSummary struct {
	GrossRevenue  decimal.Decimal `json:"grossRevenue"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	ProfitMargin  decimal.Decimal `json:"profitMargin"`
	OrderCount    int             `json:"orderCount"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	TopProducts   []ProductMetric `json:"topProducts"`
}

type ProductMetric struct {
	Key      string          `json:"key"`
	Title    string          `json:"title"`
	SKU      string          `json:"sku,omitempty"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

func ConvertSalesSummaryToDto(s *entity.SalesSummary) *SalesSummary {
	top := make([]ProductMetric, 0, len(s.TopProducts))
	for _, p := range s.TopProducts {
		top = append(top, ProductMetric{
			Key:      p.Key,
			Title:    p.ProductName,
			SKU:      p.SKU,
			Quantity: p.Count,
			Revenue:  p.Value,
		})
	}
	return &SalesSummary{
		GrossRevenue:  s.GrossRevenue.Round(2),
		NetProfit:     s.NetProfit.Round(2),
		ProfitMargin:  s.ProfitMargin.Round(2),
		OrderCount:    s.OrderCount,
		AverageTicket: s.AverageTicket.Round(2),
		TopProducts:   top,
	}
}
