package report

import (
	"testing"
	"time"

	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saoPaulo = Calendar{Location: time.FixedZone("BRT", -3*3600), LabelLayout: DefaultLabelLayout}

func orderAt(t time.Time, total string) entity.Order {
	return entity.Order{CreatedAt: t, TotalAmount: decimal.RequireFromString(total)}
}

func values(points []entity.TimeSeriesPoint) ([]string, []string, []int) {
	var labels, vals []string
	var counts []int
	for _, p := range points {
		labels = append(labels, p.Label)
		vals = append(vals, p.Value.String())
		counts = append(counts, p.Count)
	}
	return labels, vals, counts
}

func TestDailySeriesFillsGaps(t *testing.T) {
	cal := Calendar{Location: time.UTC}
	orders := []entity.Order{
		orderAt(time.Date(2025, 9, 2, 14, 0, 0, 0, time.UTC), "100"),
	}
	tr, err := cal.ParseDateRange("2025-09-01", "2025-09-03")
	require.NoError(t, err)

	points := SeriesForRange(orders, tr, entity.MetricsGranularityDay, cal)
	labels, vals, counts := values(points)
	assert.Equal(t, []string{"01/09", "02/09", "03/09"}, labels)
	assert.Equal(t, []string{"0", "100", "0"}, vals)
	assert.Equal(t, []int{0, 1, 0}, counts)
}

func TestDailySeriesAccumulatesAndIgnoresOutOfRange(t *testing.T) {
	orders := []entity.Order{
		orderAt(time.Date(2025, 9, 3, 10, 0, 0, 0, saoPaulo.Location), "10.50"),
		orderAt(time.Date(2025, 8, 1, 10, 0, 0, 0, saoPaulo.Location), "999"),
		orderAt(time.Date(2025, 9, 1, 9, 0, 0, 0, saoPaulo.Location), "20"),
		orderAt(time.Date(2025, 9, 3, 23, 59, 0, 0, saoPaulo.Location), "4.50"),
	}
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, saoPaulo.Location)
	end := time.Date(2025, 9, 4, 0, 0, 0, 0, saoPaulo.Location)

	points := DailySeries(orders, start, end, saoPaulo)
	require.Len(t, points, 4)
	_, vals, counts := values(points)
	assert.Equal(t, []string{"20", "0", "15", "0"}, vals)
	assert.Equal(t, []int{1, 0, 2, 0}, counts)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Date.After(points[i-1].Date))
	}
}

func TestDailySeriesUsesCalendarZone(t *testing.T) {
	// 01:30 UTC on the 2nd is still the 1st in UTC-3.
	orders := []entity.Order{
		orderAt(time.Date(2025, 9, 2, 1, 30, 0, 0, time.UTC), "50"),
	}
	tr, err := saoPaulo.ParseDateRange("2025-09-01", "2025-09-02")
	require.NoError(t, err)

	_, vals, _ := values(SeriesForRange(orders, tr, entity.MetricsGranularityDay, saoPaulo))
	assert.Equal(t, []string{"50", "0"}, vals)

	utc := Calendar{Location: time.UTC}
	tr, err = utc.ParseDateRange("2025-09-01", "2025-09-02")
	require.NoError(t, err)
	_, vals, _ = values(SeriesForRange(orders, tr, entity.MetricsGranularityDay, utc))
	assert.Equal(t, []string{"0", "50"}, vals)
}

func TestDailySeriesReadsBoundsAsDates(t *testing.T) {
	orders := []entity.Order{
		orderAt(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC), "10"),
	}
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)

	labels, vals, _ := values(DailySeries(orders, start, end, saoPaulo))
	assert.Equal(t, []string{"01/09", "02/09", "03/09"}, labels)
	assert.Equal(t, []string{"10", "0", "0"}, vals)
}

func TestSeriesSingleDay(t *testing.T) {
	tr, err := saoPaulo.ParseDateRange("2025-01-31", "2025-01-31")
	require.NoError(t, err)
	points := SeriesForRange(nil, tr, entity.MetricsGranularityDay, saoPaulo)
	require.Len(t, points, 1)
	assert.Equal(t, "31/01", points[0].Label)
	assert.True(t, points[0].Value.IsZero())
}

func TestMonthlySeries(t *testing.T) {
	orders := []entity.Order{
		orderAt(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), "10"),
		orderAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), "5"),
		orderAt(time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), "7"),
	}
	cal := Calendar{Location: time.UTC}
	tr, err := cal.ParseDateRange("2025-01-10", "2025-03-20")
	require.NoError(t, err)

	labels, vals, counts := values(SeriesForRange(orders, tr, entity.MetricsGranularityMonth, cal))
	assert.Equal(t, []string{"01/2025", "02/2025", "03/2025"}, labels)
	// 2025-03-31 falls after endDate and is not counted.
	assert.Equal(t, []string{"10", "0", "5"}, vals)
	assert.Equal(t, []int{1, 0, 1}, counts)
}

func TestWeeklySeriesStartsOnMonday(t *testing.T) {
	cal := Calendar{Location: time.UTC}
	// 2025-09-03 is a Wednesday.
	tr, err := cal.ParseDateRange("2025-09-03", "2025-09-10")
	require.NoError(t, err)
	points := SeriesForRange(nil, tr, entity.MetricsGranularityWeek, cal)
	require.Len(t, points, 2)
	assert.Equal(t, time.Monday, points[0].Date.Weekday())
	assert.Equal(t, "01/09", points[0].Label)
	assert.Equal(t, "08/09", points[1].Label)
}

func TestParseDateRange(t *testing.T) {
	cal := Calendar{Location: time.UTC}

	tr, err := cal.ParseDateRange("2025-09-01", "2025-09-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), tr.From)
	assert.Equal(t, time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC), tr.To)

	tests := []struct {
		name       string
		start, end string
	}{
		{"missing start", "", "2025-09-03"},
		{"missing end", "2025-09-01", ""},
		{"bad format", "01/09/2025", "2025-09-03"},
		{"reversed", "2025-09-03", "2025-09-01"},
		{"too long", "2000-01-01", "2025-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.ParseDateRange(tt.start, tt.end)
			assert.Error(t, err)
		})
	}
}

func TestNewCalendar(t *testing.T) {
	cal, err := NewCalendar("", "")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cal.Location)
	assert.Equal(t, DefaultLabelLayout, cal.LabelLayout)

	_, err = NewCalendar("Not/AZone", "")
	assert.Error(t, err)
}
