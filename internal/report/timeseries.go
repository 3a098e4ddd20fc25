package report

import (
	"time"

	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
)

type bucket struct {
	value decimal.Decimal
	count int
}

// Series buckets orders by the calendar period of their creation time and
// returns one point per period in [from, to], ascending and without gaps.
// Periods with no orders are emitted with a zero value and count. Orders
// outside the range are ignored.
func Series(orders []entity.Order, from, to time.Time, g entity.MetricsGranularity, cal Calendar) []entity.TimeSeriesPoint {
	if g == 0 {
		g = entity.MetricsGranularityDay
	}
	loc := cal.location()
	lo := cal.Day(from)
	hi := cal.Day(to).AddDate(0, 0, 1)

	buckets := make(map[string]*bucket)
	for i := range orders {
		if orders[i].CreatedAt.Before(lo) || !orders[i].CreatedAt.Before(hi) {
			continue
		}
		key := bucketStart(orders[i].CreatedAt.In(loc), g).Format(DateLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{value: decimal.Zero}
			buckets[key] = b
		}
		b.value = b.value.Add(orders[i].TotalAmount)
		b.count++
	}

	var result []entity.TimeSeriesPoint
	cur := bucketStart(from.In(loc), g)
	end := bucketStart(to.In(loc), g)
	for !cur.After(end) {
		key := cur.Format(DateLayout)
		p := entity.TimeSeriesPoint{Date: cur, Label: cal.label(cur, g), Value: decimal.Zero}
		if b, ok := buckets[key]; ok {
			p.Value = b.value
			p.Count = b.count
		}
		result = append(result, p)
		cur = bucketNext(cur, g)
	}
	return result
}

// DailySeries is Series with day granularity over the inclusive range of
// calendar days [startDay, endDay]. Only the year, month and day of each
// bound are used, read in the bound's own zone, so UTC midnight of the 1st
// means the 1st in the calendar's zone too.
func DailySeries(orders []entity.Order, startDay, endDay time.Time, cal Calendar) []entity.TimeSeriesPoint {
	return Series(orders, cal.SameDate(startDay), cal.SameDate(endDay), entity.MetricsGranularityDay, cal)
}

// SeriesForRange runs Series over a TimeRange produced by ParseDateRange,
// whose To is exclusive.
func SeriesForRange(orders []entity.Order, tr entity.TimeRange, g entity.MetricsGranularity, cal Calendar) []entity.TimeSeriesPoint {
	return Series(orders, tr.From, tr.To.AddDate(0, 0, -1), g, cal)
}

func bucketStart(t time.Time, g entity.MetricsGranularity) time.Time {
	loc := t.Location()
	switch g {
	case entity.MetricsGranularityWeek:
		// Monday 00:00
		weekday := int(t.Weekday())
		daysBack := (weekday + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, loc)
	case entity.MetricsGranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func bucketNext(t time.Time, g entity.MetricsGranularity) time.Time {
	switch g {
	case entity.MetricsGranularityWeek:
		return t.AddDate(0, 0, 7)
	case entity.MetricsGranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
