// Package report aggregates enriched orders into chart series and KPIs.
package report

import (
	"fmt"
	"time"

	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
)

const (
	// DateLayout is the layout of startDate and endDate query values.
	DateLayout = "2006-01-02"
	// DefaultTimeZone is the seller's business calendar.
	DefaultTimeZone = "America/Sao_Paulo"
	// DefaultLabelLayout renders day labels as dd/MM.
	DefaultLabelLayout = "02/01"
	// MaxRangeDays bounds the number of buckets a single request may produce.
	MaxRangeDays = 1096
)

// Calendar fixes the time zone used to decide which day an order belongs to
// and how bucket labels are rendered.
type Calendar struct {
	Location    *time.Location
	LabelLayout string
}

// NewCalendar loads the named time zone. An empty name means UTC.
func NewCalendar(timeZone, labelLayout string) (Calendar, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return Calendar{}, fmt.Errorf("can't load time zone %q: %w", timeZone, err)
	}
	if labelLayout == "" {
		labelLayout = DefaultLabelLayout
	}
	return Calendar{Location: loc, LabelLayout: labelLayout}, nil
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Calendar) label(t time.Time, g entity.MetricsGranularity) string {
	if g == entity.MetricsGranularityMonth {
		return t.Format("01/2006")
	}
	if c.LabelLayout == "" {
		return t.Format(DefaultLabelLayout)
	}
	return t.Format(c.LabelLayout)
}

// Day truncates t to midnight of its calendar day in the calendar's zone.
func (c Calendar) Day(t time.Time) time.Time {
	t = t.In(c.location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate returns midnight in the calendar's zone of the year, month and day
// t carries in its own zone.
func (c Calendar) SameDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location())
}

// ParseDateRange parses an inclusive YYYY-MM-DD range in the calendar's zone.
// The returned TimeRange spans from the start of the first day to the start
// of the day after the last one.
func (c Calendar) ParseDateRange(start, end string) (entity.TimeRange, error) {
	if start == "" || end == "" {
		return entity.TimeRange{}, fmt.Errorf("%w: startDate and endDate are required", gerr.InvalidDateRange)
	}
	from, err := time.ParseInLocation(DateLayout, start, c.location())
	if err != nil {
		return entity.TimeRange{}, fmt.Errorf("%w: startDate: %v", gerr.InvalidDateRange, err)
	}
	to, err := time.ParseInLocation(DateLayout, end, c.location())
	if err != nil {
		return entity.TimeRange{}, fmt.Errorf("%w: endDate: %v", gerr.InvalidDateRange, err)
	}
	if to.Before(from) {
		return entity.TimeRange{}, fmt.Errorf("%w: endDate %s is before startDate %s", gerr.InvalidDateRange, end, start)
	}
	if to.Sub(from) > MaxRangeDays*24*time.Hour {
		return entity.TimeRange{}, fmt.Errorf("%w: range exceeds %d days", gerr.InvalidDateRange, MaxRangeDays)
	}
	return entity.TimeRange{From: from, To: to.AddDate(0, 0, 1)}, nil
}
