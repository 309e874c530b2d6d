package services

import (
	"math"
	"sort"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/analytics"
	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
)

// Session metrics are fixed display values, not derived from the record set.
// The dataset has no session-duration signal to compute them from.
const (
	placeholderSessionDuration = "4m 32s"
	placeholderBounceRate      = "42.5%"
)

// chartDays caps the time series at the most recent distinct days present.
const chartDays = 30

// MetricsService aggregates a record set into the dashboard summary.
type MetricsService struct{}

// NewMetricsService creates a metrics service.
func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// Summarize filters records by the given range and platform, then computes
// the summary counts and the per-day unique-user series.
func (s *MetricsService) Summarize(records []dataset.Record, filter analytics.SummaryFilter) analytics.Summary {
	filtered := Filter(records, dataset.FilterSpec{
		DateRange: filter.DateRange,
		Device:    filter.Platform,
	})

	uniqueUsers := make(map[string]struct{})
	usersByDay := make(map[string]map[string]struct{})
	activeSessions := 0

	for _, rec := range filtered {
		uniqueUsers[rec.UserID] = struct{}{}
		if rec.Status == dataset.StatusActive {
			activeSessions++
		}

		day := rec.Timestamp.UTC().Format("2006-01-02")
		if usersByDay[day] == nil {
			usersByDay[day] = make(map[string]struct{})
		}
		usersByDay[day][rec.UserID] = struct{}{}
	}

	days := make([]string, 0, len(usersByDay))
	perDayTotal := 0
	for day, users := range usersByDay {
		days = append(days, day)
		perDayTotal += len(users)
	}
	sort.Strings(days)

	denominator := len(days)
	if denominator == 0 {
		denominator = 1
	}
	dau := int(math.Round(float64(perDayTotal) / float64(denominator)))

	if len(days) > chartDays {
		days = days[len(days)-chartDays:]
	}
	chart := make([]analytics.ChartPoint, 0, len(days))
	for _, day := range days {
		chart = append(chart, analytics.ChartPoint{Date: day, Value: len(usersByDay[day])})
	}

	return analytics.Summary{
		DAU:                dau,
		MAU:                len(uniqueUsers),
		TotalUsers:         len(uniqueUsers),
		ActiveSessions:     activeSessions,
		AvgSessionDuration: placeholderSessionDuration,
		BounceRate:         placeholderBounceRate,
		ChartData:          chart,
	}
}
