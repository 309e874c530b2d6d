package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/analytics"
	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
)

func TestMetricsService_Summarize(t *testing.T) {
	svc := NewMetricsService()

	d1 := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	// 3 records on day one with users {A, B, A}, 1 record on day two with {C}.
	records := []dataset.Record{
		rec("A", "/home", d1, dataset.DeviceWeb, dataset.StatusActive),
		rec("B", "/docs", d1.Add(time.Hour), dataset.DeviceIOS, dataset.StatusIdle),
		rec("A", "/cart", d1.Add(2*time.Hour), dataset.DeviceWeb, dataset.StatusActive),
		rec("C", "/home", d2, dataset.DeviceAndroid, dataset.StatusReviewed),
	}

	summary := svc.Summarize(records, analytics.SummaryFilter{})

	// Distinct users per day are 2 and 1; the average 1.5 rounds to 2.
	assert.Equal(t, 2, summary.DAU)
	assert.Equal(t, 3, summary.MAU)
	assert.Equal(t, 3, summary.TotalUsers)
	assert.Equal(t, 2, summary.ActiveSessions)
	assert.Equal(t, "4m 32s", summary.AvgSessionDuration)
	assert.Equal(t, "42.5%", summary.BounceRate)

	require.Len(t, summary.ChartData, 2)
	assert.Equal(t, analytics.ChartPoint{Date: "2026-08-01", Value: 2}, summary.ChartData[0])
	assert.Equal(t, analytics.ChartPoint{Date: "2026-08-02", Value: 1}, summary.ChartData[1])
}

func TestMetricsService_PlatformMapsToDevice(t *testing.T) {
	svc := NewMetricsService()
	ts := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	records := []dataset.Record{
		rec("A", "/home", ts, dataset.DeviceWeb, dataset.StatusActive),
		rec("B", "/home", ts, dataset.DeviceIOS, dataset.StatusActive),
	}

	summary := svc.Summarize(records, analytics.SummaryFilter{Platform: "iOS"})
	assert.Equal(t, 1, summary.TotalUsers)
	assert.Equal(t, 1, summary.ActiveSessions)

	all := svc.Summarize(records, analytics.SummaryFilter{Platform: dataset.DeviceAll})
	assert.Equal(t, 2, all.TotalUsers)
}

func TestMetricsService_DateRangeFilter(t *testing.T) {
	svc := NewMetricsService()
	day := func(d int) time.Time { return time.Date(2026, 8, d, 12, 0, 0, 0, time.UTC) }

	records := []dataset.Record{
		rec("A", "/home", day(1), dataset.DeviceWeb, dataset.StatusActive),
		rec("B", "/home", day(10), dataset.DeviceWeb, dataset.StatusActive),
		rec("C", "/home", day(20), dataset.DeviceWeb, dataset.StatusActive),
	}

	summary := svc.Summarize(records, analytics.SummaryFilter{
		DateRange: &dataset.DateRange{Start: day(5), End: day(15)},
	})
	assert.Equal(t, 1, summary.TotalUsers)
	require.Len(t, summary.ChartData, 1)
	assert.Equal(t, "2026-08-10", summary.ChartData[0].Date)
}

func TestMetricsService_EmptyInput(t *testing.T) {
	svc := NewMetricsService()

	summary := svc.Summarize(nil, analytics.SummaryFilter{})

	assert.Equal(t, 0, summary.DAU)
	assert.Equal(t, 0, summary.MAU)
	assert.Equal(t, 0, summary.ActiveSessions)
	assert.Empty(t, summary.ChartData)
}

func TestMetricsService_ChartKeepsLast30Days(t *testing.T) {
	svc := NewMetricsService()

	var records []dataset.Record
	for d := 0; d < 40; d++ {
		ts := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		records = append(records, rec(fmt.Sprintf("user_%02d", d), "/home", ts, dataset.DeviceWeb, dataset.StatusActive))
	}

	summary := svc.Summarize(records, analytics.SummaryFilter{})

	require.Len(t, summary.ChartData, 30)
	// Ascending by date, keeping the most recent days.
	assert.Equal(t, "2026-07-11", summary.ChartData[0].Date)
	assert.Equal(t, "2026-08-09", summary.ChartData[29].Date)
	for i := 1; i < len(summary.ChartData); i++ {
		assert.Less(t, summary.ChartData[i-1].Date, summary.ChartData[i].Date)
	}
}
