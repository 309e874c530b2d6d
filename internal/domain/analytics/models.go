package analytics

import "github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"

// Summary is the aggregated dashboard view of a filtered record set.
//
// MAU and TotalUsers both carry the distinct-user count of the filtered set.
// The duplication is intentional, inherited dashboard behavior.
type Summary struct {
	DAU                int          `json:"dau"`
	MAU                int          `json:"mau"`
	TotalUsers         int          `json:"totalUsers"`
	ActiveSessions     int          `json:"activeSessions"`
	AvgSessionDuration string       `json:"avgSessionDuration"`
	BounceRate         string       `json:"bounceRate"`
	ChartData          []ChartPoint `json:"chartData"`
}

// ChartPoint is one day of the unique-user time series.
type ChartPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// SummaryFilter narrows the record set before aggregation. Platform maps to
// the record's device field; "All" (or empty) places no constraint.
type SummaryFilter struct {
	DateRange *dataset.DateRange `json:"dateRange,omitempty"`
	Platform  string             `json:"platform,omitempty"`
}
