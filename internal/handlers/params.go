package handlers

import (
	"fmt"
	"time"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
)

// Accepted timestamp formats for date parameters. Date pickers send plain
// calendar dates, programmatic clients send full instants.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseInstant(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", dataset.ErrInvalidTimestamp, value)
}

// parseDateRange validates the dateStart/dateEnd parameter pair. Both empty
// means no range constraint; supplying only one is rejected rather than
// silently ignored, since that masks client bugs.
func parseDateRange(startStr, endStr string) (*dataset.DateRange, error) {
	if startStr == "" && endStr == "" {
		return nil, nil
	}
	if startStr == "" || endStr == "" {
		return nil, dataset.ErrPartialDateRange
	}

	start, err := parseInstant(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseInstant(endStr)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, dataset.ErrInvalidDateRange
	}
	return &dataset.DateRange{Start: start, End: end}, nil
}
