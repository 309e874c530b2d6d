package dataset

import "errors"

var (
	// ErrInvalidPage is returned when a page number is not a positive integer
	ErrInvalidPage = errors.New("page must be a positive integer")

	// ErrInvalidLimit is returned when a page size is not a positive integer
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrInvalidSortField is returned when a sort key is not a record field
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned when a sort direction is not asc or desc
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidTimestamp is returned when a date parameter cannot be parsed
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidDateRange is returned when a range starts after it ends
	ErrInvalidDateRange = errors.New("date range start is after end")

	// ErrPartialDateRange is returned when only one bound of a range is given
	ErrPartialDateRange = errors.New("dateStart and dateEnd must be provided together")
)
