package services

import (
	"sort"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
)

// Filter returns the records satisfying every present constraint in spec.
// Input order is preserved and the input slice is never mutated.
func Filter(records []dataset.Record, spec dataset.FilterSpec) []dataset.Record {
	out := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		if spec.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Sort returns a sorted copy of records. The sort is stable: records with
// equal keys keep their prior relative order.
func Sort(records []dataset.Record, field dataset.SortField, order dataset.SortOrder) []dataset.Record {
	out := make([]dataset.Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		c := field.Compare(out[i], out[j])
		if order == dataset.OrderDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Paginate slices out 1-based page number page of size pageSize, clamped to
// the available records. It returns the page, the pre-pagination total, and
// the page count (minimum 1, so an empty result still has one page). An
// out-of-range page yields an empty slice, not an error.
func Paginate(records []dataset.Record, page, pageSize int) ([]dataset.Record, int, int) {
	total := len(records)
	if pageSize < 1 {
		return []dataset.Record{}, total, 1
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if page < 1 || start >= total {
		return []dataset.Record{}, total, totalPages
	}

	end := start + pageSize
	if end > total {
		end = total
	}
	return records[start:end], total, totalPages
}

// SelectByUserIDs keeps only records whose user_id is in ids, preserving
// input order. An empty ids list keeps everything, matching the export
// contract where no selection means "export all".
func SelectByUserIDs(records []dataset.Record, ids []string) []dataset.Record {
	if len(ids) == 0 {
		return records
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]dataset.Record, 0, len(ids))
	for _, rec := range records {
		if _, ok := wanted[rec.UserID]; ok {
			out = append(out, rec)
		}
	}
	return out
}
