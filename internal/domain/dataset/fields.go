package dataset

import (
	"fmt"
	"strings"
)

// SortField is the closed enumeration of sortable/exportable record fields.
// Adding a field means extending the comparator and accessor tables below,
// which keeps field handling a compile-time-checked change.
type SortField string

const (
	FieldUserID    SortField = "user_id"
	FieldPage      SortField = "page"
	FieldTimestamp SortField = "timestamp"
	FieldDevice    SortField = "device"
	FieldStatus    SortField = "status"
)

// ExportFields is the fixed column order for tabular exports.
var ExportFields = []SortField{FieldUserID, FieldPage, FieldTimestamp, FieldDevice, FieldStatus}

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// timestampLayout matches the instant format the dashboard renders and
// exports (millisecond precision, UTC).
const timestampLayout = "2006-01-02T15:04:05.000Z"

var comparators = map[SortField]func(a, b Record) int{
	FieldUserID:    func(a, b Record) int { return strings.Compare(a.UserID, b.UserID) },
	FieldPage:      func(a, b Record) int { return strings.Compare(a.Page, b.Page) },
	FieldTimestamp: func(a, b Record) int { return a.Timestamp.Compare(b.Timestamp) },
	FieldDevice:    func(a, b Record) int { return strings.Compare(string(a.Device), string(b.Device)) },
	FieldStatus:    func(a, b Record) int { return strings.Compare(string(a.Status), string(b.Status)) },
}

var accessors = map[SortField]func(r Record) string{
	FieldUserID:    func(r Record) string { return r.UserID },
	FieldPage:      func(r Record) string { return r.Page },
	FieldTimestamp: func(r Record) string { return r.Timestamp.UTC().Format(timestampLayout) },
	FieldDevice:    func(r Record) string { return string(r.Device) },
	FieldStatus:    func(r Record) string { return string(r.Status) },
}

// Compare orders two records by this field. Timestamps compare as instants,
// everything else by natural string order.
func (f SortField) Compare(a, b Record) int {
	return comparators[f](a, b)
}

// Value renders the field of r as its display/export string.
func (f SortField) Value(r Record) string {
	return accessors[f](r)
}

// ParseSortField validates a client-supplied field name.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if _, ok := comparators[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
	return f, nil
}

// ParseSortOrder validates a client-supplied sort direction.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}
