package services

import (
	"strings"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
)

// ExportService serializes record projections into delimited text. Input
// ordering is preserved exactly; callers pre-filter, select, and sort.
type ExportService struct {
	separator string
}

// NewExportService creates an exporter using separator between fields.
// An empty separator falls back to a comma.
func NewExportService(separator string) *ExportService {
	if separator == "" {
		separator = ","
	}
	return &ExportService{separator: separator}
}

// CSV renders records with one header line of field names followed by one
// line per record, fields in the given order. A value containing the
// separator is wrapped in double quotes; embedded quotes are not escaped.
// Lines are joined by a single newline with no trailing blank line.
func (s *ExportService) CSV(records []dataset.Record, fields []dataset.SortField) []byte {
	lines := make([]string, 0, len(records)+1)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = s.escape(string(f))
	}
	lines = append(lines, strings.Join(header, s.separator))

	for _, rec := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = s.escape(f.Value(rec))
		}
		lines = append(lines, strings.Join(row, s.separator))
	}

	return []byte(strings.Join(lines, "\n"))
}

func (s *ExportService) escape(value string) string {
	if strings.Contains(value, s.separator) {
		return `"` + value + `"`
	}
	return value
}
