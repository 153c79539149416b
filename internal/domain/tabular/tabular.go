// Package tabular parses the comma-delimited text files exported for the
// league site (finishes, draft results, draft order).
//
// The format has a header row and no quoting or escape handling: a field
// containing a comma misaligns the rest of its row. The exporters never emit
// quoted fields, so this is an accepted limitation of the format rather than
// something to repair here.
package tabular

import (
	"strings"
)

// Row is one data line keyed by the header names.
type Row map[string]string

// Table is a parsed comma-delimited document.
type Table struct {
	Headers []string
	Rows    []Row
}

// Parse splits text on newlines, takes the first line as the ordered list of
// column names, and zips every following non-empty line positionally against
// the headers. Missing trailing fields default to the empty string; extra
// fields beyond the header count are dropped. Empty input yields an empty
// table.
func Parse(text string) Table {
	if strings.TrimSpace(text) == "" {
		return Table{}
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	rawHeaders := strings.Split(lines[0], ",")
	headers := make([]string, 0, len(rawHeaders))
	for _, h := range rawHeaders {
		headers = append(headers, strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = strings.TrimSpace(values[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

// Get returns the value for the named column, or the empty string when the
// column is unknown.
func (r Row) Get(column string) string {
	return r[column]
}
