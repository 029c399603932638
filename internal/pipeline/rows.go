package pipeline

import (
	"fmt"
	"strings"
)

// Row is the single normalized shape every import flow reduces its input to
// before any domain logic runs: one record of named string columns.
type Row map[string]string

// Get is a case- and whitespace-insensitive column lookup.
func (r Row) Get(column string) string {
	if v, ok := r[column]; ok {
		return strings.TrimSpace(v)
	}
	want := strings.ToLower(strings.TrimSpace(column))
	for k, v := range r {
		if strings.ToLower(strings.TrimSpace(k)) == want {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// rowsFromTable converts a header row plus data records into Rows. Records
// shorter than the header are padded with empty cells.
func rowsFromTable(records [][]string) []Row {
	if len(records) == 0 {
		return []Row{}
	}
	headers := records[0]
	out := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlankRecord(rec) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		out = append(out, row)
	}
	return out
}

func isBlankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// stringifyValue flattens a decoded JSON value into the Row string shape.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func rowFromObject(obj map[string]any) Row {
	row := make(Row, len(obj))
	for k, v := range obj {
		row[k] = stringifyValue(v)
	}
	return row
}
