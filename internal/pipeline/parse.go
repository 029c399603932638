package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnparseableFile = errors.New("unparseable file content")

// ParseTable parses a spreadsheet or CSV upload into rows of named columns.
// For workbooks, only the first sheet is read; use ParseWorkbook when sheet
// names matter.
func ParseTable(filename string, data []byte) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		sheets, err := ParseWorkbook(data)
		if err != nil {
			return nil, err
		}
		for _, s := range sheets {
			return s.Rows, nil
		}
		return []Row{}, nil
	case ".csv", ".txt", "":
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrUnparseableFile, filepath.Ext(filename))
	}
}

type Sheet struct {
	Name string
	Rows []Row
}

// ParseWorkbook reads every sheet of an xlsx workbook, first row as headers.
func ParseWorkbook(data []byte) ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
	}
	defer func() { _ = f.Close() }()

	out := make([]Sheet, 0)
	for _, name := range f.GetSheetList() {
		records, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %s: %v", ErrUnparseableFile, name, err)
		}
		out = append(out, Sheet{Name: name, Rows: rowsFromTable(records)})
	}
	return out, nil
}

// FindSheet does a case-insensitive lookup; a missing sheet is normal
// control flow for the entity import, not an error.
func FindSheet(sheets []Sheet, name string) ([]Row, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range sheets {
		if strings.ToLower(strings.TrimSpace(s.Name)) == want {
			return s.Rows, true
		}
	}
	return nil, false
}

func parseCSV(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
	}
	return rowsFromTable(records), nil
}

// FlexibleDocument is the result of sniffing a free-form upload. Either Rows
// is populated, or the payload was a single JSON object holding several
// nested arrays and Choices lists them so the operator can pick one.
type FlexibleDocument struct {
	Rows    []Row
	Choices []ArrayChoice
}

type ArrayChoice struct {
	Key  string `json:"key"`
	Size int    `json:"size"`
}

// ParseFlexible normalizes heterogeneous input (JSON array, JSON object with
// nested arrays, JSON lines, CSV, TSV) into rows, with a last-resort
// whole-file-as-one-row fallback for plain text.
func ParseFlexible(data []byte) (FlexibleDocument, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FlexibleDocument{}, fmt.Errorf("%w: empty file", ErrUnparseableFile)
	}

	if trimmed[0] == '[' {
		var arr []map[string]any
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return FlexibleDocument{}, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
		}
		return FlexibleDocument{Rows: objectsToRows(arr)}, nil
	}

	if trimmed[0] == '{' {
		if doc, ok := parseNestedObject(trimmed); ok {
			return doc, nil
		}
		// Possibly JSON lines starting with an object per line.
		if rows, ok := parseJSONLines(trimmed); ok {
			return FlexibleDocument{Rows: rows}, nil
		}
		return FlexibleDocument{}, fmt.Errorf("%w: no usable array in JSON object", ErrUnparseableFile)
	}

	if rows, ok := parseJSONLines(trimmed); ok {
		return FlexibleDocument{Rows: rows}, nil
	}

	firstLine, _, _ := bytes.Cut(trimmed, []byte("\n"))
	if bytes.Contains(firstLine, []byte("\t")) {
		if rows, ok := parseDelimited(trimmed, '\t'); ok {
			return FlexibleDocument{Rows: rows}, nil
		}
	}
	if bytes.Contains(firstLine, []byte(",")) {
		if rows, ok := parseDelimited(trimmed, ','); ok {
			return FlexibleDocument{Rows: rows}, nil
		}
	}

	// Last resort: the whole file as a single text row.
	return FlexibleDocument{Rows: []Row{{"content": string(trimmed)}}}, nil
}

// SelectArray re-parses a nested JSON object and extracts the chosen array.
func SelectArray(data []byte, key string) ([]Row, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
	}
	raw, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: no array %q in document", ErrUnparseableFile, key)
	}
	var arr []map[string]any
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("%w: field %q is not an array of objects", ErrUnparseableFile, key)
	}
	return objectsToRows(arr), nil
}

func parseNestedObject(data []byte) (FlexibleDocument, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return FlexibleDocument{}, false
	}

	choices := make([]ArrayChoice, 0)
	var only []Row
	for key, raw := range obj {
		var arr []map[string]any
		if err := json.Unmarshal(raw, &arr); err != nil || len(arr) == 0 {
			continue
		}
		choices = append(choices, ArrayChoice{Key: key, Size: len(arr)})
		only = objectsToRows(arr)
	}

	switch len(choices) {
	case 0:
		return FlexibleDocument{}, false
	case 1:
		return FlexibleDocument{Rows: only}, true
	default:
		// Map iteration order is random; keep the choice list stable across
		// repeated previews of the same upload.
		sort.Slice(choices, func(i, j int) bool { return choices[i].Key < choices[j].Key })
		return FlexibleDocument{Choices: choices}, true
	}
}

func parseJSONLines(data []byte) ([]Row, bool) {
	lines := bytes.Split(data, []byte("\n"))
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			return nil, false
		}
		rows = append(rows, rowFromObject(obj))
	}
	return rows, len(rows) > 0
}

func parseDelimited(data []byte, sep rune) ([]Row, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return nil, false
	}
	return rowsFromTable(records), true
}

func objectsToRows(arr []map[string]any) []Row {
	rows := make([]Row, 0, len(arr))
	for _, obj := range arr {
		rows = append(rows, rowFromObject(obj))
	}
	return rows
}
