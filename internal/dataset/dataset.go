// Package dataset loads thesis corpora from local files: CSV and JSON
// tables with named columns, and plain line files with one text per line.
package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("dataset: missing column")

// Table is a loaded dataset: a header and string-valued rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads a dataset file, dispatching on extension: .csv or .json.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("dataset: unsupported file type %q (want .csv or .json)", filepath.Ext(path))
	}
}

// LoadCSV reads a CSV file with a header row. Rows with the wrong field
// count are kept as-is (short rows read as empty cells downstream) so one
// malformed row cannot abort a batch run.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	return &Table{Header: normalizeHeader(records[0]), Rows: records[1:]}, nil
}

// LoadJSON reads a JSON array of flat objects. Keys become the header in
// first-seen order; values are stringified.
func LoadJSON(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	// Collect the union of keys in first-seen order.
	var header []string
	seen := make(map[string]bool)
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}
	rows := make([][]string, len(objects))
	for i, obj := range objects {
		row := make([]string, len(header))
		for j, k := range header {
			if v, ok := obj[k]; ok {
				row[j] = stringify(v)
			}
		}
		rows[i] = row
	}

	return &Table{Header: normalizeHeader(header), Rows: rows}, nil
}

// ReadLines reads one text record per line, skipping blank lines and
// #-comments. With dedupe, repeated lines are kept once, first occurrence
// winning, so a corpus with duplicated posts is counted once per post.
func ReadLines(path string, dedupe bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if dedupe {
			if seen[line] {
				continue
			}
			seen[line] = true
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return lines, nil
}

// Column returns the values of the named column (header match is
// case-insensitive after trimming). Short rows contribute empty strings.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrMissingColumn, name, t.Header)
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, nil
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *Table) columnIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// normalizeHeader trims and lower-cases column names, the same cleanup
// the thesis notebooks applied before renaming columns.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// ParseNumber parses a numeric cell, accepting the decimal comma and
// stray spaces found in exported spreadsheets ("1 234,5" → 1234.5).
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("dataset: empty numeric cell")
	}
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	return strconv.ParseFloat(s, 64)
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}
