package dataset

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Value is a single cell: a number, string, bool, time.Time, or nil when missing.
type Value = any

// Row maps a column name to one scalar value.
type Row map[string]Value

// ColumnType classifies a column for downstream analysis
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeDate        ColumnType = "date"
	TypeText        ColumnType = "text"
)

// NumericStats holds descriptive statistics for a numeric column.
// Present only when the column is numeric and has at least one parseable value.
type NumericStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
}

// ColumnDescriptor describes one column of an analyzed dataset
type ColumnDescriptor struct {
	Name         string        `json:"name"`
	Type         ColumnType    `json:"type"`
	MissingCount int           `json:"missing_count"`
	UniqueCount  int           `json:"unique_count"`
	Stats        *NumericStats `json:"stats,omitempty"`
}

// DataSummary aggregates dataset-level counts
type DataSummary struct {
	TotalRows     int `json:"total_rows"`
	TotalColumns  int `json:"total_columns"`
	MissingValues int `json:"missing_values"`
	Duplicates    int `json:"duplicates"`
}

// Normalize converts freshly-decoded rows into the canonical internal form.
// This is the single shape-handling boundary: column names are trimmed,
// whitespace-only strings and NaN/Inf floats become nil, and every other
// scalar passes through untouched. The analysis engine never branches on
// input shape after this point.
func Normalize(raw []map[string]any) []Row {
	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		row := make(Row, len(r))
		for name, v := range r {
			row[strings.TrimSpace(name)] = normalizeValue(v)
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeValue(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

// ColumnNames returns the union of column names across all rows. Names are
// grouped by the row that introduced them, sorted within each group (Go map
// iteration is randomized), so output is stable for a given upload.
func ColumnNames(rows []Row) []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		var batch []string
		for name := range row {
			if !seen[name] {
				seen[name] = true
				batch = append(batch, name)
			}
		}
		sort.Strings(batch)
		names = append(names, batch...)
	}
	return names
}

// IsMissing reports whether a cell counts as missing: nil, empty or
// whitespace-only string, or a non-finite float.
func IsMissing(v Value) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case float64:
		return math.IsNaN(t) || math.IsInf(t, 0)
	case float32:
		f := float64(t)
		return math.IsNaN(f) || math.IsInf(f, 0)
	default:
		return false
	}
}

// AsFloat coerces a cell to a finite float64 when possible
func AsFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case float32:
		return AsFloat(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return AsFloat(f)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsString renders a cell for cardinality counting and categorical grouping
func AsString(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// dateLayouts are the formats a string cell may use to qualify as a date
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// AsDate coerces a cell to a time.Time when it parses as one
func AsDate(v Value) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
