package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"datalens/domain/dataset"
)

// MissingPct is a column's missingness as a percentage of total rows
func MissingPct(missing, totalRows int) float64 {
	if totalRows == 0 {
		return 0
	}
	return float64(missing) / float64(totalRows) * 100
}

// CountMissing tallies missing cells for one column. A column absent from
// a row counts as missing in that row.
func CountMissing(rows []dataset.Row, column string) int {
	missing := 0
	for _, row := range rows {
		v, ok := row[column]
		if !ok || dataset.IsMissing(v) {
			missing++
		}
	}
	return missing
}

// CountUnique tallies distinct non-missing values of one column by their
// canonical string rendering.
func CountUnique(rows []dataset.Row, column string) int {
	distinct := make(map[string]struct{})
	for _, row := range rows {
		v, ok := row[column]
		if !ok || dataset.IsMissing(v) {
			continue
		}
		distinct[dataset.AsString(v)] = struct{}{}
	}
	return len(distinct)
}

// DuplicateRows counts rows beyond the first occurrence of each distinct
// row. Rows compare by a canonical key-sorted JSON serialization, so field
// order never affects equality (decided policy, see DESIGN.md).
func DuplicateRows(rows []dataset.Row) int {
	seen := make(map[string]struct{}, len(rows))
	duplicates := 0
	for _, row := range rows {
		key := canonicalRowKey(row)
		if _, ok := seen[key]; ok {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
	}
	return duplicates
}

// canonicalRowKey serializes a row deterministically. encoding/json sorts
// map keys; values that cannot marshal (non-finite floats survive only if
// normalization was skipped) fall back to a fmt rendering.
func canonicalRowKey(row dataset.Row) string {
	b, err := json.Marshal(map[string]any(row))
	if err == nil {
		return string(b)
	}
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	key := ""
	for _, k := range keys {
		key += fmt.Sprintf("%s=%v;", k, row[k])
	}
	return key
}

// HighCardinalityColumns flags categorical columns whose unique-value
// count exceeds max(CardinalityFloor, sqrt(totalRows)).
func HighCardinalityColumns(columns []dataset.ColumnDescriptor, totalRows int) []string {
	fence := math.Max(CardinalityFloor, math.Sqrt(float64(totalRows)))
	var flagged []string
	for _, col := range columns {
		if col.Type == dataset.TypeCategorical && float64(col.UniqueCount) > fence {
			flagged = append(flagged, col.Name)
		}
	}
	return flagged
}

// TopCategories returns the two most frequent non-missing values of a
// column with their counts. Ties resolve lexicographically so output is
// deterministic.
func TopCategories(rows []dataset.Row, column string) (top, second string, topCount, secondCount int) {
	counts := make(map[string]int)
	for _, row := range rows {
		v, ok := row[column]
		if !ok || dataset.IsMissing(v) {
			continue
		}
		counts[dataset.AsString(v)]++
	}
	if len(counts) < 2 {
		return "", "", 0, 0
	}

	type kv struct {
		value string
		count int
	}
	ranked := make([]kv, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, kv{v, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].value < ranked[j].value
	})
	return ranked[0].value, ranked[1].value, ranked[0].count, ranked[1].count
}
