package analysis

import (
	"fmt"
	"testing"

	"datalens/domain/dataset"
)

func columnRows(column string, values []any) []dataset.Row {
	rows := make([]dataset.Row, len(values))
	for i, v := range values {
		rows[i] = dataset.Row{column: v}
	}
	return rows
}

func TestInferColumnType_NumericAtBoundary(t *testing.T) {
	// 4 of 5 non-missing values parse: exactly the 80% cutoff.
	rows := columnRows("v", []any{"1", "2", "3", "4", "x"})
	if got := InferColumnType(rows, "v"); got != dataset.TypeNumeric {
		t.Errorf("expected numeric at 80%% parse ratio, got %s", got)
	}
}

func TestInferColumnType_BelowNumericRatio(t *testing.T) {
	rows := columnRows("v", []any{"1", "2", "3", "alpha", "beta"})
	if got := InferColumnType(rows, "v"); got != dataset.TypeText {
		t.Errorf("expected text below numeric ratio with high cardinality, got %s", got)
	}
}

func TestInferColumnType_Categorical(t *testing.T) {
	values := make([]any, 30)
	for i := range values {
		if i%2 == 0 {
			values[i] = "red"
		} else {
			values[i] = "blue"
		}
	}
	rows := columnRows("color", values)
	if got := InferColumnType(rows, "color"); got != dataset.TypeCategorical {
		t.Errorf("expected categorical for 2 distinct of 30, got %s", got)
	}
}

func TestInferColumnType_Date(t *testing.T) {
	values := make([]any, 20)
	for i := range values {
		values[i] = fmt.Sprintf("2024-01-%02d", i+1)
	}
	rows := columnRows("day", values)
	if got := InferColumnType(rows, "day"); got != dataset.TypeDate {
		t.Errorf("expected date, got %s", got)
	}
}

func TestInferColumnType_NumericBeatsDate(t *testing.T) {
	// Tie-break order: a fully numeric column stays numeric even when a
	// value could also parse as a date elsewhere.
	rows := columnRows("v", []any{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"})
	if got := InferColumnType(rows, "v"); got != dataset.TypeNumeric {
		t.Errorf("expected numeric, got %s", got)
	}
}

func TestInferColumnType_EmptyColumn(t *testing.T) {
	rows := columnRows("v", []any{nil, "", "  "})
	if got := InferColumnType(rows, "v"); got != dataset.TypeText {
		t.Errorf("expected text for all-missing column, got %s", got)
	}
}

func TestInferColumnType_MissingValuesIgnored(t *testing.T) {
	rows := columnRows("v", []any{"10", nil, "20", "", "30", "40", "50"})
	if got := InferColumnType(rows, "v"); got != dataset.TypeNumeric {
		t.Errorf("expected numeric ignoring missing cells, got %s", got)
	}
}
