package analysis

import (
	"datalens/domain/dataset"
)

// InferColumnType classifies a column from its non-missing values.
// Rules apply in a fixed tie-break order, first match wins:
// numeric -> categorical -> date -> text. A column with zero non-missing
// values classifies as text.
func InferColumnType(rows []dataset.Row, column string) dataset.ColumnType {
	var nonMissing int
	var numeric int
	distinct := make(map[string]struct{})
	anyDate := false

	for _, row := range rows {
		v, ok := row[column]
		if !ok || dataset.IsMissing(v) {
			continue
		}
		nonMissing++
		if _, ok := dataset.AsFloat(v); ok {
			numeric++
		}
		distinct[dataset.AsString(v)] = struct{}{}
		if !anyDate {
			if _, ok := dataset.AsDate(v); ok {
				anyDate = true
			}
		}
	}

	if nonMissing == 0 {
		return dataset.TypeText
	}
	if float64(numeric)/float64(nonMissing) >= NumericRatio {
		return dataset.TypeNumeric
	}
	if float64(len(distinct)) < CategoricalCardinalityRatio*float64(nonMissing) {
		return dataset.TypeCategorical
	}
	if anyDate {
		return dataset.TypeDate
	}
	return dataset.TypeText
}
