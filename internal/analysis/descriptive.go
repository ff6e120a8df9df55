package analysis

import (
	"datalens/domain/dataset"

	"github.com/montanaflynn/stats"
)

// Describe computes descriptive statistics over an already-filtered finite
// numeric array. Returns nil for empty input (the synthesizer emits a
// quality insight instead). StdDev is the sample standard deviation and is
// 0 when fewer than two values exist.
func Describe(values []float64) *dataset.NumericStats {
	if len(values) == 0 {
		return nil
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	stdDev := 0.0
	if len(values) >= 2 {
		stdDev, _ = stats.StandardDeviationSample(values)
	}

	return &dataset.NumericStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
	}
}

// NumericSeries extracts the finite numeric values of a column together
// with the row index each value came from, preserving row order.
func NumericSeries(rows []dataset.Row, column string) (values []float64, rowIdx []int) {
	for i, row := range rows {
		v, ok := row[column]
		if !ok || dataset.IsMissing(v) {
			continue
		}
		f, ok := dataset.AsFloat(v)
		if !ok {
			continue
		}
		values = append(values, f)
		rowIdx = append(rowIdx, i)
	}
	return values, rowIdx
}
