package analysis

import (
	"math"
	"sort"

	"datalens/domain/dataset"

	"gonum.org/v1/gonum/stat"
)

// Correlation is the Pearson coefficient for one unordered column pair
type Correlation struct {
	ColumnX string  `json:"column_x"`
	ColumnY string  `json:"column_y"`
	R       float64 `json:"r"`
	N       int     `json:"n"`
}

// Correlations computes Pearson r for every unordered pair of numeric
// columns. Extraction is pairwise-complete: a row is used for a pair when
// both cells are finite, regardless of other columns. Degenerate pairs
// (fewer than two usable points, or zero variance on either side) report
// r = 0 rather than NaN.
func Correlations(rows []dataset.Row, numericColumns []string) []Correlation {
	var out []Correlation
	for i := 0; i < len(numericColumns); i++ {
		for j := i + 1; j < len(numericColumns); j++ {
			xs, ys := pairwiseComplete(rows, numericColumns[i], numericColumns[j])
			r := 0.0
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
				if math.IsNaN(r) || math.IsInf(r, 0) {
					r = 0
				}
			}
			out = append(out, Correlation{
				ColumnX: numericColumns[i],
				ColumnY: numericColumns[j],
				R:       r,
				N:       len(xs),
			})
		}
	}
	return out
}

// StrongCorrelations filters to |r| >= threshold, sorted by descending |r|
// (ties broken by column names for reproducibility), capped at
// MaxReportedCorrelations. A non-positive or >1 threshold falls back to
// StrongCorrelation.
func StrongCorrelations(all []Correlation, threshold float64) []Correlation {
	if threshold <= 0 || threshold > 1 {
		threshold = StrongCorrelation
	}
	var strong []Correlation
	for _, c := range all {
		if math.Abs(c.R) >= threshold {
			strong = append(strong, c)
		}
	}
	sort.Slice(strong, func(i, j int) bool {
		ai, aj := math.Abs(strong[i].R), math.Abs(strong[j].R)
		if ai != aj {
			return ai > aj
		}
		if strong[i].ColumnX != strong[j].ColumnX {
			return strong[i].ColumnX < strong[j].ColumnX
		}
		return strong[i].ColumnY < strong[j].ColumnY
	})
	if len(strong) > MaxReportedCorrelations {
		strong = strong[:MaxReportedCorrelations]
	}
	return strong
}

func pairwiseComplete(rows []dataset.Row, colX, colY string) (xs, ys []float64) {
	for _, row := range rows {
		x, okX := dataset.AsFloat(row[colX])
		if !okX || dataset.IsMissing(row[colX]) {
			continue
		}
		y, okY := dataset.AsFloat(row[colY])
		if !okY || dataset.IsMissing(row[colY]) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
