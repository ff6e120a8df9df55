package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Trend describes the direction of a numeric column over row order.
// Row order reflects upload order, not a guaranteed time axis.
type Trend struct {
	Slope         float64   `json:"slope"`
	PercentChange float64   `json:"percent_change"`
	Series        []float64 `json:"series"`
}

// nearZero guards the percent-change denominator
const nearZero = 1e-9

// DetectTrend fits an ordinary least squares line over (position, value)
// pairs of the filtered series and computes first-vs-last percent change.
// Returns ok=false when fewer than TrendMinPoints usable values exist.
func DetectTrend(values []float64) (Trend, bool) {
	if len(values) < TrendMinPoints {
		return Trend{}, false
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	slope := olsSlope(xs, values)

	first, last := values[0], values[len(values)-1]
	percentChange := 0.0
	if math.Abs(first) > nearZero {
		percentChange = (last - first) / math.Abs(first) * 100
	}

	return Trend{
		Slope:         slope,
		PercentChange: percentChange,
		Series:        values,
	}, true
}

// olsSlope returns the least-squares slope. Positions 0..n-1 always have
// variance for n >= 2, but the degenerate-denominator guard stays: a zero
// denominator is substituted with 1 rather than producing Inf.
func olsSlope(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return n*sumXY - sumX*sumY
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0
	}
	return beta
}
