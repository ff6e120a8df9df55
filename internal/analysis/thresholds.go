package analysis

// Heuristic thresholds used across the engine. These are deliberate
// exploratory-tooling heuristics, not statistically optimal cutoffs;
// consumers depend on the exact values, so tune with care.
const (
	// NumericRatio is the share of non-missing values that must parse as
	// finite numbers for a column to classify as numeric.
	NumericRatio = 0.8

	// CategoricalCardinalityRatio bounds distinct values relative to
	// non-missing count for a column to classify as categorical.
	CategoricalCardinalityRatio = 0.1

	// DefaultZScoreThreshold flags a value as an outlier when its robust
	// z-score magnitude exceeds it.
	DefaultZScoreThreshold = 2.5

	// AnomalyNoiseFloorShare: an anomaly insight is emitted only when the
	// outlier count exceeds max(1, floor(share*n)).
	AnomalyNoiseFloorShare = 0.01

	// AnomalyHighShare escalates anomaly importance to high when outliers
	// exceed this share of the column.
	AnomalyHighShare = 0.05

	// StrongCorrelation is the |r| cutoff for a pair to count as strong.
	StrongCorrelation = 0.6

	// HighCorrelation escalates correlation importance to high.
	HighCorrelation = 0.8

	// MaxReportedCorrelations caps how many strong pairs are reported.
	MaxReportedCorrelations = 6

	// TrendMinPoints is the minimum usable points for trend detection.
	TrendMinPoints = 4

	// TrendEmitPct: a trend insight is emitted at |percentChange| >= this.
	TrendEmitPct = 5.0

	// TrendHighPct escalates trend importance to high at |percentChange| above it.
	TrendHighPct = 20.0

	// HighMissingPct is the missingness percentage at or above which a
	// column triggers the high-severity quality insight.
	HighMissingPct = 30.0

	// CardinalityFloor: a categorical column is high-cardinality when its
	// unique count exceeds max(CardinalityFloor, sqrt(totalRows)).
	CardinalityFloor = 50

	// SegmentationDominanceRatio: a segmentation insight fires when the top
	// category count is more than this multiple of the runner-up.
	SegmentationDominanceRatio = 2.0
)
