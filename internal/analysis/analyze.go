package analysis

import (
	"log"

	"datalens/domain/dataset"
	"datalens/domain/insight"
)

// Result is the complete output of one analysis pass. It is immutable and
// recomputed wholesale whenever the dataset changes; callers hold no other
// shared state.
type Result struct {
	Columns  []dataset.ColumnDescriptor `json:"columns"`
	Summary  dataset.DataSummary        `json:"summary"`
	Insights []insight.Insight          `json:"insights"`
}

// Options tunes the detectors for one pass
type Options struct {
	ZScoreThreshold      float64
	CorrelationThreshold float64
}

// DefaultOptions returns the engine's standard thresholds
func DefaultOptions() Options {
	return Options{
		ZScoreThreshold:      DefaultZScoreThreshold,
		CorrelationThreshold: StrongCorrelation,
	}
}

// columnProfile pairs a descriptor with the column's extracted numeric
// series so downstream detectors do not re-filter rows.
type columnProfile struct {
	desc   dataset.ColumnDescriptor
	values []float64
	rowIdx []int
}

// Analyze runs the full pipeline over normalized rows: type inference,
// descriptive statistics, correlation, anomaly and trend detection, the
// quality audit, and insight synthesis. It never fails for structurally
// valid rows; degenerate inputs degrade to designated insights.
func Analyze(rows []dataset.Row) *Result {
	return AnalyzeWithOptions(rows, DefaultOptions())
}

// AnalyzeWithOptions is Analyze with tunable thresholds
func AnalyzeWithOptions(rows []dataset.Row, opts Options) *Result {
	if opts.ZScoreThreshold <= 0 {
		opts.ZScoreThreshold = DefaultZScoreThreshold
	}
	if opts.CorrelationThreshold <= 0 || opts.CorrelationThreshold > 1 {
		opts.CorrelationThreshold = StrongCorrelation
	}

	if len(rows) == 0 {
		return &Result{
			Columns: []dataset.ColumnDescriptor{},
			Insights: []insight.Insight{
				insight.New(insight.TypeQuality, "No data",
					"The dataset is empty. Upload a file with at least one row to begin analysis.",
					1.0, insight.ImportanceHigh, nil),
			},
		}
	}

	names := dataset.ColumnNames(rows)
	profiles := make([]columnProfile, 0, len(names))
	totalMissing := 0

	for _, name := range names {
		desc := dataset.ColumnDescriptor{
			Name:         name,
			Type:         InferColumnType(rows, name),
			MissingCount: CountMissing(rows, name),
			UniqueCount:  CountUnique(rows, name),
		}
		totalMissing += desc.MissingCount

		p := columnProfile{desc: desc}
		if desc.Type == dataset.TypeNumeric {
			p.values, p.rowIdx = NumericSeries(rows, name)
			p.desc.Stats = Describe(p.values)
		}
		profiles = append(profiles, p)
	}

	summary := dataset.DataSummary{
		TotalRows:     len(rows),
		TotalColumns:  len(names),
		MissingValues: totalMissing,
		Duplicates:    DuplicateRows(rows),
	}

	insights := synthesize(rows, profiles, summary, opts)

	log.Printf("[Analysis] Analyzed %d rows x %d columns: %d insights, %d missing cells, %d duplicate rows",
		summary.TotalRows, summary.TotalColumns, len(insights), summary.MissingValues, summary.Duplicates)

	columns := make([]dataset.ColumnDescriptor, len(profiles))
	for i, p := range profiles {
		columns[i] = p.desc
	}

	return &Result{
		Columns:  columns,
		Summary:  summary,
		Insights: insights,
	}
}
