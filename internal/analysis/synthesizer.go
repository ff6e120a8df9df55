package analysis

import (
	"fmt"
	"math"
	"strings"

	"datalens/domain/dataset"
	"datalens/domain/insight"
)

// synthesize composes detector outputs into the ordered insight list. The
// nine steps run in a fixed sequence and the final list order equals
// emission order; any re-sorting belongs to the presentation layer.
func synthesize(rows []dataset.Row, profiles []columnProfile, summary dataset.DataSummary, opts Options) []insight.Insight {
	var out []insight.Insight

	// 1. Dataset overview
	out = append(out, overviewInsight(profiles, summary))

	// 2. Missingness
	out = append(out, missingnessInsights(profiles, summary.TotalRows)...)

	// 3. High cardinality
	if hc := highCardinalityInsight(profiles, summary.TotalRows); hc != nil {
		out = append(out, *hc)
	}

	// 4. Per numeric column: outliers or plain summary
	numericNames := make([]string, 0, len(profiles))
	categoricalNames := make([]string, 0, len(profiles))
	for _, p := range profiles {
		switch p.desc.Type {
		case dataset.TypeNumeric:
			numericNames = append(numericNames, p.desc.Name)
			out = append(out, numericColumnInsight(p, opts.ZScoreThreshold))
		case dataset.TypeCategorical:
			categoricalNames = append(categoricalNames, p.desc.Name)
		}
	}

	// 5. Correlations
	out = append(out, correlationInsights(rows, numericNames, opts.CorrelationThreshold)...)

	// 6. Trends
	for _, p := range profiles {
		if p.desc.Type != dataset.TypeNumeric {
			continue
		}
		if ti := trendInsight(p); ti != nil {
			out = append(out, *ti)
		}
	}

	// 7. Generic recommendation when both column kinds exist
	if len(numericNames) > 0 && len(categoricalNames) > 0 {
		out = append(out, insight.New(insight.TypeRecommendation,
			"Compare measures across categories",
			fmt.Sprintf("The dataset has both numeric and categorical columns; grouping %s by %s can surface segment differences.",
				numericNames[0], categoricalNames[0]),
			0.7, insight.ImportanceMedium, map[string]any{
				"numeric_columns":     numericNames,
				"categorical_columns": categoricalNames,
			}))
	}

	// 8. Segmentation per dominant categorical column
	for _, name := range categoricalNames {
		if si := segmentationInsight(rows, name); si != nil {
			out = append(out, *si)
		}
	}

	// 9. Catch-all next actions
	out = append(out, insight.New(insight.TypeRecommendation, "Next actions",
		"Review any flagged quality issues first, then chart the highlighted columns; use chat to dig into a specific insight.",
		0.6, insight.ImportanceLow, nil))

	return out
}

func overviewInsight(profiles []columnProfile, summary dataset.DataSummary) insight.Insight {
	counts := map[dataset.ColumnType]int{}
	for _, p := range profiles {
		counts[p.desc.Type]++
	}
	return insight.New(insight.TypeOther, "Dataset overview",
		fmt.Sprintf("%d rows across %d columns: %d numeric, %d categorical, %d date, %d text.",
			summary.TotalRows, summary.TotalColumns,
			counts[dataset.TypeNumeric], counts[dataset.TypeCategorical],
			counts[dataset.TypeDate], counts[dataset.TypeText]),
		1.0, insight.ImportanceMedium, map[string]any{
			"total_rows":          summary.TotalRows,
			"total_columns":       summary.TotalColumns,
			"numeric_columns":     counts[dataset.TypeNumeric],
			"categorical_columns": counts[dataset.TypeCategorical],
			"date_columns":        counts[dataset.TypeDate],
			"text_columns":        counts[dataset.TypeText],
		})
}

func missingnessInsights(profiles []columnProfile, totalRows int) []insight.Insight {
	type colPct struct {
		name string
		pct  float64
	}
	var high, medium []colPct
	for _, p := range profiles {
		pct := MissingPct(p.desc.MissingCount, totalRows)
		switch {
		case pct >= HighMissingPct:
			high = append(high, colPct{p.desc.Name, pct})
		case pct > 0:
			medium = append(medium, colPct{p.desc.Name, pct})
		}
	}

	describe := func(cols []colPct) (string, map[string]any) {
		parts := make([]string, len(cols))
		pcts := make(map[string]any, len(cols))
		for i, c := range cols {
			parts[i] = fmt.Sprintf("%s (%.1f%%)", c.name, c.pct)
			pcts[c.name] = c.pct
		}
		return strings.Join(parts, ", "), map[string]any{"columns": pcts}
	}

	var out []insight.Insight
	if len(high) > 0 {
		desc, meta := describe(high)
		out = append(out, insight.New(insight.TypeQuality, "High missing values",
			fmt.Sprintf("Columns with at least %.0f%% missing values: %s. Consider dropping or imputing them before further analysis.", HighMissingPct, desc),
			0.9, insight.ImportanceHigh, meta))
	}
	if len(medium) > 0 {
		desc, meta := describe(medium)
		out = append(out, insight.New(insight.TypeQuality, "Some missing values",
			fmt.Sprintf("Columns with a few missing values: %s.", desc),
			0.8, insight.ImportanceMedium, meta))
	}
	return out
}

func highCardinalityInsight(profiles []columnProfile, totalRows int) *insight.Insight {
	columns := make([]dataset.ColumnDescriptor, len(profiles))
	for i, p := range profiles {
		columns[i] = p.desc
	}
	flagged := HighCardinalityColumns(columns, totalRows)
	if len(flagged) == 0 {
		return nil
	}
	fence := math.Max(CardinalityFloor, math.Sqrt(float64(totalRows)))
	ins := insight.New(insight.TypeQuality, "High-cardinality columns",
		fmt.Sprintf("Categorical columns with unusually many distinct values (more than %.0f): %s. They may be identifiers rather than categories.",
			fence, strings.Join(flagged, ", ")),
		0.7, insight.ImportanceMedium, map[string]any{"columns": flagged, "fence": fence})
	return &ins
}

func numericColumnInsight(p columnProfile, zThreshold float64) insight.Insight {
	name := p.desc.Name

	if p.desc.Stats == nil {
		return insight.New(insight.TypeQuality,
			fmt.Sprintf("No numeric values in %s", name),
			fmt.Sprintf("Column %s has no parseable numeric values.", name),
			0.9, insight.ImportanceMedium, map[string]any{"column": name})
	}

	outliers := ZScoreOutliers(p.values, zThreshold)
	n := len(p.values)
	if NotableOutlierCount(len(outliers), n) {
		share := OutlierShare(len(outliers), n)
		importance := insight.ImportanceMedium
		if share > AnomalyHighShare {
			importance = insight.ImportanceHigh
		}
		outlierRows := make([]int, len(outliers))
		for i, pos := range outliers {
			outlierRows[i] = p.rowIdx[pos]
		}
		return insight.New(insight.TypeAnomaly,
			fmt.Sprintf("Outliers in %s", name),
			fmt.Sprintf("%d of %d values (%.1f%%) in %s sit more than %.1f deviations from the center.",
				len(outliers), n, share*100, name, zThreshold),
			0.85, importance, map[string]any{
				"column":       name,
				"outlier_rows": outlierRows,
				"count":        len(outliers),
				"share":        share,
				"threshold":    zThreshold,
			})
	}

	s := p.desc.Stats
	skew := "symmetric"
	if s.Mean > s.Median {
		skew = "right-skewed"
	} else if s.Mean < s.Median {
		skew = "left-skewed"
	}
	return insight.New(insight.TypeOther,
		fmt.Sprintf("Summary of %s", name),
		fmt.Sprintf("%s ranges %.4g to %.4g with mean %.4g, median %.4g, std %.4g; the distribution looks %s.",
			name, s.Min, s.Max, s.Mean, s.Median, s.StdDev, skew),
		0.95, insight.ImportanceLow, map[string]any{
			"column": name,
			"min":    s.Min,
			"max":    s.Max,
			"mean":   s.Mean,
			"median": s.Median,
			"std":    s.StdDev,
			"skew":   skew,
		})
}

func correlationInsights(rows []dataset.Row, numericNames []string, threshold float64) []insight.Insight {
	if len(numericNames) < 2 {
		return nil
	}

	strong := StrongCorrelations(Correlations(rows, numericNames), threshold)
	if len(strong) == 0 {
		return []insight.Insight{insight.New(insight.TypeCorrelation,
			"No strong correlations",
			fmt.Sprintf("No numeric column pair reached |r| >= %.2g.", threshold),
			0.5, insight.ImportanceLow, nil)}
	}

	out := make([]insight.Insight, 0, len(strong))
	for _, c := range strong {
		direction := "positive"
		if c.R < 0 {
			direction = "negative"
		}
		importance := insight.ImportanceMedium
		if math.Abs(c.R) >= HighCorrelation {
			importance = insight.ImportanceHigh
		}
		out = append(out, insight.New(insight.TypeCorrelation,
			fmt.Sprintf("Strong correlation: %s and %s", c.ColumnX, c.ColumnY),
			fmt.Sprintf("%s and %s show a %s relationship (Pearson r = %.2f over %d paired rows).",
				c.ColumnX, c.ColumnY, direction, c.R, c.N),
			math.Abs(c.R), importance, map[string]any{
				"column_x": c.ColumnX,
				"column_y": c.ColumnY,
				"r":        c.R,
				"n":        c.N,
			}))
	}
	return out
}

func trendInsight(p columnProfile) *insight.Insight {
	t, ok := DetectTrend(p.values)
	if !ok || math.Abs(t.PercentChange) < TrendEmitPct {
		return nil
	}

	direction := "upward"
	if t.PercentChange < 0 {
		direction = "downward"
	}
	importance := insight.ImportanceMedium
	if math.Abs(t.PercentChange) > TrendHighPct {
		importance = insight.ImportanceHigh
	}
	ins := insight.New(insight.TypeTrend,
		fmt.Sprintf("%s trending %s", p.desc.Name, direction),
		fmt.Sprintf("%s changed %.1f%% from first to last value over row order (slope %.4g per row).",
			p.desc.Name, t.PercentChange, t.Slope),
		0.8, importance, map[string]any{
			"column":         p.desc.Name,
			"slope":          t.Slope,
			"percent_change": t.PercentChange,
			"series":         t.Series,
		})
	return &ins
}

func segmentationInsight(rows []dataset.Row, column string) *insight.Insight {
	top, second, topCount, secondCount := TopCategories(rows, column)
	if secondCount == 0 || float64(topCount) <= SegmentationDominanceRatio*float64(secondCount) {
		return nil
	}
	ins := insight.New(insight.TypeSegmentation,
		fmt.Sprintf("Dominant segment in %s", column),
		fmt.Sprintf("'%s' appears %d times in %s, more than double the runner-up '%s' (%d).",
			top, topCount, column, second, secondCount),
		0.75, insight.ImportanceMedium, map[string]any{
			"column":       column,
			"top":          top,
			"top_count":    topCount,
			"second":       second,
			"second_count": secondCount,
		})
	return &ins
}
