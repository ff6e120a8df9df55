package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
)

// madConsistency rescales the median absolute deviation so it estimates the
// standard deviation under normality (Iglewicz–Hoaglin).
const madConsistency = 1.4826

// ZScoreOutliers returns the positions (into the filtered array) of values
// whose z-score magnitude exceeds threshold.
//
// The score uses a robust center and scale: median and MAD. A plain
// mean/std z-score cannot exceed sqrt(n-1) no matter how extreme a single
// value is, which makes it blind to lone spikes in small columns; the
// robust form keeps the same reading for well-behaved data while actually
// flagging those spikes. When MAD degenerates to 0 (over half the column
// identical) the sample standard deviation is the fallback scale, and a
// zero scale means a constant column: zero anomalies.
func ZScoreOutliers(values []float64, threshold float64) []int {
	if len(values) < 2 {
		return nil
	}

	median, _ := stats.Median(values)
	mad, _ := stats.MedianAbsoluteDeviation(values)

	scale := mad * madConsistency
	center := median
	if scale == 0 {
		std, _ := stats.StandardDeviationSample(values)
		mean, _ := stats.Mean(values)
		scale = std
		center = mean
	}
	if scale == 0 || math.IsNaN(scale) {
		return nil
	}

	var outliers []int
	for i, v := range values {
		if math.Abs((v-center)/scale) > threshold {
			outliers = append(outliers, i)
		}
	}
	return outliers
}

// NotableOutlierCount reports whether the outlier count clears the noise
// floor of max(1, floor(AnomalyNoiseFloorShare*n)).
func NotableOutlierCount(outliers, n int) bool {
	floor := int(math.Floor(AnomalyNoiseFloorShare * float64(n)))
	if floor < 1 {
		floor = 1
	}
	return outliers > floor
}

// OutlierShare is the fraction of the column flagged as outliers; the
// synthesizer escalates importance to high above AnomalyHighShare.
func OutlierShare(outliers, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(outliers) / float64(n)
}
