package analysis

// DefaultForecastSteps matches the fixed 12-step horizon of the original service
const DefaultForecastSteps = 12

// forecastWindow picks the trailing moving-average window: between 2 and 5
// points, roughly a quarter of the series.
func forecastWindow(n int) int {
	w := n / 4
	if w < 2 {
		w = 2
	}
	if w > 5 {
		w = 5
	}
	return w
}

// Forecast projects a numeric series forward. The level is a trailing
// moving average; the drift is the OLS slope over row order when enough
// points exist, otherwise the projection is flat. This is a naive
// exploratory projection, not a time-series model.
func Forecast(values []float64, steps int) []float64 {
	if len(values) == 0 || steps <= 0 {
		return nil
	}

	level := values[len(values)-1]
	if len(values) >= 2 {
		w := forecastWindow(len(values))
		sum := 0.0
		for _, v := range values[len(values)-w:] {
			sum += v
		}
		level = sum / float64(w)
	}

	drift := 0.0
	if t, ok := DetectTrend(values); ok {
		drift = t.Slope
	}

	out := make([]float64, steps)
	for i := range out {
		out[i] = level + drift*float64(i+1)
	}
	return out
}
