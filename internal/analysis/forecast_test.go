package analysis

import (
	"math"
	"testing"

	"datalens/internal/testkit"
)

func TestForecast_EmptyAndNoSteps(t *testing.T) {
	if out := Forecast(nil, 12); out != nil {
		t.Errorf("forecast of empty series = %v, want nil", out)
	}
	if out := Forecast([]float64{1, 2, 3}, 0); out != nil {
		t.Errorf("forecast with 0 steps = %v, want nil", out)
	}
}

func TestForecast_FlatSeriesStaysFlat(t *testing.T) {
	out := Forecast(testkit.ConstantColumn(8, 5), DefaultForecastSteps)
	if len(out) != DefaultForecastSteps {
		t.Fatalf("forecast length = %d, want %d", len(out), DefaultForecastSteps)
	}
	for i, v := range out {
		if v != 5 {
			t.Errorf("step %d = %v, want 5", i, v)
		}
	}
}

func TestForecast_LinearSeriesExtendsDrift(t *testing.T) {
	// y = 2x over x = 0..9: window of 2 gives level 17, OLS slope 2.
	values := make([]float64, 10)
	for i := range values {
		values[i] = 2 * float64(i)
	}
	out := Forecast(values, 3)
	want := []float64{19, 21, 23}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("step %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestForecast_SingleValue(t *testing.T) {
	out := Forecast([]float64{7}, 4)
	for i, v := range out {
		if v != 7 {
			t.Errorf("step %d = %v, want flat 7", i, v)
		}
	}
}

func TestForecastWindow_Bounds(t *testing.T) {
	cases := map[int]int{2: 2, 7: 2, 8: 2, 12: 3, 20: 5, 100: 5}
	for n, want := range cases {
		if got := forecastWindow(n); got != want {
			t.Errorf("forecastWindow(%d) = %d, want %d", n, got, want)
		}
	}
}
