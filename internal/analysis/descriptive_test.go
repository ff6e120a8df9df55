package analysis

import (
	"math"
	"testing"

	"datalens/internal/testkit"
)

func TestDescribe_Basics(t *testing.T) {
	s := Describe([]float64{4, 1, 3, 2})
	if s == nil {
		t.Fatal("expected stats for non-empty input")
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("min/max = %v/%v, want 1/4", s.Min, s.Max)
	}
	if s.Mean != 2.5 {
		t.Errorf("mean = %v, want 2.5", s.Mean)
	}
	// Even length: average of the two middle elements.
	if s.Median != 2.5 {
		t.Errorf("median = %v, want 2.5", s.Median)
	}
}

func TestDescribe_OddMedian(t *testing.T) {
	s := Describe([]float64{9, 1, 5})
	if s.Median != 5 {
		t.Errorf("median = %v, want 5", s.Median)
	}
}

func TestDescribe_SampleStdDev(t *testing.T) {
	// Sample variance of {2,4,4,4,5,5,7,9} is 32/7.
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("std = %v, want %v", s.StdDev, want)
	}
}

func TestDescribe_ConstantArrayStdZero(t *testing.T) {
	s := Describe(testkit.ConstantColumn(10, 3.14))
	if s.StdDev != 0 {
		t.Errorf("std of constant array = %v, want exactly 0", s.StdDev)
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	s := Describe([]float64{42})
	if s.StdDev != 0 {
		t.Errorf("std of single value = %v, want 0", s.StdDev)
	}
	if s.Mean != 42 || s.Median != 42 || s.Min != 42 || s.Max != 42 {
		t.Errorf("single value stats wrong: %+v", s)
	}
}

func TestDescribe_EmptyInput(t *testing.T) {
	if s := Describe(nil); s != nil {
		t.Errorf("expected nil stats for empty input, got %+v", s)
	}
}

func TestDescribe_OrderingInvariants(t *testing.T) {
	for _, values := range [][]float64{
		{1, 2, 3, 4, 5},
		{-10, 0, 10},
		{2.5},
		{7, 7, 7, 8},
	} {
		s := Describe(values)
		if s.Min > s.Median || s.Median > s.Max {
			t.Errorf("min <= median <= max violated: %+v", s)
		}
		if s.Min > s.Mean || s.Mean > s.Max {
			t.Errorf("min <= mean <= max violated: %+v", s)
		}
	}
}

func TestNumericSeries_TracksRowIndices(t *testing.T) {
	rows := columnRows("v", []any{"5", "oops", nil, "7.5", "8"})
	values, rowIdx := NumericSeries(rows, "v")
	if len(values) != 3 {
		t.Fatalf("expected 3 usable values, got %d", len(values))
	}
	wantIdx := []int{0, 3, 4}
	for i := range wantIdx {
		if rowIdx[i] != wantIdx[i] {
			t.Errorf("rowIdx[%d] = %d, want %d", i, rowIdx[i], wantIdx[i])
		}
	}
	if values[1] != 7.5 {
		t.Errorf("values[1] = %v, want 7.5", values[1])
	}
}
