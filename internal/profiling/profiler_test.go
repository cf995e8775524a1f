package profiling

import (
	"math"
	"testing"

	"fairlens/domain/frame"
)

func TestProfileColumn_SummaryStats(t *testing.T) {
	s := frame.NumericSeries("age", []float64{1, 2, 3, 4, 5})
	p := NewProfiler().ProfileColumn(s)

	if p.Count != 5 {
		t.Fatalf("count = %d, want 5", p.Count)
	}
	if p.MissingRatio != 0 {
		t.Errorf("missing ratio = %v, want 0", p.MissingRatio)
	}
	if p.Mean != 3 || p.Median != 3 {
		t.Errorf("mean/median = %v/%v, want 3/3", p.Mean, p.Median)
	}
	if p.Min != 1 || p.Max != 5 {
		t.Errorf("min/max = %v/%v, want 1/5", p.Min, p.Max)
	}
	// stats.Percentile averages adjacent values on fractional ranks,
	// giving 1.5 and 3.5 on [1..5].
	if p.Q25 != 1.5 || p.Q75 != 3.5 {
		t.Errorf("q25/q75 = %v/%v, want 1.5/3.5", p.Q25, p.Q75)
	}
	if math.Abs(p.StdDev-math.Sqrt2) > 1e-12 {
		t.Errorf("stddev = %v, want sqrt(2)", p.StdDev)
	}
	if math.Abs(p.Skewness) > 1e-12 {
		t.Errorf("skewness of symmetric data = %v, want 0", p.Skewness)
	}
}

func TestProfileColumn_MissingCells(t *testing.T) {
	s := frame.Series{Name: "income", Values: []frame.Value{
		frame.Num(10), frame.Missing(), frame.Num(30), frame.Str("n/a"),
	}}
	p := NewProfiler().ProfileColumn(s)

	if p.Count != 2 {
		t.Fatalf("count = %d, want 2", p.Count)
	}
	if p.MissingRatio != 0.5 {
		t.Errorf("missing ratio = %v, want 0.5", p.MissingRatio)
	}
	if p.Mean != 20 {
		t.Errorf("mean = %v, want 20", p.Mean)
	}
}

func TestProfileColumn_Empty(t *testing.T) {
	p := NewProfiler().ProfileColumn(frame.NumericSeries("empty", nil))
	if p.Count != 0 || p.Mean != 0 {
		t.Errorf("empty column should yield zero profile, got %+v", p)
	}
}

func TestProfileTable(t *testing.T) {
	f, err := frame.New(
		frame.NumericSeries("a", []float64{1, 2}),
		frame.StringSeries("b", []string{"x", "y"}),
	)
	if err != nil {
		t.Fatalf("building table: %v", err)
	}

	profiles := NewProfiler().ProfileTable(f)
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	if profiles["a"].Mean != 1.5 {
		t.Errorf("mean(a) = %v, want 1.5", profiles["a"].Mean)
	}
	if profiles["b"].MissingRatio != 1 {
		t.Errorf("string column missing ratio = %v, want 1", profiles["b"].MissingRatio)
	}
}
