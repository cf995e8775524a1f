// Package profiling computes per-column summary statistics used to
// annotate audit reports.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"fairlens/domain/frame"
)

// ColumnProfile summarizes a single numeric column.
type ColumnProfile struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	MissingRatio float64 `json:"missing_ratio"`
	Mean         float64 `json:"mean"`
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Median       float64 `json:"median"`
	Q25          float64 `json:"q25"`
	Q75          float64 `json:"q75"`
	Skewness     float64 `json:"skewness"`
}

// Profiler computes column profiles over tabular data.
type Profiler struct{}

func NewProfiler() *Profiler {
	return &Profiler{}
}

// ProfileColumn summarizes the numeric cells of a series. Missing and
// non-numeric cells are skipped and counted toward the missing ratio.
func (p *Profiler) ProfileColumn(s frame.Series) ColumnProfile {
	data := make([]float64, 0, s.Len())
	for _, v := range s.Values {
		if f, ok := v.Float(); ok {
			data = append(data, f)
		}
	}

	profile := ColumnProfile{Name: s.Name, Count: len(data)}
	if s.Len() > 0 {
		profile.MissingRatio = float64(s.Len()-len(data)) / float64(s.Len())
	}
	if len(data) == 0 {
		return profile
	}

	profile.Mean, _ = stats.Mean(data)
	profile.StdDev, _ = stats.StandardDeviation(data)
	profile.Min, _ = stats.Min(data)
	profile.Max, _ = stats.Max(data)
	profile.Median, _ = stats.Median(data)
	profile.Q25, _ = stats.Percentile(data, 25)
	profile.Q75, _ = stats.Percentile(data, 75)
	profile.Skewness = skewness(data, profile.Mean, profile.StdDev)

	return profile
}

// ProfileTable summarizes every column of a table, keyed by column name.
// String columns yield a profile with Count 0 and MissingRatio 1.
func (p *Profiler) ProfileTable(f *frame.Frame) map[string]ColumnProfile {
	profiles := make(map[string]ColumnProfile, f.NumCols())
	for _, name := range f.Columns() {
		s, err := f.Column(name)
		if err != nil {
			continue
		}
		profiles[name] = p.ProfileColumn(s)
	}
	return profiles
}

// skewness computes the adjusted Fisher-Pearson coefficient.
func skewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sum += d * d * d
	}

	return (sum / n) * math.Sqrt(n*(n-1)) / (n - 2)
}
