package report

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"fairlens/domain/core"
	"fairlens/domain/frame"
	"fairlens/internal"
	"fairlens/internal/fairness"
	"fairlens/internal/profiling"
)

// DefaultConcurrency bounds the number of columns audited in parallel.
const DefaultConcurrency = 4

// Runner executes the metric battery per predicted-label column. Metric
// calls are stateless, so columns can run concurrently over the shared
// immutable table.
type Runner struct {
	engine   *fairness.Engine
	profiler *profiling.Profiler
	sem      *semaphore.Weighted
	logger   *internal.Logger
}

// NewRunner creates a runner with the given true-label column name and
// concurrency bound. An empty column name falls back to the conventional
// y_true; a bound below one falls back to DefaultConcurrency.
func NewRunner(trueColumn string, maxConcurrent int64) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultConcurrency
	}
	engine := fairness.NewEngine()
	if trueColumn != "" {
		engine.TrueColumn = trueColumn
	}
	return &Runner{
		engine:   engine,
		profiler: profiling.NewProfiler(),
		sem:      semaphore.NewWeighted(maxConcurrent),
		logger:   internal.NewDefaultLogger("[report] "),
	}
}

// Run audits every predicted column against the true-label column and the
// group condition, returning a report with raw metric values, bounded
// scores, and per-column profiles.
func (r *Runner) Run(ctx context.Context, table *frame.Frame, cond frame.Condition, predCols []string, positive frame.Value) (*AuditReport, error) {
	if table == nil || table.NumRows() == 0 {
		return nil, core.ErrEmptyTable
	}
	if _, err := table.Column(r.engine.TrueColumn); err != nil {
		return nil, err
	}
	for _, col := range predCols {
		if _, err := table.Column(col); err != nil {
			return nil, err
		}
	}

	audits := make([]ColumnAudit, len(predCols))
	errs := make([]error, len(predCols))
	var wg sync.WaitGroup

	for i, col := range predCols {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(idx int, column string) {
			defer wg.Done()
			defer r.sem.Release(1)
			audits[idx], errs[idx] = r.auditColumn(table, cond, column, positive)
		}(i, col)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	condition := make(map[string]string, len(cond))
	for name, v := range cond {
		condition[name] = v.String()
	}

	rep := &AuditReport{
		ID:        core.ReportID(core.NewID()),
		CreatedAt: core.Now(),
		Dataset:   fingerprint(table),
		Rows:      table.NumRows(),
		Condition: condition,
		Positive:  positive.String(),
		Columns:   audits,
		Profiles:  r.profiler.ProfileTable(table),
	}
	r.logger.Info("audited %d columns over %d rows (report %s)", len(predCols), rep.Rows, rep.ID)
	return rep, nil
}

// fingerprint serializes the table content deterministically so identical
// inputs always produce the same dataset hash.
func fingerprint(table *frame.Frame) core.DatasetHash {
	var b strings.Builder
	for _, name := range table.Columns() {
		b.WriteString(name)
		b.WriteByte('\n')
		col, err := table.Column(name)
		if err != nil {
			continue
		}
		for _, v := range col.Values {
			b.WriteString(v.String())
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	return core.NewDatasetHash([]byte(b.String()))
}

type fairnessMetric struct {
	name string
	fn   func(*frame.Frame, frame.Condition, string, frame.Value) (float64, error)
}

func (r *Runner) auditColumn(table *frame.Frame, cond frame.Condition, col string, positive frame.Value) (ColumnAudit, error) {
	audit := ColumnAudit{
		Column:      col,
		Fairness:    make(map[string]float64),
		Scores:      make(map[string]float64),
		Performance: make(map[string]float64),
		Distances:   make(map[string]float64),
	}

	metrics := []fairnessMetric{
		{"disparate_impact", r.engine.DisparateImpact},
		{"statistical_parity", r.engine.StatisticalParity},
		{"average_odds_difference", r.engine.AverageOddsDifference},
		{"equalized_odds", r.engine.EqualizedOdds},
		{"true_positive_difference", r.engine.TruePositiveDifference},
		{"false_positive_difference", r.engine.FalsePositiveDifference},
		{"false_negative_difference", r.engine.FalseNegativeDifference},
	}
	for _, m := range metrics {
		v, err := m.fn(table, cond, col, positive)
		if err != nil {
			return audit, err
		}
		audit.Fairness[m.name] = v
		audit.Scores[m.name] = fairness.NormData(v)
	}
	// Disparate impact is already a bounded ratio.
	audit.Scores["disparate_impact"] = audit.Fairness["disparate_impact"]

	perf := []struct {
		name string
		fn   func(*frame.Frame, string) (float64, error)
	}{
		{"accuracy", r.engine.Accuracy},
		{"precision", r.engine.Precision},
		{"recall", r.engine.Recall},
		{"f1", r.engine.F1},
		{"auc", r.engine.AUC},
	}
	for _, m := range perf {
		v, err := m.fn(table, col)
		if err != nil {
			return audit, err
		}
		audit.Performance[m.name] = v
	}

	dists := []struct {
		name string
		fn   func(*frame.Frame, string) (float64, error)
	}{
		{"euclidean", r.engine.EuclideanDistance},
		{"manhattan", r.engine.ManhattanDistance},
		{"mahalanobis", r.engine.MahalanobisDistance},
	}
	for _, m := range dists {
		v, err := m.fn(table, col)
		if err != nil {
			return audit, err
		}
		audit.Distances[m.name] = v
	}

	return audit, nil
}
