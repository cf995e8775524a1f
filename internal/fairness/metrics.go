// Package fairness computes group-fairness and accuracy metrics over labeled
// prediction tables. Every function is a pure, synchronous computation over
// its inputs; empty subgroups fold to zero rates rather than errors.
package fairness

import (
	"math"

	"fairlens/domain/core"
	"fairlens/domain/frame"

	"github.com/montanaflynn/stats"
)

// TrueLabelColumn is the conventional name of the ground-truth column in a
// prediction table.
const TrueLabelColumn = "y_true"

// Engine evaluates fairness metrics against a prediction table. It carries
// no state beyond the true-label column name and is safe for concurrent use.
type Engine struct {
	TrueColumn string
}

// NewEngine creates an engine using the conventional true-label column
func NewEngine() *Engine {
	return &Engine{TrueColumn: TrueLabelColumn}
}

// DisparateImpact returns min(Pu/Pp, Pp/Pu) where Pu and Pp are the
// positive-outcome rates of the unprivileged and privileged groups. The
// min-of-ratios form is symmetric under swapping the groups. Returns 0 when
// either rate is 0, including when a group is empty.
func (e *Engine) DisparateImpact(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unprivRate, privRate, _, err := positiveRates(table, cond, predCol, positive)
	if err != nil {
		return 0, err
	}
	if unprivRate == 0 || privRate == 0 {
		return 0, nil
	}
	ratio := unprivRate / privRate
	if ratio > 1 {
		ratio = 1 / ratio
	}
	return ratio, nil
}

// StatisticalParity returns Pu - Pp, the difference of positive-outcome
// rates between the unprivileged and privileged groups. Returns 0 when
// either group is empty: a one-sided difference carries no information.
func (e *Engine) StatisticalParity(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unprivRate, privRate, bothPresent, err := positiveRates(table, cond, predCol, positive)
	if err != nil {
		return 0, err
	}
	if !bothPresent {
		return 0, nil
	}
	return unprivRate - privRate, nil
}

// AverageOddsDifference returns ((TPRp-TPRu) + (FPRp-FPRu)) / 2, the
// symmetric combination of both rate gaps.
func (e *Engine) AverageOddsDifference(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unpriv, priv, err := groupConfusion(table, cond, e.TrueColumn, predCol, positive)
	if err != nil {
		return 0, err
	}
	return ((priv.TPR() - unpriv.TPR()) + (priv.FPR() - unpriv.FPR())) / 2, nil
}

// EqualizedOdds returns TPRu - TPRp, the true-positive-rate gap.
func (e *Engine) EqualizedOdds(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unpriv, priv, err := groupConfusion(table, cond, e.TrueColumn, predCol, positive)
	if err != nil {
		return 0, err
	}
	return unpriv.TPR() - priv.TPR(), nil
}

// TruePositiveDifference returns TPRu - TPRp.
func (e *Engine) TruePositiveDifference(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unpriv, priv, err := groupConfusion(table, cond, e.TrueColumn, predCol, positive)
	if err != nil {
		return 0, err
	}
	return unpriv.TPR() - priv.TPR(), nil
}

// FalsePositiveDifference returns FPRu - FPRp.
func (e *Engine) FalsePositiveDifference(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unpriv, priv, err := groupConfusion(table, cond, e.TrueColumn, predCol, positive)
	if err != nil {
		return 0, err
	}
	return unpriv.FPR() - priv.FPR(), nil
}

// FalseNegativeDifference returns FNRu - FNRp.
func (e *Engine) FalseNegativeDifference(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (float64, error) {
	unpriv, priv, err := groupConfusion(table, cond, e.TrueColumn, predCol, positive)
	if err != nil {
		return 0, err
	}
	return unpriv.FNR() - priv.FNR(), nil
}

// ZeroOneLossDifference groups rows by the sensitive feature (any
// cardinality, not just two groups) and returns max - min of the per-group
// zero-one loss.
func ZeroOneLossDifference(yTrue, yPred []float64, sensitive []string) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, core.NewLengthMismatchError(len(yTrue), len(yPred))
	}
	if len(yTrue) != len(sensitive) {
		return 0, core.NewLengthMismatchError(len(yTrue), len(sensitive))
	}
	if len(yTrue) == 0 {
		return 0, core.ErrMissingLabels
	}

	misses := make(map[string]float64)
	totals := make(map[string]float64)
	for i, group := range sensitive {
		totals[group]++
		if yTrue[i] != yPred[i] {
			misses[group]++
		}
	}

	losses := make([]float64, 0, len(totals))
	for group, total := range totals {
		losses = append(losses, misses[group]/total)
	}

	max, err := stats.Max(losses)
	if err != nil {
		return 0, err
	}
	min, err := stats.Min(losses)
	if err != nil {
		return 0, err
	}
	return max - min, nil
}

// NormData folds a signed difference metric into a bounded score: values
// near 0 map to 1 and values near +/-1 map to 0.
func NormData(x float64) float64 {
	return math.Abs(1 - math.Abs(x))
}
