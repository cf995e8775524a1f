package fairness

import (
	"fairlens/domain/core"
	"fairlens/domain/frame"
)

// ConfusionCounts tallies prediction outcomes against one positive label.
// Counts are derived per subgroup and never cached across calls.
type ConfusionCounts struct {
	TP int
	FP int
	TN int
	FN int
}

// CountConfusion classifies each (true, predicted) pair in a single pass.
// The true side decides the positive branch (TP/FN split by predicted
// equality), the predicted side decides the negative branch (FP/TN split).
func CountConfusion(yTrue, yPred []frame.Value, positive frame.Value) (ConfusionCounts, error) {
	if len(yTrue) != len(yPred) {
		return ConfusionCounts{}, core.NewLengthMismatchError(len(yTrue), len(yPred))
	}

	var c ConfusionCounts
	for i := range yTrue {
		if yTrue[i].Equal(positive) {
			if yPred[i].Equal(positive) {
				c.TP++
			} else {
				c.FN++
			}
		} else {
			if yPred[i].Equal(positive) {
				c.FP++
			} else {
				c.TN++
			}
		}
	}
	return c, nil
}

// Total returns the number of classified pairs
func (c ConfusionCounts) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// TPR returns TP/(TP+FN), 0 when no positives exist
func (c ConfusionCounts) TPR() float64 {
	return safeRatio(float64(c.TP), float64(c.TP+c.FN))
}

// FPR returns FP/(FP+TN), 0 when no negatives exist
func (c ConfusionCounts) FPR() float64 {
	return safeRatio(float64(c.FP), float64(c.FP+c.TN))
}

// FNR returns FN/(TP+FN), 0 when no positives exist
func (c ConfusionCounts) FNR() float64 {
	return safeRatio(float64(c.FN), float64(c.TP+c.FN))
}

// safeRatio is the shared guarded division: a zero denominator yields 0
// instead of an error. An empty subgroup therefore produces an uninformative
// zero rate rather than a crash; this is deliberate policy, every rate in
// this package goes through it.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
