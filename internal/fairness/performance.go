package fairness

import (
	"sort"

	"fairlens/domain/frame"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Accuracy returns the fraction of rows where predCol equals the true label.
func (e *Engine) Accuracy(table *frame.Frame, predCol string) (float64, error) {
	cols, err := labelColumns(table, e.TrueColumn, predCol)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := range cols.yTrue {
		if cols.yTrue[i].Equal(cols.yPred[i]) {
			correct++
		}
	}
	return safeRatio(float64(correct), float64(len(cols.yTrue))), nil
}

// Precision returns the support-weighted average of per-class precision.
func (e *Engine) Precision(table *frame.Frame, predCol string) (float64, error) {
	return e.weightedClassMetric(table, predCol, func(c ConfusionCounts) float64 {
		return safeRatio(float64(c.TP), float64(c.TP+c.FP))
	})
}

// Recall returns the support-weighted average of per-class recall.
func (e *Engine) Recall(table *frame.Frame, predCol string) (float64, error) {
	return e.weightedClassMetric(table, predCol, func(c ConfusionCounts) float64 {
		return c.TPR()
	})
}

// F1 returns the support-weighted average of per-class F1 scores.
func (e *Engine) F1(table *frame.Frame, predCol string) (float64, error) {
	return e.weightedClassMetric(table, predCol, func(c ConfusionCounts) float64 {
		precision := safeRatio(float64(c.TP), float64(c.TP+c.FP))
		recall := c.TPR()
		return safeRatio(2*precision*recall, precision+recall)
	})
}

// weightedClassMetric treats each distinct true-label value as the positive
// class in turn and averages the per-class scores weighted by class support.
func (e *Engine) weightedClassMetric(table *frame.Frame, predCol string, score func(ConfusionCounts) float64) (float64, error) {
	cols, err := labelColumns(table, e.TrueColumn, predCol)
	if err != nil {
		return 0, err
	}
	n := len(cols.yTrue)
	if n == 0 {
		return 0, nil
	}

	// Distinct classes in first-seen order keeps the computation stable.
	var classes []frame.Value
	support := make(map[string]int)
	for _, v := range cols.yTrue {
		key := v.String()
		if _, seen := support[key]; !seen {
			classes = append(classes, v)
		}
		support[key]++
	}

	total := 0.0
	for _, class := range classes {
		counts, err := CountConfusion(cols.yTrue, cols.yPred, class)
		if err != nil {
			return 0, err
		}
		weight := float64(support[class.String()]) / float64(n)
		total += weight * score(counts)
	}
	return total, nil
}

// AUC returns the area under the ROC curve of predCol scored against binary
// true labels, via gonum's ROC curve and trapezoidal integration. Returns
// 0.5 when the true labels contain only one class.
func (e *Engine) AUC(table *frame.Frame, predCol string) (float64, error) {
	truthCol, err := table.Column(e.TrueColumn)
	if err != nil {
		return 0, err
	}
	predScores, err := columnFloats(table, predCol)
	if err != nil {
		return 0, err
	}
	truth, err := truthCol.Floats()
	if err != nil {
		return 0, err
	}

	// gonum's stat.ROC wants scores ascending with class flags aligned.
	order := make([]int, len(predScores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return predScores[order[i]] < predScores[order[j]]
	})

	scores := make([]float64, len(order))
	classes := make([]bool, len(order))
	positives := 0
	for i, idx := range order {
		scores[i] = predScores[idx]
		classes[i] = truth[idx] == 1
		if classes[i] {
			positives++
		}
	}
	if positives == 0 || positives == len(classes) {
		return 0.5, nil
	}

	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}

func columnFloats(table *frame.Frame, name string) ([]float64, error) {
	col, err := table.Column(name)
	if err != nil {
		return nil, err
	}
	return col.Floats()
}
