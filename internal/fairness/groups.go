package fairness

import (
	"fairlens/domain/frame"
)

// groupColumns holds the label columns of one partition side
type groupColumns struct {
	yTrue []frame.Value
	yPred []frame.Value
}

// splitLabelColumns partitions the table on cond and extracts the true and
// predicted label columns for each side. The unprivileged side is the rows
// matching the condition; the privileged side is the row-identity complement.
func splitLabelColumns(table *frame.Frame, cond frame.Condition, trueCol, predCol string) (unpriv, priv groupColumns, err error) {
	unprivFrame, privFrame, err := table.Partition(cond)
	if err != nil {
		return groupColumns{}, groupColumns{}, err
	}

	unpriv, err = labelColumns(unprivFrame, trueCol, predCol)
	if err != nil {
		return groupColumns{}, groupColumns{}, err
	}
	priv, err = labelColumns(privFrame, trueCol, predCol)
	if err != nil {
		return groupColumns{}, groupColumns{}, err
	}
	return unpriv, priv, nil
}

func labelColumns(f *frame.Frame, trueCol, predCol string) (groupColumns, error) {
	truth, err := f.Column(trueCol)
	if err != nil {
		return groupColumns{}, err
	}
	pred, err := f.Column(predCol)
	if err != nil {
		return groupColumns{}, err
	}
	return groupColumns{yTrue: truth.Values, yPred: pred.Values}, nil
}

// groupConfusion computes confusion counts for both partition sides
func groupConfusion(table *frame.Frame, cond frame.Condition, trueCol, predCol string, positive frame.Value) (unpriv, priv ConfusionCounts, err error) {
	uc, pc, err := splitLabelColumns(table, cond, trueCol, predCol)
	if err != nil {
		return ConfusionCounts{}, ConfusionCounts{}, err
	}
	unpriv, err = CountConfusion(uc.yTrue, uc.yPred, positive)
	if err != nil {
		return ConfusionCounts{}, ConfusionCounts{}, err
	}
	priv, err = CountConfusion(pc.yTrue, pc.yPred, positive)
	if err != nil {
		return ConfusionCounts{}, ConfusionCounts{}, err
	}
	return unpriv, priv, nil
}

// positiveRates returns the positive-outcome rate of predCol in each
// partition side, computed from direct row-count ratios. Empty sides yield a
// zero rate. The bool reports whether both sides were non-empty.
func positiveRates(table *frame.Frame, cond frame.Condition, predCol string, positive frame.Value) (unprivRate, privRate float64, bothPresent bool, err error) {
	unprivFrame, privFrame, err := table.Partition(cond)
	if err != nil {
		return 0, 0, false, err
	}

	unprivRate, err = positiveRate(unprivFrame, predCol, positive)
	if err != nil {
		return 0, 0, false, err
	}
	privRate, err = positiveRate(privFrame, predCol, positive)
	if err != nil {
		return 0, 0, false, err
	}
	return unprivRate, privRate, unprivFrame.NumRows() > 0 && privFrame.NumRows() > 0, nil
}

func positiveRate(f *frame.Frame, predCol string, positive frame.Value) (float64, error) {
	col, err := f.Column(predCol)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range col.Values {
		if v.Equal(positive) {
			count++
		}
	}
	return safeRatio(float64(count), float64(len(col.Values))), nil
}
