package fairness

import (
	"fairlens/domain/frame"

	"gonum.org/v1/gonum/floats"
)

// EuclideanDistance returns the L2 norm of the prediction residuals divided
// by the row count.
func (e *Engine) EuclideanDistance(table *frame.Frame, predCol string) (float64, error) {
	truth, pred, err := e.residualColumns(table, predCol)
	if err != nil {
		return 0, err
	}
	if len(truth) == 0 {
		return 0, nil
	}
	return floats.Distance(truth, pred, 2) / float64(len(truth)), nil
}

// ManhattanDistance returns the L1 norm of the prediction residuals divided
// by the row count.
func (e *Engine) ManhattanDistance(table *frame.Frame, predCol string) (float64, error) {
	truth, pred, err := e.residualColumns(table, predCol)
	if err != nil {
		return 0, err
	}
	if len(truth) == 0 {
		return 0, nil
	}
	return floats.Distance(truth, pred, 1) / float64(len(truth)), nil
}

// MahalanobisDistance returns the L2 norm of the residuals divided by the
// row count. The name is kept for compatibility with existing report
// schemas; no covariance weighting is applied, so it coincides with
// EuclideanDistance.
func (e *Engine) MahalanobisDistance(table *frame.Frame, predCol string) (float64, error) {
	return e.EuclideanDistance(table, predCol)
}

func (e *Engine) residualColumns(table *frame.Frame, predCol string) (truth, pred []float64, err error) {
	truth, err = columnFloats(table, e.TrueColumn)
	if err != nil {
		return nil, nil, err
	}
	pred, err = columnFloats(table, predCol)
	if err != nil {
		return nil, nil, err
	}
	return truth, pred, nil
}
