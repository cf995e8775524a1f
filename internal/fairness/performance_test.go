package fairness

import (
	"math"
	"testing"

	"fairlens/domain/core"
	"fairlens/domain/frame"
)

func predictionTable(t *testing.T, yTrue, pred []float64) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.NumericSeries(TrueLabelColumn, yTrue),
		frame.NumericSeries("pred", pred),
	)
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	return f
}

func TestAccuracy(t *testing.T) {
	table := predictionTable(t, []float64{0, 0, 1, 1, 1}, []float64{0, 1, 1, 1, 1})
	engine := NewEngine()

	got, err := engine.Accuracy(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.8) > 1e-12 {
		t.Errorf("accuracy = %v, want 0.8", got)
	}
}

func TestWeightedPrecisionRecallF1(t *testing.T) {
	// class 0 (support 2): precision 1, recall 0.5, f1 2/3
	// class 1 (support 3): precision 0.75, recall 1, f1 6/7
	table := predictionTable(t, []float64{0, 0, 1, 1, 1}, []float64{0, 1, 1, 1, 1})
	engine := NewEngine()

	precision, err := engine.Precision(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(precision-0.85) > 1e-12 {
		t.Errorf("weighted precision = %v, want 0.85", precision)
	}

	recall, err := engine.Recall(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(recall-0.8) > 1e-12 {
		t.Errorf("weighted recall = %v, want 0.8", recall)
	}

	f1, err := engine.F1(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.4*(2.0/3.0) + 0.6*(6.0/7.0)
	if math.Abs(f1-want) > 1e-12 {
		t.Errorf("weighted f1 = %v, want %v", f1, want)
	}
}

func TestAUC_KnownCurve(t *testing.T) {
	table := predictionTable(t, []float64{0, 0, 1, 1}, []float64{0.1, 0.4, 0.35, 0.8})
	engine := NewEngine()

	got, err := engine.AUC(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("AUC = %v, want 0.75", got)
	}
}

func TestAUC_PerfectRanking(t *testing.T) {
	table := predictionTable(t, []float64{0, 0, 1, 1}, []float64{0.1, 0.2, 0.8, 0.9})
	engine := NewEngine()

	got, err := engine.AUC(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("AUC = %v, want 1.0", got)
	}
}

func TestAUC_InvertedRanking(t *testing.T) {
	table := predictionTable(t, []float64{0, 0, 1, 1}, []float64{0.9, 0.8, 0.2, 0.1})
	engine := NewEngine()

	got, err := engine.AUC(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got) > 1e-12 {
		t.Errorf("AUC = %v, want 0 when every negative outranks every positive", got)
	}
}

func TestAUC_SingleClassDefaults(t *testing.T) {
	table := predictionTable(t, []float64{1, 1, 1}, []float64{0.2, 0.5, 0.9})
	engine := NewEngine()

	got, err := engine.AUC(table, "pred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.5 {
		t.Errorf("AUC on single-class labels = %v, want 0.5", got)
	}
}

func TestPerformance_UnknownColumn(t *testing.T) {
	table := predictionTable(t, []float64{1}, []float64{1})
	engine := NewEngine()

	if _, err := engine.Accuracy(table, "ghost"); !core.IsColumnNotFound(err) {
		t.Errorf("expected column not found error, got %v", err)
	}
	if _, err := engine.AUC(table, "ghost"); !core.IsColumnNotFound(err) {
		t.Errorf("expected column not found error, got %v", err)
	}
}
