package frame

import (
	"errors"
	"testing"

	"fairlens/domain/core"
)

func TestNew_RejectsUnequalColumnLengths(t *testing.T) {
	_, err := New(
		NumericSeries("a", []float64{1, 2, 3}),
		NumericSeries("b", []float64{1, 2}),
	)
	if !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("expected length mismatch error, got %v", err)
	}
}

func TestNew_RejectsDuplicateColumnNames(t *testing.T) {
	_, err := New(
		NumericSeries("a", []float64{1}),
		NumericSeries("a", []float64{2}),
	)
	if !core.IsInvalidInput(err) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestColumn_NotFound(t *testing.T) {
	f, err := New(NumericSeries("a", []float64{1, 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.Column("missing"); !core.IsColumnNotFound(err) {
		t.Errorf("expected column not found error, got %v", err)
	}
}

func TestPartition_CompleteAndDisjoint(t *testing.T) {
	f, err := New(
		StringSeries("sex", []string{"female", "male", "female", "male", "female"}),
		NumericSeries("label", []float64{1, 0, 0, 1, 1}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, rest, err := f.Partition(Condition{"sex": Str("female")})
	if err != nil {
		t.Fatalf("partition failed: %v", err)
	}

	if match.NumRows()+rest.NumRows() != f.NumRows() {
		t.Errorf("partition does not cover table: %d + %d != %d",
			match.NumRows(), rest.NumRows(), f.NumRows())
	}
	if match.NumRows() != 3 {
		t.Errorf("expected 3 matching rows, got %d", match.NumRows())
	}

	sex, _ := match.Column("sex")
	for i, v := range sex.Values {
		if !v.Equal(Str("female")) {
			t.Errorf("row %d leaked into matching partition: %v", i, v)
		}
	}
	sex, _ = rest.Column("sex")
	for i, v := range sex.Values {
		if v.Equal(Str("female")) {
			t.Errorf("row %d leaked into complement: %v", i, v)
		}
	}
}

func TestPartition_MissingValuesFallToComplement(t *testing.T) {
	f, err := New(Series{Name: "sex", Values: []Value{Str("female"), Missing(), Str("male")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, rest, err := f.Partition(Condition{"sex": Str("female")})
	if err != nil {
		t.Fatalf("partition failed: %v", err)
	}
	if match.NumRows() != 1 || rest.NumRows() != 2 {
		t.Errorf("expected 1/2 split, got %d/%d", match.NumRows(), rest.NumRows())
	}
}

func TestPartition_EmptyConditionSelectsEverything(t *testing.T) {
	f, err := New(NumericSeries("label", []float64{1, 0, 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, rest, err := f.Partition(Condition{})
	if err != nil {
		t.Fatalf("partition failed: %v", err)
	}
	if match.NumRows() != 3 || rest.NumRows() != 0 {
		t.Errorf("expected full/empty split, got %d/%d", match.NumRows(), rest.NumRows())
	}
}

func TestPartition_UnknownConditionColumn(t *testing.T) {
	f, _ := New(NumericSeries("label", []float64{1}))
	if _, _, err := f.Partition(Condition{"ghost": Num(1)}); !core.IsColumnNotFound(err) {
		t.Errorf("expected column not found error, got %v", err)
	}
}

func TestValueEqual_TypedComparison(t *testing.T) {
	if Num(1).Equal(Str("1")) {
		t.Error("numeric 1 should not equal string \"1\"")
	}
	if Missing().Equal(Missing()) {
		t.Error("missing should not equal missing")
	}
	if !Num(2.5).Equal(Num(2.5)) {
		t.Error("equal numerics should compare equal")
	}
}

func TestSeriesFloats_RejectsStrings(t *testing.T) {
	s := StringSeries("g", []string{"a"})
	if _, err := s.Floats(); !errors.Is(err, core.ErrNonNumeric) {
		t.Errorf("expected non-numeric error, got %v", err)
	}
}
