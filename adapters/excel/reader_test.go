package excel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fairlens/domain/core"
	"fairlens/domain/frame"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeCSV(t, "sex,y_true,pred\nfemale,1,1\nmale,0,\nfemale,1,0\n")

	f, err := NewDataReader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.NumRows() != 3 || f.NumCols() != 3 {
		t.Fatalf("got %dx%d table, want 3x3", f.NumRows(), f.NumCols())
	}

	sex, err := f.Column("sex")
	if err != nil {
		t.Fatalf("sex column: %v", err)
	}
	if !sex.Values[0].Equal(frame.Str("female")) {
		t.Errorf("sex[0] = %v, want string female", sex.Values[0])
	}

	truth, err := f.Column("y_true")
	if err != nil {
		t.Fatalf("y_true column: %v", err)
	}
	if !truth.Values[0].Equal(frame.Num(1)) {
		t.Errorf("y_true[0] = %v, want numeric 1", truth.Values[0])
	}

	pred, err := f.Column("pred")
	if err != nil {
		t.Fatalf("pred column: %v", err)
	}
	if !pred.Values[1].IsMissing() {
		t.Errorf("pred[1] should be missing, got %v", pred.Values[1])
	}
}

func TestBuildFrame_ShortRowsPadded(t *testing.T) {
	// Excel sheets can yield ragged rows when trailing cells are blank.
	r := NewDataReader("table.xlsx")
	f, err := r.buildFrame([][]string{
		{"a", "b"},
		{"1", "2"},
		{"3"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := f.Column("b")
	if err != nil {
		t.Fatalf("b column: %v", err)
	}
	if !b.Values[1].IsMissing() {
		t.Errorf("b[1] should be missing, got %v", b.Values[1])
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "a,b\n")

	_, err := NewDataReader(path).Load(context.Background())
	if !errors.Is(err, core.ErrEmptyTable) {
		t.Errorf("expected empty table error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/table.csv").Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	path := writeCSV(t, "a\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDataReader(path).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
