package validation

import (
	"fmt"
	"strings"

	"fairlens/domain/core"
	"fairlens/domain/frame"
)

// mergeSeparator joins the per-column parts of a composite group key.
const mergeSeparator = ","

// Options controls which inputs Validate requires.
type Options struct {
	ExpectLabels        bool // labels must be present and non-empty
	ExpectSensitive     bool // sensitive features must be present
	EnforceBinaryLabels bool // every label must be 0 or 1
}

// DefaultOptions requires labels and sensitive features, matching the common
// mitigation-pipeline call site.
func DefaultOptions() Options {
	return Options{ExpectLabels: true, ExpectSensitive: true}
}

// FeatureMatrix preserves the caller's X representation: tabular input stays
// tabular, array-like input stays an array. Exactly one field is set.
type FeatureMatrix struct {
	Frame *frame.Frame
	Rows  [][]float64
}

// NumRows returns the row count of whichever representation is set
func (m FeatureMatrix) NumRows() int {
	if m.Frame != nil {
		return m.Frame.NumRows()
	}
	return len(m.Rows)
}

// Canonical is the validated 4-tuple. All present members share the same row
// count. It is constructed fresh per Validate call and never mutated.
type Canonical struct {
	X         FeatureMatrix
	Labels    []float64 // empty but non-nil when labels were not requested
	Sensitive []string  // composite keys when the input had multiple columns
	Control   []string
}

// Validate normalizes heterogeneous inputs into a Canonical tuple.
//
// Accepted types: X as *frame.Frame, [][]float64 or []float64; labels as
// []float64, []int, [][]float64 (single column) or frame.Series; sensitive
// and control features as []string, []float64, [][]string, frame.Series or
// *frame.Frame. Anything else fails with an ErrInvalidInput kind.
func Validate(x, y, sensitive, control interface{}, opts Options) (*Canonical, error) {
	out := &Canonical{Labels: []float64{}}

	if opts.ExpectLabels {
		labels, err := coerceLabels(y, opts.EnforceBinaryLabels)
		if err != nil {
			return nil, err
		}
		out.Labels = labels
	}

	matrix, err := coerceFeatures(x)
	if err != nil {
		return nil, err
	}
	out.X = matrix

	if opts.ExpectLabels && len(out.Labels) != matrix.NumRows() {
		return nil, core.NewRowCountMismatchError("X", matrix.NumRows(), "y", len(out.Labels))
	}

	if sensitive != nil {
		column, err := coerceGroupColumn("sensitive_features", sensitive, matrix.NumRows())
		if err != nil {
			return nil, err
		}
		out.Sensitive = column
	} else if opts.ExpectSensitive {
		return nil, core.ErrSensitiveRequired
	}

	if control != nil {
		column, err := coerceGroupColumn("control_features", control, matrix.NumRows())
		if err != nil {
			return nil, err
		}
		out.Control = column
	}

	return out, nil
}

// coerceLabels flattens y to 1-D float64s, rejecting wide shapes
func coerceLabels(y interface{}, enforceBinary bool) ([]float64, error) {
	if y == nil {
		return nil, core.ErrMissingLabels
	}

	var labels []float64
	switch v := y.(type) {
	case []float64:
		labels = append(labels, v...)
	case []int:
		labels = make([]float64, len(v))
		for i, n := range v {
			labels[i] = float64(n)
		}
	case [][]float64:
		labels = make([]float64, 0, len(v))
		for r, row := range v {
			if len(row) != 1 {
				return nil, core.NewLabelShapeError(len(v), len(v[r]))
			}
			labels = append(labels, row[0])
		}
	case frame.Series:
		floats, err := v.Floats()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrLabelShape, err)
		}
		labels = floats
	default:
		return nil, core.NewUnsupportedTypeError("y", y)
	}

	if len(labels) == 0 {
		return nil, core.ErrMissingLabels
	}
	if enforceBinary {
		for i, l := range labels {
			if l != 0 && l != 1 {
				return nil, fmt.Errorf("%w: value %v at row %d", core.ErrLabelsNotBinary, l, i)
			}
		}
	}
	return labels, nil
}

// coerceFeatures normalizes X, preserving tabular-ness
func coerceFeatures(x interface{}) (FeatureMatrix, error) {
	switch v := x.(type) {
	case *frame.Frame:
		if v == nil {
			return FeatureMatrix{}, core.NewUnsupportedTypeError("X", nil)
		}
		return FeatureMatrix{Frame: v}, nil
	case [][]float64:
		for r, row := range v {
			if len(row) != len(v[0]) {
				return FeatureMatrix{}, fmt.Errorf("%w: X row %d has %d columns, row 0 has %d",
					core.ErrInvalidInput, r, len(row), len(v[0]))
			}
		}
		return FeatureMatrix{Rows: v}, nil
	case []float64:
		rows := make([][]float64, len(v))
		for i, f := range v {
			rows[i] = []float64{f}
		}
		return FeatureMatrix{Rows: rows}, nil
	default:
		return FeatureMatrix{}, core.NewUnsupportedTypeError("X", x)
	}
}

// coerceGroupColumn normalizes sensitive/control features to one string key
// per row, merging multi-column inputs into composite keys
func coerceGroupColumn(field string, raw interface{}, wantRows int) ([]string, error) {
	var column []string
	switch v := raw.(type) {
	case []string:
		column = append(column, v...)
	case []float64:
		column = make([]string, len(v))
		for i, f := range v {
			column[i] = frame.Num(f).String()
		}
	case [][]string:
		merged, err := MergeColumns(v)
		if err != nil {
			return nil, err
		}
		column = merged
	case frame.Series:
		column = v.Strings()
	case *frame.Frame:
		if v == nil {
			return nil, core.NewUnsupportedTypeError(field, nil)
		}
		if v.NumCols() == 1 {
			col, err := v.Column(v.Columns()[0])
			if err != nil {
				return nil, err
			}
			column = col.Strings()
		} else {
			merged, err := MergeColumns(frameToRows(v))
			if err != nil {
				return nil, err
			}
			column = merged
		}
	default:
		return nil, core.NewUnsupportedTypeError(field, raw)
	}

	if len(column) != wantRows {
		return nil, core.NewRowCountMismatchError("X", wantRows, field, len(column))
	}
	return column, nil
}

// frameToRows stringifies a frame row-major for composite-key merging
func frameToRows(f *frame.Frame) [][]string {
	names := f.Columns()
	rows := make([][]string, f.NumRows())
	for r := range rows {
		rows[r] = make([]string, len(names))
	}
	for c, name := range names {
		col, _ := f.Column(name)
		for r, cell := range col.Strings() {
			rows[r][c] = cell
		}
	}
	return rows
}

// MergeColumns compresses a multi-column attribute into one composite key per
// row. Each cell is escaped (`\` to `\\`, the separator to `\,`) before
// joining, so per-column boundaries stay recoverable even when cell values
// contain the separator. The input must be rectangular with at least two
// columns.
func MergeColumns(rows [][]string) ([]string, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, core.ErrNotMultiColumn
	}
	width := len(rows[0])

	merged := make([]string, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, core.ErrNotMultiColumn
		}
		parts := make([]string, len(row))
		for c, cell := range row {
			parts[c] = escapeCell(cell)
		}
		merged[r] = strings.Join(parts, mergeSeparator)
	}
	return merged, nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, mergeSeparator, `\`+mergeSeparator)
}

// splitKey reverses MergeColumns for a single composite key
func splitKey(key string) []string {
	var parts []string
	var cell strings.Builder
	escaped := false
	for _, r := range key {
		switch {
		case escaped:
			cell.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case string(r) == mergeSeparator:
			parts = append(parts, cell.String())
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	parts = append(parts, cell.String())
	return parts
}
