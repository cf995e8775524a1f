package frame

import (
	"fmt"
	"math"
	"strconv"

	"fairlens/domain/core"
)

// Kind classifies a cell value
type Kind int

const (
	KindMissing Kind = iota
	KindNumeric
	KindString
)

// Value is a single typed cell. Conditions and confusion counting compare
// values with Equal, so a numeric 1 never matches the string "1".
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Num creates a numeric value
func Num(v float64) Value {
	return Value{kind: KindNumeric, num: v}
}

// Str creates a string value
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Missing creates a missing value
func Missing() Value {
	return Value{kind: KindMissing}
}

// FromAny coerces common Go types into a Value
func FromAny(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Missing()
	case Value:
		return v
	case float64:
		return Num(v)
	case float32:
		return Num(float64(v))
	case int:
		return Num(float64(v))
	case int32:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case bool:
		if v {
			return Num(1)
		}
		return Num(0)
	case string:
		return Str(v)
	default:
		return Str(fmt.Sprintf("%v", v))
	}
}

// Kind returns the value's kind
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is absent
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload and whether the value is numeric
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumeric {
		return 0, false
	}
	return v.num, true
}

// String renders the value for display and composite-key building
func (v Value) String() string {
	switch v.kind {
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}

// Equal compares two values. Missing never equals anything, including
// another missing value; rows with undefined attributes must fall to the
// complement side of a partition rather than satisfy a condition.
func (v Value) Equal(o Value) bool {
	if v.kind == KindMissing || o.kind == KindMissing {
		return false
	}
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindNumeric {
		return v.num == o.num
	}
	return v.str == o.str
}

// Series is a named column of values
type Series struct {
	Name   string
	Values []Value
}

// NumericSeries builds a series from float64s
func NumericSeries(name string, vals []float64) Series {
	values := make([]Value, len(vals))
	for i, v := range vals {
		values[i] = Num(v)
	}
	return Series{Name: name, Values: values}
}

// StringSeries builds a series from strings
func StringSeries(name string, vals []string) Series {
	values := make([]Value, len(vals))
	for i, v := range vals {
		values[i] = Str(v)
	}
	return Series{Name: name, Values: values}
}

// Len returns the number of rows in the series
func (s Series) Len() int { return len(s.Values) }

// Floats extracts the column as float64s. Missing cells become NaN;
// a string cell makes the whole extraction fail.
func (s Series) Floats() ([]float64, error) {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		switch v.kind {
		case KindNumeric:
			out[i] = v.num
		case KindMissing:
			out[i] = math.NaN()
		default:
			return nil, fmt.Errorf("%w: %q has string value at row %d", core.ErrNonNumeric, s.Name, i)
		}
	}
	return out, nil
}

// Strings renders every cell of the column
func (s Series) Strings() []string {
	out := make([]string, len(s.Values))
	for i, v := range s.Values {
		out[i] = v.String()
	}
	return out
}

// Take returns a new series containing the given rows, in order
func (s Series) Take(rows []int) Series {
	values := make([]Value, len(rows))
	for i, r := range rows {
		values[i] = s.Values[r]
	}
	return Series{Name: s.Name, Values: values}
}

// Frame is a row-aligned table of named columns. Row order is stable and is
// the implicit join key across columns.
type Frame struct {
	cols  []Series
	index map[string]int
}

// New builds a frame from columns, enforcing equal lengths and unique names
func New(cols ...Series) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for _, col := range cols {
		if _, dup := f.index[col.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", core.ErrInvalidInput, col.Name)
		}
		if len(f.cols) > 0 && col.Len() != f.cols[0].Len() {
			return nil, core.NewLengthMismatchError(f.cols[0].Len(), col.Len())
		}
		f.index[col.Name] = len(f.cols)
		f.cols = append(f.cols, col)
	}
	return f, nil
}

// NumRows returns the row count
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumCols returns the column count
func (f *Frame) NumCols() int { return len(f.cols) }

// Columns returns the column names in declaration order
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether a column exists
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named column
func (f *Frame) Column(name string) (Series, error) {
	i, ok := f.index[name]
	if !ok {
		return Series{}, core.NewColumnNotFoundError(name)
	}
	return f.cols[i], nil
}

// Take returns a new frame containing the given rows, in order
func (f *Frame) Take(rows []int) *Frame {
	out := &Frame{index: make(map[string]int, len(f.cols))}
	for _, col := range f.cols {
		out.index[col.Name] = len(out.cols)
		out.cols = append(out.cols, col.Take(rows))
	}
	return out
}

// Condition selects rows where every named column equals the given value
// (logical AND). It is evaluated directly against typed columns; there is
// no query-string construction.
type Condition map[string]Value

// Partition splits the frame into the rows matching cond and the row-identity
// complement. Rows whose condition attributes are missing or of a different
// type do not match and therefore land in the complement; the two halves
// always cover the frame exactly once.
func (f *Frame) Partition(cond Condition) (match, rest *Frame, err error) {
	columns := make(map[string]Series, len(cond))
	for name := range cond {
		col, err := f.Column(name)
		if err != nil {
			return nil, nil, err
		}
		columns[name] = col
	}

	n := f.NumRows()
	matchRows := make([]int, 0, n)
	restRows := make([]int, 0, n)
	for r := 0; r < n; r++ {
		ok := true
		for name, want := range cond {
			if !columns[name].Values[r].Equal(want) {
				ok = false
				break
			}
		}
		if ok {
			matchRows = append(matchRows, r)
		} else {
			restRows = append(restRows, r)
		}
	}

	return f.Take(matchRows), f.Take(restRows), nil
}
