package pattern

import "strconv"

// Value is a single typed capture value. The zero Value is an empty
// string-kind value.
type Value struct {
	kind Kind
	text string
	num  int64
	unum uint64
	fnum float64
}

// String returns a string-kind Value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Int returns an int-kind Value.
func Int(i int64) Value {
	return Value{kind: KindInt, text: strconv.FormatInt(i, 10), num: i}
}

// Uint returns a uint-kind Value.
func Uint(u uint64) Value {
	return Value{kind: KindUint, text: strconv.FormatUint(u, 10), unum: u}
}

// Float returns a float-kind Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, text: strconv.FormatFloat(f, 'f', -1, 64), fnum: f}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the value's textual form. For values extracted by Match
// this is the matched path text, unmodified.
func (v Value) String() string {
	return v.text
}

// Int returns the parsed integer for int-kind values, 0 otherwise.
func (v Value) Int() int64 {
	return v.num
}

// Uint returns the parsed integer for uint-kind values, 0 otherwise.
func (v Value) Uint() uint64 {
	return v.unum
}

// Float returns the parsed number for float-kind values, 0 otherwise.
func (v Value) Float() float64 {
	return v.fnum
}

// Values maps capture names to their values for one matched or
// formatted path.
type Values map[string]Value

// convert builds a Value of the given kind from matched text.
func convert(kind Kind, text string) (Value, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindInt, text: text, num: n}, nil
	case KindUint:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindUint, text: text, unum: u}, nil
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, text: text, fnum: f}, nil
	default:
		return Value{kind: KindString, text: text}, nil
	}
}
