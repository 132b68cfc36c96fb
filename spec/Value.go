package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r1"
)

// Kind determines which variant a Value holds
type Kind int

const (
	NoneKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind

	// RangeKind holds a [min, max] interval to sample from
	RangeKind

	// ListKind holds raw values whose arity has not been checked yet
	ListKind
)

// String implements the fmt.Stringer interface
func (k Kind) String() string {
	switch k {
	case NoneKind:
		return "None"
	case BoolKind:
		return "Bool"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case StringKind:
		return "String"
	case RangeKind:
		return "Range"
	case ListKind:
		return "List"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a tagged union over the values a hyperparameter can take.
// The zero Value is None.
//
// Scalar Values (Bool, Int, Float, String) are fixed values. A Range
// Value describes an interval that a concrete value is uniformly
// sampled from. A List holds values given on the command line before
// they have been checked for a valid number of elements.
type Value struct {
	kind     Kind
	b        bool
	i        int
	f        float64
	s        string
	interval r1.Interval
	items    []Value
}

// None returns a Value denoting an omitted parameter
func None() Value { return Value{} }

// Bool returns a boolean Value
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Int returns an integer Value
func Int(i int) Value { return Value{kind: IntKind, i: i} }

// Float returns a floating point Value
func Float(f float64) Value { return Value{kind: FloatKind, f: f} }

// String returns a string Value
func String(s string) Value { return Value{kind: StringKind, s: s} }

// Range returns a Value which is resolved by sampling uniformly from
// the closed interval [min, max]. The bounds are stored as given; they
// are validated only when the Value is resolved.
func Range(min, max float64) Value {
	return Value{kind: RangeKind, interval: r1.Interval{Min: min, Max: max}}
}

// List returns a Value holding the argument values in order
func List(values ...Value) Value {
	items := make([]Value, len(values))
	copy(items, values)
	return Value{kind: ListKind, items: items}
}

// Kind returns the variant held by the Value
func (v Value) Kind() Kind { return v.kind }

// IsNone returns whether the Value is None
func (v Value) IsNone() bool { return v.kind == NoneKind }

// IsScalar returns whether the Value holds a single bool, int, float,
// or string
func (v Value) IsScalar() bool {
	switch v.kind {
	case BoolKind, IntKind, FloatKind, StringKind:
		return true
	}
	return false
}

// Bool returns the boolean held by the Value, or false if the Value
// does not hold a boolean
func (v Value) Bool() bool { return v.b }

// Int returns the integer held by the Value, or 0 if the Value does
// not hold an integer
func (v Value) Int() int { return v.i }

// Float returns the float held by the Value, or 0 if the Value does
// not hold a float
func (v Value) Float() float64 { return v.f }

// Str returns the string held by the Value, or "" if the Value does
// not hold a string
func (v Value) Str() string { return v.s }

// Interval returns the interval of a Range Value
func (v Value) Interval() r1.Interval { return v.interval }

// Items returns a copy of the elements of a List Value
func (v Value) Items() []Value {
	if v.items == nil {
		return nil
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// Len returns the number of elements of a List Value, 2 for a Range,
// 0 for None, and 1 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case NoneKind:
		return 0
	case RangeKind:
		return 2
	case ListKind:
		return len(v.items)
	}
	return 1
}

// AsFloat converts a scalar Value to a float64. Booleans convert to
// 0 or 1 and strings are parsed.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case IntKind:
		return float64(v.i), nil
	case FloatKind:
		return v.f, nil
	case BoolKind:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case StringKind:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, fmt.Errorf("asFloat: could not convert string to "+
				"float: %q", v.s)
		}
		return f, nil
	}
	return 0, fmt.Errorf("asFloat: cannot convert %v to float", v.kind)
}

// Equal returns whether two Values hold the same variant and contents
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case NoneKind:
		return true
	case BoolKind:
		return v.b == o.b
	case IntKind:
		return v.i == o.i
	case FloatKind:
		return v.f == o.f
	case StringKind:
		return v.s == o.s
	case RangeKind:
		return v.interval == o.interval
	case ListKind:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the generic textual form of the Value
func (v Value) String() string {
	switch v.kind {
	case NoneKind:
		return "None"
	case BoolKind:
		if v.b {
			return "True"
		}
		return "False"
	case IntKind:
		return strconv.Itoa(v.i)
	case FloatKind:
		return FormatFloat(v.f)
	case StringKind:
		return v.s
	case RangeKind:
		return fmt.Sprintf("[%v, %v]", FormatFloat(v.interval.Min),
			FormatFloat(v.interval.Max))
	case ListKind:
		elems := make([]string, len(v.items))
		for i, item := range v.items {
			elems[i] = item.String()
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	return fmt.Sprintf("%%!Value(%d)", int(v.kind))
}

// FormatFloat renders a float as the shortest decimal that represents
// it exactly, always including a fractional part or an exponent so
// that the text reads back as a float.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	var s string
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}

	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface. Scalars
// marshal to their natural JSON form, Lists to arrays, and Ranges to
// an object with Min and Max fields.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case NoneKind:
		return []byte("null"), nil
	case BoolKind:
		return json.Marshal(v.b)
	case IntKind:
		return json.Marshal(v.i)
	case FloatKind:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("marshalJSON: unsupported float value %v",
				v.f)
		}
		return []byte(FormatFloat(v.f)), nil
	case StringKind:
		return json.Marshal(v.s)
	case RangeKind:
		return json.Marshal(v.interval)
	case ListKind:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	}
	return nil, fmt.Errorf("marshalJSON: unknown kind %v", v.kind)
}

// UnmarshalJSON implements the json.Unmarshaler interface. JSON
// numbers without a fractional part or exponent decode to Int Values,
// all other numbers decode to Float Values.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	val, err := fromJSON(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// fromJSON converts a decoded JSON value into a Value
func fromJSON(raw interface{}) (Value, error) {
	switch r := raw.(type) {
	case nil:
		return None(), nil

	case bool:
		return Bool(r), nil

	case json.Number:
		text := r.String()
		if !strings.ContainsAny(text, ".eE") {
			if i, err := strconv.Atoi(text); err == nil {
				return Int(i), nil
			}
		}
		f, err := r.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("unmarshalJSON: %v", err)
		}
		return Float(f), nil

	case string:
		return String(r), nil

	case []interface{}:
		items := make([]Value, len(r))
		for i, elem := range r {
			item, err := fromJSON(elem)
			if err != nil {
				return Value{}, err
			}
			items[i] = item
		}
		return Value{kind: ListKind, items: items}, nil

	case map[string]interface{}:
		min, okMin := r["Min"].(json.Number)
		max, okMax := r["Max"].(json.Number)
		if !okMin || !okMax || len(r) != 2 {
			return Value{}, fmt.Errorf("unmarshalJSON: range must have " +
				"exactly the numeric fields Min and Max")
		}
		lo, err := min.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("unmarshalJSON: %v", err)
		}
		hi, err := max.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("unmarshalJSON: %v", err)
		}
		return Range(lo, hi), nil
	}

	return Value{}, fmt.Errorf("unmarshalJSON: unsupported JSON value %T",
		raw)
}

// GobEncode implements the gob.GobEncoder interface
func (v Value) GobEncode() ([]byte, error) {
	return v.MarshalJSON()
}

// GobDecode implements the gob.GobDecoder interface
func (v *Value) GobDecode(data []byte) error {
	return v.UnmarshalJSON(data)
}
