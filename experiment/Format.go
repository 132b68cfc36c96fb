package experiment

import (
	"math"
	"strconv"
	"unicode"

	"github.com/samuelfneumann/goexp/spec"
)

// FormatArg renders a resolved parameter as a token of an experiment
// name: Separator + name + Separator + value. Values are rendered as
// follows, checked in this order:
//
//	booleans			True or False
//	ints and digit-only strings	plain decimal
//	floats and numeric strings	four digits after the decimal point
//	anything else			the generic string form
func FormatArg(name string, v spec.Value) string {
	return Separator + name + Separator + formatValue(v)
}

// formatValue renders a value for use in an experiment name
func formatValue(v spec.Value) string {
	if v.Kind() == spec.BoolKind {
		return v.String()
	}

	if isInteger(v) {
		if v.Kind() == spec.IntKind {
			return strconv.Itoa(v.Int())
		}
		return v.Str()
	}

	if isFloat(v) {
		f, _ := v.AsFloat()
		return formatFixed(f)
	}

	return v.String()
}

// isInteger returns whether v is an int or a non-empty string made up
// of digits only
func isInteger(v spec.Value) bool {
	switch v.Kind() {
	case spec.IntKind:
		return true

	case spec.StringKind:
		s := v.Str()
		if s == "" {
			return false
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}
	return false
}

// isFloat returns whether v is a float or a string that parses as one
func isFloat(v spec.Value) bool {
	switch v.Kind() {
	case spec.FloatKind:
		return true

	case spec.StringKind:
		_, err := v.AsFloat()
		return err == nil
	}
	return false
}

// formatFixed renders f with four digits after the decimal point
func formatFixed(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}
