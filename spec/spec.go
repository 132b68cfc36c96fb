// Package spec implements hyperparameter specifications for experiments.
//
// A Schema declares the hyperparameters an experiment accepts, in the
// order they are registered. Parse reads command-line arguments against
// a Schema and produces raw Values: either scalars or ranges of values
// which are later resolved into concrete configurations by the
// experiment package.
package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// Type determines the type of the scalar values a parameter accepts
type Type string

const (
	BoolType   Type = "bool"
	IntType    Type = "int"
	FloatType  Type = "float"
	StringType Type = "string"
)

// ParseToken converts a single command-line token into a scalar Value
// of type t.
func (t Type) ParseToken(tok string) (Value, error) {
	switch t {
	case BoolType:
		b, err := ParseBool(tok)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil

	case IntType:
		i, err := strconv.Atoi(tok)
		if err != nil {
			return Value{}, &ArgumentError{
				Msg: fmt.Sprintf("invalid int value: %q", tok),
			}
		}
		return Int(i), nil

	case FloatType:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, &ArgumentError{
				Msg: fmt.Sprintf("invalid float value: %q", tok),
			}
		}
		return Float(f), nil

	case StringType:
		return String(tok), nil
	}

	return Value{}, fmt.Errorf("parseToken: no such type %q", string(t))
}

// valid returns whether t is one of the known types
func (t Type) valid() bool {
	switch t {
	case BoolType, IntType, FloatType, StringType:
		return true
	}
	return false
}

// NArgs determines how many command-line tokens a parameter consumes
type NArgs string

const (
	// One consumes exactly one token
	One NArgs = "1"

	// Optional consumes zero or one token. If the flag is given without
	// a token, the parameter is None.
	Optional NArgs = "?"

	// OneOrMore consumes at least one token. Two numeric tokens are
	// interpreted as a [min, max] range to sample from.
	OneOrMore NArgs = "+"
)

// valid returns whether n is one of the known arities
func (n NArgs) valid() bool {
	switch n {
	case One, Optional, OneOrMore:
		return true
	}
	return false
}

// ParseBool parses a boolean written on the command line. Accepted
// values (case-insensitive) are yes/true/t/y/1 and no/false/f/n/0.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "t", "y", "1":
		return true, nil
	case "no", "false", "f", "n", "0":
		return false, nil
	}
	return false, &ArgumentError{Msg: "Boolean value expected."}
}
