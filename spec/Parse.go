package spec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Args holds the raw, unresolved value of every parameter in a Schema
// after parsing the command line.
type Args struct {
	schema   *Schema
	values   map[string]Value
	supplied map[string]bool
}

// Schema returns the Schema the Args were parsed against
func (a *Args) Schema() *Schema {
	return a.schema
}

// Get returns the raw value of the named parameter. If the parameter
// was not given on the command line, its default is returned.
func (a *Args) Get(name string) (Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Supplied returns whether the named parameter was explicitly given on
// the command line
func (a *Args) Supplied(name string) bool {
	return a.supplied[name]
}

// Params returns the parameters of the Schema in registration order
func (a *Args) Params() []Param {
	return a.schema.Params()
}

// Parse parses command-line arguments against a Schema. The argv slice
// should not include the program name.
//
// Each flag is a single dash followed by a parameter name, and is
// followed by the values of that parameter. The only double-dash flag
// is --help. Negative numbers are treated as values, not flags. If a
// flag is repeated, the last occurrence wins.
func Parse(s *Schema, argv []string) (*Args, error) {
	args := &Args{
		schema:   s,
		values:   make(map[string]Value, s.Len()),
		supplied: make(map[string]bool),
	}
	for _, p := range s.params {
		args.values[p.Name] = p.Default
	}

	for i := 0; i < len(argv); {
		tok := argv[i]
		if !IsFlag(tok) {
			return nil, &ArgumentError{
				Msg: fmt.Sprintf("unrecognized argument: %v", tok),
			}
		}

		if tok == "-h" || tok == "--help" {
			return nil, ErrHelp
		}

		// Parameter names never start with a dash, so --name is rejected
		p, ok := s.Lookup(strings.TrimPrefix(tok, "-"))
		if !ok {
			return nil, &ArgumentError{
				Msg: fmt.Sprintf("unrecognized argument: %v", tok),
			}
		}

		// Collect the values following the flag
		j := i + 1
		for j < len(argv) && !IsFlag(argv[j]) {
			j++
		}

		v, err := parseValues(p, argv[i+1:j])
		if err != nil {
			var argErr *ArgumentError
			if errors.As(err, &argErr) && argErr.Param == "" {
				argErr.Param = p.Name
			}
			return nil, err
		}

		args.values[p.Name] = v
		args.supplied[p.Name] = true
		i = j
	}

	return args, nil
}

// IsFlag returns whether a command-line token names a flag rather than
// a value. Negative numbers are values.
func IsFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return false
	}
	return true
}

// parseValues converts the tokens given for a parameter into a Value
// according to the parameter's type and arity.
func parseValues(p Param, tokens []string) (Value, error) {
	switch p.NArgs {
	case One:
		if len(tokens) != 1 {
			return Value{}, &ArgumentError{Msg: "expected one argument"}
		}

	case Optional:
		if len(tokens) > 1 {
			return Value{}, &ArgumentError{
				Msg: "expected at most one argument",
			}
		}
		if len(tokens) == 0 {
			return None(), nil
		}

	case OneOrMore:
		if len(tokens) == 0 {
			return Value{}, &ArgumentError{
				Msg: "expected at least one argument",
			}
		}
	}

	values := make([]Value, len(tokens))
	for i, tok := range tokens {
		v, err := p.Type.ParseToken(tok)
		if err != nil {
			return Value{}, err
		}
		values[i] = v
	}

	switch p.NArgs {
	case Optional:
		return values[0], nil

	case OneOrMore:
		if len(values) == 2 && numeric(values[0]) && numeric(values[1]) {
			lo, _ := values[0].AsFloat()
			hi, _ := values[1].AsFloat()
			return Range(lo, hi), nil
		}
	}

	return List(values...), nil
}

// numeric returns whether a Value holds a number
func numeric(v Value) bool {
	return v.kind == IntKind || v.kind == FloatKind
}
