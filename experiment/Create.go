package experiment

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/goexp/spec"
)

// Create resolves every parameter in args into a Config and builds the
// name of the experiment from the parameters listed in factors.
//
// Parameters are resolved, and factors added to the name, in the order
// the parameters were registered in the Schema of args, not the order
// of factors. If no factor names a parameter, the experiment is named
// DefaultName.
func Create(args *spec.Args, factors []string, s Sampler) (Config, string,
	error) {
	isFactor := make(map[string]bool, len(factors))
	for _, f := range factors {
		isFactor[f] = true
	}

	params := args.Params()
	config := newConfig(len(params))
	var name strings.Builder

	for _, p := range params {
		raw, _ := args.Get(p.Name)
		v, err := Resolve(raw, p.Name, s)
		if err != nil {
			return Config{}, "", fmt.Errorf("create: %w", err)
		}
		config.set(p.Name, v)

		if isFactor[p.Name] {
			name.WriteString(FormatArg(p.Name, v))
		}
	}

	id := strings.TrimPrefix(name.String(), Separator)
	if id == "" {
		id = DefaultName
	}

	return config, id, nil
}

// RepeatCount returns the number of repetitions requested by the
// RepeatFlag parameter of args. If the Schema has no such parameter,
// a single repetition is requested.
func RepeatCount(args *spec.Args) (int, error) {
	v, ok := args.Get(RepeatFlag)
	if !ok {
		return 1, nil
	}
	if v.Kind() == spec.ListKind && v.Len() == 1 {
		v = v.Items()[0]
	}

	if v.Kind() != spec.IntKind {
		return 0, fmt.Errorf("repeatCount: -%v must be an integer, have %v",
			RepeatFlag, v)
	}
	if v.Int() < 0 {
		return 0, fmt.Errorf("repeatCount: -%v must be non-negative, have %v",
			RepeatFlag, v.Int())
	}
	return v.Int(), nil
}
