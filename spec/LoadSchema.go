package spec

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// schemaFile is the YAML layout of a Schema
type schemaFile struct {
	Description string      `yaml:"description"`
	Params      []paramFile `yaml:"params"`
}

// paramFile is the YAML layout of a Param
type paramFile struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	NArgs   string    `yaml:"nargs"`
	Default yaml.Node `yaml:"default"`
	Metavar string    `yaml:"metavar"`
	Help    string    `yaml:"help"`
}

// LoadSchemaFile reads a YAML Schema from the file at path
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadSchemaFile: could not open schema: %w",
			err)
	}
	defer f.Close()

	s, err := LoadSchema(f)
	if err != nil {
		return nil, fmt.Errorf("loadSchemaFile: %v: %w", path, err)
	}
	return s, nil
}

// LoadSchema reads a YAML Schema from r. Parameters are registered in
// the order they appear in the document. For example:
//
//	description: Train DQN
//	params:
//	  - name: lr
//	    type: float
//	    nargs: "+"
//	    default: 0.00025
//	    help: Learning rate value OR range
//
// A parameter without nargs consumes exactly one value. A parameter
// without a default defaults to None.
func LoadSchema(r io.Reader) (*Schema, error) {
	var file schemaFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("loadSchema: could not decode schema: %w", err)
	}

	s := NewSchema(file.Description)
	for _, pf := range file.Params {
		nargs := NArgs(pf.NArgs)
		if pf.NArgs == "" {
			nargs = One
		}

		p := Param{
			Name:    pf.Name,
			Type:    Type(pf.Type),
			NArgs:   nargs,
			Metavar: pf.Metavar,
			Help:    pf.Help,
		}
		if !p.Type.valid() {
			return nil, fmt.Errorf("loadSchema: parameter %v has unknown "+
				"type %q", pf.Name, pf.Type)
		}

		def, err := decodeDefault(p.Type, &pf.Default)
		if err != nil {
			return nil, fmt.Errorf("loadSchema: parameter %v: %w", pf.Name,
				err)
		}
		p.Default = def

		if err := s.Add(p); err != nil {
			return nil, fmt.Errorf("loadSchema: %w", err)
		}
	}

	return s, nil
}

// decodeDefault converts the YAML default of a parameter into a scalar
// Value of type t.
func decodeDefault(t Type, node *yaml.Node) (Value, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return None(), nil
	}
	if node.Kind != yaml.ScalarNode {
		return Value{}, fmt.Errorf("default must be a scalar")
	}

	switch t {
	case BoolType:
		var b bool
		if err := node.Decode(&b); err != nil {
			// Fall back to the command-line spelling of booleans
			parsed, perr := ParseBool(node.Value)
			if perr != nil {
				return Value{}, fmt.Errorf("invalid bool default %q",
					node.Value)
			}
			b = parsed
		}
		return Bool(b), nil

	case IntType:
		var i int
		if err := node.Decode(&i); err != nil {
			return Value{}, fmt.Errorf("invalid int default %q", node.Value)
		}
		return Int(i), nil

	case FloatType:
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("invalid float default %q",
				node.Value)
		}
		return Float(f), nil
	}

	return String(node.Value), nil
}
