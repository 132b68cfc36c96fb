package spec

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Param declares a single hyperparameter which can be set on the
// command line with the flag -Name.
type Param struct {
	Name    string
	Type    Type
	NArgs   NArgs
	Default Value
	Metavar string
	Help    string
}

// Validate returns an error describing whether or not the Param is a
// valid declaration.
func (p Param) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("validate: parameter must have a name")
	}
	if strings.HasPrefix(p.Name, "-") {
		return fmt.Errorf("validate: parameter name %q must not start with "+
			"the flag prefix", p.Name)
	}
	if p.Name == "h" || p.Name == "help" {
		return fmt.Errorf("validate: parameter name %q is reserved", p.Name)
	}
	if !p.Type.valid() {
		return fmt.Errorf("validate: parameter %v has unknown type %q",
			p.Name, string(p.Type))
	}
	if !p.NArgs.valid() {
		return fmt.Errorf("validate: parameter %v has unknown nargs %q",
			p.Name, string(p.NArgs))
	}
	return nil
}

// Schema is an ordered collection of hyperparameter declarations. The
// order that parameters are added in is the order that experiment
// configurations are assembled in.
type Schema struct {
	description string
	params      []Param
	index       map[string]int
}

// NewSchema returns a new, empty Schema
func NewSchema(description string) *Schema {
	return &Schema{
		description: description,
		index:       make(map[string]int),
	}
}

// Add registers a parameter with the Schema
func (s *Schema) Add(p Param) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if _, ok := s.index[p.Name]; ok {
		return fmt.Errorf("add: parameter %v already registered", p.Name)
	}

	s.index[p.Name] = len(s.params)
	s.params = append(s.params, p)
	return nil
}

// Params returns the registered parameters in registration order
func (s *Schema) Params() []Param {
	params := make([]Param, len(s.params))
	copy(params, s.params)
	return params
}

// Lookup returns the parameter registered under name
func (s *Schema) Lookup(name string) (Param, bool) {
	i, ok := s.index[name]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}

// Len returns the number of registered parameters
func (s *Schema) Len() int {
	return len(s.params)
}

// Description returns the description of the Schema
func (s *Schema) Description() string {
	return s.description
}

// Usage writes a help message describing every parameter to w
func (s *Schema) Usage(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if s.description != "" {
		fmt.Fprintf(tw, "%v\n\n", s.description)
	}
	fmt.Fprintln(tw, "Options:")
	fmt.Fprintln(tw, "  -h, --help\tshow this help message and exit")

	for _, p := range s.params {
		metavar := p.Metavar
		if metavar == "" {
			metavar = strings.ToUpper(p.Name)
		}

		var usage string
		switch p.NArgs {
		case Optional:
			usage = fmt.Sprintf("-%v [%v]", p.Name, metavar)
		case OneOrMore:
			usage = fmt.Sprintf("-%v %v [%v ...]", p.Name, metavar, metavar)
		default:
			usage = fmt.Sprintf("-%v %v", p.Name, metavar)
		}

		help := strings.ReplaceAll(p.Help, "\n", " ")
		fmt.Fprintf(tw, "  %v\t%v (default: %v)\n", usage, help, p.Default)
	}

	return tw.Flush()
}
