package experiment

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samuelfneumann/goexp/spec"
)

// Config is a resolved configuration of an experiment: a mapping from
// parameter name to a single concrete value. Parameters are kept in
// the order they were registered in the Schema.
//
// A Config cannot be modified once created.
type Config struct {
	names  []string
	values map[string]spec.Value
}

// newConfig returns an empty Config with room for n parameters
func newConfig(n int) Config {
	return Config{
		names:  make([]string, 0, n),
		values: make(map[string]spec.Value, n),
	}
}

// set sets the value of a parameter, appending new parameters
func (c *Config) set(name string, v spec.Value) {
	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}
	c.values[name] = v
}

// Get returns the value of the named parameter
func (c Config) Get(name string) (spec.Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Names returns the parameter names in order
func (c Config) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of parameters in the Config
func (c Config) Len() int {
	return len(c.names)
}

// Each calls fn on every parameter in order
func (c Config) Each(fn func(name string, v spec.Value)) {
	for _, name := range c.names {
		fn(name, c.values[name])
	}
}

// Float returns the value of a numeric parameter as a float64
func (c Config) Float(name string) (float64, error) {
	v, err := c.lookup(name)
	if err != nil {
		return 0, err
	}
	if k := v.Kind(); k != spec.FloatKind && k != spec.IntKind {
		return 0, fmt.Errorf("float: parameter %v is %v, not numeric", name, k)
	}
	return v.AsFloat()
}

// Int returns the value of an int parameter
func (c Config) Int(name string) (int, error) {
	v, err := c.lookup(name)
	if err != nil {
		return 0, err
	}
	if v.Kind() != spec.IntKind {
		return 0, fmt.Errorf("int: parameter %v is %v, not Int", name,
			v.Kind())
	}
	return v.Int(), nil
}

// Bool returns the value of a bool parameter
func (c Config) Bool(name string) (bool, error) {
	v, err := c.lookup(name)
	if err != nil {
		return false, err
	}
	if v.Kind() != spec.BoolKind {
		return false, fmt.Errorf("bool: parameter %v is %v, not Bool", name,
			v.Kind())
	}
	return v.Bool(), nil
}

// Str returns the value of a string parameter
func (c Config) Str(name string) (string, error) {
	v, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	if v.Kind() != spec.StringKind {
		return "", fmt.Errorf("str: parameter %v is %v, not String", name,
			v.Kind())
	}
	return v.Str(), nil
}

// lookup returns the value of a parameter or an error if there is no
// such parameter
func (c Config) lookup(name string) (spec.Value, error) {
	v, ok := c.values[name]
	if !ok {
		return spec.Value{}, fmt.Errorf("lookup: no such parameter %v", name)
	}
	return v, nil
}

// Equal returns whether two Configs hold the same parameters in the
// same order with equal values
func (c Config) Equal(o Config) bool {
	if len(c.names) != len(o.names) {
		return false
	}
	for i, name := range c.names {
		if o.names[i] != name || !c.values[name].Equal(o.values[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON implements the json.Marshaler interface. Parameters are
// written in order.
func (c Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.values[name])
		if err != nil {
			return nil, fmt.Errorf("marshalJSON: parameter %v: %w", name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The order
// of the keys in the JSON object is kept.
func (c *Config) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("unmarshalJSON: config must be a JSON object")
	}

	config := newConfig(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unmarshalJSON: expected parameter name, "+
				"have %v", tok)
		}

		var v spec.Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("unmarshalJSON: parameter %v: %w", name, err)
		}
		config.set(name, v)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = config
	return nil
}

// GobEncode implements the gob.GobEncoder interface
func (c Config) GobEncode() ([]byte, error) {
	return c.MarshalJSON()
}

// GobDecode implements the gob.GobDecoder interface
func (c *Config) GobDecode(data []byte) error {
	return c.UnmarshalJSON(data)
}
