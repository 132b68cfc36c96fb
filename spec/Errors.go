package spec

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Parse when -h or --help is given
var ErrHelp = errors.New("spec: help requested")

// ArgumentError is returned when command-line arguments cannot be
// parsed against a Schema.
type ArgumentError struct {
	Param string // Parameter the error refers to, may be empty
	Msg   string
}

// Error implements the error interface
func (a *ArgumentError) Error() string {
	if a.Param == "" {
		return "argument error: " + a.Msg
	}
	return fmt.Sprintf("argument -%v: %v", a.Param, a.Msg)
}
