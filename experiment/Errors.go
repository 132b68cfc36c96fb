package experiment

import (
	"fmt"

	"github.com/samuelfneumann/goexp/spec"
)

// InvalidRangeError is returned when a range has a minimum larger than
// its maximum
type InvalidRangeError struct {
	Low  float64
	High float64
}

// Error implements the error interface
func (i *InvalidRangeError) Error() string {
	return fmt.Sprintf("Incorrect argument: %v > %v", spec.FormatFloat(i.Low),
		spec.FormatFloat(i.High))
}

// ArityError is returned when a parameter is given a number of values
// other than one value or a [min, max] pair
type ArityError struct {
	Name string
	Len  int
}

// Error implements the error interface
func (a *ArityError) Error() string {
	return fmt.Sprintf("%q must be a single value or range of min max "+
		"values: have %d values", a.Name, a.Len)
}
