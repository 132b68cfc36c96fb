package experiment

import (
	"fmt"

	"github.com/samuelfneumann/goexp/spec"
	"github.com/samuelfneumann/goexp/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// Resolve turns the raw value of the parameter name into a concrete
// value:
//
//	None			->	None
//	scalar			->	the scalar, unchanged
//	[x]			->	x
//	[min, max] or Range	->	a Float sampled uniformly from [min, max]
//
// Lists of any other length return an *ArityError naming the
// parameter, and ranges with min > max return an *InvalidRangeError.
// Only sampling consumes randomness from s.
func Resolve(v spec.Value, name string, s Sampler) (spec.Value, error) {
	switch v.Kind() {
	case spec.RangeKind:
		return sample(v.Interval(), s)

	case spec.ListKind:
		items := v.Items()

		switch len(items) {
		case 1:
			return items[0], nil

		case 2:
			min, err := items[0].AsFloat()
			if err != nil {
				return spec.Value{}, fmt.Errorf("resolve: %v: %w", name, err)
			}
			max, err := items[1].AsFloat()
			if err != nil {
				return spec.Value{}, fmt.Errorf("resolve: %v: %w", name, err)
			}
			return sample(r1.Interval{Min: min, Max: max}, s)
		}

		return spec.Value{}, &ArityError{Name: name, Len: len(items)}
	}

	// None and scalars
	return v, nil
}

// sample draws a Float uniformly from the closed interval i. Samples
// are clipped to i.
func sample(i r1.Interval, s Sampler) (spec.Value, error) {
	if !floatutils.Valid(i) {
		return spec.Value{}, &InvalidRangeError{Low: i.Min, High: i.Max}
	}
	return spec.Float(floatutils.ClipInterval(s.Uniform(i.Min, i.Max), i)), nil
}
