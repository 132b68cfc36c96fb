package experiment

import (
	"math"
	"testing"

	"github.com/samuelfneumann/goexp/spec"
	"github.com/stretchr/testify/assert"
)

func TestFormatArg(t *testing.T) {
	tests := []struct {
		name string
		v    spec.Value
		want string
	}{
		{"true", spec.Bool(true), "_flag_True"},
		{"false", spec.Bool(false), "_flag_False"},
		{"int", spec.Int(3), "_flag_3"},
		{"negative int", spec.Int(-3), "_flag_-3"},
		{"digit string", spec.String("7"), "_flag_7"},
		{"leading zeros", spec.String("007"), "_flag_007"},
		{"non-ascii digits", spec.String("١٢"), "_flag_١٢"},
		{"superscript digit", spec.String("x²"), "_flag_x²"},
		{"only superscript", spec.String("²"), "_flag_²"},
		{"float", spec.Float(0.1), "_flag_0.1000"},
		{"rounded float", spec.Float(0.00025), "_flag_0.0003"},
		{"whole float", spec.Float(2), "_flag_2.0000"},
		{"float string", spec.String("0.5"), "_flag_0.5000"},
		{"exponent string", spec.String("1e-3"), "_flag_0.0010"},
		{"nan", spec.Float(math.NaN()), "_flag_nan"},
		{"inf", spec.Float(math.Inf(-1)), "_flag_-inf"},
		{"string", spec.String("abc"), "_flag_abc"},
		{"empty string", spec.String(""), "_flag_"},
		{"none", spec.None(), "_flag_None"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, FormatArg("flag", test.v))
		})
	}
}

func TestFormatArgBoolBeforeFloat(t *testing.T) {
	// Booleans convert to floats, they must still render as booleans
	_, err := spec.Bool(true).AsFloat()
	assert.NoError(t, err)
	assert.Equal(t, "_adv_model_True", FormatArg("adv_model", spec.Bool(true)))
}
