package spec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"none", None(), "None"},
		{"true", Bool(true), "True"},
		{"false", Bool(false), "False"},
		{"int", Int(-12), "-12"},
		{"float", Float(0.1), "0.1"},
		{"whole float", Float(3), "3.0"},
		{"small float", Float(1e-5), "1e-05"},
		{"nan", Float(math.NaN()), "nan"},
		{"string", String("abc"), "abc"},
		{"range", Range(0.5, 2), "[0.5, 2.0]"},
		{"list", List(Int(1), String("a"), Float(2.5)), "[1, a, 2.5]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.v.String())
		})
	}
}

func TestValueAsFloat(t *testing.T) {
	f, err := Int(3).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = String(" 0.25 ").AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	f, err = Bool(true).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	_, err = String("abc").AsFloat()
	assert.Error(t, err)

	_, err = None().AsFloat()
	assert.Error(t, err)

	_, err = Range(0, 1).AsFloat()
	assert.Error(t, err)
}

func TestValueLen(t *testing.T) {
	assert.Equal(t, 0, None().Len())
	assert.Equal(t, 1, Int(1).Len())
	assert.Equal(t, 2, Range(0, 1).Len())
	assert.Equal(t, 3, List(Int(1), Int(2), Int(3)).Len())
	assert.Equal(t, 0, List().Len())
}

func TestValueItemsIsCopy(t *testing.T) {
	v := List(Int(1), Int(2))
	items := v.Items()
	items[0] = Int(10)

	assert.True(t, v.Equal(List(Int(1), Int(2))))
}

func TestValueJSON(t *testing.T) {
	values := []Value{
		None(),
		Bool(true),
		Int(32),
		Float(0.01),
		Float(1),
		String("experiments"),
		Range(0.001, 0.1),
		List(Int(1), Int(2), Int(3)),
		List(),
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err, "marshal %v", v)

		var got Value
		require.NoError(t, json.Unmarshal(data, &got), "unmarshal %s", data)
		assert.True(t, v.Equal(got), "want %v, have %v (%s)", v, got, data)
	}
}

func TestValueJSONKeepsFloatKind(t *testing.T) {
	data, err := json.Marshal(Float(2))
	require.NoError(t, err)
	assert.Equal(t, "2.0", string(data))

	var v Value
	require.NoError(t, json.Unmarshal([]byte("7"), &v))
	assert.Equal(t, IntKind, v.Kind())
}

func TestValueJSONRangeLayout(t *testing.T) {
	data, err := json.Marshal(Range(0.001, 0.1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Min": 0.001, "Max": 0.1}`, string(data))

	data, err = json.Marshal(List(Float(0.001), Float(0.1)))
	require.NoError(t, err)
	assert.Equal(t, "[0.001,0.1]", string(data))
}

func TestValueJSONRejectsNaN(t *testing.T) {
	_, err := json.Marshal(Float(math.NaN()))
	assert.Error(t, err)
}

func TestValueGob(t *testing.T) {
	in := []Value{Int(4), Float(0.5), String("x"), Bool(false), None()}

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(in))

	var out []Value
	require.NoError(t, gob.NewDecoder(&buf).Decode(&out))
	require.Len(t, out, len(in))
	for i := range in {
		assert.True(t, in[i].Equal(out[i]), "index %d: %v != %v", i, in[i],
			out[i])
	}
}
