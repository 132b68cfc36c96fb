package experiment

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/goexp/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSchema returns a Schema with a ranged float lr, a ranged int
// batch, and the reserved repeat and output parameters
func newSchema(t *testing.T) *spec.Schema {
	t.Helper()

	s := spec.NewSchema("test")
	params := []spec.Param{
		{Name: "lr", Type: spec.FloatType, NArgs: spec.OneOrMore,
			Default: spec.Float(0.1)},
		{Name: "batch", Type: spec.IntType, NArgs: spec.OneOrMore,
			Default: spec.Int(16)},
		{Name: "repeat", Type: spec.IntType, NArgs: spec.Optional,
			Default: spec.Int(1)},
		{Name: "output", Type: spec.StringType, NArgs: spec.One,
			Default: spec.String("out")},
	}
	for _, p := range params {
		require.NoError(t, s.Add(p))
	}
	return s
}

// parse parses argv against the test Schema and extracts its factors
func parse(t *testing.T, argv ...string) (*spec.Args, []string) {
	t.Helper()

	args, err := spec.Parse(newSchema(t), argv)
	require.NoError(t, err)
	return args, ExtractFactors(argv, ReservedFlags...)
}

func TestGenerateEndToEnd(t *testing.T) {
	args, factors := parse(t, "-lr", "0.01", "0.01", "-batch", "32",
		"-repeat", "2")

	repeat, err := RepeatCount(args)
	require.NoError(t, err)
	require.Equal(t, 2, repeat)

	exps, err := Generate(args, factors, repeat, NewSampler(0))
	require.NoError(t, err)
	require.Len(t, exps, 2)

	for i, exp := range exps {
		lr, err := exp.Config.Float("lr")
		require.NoError(t, err)
		assert.Equal(t, 0.01, lr)

		batch, err := exp.Config.Int("batch")
		require.NoError(t, err)
		assert.Equal(t, 32, batch)

		assert.Equal(t, "lr_0.0100_batch_32", exp.Name)
		assert.Equal(t, i+1, exp.Repetition)
	}
}

func TestCreateDefaultName(t *testing.T) {
	args, factors := parse(t, "-repeat", "3", "-output", "somewhere")
	require.Empty(t, factors)

	config, name, err := Create(args, factors, NewSampler(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultName, name)

	out, err := config.Str("output")
	require.NoError(t, err)
	assert.Equal(t, "somewhere", out)
}

func TestCreateUsesRegistrationOrder(t *testing.T) {
	args, factors := parse(t, "-batch", "64", "-lr", "0.5")
	require.Equal(t, []string{"batch", "lr"}, factors)

	config, name, err := Create(args, factors, NewSampler(0))
	require.NoError(t, err)
	assert.Equal(t, "lr_0.5000_batch_64", name)
	assert.Equal(t, []string{"lr", "batch", "repeat", "output"},
		config.Names())
}

func TestCreateResolvesAllParameters(t *testing.T) {
	args, factors := parse(t, "-lr", "0.2")

	config, name, err := Create(args, factors, NewSampler(0))
	require.NoError(t, err)
	assert.Equal(t, "lr_0.2000", name)
	assert.Equal(t, 4, config.Len())

	batch, err := config.Int("batch")
	require.NoError(t, err)
	assert.Equal(t, 16, batch)
}

func TestGeneratorResamplesRanges(t *testing.T) {
	args, factors := parse(t, "-lr", "0", "1", "-repeat", "5")

	g := NewGenerator(args, factors, 5, NewSampler(7))
	seen := map[float64]bool{}
	names := map[string]bool{}
	for g.Next() {
		lr, err := g.Experiment().Config.Float("lr")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, lr, 0.0)
		assert.LessOrEqual(t, lr, 1.0)
		seen[lr] = true
		names[g.Experiment().Name] = true
	}
	require.NoError(t, g.Err())
	assert.Len(t, seen, 5)
	assert.Greater(t, len(names), 1)
}

func TestGeneratorIsFiniteAndNotRestartable(t *testing.T) {
	args, factors := parse(t)

	g := NewGenerator(args, factors, 3, NewSampler(0))
	assert.Equal(t, 3, g.Remaining())

	n := 0
	for g.Next() {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, g.Remaining())
	assert.False(t, g.Next())
	assert.Equal(t, Experiment{}, g.Experiment())
	assert.NoError(t, g.Err())
}

func TestGeneratorIndependentConfigs(t *testing.T) {
	args, factors := parse(t, "-lr", "0.1")

	exps, err := Generate(args, factors, 2, NewSampler(0))
	require.NoError(t, err)
	require.Len(t, exps, 2)

	assert.True(t, exps[0].Config.Equal(exps[1].Config))
	exps[0].Config.Names()[0] = "changed"
	assert.Equal(t, "lr", exps[1].Config.Names()[0])
}

func TestGeneratorZeroRepeat(t *testing.T) {
	args, factors := parse(t)

	exps, err := Generate(args, factors, 0, NewSampler(0))
	require.NoError(t, err)
	assert.Empty(t, exps)

	_, err = Generate(args, factors, -1, NewSampler(0))
	assert.Error(t, err)
}

func TestGenerateInvalidRange(t *testing.T) {
	args, factors := parse(t, "-lr", "1", "0")

	exps, err := Generate(args, factors, 3, NewSampler(0))
	assert.Nil(t, exps)

	var rangeErr *InvalidRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 1.0, rangeErr.Low)
	assert.Equal(t, 0.0, rangeErr.High)

	g := NewGenerator(args, factors, 3, NewSampler(0))
	assert.False(t, g.Next())
	assert.Error(t, g.Err())
	assert.False(t, g.Next())
}

func TestGenerateArityError(t *testing.T) {
	args, factors := parse(t, "-batch", "1", "2", "3")

	_, err := Generate(args, factors, 1, NewSampler(0))
	var arityErr *ArityError
	require.True(t, errors.As(err, &arityErr))
	assert.Equal(t, "batch", arityErr.Name)
}

func TestGenerateSeeded(t *testing.T) {
	args, factors := parse(t, "-lr", "0.001", "0.1", "-batch", "16", "128")

	a, err := Generate(args, factors, 4, NewSampler(99))
	require.NoError(t, err)
	b, err := Generate(args, factors, 4, NewSampler(99))
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.True(t, a[i].Config.Equal(b[i].Config))
	}
}

func TestRepeatCount(t *testing.T) {
	args, _ := parse(t, "-repeat", "4")
	n, err := RepeatCount(args)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	args, _ = parse(t)
	n, err = RepeatCount(args)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	args, _ = parse(t, "-repeat")
	_, err = RepeatCount(args)
	assert.Error(t, err)

	args, _ = parse(t, "-repeat", "-2")
	_, err = RepeatCount(args)
	assert.Error(t, err)

	s := spec.NewSchema("")
	noRepeat, err := spec.Parse(s, nil)
	require.NoError(t, err)
	n, err = RepeatCount(noRepeat)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
