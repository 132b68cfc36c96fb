package experiment

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/goexp/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFactors(t *testing.T) {
	argv := []string{"-lr", "0.1", "-repeat", "3", "-batch", "32"}
	assert.Equal(t, []string{"lr", "batch"},
		ExtractFactors(argv, ReservedFlags...))
}

func TestExtractFactorsOrderAndDuplicates(t *testing.T) {
	argv := []string{"-gamma", "0.9", "-output", "out", "-lr", "0.1",
		"-gamma", "0.95"}
	assert.Equal(t, []string{"gamma", "lr", "gamma"},
		ExtractFactors(argv, ReservedFlags...))
}

func TestExtractFactorsNoReserved(t *testing.T) {
	argv := []string{"-repeat", "2", "-output", "out"}
	assert.Equal(t, []string{"repeat", "output"}, ExtractFactors(argv))
}

func TestExtractFactorsEmpty(t *testing.T) {
	assert.Empty(t, ExtractFactors(nil, ReservedFlags...))
	assert.Empty(t, ExtractFactors([]string{"-repeat", "4"},
		ReservedFlags...))
}

func TestExtractFactorsStripsOnePrefix(t *testing.T) {
	assert.Equal(t, []string{"-lr"}, ExtractFactors([]string{"--lr", "1"}))
}

func TestFactorsMatchParsedFlags(t *testing.T) {
	argv := []string{"-lr", "0.1", "-gamma", "0.9", "-repeat", "2"}
	args, err := spec.Parse(spec.DeepQ(), argv)
	require.NoError(t, err)

	for _, f := range ExtractFactors(argv, ReservedFlags...) {
		assert.True(t, args.Supplied(f), f)
	}

	_, name, err := Create(args, ExtractFactors(argv, ReservedFlags...),
		NewSampler(1))
	require.NoError(t, err)
	assert.Equal(t, "lr_0.1000_gamma_0.9000", name)
}

func TestDoubleDashFlagIsNotAFactor(t *testing.T) {
	_, err := spec.Parse(spec.DeepQ(), []string{"--lr", "0.1"})

	var argErr *spec.ArgumentError
	require.True(t, errors.As(err, &argErr), "have %v", err)
	assert.Contains(t, argErr.Error(), "--lr")
}
