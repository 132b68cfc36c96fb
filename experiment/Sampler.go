package experiment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler samples values uniformly from intervals
type Sampler interface {
	// Uniform returns a value drawn uniformly at random from
	// [min, max]
	Uniform(min, max float64) float64
}

// UniformSampler is a seeded Sampler. Two UniformSamplers with the same
// seed produce the same sequence of samples.
type UniformSampler struct {
	seed uint64
	src  rand.Source
}

// NewSampler returns a new UniformSampler with the argument seed
func NewSampler(seed uint64) *UniformSampler {
	return &UniformSampler{
		seed: seed,
		src:  rand.NewSource(seed),
	}
}

// Uniform returns a value drawn uniformly at random from [min, max].
// If min == max, min is returned.
func (u *UniformSampler) Uniform(min, max float64) float64 {
	dist := distuv.Uniform{Min: min, Max: max, Src: u.src}
	return dist.Rand()
}

// Seed returns the seed the sampler was created with
func (u *UniformSampler) Seed() uint64 {
	return u.seed
}
