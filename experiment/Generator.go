package experiment

import (
	"fmt"

	"github.com/samuelfneumann/goexp/spec"
)

// Generator produces repeat experiments from the same arguments, one
// at a time. Ranged parameters are sampled again for each experiment.
//
// A Generator cannot be restarted. Once it is exhausted, or once an
// experiment could not be created, Next returns false. Usage mirrors
// bufio.Scanner:
//
//	g := NewGenerator(args, factors, repeat, sampler)
//	for g.Next() {
//		exp := g.Experiment()
//		...
//	}
//	if err := g.Err(); err != nil {
//		...
//	}
type Generator struct {
	args    *spec.Args
	factors []string
	sampler Sampler

	repeat   int
	produced int
	current  Experiment
	err      error
	done     bool
}

// NewGenerator returns a new Generator of repeat experiments. Negative
// values of repeat produce no experiments.
func NewGenerator(args *spec.Args, factors []string, repeat int,
	s Sampler) *Generator {
	f := make([]string, len(factors))
	copy(f, factors)

	return &Generator{
		args:    args,
		factors: f,
		sampler: s,
		repeat:  repeat,
	}
}

// Next creates the next experiment. It returns false when all
// experiments have been produced or when an error occurred.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if g.produced >= g.repeat {
		g.done = true
		g.current = Experiment{}
		return false
	}

	config, name, err := Create(g.args, g.factors, g.sampler)
	if err != nil {
		g.err = fmt.Errorf("next: repetition %d: %w", g.produced+1, err)
		g.done = true
		g.current = Experiment{}
		return false
	}

	g.produced++
	g.current = Experiment{Config: config, Name: name, Repetition: g.produced}
	return true
}

// Experiment returns the experiment created by the last call to Next
func (g *Generator) Experiment() Experiment {
	return g.current
}

// Err returns the error that stopped the Generator, if any
func (g *Generator) Err() error {
	return g.err
}

// Remaining returns the number of experiments left to produce
func (g *Generator) Remaining() int {
	if g.done || g.repeat <= g.produced {
		return 0
	}
	return g.repeat - g.produced
}

// Generate creates all repeat experiments at once. If any experiment
// cannot be created, no experiments are returned.
func Generate(args *spec.Args, factors []string, repeat int,
	s Sampler) ([]Experiment, error) {
	if repeat < 0 {
		return nil, fmt.Errorf("generate: cannot repeat experiments %d "+
			"times", repeat)
	}

	exps := make([]Experiment, 0, repeat)
	g := NewGenerator(args, factors, repeat, s)
	for g.Next() {
		exps = append(exps, g.Experiment())
	}
	if err := g.Err(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return exps, nil
}
