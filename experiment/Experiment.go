// Package experiment implements functionality for generating
// experiments from hyperparameter specifications.
//
// Each experiment is a resolved Config, in which every parameter holds
// a single concrete value, together with a human-readable name built
// from the values of the experiment's factors. Factors are the
// hyperparameters explicitly given on the command line. Parameters
// given as a [min, max] range are sampled uniformly, and are sampled
// again for each repetition of an experiment.
package experiment

import "encoding/json"

// Names of the control flags which never become factors
const (
	RepeatFlag = "repeat"
	OutputFlag = "output"
)

// ReservedFlags lists the flags excluded from the factors of an
// experiment
var ReservedFlags = []string{RepeatFlag, OutputFlag}

const (
	// DefaultName names experiments that have no factors
	DefaultName = "default"

	// Separator separates factor names and values in experiment names
	Separator = "_"

	// FlagPrefix starts every flag on the command line
	FlagPrefix = "-"
)

// Experiment is a single generated experiment
type Experiment struct {
	Config Config
	Name   string

	// Repetition counts the experiments produced by a generation run,
	// starting at 1
	Repetition int
}

// experimentJSON is the JSON layout of an Experiment
type experimentJSON struct {
	Name       string `json:"name"`
	Repetition int    `json:"repetition"`
	Config     Config `json:"config"`
}

// MarshalJSON implements the json.Marshaler interface
func (e Experiment) MarshalJSON() ([]byte, error) {
	return json.Marshal(experimentJSON{
		Name:       e.Name,
		Repetition: e.Repetition,
		Config:     e.Config,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (e *Experiment) UnmarshalJSON(data []byte) error {
	var exp experimentJSON
	if err := json.Unmarshal(data, &exp); err != nil {
		return err
	}

	*e = Experiment{Config: exp.Config, Name: exp.Name,
		Repetition: exp.Repetition}
	return nil
}
