// Package trackers implements Trackers, which keep track of generated
// experiments and save them to disk.
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samuelfneumann/goexp/experiment"
)

// Tracker keeps track of experiments as they are generated and saves
// them once generation has finished
type Tracker interface {
	Track(e experiment.Experiment)
	Save() error
}

// LoadManifest loads and returns the experiments saved by a Manifest
// Tracker
func LoadManifest(filename string) ([]experiment.Experiment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadManifest: could not open data file: %w",
			err)
	}
	defer file.Close()

	var exps []experiment.Experiment
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&exps); err != nil {
		return nil, fmt.Errorf("loadManifest: could not decode data: %w", err)
	}

	return exps, nil
}
