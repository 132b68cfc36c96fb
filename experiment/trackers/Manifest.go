package trackers

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/goexp/experiment"
)

// Manifest tracks every generated experiment and saves all of them to a
// single gob-encoded file. The file can be read back with LoadManifest.
type Manifest struct {
	experiments []experiment.Experiment
	filename    string
}

// NewManifest returns a new Manifest which saves its data to filename
func NewManifest(filename string) *Manifest {
	return &Manifest{filename: filename}
}

// Track caches an experiment to be saved later
func (m *Manifest) Track(e experiment.Experiment) {
	m.experiments = append(m.experiments, e)
}

// Len returns the number of experiments tracked
func (m *Manifest) Len() int {
	return len(m.experiments)
}

// Save saves all tracked experiments to disk
func (m *Manifest) Save() error {
	if dir := filepath.Dir(m.filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: could not create directory: %w", err)
		}
	}

	file, err := os.Create(m.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer file.Close()

	exps := m.experiments
	if exps == nil {
		exps = []experiment.Experiment{}
	}

	en := gob.NewEncoder(file)
	if err = en.Encode(exps); err != nil {
		return fmt.Errorf("save: could not encode experiments: %w", err)
	}

	return file.Close()
}
