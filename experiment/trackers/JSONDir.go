package trackers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/goexp/experiment"
)

// ConfigFilename is the base name of the files JSONDir saves configs in
const ConfigFilename = "config"

// JSONDir tracks generated experiments and saves each in its own JSON
// file. Experiments are grouped by name:
//
//	dir/<name>/config1.json
//	dir/<name>/config2.json
//
// where the counter enumerates the repetitions sharing a name. Names
// must be local paths: a name that would place its files outside dir
// is not tracked, and Save reports it.
type JSONDir struct {
	dir    string
	counts map[string]int
	files  []trackedFile
	err    error
}

// trackedFile is an experiment waiting to be saved to filename
type trackedFile struct {
	filename string
	exp      experiment.Experiment
}

// NewJSONDir returns a new JSONDir which saves experiments under dir
func NewJSONDir(dir string) *JSONDir {
	return &JSONDir{
		dir:    dir,
		counts: make(map[string]int),
	}
}

// Track caches an experiment and assigns it the next filename for its
// experiment name
func (j *JSONDir) Track(e experiment.Experiment) {
	if !filepath.IsLocal(e.Name) {
		if j.err == nil {
			j.err = fmt.Errorf("track: experiment name %q escapes %v",
				e.Name, j.dir)
		}
		return
	}

	j.counts[e.Name]++
	filename := filepath.Join(j.dir, e.Name,
		fmt.Sprintf("%v%d.json", ConfigFilename, j.counts[e.Name]))

	j.files = append(j.files, trackedFile{filename: filename, exp: e})
}

// Filenames returns the files tracked experiments are saved in, in the
// order they were tracked
func (j *JSONDir) Filenames() []string {
	names := make([]string, len(j.files))
	for i, f := range j.files {
		names[i] = f.filename
	}
	return names
}

// Save writes every tracked experiment to its file. Nothing is written
// if an experiment could not be tracked.
func (j *JSONDir) Save() error {
	if j.err != nil {
		return fmt.Errorf("save: %w", j.err)
	}
	for _, f := range j.files {
		if err := writeJSON(f.filename, f.exp); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// writeJSON writes an experiment to filename as indented JSON
func writeJSON(filename string, e experiment.Experiment) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %v: %w", e.Name, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("could not write %v: %w", filename, err)
	}
	return nil
}
