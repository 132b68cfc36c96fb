package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/samuelfneumann/goexp/experiment"
	"github.com/samuelfneumann/goexp/experiment/trackers"
	"github.com/samuelfneumann/goexp/spec"
	"github.com/samuelfneumann/goexp/utils/progressbar"
)

// Environment variables configuring the generator
const (
	envSchema    = "GOEXP_SCHEMA"
	envSeed      = "GOEXP_SEED"
	envLogLevel  = "GOEXP_LOG_LEVEL"
	envLogFormat = "GOEXP_LOG_FORMAT"
)

// ManifestFilename is the file under the output path that all
// generated experiments are saved to
const ManifestFilename = "manifest.gob"

// ExitError is an error that carries the exit code of the program
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "err", err)
	}

	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.Getenv); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// settings holds the configuration read from the environment
type settings struct {
	schemaPath string
	seed       uint64
	logLevel   string
	logFormat  string
}

// loadSettings reads the generator configuration from the environment
func loadSettings(getenv func(string) string) (settings, error) {
	s := settings{
		schemaPath: getenv(envSchema),
		seed:       uint64(time.Now().UnixNano()),
		logLevel:   getenv(envLogLevel),
		logFormat:  getenv(envLogFormat),
	}

	if seed := getenv(envSeed); seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return settings{}, fmt.Errorf("invalid %v %q: must be a "+
				"non-negative integer", envSeed, seed)
		}
		s.seed = parsed
	}

	switch s.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return settings{}, fmt.Errorf("invalid %v %q: must be 'debug', "+
			"'info', 'warn', or 'error'", envLogLevel, s.logLevel)
	}

	switch s.logFormat {
	case "", "text", "json":
	default:
		return settings{}, fmt.Errorf("invalid %v %q: must be 'text' or "+
			"'json'", envLogFormat, s.logFormat)
	}

	return s, nil
}

// run generates the experiments described by argv, writing one JSON
// line per experiment to stdout. Logs and progress go to stderr.
func run(stdout, stderr io.Writer, argv []string,
	getenv func(string) string) error {
	conf, err := loadSettings(getenv)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger := newLogger(conf.logLevel, conf.logFormat, stderr)

	schema := spec.DeepQ()
	if conf.schemaPath != "" {
		schema, err = spec.LoadSchemaFile(conf.schemaPath)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		logger.Debug("loaded schema", "path", conf.schemaPath,
			"params", schema.Len())
	}

	args, err := spec.Parse(schema, argv)
	if errors.Is(err, spec.ErrHelp) {
		return schema.Usage(stdout)
	} else if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	repeat, err := experiment.RepeatCount(args)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	factors := experiment.ExtractFactors(argv, experiment.ReservedFlags...)
	logger.Debug("parsed arguments", "factors", factors, "repeat", repeat,
		"seed", conf.seed)

	// Resolve every repetition before printing any, so that nothing is
	// emitted if one of them fails
	exps, err := experiment.Generate(args, factors, repeat,
		experiment.NewSampler(conf.seed))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	for _, exp := range exps {
		if err := enc.Encode(exp); err != nil {
			return fmt.Errorf("run: could not encode experiment %v: %w",
				exp.Name, err)
		}
	}
	logger.Info("generated experiments", "count", len(exps))

	if !args.Supplied(experiment.OutputFlag) {
		return nil
	}

	output, err := outputPath(args)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if err := save(exps, output, stderr); err != nil {
		return err
	}
	logger.Info("saved experiments", "output", output)

	return nil
}

// outputPath returns the value of the OutputFlag parameter
func outputPath(args *spec.Args) (string, error) {
	v, _ := args.Get(experiment.OutputFlag)
	if v.Kind() == spec.ListKind && v.Len() == 1 {
		v = v.Items()[0]
	}
	if v.Kind() != spec.StringKind || v.Str() == "" {
		return "", fmt.Errorf("-%v must be a path, have %v",
			experiment.OutputFlag, v)
	}
	return v.Str(), nil
}

// save tracks every experiment in a JSON directory and a manifest under
// output, displaying progress on w
func save(exps []experiment.Experiment, output string, w io.Writer) error {
	ts := []trackers.Tracker{
		trackers.NewJSONDir(output),
		trackers.NewManifest(filepath.Join(output, ManifestFilename)),
	}

	pbar := progressbar.NewManualProgressBar(w, 40, len(exps))
	for _, exp := range exps {
		for _, t := range ts {
			t.Track(exp)
		}
		pbar.Increment()
		pbar.Display()
	}
	pbar.Close()

	for _, t := range ts {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}
