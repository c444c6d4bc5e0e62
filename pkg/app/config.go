// Package app holds the configuration surface of the packwise binary.
package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	Expression string
	Version    string
	Manifest   string
	Inspect    bool
	Verbose    bool
	LogDir     string
	Pairs      []string
}

// ParseCLIArgs parses the command-line flags and returns a populated
// CLIArgs struct. Positional arguments are kept as raw name/version pair
// tokens.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{}

	flag.StringVar(&args.Expression, "expr", "", "Parse a constraint expression and print its constraint tree.")
	flag.StringVar(&args.Version, "version", "", "Normalize a version or branch string and print its canonical form.")
	flag.StringVar(&args.Manifest, "manifest", "", "Load a pack.json/pack.toml manifest and print its dependency links.")
	flag.BoolVar(&args.Inspect, "inspect", false, "Open the interactive constraint inspector.")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose (debug) logging.")
	flag.StringVar(&args.LogDir, "log-dir", ".", "Specifies the directory to store log files.")
	flag.Parse()

	args.Pairs = flag.Args()
	return args
}

// FileConfig holds the defaults an optional packwise.toml can override.
type FileConfig struct {
	LogDir  string `toml:"log_dir"`
	Verbose bool   `toml:"verbose"`
}

// LoadFileConfig reads a packwise.toml config file. A missing file is not
// an error; the zero config is returned instead.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &FileConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config FileConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config %s: %w", path, err)
	}
	return &config, nil
}

// Apply folds file-config defaults into CLI arguments. Explicit flags win;
// only values left at their zero default are overridden.
func (args *CLIArgs) Apply(config *FileConfig) {
	if config == nil {
		return
	}
	if args.LogDir == "." && config.LogDir != "" {
		args.LogDir = config.LogDir
	}
	if !args.Verbose && config.Verbose {
		args.Verbose = true
	}
}
