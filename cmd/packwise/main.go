package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mwaldt/packwise/pkg/app"
	"github.com/mwaldt/packwise/pkg/core/packages"
	"github.com/mwaldt/packwise/pkg/core/packages/version"
	"github.com/mwaldt/packwise/pkg/logging"
	"github.com/mwaldt/packwise/pkg/ui"
)

const configFileName = "packwise.toml"

func main() {
	cliArgs := app.ParseCLIArgs()

	fileConfig, err := app.LoadFileConfig(configFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		cliArgs.Apply(fileConfig)
	}

	// 1. Setup logging first.
	mainLogger := logging.NewLogger()
	if err := os.MkdirAll(cliArgs.LogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFileName := fmt.Sprintf("packwise-%s.log", time.Now().Format("2006-01-02_15-04-05"))
	logPath := filepath.Join(cliArgs.LogDir, logFileName)

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	mainLogger.SetWriter(logFile)
	logging.SetDefault(mainLogger)

	if cliArgs.Verbose {
		mainLogger.SetDebug(true)
		logging.Infof("Main: Verbose logging enabled.")
	}

	if err := run(cliArgs); err != nil {
		logging.Errorf("Main: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cliArgs *app.CLIArgs) error {
	switch {
	case cliArgs.Inspect:
		logging.Infof("Main: Opening constraint inspector.")
		return ui.NewInspector().Run()

	case cliArgs.Expression != "":
		constraint, err := version.ParseConstraints(cliArgs.Expression)
		if err != nil {
			return err
		}
		fmt.Printf("pretty:     %s\n", constraint.Pretty())
		fmt.Printf("constraint: %s\n", constraint)
		return nil

	case cliArgs.Version != "":
		normalized, err := version.Normalize(cliArgs.Version)
		if err != nil {
			return err
		}
		fmt.Printf("canonical: %s\n", normalized)
		fmt.Printf("stability: %s\n", version.ParseStability(cliArgs.Version))
		return nil

	case cliArgs.Manifest != "":
		return printManifest(cliArgs.Manifest)

	case len(cliArgs.Pairs) > 0:
		for _, pair := range packages.ParseNameVersionPairs(cliArgs.Pairs) {
			if pair.Version == "" {
				fmt.Printf("%s (any version)\n", pair.Name)
				continue
			}
			fmt.Printf("%s %s\n", pair.Name, pair.Version)
		}
		return nil
	}

	return fmt.Errorf("nothing to do; pass -expr, -version, -manifest, -inspect or name/version pairs")
}

func printManifest(path string) error {
	definition, err := packages.LoadDefinition(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", definition.Name, definition.Version.Canonical)

	for _, section := range []struct {
		title string
		build func() (map[string]*packages.Link, error)
	}{
		{"requires", definition.RequireLinks},
		{"conflicts", definition.ConflictLinks},
	} {
		links, err := section.build()
		if err != nil {
			return err
		}
		if len(links) == 0 {
			continue
		}
		targets := make([]string, 0, len(links))
		for target := range links {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		fmt.Printf("%s:\n", section.title)
		for _, target := range targets {
			link := links[target]
			fmt.Printf("  %s %s  ->  %s\n", link.Target, link.PrettyConstraint, link.Constraint)
		}
	}
	return nil
}
