package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/orbitmap/internal/app"
	"github.com/specialistvlad/orbitmap/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("orbitmap", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
orbitmap - total orbit depth and YOU-to-SAN transfer count for an orbit map.

Usage:
  orbitmap [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    File with one "A)B" relation per line. Use "-" to read standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the orbit map file.")
	iFlag := flagSet.String("i", "", "Path to the orbit map file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional .hcl settings file.")
	envFileFlag := flagSet.String("env-file", "", "Path to an optional dotenv file with ORBITMAP_* variables.")
	rootFlag := flagSet.String("root", "", "Label of the root object (default \"COM\").")
	sourceFlag := flagSet.String("source", "", "Label of the object to transfer from (default \"YOU\").")
	targetFlag := flagSet.String("target", "", "Label of the object to transfer to (default \"SAN\").")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json' (default 'text').")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error' (default 'warn').")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one INPUT_PATH, got %d", flagSet.NArg())}
	}
	slog.Debug("Input path determined.", "path", path)

	// Without an input anywhere there is nothing to do, so show the help.
	if path == "" && *configFlag == "" && *envFileFlag == "" && os.Getenv(config.EnvInput) == "" {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg, err := app.NewConfig(app.Config{
		InputPath:  path,
		ConfigPath: *configFlag,
		EnvFile:    *envFileFlag,
		Root:       *rootFlag,
		Source:     *sourceFlag,
		Target:     *targetFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
