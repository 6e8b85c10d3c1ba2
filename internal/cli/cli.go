package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvbasin/internal/config"
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
// Settings resolve as defaults, then the -config file, then explicit flags.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lvbasin", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lvbasin - Find low points and basins on a digit heightmap.

Usage:
  lvbasin [options] [INPUT]

Arguments:
  INPUT
    Path to the heightmap file, one row of digits per line (default "Input1.txt").

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to a .yaml, .yml, .hcl or .json settings file.")
	inputFlag := flagSet.String("input", def.Input, "Path to the heightmap file.")
	iFlag := flagSet.String("i", def.Input, "Path to the heightmap file (shorthand).")
	topFlag := flagSet.Int("top", def.Top, "Number of largest basins to multiply.")
	formatFlag := flagSet.String("format", def.Format, "Report format. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one INPUT argument, got %d", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := def
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	switch {
	case set["input"]:
		cfg.Input = *inputFlag
	case set["i"]:
		cfg.Input = *iFlag
	case flagSet.NArg() == 1:
		cfg.Input = flagSet.Arg(0)
	}
	if set["top"] {
		cfg.Top = *topFlag
	}
	if set["format"] {
		cfg.Format = *formatFlag
	}
	if set["log-format"] {
		cfg.LogFormat = *logFormatFlag
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
