package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvbasin/heightmap"
	"github.com/katalvlaran/lvbasin/internal/cli"
	"github.com/katalvlaran/lvbasin/internal/ctxlog"
	"github.com/katalvlaran/lvbasin/report"
)

// main is the entrypoint for the lvbasin command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the heightmap, computes both answers and writes the report.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(logW, cfg.LogFormat, cfg.LogLevel)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	hm, err := heightmap.Load(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("Heightmap loaded.", "path", cfg.Input, "rows", hm.Rows(), "cols", hm.Cols())

	rep, err := report.Compute(ctx, hm, report.Options{Top: cfg.Top})
	if err != nil {
		return err
	}
	return report.Write(outW, rep, format)
}
