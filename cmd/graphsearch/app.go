package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/internal/config"
	"github.com/katalvlaran/graphsearch/internal/report"
)

// app carries what every sub-command needs once flags are parsed.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	cfg    config.Config
	format report.Format
	log    *slog.Logger
	loc    *report.Localizer

	// raw flag values; applied over cfg only when set on the command line
	configPath string
	flagCfg    config.Config
}

// sourceError ties a failure to the input it came from.
type sourceError struct {
	source string
	err    error
}

func (e *sourceError) Error() string { return e.source + ": " + e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		loc:    report.NewLocalizer("en"),
	}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, a.describe(err))
		return 1
	}

	return 0
}

// describe renders err for the user in the configured language.
func (a *app) describe(err error) string {
	var se *sourceError
	if errors.As(err, &se) {
		return se.source + ": " + a.loc.Error(se.err)
	}

	return a.loc.Error(err)
}

func (a *app) rootCmd() *cobra.Command {
	def := config.Default()
	root := &cobra.Command{
		Use:   "graphsearch",
		Short: "Trace DFS, Branch-and-Bound and Hill-Climbing over small text graphs",
		Long: `graphsearch reads a graph written in the English/Vietnamese text grammar,
runs one of three search algorithms and prints every step of the search.

Unweighted (dfs):   A: B, C        Start: A / Trạng thái đầu: A
Weighted  (bnb):    A: B(1), C(4) | h=3    START=A
Heuristic (hc):     A: B, C | h=3          GOAL=C / Kết thúc: C`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.flagCfg.Output, "output", "o", def.Output, "output format: text, json or yaml")
	pf.StringVar(&a.flagCfg.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.flagCfg.LogFormat, "log-format", def.LogFormat, "log format: text or json")
	pf.StringVar(&a.flagCfg.Lang, "lang", def.Lang, "message language: en or vi")
	pf.DurationVar(&a.flagCfg.Timeout, "timeout", def.Timeout, "deadline per search, 0 for none")
	pf.IntVar(&a.flagCfg.MaxSteps, "max-steps", def.MaxSteps, "maximum trace length per search, 0 for unlimited")
	pf.IntVarP(&a.flagCfg.Jobs, "jobs", "j", def.Jobs, "input files searched concurrently")

	root.AddCommand(
		a.searchCmd(algoDFS),
		a.searchCmd(algoBNB),
		a.searchCmd(algoHC),
		a.validateCmd(),
		a.fmtCmd(),
	)

	return root
}

// setup loads the config file, applies explicit flags over it and builds
// the logger and localizer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.flagCfg.Output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagCfg.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flagCfg.LogFormat
	}
	if flags.Changed("lang") {
		cfg.Lang = a.flagCfg.Lang
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.flagCfg.Timeout
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = a.flagCfg.MaxSteps
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.flagCfg.Jobs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	log, err := newLogger(a.stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	a.loc = report.NewLocalizer(cfg.Lang)
	a.log = log.With(
		"run_id", uuid.NewString(),
		"command", cmd.Name(),
	)
	a.log.Debug("configuration loaded",
		"config", a.configPath,
		"output", cfg.Output,
		"lang", a.loc.Tag().String(),
		"timeout", cfg.Timeout,
		"max_steps", cfg.MaxSteps,
		"jobs", cfg.Jobs,
	)

	return nil
}

// searchContext derives the per-search context from the configured timeout.
func (a *app) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

// elapsed is a log attribute helper.
func elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
