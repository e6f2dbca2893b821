// ABOUTME: Root cobra command: flags with environment defaults, action resolution, dispatch
// ABOUTME: run maps every result to an exit code: 0 ok, 1 error, 130 interrupted

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/unveilox/internal/action"
	"github.com/mauromedda/unveilox/internal/config"
	"github.com/mauromedda/unveilox/internal/log"
	"github.com/mauromedda/unveilox/internal/poems"
	"github.com/mauromedda/unveilox/internal/reveal"
	"github.com/mauromedda/unveilox/internal/speed"
	"github.com/mauromedda/unveilox/pkg/tui/terminal"
)

// watcher is what a reveal polls; closing it stops the resize feed.
type watcher interface {
	reveal.Watcher
	Close() error
}

// app carries the process dependencies so tests can swap them.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	isTTY     bool
	stderrTTY bool
	catalog   func() (*poems.Catalog, error)
	open      func() (terminal.Terminal, watcher, error)

	exitCode int
}

type options struct {
	speed   speed.Setting
	theme   string
	verbose bool
	logFile string
}

// run executes the command line and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return 1
	}
	return a.exitCode
}

func (a *app) newRootCmd() *cobra.Command {
	env, envErr := config.FromEnv()
	opts := options{
		speed:   env.Speed,
		theme:   env.Theme,
		verbose: env.Verbose,
		logFile: env.LogFile,
	}

	cmd := &cobra.Command{
		Use:   "unveilox [action] [writing|pattern]",
		Short: "Reveal a bundled writing in the terminal",
		Long: "unveilox reveals a bundled writing one character at a time (typewriter)\n" +
			"or as a full-screen page (tui). Actions: " + fmt.Sprint(action.Names()) + ".",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil && !cmd.Flags().Changed("speed") {
				return envErr
			}
			closeLog, err := setupLogging(opts, a.stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			req, err := action.Resolve(args, opts.speed)
			if err != nil {
				return err
			}
			return a.dispatch(cmd.Context(), req, opts)
		},
	}

	f := cmd.Flags()
	f.VarP(&opts.speed, "speed", "s", fmt.Sprintf("milliseconds per character, clamped to [%d, %d]", speed.Min, speed.Max))
	f.StringVar(&opts.theme, "theme", opts.theme, "colour theme: default, dark, light, monochrome, none")
	f.BoolVarP(&opts.verbose, "verbose", "v", opts.verbose, "enable debug logging")
	f.StringVar(&opts.logFile, "log-file", opts.logFile, "write logs to this file instead of stderr")

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if err := a.help(); err != nil {
			fmt.Fprintf(a.stderr, "error: %v\n", err)
		}
	})
	return cmd
}

// dispatch runs the resolved action. Every Action is handled here.
func (a *app) dispatch(ctx context.Context, req action.Request, opts options) error {
	switch req.Action {
	case action.Help:
		return a.help()
	case action.List:
		return a.list(req.Pattern, opts)
	case action.Typewriter, action.TUI:
		return a.reveal(ctx, req, opts)
	}
	return fmt.Errorf("%w: %v", action.ErrInvalidAction, req.Action)
}

// setupLogging applies --verbose and --log-file. Without a file, logs go to
// stderr. The returned func closes the file.
func setupLogging(opts options, stderr io.Writer) (func(), error) {
	if opts.verbose {
		log.SetLevel(log.LevelDebug)
	}
	if opts.logFile == "" {
		log.SetOutput(stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(stderr)
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			log.Error("closing log file: %v", err)
		}
	}, nil
}

// quietLogs silences logging while a reveal owns a terminal stderr. Raw mode
// turns off newline translation, so log lines there would staircase across
// the reveal. The returned func restores stderr output.
func (a *app) quietLogs(opts options) func() {
	if opts.logFile != "" || !a.stderrTTY {
		return func() {}
	}
	if opts.verbose {
		log.Warn("debug logs are discarded during a reveal on a terminal; pass --log-file to keep them")
	}
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(a.stderr) }
}
