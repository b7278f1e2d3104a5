package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/journal/internal/config"
	"github.com/Makepad-fr/journal/internal/gateway"
	"github.com/Makepad-fr/journal/internal/logging"
	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/remote"
	"github.com/Makepad-fr/journal/internal/source"
	"github.com/Makepad-fr/journal/internal/store"
	"github.com/Makepad-fr/journal/internal/tui"
	"github.com/Makepad-fr/journal/internal/ui"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad invocations (exit 2).
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// usageArgs tags positional argument errors as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

type app struct {
	cfg    *config.Config
	noSync bool
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.New()
	if err != nil {
		ui.Fail(stderr, "config: "+err.Error())
		return exitUsage
	}
	a := &app{cfg: cfg, noSync: !cfg.Sync, stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if _, err := root.ExecuteContextC(ctx); err != nil {
		return a.report(err)
	}
	return exitOK
}

func (a *app) report(err error) int {
	var fe model.FieldErrors
	if errors.As(err, &fe) {
		keys := make([]string, 0, len(fe))
		for k := range fe {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ui.Fail(a.stderr, fe[k])
		}
		return exitUsage
	}
	ui.Fail(a.stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "journal",
		Short:         "A personal journal in the terminal",
		Long:          "journal keeps entries in memory and mirrors every change to a remote collection.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := source.ParseMode(a.cfg.Source); err != nil {
				return usageError{err}
			}
			a.cfg.Sync = !a.noSync
			ui.SetTheme(a.cfg.Theme)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := root.PersistentFlags()
	f.StringVar(&a.cfg.Source, "source", a.cfg.Source, "initial data source (demo or api)")
	f.StringVar(&a.cfg.APIURL, "api-url", a.cfg.APIURL, "remote collection URL")
	f.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "per-request timeout")
	f.BoolVar(&a.noSync, "no-sync", a.noSync, "do not mirror changes to the remote")
	f.StringVar(&a.cfg.Theme, "theme", a.cfg.Theme, "console theme (classic, neon, mono)")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&a.cfg.LogFile, "log-file", a.cfg.LogFile, "log file (TUI default: user cache dir)")
	f.StringVar(&a.cfg.SeedFile, "seed-file", a.cfg.SeedFile, "JSON file replacing the built-in demo entries")

	root.AddCommand(a.lsCmd(), a.addCmd(), a.editCmd(), a.rmCmd(), a.starCmd())
	return root
}

func (a *app) runTUI(ctx context.Context) error {
	path := a.cfg.LogFile
	if path == "" {
		path = logging.DefaultFile()
	}
	logger, closer, err := logging.OpenFile(path, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	mode, _ := source.ParseMode(a.cfg.Source)
	gw, loader := a.wire(logger)
	logger.Info("starting", "source", mode, "api", a.cfg.APIURL, "sync", a.cfg.Sync)
	return tui.Run(ctx, tui.Deps{
		Store:   store.New(),
		Gateway: gw,
		Loader:  loader,
		Log:     logger,
		Source:  mode,
	})
}

func (a *app) wire(logger *log.Logger) (*gateway.Gateway, *source.Loader) {
	client := remote.New(a.cfg.APIURL, remote.WithTimeout(a.cfg.Timeout))
	opts := []gateway.Option{gateway.WithTimeout(a.cfg.Timeout)}
	if !a.cfg.Sync {
		opts = append(opts, gateway.Disabled())
	}
	gw := gateway.New(client, logger, opts...)
	loader := source.NewLoader(client, logger, source.WithSeedFile(a.cfg.SeedFile))
	return gw, loader
}

// session is one load of the configured source into a fresh store.
type session struct {
	store   *store.Store
	gateway *gateway.Gateway
	mode    source.Mode
}

func (a *app) open(ctx context.Context) (*session, error) {
	logger, err := logging.New(a.stderr, a.cfg.LogLevel)
	if err != nil {
		return nil, usageError{err}
	}
	mode, err := source.ParseMode(a.cfg.Source)
	if err != nil {
		return nil, usageError{err}
	}
	gw, loader := a.wire(logger)

	b, err := loader.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	if b.Fallback {
		logger.Warn("api unavailable, using demo entries")
	}
	s := store.New()
	s.Load(b.Entries)
	logger.Debug("entries loaded", "source", b.Mode, "count", s.Len())
	return &session{store: s, gateway: gw, mode: b.Mode}, nil
}

// mirror runs the remote call synchronously. The outcome is only logged.
func (s *session) mirror(ctx context.Context, op gateway.Op, e model.Entry) {
	s.gateway.Mirror(ctx, op, e)
}
