// Package cli implements the recipebook command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mesh-intelligence/recipebook/internal/controller"
	"github.com/mesh-intelligence/recipebook/internal/paths"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	jsonMode  bool
	verbose   bool
}

// app carries the state shared by one invocation of the command tree.
type app struct {
	flags     rootFlags
	configDir string
	config    types.Config
	logger    *slog.Logger

	// interactive reports whether prompts may be shown.
	interactive func() bool
	// runForm fills fields from an interactive form.
	runForm func(title string, fields *controller.Fields) error
}

func newApp() *app {
	return &app{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		interactive: stdinIsTerminal,
		runForm:     runRecipeForm,
	}
}

// NewRootCmd creates the top-level "recipebook" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "recipebook",
		Short: "A local-first recipe manager",
		Long: "Recipebook keeps an ordered list of recipes on this machine.\n" +
			"Every change is saved immediately and reloaded on the next run.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/recipebook)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/recipebook)")
	pf.StringVar(&a.flags.backend, "backend", "", "storage backend: file, sqlite or memory (overrides config.yaml)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newConfigCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "recipebook:", err)
		os.Exit(exitCode(err))
	}
}

// setup configures logging and loads the effective configuration before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	cfg, err := configFromViper(v, a.flags)
	if err != nil {
		return err
	}

	a.configDir = configDir
	a.config = cfg
	a.logger.Debug("configuration loaded",
		"config_dir", configDir,
		"backend", cfg.Backend,
		"data_dir", cfg.DataDir,
		"storage_key", cfg.Key())
	return nil
}

// exitError carries the process exit code for an error returned from RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// userErrorf reports bad input: unknown ids, rejected recipes, bad flags.
func userErrorf(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

// sysError reports a failure of the environment: filesystem, database.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps err to a process exit code. Errors raised by cobra itself
// (unknown commands, bad flags, wrong argument counts) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
