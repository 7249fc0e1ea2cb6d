// Package cmd provides the CLI command for minigrep.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/internal/config"
	"github.com/Aman-CERP/minigrep/internal/document"
	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/output"
	"github.com/Aman-CERP/minigrep/internal/search"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

// rootOptions holds CLI flags.
type rootOptions struct {
	debug           bool
	quiet           bool
	count           bool
	printSettings   bool
	exampleSettings bool
	version         bool
}

// NewRootCmd creates the root command for the minigrep CLI.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query.

Matching is a plain substring test, case-sensitive by default.
Set CASE_INSENSITIVE (to any value) to ignore letter case.

Examples:
  minigrep frog poem.txt
  CASE_INSENSITIVE=1 minigrep to poem.txt
  minigrep -q -- -q notes.txt

Flags are read only before the query. Anything that is not a known
flag starts the positional arguments, and extra arguments are ignored.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				return runVersion(cmd)
			}
			if opts.exampleSettings || opts.printSettings {
				return runSettings(cmd, opts)
			}
			return runSearch(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Write a debug log to ~/.minigrep/logs/")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print only matching lines")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "Print only the number of matching lines")
	cmd.Flags().BoolVar(&opts.printSettings, "print-settings", false, "Print the effective settings as YAML and exit")
	cmd.Flags().BoolVar(&opts.exampleSettings, "example-settings", false, "Print an example settings file and exit")
	// No shorthand: "-v" is a common query.
	cmd.Flags().BoolVar(&opts.version, "version", false, "Print version information and exit")
	cmd.Flags().SetInterspersed(false)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.FlagError(err)
	})

	return cmd
}

// Execute runs the root command against the process arguments.
// A failure is reported on stderr before being returned.
func Execute() error {
	return execute(NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	cmd.SetArgs(separatePositional(cmd, args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		msg := errors.FormatForCLI(err) + "\n"
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			msg = errors.FormatVerbose(err)
		}
		_, _ = io.WriteString(stderr, msg)
	}
	return err
}

// separatePositional inserts "--" before the first argument that is not
// a known flag, so queries like "-v" and trailing extras such as
// "--extra" are never parsed as options.
func separatePositional(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpFlag()

	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isKnownFlag(cmd, arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// isKnownFlag reports whether arg names flags defined on cmd, either as
// --name[=value] or as a group of shorthands like -qc.
func isKnownFlag(cmd *cobra.Command, arg string) bool {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")
		return name != "" && cmd.Flags().Lookup(name) != nil
	case len(arg) > 1 && arg[0] == '-':
		shorthands, _, _ := strings.Cut(arg[1:], "=")
		if shorthands == "" {
			return false
		}
		for _, r := range shorthands {
			if r >= utf8.RuneSelf || cmd.Flags().ShorthandLookup(string(r)) == nil {
				return false
			}
		}
		return true
	}
	return false
}

// runSearch resolves configuration, reads the document and prints matches.
func runSearch(cmd *cobra.Command, args []string, opts rootOptions) error {
	cfg, err := config.New(args, os.LookupEnv)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cleanup, err := setupLogging(opts.debug, settings)
	if err != nil {
		return err
	}
	defer cleanup()

	slog.Info("search_started",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.Filename),
		slog.String("mode", cfg.Mode.String()))

	stdout := cmd.OutOrStdout()
	out := output.New(stdout).
		WithColor(output.UseColor(settings.Output.Color, stdout)).
		WithHighlight(cfg.Query, cfg.Mode)

	if !opts.quiet {
		out.Banner(cfg.Query, cfg.Filename)
	}

	contents, err := document.Read(cfg.Filename)
	if err != nil {
		slog.Error("read_failed", errors.LogArgs(err)...)
		return err
	}

	if !opts.quiet {
		out.Contents(contents)
	}

	results := search.Run(cfg.Mode, cfg.Query, contents)

	if !opts.quiet {
		out.Header()
	}
	if opts.count {
		out.Count(len(results))
	} else {
		out.Matches(results)
	}

	slog.Info("search_complete", slog.Int("results", len(results)))
	return nil
}

// loadSettings loads settings for the working directory.
func loadSettings() (*config.Settings, error) {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return config.LoadSettings(dir)
}

// setupLogging installs the default slog logger for this run.
// Without debug, records are discarded.
func setupLogging(debug bool, settings *config.Settings) (func(), error) {
	prev := slog.Default()

	if !debug {
		slog.SetDefault(logging.Discard())
		return func() { slog.SetDefault(prev) }, nil
	}

	logCfg := logging.DebugConfig()
	logCfg.Level = settings.Logging.Level
	logCfg.MaxSizeMB = settings.Logging.MaxSizeMB
	logCfg.MaxFiles = settings.Logging.MaxFiles
	if settings.Logging.File != "" {
		logCfg.FilePath = settings.Logging.File
	}

	logger, closeLog, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup debug logging: %w", err)
	}
	slog.SetDefault(logger)
	slog.Debug("debug_logging_enabled",
		slog.String("log_file", logCfg.FilePath),
		slog.Any("build", version.Get()))

	return func() {
		closeLog()
		slog.SetDefault(prev)
	}, nil
}
