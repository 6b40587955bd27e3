package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/phrazzld/datakit/internal/config"
	"github.com/phrazzld/datakit/internal/domain"
	"github.com/phrazzld/datakit/internal/platform/logger"
	"github.com/phrazzld/datakit/internal/redact"
	"github.com/phrazzld/datakit/internal/render"
)

const defaultCommand = "demo"

// app carries everything a command needs for one invocation.
type app struct {
	cfg        *config.Config
	log        *slog.Logger
	stdin      io.Reader
	out        *render.Renderer
	userFormat domain.Format
}

// action runs a command once its flags are parsed. args are the
// positional arguments left over after flag parsing.
type action func(ctx context.Context, a *app, args []string) error

// cli holds the streams and global flag values of one run. app is built
// by setup just before the selected command runs.
type cli struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	configFile string
	noColor    bool
	app        *app
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "datakit",
		Short: "String metrics, statistics, word frequency, email checks and user records",
		Long: `datakit analyses strings, numbers and text, checks email addresses and
encodes user records. With no command, "demo" runs.`,
		Args:              unknownCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runE(runDemo),
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "path to a YAML config file")
	pf.String("format", config.DefaultOutputFormat, "output format: text or json")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	pf.Bool("color", true, "colorize text output")
	pf.BoolVar(&c.noColor, "no-color", false, "disable colors (same as --color=false)")

	root.AddCommand(
		newTextCmd(c),
		newStatsCmd(c),
		newFrequencyCmd(c),
		newEmailCmd(c),
		newUserCmd(c),
		newDemoCmd(c),
	)
	return root
}

// run executes the tool with args (without the program name) and returns
// the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	errOut := color.New(color.FgRed, color.Bold)

	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(c)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(context.Background())
	code := exitCode(err)
	if err != nil {
		if c.app != nil {
			c.app.log.Debug("command failed", "error", redact.Error(err), "exit_code", code)
		}
		fmt.Fprintf(stderr, "%s %v\n", errOut.Sprint("Error:"), err)
		if code == exitUsage && cmd != nil {
			fmt.Fprintf(stderr, "\n%s", cmd.UsageString())
		}
		return code
	}

	if c.app != nil {
		c.app.log.Debug("command finished")
	}
	return exitOK
}

// runE adapts an action to cobra. The app is set by setup before any
// command runs.
func (c *cli) runE(act action) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return act(cmd.Context(), c.app, args)
	}
}

// setup loads configuration and builds the app for the selected command.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	a, err := initializeApp(cmd.Flags(), c.configFile, c.noColor, c.stdin, c.stdout, c.stderr)
	if err != nil {
		return err
	}

	name := cmd.Name()
	if cmd == cmd.Root() {
		name = defaultCommand
	}
	a.log = a.log.With("run_id", uuid.New().String(), "command", name)
	cmd.SetContext(logger.WithLogger(cmd.Context(), a.log))
	c.app = a

	a.log.Debug("command started", "args", redact.String(strings.Join(args, " ")))
	return nil
}

// initializeApp loads configuration and sets up logging and rendering.
func initializeApp(flags *pflag.FlagSet, configFile string, noColor bool, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(config.Options{ConfigFile: configFile, Flags: flags})
	if err != nil {
		err = fmt.Errorf("failed to load configuration: %w", err)
		if setByFlag(flags, err) {
			return nil, &usageError{err: err}
		}
		return nil, err
	}

	l, err := logger.Setup(cfg.Log, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	userFormat, err := domain.ParseFormat(cfg.User.Format)
	if err != nil {
		return nil, err
	}

	// color.NoColor is already true when stdout is not a terminal or
	// NO_COLOR is set.
	colorize := cfg.Output.Color && !noColor && !color.NoColor

	l.Debug("configuration loaded",
		"config_file", redact.String(configFile),
		"output_format", cfg.Output.Format,
		"color", colorize,
		"top_words", cfg.Output.TopWords,
		"user_format", cfg.User.Format)

	return &app{
		cfg:        cfg,
		log:        l,
		stdin:      stdin,
		out:        render.New(stdout, cfg.Output.Format, colorize),
		userFormat: userFormat,
	}, nil
}

// setByFlag reports whether err is a configuration validation failure on
// a key that a changed command line flag set.
func setByFlag(flags *pflag.FlagSet, err error) bool {
	var ve *config.ValidationError
	if !errors.As(err, &ve) {
		return false
	}

	changed := make(map[string]bool)
	for name, key := range config.FlagKeys {
		if f := flags.Lookup(name); f != nil && f.Changed {
			changed[key] = true
		}
	}
	for _, key := range ve.Keys() {
		if changed[key] {
			return true
		}
	}
	return false
}

// unknownCommand rejects positional arguments on the root command, which
// only get there when they do not name a subcommand.
func unknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		return usagef("unknown command %q (did you mean %q?)", args[0], suggestions[0])
	}
	return usagef("unknown command %q", args[0])
}

// noArgs rejects positional arguments for commands driven only by flags.
func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unexpected arguments: %s", strings.Join(args, " "))
	}
	return nil
}
