package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/datakit/internal/config"
	"github.com/phrazzld/datakit/internal/domain"
	"github.com/phrazzld/datakit/internal/platform/logger"
	"github.com/phrazzld/datakit/internal/redact"
	"github.com/phrazzld/datakit/internal/render"
	"github.com/phrazzld/datakit/internal/stats"
	"github.com/phrazzld/datakit/internal/text"
)

// Inputs used when the text command is given nothing to analyse.
var defaultTextInputs = []string{
	"Hello Gopher",
	"racecar",
	"A man a plan a canal Panama",
	"datakit",
}

func newTextCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text [strings...]",
		Short: "Reverse strings, count vowels and detect palindromes",
	}
	inputs := cmd.Flags().StringArrayP("input", "i", nil, "string to analyse (repeatable; positional arguments also count)")

	cmd.RunE = c.runE(func(ctx context.Context, a *app, args []string) error {
		all := append(append([]string{}, *inputs...), args...)
		if len(all) == 0 {
			all = defaultTextInputs
		}

		analyses := make([]text.Analysis, 0, len(all))
		for _, s := range all {
			analyses = append(analyses, text.Analyze(s))
		}
		logger.FromContext(ctx).Debug("strings analysed", "count", len(analyses))
		return a.out.Strings(analyses)
	})
	return cmd
}

func newStatsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [numbers...]",
		Short: "Calculate statistics (average, median, min, max) from numbers",
	}
	list := cmd.Flags().StringP("numbers", "n", "", "comma-separated numbers, e.g. 10,20,30")

	cmd.RunE = c.runE(func(ctx context.Context, a *app, args []string) error {
		raw := strings.Join(append([]string{*list}, args...), ",")
		numbers, err := stats.ParseList(raw)
		if err != nil {
			return &usageError{err: err}
		}
		if len(numbers) == 0 {
			return errors.New("no numbers provided")
		}

		sample, err := stats.NewSample(numbers)
		if err != nil {
			return err
		}
		summary, _ := sample.Summary()

		logger.FromContext(ctx).Debug("statistics calculated", "count", summary.Count)
		return a.out.Stats(render.StatsReport{Numbers: numbers, Summary: summary})
	})
	return cmd
}

func newFrequencyCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frequency [words...]",
		Short: "Analyze word frequency in text",
	}
	input := cmd.Flags().StringP("text", "t", "", "text to analyse (positional arguments are appended)")
	cmd.Flags().Int("top", config.DefaultTopWords, "number of words to list")

	cmd.RunE = c.runE(func(ctx context.Context, a *app, args []string) error {
		all := strings.TrimSpace(strings.Join(append([]string{*input}, args...), " "))
		if all == "" {
			return usagef("no text provided")
		}

		freq := text.WordFrequency(all)
		logger.FromContext(ctx).Debug("word frequency calculated",
			"unique_words", len(freq),
			"total_words", freq.Total())
		return a.out.Frequency(render.NewFrequencyReport(freq, a.cfg.Output.TopWords))
	})
	return cmd
}

func newEmailCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email [addresses...]",
		Short: "Validate email addresses with a simple heuristic",
	}
	addresses := cmd.Flags().StringArrayP("address", "a", nil, "address to validate (repeatable; positional arguments also count)")

	cmd.RunE = c.runE(func(ctx context.Context, a *app, args []string) error {
		all := append(append([]string{}, *addresses...), args...)
		if len(all) == 0 {
			return usagef("no email address provided")
		}

		reports := make([]render.EmailReport, 0, len(all))
		for _, addr := range all {
			valid := domain.ValidEmail(addr)
			logger.FromContext(ctx).Debug("email checked", "address", redact.String(addr), "valid", valid)
			reports = append(reports, render.EmailReport{Address: addr, Valid: valid})
		}
		return a.out.Emails(reports)
	})
	return cmd
}

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create and display a user, or decode a stored one",
		Long: `Create and display a user from flags, or decode a stored record with
--decode. Boolean flags take their value with "=", e.g. --active=false.`,
		Args: noArgs,
	}
	fs := cmd.Flags()
	id := fs.Uint32P("id", "i", 0, "user ID")
	name := fs.StringP("name", "n", "", "user name")
	email := fs.StringP("email", "e", "", "user email")
	active := fs.BoolP("active", "a", true, "user is active")
	decode := fs.String("decode", "", "read a user record from a file ('-' for stdin) instead of flags")
	fs.String("user-format", config.DefaultUserFormat, "record format: json or yaml")

	cmd.RunE = c.runE(func(ctx context.Context, a *app, _ []string) error {
		if *decode != "" {
			return decodeUser(ctx, a, *decode)
		}

		var missing []string
		for _, flag := range []string{"id", "name", "email"} {
			if !fs.Changed(flag) {
				missing = append(missing, "--"+flag)
			}
		}
		if len(missing) > 0 {
			return usagef("missing required flags: %s", strings.Join(missing, ", "))
		}

		u := domain.User{ID: *id, Name: *name, Email: *email, Active: *active}
		if err := u.Validate(); err != nil {
			logger.FromContext(ctx).Warn("user record does not pass validation", "error", redact.Error(err))
		}

		encoded, err := domain.MarshalUser(u, a.userFormat)
		if err != nil {
			return err
		}
		return a.out.User(render.UserReport{User: u, Format: a.userFormat, Encoded: encoded})
	})
	return cmd
}

func decodeUser(ctx context.Context, a *app, source string) error {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return fmt.Errorf("failed to read user record: %w", err)
	}

	u, err := domain.UnmarshalUser(string(data), a.userFormat)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("user record decoded",
		"source", redact.String(source),
		"format", string(a.userFormat))

	// Re-encode so the printed representation is normalized.
	encoded, err := domain.MarshalUser(u, a.userFormat)
	if err != nil {
		return err
	}
	return a.out.User(render.UserReport{User: u, Format: a.userFormat, Encoded: encoded})
}

func newDemoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   defaultCommand,
		Short: "Run a demo of every feature",
		Args:  noArgs,
		RunE:  c.runE(runDemo),
	}
}

func runDemo(ctx context.Context, a *app, _ []string) error {
	report, err := buildDemo(a.userFormat)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("demo report built")
	return a.out.Demo(report)
}

func buildDemo(format domain.Format) (render.DemoReport, error) {
	analyses := make([]text.Analysis, 0, len(defaultTextInputs))
	for _, s := range defaultTextInputs {
		analyses = append(analyses, text.Analyze(s))
	}

	numbers := []float64{10, 20, 30, 40, 50}
	sample, err := stats.NewSample(numbers)
	if err != nil {
		return render.DemoReport{}, err
	}
	summary, _ := sample.Summary()

	const sampleText = "go is awesome go makes systems programming fun"

	emails := []string{"user@example.com", "invalid", "test@go.dev"}
	emailReports := make([]render.EmailReport, 0, len(emails))
	for _, e := range emails {
		emailReports = append(emailReports, render.EmailReport{Address: e, Valid: domain.ValidEmail(e)})
	}

	u, err := domain.NewUser(42, "Alice Johnson", "alice@example.dev", true)
	if err != nil {
		return render.DemoReport{}, err
	}
	encoded, err := domain.MarshalUser(u, format)
	if err != nil {
		return render.DemoReport{}, err
	}

	return render.DemoReport{
		Strings:   analyses,
		Stats:     render.StatsReport{Numbers: numbers, Summary: summary},
		Text:      sampleText,
		Frequency: render.NewFrequencyReport(text.WordFrequency(sampleText), 3),
		Emails:    emailReports,
		User:      render.UserReport{User: u, Format: format, Encoded: encoded},
	}, nil
}
