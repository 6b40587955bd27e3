package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	textmetrics "github.com/phrazzld/datakit/internal/text"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const ruleWidth = 50

// Renderer writes reports to an io.Writer in one output format.
type Renderer struct {
	out    io.Writer
	asJSON bool

	heading *color.Color
	label   *color.Color
	value   *color.Color
	bad     *color.Color
	muted   *color.Color
}

// New returns a Renderer writing to out. format is FormatText or FormatJSON;
// anything else is treated as text. colorize forces colors on or off
// regardless of the terminal, so callers decide once for the whole run.
func New(out io.Writer, format string, colorize bool) *Renderer {
	r := &Renderer{
		out:     out,
		asJSON:  format == FormatJSON,
		heading: color.New(color.FgHiCyan, color.Bold),
		label:   color.New(color.FgYellow),
		value:   color.New(color.FgGreen),
		bad:     color.New(color.FgRed, color.Bold),
		muted:   color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{r.heading, r.label, r.value, r.bad, r.muted} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Strings renders the metrics of each analysed string.
func (r *Renderer) Strings(analyses []textmetrics.Analysis) error {
	if r.asJSON {
		return r.json(analyses)
	}

	r.title("String Manipulation Results")
	for _, a := range analyses {
		r.printf("\n%s: %q\n", r.label.Sprint("Input"), a.Original)
		r.field("Reversed", a.Reversed)
		r.field("Vowel Count", strconv.Itoa(a.VowelCount))
		r.printf("  %s: %s\n", r.label.Sprint("Is Palindrome"), r.yesNo(a.IsPalindrome))
	}
	return nil
}

// Stats renders a numeric summary.
func (r *Renderer) Stats(report StatsReport) error {
	if r.asJSON {
		return r.json(report)
	}

	r.title("Statistical Analysis")
	s := report.Summary
	r.field("Average", fmt.Sprintf("%.2f", s.Average))
	r.field("Median", fmt.Sprintf("%.2f", s.Median))
	r.field("Min", fmt.Sprintf("%.2f", s.Min))
	r.field("Max", fmt.Sprintf("%.2f", s.Max))
	r.field("Count", strconv.Itoa(s.Count))
	return nil
}

// Frequency renders ranked words as a table.
func (r *Renderer) Frequency(report FrequencyReport) error {
	if r.asJSON {
		return r.json(report)
	}

	r.title("Word Frequency Analysis")
	if len(report.Words) == 0 {
		r.printf("  %s\n", r.muted.Sprint("no words found"))
		return nil
	}

	t := r.table()
	t.AppendHeader(table.Row{"#", "Word", "Count"})
	for i, wc := range report.Words {
		t.AppendRow(table.Row{i + 1, wc.Word, wc.Count})
	}
	t.AppendFooter(table.Row{"", "Total", report.Total})
	t.Render()
	r.printf("  %s: %d\n", r.label.Sprint("Unique words"), report.Unique)
	return nil
}

// Emails renders the validity of each address.
func (r *Renderer) Emails(reports []EmailReport) error {
	if r.asJSON {
		if len(reports) == 1 {
			return r.json(reports[0])
		}
		return r.json(reports)
	}

	r.title("Email Validation")
	for _, e := range reports {
		status := r.value.Sprint("Valid ✓")
		if !e.Valid {
			status = r.bad.Sprint("Invalid ✗")
		}
		r.field("Email", e.Address)
		r.printf("  %s: %s\n", r.label.Sprint("Status"), status)
	}
	return nil
}

// User renders a user record followed by its encoded form.
func (r *Renderer) User(report UserReport) error {
	if r.asJSON {
		return r.json(report.User)
	}

	u := report.User
	r.title("User Information")
	r.field("ID", strconv.FormatUint(uint64(u.ID), 10))
	r.field("Name", u.Name)
	r.field("Email", u.Email)
	status := r.value.Sprint("Active")
	if !u.Active {
		status = r.bad.Sprint("Inactive")
	}
	r.printf("  %s: %s\n", r.label.Sprint("Status"), status)

	r.printf("\n%s\n", r.heading.Sprintf("%s Representation:", strings.ToUpper(string(report.Format))))
	r.printf("%s\n", r.muted.Sprint(strings.TrimRight(report.Encoded, "\n")))
	return nil
}

// Demo renders every section of a demo run.
func (r *Renderer) Demo(report DemoReport) error {
	if r.asJSON {
		return r.json(report)
	}

	r.printf("%s\n\n", r.heading.Sprint("datakit: string and data processing demo"))

	sections := []func() error{
		func() error { return r.Strings(report.Strings) },
		func() error {
			r.printf("  %s: %v\n", r.label.Sprint("Numbers"), report.Stats.Numbers)
			return r.Stats(report.Stats)
		},
		func() error {
			r.printf("  %s: %q\n", r.label.Sprint("Text"), report.Text)
			return r.Frequency(report.Frequency)
		},
		func() error { return r.Emails(report.Emails) },
		func() error { return r.User(report.User) },
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
		r.printf("\n")
	}

	r.printf("%s\n", r.value.Sprint("All features working correctly!"))
	return nil
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (r *Renderer) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return t
}

func (r *Renderer) title(s string) {
	r.printf("%s\n%s\n", r.heading.Sprint(s), r.heading.Sprint(strings.Repeat("=", ruleWidth)))
}

func (r *Renderer) field(name, value string) {
	r.printf("  %s: %s\n", r.label.Sprint(name), r.value.Sprint(value))
}

func (r *Renderer) yesNo(b bool) string {
	if b {
		return r.value.Sprint("Yes")
	}
	return r.bad.Sprint("No")
}

// printf ignores write errors; only JSON output reports them.
func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
