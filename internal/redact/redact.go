// Package redact masks personal data and local file paths in strings before
// they are written to logs. Command output is never redacted; only what the
// program says about its inputs in diagnostics.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
)

var (
	// Anything with a local part, an '@' and a dotted domain.
	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	unixPathRegex = regexp.MustCompile(`(/[\w.\-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`)

	// Order matters: emails go first so their domains are not mistaken for paths.
	rules = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{emailRegex, RedactedEmailPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
		{winPathRegex, RedactedPathPlaceholder},
	}
)

// String redacts email addresses and file paths from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rule := range rules {
		result = rule.pattern.ReplaceAllString(result, rule.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
