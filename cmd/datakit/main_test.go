package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/datakit/internal/domain"
	"github.com/phrazzld/datakit/internal/render"
	"github.com/phrazzld/datakit/internal/stats"
)

// result captures one invocation of the tool.
type result struct {
	code   int
	stdout string
	stderr string
}

// isolateEnv clears every variable the configuration reads. Empty values
// are ignored by the loader.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DATAKIT_LOG_LEVEL",
		"DATAKIT_OUTPUT_FORMAT",
		"DATAKIT_OUTPUT_COLOR",
		"DATAKIT_OUTPUT_TOP_WORDS",
		"DATAKIT_USER_FORMAT",
	} {
		t.Setenv(name, "")
	}
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--no-color"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestDemoIsDefault(t *testing.T) {
	res := runCLI(t, "")

	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "String Manipulation Results")
	assert.Contains(t, res.stdout, "Statistical Analysis")
	assert.Contains(t, res.stdout, "Word Frequency Analysis")
	assert.Contains(t, res.stdout, "Email Validation")
	assert.Contains(t, res.stdout, "User Information")
	assert.Contains(t, res.stdout, "All features working correctly!")
}

func TestDemoJSON(t *testing.T) {
	res := runCLI(t, "", "--format", "json", "demo")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	var report render.DemoReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))

	assert.Len(t, report.Strings, len(defaultTextInputs))
	assert.Equal(t, stats.Summary{Count: 5, Average: 30, Median: 30, Min: 10, Max: 50}, report.Stats.Summary)
	require.NotEmpty(t, report.Frequency.Words)
	assert.Equal(t, "go", report.Frequency.Words[0].Word)
	assert.Equal(t, 2, report.Frequency.Words[0].Count)
	assert.Len(t, report.Frequency.Words, 3)
	assert.Equal(t, []render.EmailReport{
		{Address: "user@example.com", Valid: true},
		{Address: "invalid", Valid: false},
		{Address: "test@go.dev", Valid: true},
	}, report.Emails)
	assert.Equal(t, uint32(42), report.User.User.ID)

	decoded, err := domain.DecodeUser(report.User.Encoded)
	require.NoError(t, err)
	assert.Equal(t, report.User.User, decoded)
}

func TestTextCommand(t *testing.T) {
	res := runCLI(t, "", "text", "-i", "racecar", "hello")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	assert.Contains(t, res.stdout, `Input: "racecar"`)
	assert.Contains(t, res.stdout, "Reversed: olleh")
	assert.Contains(t, res.stdout, "Vowel Count: 2")
	assert.NotContains(t, res.stdout, "Panama", "defaults are only used without inputs")
}

func TestStatsCommand(t *testing.T) {
	res := runCLI(t, "", "stats", "--numbers", "3,1,5,2,4")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	assert.Contains(t, res.stdout, "Average: 3.00")
	assert.Contains(t, res.stdout, "Median: 3.00")
	assert.Contains(t, res.stdout, "Min: 1.00")
	assert.Contains(t, res.stdout, "Max: 5.00")
	assert.Contains(t, res.stdout, "Count: 5")
}

func TestStatsCommandJSON(t *testing.T) {
	res := runCLI(t, "", "--format=json", "stats", "-n", "4, 1", "3", "2")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	var report render.StatsReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, []float64{4, 1, 3, 2}, report.Numbers, "input order is preserved")
	assert.Equal(t, 2.5, report.Summary.Median)
	assert.Equal(t, 2.5, report.Summary.Average)
}

func TestStatsCommandLargeValues(t *testing.T) {
	res := runCLI(t, "", "--format", "json", "stats", "-n", "1.7e308,1.7e308")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	var report render.StatsReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 1.7e308, report.Summary.Median)
	assert.Equal(t, 1.7e308, report.Summary.Average)
}

func TestStatsCommandErrors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{name: "no numbers", args: []string{"stats"}, code: exitFailure, contains: "no numbers provided"},
		{name: "NaN", args: []string{"stats", "-n", "1,NaN"}, code: exitFailure, contains: "non-finite"},
		{name: "infinity", args: []string{"stats", "-n", "1,+Inf"}, code: exitFailure, contains: "non-finite"},
		{name: "not a number", args: []string{"stats", "-n", "1,two"}, code: exitUsage, contains: "invalid number"},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "", tc.args...)
			assert.Equal(t, tc.code, res.code)
			assert.Contains(t, res.stderr, "Error:")
			assert.Contains(t, res.stderr, tc.contains)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestFrequencyCommand(t *testing.T) {
	res := runCLI(t, "", "--format", "json", "frequency", "--top", "2", "-t", "hello world hello rust world")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	var report render.FrequencyReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 3, report.Unique)
	require.Len(t, report.Words, 2)
	assert.Equal(t, "hello", report.Words[0].Word)
	assert.Equal(t, "world", report.Words[1].Word)

	res = runCLI(t, "", "frequency")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "no text provided")
}

func TestEmailCommand(t *testing.T) {
	res := runCLI(t, "", "email", "-a", "user@example.com", "invalid")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "Valid ✓")
	assert.Contains(t, res.stdout, "Invalid ✗")

	res = runCLI(t, "", "--format", "json", "email", "@.com")
	require.Equal(t, exitOK, res.code)
	assert.JSONEq(t, `{"address": "@.com", "valid": false}`, res.stdout)

	res = runCLI(t, "", "email")
	assert.Equal(t, exitUsage, res.code)
}

func TestUserCommand(t *testing.T) {
	res := runCLI(t, "", "user", "--id", "1", "--name", "John Doe", "--email", "john@example.com")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "Name: John Doe")
	assert.Contains(t, res.stdout, "Status: Active")
	assert.Contains(t, res.stdout, "JSON Representation:")
	assert.Contains(t, res.stdout, `"email": "john@example.com"`)

	res = runCLI(t, "", "user", "--id", "2", "--name", "Jane", "--email", "jane@example.com", "--active=false", "--user-format", "yaml")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "Status: Inactive")
	assert.Contains(t, res.stdout, "YAML Representation:")
	assert.Contains(t, res.stdout, "active: false")
}

func TestUserCommandMissingFlags(t *testing.T) {
	res := runCLI(t, "", "user", "--name", "John")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "missing required flags: --id, --email")
	assert.Contains(t, res.stderr, "datakit user [flags]")
}

func TestFlagOnlyCommandsRejectPositionalArguments(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "boolean value given as a separate argument",
			args:     []string{"user", "--id", "5", "--name", "x", "--email", "a@b.com", "--active", "false"},
			contains: "unexpected arguments: false",
		},
		{
			name:     "demo with arguments",
			args:     []string{"demo", "extra", "words"},
			contains: "unexpected arguments: extra words",
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "", tc.args...)
			assert.Equal(t, exitUsage, res.code)
			assert.Contains(t, res.stderr, tc.contains)
			assert.Empty(t, res.stdout, "no record is printed")
		})
	}
}

func TestUserCommandActiveFalse(t *testing.T) {
	res := runCLI(t, "", "--format", "json", "user", "--id", "5", "--name", "x", "--email", "a@b.com", "--active=false")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	decoded, err := domain.DecodeUser(res.stdout)
	require.NoError(t, err)
	assert.False(t, decoded.Active)
}

func TestUserCommandWarnsOnInvalidRecord(t *testing.T) {
	res := runCLI(t, "", "--log-level", "warn", "user", "--id", "3", "--name", "Bob", "--email", "bob")
	require.Equal(t, exitOK, res.code, "an invalid record is still printed")
	assert.Contains(t, res.stderr, "user record does not pass validation")
}

func TestUserDecodeRoundTrip(t *testing.T) {
	u := domain.User{ID: 7, Name: "Zoë", Email: "zoe@example.com", Active: false}
	encoded, err := domain.EncodeUser(u)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o600))

	res := runCLI(t, "", "--format", "json", "user", "--decode", path)
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	decoded, err := domain.DecodeUser(res.stdout)
	require.NoError(t, err)
	assert.Equal(t, u, decoded)
}

func TestUserDecodeYAMLFromStdin(t *testing.T) {
	input := "id: 9\nname: Ann\nemail: ann@example.com\nactive: true\n"

	res := runCLI(t, input, "--format", "json", "user", "--user-format", "yaml", "--decode", "-")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	decoded, err := domain.DecodeUser(res.stdout)
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 9, Name: "Ann", Email: "ann@example.com", Active: true}, decoded)
}

func TestUserDecodeMalformed(t *testing.T) {
	res := runCLI(t, `{"id": 1, "name": "a"}`, "user", "--decode", "-")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "malformed user record")
	assert.Empty(t, res.stdout)

	res = runCLI(t, "", "user", "--decode", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "failed to read user record")
}

func TestUsageErrors(t *testing.T) {
	res := runCLI(t, "", "bogus")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, `unknown command "bogus"`)
	assert.Contains(t, res.stderr, "Available Commands:")

	res = runCLI(t, "", "stats", "--nope")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "unknown flag: --nope")
	assert.Contains(t, res.stderr, "datakit stats [numbers...] [flags]")
}

func TestInvalidFlagValuesAreUsageErrors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "output format",
			args:     []string{"--format", "xml", "demo"},
			contains: `output.format must be one of text, json, got "xml"`,
		},
		{
			name:     "top words below range",
			args:     []string{"frequency", "--top", "0", "-t", "a b"},
			contains: "output.top_words must be at least 1, got 0",
		},
		{
			name:     "log level",
			args:     []string{"--log-level", "loud", "demo"},
			contains: `log.level must be one of debug, info, warn, error, got "loud"`,
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "", tc.args...)
			assert.Equal(t, exitUsage, res.code)
			assert.Contains(t, res.stderr, "validation failed")
			assert.Contains(t, res.stderr, tc.contains)
			assert.NotContains(t, res.stderr, "Key: 'Config")
			assert.Empty(t, res.stdout)
		})
	}
}

func TestInvalidEnvironmentValueIsRuntimeError(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DATAKIT_OUTPUT_TOP_WORDS", "0")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", "frequency", "-t", "a b"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "output.top_words must be at least 1, got 0")
	assert.Empty(t, stdout.String())
}

func TestHelp(t *testing.T) {
	res := runCLI(t, "", "help")
	assert.Equal(t, exitOK, res.code)
	for _, name := range []string{"text", "stats", "frequency", "email", "user", "demo"} {
		assert.Contains(t, res.stdout, name)
	}

	res = runCLI(t, "", "--help")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "Available Commands:")
	assert.Contains(t, res.stdout, "--no-color")

	res = runCLI(t, "", "user", "--help")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "--decode")
}

func TestDebugLogsCarryRunIDAndRedact(t *testing.T) {
	res := runCLI(t, "", "--log-level", "debug", "email", "alice@example.com")
	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

	var sawCheck bool
	for _, line := range strings.Split(strings.TrimSpace(res.stderr), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line %q", line)
		if entry["msg"] == "configuration loaded" {
			continue
		}
		assert.NotEmpty(t, entry["run_id"], "log line %q", line)
		assert.Equal(t, "email", entry["command"])
		if entry["msg"] == "email checked" {
			sawCheck = true
			assert.Equal(t, "[REDACTED_EMAIL]", entry["address"])
		}
	}
	assert.True(t, sawCheck)
	assert.NotContains(t, res.stderr, "alice@example.com")
	assert.Contains(t, res.stdout, "alice@example.com", "command output is not redacted")
}

func TestEnvironmentConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DATAKIT_OUTPUT_FORMAT", "json")

	var stdout, stderr bytes.Buffer
	code := run([]string{"email", "user@example.com"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())
	assert.JSONEq(t, `{"address": "user@example.com", "valid": true}`, stdout.String())
}
