package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/datakit/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "This is a normal log message",
			expected: "This is a normal log message",
		},
		{
			name:     "email address",
			input:    "validated john.doe+tag@example.com",
			expected: "validated [REDACTED_EMAIL]",
		},
		{
			name:     "heuristic input that is not an address",
			input:    "validated invalid",
			expected: "validated invalid",
		},
		{
			name:     "unix path",
			input:    "reading record from /home/alice/records/user.json",
			expected: "reading record from [REDACTED_PATH]",
		},
		{
			name:     "windows path",
			input:    `reading record from C:\Users\alice\user.json`,
			expected: "reading record from [REDACTED_PATH]",
		},
		{
			name:     "email and path together",
			input:    "user alice@rust.dev decoded from /tmp/in/user.yaml",
			expected: "user [REDACTED_EMAIL] decoded from [REDACTED_PATH]",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("open /etc/datakit/datakit.yaml: %w", errors.New("permission denied"))
	assert.Equal(t, "open [REDACTED_PATH]: permission denied", redact.Error(err))
}
