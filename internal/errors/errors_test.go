package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrIface,
		ErrTerm,
		ErrSample,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .bwmon.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "interface error",
			code:       ErrIface,
			message:    "No interface matches 'xyz'",
			suggestion: "Use 'bwmon --list' to see available interfaces",
		},
		{
			name:       "terminal error",
			code:       ErrTerm,
			message:    "Failed to initialize terminal",
			suggestion: "Run bwmon in an interactive terminal",
		},
		{
			name:       "sampling error",
			code:       ErrSample,
			message:    "Failed to read interface counters",
			suggestion: "The tick will be retried at the next interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .bwmon.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .bwmon.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrTerm, "Terminal init failed", "Try again"),
			expectedParts: []string{
				"✗",
				"Terminal init failed",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrSample, "Counter read failed", ""),
			expectedParts: []string{
				"Counter read failed",
			},
			notExpected: []string{
				"suggestion",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("read /sys/class/net: permission denied")
	wrapped := Wrap(cause, "Failed to read counters")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrSample, wrapped.Code, "Wrap should default to ErrSample code")
	assert.Equal(t, "Failed to read counters", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create a config with 'bwmon init'")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create a config with 'bwmon init'", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestNewInterfaceNotFound(t *testing.T) {
	err := NewInterfaceNotFound("xyz", []string{"eth0", "wlan0"})

	require.NotNil(t, err)
	assert.Equal(t, ErrIface, err.Code)
	assert.Contains(t, err.Message, "xyz")

	// The formatted error must enumerate every available interface
	output := err.Error()
	assert.Contains(t, output, "eth0")
	assert.Contains(t, output, "wlan0")
}

func TestNewNoInterfaces(t *testing.T) {
	err := NewNoInterfaces()

	require.NotNil(t, err)
	assert.Equal(t, ErrIface, err.Code)
	assert.Contains(t, err.Message, "No network interfaces")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := WrapWithCode(cause, ErrSample, "Sampling failed", "")

	unwrapped := wrapped.Unwrap()
	assert.Equal(t, cause, unwrapped)
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrTerm, "Terminal error", "")

	assert.True(t, errors.Is(wrapped, cause))
}

func TestErrorsAs(t *testing.T) {
	wrapped := New(ErrConfig, "Config error", "Fix config")

	var bwErr *Error
	ok := errors.As(wrapped, &bwErr)

	assert.True(t, ok)
	assert.Equal(t, ErrConfig, bwErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrIface))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	// ✗ <What failed>
	//
	//   <Why it failed - technical details>
	//
	//   <How to fix it - actionable steps>
	err := WrapWithCode(
		errors.New("read timed out after 2s"),
		ErrSample,
		"Failed to read interface counters",
		"Check that the interface still exists",
	)

	output := err.Error()
	lines := strings.Split(output, "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Failed to read interface counters")
}
