package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCLIError(t *testing.T) {
	err := NewCLIError(ExitNotFound, "token not found")
	assert.Equal(t, ExitNotFound, err.ExitCode)
	assert.Equal(t, "token not found", err.Message)
	assert.Empty(t, err.Hint)
}

func TestCLIErrorError(t *testing.T) {
	err := &CLIError{Message: "something broke"}
	assert.Equal(t, "something broke", err.Error())
}

func TestCLIErrorWithHint(t *testing.T) {
	err := NewCLIError(ExitNotFound, "token not found")
	result := err.WithHint("export GIT_TOKEN before invoking the shim")

	// Fluent builder returns same pointer
	assert.Same(t, err, result)
	assert.Equal(t, "export GIT_TOKEN before invoking the shim", err.Hint)
}

func TestCLIErrorImplementsError(t *testing.T) {
	var err error = NewCLIError(ExitGeneral, "test")
	assert.Equal(t, "test", err.Error())
}
