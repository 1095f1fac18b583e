package output

// Exit codes following sysexits.h convention
const (
	ExitOK       = 0 // Success
	ExitGeneral  = 1 // General error
	ExitUsage    = 2 // Invalid usage / bad arguments
	ExitNotFound = 4 // Requested item not found
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}
