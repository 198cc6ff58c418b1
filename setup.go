package whynoterrors

import (
	"fmt"
	"os"
)

// SetupError is the error type for process bootstrap failures:
// missing configuration, a port that won't bind, a resource that
// can't be acquired before the service accepts traffic. It carries
// no HTTP status and is never rendered to a network peer; keep it
// separate from AppError, which belongs to the request path.
type SetupError struct {
	Message string
}

func (e *SetupError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Setup Error: %s\n", e.Message)
}

// Setup creates a SetupError from any displayable value.
func Setup(v any) *SetupError {
	return &SetupError{Message: display(v)}
}

// Setupf creates a SetupError with a formatted message.
func Setupf(format string, args ...any) *SetupError {
	return Setup(fmt.Sprintf(format, args...))
}

// Fatal writes the rendered message to stderr and exits with code 1.
// For use from main once startup cannot proceed.
func (e *SetupError) Fatal() {
	fmt.Fprint(os.Stderr, e.Error())
	os.Exit(1)
}
