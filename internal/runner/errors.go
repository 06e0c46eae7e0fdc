package runner

import "errors"

// Process exit codes
const (
	ExitOK          = 0
	ExitConfigError = 1
	ExitSinkError   = 2
	ExitInterrupted = 3
)

// ExitError carries the process exit code for a failed run
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps the error returned by Run to a process exit code.
// Errors without an explicit code are configuration errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitConfigError
}
