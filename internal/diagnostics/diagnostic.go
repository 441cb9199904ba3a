package diagnostics

import "fmt"

// DiagnosticError is one finished, human-readable diagnostic.
// Error returns the message unchanged; the code and argument position are
// carried alongside for callers that want to filter or count.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string // set by the driver when known
	Arg     int    // 1-based argument position for ErrT004, otherwise 0
	Err     error  // underlying cause, if any
}

func (e *DiagnosticError) Error() string {
	return e.Message
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}

// String renders the diagnostic with its code and, when known, its file.
func (e *DiagnosticError) String() string {
	if e.File != "" {
		return fmt.Sprintf("%s: error[%s]: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("error[%s]: %s", e.Code, e.Message)
}

// NewError creates a diagnostic with a formatted message.
func NewError(code ErrorCode, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewArgumentError creates an ErrT004 diagnostic for the argument at 1-based position arg.
func NewArgumentError(arg int, format string, args ...interface{}) *DiagnosticError {
	e := NewError(ErrT004, format, args...)
	e.Arg = arg
	return e
}

// Wrap creates a diagnostic whose message is cause's message, optionally
// prefixed, and which unwraps to cause.
func Wrap(code ErrorCode, cause error, prefix string) *DiagnosticError {
	msg := cause.Error()
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	return &DiagnosticError{Code: code, Message: msg, Err: cause}
}

// List wraps a single diagnostic as the one-element list every rule returns.
func List(err *DiagnosticError) []*DiagnosticError {
	return []*DiagnosticError{err}
}

// Messages returns the plain message of every diagnostic, in order.
func Messages(errs []*DiagnosticError) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return msgs
}

// WithFile sets File on every diagnostic that does not have one yet.
func WithFile(errs []*DiagnosticError, file string) []*DiagnosticError {
	for _, e := range errs {
		if e.File == "" {
			e.File = file
		}
	}
	return errs
}
