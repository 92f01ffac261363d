package odbcdiag

import (
	"fmt"
	"strings"
)

// Error is the Go-error view of one diagnostic status record. It implements
// the error interface and provides SQLState, native error code, and a
// human-readable message.
type Error struct {
	SQLState    string
	NativeError int32
	Message     string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s (native error: %d)", e.SQLState, e.Message, e.NativeError)
}

// Unwrap returns nil as Error is a terminal error type.
func (e *Error) Unwrap() error {
	return nil
}

// Is reports whether target matches this error's SQLState. This allows
// using errors.Is to check for specific diagnostic conditions.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.SQLState == t.SQLState
	}
	return false
}

// Errors represents multiple diagnostic conditions from one operation
type Errors []Error

// Error implements the error interface for multiple errors
func (e Errors) Error() string {
	if len(e) == 0 {
		return "unknown diagnostic error"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// NewError builds the error view of a handle's current status records: an
// *Error for a single record, Errors for several, and a generic HY000
// *Error when the operation failed without recording anything.
func NewError(d Diagnosable) error {
	diag := d.Diagnostics()
	n := diag.GetStatusRecordsNumber()
	if n == 0 {
		return &Error{
			SQLState: StateHY000GeneralError.Code(),
			Message:  "unknown diagnostic error",
		}
	}
	if n == 1 {
		return recordError(diag.GetStatusRecord(0))
	}
	errs := make(Errors, n)
	for i := 0; i < n; i++ {
		errs[i] = *recordError(diag.GetStatusRecord(i))
	}
	return errs
}

func recordError(rec StatusRecord) *Error {
	return &Error{
		SQLState:    rec.State().Code(),
		NativeError: rec.NativeError(),
		Message:     rec.Message(),
	}
}

// sqlStateOf extracts the leading SQLSTATE code from err, or "".
func sqlStateOf(err error) string {
	switch e := err.(type) {
	case *Error:
		return e.SQLState
	case Errors:
		if len(e) > 0 {
			return e[0].SQLState
		}
	}
	return ""
}

// IsConnectionError reports whether err indicates a connection problem.
// Connection errors have SQLState codes in class "08".
func IsConnectionError(err error) bool {
	state := sqlStateOf(err)
	return len(state) >= 2 && state[:2] == State08001UnableToConnect.Class()
}

// IsDataTruncation reports whether err indicates data truncation.
func IsDataTruncation(err error) bool {
	return sqlStateOf(err) == State01004DataTruncated.Code()
}

// IsRetryable reports whether err represents a transient condition that may
// succeed if retried: connection failures, timeouts, and deadlocks.
func IsRetryable(err error) bool {
	state := sqlStateOf(err)
	if state == "" {
		return false
	}
	switch state {
	case State40001SerializationFailure.Code(),
		State40003StatementCompletionUnknown.Code(),
		StateHYT00Timeout.Code(),
		StateHYT01ConnectionTimeout.Code():
		return true
	}
	// Connection errors (08xxx) are generally retryable
	return len(state) >= 2 && state[:2] == State08001UnableToConnect.Class()
}
