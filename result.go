package odbcdiag

import "fmt"

// Result is the outcome of the last operation performed on a handle. The
// numeric return code exposed through the diagnostic header is a pure
// projection of this value; it is never settable on its own.
type Result int

const (
	ResultSuccess Result = iota
	ResultSuccessWithInfo
	ResultError
	ResultInvalidHandle
	ResultNoData
	ResultNeedData
	ResultStillExecuting
)

// ReturnCode projects the result onto the standard SQLRETURN vocabulary.
// The projection is total: values outside the enumeration map to SQL_ERROR.
func (r Result) ReturnCode() SQLRETURN {
	switch r {
	case ResultSuccess:
		return SQL_SUCCESS
	case ResultSuccessWithInfo:
		return SQL_SUCCESS_WITH_INFO
	case ResultInvalidHandle:
		return SQL_INVALID_HANDLE
	case ResultNoData:
		return SQL_NO_DATA
	case ResultNeedData:
		return SQL_NEED_DATA
	case ResultStillExecuting:
		return SQL_STILL_EXECUTING
	default:
		return SQL_ERROR
	}
}

// IsSuccess reports whether the result is one of the success-equivalent
// variants.
func (r Result) IsSuccess() bool {
	return r == ResultSuccess || r == ResultSuccessWithInfo
}

// String returns the standard name of the projected return code.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "SQL_SUCCESS"
	case ResultSuccessWithInfo:
		return "SQL_SUCCESS_WITH_INFO"
	case ResultError:
		return "SQL_ERROR"
	case ResultInvalidHandle:
		return "SQL_INVALID_HANDLE"
	case ResultNoData:
		return "SQL_NO_DATA"
	case ResultNeedData:
		return "SQL_NEED_DATA"
	case ResultStillExecuting:
		return "SQL_STILL_EXECUTING"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}
