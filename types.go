package odbcdiag

// ODBC integer types (64-bit ABI sizes)
type SQLSMALLINT int16
type SQLINTEGER int32
type SQLLEN int64
type SQLRETURN SQLSMALLINT

// Handle class identifiers
const (
	SQL_HANDLE_ENV  SQLSMALLINT = 1
	SQL_HANDLE_DBC  SQLSMALLINT = 2
	SQL_HANDLE_STMT SQLSMALLINT = 3
	SQL_HANDLE_DESC SQLSMALLINT = 4
)

// Return codes
const (
	SQL_SUCCESS           SQLRETURN = 0
	SQL_SUCCESS_WITH_INFO SQLRETURN = 1
	SQL_ERROR             SQLRETURN = -1
	SQL_INVALID_HANDLE    SQLRETURN = -2
	SQL_NO_DATA           SQLRETURN = 100
	SQL_NEED_DATA         SQLRETURN = 99
	SQL_STILL_EXECUTING   SQLRETURN = 2
)

// SQLSTATE values are always five characters; character targets need one
// more byte for the terminator.
const SQL_SQLSTATE_SIZE = 5

// SQL_MAX_MESSAGE_LENGTH is the buffer size the standard guarantees is large
// enough for any diagnostic message text.
const SQL_MAX_MESSAGE_LENGTH = 512

// IsSuccess checks if the return code indicates success
func IsSuccess(ret SQLRETURN) bool {
	return ret == SQL_SUCCESS || ret == SQL_SUCCESS_WITH_INFO
}

// handleTypeName returns a short name for a handle class, used in log fields.
func handleTypeName(handleType SQLSMALLINT) string {
	switch handleType {
	case SQL_HANDLE_ENV:
		return "env"
	case SQL_HANDLE_DBC:
		return "dbc"
	case SQL_HANDLE_STMT:
		return "stmt"
	case SQL_HANDLE_DESC:
		return "desc"
	default:
		return "unknown"
	}
}
