package odbcdiag

// DiagField identifies one queryable attribute of a handle's diagnostic
// data, using the standard numeric identifiers. Header-scope and
// status-scope fields share the one namespace; which scope a field applies
// to is resolved per query by DiagnosticRecords.GetField.
type DiagField SQLSMALLINT

// Header fields (record number 0)
const (
	SQL_DIAG_RETURNCODE            DiagField = 1
	SQL_DIAG_NUMBER                DiagField = 2
	SQL_DIAG_ROW_COUNT             DiagField = 3
	SQL_DIAG_DYNAMIC_FUNCTION      DiagField = 7
	SQL_DIAG_DYNAMIC_FUNCTION_CODE DiagField = 12
	SQL_DIAG_CURSOR_ROW_COUNT      DiagField = 1254
)

// Status record fields (record numbers 1 and up)
const (
	SQL_DIAG_SQLSTATE        DiagField = 4
	SQL_DIAG_NATIVE          DiagField = 5
	SQL_DIAG_MESSAGE_TEXT    DiagField = 6
	SQL_DIAG_CLASS_ORIGIN    DiagField = 8
	SQL_DIAG_SUBCLASS_ORIGIN DiagField = 9
	SQL_DIAG_CONNECTION_NAME DiagField = 10
	SQL_DIAG_SERVER_NAME     DiagField = 11
	SQL_DIAG_COLUMN_NUMBER   DiagField = 1247
	SQL_DIAG_ROW_NUMBER      DiagField = 1248
)

// Dynamic function codes for SQL_DIAG_DYNAMIC_FUNCTION_CODE
const (
	SQL_DIAG_UNKNOWN_STATEMENT SQLINTEGER = 0
	SQL_DIAG_DELETE_WHERE      SQLINTEGER = 19
	SQL_DIAG_INSERT            SQLINTEGER = 50
	SQL_DIAG_SELECT_CURSOR     SQLINTEGER = 85
	SQL_DIAG_UPDATE_WHERE      SQLINTEGER = 82
)
