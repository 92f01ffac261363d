package odbcdiag

// DiagnosticRecords is the per-handle diagnostic aggregate: the header
// record describing the last operation's overall outcome, plus that
// operation's ordered status records. Every environment, connection,
// statement and descriptor handle owns exactly one store for its whole life;
// the records it holds are replaced only when another operation runs on the
// handle.
//
// The store performs no locking. A handle is operated by one goroutine at a
// time; any cross-goroutine serialization is the embedding driver's job.
type DiagnosticRecords struct {
	handleType SQLSMALLINT

	result              Result
	rowCount            int64
	rowsAffected        int32
	dynamicFunction     string
	dynamicFunctionCode SQLINTEGER

	statusRecords []StatusRecord
}

// NewDiagnosticRecords creates an empty store for a handle of the given
// class. The class decides which header fields apply (row counts and dynamic
// function are statement-only).
func NewDiagnosticRecords(handleType SQLSMALLINT) *DiagnosticRecords {
	return &DiagnosticRecords{handleType: handleType}
}

// Reset clears the store to its construction-time defaults: a successful
// result, empty header fields and no status records. Called at the start of
// each operation, before its outcome is recorded.
func (d *DiagnosticRecords) Reset() {
	d.result = ResultSuccess
	d.rowCount = 0
	d.rowsAffected = 0
	d.dynamicFunction = ""
	d.dynamicFunctionCode = 0
	d.statusRecords = d.statusRecords[:0]
}

// SetHeaderRecord stores the overall outcome of the operation. The numeric
// return code visible through SQL_DIAG_RETURNCODE is derived from it.
func (d *DiagnosticRecords) SetHeaderRecord(result Result) {
	d.result = result
}

// AddStatusRecord appends a status record. Order is significant: later
// records answer later record numbers. The header result is untouched.
func (d *DiagnosticRecords) AddStatusRecord(record StatusRecord) {
	d.statusRecords = append(d.statusRecords, record)
}

// GetStatusRecordsNumber returns the count of status records added since the
// last Reset.
func (d *DiagnosticRecords) GetStatusRecordsNumber() int {
	return len(d.statusRecords)
}

// GetStatusRecord returns the idx-th status record, 0-based. The caller must
// have bounds-checked idx against GetStatusRecordsNumber; an out-of-range
// index is a programming error and panics.
func (d *DiagnosticRecords) GetStatusRecord(idx int) StatusRecord {
	return d.statusRecords[idx]
}

// GetResult returns the result of the last operation.
func (d *DiagnosticRecords) GetResult() Result {
	return d.result
}

// GetReturnCode returns the return code of the last operation.
func (d *DiagnosticRecords) GetReturnCode() SQLRETURN {
	return d.result.ReturnCode()
}

// IsSuccessful reports whether the last operation completed with a
// success-equivalent result.
func (d *DiagnosticRecords) IsSuccessful() bool {
	return d.result.IsSuccess()
}

// GetRowCount returns the count of rows in the cursor.
func (d *DiagnosticRecords) GetRowCount() int64 {
	return d.rowCount
}

// SetRowCount stores the count of rows in the cursor. Meaningful on
// statement handles only.
func (d *DiagnosticRecords) SetRowCount(rowCount int64) {
	d.rowCount = rowCount
}

// GetRowsAffected returns the number of rows affected by an insert, delete
// or update performed by the last operation.
func (d *DiagnosticRecords) GetRowsAffected() int32 {
	return d.rowsAffected
}

// SetRowsAffected stores the number of rows affected by the last operation.
// Meaningful on statement handles only.
func (d *DiagnosticRecords) SetRowsAffected(rowsAffected int32) {
	d.rowsAffected = rowsAffected
}

// GetDynamicFunction returns the string describing the SQL statement the
// underlying function executed.
func (d *DiagnosticRecords) GetDynamicFunction() string {
	return d.dynamicFunction
}

// GetDynamicFunctionCode returns the numeric code describing the SQL
// statement that was executed.
func (d *DiagnosticRecords) GetDynamicFunctionCode() SQLINTEGER {
	return d.dynamicFunctionCode
}

// SetDynamicFunction stores the description of the executed SQL statement.
// Meaningful on statement handles only.
func (d *DiagnosticRecords) SetDynamicFunction(function string, code SQLINTEGER) {
	d.dynamicFunction = function
	d.dynamicFunctionCode = code
}

// headerField is one entry of the header-scope dispatch table. Fields about
// cursors and executed statements only exist on statement handles.
type headerField struct {
	stmtOnly bool
	write    func(d *DiagnosticRecords, buf DataBuffer) ConvResult
}

var headerFields = map[DiagField]headerField{
	SQL_DIAG_NUMBER: {write: func(d *DiagnosticRecords, buf DataBuffer) ConvResult {
		return buf.WriteInt32(int32(len(d.statusRecords)))
	}},
	SQL_DIAG_RETURNCODE: {write: func(d *DiagnosticRecords, buf DataBuffer) ConvResult {
		return buf.WriteInt32(int32(d.result.ReturnCode()))
	}},
	SQL_DIAG_CURSOR_ROW_COUNT: {stmtOnly: true, write: func(d *DiagnosticRecords, buf DataBuffer) ConvResult {
		return buf.WriteInt64(d.rowCount)
	}},
	SQL_DIAG_ROW_COUNT: {stmtOnly: true, write: func(d *DiagnosticRecords, buf DataBuffer) ConvResult {
		return buf.WriteInt32(d.rowsAffected)
	}},
	SQL_DIAG_DYNAMIC_FUNCTION: {stmtOnly: true, write: func(d *DiagnosticRecords, buf DataBuffer) ConvResult {
		return buf.WriteString(d.dynamicFunction)
	}},
	SQL_DIAG_DYNAMIC_FUNCTION_CODE: {stmtOnly: true, write: func(d *DiagnosticRecords, buf DataBuffer) ConvResult {
		return buf.WriteInt32(int32(d.dynamicFunctionCode))
	}},
}

var statusFields = map[DiagField]func(r StatusRecord, buf DataBuffer) ConvResult{
	SQL_DIAG_SQLSTATE: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteString(r.State().Code())
	},
	SQL_DIAG_MESSAGE_TEXT: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteString(r.Message())
	},
	SQL_DIAG_CLASS_ORIGIN: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteString(r.ClassOrigin())
	},
	SQL_DIAG_SUBCLASS_ORIGIN: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteString(r.SubclassOrigin())
	},
	SQL_DIAG_CONNECTION_NAME: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteString(r.ConnectionName())
	},
	SQL_DIAG_SERVER_NAME: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteString(r.ServerName())
	},
	SQL_DIAG_NATIVE: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteInt32(r.NativeError())
	},
	SQL_DIAG_ROW_NUMBER: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteInt64(int64(r.RowNumber()))
	},
	SQL_DIAG_COLUMN_NUMBER: func(r StatusRecord, buf DataBuffer) ConvResult {
		return buf.WriteInt32(r.ColumnNumber())
	},
}

// GetField marshals one diagnostic field into buf.
//
// recNum 0 addresses the header record; only header-scope fields apply
// there, and only those legal for the handle class. recNum 1 and up address
// status records in insertion order; probing increasing record numbers until
// ResultNoData is the supported way to enumerate them.
//
// Outcomes: ResultSuccess (written in full), ResultSuccessWithInfo (written
// truncated, as reported by buf), ResultError (field does not apply at the
// addressed scope, or buf cannot hold it), ResultNoData (recNum beyond the
// last status record). An illegal field never touches buf.
func (d *DiagnosticRecords) GetField(recNum int, field DiagField, buf DataBuffer) Result {
	if recNum < 0 {
		return ResultError
	}

	if recNum == 0 {
		f, ok := headerFields[field]
		if !ok || (f.stmtOnly && d.handleType != SQL_HANDLE_STMT) {
			return ResultError
		}
		return convToResult(f.write(d, buf))
	}

	idx := recNum - 1
	if idx >= len(d.statusRecords) {
		return ResultNoData
	}
	write, ok := statusFields[field]
	if !ok {
		return ResultError
	}
	return convToResult(write(d.statusRecords[idx], buf))
}

func convToResult(conv ConvResult) Result {
	switch conv {
	case ConvSuccess:
		return ResultSuccess
	case ConvTruncated:
		return ResultSuccessWithInfo
	default:
		return ResultError
	}
}
