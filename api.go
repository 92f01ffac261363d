package odbcdiag

// GetDiagRec implements the standard "get diagnostic record" call over an
// in-process handle. recNum is 1-based; probing increasing record numbers
// until SQL_NO_DATA enumerates every status record of the last operation.
//
// sqlState, if non-nil, must have room for the five-character code plus a
// terminator. messageText receives the message with character-target
// truncation semantics; textLength always receives the full message length,
// so a caller seeing truncation can retry with a bigger buffer. Any output
// argument may be nil to skip it.
func GetDiagRec(d Diagnosable, recNum SQLSMALLINT, sqlState []byte, nativeError *SQLINTEGER, messageText []byte, textLength *SQLSMALLINT) SQLRETURN {
	if d == nil || d.Diagnostics() == nil {
		return SQL_INVALID_HANDLE
	}
	if recNum < 1 {
		return SQL_ERROR
	}

	diag := d.Diagnostics()
	if int(recNum) > diag.GetStatusRecordsNumber() {
		return SQL_NO_DATA
	}
	rec := diag.GetStatusRecord(int(recNum) - 1)

	if sqlState != nil {
		if len(sqlState) < SQL_SQLSTATE_SIZE+1 {
			return SQL_ERROR
		}
		copy(sqlState, rec.State().Code())
		sqlState[SQL_SQLSTATE_SIZE] = 0
	}
	if nativeError != nil {
		*nativeError = SQLINTEGER(rec.NativeError())
	}

	ret := SQL_SUCCESS
	buf := NewValueBuffer(messageText)
	if buf.WriteString(rec.Message()) == ConvTruncated && messageText != nil {
		ret = SQL_SUCCESS_WITH_INFO
	}
	if textLength != nil {
		*textLength = SQLSMALLINT(buf.DataLength())
	}
	return ret
}

// GetDiagField implements the standard "get diagnostic field" call over an
// in-process handle. recNum 0 addresses the header record, 1 and up address
// status records. target takes any destination ValueBuffer supports; for
// character data, stringLength (if non-nil) receives the full data length in
// bytes, excluding the terminator.
//
// The return code follows the dispatch contract: SQL_SUCCESS,
// SQL_SUCCESS_WITH_INFO on truncation, SQL_ERROR when the field does not
// apply at the addressed scope, SQL_NO_DATA when recNum is past the last
// status record.
func GetDiagField(d Diagnosable, recNum SQLSMALLINT, field DiagField, target interface{}, stringLength *SQLSMALLINT) SQLRETURN {
	if d == nil || d.Diagnostics() == nil {
		return SQL_INVALID_HANDLE
	}

	buf := NewValueBuffer(target)
	result := d.Diagnostics().GetField(int(recNum), field, buf)
	if result.IsSuccess() && stringLength != nil {
		*stringLength = SQLSMALLINT(buf.DataLength())
	}
	return result.ReturnCode()
}
