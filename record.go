package odbcdiag

// StatusRecord is one diagnosable condition (error, warning or informational
// event) raised while processing a single operation. Records are immutable
// once constructed: a correction is a new record appended after the old one,
// never an edit in place.
type StatusRecord struct {
	state          SQLState
	message        string
	connectionName string
	serverName     string
	nativeError    int32
	rowNumber      int32
	columnNumber   int32
}

// NewStatusRecord builds a record that is not associated with any row or
// column of the rowset or parameter set.
func NewStatusRecord(state SQLState, message, connectionName, serverName string) StatusRecord {
	return StatusRecord{
		state:          state,
		message:        message,
		connectionName: connectionName,
		serverName:     serverName,
	}
}

// NewStatusRecordAt builds a record associated with a row and column
// position. A zero row or column number means "not associated".
func NewStatusRecordAt(state SQLState, message, connectionName, serverName string, rowNumber, columnNumber int32) StatusRecord {
	r := NewStatusRecord(state, message, connectionName, serverName)
	r.rowNumber = rowNumber
	r.columnNumber = columnNumber
	return r
}

// WithNativeError returns a copy of the record carrying the data source's
// native error code.
func (r StatusRecord) WithNativeError(code int32) StatusRecord {
	r.nativeError = code
	return r
}

// State returns the diagnostic state of the record.
func (r StatusRecord) State() SQLState {
	return r.state
}

// Message returns the informational message on the error or warning.
func (r StatusRecord) Message() string {
	return r.message
}

// ConnectionName returns the name of the connection the record relates to.
func (r StatusRecord) ConnectionName() string {
	return r.connectionName
}

// ServerName returns the name of the server the record relates to.
func (r StatusRecord) ServerName() string {
	return r.serverName
}

// NativeError returns the data source's native error code, or 0.
func (r StatusRecord) NativeError() int32 {
	return r.nativeError
}

// RowNumber returns the row in the rowset, or the parameter in the set of
// parameters, the record is associated with. 0 means no association.
func (r StatusRecord) RowNumber() int32 {
	return r.rowNumber
}

// ColumnNumber returns the column in the result set, or the parameter in the
// set of parameters, the record is associated with. 0 means no association.
func (r StatusRecord) ColumnNumber() int32 {
	return r.columnNumber
}

// ClassOrigin identifies the document defining the class portion of the
// record's SQLSTATE.
func (r StatusRecord) ClassOrigin() string {
	return r.state.ClassOrigin()
}

// SubclassOrigin identifies the document defining the subclass portion of
// the record's SQLSTATE.
func (r StatusRecord) SubclassOrigin() string {
	return r.state.SubclassOrigin()
}
