package odbcdiag

// Statement is a statement-scoped diagnostic handle. It is the only handle
// class whose header record answers the cursor row count, rows affected and
// dynamic function fields.
type Statement struct {
	DiagnosableAdapter
	conn *Connection
}

// Connection returns the owning connection handle.
func (s *Statement) Connection() *Connection {
	return s.conn
}

// RecordExecution notes which SQL statement the operation executed, for the
// dynamic function header fields.
func (s *Statement) RecordExecution(function string, code SQLINTEGER) {
	s.records.SetDynamicFunction(function, code)
}

// RecordRowsAffected notes how many rows an insert, delete or update
// touched.
func (s *Statement) RecordRowsAffected(n int32) {
	s.records.SetRowsAffected(n)
}

// RecordCursorRowCount notes how many rows the open cursor holds.
func (s *Statement) RecordCursorRowCount(n int64) {
	s.records.SetRowCount(n)
}
