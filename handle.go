package odbcdiag

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Diagnosable is any handle that carries a diagnostic record store.
type Diagnosable interface {
	Diagnostics() *DiagnosticRecords
}

// DiagnosableAdapter gives a handle its diagnostic store plus the
// bookkeeping every handle repeats around an operation: reset at the start,
// status records while it runs, the header result when it completes. Embed
// it in the handle struct; the concrete handle types in this package all do.
type DiagnosableAdapter struct {
	id         string
	handleType SQLSMALLINT
	records    *DiagnosticRecords

	connectionName string
	serverName     string
}

func newAdapter(handleType SQLSMALLINT) DiagnosableAdapter {
	return DiagnosableAdapter{
		id:         uuid.NewString(),
		handleType: handleType,
		records:    NewDiagnosticRecords(handleType),
	}
}

// Diagnostics returns the handle's diagnostic record store.
func (a *DiagnosableAdapter) Diagnostics() *DiagnosticRecords {
	return a.records
}

// HandleID returns the identifier the handle is traced under in logs.
func (a *DiagnosableAdapter) HandleID() string {
	return a.id
}

// BeginOperation discards the previous operation's diagnostics. Call it
// before recording anything about a new operation.
func (a *DiagnosableAdapter) BeginOperation() {
	a.records.Reset()
}

// AddStatusRecord reports one diagnosable condition, stamped with the
// handle's connection and server names.
func (a *DiagnosableAdapter) AddStatusRecord(state SQLState, message string) {
	a.addRecord(NewStatusRecord(state, message, a.connectionName, a.serverName))
}

// AddStatusRecordAt reports a condition associated with a row and column of
// the rowset or parameter set.
func (a *DiagnosableAdapter) AddStatusRecordAt(state SQLState, message string, rowNumber, columnNumber int32) {
	a.addRecord(NewStatusRecordAt(state, message, a.connectionName, a.serverName, rowNumber, columnNumber))
}

func (a *DiagnosableAdapter) addRecord(rec StatusRecord) {
	a.records.AddStatusRecord(rec)
	log.Debug().
		Str("handle", handleTypeName(a.handleType)).
		Str("handle_id", a.id).
		Str("sqlstate", rec.State().Code()).
		Str("message", rec.Message()).
		Msg("Status record added")
}

// CompleteOperation records the overall outcome of the operation.
func (a *DiagnosableAdapter) CompleteOperation(result Result) {
	a.records.SetHeaderRecord(result)
	log.Debug().
		Str("handle", handleTypeName(a.handleType)).
		Str("handle_id", a.id).
		Str("result", result.String()).
		Int("status_records", a.records.GetStatusRecordsNumber()).
		Msg("Operation completed")
}
