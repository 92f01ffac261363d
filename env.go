package odbcdiag

// Environment is the root diagnostic handle. It exists so that failures
// which happen before any connection is established (allocation problems,
// unsupported attribute values) have a place to be reported.
type Environment struct {
	DiagnosableAdapter
}

// NewEnvironment allocates an environment handle with an empty diagnostic
// store.
func NewEnvironment() *Environment {
	return &Environment{DiagnosableAdapter: newAdapter(SQL_HANDLE_ENV)}
}

// CreateConnection allocates a connection handle under this environment. The
// connection gets a generated name until a connection string assigns one.
func (e *Environment) CreateConnection() *Connection {
	c := &Connection{DiagnosableAdapter: newAdapter(SQL_HANDLE_DBC), env: e}
	c.connectionName = "conn-" + c.id[:8]
	return c
}
