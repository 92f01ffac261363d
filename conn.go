package odbcdiag

import "strings"

// Connection is a connection-scoped diagnostic handle. It carries the
// connection and server names that get stamped onto every status record
// reported through it or through its statements.
type Connection struct {
	DiagnosableAdapter
	env   *Environment
	attrs map[string]string
}

// ApplyConnectionString parses an ODBC connection string, e.g.
//
//   - "DSN=mydsn;UID=user;PWD=password"
//   - "DRIVER={VelDB};SERVER=db1.example.com;DATABASE=sales"
//
// and derives the connection's server name from it. The call is a
// diagnosable operation: unrecognized attributes add 01S00 status records
// and the operation completes with success-with-info; a malformed string
// fails the operation and returns the diagnostic view as an error.
func (c *Connection) ApplyConnectionString(connStr string) error {
	c.BeginOperation()

	attrs, err := parseConnectionString(connStr)
	if err != nil {
		c.AddStatusRecord(StateHY000GeneralError, err.Error())
		c.CompleteOperation(ResultError)
		return NewError(c)
	}

	result := ResultSuccess
	for key := range attrs {
		if !knownConnAttrs[key] {
			c.AddStatusRecord(State01S00InvalidConnectionStringAttribute,
				"invalid connection string attribute '"+key+"'")
			result = ResultSuccessWithInfo
		}
	}

	c.attrs = attrs
	if server, ok := attrs["SERVER"]; ok {
		c.serverName = server
	} else if dsn, ok := attrs["DSN"]; ok {
		c.serverName = dsn
	}

	c.CompleteOperation(result)
	return nil
}

// ConnectionName returns the name status records are stamped with.
func (c *Connection) ConnectionName() string {
	return c.connectionName
}

// SetConnectionName overrides the generated connection name.
func (c *Connection) SetConnectionName(name string) {
	c.connectionName = name
}

// ServerName returns the server name derived from the connection string,
// or "" before one is applied.
func (c *Connection) ServerName() string {
	return c.serverName
}

// Attr returns one parsed connection string attribute by its upper-case key.
func (c *Connection) Attr(key string) (string, bool) {
	v, ok := c.attrs[strings.ToUpper(key)]
	return v, ok
}

// CreateStatement allocates a statement handle under this connection. The
// statement inherits the connection's names for its status records.
func (c *Connection) CreateStatement() *Statement {
	s := &Statement{DiagnosableAdapter: newAdapter(SQL_HANDLE_STMT), conn: c}
	s.connectionName = c.connectionName
	s.serverName = c.serverName
	return s
}

var knownConnAttrs = map[string]bool{
	"DSN":      true,
	"DRIVER":   true,
	"SERVER":   true,
	"PORT":     true,
	"DATABASE": true,
	"UID":      true,
	"PWD":      true,
}

// parseConnectionString splits "KEY=value;KEY=value" into a map with
// upper-cased keys. Values may be brace-delimited ("PWD={a;b}") to carry
// semicolons; everything else is taken literally.
func parseConnectionString(connStr string) (map[string]string, error) {
	attrs := make(map[string]string)
	i := 0

	for i < len(connStr) {
		// Skip empty segments
		if connStr[i] == ';' {
			i++
			continue
		}

		eq := strings.IndexByte(connStr[i:], '=')
		if eq < 0 {
			return nil, &parseError{connStr[i:]}
		}
		key := strings.ToUpper(strings.TrimSpace(connStr[i : i+eq]))
		if key == "" {
			return nil, &parseError{connStr[i:]}
		}
		i += eq + 1

		var value string
		if i < len(connStr) && connStr[i] == '{' {
			end := strings.IndexByte(connStr[i:], '}')
			if end < 0 {
				return nil, &parseError{connStr[i:]}
			}
			value = connStr[i+1 : i+end]
			i += end + 1
		} else {
			end := strings.IndexByte(connStr[i:], ';')
			if end < 0 {
				end = len(connStr) - i
			}
			value = strings.TrimSpace(connStr[i : i+end])
			i += end
		}
		attrs[key] = value

		if i < len(connStr) && connStr[i] != ';' {
			return nil, &parseError{connStr[i:]}
		}
	}

	return attrs, nil
}

type parseError struct {
	at string
}

func (e *parseError) Error() string {
	return "malformed connection string near '" + e.at + "'"
}
