package odbcdiag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedStatement(t *testing.T) *Statement {
	t.Helper()

	env := NewEnvironment()
	conn := env.CreateConnection()
	require.NoError(t, conn.ApplyConnectionString("SERVER=db1.example.com;DATABASE=sales"))
	stmt := conn.CreateStatement()

	stmt.BeginOperation()
	stmt.AddStatusRecord(State01004DataTruncated, "string data, right-truncated")
	stmt.AddStatusRecordAt(State22003NumericValueOutOfRange, "numeric value out of range", 3, 1)
	stmt.CompleteOperation(ResultError)
	return stmt
}

// =============================================================================
// GetDiagRec
// =============================================================================

func TestGetDiagRec(t *testing.T) {
	stmt := failedStatement(t)

	sqlState := make([]byte, 6)
	var native SQLINTEGER
	message := make([]byte, SQL_MAX_MESSAGE_LENGTH)
	var textLen SQLSMALLINT

	require.Equal(t, SQL_SUCCESS, GetDiagRec(stmt, 1, sqlState, &native, message, &textLen))
	assert.Equal(t, "01004", string(sqlState[:5]))
	assert.Equal(t, byte(0), sqlState[5])
	assert.Equal(t, SQLINTEGER(0), native)
	assert.Equal(t, "string data, right-truncated", string(message[:textLen]))
	assert.Equal(t, byte(0), message[textLen])

	require.Equal(t, SQL_SUCCESS, GetDiagRec(stmt, 2, sqlState, &native, message, &textLen))
	assert.Equal(t, "22003", string(sqlState[:5]))
	assert.Equal(t, "numeric value out of range", string(message[:textLen]))
}

func TestGetDiagRec_Enumeration(t *testing.T) {
	stmt := failedStatement(t)

	var got []string
	for recNum := SQLSMALLINT(1); ; recNum++ {
		sqlState := make([]byte, 6)
		ret := GetDiagRec(stmt, recNum, sqlState, nil, nil, nil)
		if ret == SQL_NO_DATA {
			break
		}
		require.Equal(t, SQL_SUCCESS, ret)
		got = append(got, string(sqlState[:5]))
	}
	assert.Equal(t, []string{"01004", "22003"}, got)
}

func TestGetDiagRec_Truncation(t *testing.T) {
	stmt := failedStatement(t)

	message := make([]byte, 10)
	var textLen SQLSMALLINT
	require.Equal(t, SQL_SUCCESS_WITH_INFO, GetDiagRec(stmt, 1, nil, nil, message, &textLen))
	assert.Equal(t, "string da", string(message[:9]))
	assert.Equal(t, byte(0), message[9])
	assert.Equal(t, SQLSMALLINT(len("string data, right-truncated")), textLen,
		"full length so the caller can size a retry buffer")
}

func TestGetDiagRec_Errors(t *testing.T) {
	stmt := failedStatement(t)

	t.Run("nil handle", func(t *testing.T) {
		assert.Equal(t, SQL_INVALID_HANDLE, GetDiagRec(nil, 1, nil, nil, nil, nil))
	})

	t.Run("record zero", func(t *testing.T) {
		assert.Equal(t, SQL_ERROR, GetDiagRec(stmt, 0, nil, nil, nil, nil))
	})

	t.Run("negative record", func(t *testing.T) {
		assert.Equal(t, SQL_ERROR, GetDiagRec(stmt, -3, nil, nil, nil, nil))
	})

	t.Run("past last record", func(t *testing.T) {
		assert.Equal(t, SQL_NO_DATA, GetDiagRec(stmt, 3, nil, nil, nil, nil))
	})

	t.Run("sqlstate buffer too small", func(t *testing.T) {
		assert.Equal(t, SQL_ERROR, GetDiagRec(stmt, 1, make([]byte, 5), nil, nil, nil))
	})
}

func TestGetDiagRec_NilOutputsSkipped(t *testing.T) {
	stmt := failedStatement(t)
	assert.Equal(t, SQL_SUCCESS, GetDiagRec(stmt, 1, nil, nil, nil, nil))
}

// =============================================================================
// GetDiagField
// =============================================================================

func TestGetDiagField_Header(t *testing.T) {
	stmt := failedStatement(t)

	var n int32
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 0, SQL_DIAG_NUMBER, &n, nil))
	assert.Equal(t, int32(2), n)

	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 0, SQL_DIAG_RETURNCODE, &n, nil))
	assert.Equal(t, int32(SQL_ERROR), n)
}

func TestGetDiagField_Status(t *testing.T) {
	stmt := failedStatement(t)

	var state string
	var strLen SQLSMALLINT
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 2, SQL_DIAG_SQLSTATE, &state, &strLen))
	assert.Equal(t, "22003", state)
	assert.Equal(t, SQLSMALLINT(5), strLen)

	var server string
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 2, SQL_DIAG_SERVER_NAME, &server, nil))
	assert.Equal(t, "db1.example.com", server)

	var row int64
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 2, SQL_DIAG_ROW_NUMBER, &row, nil))
	assert.Equal(t, int64(3), row)
}

func TestGetDiagField_StatementOnlyFieldOnConnection(t *testing.T) {
	env := NewEnvironment()
	conn := env.CreateConnection()

	var n int64
	assert.Equal(t, SQL_ERROR, GetDiagField(conn, 0, SQL_DIAG_CURSOR_ROW_COUNT, &n, nil))
}

func TestGetDiagField_PastLastRecord(t *testing.T) {
	stmt := failedStatement(t)
	var state string
	assert.Equal(t, SQL_NO_DATA, GetDiagField(stmt, 3, SQL_DIAG_SQLSTATE, &state, nil))
}

func TestGetDiagField_NilHandle(t *testing.T) {
	var n int32
	assert.Equal(t, SQL_INVALID_HANDLE, GetDiagField(nil, 0, SQL_DIAG_NUMBER, &n, nil))
}

func TestGetDiagField_DynamicFunction(t *testing.T) {
	env := NewEnvironment()
	conn := env.CreateConnection()
	stmt := conn.CreateStatement()

	stmt.BeginOperation()
	stmt.RecordExecution("INSERT", SQL_DIAG_INSERT)
	stmt.RecordRowsAffected(7)
	stmt.CompleteOperation(ResultSuccess)

	var fn string
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 0, SQL_DIAG_DYNAMIC_FUNCTION, &fn, nil))
	assert.Equal(t, "INSERT", fn)

	var code int32
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 0, SQL_DIAG_DYNAMIC_FUNCTION_CODE, &code, nil))
	assert.Equal(t, int32(SQL_DIAG_INSERT), code)

	var affected int32
	require.Equal(t, SQL_SUCCESS, GetDiagField(stmt, 0, SQL_DIAG_ROW_COUNT, &affected, nil))
	assert.Equal(t, int32(7), affected)
}

func ExampleGetDiagRec() {
	env := NewEnvironment()
	conn := env.CreateConnection()
	conn.SetConnectionName("orders")
	_ = conn.ApplyConnectionString("SERVER=db1;DATABASE=sales")
	stmt := conn.CreateStatement()

	stmt.BeginOperation()
	stmt.AddStatusRecord(State42S02TableNotFound, "table 'orderz' does not exist")
	stmt.CompleteOperation(ResultError)

	sqlState := make([]byte, 6)
	message := make([]byte, SQL_MAX_MESSAGE_LENGTH)
	var textLen SQLSMALLINT
	for recNum := SQLSMALLINT(1); ; recNum++ {
		if GetDiagRec(stmt, recNum, sqlState, nil, message, &textLen) == SQL_NO_DATA {
			break
		}
		fmt.Printf("%s: %s\n", sqlState[:5], message[:textLen])
	}
	// Output:
	// 42S02: table 'orderz' does not exist
}
