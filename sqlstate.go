package odbcdiag

// SQLState enumerates the diagnostic conditions this driver reports. Each
// value projects onto a five-character SQLSTATE code plus the origin of its
// class and subclass portions. The projection is a static table so the
// enumeration and its string forms cannot drift apart.
type SQLState int

const (
	// State00000Success is the zero value: successful completion.
	State00000Success SQLState = iota

	// Warning states (01xxx)
	State01000GeneralWarning
	State01004DataTruncated
	State01S00InvalidConnectionStringAttribute
	State01S02OptionValueChanged

	// No data (02xxx)
	State02000NoData

	// Dynamic SQL errors (07xxx)
	State07009InvalidDescriptorIndex

	// Connection errors (08xxx)
	State08001UnableToConnect
	State08002ConnectionInUse
	State08003ConnectionNotOpen
	State08004ConnectionRejected
	State08S01CommunicationLinkFailure

	// Data errors (22xxx)
	State22001StringDataRightTruncated
	State22003NumericValueOutOfRange
	State22007InvalidDatetimeFormat
	State22012DivisionByZero

	// Constraint violations (23xxx)
	State23000IntegrityConstraintViolation

	// Cursor and transaction states (24xxx, 25xxx)
	State24000InvalidCursorState
	State25000InvalidTransactionState

	// Transaction rollback (40xxx)
	State40001SerializationFailure
	State40003StatementCompletionUnknown

	// Syntax and access errors (42xxx)
	State42000SyntaxErrorOrAccessViolation
	State42S01TableAlreadyExists
	State42S02TableNotFound
	State42S22ColumnNotFound

	// General errors (HYxxx)
	StateHY000GeneralError
	StateHY001MemoryAllocation
	StateHY010FunctionSequenceError
	StateHY024InvalidAttributeValue
	StateHY090InvalidStringOrBufferLength
	StateHY091InvalidDescriptorFieldIdentifier
	StateHYC00OptionalFeatureNotImplemented
	StateHYT00Timeout
	StateHYT01ConnectionTimeout

	// Driver manager states (IMxxx)
	StateIM001FunctionNotSupported
)

// Origin strings for the class and subclass portions of a SQLSTATE. Codes in
// the standard's reserved space carry the ISO origin; codes in the
// interface-defined space carry the ODBC origin.
const (
	OriginISO9075 = "ISO 9075"
	OriginODBC3   = "ODBC 3.0"
)

type sqlStateInfo struct {
	code           string
	classOrigin    string
	subclassOrigin string
}

var sqlStates = map[SQLState]sqlStateInfo{
	State00000Success:                          {"00000", OriginISO9075, OriginISO9075},
	State01000GeneralWarning:                   {"01000", OriginISO9075, OriginISO9075},
	State01004DataTruncated:                    {"01004", OriginISO9075, OriginISO9075},
	State01S00InvalidConnectionStringAttribute: {"01S00", OriginISO9075, OriginODBC3},
	State01S02OptionValueChanged:               {"01S02", OriginISO9075, OriginODBC3},
	State02000NoData:                           {"02000", OriginISO9075, OriginISO9075},
	State07009InvalidDescriptorIndex:           {"07009", OriginISO9075, OriginISO9075},
	State08001UnableToConnect:                  {"08001", OriginISO9075, OriginISO9075},
	State08002ConnectionInUse:                  {"08002", OriginISO9075, OriginISO9075},
	State08003ConnectionNotOpen:                {"08003", OriginISO9075, OriginISO9075},
	State08004ConnectionRejected:               {"08004", OriginISO9075, OriginISO9075},
	State08S01CommunicationLinkFailure:         {"08S01", OriginISO9075, OriginODBC3},
	State22001StringDataRightTruncated:         {"22001", OriginISO9075, OriginISO9075},
	State22003NumericValueOutOfRange:           {"22003", OriginISO9075, OriginISO9075},
	State22007InvalidDatetimeFormat:            {"22007", OriginISO9075, OriginISO9075},
	State22012DivisionByZero:                   {"22012", OriginISO9075, OriginISO9075},
	State23000IntegrityConstraintViolation:     {"23000", OriginISO9075, OriginISO9075},
	State24000InvalidCursorState:               {"24000", OriginISO9075, OriginISO9075},
	State25000InvalidTransactionState:          {"25000", OriginISO9075, OriginISO9075},
	State40001SerializationFailure:             {"40001", OriginISO9075, OriginISO9075},
	State40003StatementCompletionUnknown:       {"40003", OriginISO9075, OriginISO9075},
	State42000SyntaxErrorOrAccessViolation:     {"42000", OriginISO9075, OriginISO9075},
	State42S01TableAlreadyExists:               {"42S01", OriginISO9075, OriginODBC3},
	State42S02TableNotFound:                    {"42S02", OriginISO9075, OriginODBC3},
	State42S22ColumnNotFound:                   {"42S22", OriginISO9075, OriginODBC3},
	StateHY000GeneralError:                     {"HY000", OriginISO9075, OriginISO9075},
	StateHY001MemoryAllocation:                 {"HY001", OriginISO9075, OriginISO9075},
	StateHY010FunctionSequenceError:            {"HY010", OriginISO9075, OriginISO9075},
	StateHY024InvalidAttributeValue:            {"HY024", OriginISO9075, OriginISO9075},
	StateHY090InvalidStringOrBufferLength:      {"HY090", OriginISO9075, OriginISO9075},
	StateHY091InvalidDescriptorFieldIdentifier: {"HY091", OriginISO9075, OriginISO9075},
	StateHYC00OptionalFeatureNotImplemented:    {"HYC00", OriginISO9075, OriginODBC3},
	StateHYT00Timeout:                          {"HYT00", OriginISO9075, OriginODBC3},
	StateHYT01ConnectionTimeout:                {"HYT01", OriginISO9075, OriginODBC3},
	StateIM001FunctionNotSupported:             {"IM001", OriginODBC3, OriginODBC3},
}

func (s SQLState) info() sqlStateInfo {
	if info, ok := sqlStates[s]; ok {
		return info
	}
	// Values cast from outside the enumeration degrade to a general error.
	return sqlStates[StateHY000GeneralError]
}

// Code returns the five-character SQLSTATE code.
func (s SQLState) Code() string {
	return s.info().code
}

// Class returns the two-character class portion of the code.
func (s SQLState) Class() string {
	return s.info().code[:2]
}

// ClassOrigin identifies the document that defines the class portion of the
// code: OriginISO9075 for the standard's reserved classes, OriginODBC3 for
// interface-defined ones.
func (s SQLState) ClassOrigin() string {
	return s.info().classOrigin
}

// SubclassOrigin identifies the document that defines the subclass portion
// of the code, with the same vocabulary as ClassOrigin.
func (s SQLState) SubclassOrigin() string {
	return s.info().subclassOrigin
}

func (s SQLState) String() string {
	return s.Code()
}
