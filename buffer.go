package odbcdiag

import "strconv"

// ConvResult reports how a value landed in a caller-supplied target.
type ConvResult int

const (
	// ConvSuccess means the value was written in full.
	ConvSuccess ConvResult = iota
	// ConvTruncated means the value was written but did not fit; the target
	// holds as much as it could take.
	ConvTruncated
	// ConvUnsupported means the target cannot hold the value at all. Nothing
	// was written.
	ConvUnsupported
)

// DataBuffer is the typed output target that diagnostic field values are
// marshaled into. Implementations perform the final type coercion and report
// truncation; the record store only selects the source value and hands it
// over with its semantic type.
type DataBuffer interface {
	WriteString(v string) ConvResult
	WriteInt32(v int32) ConvResult
	WriteInt64(v int64) ConvResult
}

// ValueBuffer adapts a caller-supplied destination to DataBuffer. Supported
// destinations:
//
//   - []byte   character target; written NUL-terminated with ODBC truncation
//     semantics (the reported data length is always the full length)
//   - *string  character target without a size limit
//   - *int32   signed 32-bit numeric target
//   - *int64   signed 64-bit numeric target
//
// Numbers written to character targets are formatted in base 10; numbers
// crossing widths are widened silently and narrowed with a truncation
// report. Strings written to numeric targets are parsed.
type ValueBuffer struct {
	target  interface{}
	dataLen SQLLEN
}

// NewValueBuffer wraps a destination. The destination may be nil, in which
// case writes only record the data length (the standard's way of asking "how
// big a buffer do I need").
func NewValueBuffer(target interface{}) *ValueBuffer {
	return &ValueBuffer{target: target}
}

// DataLength returns the full length in bytes of the last value written,
// before any truncation.
func (b *ValueBuffer) DataLength() SQLLEN {
	return b.dataLen
}

// WriteString writes a character value into the destination.
func (b *ValueBuffer) WriteString(v string) ConvResult {
	b.dataLen = SQLLEN(len(v))

	switch dst := b.target.(type) {
	case nil:
		return ConvTruncated

	case []byte:
		if len(dst) == 0 {
			return ConvTruncated
		}
		n := copy(dst[:len(dst)-1], v)
		dst[n] = 0
		if n < len(v) {
			return ConvTruncated
		}
		return ConvSuccess

	case *string:
		*dst = v
		return ConvSuccess

	case *int32:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ConvUnsupported
		}
		b.dataLen = 4
		if n > 1<<31-1 || n < -(1<<31) {
			*dst = int32(n)
			return ConvTruncated
		}
		*dst = int32(n)
		return ConvSuccess

	case *int64:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ConvUnsupported
		}
		b.dataLen = 8
		*dst = n
		return ConvSuccess

	default:
		return ConvUnsupported
	}
}

// WriteInt32 writes a signed 32-bit value into the destination.
func (b *ValueBuffer) WriteInt32(v int32) ConvResult {
	switch dst := b.target.(type) {
	case *int32:
		b.dataLen = 4
		*dst = v
		return ConvSuccess

	case *int64:
		b.dataLen = 8
		*dst = int64(v)
		return ConvSuccess

	case []byte, *string:
		return b.WriteString(strconv.FormatInt(int64(v), 10))

	case nil:
		b.dataLen = 4
		return ConvTruncated

	default:
		return ConvUnsupported
	}
}

// WriteInt64 writes a signed 64-bit value into the destination.
func (b *ValueBuffer) WriteInt64(v int64) ConvResult {
	switch dst := b.target.(type) {
	case *int64:
		b.dataLen = 8
		*dst = v
		return ConvSuccess

	case *int32:
		b.dataLen = 4
		*dst = int32(v)
		if int64(int32(v)) != v {
			return ConvTruncated
		}
		return ConvSuccess

	case []byte, *string:
		return b.WriteString(strconv.FormatInt(v, 10))

	case nil:
		b.dataLen = 8
		return ConvTruncated

	default:
		return ConvUnsupported
	}
}

var _ DataBuffer = (*ValueBuffer)(nil)
