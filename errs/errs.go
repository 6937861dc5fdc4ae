// Package errs collects the sentinel errors returned by the wire codec and
// the large-message handler.
//
// Codec errors are returned directly so callers can compare with
// errors.Is. Large Message Handler errors are logged and never returned to
// the caller (see lmh.Handler); the sentinels below still back
// those log lines so tests can assert on the failure kind.
package errs

import "errors"

var (
	// ErrBufferTooSmall is returned when an encode or decode operation ran
	// out of bytes in the destination or source buffer.
	ErrBufferTooSmall = errors.New("jauscore: buffer too small")

	// ErrWrongMessageType is returned when a decoded header's command code
	// does not match the schema being used to decode it.
	ErrWrongMessageType = errors.New("jauscore: wrong message type")

	// ErrLengthMismatch is returned when the header's declared dataSize does
	// not equal the number of bytes actually consumed while decoding the
	// payload.
	ErrLengthMismatch = errors.New("jauscore: declared data size does not match bytes consumed")

	// ErrUnknownVariant is returned when an Event Limit or feature-class
	// discriminator byte falls outside the defined range.
	ErrUnknownVariant = errors.New("jauscore: unknown event limit data type")

	// ErrEventLimitKindMismatch is returned when a decoded Event Limit's
	// discriminator does not equal the data type the caller expected.
	ErrEventLimitKindMismatch = errors.New("jauscore: event limit data type does not match expected type")

	// ErrInvalidHeaderSize is returned when a buffer is too short to contain
	// a 16-byte JAUS header.
	ErrInvalidHeaderSize = errors.New("jauscore: invalid header size")

	// ErrEmptyServiceList is returned when decoding a ReportServices message
	// whose service count is zero; the schema requires at least one entry.
	ErrEmptyServiceList = errors.New("jauscore: report services requires at least one service")

	// ErrFragmentOutOfSequence is logged (not returned) when a LAST fragment
	// arrives but a gap exists in the sequence numbers below it.
	ErrFragmentOutOfSequence = errors.New("jauscore: improper sequence of fragments")

	// ErrMissingFirst is logged when a NORMAL, RETRANSMITTED, or LAST
	// fragment arrives for an identity that never received a FIRST.
	ErrMissingFirst = errors.New("jauscore: fragment received before FIRST")

	// ErrDuplicateFragment is logged when a NORMAL fragment repeats a
	// sequence number already stored in the assembly.
	ErrDuplicateFragment = errors.New("jauscore: duplicate fragment")

	// ErrInvalidFirstSequence is logged when a FIRST fragment arrives with a
	// non-zero sequence number.
	ErrInvalidFirstSequence = errors.New("jauscore: FIRST fragment has non-zero sequence number")
)
