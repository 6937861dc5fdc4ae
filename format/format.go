// Package format defines the small enumerations packed into a JAUS common
// header: the fragmentation data flag, acknowledge/negative-acknowledge
// request, priority level, and protocol version.
package format

import "fmt"

// DataFlag identifies a message's role in large-message fragmentation. It
// occupies the high 4 bits of the header's dataControl field.
type DataFlag uint8

const (
	// Single marks a message that is not part of a fragmented sequence.
	Single DataFlag = 0
	// First marks the opening fragment of a large message.
	First DataFlag = 1
	// Normal marks an interior fragment.
	Normal DataFlag = 2
	// Retransmitted marks a fragment resent to replace one already seen.
	Retransmitted DataFlag = 4
	// Last marks the closing fragment, triggering reassembly.
	Last DataFlag = 8
)

// String renders the data flag's mnemonic name.
func (f DataFlag) String() string {
	switch f {
	case Single:
		return "SINGLE"
	case First:
		return "FIRST"
	case Normal:
		return "NORMAL"
	case Retransmitted:
		return "RETRANSMITTED"
	case Last:
		return "LAST"
	default:
		return fmt.Sprintf("DataFlag(%d)", uint8(f))
	}
}

// AckNak identifies whether a message requests acknowledgement.
type AckNak uint8

const (
	// AckNakNotRequired means the sender wants no acknowledgement.
	AckNakNotRequired AckNak = 0
	// AckNakRequired means the sender wants an ack or nak reply.
	AckNakRequired AckNak = 1
	// AckNakAck is carried on an acknowledgement reply.
	AckNakAck AckNak = 2
	// AckNakNak is carried on a negative-acknowledgement reply.
	AckNakNak AckNak = 3
)

// Priority is the header's 4-bit message priority, 0 (lowest) to 15
// (highest); most messages use DefaultPriority.
type Priority uint8

// DefaultPriority is the priority assigned to a message unless the caller
// overrides it.
const DefaultPriority Priority = 6

// Version identifies the JAUS protocol revision a message is formatted
// against. It occupies 6 bits of the header's properties field.
type Version uint8

const (
	// Version3_2 is JAUS v3.2.
	Version3_2 Version = 2
	// Version3_3 is JAUS v3.3.
	Version3_3 Version = 3
)
