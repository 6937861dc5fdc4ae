// Package header implements the 16-byte JAUS common header: the fixed
// prefix every message carries ahead of its command-specific payload, plus
// the 4-byte "JAUS" marker used when a message is framed for UDP.
package header

import (
	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/format"
	"github.com/jaus-project/jauscore/wire"
)

// SizeBytes is the fixed on-wire size of a common header.
const SizeBytes = 16

// UDPMarker is the 4-byte ASCII prefix ("JAUS") prepended to a message
// when it is framed for transport over UDP.
const UDPMarker = "JAUS"

// UDPMarkerSizeBytes is len(UDPMarker).
const UDPMarkerSizeBytes = len(UDPMarker)

// MaxDataSizeBytes is the largest payload a single (unfragmented) datagram
// can carry: dataSize is a 12-bit field (see dataSizeMask), so 4095 is the
// largest value it can represent on the wire.
const MaxDataSizeBytes = 4095

// properties field bit layout, packed little-endian into the first two
// wire bytes: priority:4, ackNak:2, scFlag:1, expFlag:1, version:6, reserved:2.
const (
	priorityShift = 0
	priorityMask  = 0x000F
	ackNakShift   = 4
	ackNakMask    = 0x0030
	scFlagShift   = 6
	scFlagMask    = 0x0040
	expFlagShift  = 7
	expFlagMask   = 0x0080
	versionShift  = 8
	versionMask   = 0x3F00
)

// dataControl field bit layout: dataSize:12, dataFlag:4.
const (
	dataSizeShift = 0
	dataSizeMask  = 0x0FFF
	dataFlagShift = 12
	dataFlagMask  = 0xF000
)

// Header is the 16-byte prefix common to every JAUS message.
type Header struct {
	Priority    format.Priority
	AckNak      format.AckNak
	SCFlag      bool
	ExpFlag     bool
	Version     format.Version
	CommandCode uint16
	Destination addr.Address
	Source      addr.Address
	DataSize    uint16
	DataFlag    format.DataFlag
	SequenceNumber uint16
}

// New builds a Header with the default priority and version, addressed
// single (unfragmented), for CommandCode sent from source to destination.
func New(commandCode uint16, destination, source addr.Address) Header {
	return Header{
		Priority:    format.DefaultPriority,
		AckNak:      format.AckNakNotRequired,
		Version:     format.Version3_2,
		CommandCode: commandCode,
		Destination: destination,
		Source:      source,
		DataFlag:    format.Single,
	}
}

func (h Header) packProperties() uint16 {
	var p uint16
	p |= (uint16(h.Priority) << priorityShift) & priorityMask
	p |= (uint16(h.AckNak) << ackNakShift) & ackNakMask
	if h.SCFlag {
		p |= scFlagMask
	}
	if h.ExpFlag {
		p |= expFlagMask
	}
	p |= (uint16(h.Version) << versionShift) & versionMask

	return p
}

func (h *Header) unpackProperties(p uint16) {
	h.Priority = format.Priority((p & priorityMask) >> priorityShift)
	h.AckNak = format.AckNak((p & ackNakMask) >> ackNakShift)
	h.SCFlag = p&scFlagMask != 0
	h.ExpFlag = p&expFlagMask != 0
	h.Version = format.Version((p & versionMask) >> versionShift)
}

func (h Header) packDataControl() uint16 {
	var d uint16
	d |= (h.DataSize << dataSizeShift) & dataSizeMask
	d |= (uint16(h.DataFlag) << dataFlagShift) & dataFlagMask

	return d
}

func (h *Header) unpackDataControl(d uint16) {
	h.DataSize = (d & dataSizeMask) >> dataSizeShift
	h.DataFlag = format.DataFlag((d & dataFlagMask) >> dataFlagShift)
}

// Bytes encodes the header into a new 16-byte slice, matching the byte
// layout a JausMessage's headerToBuffer would produce: properties (LE),
// commandCode (LE), destination (instance,component,node,subsystem),
// source (same order), dataControl (LE), sequenceNumber (LE).
func (h Header) Bytes() []byte {
	b := make([]byte, SizeBytes)
	h.PutBytes(b)
	return b
}

// PutBytes encodes the header into buf[0:16].
func (h Header) PutBytes(buf []byte) {
	_ = buf[SizeBytes-1]
	wire.EncodeU16(h.packProperties(), buf[0:2])
	wire.EncodeU16(h.CommandCode, buf[2:4])
	h.Destination.PutBytes(buf[4:8])
	h.Source.PutBytes(buf[8:12])
	wire.EncodeU16(h.packDataControl(), buf[12:14])
	wire.EncodeU16(h.SequenceNumber, buf[14:16])
}

// Parse decodes a 16-byte common header from buf.
func Parse(buf []byte) (Header, error) {
	if len(buf) < SizeBytes {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header

	properties, _ := wire.DecodeU16(buf[0:2])
	h.unpackProperties(properties)

	h.CommandCode, _ = wire.DecodeU16(buf[2:4])
	h.Destination = addr.FromBytes(buf[4:8])
	h.Source = addr.FromBytes(buf[8:12])

	dataControl, _ := wire.DecodeU16(buf[12:14])
	h.unpackDataControl(dataControl)

	h.SequenceNumber, _ = wire.DecodeU16(buf[14:16])

	return h, nil
}

// StripUDPMarker returns buf with a leading "JAUS" marker removed, or buf
// unchanged if the marker is not present.
func StripUDPMarker(buf []byte) []byte {
	if len(buf) >= UDPMarkerSizeBytes && string(buf[:UDPMarkerSizeBytes]) == UDPMarker {
		return buf[UDPMarkerSizeBytes:]
	}

	return buf
}

// PrependUDPMarker returns a new slice with the "JAUS" marker followed by
// buf's contents.
func PrependUDPMarker(buf []byte) []byte {
	out := make([]byte, 0, UDPMarkerSizeBytes+len(buf))
	out = append(out, UDPMarker...)
	out = append(out, buf...)

	return out
}
