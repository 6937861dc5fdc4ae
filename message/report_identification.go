package message

import (
	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/wire"
)

// IdentificationStringLength is the fixed, NUL-padded width of the
// identification field.
const IdentificationStringLength = 80

// ReportIdentification describes a subsystem, node, or component: who is
// asking (queryType), the responder's authority level, its type code, and
// a human-readable identification string.
type ReportIdentification struct {
	Header header.Header

	QueryType      uint8
	Authority      uint8
	Type           uint16
	Identification string
}

// NewReportIdentification builds a ReportIdentification addressed from
// source to destination.
func NewReportIdentification(destination, source addr.Address, queryType, authority uint8, typ uint16, identification string) ReportIdentification {
	return ReportIdentification{
		Header:         header.New(CCReportIdentification, destination, source),
		QueryType:      queryType,
		Authority:      authority,
		Type:           typ,
		Identification: identification,
	}
}

// SizeBytes returns the encoded payload size, always 4+80.
func (m ReportIdentification) SizeBytes() int {
	return 4 + IdentificationStringLength
}

// ToBuffer encodes the payload and frames it behind a 16-byte header. The
// Identification field is truncated to IdentificationStringLength-1 bytes
// and NUL-terminated if it does not already fit.
func (m ReportIdentification) ToBuffer() []byte {
	payload := make([]byte, m.SizeBytes())
	payload[0] = m.QueryType
	payload[1] = m.Authority
	wire.EncodeU16(m.Type, payload[2:4])

	idField := payload[4 : 4+IdentificationStringLength]
	if len(m.Identification) < IdentificationStringLength {
		copy(idField, m.Identification)
	} else {
		copy(idField, m.Identification[:IdentificationStringLength-1])
		idField[IdentificationStringLength-1] = 0
	}

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m ReportIdentification) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseReportIdentification decodes a ReportIdentification from a framed
// buffer, with or without a leading "JAUS" marker.
func ParseReportIdentification(buf []byte) (ReportIdentification, error) {
	h, payload, err := unpack(buf, CCReportIdentification)
	if err != nil {
		return ReportIdentification{}, err
	}

	if len(payload) != 4+IdentificationStringLength {
		return ReportIdentification{}, errs.ErrLengthMismatch
	}

	m := ReportIdentification{Header: h}
	m.QueryType = payload[0]
	m.Authority = payload[1]
	m.Type, _ = wire.DecodeU16(payload[2:4])

	idField := payload[4 : 4+IdentificationStringLength]
	end := 0
	for end < len(idField) && idField[end] != 0 {
		end++
	}
	m.Identification = string(idField[:end])

	return m, nil
}
