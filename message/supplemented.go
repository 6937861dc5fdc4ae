package message

import (
	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/wire"
)

// QueryWrenchEffort asks a component to report the SetWrenchEffort fields
// named by PresenceVector; it carries no payload beyond that 2-byte
// presence vector.
type QueryWrenchEffort struct {
	Header         header.Header
	PresenceVector uint16
}

// NewQueryWrenchEffort builds a QueryWrenchEffort addressed from source to
// destination, requesting the fields named by presenceVector.
func NewQueryWrenchEffort(destination, source addr.Address, presenceVector uint16) QueryWrenchEffort {
	return QueryWrenchEffort{
		Header:         header.New(CCQueryWrenchEffort, destination, source),
		PresenceVector: presenceVector,
	}
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m QueryWrenchEffort) ToBuffer() []byte {
	payload := make([]byte, 2)
	wire.EncodeU16(m.PresenceVector, payload)

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m QueryWrenchEffort) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseQueryWrenchEffort decodes a QueryWrenchEffort from a framed buffer.
func ParseQueryWrenchEffort(buf []byte) (QueryWrenchEffort, error) {
	h, payload, err := unpack(buf, CCQueryWrenchEffort)
	if err != nil {
		return QueryWrenchEffort{}, err
	}
	if len(payload) != 2 {
		return QueryWrenchEffort{}, errs.ErrLengthMismatch
	}

	pv, _ := wire.DecodeU16(payload)

	return QueryWrenchEffort{Header: h, PresenceVector: pv}, nil
}

// RequestComponentControl asks a component to accept commands from the
// requesting source, at the given authority code.
type RequestComponentControl struct {
	Header        header.Header
	AuthorityCode uint8
}

// NewRequestComponentControl builds a RequestComponentControl addressed
// from source to destination at the given authority code.
func NewRequestComponentControl(destination, source addr.Address, authorityCode uint8) RequestComponentControl {
	return RequestComponentControl{
		Header:        header.New(CCRequestComponentControl, destination, source),
		AuthorityCode: authorityCode,
	}
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m RequestComponentControl) ToBuffer() []byte {
	return finish(m.Header, []byte{m.AuthorityCode})
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m RequestComponentControl) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseRequestComponentControl decodes a RequestComponentControl from a
// framed buffer.
func ParseRequestComponentControl(buf []byte) (RequestComponentControl, error) {
	h, payload, err := unpack(buf, CCRequestComponentControl)
	if err != nil {
		return RequestComponentControl{}, err
	}
	if len(payload) != 1 {
		return RequestComponentControl{}, errs.ErrLengthMismatch
	}

	return RequestComponentControl{Header: h, AuthorityCode: payload[0]}, nil
}

// ReportWaypointCount reports how many waypoints a component currently
// holds.
type ReportWaypointCount struct {
	Header         header.Header
	WaypointCount uint16
}

// NewReportWaypointCount builds a ReportWaypointCount addressed from
// source to destination.
func NewReportWaypointCount(destination, source addr.Address, waypointCount uint16) ReportWaypointCount {
	return ReportWaypointCount{
		Header:        header.New(CCReportWaypointCount, destination, source),
		WaypointCount: waypointCount,
	}
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m ReportWaypointCount) ToBuffer() []byte {
	payload := make([]byte, 2)
	wire.EncodeU16(m.WaypointCount, payload)

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m ReportWaypointCount) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseReportWaypointCount decodes a ReportWaypointCount from a framed
// buffer.
func ParseReportWaypointCount(buf []byte) (ReportWaypointCount, error) {
	h, payload, err := unpack(buf, CCReportWaypointCount)
	if err != nil {
		return ReportWaypointCount{}, err
	}
	if len(payload) != 2 {
		return ReportWaypointCount{}, errs.ErrLengthMismatch
	}

	count, _ := wire.DecodeU16(payload)

	return ReportWaypointCount{Header: h, WaypointCount: count}, nil
}

// QueryPlatformSpecifications asks a component to report the platform
// specification fields named by PresenceVector; it carries no payload
// beyond that 4-byte presence vector.
type QueryPlatformSpecifications struct {
	Header         header.Header
	PresenceVector uint32
}

// NewQueryPlatformSpecifications builds a QueryPlatformSpecifications
// addressed from source to destination, requesting the fields named by
// presenceVector.
func NewQueryPlatformSpecifications(destination, source addr.Address, presenceVector uint32) QueryPlatformSpecifications {
	return QueryPlatformSpecifications{
		Header:         header.New(CCQueryPlatformSpecifications, destination, source),
		PresenceVector: presenceVector,
	}
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m QueryPlatformSpecifications) ToBuffer() []byte {
	payload := make([]byte, 4)
	wire.EncodeU32(m.PresenceVector, payload)

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m QueryPlatformSpecifications) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseQueryPlatformSpecifications decodes a QueryPlatformSpecifications
// from a framed buffer.
func ParseQueryPlatformSpecifications(buf []byte) (QueryPlatformSpecifications, error) {
	h, payload, err := unpack(buf, CCQueryPlatformSpecifications)
	if err != nil {
		return QueryPlatformSpecifications{}, err
	}
	if len(payload) != 4 {
		return QueryPlatformSpecifications{}, errs.ErrLengthMismatch
	}

	pv, _ := wire.DecodeU32(payload)

	return QueryPlatformSpecifications{Header: h, PresenceVector: pv}, nil
}
