package message

import (
	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/eventlimit"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/wire"
)

// EventType identifies when a created event should fire.
type EventType uint8

const (
	EventTypePeriodic    EventType = 0
	EventTypeEveryChange EventType = 1
	EventTypeFirstChange EventType = 2
)

// CreateEvent bit positions within its 1-byte presence vector. The nested
// query message carries no presence bit of its own: it always follows the
// presence-gated fields, and its length comes from its own header.
const (
	ceEventBoundary  = 0
	ceLimitDataType  = 1
	ceLimitDataField = 2
	ceLowerLimit     = 3
	ceUpperLimit     = 4
	ceStateLimit     = 5
	ceRequestedRate  = 6
)

const (
	ceRequestedRateMin = 0.0
	ceRequestedRateMax = 1092.0
)

// CreateEvent asks a component to generate an event, optionally bounded by
// a limit on a reported data field and a requested report rate, and
// always carrying the query message the event reply answers.
type CreateEvent struct {
	Header header.Header

	MessageCode uint16
	EventType   EventType

	EventBoundary  *uint8
	LimitDataType  *uint8
	LimitDataField *uint8

	LowerLimit *eventlimit.Value
	UpperLimit *eventlimit.Value
	StateLimit *eventlimit.Value

	// RequestedRate is the requested report rate in Hz, scaled over
	// [0, 1092].
	RequestedRate *float64

	// QueryMessage is the raw framed bytes (16-byte header plus payload,
	// no UDP marker) of the query this event answers. It always follows
	// the presence-gated fields; its length is not separately encoded,
	// since the decoder reads it from the nested message's own header
	// dataSize field, the same way the outer header's dataSize bounds
	// the outer payload.
	QueryMessage []byte
}

// NewCreateEvent builds a CreateEvent addressed from source to
// destination for messageCode, firing on eventType and answering query.
func NewCreateEvent(destination, source addr.Address, messageCode uint16, eventType EventType, query []byte) CreateEvent {
	m := CreateEvent{Header: header.New(CCCreateEvent, destination, source)}
	m.MessageCode = messageCode
	m.EventType = eventType
	m.QueryMessage = query

	return m
}

func (m CreateEvent) presenceVector() uint8 {
	var pv uint8
	set := func(bit int, present bool) {
		if present {
			pv = uint8(header.Set(pv, uint(bit)))
		}
	}
	set(ceEventBoundary, m.EventBoundary != nil)
	set(ceLimitDataType, m.LimitDataType != nil)
	set(ceLimitDataField, m.LimitDataField != nil)
	set(ceLowerLimit, m.LowerLimit != nil)
	set(ceUpperLimit, m.UpperLimit != nil)
	set(ceStateLimit, m.StateLimit != nil)
	set(ceRequestedRate, m.RequestedRate != nil)

	return pv
}

// SizeBytes returns the encoded payload size.
func (m CreateEvent) SizeBytes() int {
	n := 1 + 2 + 1 // presence vector, messageCode, eventType
	if m.EventBoundary != nil {
		n++
	}
	if m.LimitDataType != nil {
		n++
	}
	if m.LimitDataField != nil {
		n++
	}
	if m.LowerLimit != nil {
		n += m.LowerLimit.WireSize()
	}
	if m.UpperLimit != nil {
		n += m.UpperLimit.WireSize()
	}
	if m.StateLimit != nil {
		n += m.StateLimit.WireSize()
	}
	if m.RequestedRate != nil {
		n += 2
	}
	n += len(m.QueryMessage)

	return n
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m CreateEvent) ToBuffer() []byte {
	payload := make([]byte, m.SizeBytes())
	payload[0] = m.presenceVector()
	wire.EncodeU16(m.MessageCode, payload[1:3])
	payload[3] = uint8(m.EventType)

	i := 4
	if m.EventBoundary != nil {
		payload[i] = *m.EventBoundary
		i++
	}
	if m.LimitDataType != nil {
		payload[i] = *m.LimitDataType
		i++
	}
	if m.LimitDataField != nil {
		payload[i] = *m.LimitDataField
		i++
	}
	if m.LowerLimit != nil {
		n, _ := m.LowerLimit.Encode(payload[i:])
		i += n
	}
	if m.UpperLimit != nil {
		n, _ := m.UpperLimit.Encode(payload[i:])
		i += n
	}
	if m.StateLimit != nil {
		n, _ := m.StateLimit.Encode(payload[i:])
		i += n
	}
	if m.RequestedRate != nil {
		wire.EncodeU16(wire.ScaleToU16(*m.RequestedRate, ceRequestedRateMin, ceRequestedRateMax), payload[i:i+2])
		i += 2
	}
	copy(payload[i:], m.QueryMessage)

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m CreateEvent) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseCreateEvent decodes a CreateEvent from a framed buffer, with or
// without a leading "JAUS" marker.
func ParseCreateEvent(buf []byte) (CreateEvent, error) {
	h, payload, err := unpack(buf, CCCreateEvent)
	if err != nil {
		return CreateEvent{}, err
	}

	if len(payload) < 4 {
		return CreateEvent{}, errs.ErrBufferTooSmall
	}

	pv := payload[0]
	m := CreateEvent{Header: h}
	m.MessageCode, _ = wire.DecodeU16(payload[1:3])
	m.EventType = EventType(payload[3])

	i := 4
	if header.Test(pv, ceEventBoundary) {
		if len(payload) < i+1 {
			return CreateEvent{}, errs.ErrBufferTooSmall
		}
		v := payload[i]
		m.EventBoundary = &v
		i++
	}
	if header.Test(pv, ceLimitDataType) {
		if len(payload) < i+1 {
			return CreateEvent{}, errs.ErrBufferTooSmall
		}
		v := payload[i]
		m.LimitDataType = &v
		i++
	}
	if header.Test(pv, ceLimitDataField) {
		if len(payload) < i+1 {
			return CreateEvent{}, errs.ErrBufferTooSmall
		}
		v := payload[i]
		m.LimitDataField = &v
		i++
	}

	expectedLimitKind := eventlimit.AnyKind
	if m.LimitDataType != nil {
		expectedLimitKind = eventlimit.Kind(*m.LimitDataType)
	}

	decodeLimit := func() (*eventlimit.Value, error) {
		v, n, err := eventlimit.Decode(payload[i:], expectedLimitKind)
		if err != nil {
			return nil, err
		}
		i += n

		return &v, nil
	}

	if header.Test(pv, ceLowerLimit) {
		v, err := decodeLimit()
		if err != nil {
			return CreateEvent{}, err
		}
		m.LowerLimit = v
	}
	if header.Test(pv, ceUpperLimit) {
		v, err := decodeLimit()
		if err != nil {
			return CreateEvent{}, err
		}
		m.UpperLimit = v
	}
	if header.Test(pv, ceStateLimit) {
		v, err := decodeLimit()
		if err != nil {
			return CreateEvent{}, err
		}
		m.StateLimit = v
	}

	if header.Test(pv, ceRequestedRate) {
		if len(payload) < i+2 {
			return CreateEvent{}, errs.ErrBufferTooSmall
		}
		raw, _ := wire.DecodeU16(payload[i : i+2])
		i += 2
		rate := wire.U16ToScale(raw, ceRequestedRateMin, ceRequestedRateMax)
		m.RequestedRate = &rate
	}

	nestedHeader, err := header.Parse(payload[i:])
	if err != nil {
		return CreateEvent{}, err
	}
	nestedLen := header.SizeBytes + int(nestedHeader.DataSize)
	if len(payload) < i+nestedLen {
		return CreateEvent{}, errs.ErrBufferTooSmall
	}
	m.QueryMessage = append([]byte(nil), payload[i:i+nestedLen]...)
	i += nestedLen

	if i != len(payload) {
		return CreateEvent{}, errs.ErrLengthMismatch
	}

	return m, nil
}
