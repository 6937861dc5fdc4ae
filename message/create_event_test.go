package message

import (
	"testing"

	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/eventlimit"
	"github.com/stretchr/testify/require"
)

func TestCreateEventRoundTrip(t *testing.T) {
	query := NewQueryWrenchEffort(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x0001)
	m := NewCreateEvent(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x4404, EventTypeEveryChange, query.ToBuffer())

	lower := eventlimit.Value{Kind: eventlimit.KindFloat, Float: 1.0}
	upper := eventlimit.Value{Kind: eventlimit.KindFloat, Float: 99.0}
	limitDataType := uint8(eventlimit.KindFloat)
	m.LimitDataType = &limitDataType
	m.LowerLimit = &lower
	m.UpperLimit = &upper

	rate := 10.0
	m.RequestedRate = &rate

	buf := m.ToBuffer()
	got, err := ParseCreateEvent(buf)
	require.NoError(t, err)

	require.Equal(t, m.MessageCode, got.MessageCode)
	require.Equal(t, m.EventType, got.EventType)
	require.NotNil(t, got.LowerLimit)
	require.Equal(t, lower, *got.LowerLimit)
	require.NotNil(t, got.UpperLimit)
	require.Equal(t, upper, *got.UpperLimit)
	require.NotNil(t, got.RequestedRate)
	require.InDelta(t, rate, *got.RequestedRate, 1092.0/65535.0)
	require.Nil(t, got.StateLimit)
	require.Equal(t, m.QueryMessage, got.QueryMessage)
}

func TestCreateEventQueryMessageIsUnconditional(t *testing.T) {
	query := NewQueryWrenchEffort(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x0001)
	queryBuf := query.ToBuffer()

	m := NewCreateEvent(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x2406, EventTypePeriodic, queryBuf)

	buf := m.ToBuffer()
	got, err := ParseCreateEvent(buf)
	require.NoError(t, err)
	require.Equal(t, m.QueryMessage, got.QueryMessage)

	nested, err := ParseQueryWrenchEffort(got.QueryMessage)
	require.NoError(t, err)
	require.Equal(t, query.PresenceVector, nested.PresenceVector)
}

func TestCreateEventRequestedRateClampedToRange(t *testing.T) {
	query := NewQueryWrenchEffort(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x0001)
	m := NewCreateEvent(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x4404, EventTypePeriodic, query.ToBuffer())
	rate := 5000.0
	m.RequestedRate = &rate

	got, err := ParseCreateEvent(m.ToBuffer())
	require.NoError(t, err)
	require.NotNil(t, got.RequestedRate)
	require.InDelta(t, ceRequestedRateMax, *got.RequestedRate, 1092.0/65535.0)
}

func TestCreateEventLimitKindMismatchFails(t *testing.T) {
	query := NewQueryWrenchEffort(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x0001)
	m := NewCreateEvent(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0x4404, EventTypeEveryChange, query.ToBuffer())

	limitDataType := uint8(eventlimit.KindFloat)
	m.LimitDataType = &limitDataType
	lower := eventlimit.Value{Kind: eventlimit.KindInt, Int: 7}
	m.LowerLimit = &lower

	_, err := ParseCreateEvent(m.ToBuffer())
	require.ErrorIs(t, err, errs.ErrEventLimitKindMismatch)
}
