package message

import (
	"testing"

	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/header"
	"github.com/stretchr/testify/require"
)

func TestSetWrenchEffortRoundTrip(t *testing.T) {
	dest := addr.New(1, 1, 1, 1)
	src := addr.New(2, 2, 2, 2)

	m := NewSetWrenchEffort(dest, src)
	x := 50.0
	resistiveY := 25.0
	m.PropulsiveLinearX = &x
	m.ResistiveLinearY = &resistiveY

	buf := m.ToBuffer()
	require.Equal(t, header.SizeBytes+m.SizeBytes(), len(buf))

	got, err := ParseSetWrenchEffort(buf)
	require.NoError(t, err)

	require.NotNil(t, got.PropulsiveLinearX)
	require.InDelta(t, x, *got.PropulsiveLinearX, 0.01)
	require.Nil(t, got.PropulsiveLinearY)

	require.NotNil(t, got.ResistiveLinearY)
	require.InDelta(t, resistiveY, *got.ResistiveLinearY, 0.5)
	require.Nil(t, got.ResistiveLinearX)
}

func TestSetWrenchEffortAllFieldsAbsent(t *testing.T) {
	m := NewSetWrenchEffort(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	require.Equal(t, 2, m.SizeBytes())

	buf := m.ToBuffer()
	got, err := ParseSetWrenchEffort(buf)
	require.NoError(t, err)
	require.Nil(t, got.PropulsiveLinearX)
}

func TestSetWrenchEffortUDPFraming(t *testing.T) {
	m := NewSetWrenchEffort(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	buf := m.ToUDPBuffer()
	require.Equal(t, "JAUS", string(buf[:4]))

	got, err := ParseSetWrenchEffort(buf)
	require.NoError(t, err)
	require.Equal(t, m.Header.CommandCode, got.Header.CommandCode)
}

func TestSetWrenchEffortWrongCommandCode(t *testing.T) {
	m := NewReportWaypointCount(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 3)
	_, err := ParseSetWrenchEffort(m.ToBuffer())
	require.Error(t, err)
}
