package message

import (
	"testing"

	"github.com/jaus-project/jauscore/addr"
	"github.com/stretchr/testify/require"
)

func TestReportVelocityStateRoundTrip(t *testing.T) {
	m := NewReportVelocityState(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	vx := 10.25
	rms := 50.0
	ts := uint32(1000)
	m.VelocityX = &vx
	m.VelocityRms = &rms
	m.TimeStamp = &ts

	buf := m.ToBuffer()
	got, err := ParseReportVelocityState(buf)
	require.NoError(t, err)

	require.NotNil(t, got.VelocityX)
	require.InDelta(t, vx, *got.VelocityX, 0.01)
	require.Nil(t, got.VelocityY)
	require.NotNil(t, got.VelocityRms)
	require.InDelta(t, rms, *got.VelocityRms, 0.01)
	require.NotNil(t, got.TimeStamp)
	require.Equal(t, ts, *got.TimeStamp)
}

func TestReportVelocityStateTimestampIsOptional(t *testing.T) {
	m := NewReportVelocityState(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	vx := 1.0
	m.VelocityX = &vx

	buf := m.ToBuffer()
	got, err := ParseReportVelocityState(buf)
	require.NoError(t, err)
	require.Nil(t, got.TimeStamp)
}
