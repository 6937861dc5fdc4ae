package header

import (
	"testing"

	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/format"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Priority:       format.DefaultPriority,
		AckNak:         format.AckNakRequired,
		SCFlag:         true,
		ExpFlag:        false,
		Version:        format.Version3_2,
		CommandCode:    0x0406,
		Destination:    addr.New(1, 2, 3, 4),
		Source:         addr.New(5, 6, 7, 8),
		DataSize:       20,
		DataFlag:       format.Single,
		SequenceNumber: 42,
	}

	buf := h.Bytes()
	require.Len(t, buf, SizeBytes)

	got, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderTooShort(t *testing.T) {
	_, err := Parse(make([]byte, SizeBytes-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestDataControlPacking(t *testing.T) {
	h := Header{DataSize: 4095, DataFlag: format.Last}
	buf := h.Bytes()

	got, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, uint16(4095), got.DataSize)
	require.Equal(t, format.Last, got.DataFlag)
}

func TestUDPMarkerRoundTrip(t *testing.T) {
	buf := []byte{1, 2, 3}
	framed := PrependUDPMarker(buf)
	require.Equal(t, "JAUS", string(framed[:4]))

	stripped := StripUDPMarker(framed)
	require.Equal(t, buf, stripped)

	// Stripping a buffer without the marker is a no-op.
	require.Equal(t, buf, StripUDPMarker(buf))
}
