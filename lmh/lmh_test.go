package lmh

import (
	"testing"
	"time"

	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/format"
	"github.com/jaus-project/jauscore/header"
	"github.com/stretchr/testify/require"
)

func buildHeader(seq uint16, flag format.DataFlag) header.Header {
	h := header.New(0x4404, addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	h.SequenceNumber = seq
	h.DataFlag = flag

	return h
}

func TestSendUnfragmentedPassesThrough(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	hdr := header.New(0x4404, addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	payload := []byte{1, 2, 3}

	frames := h.Send(hdr, payload)
	require.Len(t, frames, 1)

	got, err := header.Parse(frames[0])
	require.NoError(t, err)
	require.Equal(t, format.Single, got.DataFlag)
	require.Equal(t, uint16(len(payload)), got.DataSize)
}

func TestSendFragmentsOversizedPayload(t *testing.T) {
	h, err := New(WithMaxFragmentPayload(10))
	require.NoError(t, err)

	hdr := header.New(0x4404, addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	payload := make([]byte, 25)
	for i := range payload {
		payload[i] = byte(i)
	}

	frames := h.Send(hdr, payload)
	require.Len(t, frames, 3)

	first, err := header.Parse(frames[0])
	require.NoError(t, err)
	require.Equal(t, format.First, first.DataFlag)
	require.Equal(t, uint16(0), first.SequenceNumber)

	mid, err := header.Parse(frames[1])
	require.NoError(t, err)
	require.Equal(t, format.Normal, mid.DataFlag)
	require.Equal(t, uint16(1), mid.SequenceNumber)

	last, err := header.Parse(frames[2])
	require.NoError(t, err)
	require.Equal(t, format.Last, last.DataFlag)
	require.Equal(t, uint16(2), last.SequenceNumber)
	require.Equal(t, uint16(5), last.DataSize)
}

func TestSendThenReceiveRoundTrip(t *testing.T) {
	sender, err := New(WithMaxFragmentPayload(8))
	require.NoError(t, err)
	receiver, err := New()
	require.NoError(t, err)

	hdr := header.New(0x4404, addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	payload := make([]byte, 30)
	for i := range payload {
		payload[i] = byte(i + 1)
	}

	frames := sender.Send(hdr, payload)
	require.Greater(t, len(frames), 1)

	var full []byte
	var fullHeader header.Header
	var done bool
	for _, f := range frames {
		fh, err := header.Parse(f)
		require.NoError(t, err)
		fullHeader, full, done = receiver.Receive(fh, f[header.SizeBytes:])
	}

	require.True(t, done)
	require.Equal(t, payload, full)
	require.Equal(t, format.Single, fullHeader.DataFlag)
}

func TestReceiveSingleIsPassthrough(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	hdr := header.New(0x4404, addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))
	payload := []byte{9, 9, 9}

	got, data, ok := h.Receive(hdr, payload)
	require.True(t, ok)
	require.Equal(t, payload, data)
	require.Equal(t, hdr, got)
}

func TestReceiveMissingFirstIsDropped(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(1, format.Normal), []byte{1, 2})
	require.False(t, ok)

	_, _, ok = h.Receive(buildHeader(1, format.Last), []byte{1, 2})
	require.False(t, ok)
}

func TestReceiveInvalidFirstSequenceIsDropped(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(1, format.First), []byte{1, 2})
	require.False(t, ok)
}

func TestReceiveDuplicateNormalIsDropped(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(0, format.First), []byte{1, 2})
	require.False(t, ok)

	_, _, ok = h.Receive(buildHeader(1, format.Normal), []byte{3, 4})
	require.False(t, ok)

	// Re-sending sequence 1 is a duplicate and must not corrupt the
	// pending assembly.
	_, _, ok = h.Receive(buildHeader(1, format.Normal), []byte{9, 9})
	require.False(t, ok)

	_, data, ok := h.Receive(buildHeader(2, format.Last), []byte{5, 6})
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, data)
}

func TestReceiveGapOnLastFails(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(0, format.First), []byte{1, 2})
	require.False(t, ok)

	// Sequence 1 never arrives; LAST names sequence 2.
	_, _, ok = h.Receive(buildHeader(2, format.Last), []byte{5, 6})
	require.False(t, ok)
}

func TestReceiveFreshFirstSupersedesPending(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(0, format.First), []byte{1, 2})
	require.False(t, ok)
	_, _, ok = h.Receive(buildHeader(1, format.Normal), []byte{3, 4})
	require.False(t, ok)

	// A fresh FIRST discards the half-built assembly above.
	_, _, ok = h.Receive(buildHeader(0, format.First), []byte{100})
	require.False(t, ok)

	_, data, ok := h.Receive(buildHeader(1, format.Last), []byte{101})
	require.True(t, ok)
	require.Equal(t, []byte{100, 101}, data)
}

func TestReceiveRetransmittedReplacesFragment(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(0, format.First), []byte{1, 2})
	require.False(t, ok)
	_, _, ok = h.Receive(buildHeader(1, format.Normal), []byte{3, 4})
	require.False(t, ok)
	_, _, ok = h.Receive(buildHeader(1, format.Retransmitted), []byte{30, 40})
	require.False(t, ok)

	_, data, ok := h.Receive(buildHeader(2, format.Last), []byte{5, 6})
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 30, 40, 5, 6}, data)
}

func TestSendDefaultMaxFragmentPayloadMatchesWireLimit(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	hdr := header.New(0x4404, addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2))

	// header.MaxDataSizeBytes is the largest value the 12-bit dataSize
	// field can hold; a payload of exactly that size must stay
	// unfragmented and round-trip its declared size intact.
	payload := make([]byte, header.MaxDataSizeBytes)
	frames := h.Send(hdr, payload)
	require.Len(t, frames, 1)

	got, err := header.Parse(frames[0])
	require.NoError(t, err)
	require.Equal(t, format.Single, got.DataFlag)
	require.Equal(t, uint16(header.MaxDataSizeBytes), got.DataSize)

	// One byte over forces a FIRST+LAST split, and the FIRST fragment's
	// dataSize must still equal the real payload length, not a 12-bit
	// truncation of it (truncation would report 0 for a 4096-byte
	// fragment).
	oversized := make([]byte, header.MaxDataSizeBytes+1)
	frames = h.Send(hdr, oversized)
	require.Len(t, frames, 2)

	first, err := header.Parse(frames[0])
	require.NoError(t, err)
	require.Equal(t, format.First, first.DataFlag)
	require.Equal(t, uint16(header.MaxDataSizeBytes), first.DataSize)
}

func TestPruneIdleRemovesStaleAssemblies(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	_, _, ok := h.Receive(buildHeader(0, format.First), []byte{1})
	require.False(t, ok)

	time.Sleep(time.Millisecond)
	removed := h.PruneIdle(0)
	require.Equal(t, 1, removed)

	// The assembly is gone, so the matching LAST is now missing-FIRST.
	_, _, ok = h.Receive(buildHeader(1, format.Last), []byte{2})
	require.False(t, ok)
}
