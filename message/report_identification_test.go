package message

import (
	"strings"
	"testing"

	"github.com/jaus-project/jauscore/addr"
	"github.com/stretchr/testify/require"
)

func TestReportIdentificationRoundTrip(t *testing.T) {
	m := NewReportIdentification(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 1, 6, 10001, "Example Ground Robot")

	buf := m.ToBuffer()
	require.Equal(t, 16+m.SizeBytes(), len(buf))

	got, err := ParseReportIdentification(buf)
	require.NoError(t, err)
	require.Equal(t, m.QueryType, got.QueryType)
	require.Equal(t, m.Authority, got.Authority)
	require.Equal(t, m.Type, got.Type)
	require.Equal(t, "Example Ground Robot", got.Identification)
}

func TestReportIdentificationTruncatesOverlongString(t *testing.T) {
	long := strings.Repeat("x", IdentificationStringLength+20)
	m := NewReportIdentification(addr.New(1, 1, 1, 1), addr.New(2, 2, 2, 2), 0, 0, 0, long)

	buf := m.ToBuffer()
	got, err := ParseReportIdentification(buf)
	require.NoError(t, err)
	require.Len(t, got.Identification, IdentificationStringLength-1)
}
