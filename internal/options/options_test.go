package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	value int
}

func TestApplyRunsInOrder(t *testing.T) {
	tgt := &target{}
	err := Apply(tgt,
		NoError(func(tt *target) { tt.value = 1 }),
		NoError(func(tt *target) { tt.value += 10 }),
	)

	require.NoError(t, err)
	require.Equal(t, 11, tgt.value)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	tgt := &target{}
	sentinel := errors.New("boom")

	err := Apply(tgt,
		NoError(func(tt *target) { tt.value = 1 }),
		New(func(tt *target) error { return sentinel }),
		NoError(func(tt *target) { tt.value = 99 }),
	)

	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, tgt.value)
}
