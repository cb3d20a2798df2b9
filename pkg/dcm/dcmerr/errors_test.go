package dcmerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeError(t *testing.T) {
	err := NewDecodeError("ct.dcm", 132, "reading tag", ErrUnexpectedEOF)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	assert.Equal(t, "ct.dcm: offset 132: reading tag: dcm: unexpected end of file", err.Error())

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, int64(132), de.Offset)
}

func TestDecodeErrorKeepsInnermost(t *testing.T) {
	inner := NewDecodeError("a.dcm", 10, "inner", Corruptf("bad length %d", 7))
	outer := NewDecodeError("a.dcm", 99, "outer", fmt.Errorf("frame 0: %w", inner))
	var de *DecodeError
	require.True(t, errors.As(outer, &de))
	assert.Equal(t, int64(10), de.Offset)
	assert.Nil(t, NewDecodeError("a.dcm", 0, "", nil))
}

func TestClass(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"Corrupt", Corruptf("x"), ErrCorruptImage},
		{"Unsupported", Unsupportedf("y"), ErrUnsupported},
		{"Limit", Limitf("z"), ErrResourceLimit},
		{"Wrapped", fmt.Errorf("ctx: %w", ErrCanceled), ErrCanceled},
		{"None", errors.New("plain"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.err))
		})
	}
}
