package blob

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
)

func TestByteOrderReads(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	tests := []struct {
		name  string
		order ByteOrder
		u16   uint16
		u32   uint32
	}{
		{"little", Little, 0x0201, 0x04030201},
		{"pending reads little", PendingBig, 0x0201, 0x04030201},
		{"big", Big, 0x0102, 0x01020304},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(bytes.NewReader(append(data, data...)))
			require.NoError(t, err)
			s.SetOrder(tt.order)
			v16, err := s.ReadU16()
			require.NoError(t, err)
			assert.Equal(t, tt.u16, v16)
			_, err = s.Seek(4, io.SeekStart)
			require.NoError(t, err)
			v32, err := s.ReadU32()
			require.NoError(t, err)
			assert.Equal(t, tt.u32, v32)
			assert.Equal(t, tt.u16, s.Uint16(data))
			assert.Equal(t, tt.u32, s.Uint32(data))
		})
	}
}

func TestTellSeekPeek(t *testing.T) {
	s, err := New(bytes.NewReader([]byte("ABCDEFGH")))
	require.NoError(t, err)
	assert.Equal(t, int64(8), s.Size())

	p, err := s.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("AB"), p)
	assert.Equal(t, int64(0), s.Tell())

	b, err := s.ReadN(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABC"), b)
	assert.Equal(t, int64(3), s.Tell())

	_, err = s.Seek(-2, io.SeekCurrent)
	require.NoError(t, err)
	c, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('B'), c)

	require.NoError(t, s.Skip(4))
	assert.Equal(t, int64(6), s.Tell())
	assert.Equal(t, int64(2), s.Remaining())
	assert.False(t, s.EOF())

	_, err = s.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.True(t, s.EOF())
}

func TestShortReads(t *testing.T) {
	s, err := New(bytes.NewReader([]byte{0x01}))
	require.NoError(t, err)
	_, err = s.ReadU16()
	assert.ErrorIs(t, err, dcmerr.ErrUnexpectedEOF)

	s, err = New(bytes.NewReader(nil))
	require.NoError(t, err)
	_, err = s.ReadByte()
	assert.ErrorIs(t, err, dcmerr.ErrUnexpectedEOF)
	assert.ErrorIs(t, s.Skip(1), dcmerr.ErrUnexpectedEOF)
}

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x0800), Swap16(0x0008))
	assert.Equal(t, uint16(0x1234), Swap16(Swap16(0x1234)))
}
