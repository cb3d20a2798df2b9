package rle

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/dcmpix/pkg/dcm/blob"
	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
)

// fragment frames compressed bytes as one RLE item with a segment header
func fragment(segments uint32, payload []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, uint16(0xFFFE))
	binary.Write(&b, binary.LittleEndian, uint16(0xE000))
	binary.Write(&b, binary.LittleEndian, uint32(headerSize+len(payload)))
	binary.Write(&b, binary.LittleEndian, segments)
	for i := 0; i < MaxSegments; i++ {
		off := uint32(0)
		if i == 0 && segments > 0 {
			off = headerSize
		}
		binary.Write(&b, binary.LittleEndian, off)
	}
	b.Write(payload)
	return b.Bytes()
}

func offsetTable(offsets ...uint32) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, uint16(0xFFFE))
	binary.Write(&b, binary.LittleEndian, uint16(0xE000))
	binary.Write(&b, binary.LittleEndian, uint32(4*len(offsets)))
	for _, o := range offsets {
		binary.Write(&b, binary.LittleEndian, o)
	}
	return b.Bytes()
}

func stream(t *testing.T, data []byte) *blob.Stream {
	t.Helper()
	s, err := blob.New(bytes.NewReader(data))
	require.NoError(t, err)
	return s
}

func readBytes(t *testing.T, r *Reader, n int) []byte {
	t.Helper()
	out := make([]byte, n)
	for i := range out {
		b, err := r.ReadByte()
		require.NoError(t, err)
		out[i] = b
	}
	return out
}

func TestReaderLiteralFragment(t *testing.T) {
	src := stream(t, fragment(1, []byte{0x03, 'A', 'B', 'C', 'D'}))
	r := NewReader(src, nil)
	require.NoError(t, r.BeginFrame(0))
	assert.Equal(t, uint32(1), r.SegmentCount())
	assert.Equal(t, uint32(headerSize), r.SegmentOffsets()[0])
	assert.Equal(t, []byte("ABCD"), readBytes(t, r, 4))
	assert.Equal(t, int64(0), r.Remaining())
}

func TestReaderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"literal 5", []byte{1, 2, 3, 4, 5}},
		{"literal 127", makeSequence(1, 127)},
		{"repeat 3", makeBytes(7, 3)},
		{"repeat 128", makeBytes(9, 128)},
		{"repeat 300", makeBytes(0xEE, 300)},
		{"mixed", append(makeSequence(10, 20), makeBytes(0x42, 200)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(tt.data)
			want, err := Decode(encoded, len(tt.data))
			require.NoError(t, err)
			require.Equal(t, tt.data, want)

			src := stream(t, fragment(1, encoded))
			r := NewReader(src, nil)
			require.NoError(t, r.BeginFrame(0))
			assert.Equal(t, want, readBytes(t, r, len(tt.data)))
		})
	}
}

func TestReaderFramesWithoutOffsetTable(t *testing.T) {
	tests := []struct {
		name   string
		frames [][]byte
		want   [][]byte
	}{
		{"padded literals", [][]byte{{0x01, 1, 2, 0}, {0x01, 3, 4, 0}}, [][]byte{{1, 2}, {3, 4}}},
		{"runs", [][]byte{{0xFF, 7, 0x00, 8}, {0xFE, 9}}, [][]byte{{7, 7}, {9, 9}}},
		{"unread tail", [][]byte{{0x03, 1, 2, 3, 4, 5, 6}, {0x00, 5}}, [][]byte{{1, 2}, {5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data []byte
			for _, f := range tt.frames {
				data = append(data, fragment(1, f)...)
			}
			r := NewReader(stream(t, data), nil)
			for i, want := range tt.want {
				require.NoError(t, r.BeginFrame(i), "frame %d", i)
				assert.Equal(t, want, readBytes(t, r, len(want)), "frame %d", i)
			}
		})
	}
}

func TestReaderIllegalCommand(t *testing.T) {
	src := stream(t, fragment(1, []byte{0x80, 0x55, 0x00, 'z'}))
	r := NewReader(src, nil)
	require.NoError(t, r.BeginFrame(0))
	assert.Equal(t, []byte{0, 'z'}, readBytes(t, r, 2))
}

func TestReaderShortCombinesNibbles(t *testing.T) {
	src := stream(t, fragment(1, []byte{0x01, 0x12, 0x34}))
	r := NewReader(src, nil)
	require.NoError(t, r.BeginFrame(0))
	v, err := r.ReadShort()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x12)<<4|0x34, v)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"multi segment", fragment(2, []byte{0x00, 0x01}), dcmerr.ErrUnsupported},
		{"wrong item tag", append([]byte{0xFE, 0xFF, 0xDD, 0xE0}, make([]byte, 68)...), dcmerr.ErrCorruptImage},
		{"truncated header", fragment(1, nil)[:20], dcmerr.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(stream(t, tt.data), nil)
			assert.ErrorIs(t, r.BeginFrame(0), tt.want)
		})
	}
}

func TestReaderTruncatedPayload(t *testing.T) {
	r := NewReader(stream(t, fragment(1, []byte{0x05, 'a'})), nil)
	require.NoError(t, r.BeginFrame(0))
	_, err := r.ReadByte()
	require.NoError(t, err)
	_, err = r.ReadByte()
	assert.ErrorIs(t, err, dcmerr.ErrUnexpectedEOF)
}

func TestOffsetTable(t *testing.T) {
	f0 := fragment(1, []byte{0x01, 'a', 'b'})
	f1 := fragment(1, []byte{0xFD, 'z'})
	data := append(offsetTable(0, uint32(len(f0))), f0...)
	data = append(data, f1...)

	src := stream(t, data)
	offsets, err := ReadOffsetTable(src, 2)
	require.NoError(t, err)
	require.Len(t, offsets, 2)
	assert.Equal(t, int64(16), offsets[0])
	assert.Equal(t, offsets[0], src.Tell())

	r := NewReader(src, offsets)
	// frames can be visited out of order
	require.NoError(t, r.BeginFrame(1))
	assert.Equal(t, []byte("zzzz"), readBytes(t, r, 4))
	require.NoError(t, r.BeginFrame(0))
	assert.Equal(t, []byte("ab"), readBytes(t, r, 2))
}

func TestOffsetTableConsistency(t *testing.T) {
	tests := []struct {
		name    string
		entries []uint32
		frames  int
		wantErr error
		wantLen int
	}{
		{"empty table", nil, 3, nil, 0},
		{"matches", []uint32{0, 10, 20}, 3, nil, 3},
		{"fewer entries", []uint32{0, 10}, 3, dcmerr.ErrCorruptImage, 0},
		{"more entries", []uint32{0, 10, 20, 30}, 3, dcmerr.ErrCorruptImage, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(offsetTable(tt.entries...), make([]byte, 64)...)
			offsets, err := ReadOffsetTable(stream(t, data), tt.frames)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, offsets)
				return
			}
			require.NoError(t, err)
			assert.Len(t, offsets, tt.wantLen)
		})
	}
}
