package rle

import (
	"fmt"
	"io"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
)

// ItemTag frames every fragment, including the basic offset table
const ItemTag uint32 = 0xFFFEE000

// SequenceDelimiter ends encapsulated pixel data
const SequenceDelimiter uint32 = 0xFFFEE0DD

// headerSize is the segment count plus fifteen segment offsets
const headerSize = 64

// MaxSegments is the size of the segment offset table in a fragment header
const MaxSegments = 15

// Source is the byte stream the decoder pulls from. Multi-byte reads use
// the stream's current byte order.
type Source interface {
	io.ByteReader
	ReadU16() (uint16, error)
	ReadU32() (uint32, error)
	Seek(offset int64, whence int) (int64, error)
	Tell() int64
}

// ReadItemTag reads a tag as two shorts packed into 0xGGGGEEEE
func ReadItemTag(src Source) (uint32, error) {
	g, err := src.ReadU16()
	if err != nil {
		return 0, err
	}
	e, err := src.ReadU16()
	if err != nil {
		return 0, err
	}
	return uint32(g)<<16 | uint32(e), nil
}

// ReadOffsetTable reads the basic offset table item that opens encapsulated
// pixel data. A non-empty table must have one entry per frame. Offsets are
// returned as absolute stream positions and the stream is left at the
// first frame.
func ReadOffsetTable(src Source, frames int) ([]int64, error) {
	t, err := ReadItemTag(src)
	if err != nil {
		return nil, err
	}
	length, err := src.ReadU32()
	if err != nil {
		return nil, err
	}
	if t != ItemTag {
		return nil, dcmerr.Corruptf("offset table item tag %s", tag.FromUint32(t))
	}
	count := int(length >> 2)
	if count == 0 {
		return nil, nil
	}
	if count != frames {
		return nil, dcmerr.Corruptf("offset table has %d entries for %d frames", count, frames)
	}
	rel := make([]uint32, count)
	for i := range rel {
		if rel[i], err = src.ReadU32(); err != nil {
			return nil, err
		}
	}
	base := src.Tell()
	offsets := make([]int64, count)
	for i, o := range rel {
		offsets[i] = base + int64(o)
	}
	if _, err := src.Seek(offsets[0], io.SeekStart); err != nil {
		return nil, err
	}
	return offsets, nil
}

// Reader decodes RLE pixel data one byte at a time. The run cursor
// persists across calls so byte and short reads share one primitive.
type Reader struct {
	src     Source
	offsets []int64

	fragBytes int64
	// fragEnd is the stream offset just past the current fragment
	fragEnd    int64
	segCount   uint32
	segOffsets [MaxSegments]uint32
	repCount   int
	repChar    int
}

// NewReader creates a reader over src. offsets is the basic offset table,
// possibly empty.
func NewReader(src Source, offsets []int64) *Reader {
	return &Reader{src: src, offsets: offsets}
}

// SegmentCount returns the segment count of the current fragment
func (r *Reader) SegmentCount() uint32 { return r.segCount }

// SegmentOffsets returns the segment offset table of the current fragment
func (r *Reader) SegmentOffsets() [MaxSegments]uint32 { return r.segOffsets }

// Remaining returns the compressed bytes left in the current fragment
func (r *Reader) Remaining() int64 { return r.fragBytes }

// BeginFrame positions the stream at frame's fragment and reads the
// fragment and segment headers. With an offset table the fragment is found
// through it; otherwise it follows the previous fragment, whose unread
// compressed bytes and padding are skipped. Only a single segment per
// fragment is supported.
func (r *Reader) BeginFrame(frame int) error {
	switch {
	case len(r.offsets) > 0 && frame < len(r.offsets):
		if _, err := r.src.Seek(r.offsets[frame], io.SeekStart); err != nil {
			return err
		}
	case r.fragEnd > 0:
		if _, err := r.src.Seek(r.fragEnd, io.SeekStart); err != nil {
			return err
		}
	}
	t, err := ReadItemTag(r.src)
	if err != nil {
		return err
	}
	length, err := r.src.ReadU32()
	if err != nil {
		return err
	}
	if t != ItemTag {
		return dcmerr.Corruptf("rle fragment item tag %s", tag.FromUint32(t))
	}
	r.fragEnd = r.src.Tell() + int64(length)
	if length < headerSize {
		return dcmerr.Corruptf("rle fragment of %d bytes is shorter than its header", length)
	}
	if r.segCount, err = r.src.ReadU32(); err != nil {
		return err
	}
	for i := range r.segOffsets {
		if r.segOffsets[i], err = r.src.ReadU32(); err != nil {
			return err
		}
	}
	r.fragBytes = int64(length) - headerSize
	r.repCount = 0
	r.repChar = 0
	if r.segCount > 1 {
		return dcmerr.Unsupportedf("rle fragment with %d segments", r.segCount)
	}
	return nil
}

// ReadByte returns the next decoded byte. A 128 command yields zero.
func (r *Reader) ReadByte() (byte, error) {
	if r.repCount == 0 {
		r.fragBytes = max(r.fragBytes-2, 0)
		ct, err := r.src.ReadByte()
		if err != nil {
			return 0, err
		}
		ch, err := r.src.ReadByte()
		if err != nil {
			return 0, err
		}
		switch {
		case ct == 128:
			return 0, nil
		case ct < 128:
			r.repCount = int(ct)
			r.repChar = -1
		default:
			r.repCount = 256 - int(ct)
			r.repChar = int(ch)
		}
		return ch, nil
	}

	r.repCount--
	if r.repChar >= 0 {
		return byte(r.repChar), nil
	}
	if r.fragBytes > 0 {
		r.fragBytes--
	}
	return r.src.ReadByte()
}

// ReadShort combines two decoded bytes as (first<<4)|second. This matches
// how existing RLE 16-bit files have always been rendered here; it is not
// a conventional 16-bit assembly.
func (r *Reader) ReadShort() (uint16, error) {
	hi, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	lo, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<4 | uint16(lo), nil
}

func (r *Reader) String() string {
	return fmt.Sprintf("rle(seg=%d remaining=%d)", r.segCount, r.fragBytes)
}
