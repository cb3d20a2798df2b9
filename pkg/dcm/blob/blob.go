// Package blob is the seekable byte stream the DICOM decoder reads from.
// Multi-byte reads follow a three state byte order so the switch to big
// endian can be armed by the transfer syntax and committed later.
package blob

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
)

// ByteOrder is the byte order state of the stream
type ByteOrder int

const (
	// Little is the initial order and the order of the meta group
	Little ByteOrder = iota
	// PendingBig reads little endian until the first non meta group tag
	PendingBig
	// Big reads big endian for the rest of the stream
	Big
)

func (o ByteOrder) String() string {
	switch o {
	case Little:
		return "little"
	case PendingBig:
		return "pending-big"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

// Stream wraps an io.ReadSeeker with buffered, offset tracked reads
type Stream struct {
	rs    io.ReadSeeker
	br    *bufio.Reader
	pos   int64
	size  int64
	order ByteOrder
}

// New creates a stream positioned at the current offset of rs
func New(rs io.ReadSeeker) (*Stream, error) {
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("blob: tell: %w", err)
	}
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("blob: size: %w", err)
	}
	if _, err := rs.Seek(cur, io.SeekStart); err != nil {
		return nil, fmt.Errorf("blob: seek: %w", err)
	}
	return &Stream{rs: rs, br: bufio.NewReaderSize(rs, 64*1024), pos: cur, size: size}, nil
}

// Order returns the current byte order state
func (s *Stream) Order() ByteOrder { return s.order }

// SetOrder changes the byte order state
func (s *Stream) SetOrder(o ByteOrder) { s.order = o }

// Tell returns the current absolute offset
func (s *Stream) Tell() int64 { return s.pos }

// Size returns the total stream size in bytes
func (s *Stream) Size() int64 { return s.size }

// Remaining returns the number of bytes between the offset and the end
func (s *Stream) Remaining() int64 { return s.size - s.pos }

// EOF reports whether the offset is at or past the end of the stream
func (s *Stream) EOF() bool { return s.pos >= s.size }

// Seek moves the offset and drops any buffered bytes
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	abs := offset
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = s.size + offset
	default:
		return s.pos, fmt.Errorf("blob: invalid whence %d", whence)
	}
	if abs < 0 {
		return s.pos, dcmerr.Corruptf("seek to negative offset %d", abs)
	}
	// a short forward hop inside the buffer avoids a reset
	if d := abs - s.pos; d >= 0 && d <= int64(s.br.Buffered()) {
		n, _ := s.br.Discard(int(d))
		s.pos += int64(n)
		return s.pos, nil
	}
	if _, err := s.rs.Seek(abs, io.SeekStart); err != nil {
		return s.pos, fmt.Errorf("blob: seek: %w", err)
	}
	s.br.Reset(s.rs)
	s.pos = abs
	return s.pos, nil
}

// Read implements io.Reader
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.br.Read(p)
	s.pos += int64(n)
	return n, err
}

// Peek returns the next n bytes without consuming them
func (s *Stream) Peek(n int) ([]byte, error) {
	b, err := s.br.Peek(n)
	if err != nil {
		return nil, eof(err)
	}
	return b, nil
}

// Skip discards n bytes
func (s *Stream) Skip(n int64) error {
	if n < 0 {
		return dcmerr.Corruptf("negative skip %d", n)
	}
	if n > s.Remaining() {
		return fmt.Errorf("%w: skip %d bytes with %d left", dcmerr.ErrUnexpectedEOF, n, s.Remaining())
	}
	_, err := s.Seek(n, io.SeekCurrent)
	return err
}

// ReadN reads exactly n bytes
func (s *Stream) ReadN(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := s.ReadFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadFull fills b completely
func (s *Stream) ReadFull(b []byte) error {
	n, err := io.ReadFull(s.br, b)
	s.pos += int64(n)
	if err != nil {
		return eof(err)
	}
	return nil
}

// ReadByte reads a single byte
func (s *Stream) ReadByte() (byte, error) {
	b, err := s.br.ReadByte()
	if err != nil {
		return 0, eof(err)
	}
	s.pos++
	return b, nil
}

// ReadU16 reads an unsigned short in the current byte order
func (s *Stream) ReadU16() (uint16, error) {
	if s.order == Big {
		return s.ReadU16BE()
	}
	return s.ReadU16LE()
}

// ReadU32 reads an unsigned long in the current byte order
func (s *Stream) ReadU32() (uint32, error) {
	if s.order == Big {
		return s.ReadU32BE()
	}
	return s.ReadU32LE()
}

// ReadU16LE reads a little endian unsigned short
func (s *Stream) ReadU16LE() (uint16, error) {
	var b [2]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadU16BE reads a big endian unsigned short
func (s *Stream) ReadU16BE() (uint16, error) {
	var b [2]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// ReadU32LE reads a little endian unsigned long
func (s *Stream) ReadU32LE() (uint32, error) {
	var b [4]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadU32BE reads a big endian unsigned long
func (s *Stream) ReadU32BE() (uint32, error) {
	var b [4]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// Uint16 decodes b[0:2] in the current byte order
func (s *Stream) Uint16(b []byte) uint16 {
	if s.order == Big {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32 decodes b[0:4] in the current byte order
func (s *Stream) Uint32(b []byte) uint32 {
	if s.order == Big {
		return binary.BigEndian.Uint32(b)
	}
	return binary.LittleEndian.Uint32(b)
}

// Swap16 reverses the bytes of v
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

func eof(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return dcmerr.ErrUnexpectedEOF
	}
	return err
}
