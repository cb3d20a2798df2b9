package dcm

import (
	"strconv"
	"strings"

	"github.com/jpfielding/dcmpix/pkg/dcm/blob"
	"github.com/jpfielding/dcmpix/pkg/dcm/dict"
	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
)

// undefinedLength marks sequences and items terminated by a delimiter
const undefinedLength = 0xFFFFFFFF

// element is one tag, VR, length and value unit
type element struct {
	Tag      tag.Tag
	VR       vr.VR
	Entry    dict.Entry
	Row      int
	Explicit bool
	// Quantum is the byte width of one value, 0 for undefined length
	Quantum int
	// Length counts values, not bytes
	Length int
	// ByteLength is the raw length field
	ByteLength uint32
	Datum      int
	HasDatum   bool
	// Data is the value bytes plus one zero guard byte
	Data   []byte
	Offset int64
}

// Undefined reports an undefined length sequence or item
func (e *element) Undefined() bool {
	return e.ByteLength == undefinedLength
}

// Bytes returns the value without the guard byte
func (e *element) Bytes() []byte {
	if len(e.Data) == 0 {
		return nil
	}
	return e.Data[:len(e.Data)-1]
}

// String returns the value as text with padding removed
func (e *element) String() string {
	return strings.TrimRight(string(e.Bytes()), "\x00 ")
}

// lastValue returns the last backslash separated value
func (e *element) lastValue() string {
	s := e.String()
	if i := strings.LastIndexByte(s, '\\'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// resolveVR applies the explicit VR policy: an upper case candidate is
// explicit when it matches the dictionary, or when the tag is private or
// context sensitive and the candidate is a standard VR, in which case it
// also replaces the dictionary VR. Delimiters are always implicit.
func resolveVR(dictVR vr.VR, candidate [2]byte, group uint16) (vr.VR, bool) {
	effective, explicit := dictVR, false
	if vr.IsCode(candidate) {
		cand := vr.VR(candidate[:])
		switch {
		case cand == dictVR:
			explicit = true
		case (group%2 == 1 || dictVR == vr.XS) && cand.IsStandard():
			effective, explicit = cand, true
		}
	}
	if effective == vr.Delimiter {
		return vr.Delimiter, false
	}
	return effective, explicit
}

// readHeader reads tag, VR and length, leaving the stream at the value
func (d *decoder) readHeader() (*element, error) {
	e := &element{Offset: d.s.Tell()}
	group, err := d.s.ReadU16()
	if err != nil {
		return nil, err
	}
	if d.s.Order() == blob.PendingBig && !(tag.Tag{Group: group}).IsMetaGroup() {
		// the group was read little endian; the data set is big endian
		group = blob.Swap16(group)
		d.s.SetOrder(blob.Big)
		d.log.Debug("switched to big endian", "offset", e.Offset)
	}
	elem, err := d.s.ReadU16()
	if err != nil {
		return nil, err
	}
	e.Tag = tag.New(group, elem)
	e.Entry, e.Row = dict.Lookup(e.Tag)

	peek, err := d.s.Peek(2)
	if err != nil {
		return nil, err
	}
	e.VR, e.Explicit = resolveVR(e.Entry.VR, [2]byte{peek[0], peek[1]}, group)

	switch {
	case e.Explicit && e.VR.IsLongLength():
		if err := d.s.Skip(4); err != nil {
			return nil, err
		}
		e.ByteLength, err = d.s.ReadU32()
	case e.Explicit:
		if err := d.s.Skip(2); err != nil {
			return nil, err
		}
		var l16 uint16
		l16, err = d.s.ReadU16()
		e.ByteLength = uint32(l16)
	default:
		e.ByteLength, err = d.s.ReadU32()
	}
	if err != nil {
		return nil, err
	}

	if e.Undefined() {
		e.Quantum, e.Length = 0, 0
		return e, nil
	}
	e.Quantum = e.VR.Quantum()
	e.Length = int(e.ByteLength) / e.Quantum
	return e, nil
}

// readValue reads the element value and its scalar datum
func (d *decoder) readValue(e *element) error {
	if e.Undefined() {
		return nil
	}
	e.Data = make([]byte, int(e.ByteLength)+1)
	if err := d.s.ReadFull(e.Data[:e.ByteLength]); err != nil {
		return err
	}
	if e.Length == 1 {
		switch e.Quantum {
		case 1:
			e.Datum, e.HasDatum = int(e.Data[0]), true
		case 2:
			e.Datum, e.HasDatum = int(d.s.Uint16(e.Data)), true
		case 4:
			e.Datum, e.HasDatum = int(d.s.Uint32(e.Data)), true
		}
	}
	return nil
}

// intValue returns the element as an integer from its datum, its first
// binary value or its decimal text
func (d *decoder) intValue(e *element) (int, bool) {
	switch {
	case e.HasDatum && e.Quantum > 1:
		return e.Datum, true
	case e.VR.IsString():
		n, err := strconv.Atoi(e.lastValue())
		if err != nil {
			if f, ferr := strconv.ParseFloat(e.lastValue(), 64); ferr == nil {
				return int(f), true
			}
			return 0, false
		}
		return n, true
	case len(e.Bytes()) >= 2:
		return int(d.s.Uint16(e.Bytes())), true
	case len(e.Bytes()) == 1:
		return int(e.Bytes()[0]), true
	}
	return 0, false
}

// floatValue parses the last decimal value of a string element
func (e *element) floatValue() (float64, bool) {
	f, err := strconv.ParseFloat(e.lastValue(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// uint16s decodes the value as 16-bit words in the stream byte order
func (d *decoder) uint16s(e *element) []uint16 {
	b := e.Bytes()
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = d.s.Uint16(b[2*i:])
	}
	return out
}
