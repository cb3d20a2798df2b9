package dcm

import (
	"bytes"
	"encoding/binary"

	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
)

// builder writes synthetic DICOM streams
type builder struct {
	buf      bytes.Buffer
	order    binary.ByteOrder
	explicit bool
}

// newFile starts a stream with preamble, magic and a meta group naming ts
func newFile(ts string) *builder {
	b := &builder{order: binary.LittleEndian, explicit: true}
	b.buf.Write(make([]byte, preambleSize))
	b.buf.WriteString(magic)
	b.str(tag.TransferSyntaxUID, vr.UI, ts)
	return b
}

// headerless starts an implicit little endian stream with no preamble
func headerless() *builder {
	return &builder{order: binary.LittleEndian}
}

// dataSet switches the writer to the data set encoding
func (b *builder) dataSet(order binary.ByteOrder, explicit bool) *builder {
	b.order, b.explicit = order, explicit
	return b
}

func (b *builder) u16(v uint16) { binary.Write(&b.buf, b.order, v) }
func (b *builder) u32(v uint32) { binary.Write(&b.buf, b.order, v) }

func (b *builder) header(t tag.Tag, v vr.VR, length uint32) {
	b.u16(t.Group)
	b.u16(t.Element)
	if !b.explicit || v == vr.Delimiter {
		b.u32(length)
		return
	}
	b.buf.WriteString(string(v))
	if v.IsLongLength() {
		b.u16(0)
		b.u32(length)
		return
	}
	b.u16(uint16(length))
}

func (b *builder) raw(t tag.Tag, v vr.VR, value []byte) *builder {
	b.header(t, v, uint32(len(value)))
	b.buf.Write(value)
	return b
}

func (b *builder) str(t tag.Tag, v vr.VR, s string) *builder {
	if len(s)%2 == 1 {
		pad := " "
		if v == vr.UI {
			pad = "\x00"
		}
		s += pad
	}
	return b.raw(t, v, []byte(s))
}

func (b *builder) us(t tag.Tag, vals ...uint16) *builder {
	var v bytes.Buffer
	for _, x := range vals {
		binary.Write(&v, b.order, x)
	}
	return b.raw(t, vr.US, v.Bytes())
}

func (b *builder) ow(t tag.Tag, vals ...uint16) *builder {
	var v bytes.Buffer
	for _, x := range vals {
		binary.Write(&v, b.order, x)
	}
	return b.raw(t, vr.OW, v.Bytes())
}

// image writes the image pixel module
func (b *builder) image(rows, cols, bitsAlloc, bitsStored int, phot string, spp int) *builder {
	b.us(tag.SamplesPerPixel, uint16(spp))
	b.str(tag.PhotometricInterpretation, vr.CS, phot)
	b.us(tag.Rows, uint16(rows))
	b.us(tag.Columns, uint16(cols))
	b.us(tag.BitsAllocated, uint16(bitsAlloc))
	b.us(tag.BitsStored, uint16(bitsStored))
	b.us(tag.HighBit, uint16(bitsStored-1))
	return b
}

// pixels writes native pixel data
func (b *builder) pixels(data []byte) *builder {
	return b.raw(tag.PixelData, vr.OB, data)
}

// pixelsDeclared writes a pixel data header claiming n bytes followed by data
func (b *builder) pixelsDeclared(n uint32, data []byte) *builder {
	b.header(tag.PixelData, vr.OB, n)
	b.buf.Write(data)
	return b
}

// encapsulated opens undefined length pixel data
func (b *builder) encapsulated() *builder {
	b.header(tag.PixelData, vr.OB, undefinedLength)
	return b
}

// item writes an item with a defined length
func (b *builder) item(data []byte) *builder {
	b.u16(0xFFFE)
	b.u16(0xE000)
	b.u32(uint32(len(data)))
	b.buf.Write(data)
	return b
}

// offsetTable writes the basic offset table item
func (b *builder) offsetTable(offsets ...uint32) *builder {
	var v bytes.Buffer
	for _, o := range offsets {
		binary.Write(&v, b.order, o)
	}
	return b.item(v.Bytes())
}

func (b *builder) delimiter(t tag.Tag) *builder {
	b.u16(t.Group)
	b.u16(t.Element)
	b.u32(0)
	return b
}

// openItem starts an undefined length item
func (b *builder) openItem() *builder {
	b.u16(0xFFFE)
	b.u16(0xE000)
	b.u32(undefinedLength)
	return b
}

func (b *builder) undefined(t tag.Tag, v vr.VR) *builder {
	b.header(t, v, undefinedLength)
	return b
}

func (b *builder) bytes() []byte { return b.buf.Bytes() }

func (b *builder) reader() *bytes.Reader { return bytes.NewReader(b.buf.Bytes()) }

// rleFragment frames one single segment RLE fragment
func rleFragment(order binary.ByteOrder, payload []byte) []byte {
	var v bytes.Buffer
	binary.Write(&v, order, uint32(1))
	binary.Write(&v, order, uint32(64))
	v.Write(make([]byte, 14*4))
	v.Write(payload)
	return v.Bytes()
}
