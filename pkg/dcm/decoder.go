// Package dcm decodes DICOM files into rasters. It reads the element
// stream up to the pixel data, resolves transfer syntax and rescaling,
// then assembles every frame from native, RLE or externally decoded
// pixel data.
package dcm

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/jpfielding/dcmpix/pkg/compress/rle"
	"github.com/jpfielding/dcmpix/pkg/dcm/blob"
	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/transfer"
	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
	"github.com/jpfielding/dcmpix/pkg/raster"
)

const (
	preambleSize = 128
	magic        = "DICM"
)

// DecodeFile decodes the DICOM file at path
func DecodeFile(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	if opts.Filename == "" {
		opts.Filename = path
	}
	return Decode(f, opts)
}

// Decode reads a complete DICOM stream. It returns every frame or, on any
// failure, a single *dcmerr.DecodeError and no image.
func Decode(r io.ReadSeeker, opts Options) (*Image, error) {
	s, err := blob.New(r)
	if err != nil {
		return nil, dcmerr.NewDecodeError(opts.Filename, 0, "open", err)
	}
	d := newDecoder(s, opts)
	op, err := d.decode()
	if err != nil {
		return nil, dcmerr.NewDecodeError(opts.Filename, s.Tell(), op, err)
	}
	return &Image{Frames: d.frames, Info: d.info}, nil
}

// decode runs every stage, returning the name of the stage that failed
func (d *decoder) decode() (string, error) {
	if err := d.readPreamble(); err != nil {
		return "preamble", err
	}
	found, err := d.readElements()
	if err != nil {
		return "header", err
	}
	if !found {
		if d.opts.Ping {
			return "", nil
		}
		return "header", dcmerr.Corruptf("no pixel data")
	}
	if err := d.validate(); err != nil {
		return "header", err
	}
	if d.opts.Ping {
		return "", nil
	}

	d.resolveRescaling()
	if d.info.Rescaling == RescalePre {
		d.buildRescaleMap()
	}
	d.rowsTotal = int64(d.info.Frames) * int64(d.info.Rows)
	if d.info.PlanarConfiguration == 1 && d.info.SamplesPerPixel > 1 && d.info.Photometric != PaletteColor {
		d.rowsTotal *= int64(d.info.SamplesPerPixel)
	}

	switch kind := d.info.TransferSyntax; {
	case kind.IsJPEGFamily():
		d.frames, err = d.readNonNative()
	case kind == transfer.RLE:
		d.frames, err = d.readRLE()
	default:
		d.frames, err = d.readNative()
	}
	if err != nil {
		d.frames = nil
		return "pixels", err
	}
	d.log.Debug("decoded", "frames", len(d.frames), "columns", d.info.Columns, "rows", d.info.Rows)
	return "", nil
}

// readPreamble skips the preamble and magic, or rewinds to parse a
// headerless stream
func (d *decoder) readPreamble() error {
	if d.s.Size() >= preambleSize+int64(len(magic)) {
		if _, err := d.s.Seek(preambleSize, io.SeekStart); err != nil {
			return err
		}
		m, err := d.s.ReadN(len(magic))
		if err != nil {
			return err
		}
		if string(m) == magic {
			return nil
		}
	}
	d.log.Debug("no DICM magic, reading headerless stream")
	_, err := d.s.Seek(0, io.SeekStart)
	return err
}

// readElements reads and dispatches elements until the top level pixel
// data element. It reports whether pixel data was found.
func (d *decoder) readElements() (bool, error) {
	for !d.s.EOF() {
		e, err := d.readHeader()
		if err != nil {
			return false, err
		}
		if e.Tag == tag.PixelData && d.seqDepth == 0 {
			d.log.Debug("pixel data", "offset", e.Offset, "vr", e.VR, "length", e.ByteLength)
			d.report(e)
			return true, nil
		}
		switch {
		case e.Undefined():
			d.seqDepth++
		case e.Tag == tag.ItemDelimitationItem || e.Tag == tag.SequenceDelimitationItem:
			d.seqDepth = max(d.seqDepth-1, 0)
		}
		if err := d.readElementValue(e); err != nil {
			return false, err
		}
	}
	return false, nil
}

// readElementValue reads the value, dispatches it and releases it.
// Elements nested in sequences, such as an icon image, are read but never
// dispatched so they cannot overwrite the top level image header.
func (d *decoder) readElementValue(e *element) error {
	if !e.Undefined() && int64(e.ByteLength) > d.s.Remaining() {
		return dcmerr.Corruptf("element %s length %d exceeds the %d bytes left", e.Tag, e.ByteLength, d.s.Remaining())
	}
	if err := d.readValue(e); err != nil {
		return fmt.Errorf("element %s: %w", e.Tag, err)
	}
	defer func() { e.Data = nil }()
	d.report(e)
	d.log.Debug("element",
		"tag", e.Tag, "name", e.Entry.Name, "vr", e.VR, "explicit", e.Explicit,
		"length", e.Length, "action", e.Entry.Action, "offset", e.Offset, "depth", d.seqDepth)
	if d.seqDepth > 0 {
		return nil
	}
	if err := d.dispatch(e); err != nil {
		return fmt.Errorf("element %s: %w", e.Tag, err)
	}
	return nil
}

// report hands the element to the OnElement callback
func (d *decoder) report(e *element) {
	if d.opts.OnElement == nil {
		return
	}
	d.opts.OnElement(Element{
		Tag:      e.Tag,
		Name:     e.Entry.Name,
		VR:       e.VR,
		Explicit: e.Explicit,
		Length:   e.ByteLength,
		Offset:   e.Offset,
		Depth:    d.seqDepth,
		Value:    d.preview(e),
	})
}

// preview renders a short form of the value: text for string VRs, up to
// eight words otherwise
func (d *decoder) preview(e *element) string {
	if e.Data == nil {
		return ""
	}
	if e.VR.IsString() {
		return d.decodeText(e)
	}
	if e.Quantum == 1 && e.VR != vr.XS {
		return fmt.Sprintf("% X", e.Bytes()[:min(len(e.Bytes()), 16)])
	}
	var words []int
	if e.Quantum == 4 {
		for b := e.Bytes(); len(b) >= 4; b = b[4:] {
			words = append(words, int(d.s.Uint32(b)))
		}
	} else {
		for _, w := range d.uint16s(e) {
			words = append(words, int(w))
		}
	}
	out := make([]string, 0, 8)
	for _, w := range words[:min(len(words), 8)] {
		out = append(out, strconv.Itoa(w))
	}
	if len(words) > 8 {
		out = append(out, "...")
	}
	return strings.Join(out, `\`)
}

// validate checks geometry and the pixel limit before any allocation
func (d *decoder) validate() error {
	in := d.info
	if in.Columns <= 0 || in.Rows <= 0 {
		return dcmerr.Corruptf("image has %dx%d pixels", in.Columns, in.Rows)
	}
	switch in.SamplesPerPixel {
	case 1, 3, 4:
	default:
		return dcmerr.Unsupportedf("%d samples per pixel", in.SamplesPerPixel)
	}
	pixels := int64(in.Columns) * int64(in.Rows) * int64(in.Frames)
	if d.opts.PixelLimit > 0 && pixels > d.opts.PixelLimit {
		return dcmerr.Limitf("%d pixels exceeds the limit of %d", pixels, d.opts.PixelLimit)
	}
	return nil
}

// newFrame creates an output raster carrying the header attributes
func (d *decoder) newFrame() *raster.Image {
	img := raster.New(d.info.Columns, d.info.Rows)
	img.SetDepth(d.depth)
	img.Attributes = maps.Clone(d.info.Attributes)
	return img
}

func (d *decoder) readNative() ([]*raster.Image, error) {
	src := nativeSamples{s: d.s}
	frames := make([]*raster.Image, 0, d.info.Frames)
	for f := 0; f < d.info.Frames; f++ {
		img := d.newFrame()
		if err := d.assemble(src, img); err != nil {
			return nil, fmt.Errorf("frame %d: %w", f, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func (d *decoder) readRLE() ([]*raster.Image, error) {
	offsets, err := rle.ReadOffsetTable(d.s, d.info.Frames)
	if err != nil {
		return nil, fmt.Errorf("offset table: %w", err)
	}
	d.offsets = offsets
	r := rle.NewReader(d.s, offsets)
	frames := make([]*raster.Image, 0, d.info.Frames)
	for f := 0; f < d.info.Frames; f++ {
		if err := r.BeginFrame(f); err != nil {
			return nil, fmt.Errorf("frame %d: %w", f, err)
		}
		img := d.newFrame()
		if err := d.assemble(r, img); err != nil {
			return nil, fmt.Errorf("frame %d: %w", f, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}
