package dcm

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/jpfielding/dcmpix/pkg/compress/rle"
	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/transfer"
	"github.com/jpfielding/dcmpix/pkg/raster"
)

// frameExt names the scratch file after the codec it holds
func frameExt(k transfer.Kind) string {
	switch k {
	case transfer.JPEGLS:
		return ".jls"
	case transfer.JPEG2K:
		return ".j2k"
	default:
		return ".jpg"
	}
}

// readNonNative hands each encapsulated frame to the frame decoder
func (d *decoder) readNonNative() ([]*raster.Image, error) {
	offsets, err := rle.ReadOffsetTable(d.s, d.info.Frames)
	if err != nil {
		return nil, fmt.Errorf("offset table: %w", err)
	}
	d.offsets = offsets

	frames := make([]*raster.Image, 0, d.info.Frames)
	for f := 0; f < d.info.Frames; f++ {
		img, err := d.decodeFrame(f)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", f, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// copyFragments writes frame f's fragments to w. With an offset table the
// frame runs up to the next frame's offset, or to the sequence delimiter
// for the last frame; without one each frame is a single fragment.
func (d *decoder) copyFragments(f int, w io.Writer) error {
	end := int64(-1)
	if len(d.offsets) > 0 {
		if _, err := d.s.Seek(d.offsets[f], io.SeekStart); err != nil {
			return err
		}
		if f+1 < len(d.offsets) {
			end = d.offsets[f+1]
		}
	}
	count := 0
	for end < 0 || d.s.Tell() < end {
		t, err := rle.ReadItemTag(d.s)
		if err != nil {
			return err
		}
		length, err := d.s.ReadU32()
		if err != nil {
			return err
		}
		if t == rle.SequenceDelimiter {
			if count == 0 {
				return dcmerr.Corruptf("pixel data ends after %d of %d frames", f, d.info.Frames)
			}
			return nil
		}
		if t != rle.ItemTag {
			return dcmerr.Corruptf("fragment item tag %s", tag.FromUint32(t))
		}
		if int64(length) > d.s.Remaining() {
			return fmt.Errorf("%w: fragment of %d bytes with %d left", dcmerr.ErrUnexpectedEOF, length, d.s.Remaining())
		}
		if _, err := io.CopyN(w, d.s, int64(length)); err != nil {
			if errors.Is(err, io.EOF) {
				return dcmerr.ErrUnexpectedEOF
			}
			return err
		}
		count++
		if len(d.offsets) == 0 {
			return nil
		}
	}
	return nil
}

// decodeFrame spools one frame to a scratch file, decodes it, then adopts
// the decoded depth before assembling it like native data
func (d *decoder) decodeFrame(f int) (*raster.Image, error) {
	tmp, err := d.opts.TempFiles.Create(frameExt(d.info.TransferSyntax))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dcmerr.ErrResourceLimit, err)
	}
	defer d.opts.TempFiles.Remove(tmp)

	if err := d.copyFragments(f, tmp); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	decoded, err := d.opts.frameDecoder().DecodeFrame(tmp, d.info.TransferSyntax)
	if err != nil {
		if dcmerr.Class(err) != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", dcmerr.ErrExternalDecode, err)
	}
	b := decoded.Bounds()
	if b.Dx() != d.info.Columns || b.Dy() != d.info.Rows {
		return nil, fmt.Errorf("%w: decoded %dx%d for a %dx%d image",
			dcmerr.ErrExternalDecode, b.Dx(), b.Dy(), d.info.Columns, d.info.Rows)
	}

	d.adoptDepth(decoded)
	d.log.Debug("frame decoded", "frame", f, "kind", d.info.TransferSyntax,
		"depth", d.info.BitsStored, "rescaling", d.info.Rescaling)

	img := d.newFrame()
	if err := d.assemble(newImageSamples(decoded, d.info.SamplesPerPixel, d.info.BitsStored), img); err != nil {
		return nil, err
	}
	return img, nil
}

// adoptDepth takes the decoded sample depth as the stored depth, since the
// external decoder may have reduced precision, and re-resolves rescaling
func (d *decoder) adoptDepth(img image.Image) {
	bits := 8
	switch img.ColorModel() {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model:
		bits = 16
	}
	in := &d.info
	in.BitsAllocated, in.BitsStored, in.HighBit = bits, bits, bits-1
	in.MaxValueIn = 1<<bits - 1
	in.PlanarConfiguration = 0
	if in.SamplesPerPixel != 1 {
		in.SamplesPerPixel = 3
	}
	d.bytesPerPixel = bits / 8
	d.depth = bits
	d.resolveRescaling()
	if in.Rescaling == RescalePre {
		d.resetLimits()
		d.buildRescaleMap()
	}
}

// imageSamples replays a decoded image as interleaved samples in raster
// order, one gray or three color samples per pixel
type imageSamples struct {
	img   image.Image
	spp   int
	shift uint
	x, y  int
	c     int
	vals  [3]uint32
}

func newImageSamples(img image.Image, spp, bits int) *imageSamples {
	return &imageSamples{img: img, spp: spp, shift: uint(16 - bits)}
}

func (s *imageSamples) next() (uint32, error) {
	b := s.img.Bounds()
	if s.c == 0 {
		if s.y >= b.Dy() {
			return 0, dcmerr.ErrUnexpectedEOF
		}
		c := s.img.At(b.Min.X+s.x, b.Min.Y+s.y)
		if s.spp == 1 {
			s.vals[0] = uint32(color.Gray16Model.Convert(c).(color.Gray16).Y)
		} else {
			r, g, bl, _ := c.RGBA()
			s.vals = [3]uint32{r, g, bl}
		}
	}
	v := s.vals[s.c] >> s.shift
	s.c++
	if s.c == s.spp || s.c == len(s.vals) {
		s.c = 0
		if s.x++; s.x == b.Dx() {
			s.x = 0
			s.y++
		}
	}
	return v, nil
}

func (s *imageSamples) ReadByte() (byte, error) {
	v, err := s.next()
	return byte(v), err
}

func (s *imageSamples) ReadShort() (uint16, error) {
	v, err := s.next()
	return uint16(v), err
}
