package dcm

import (
	"fmt"

	"github.com/jpfielding/dcmpix/pkg/dcm/blob"
	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/jpfielding/dcmpix/pkg/raster"
)

// sampleSource yields raw samples from the stream, an RLE fragment or an
// externally decoded frame
type sampleSource interface {
	ReadByte() (byte, error)
	ReadShort() (uint16, error)
}

// nativeSamples reads uncompressed samples in the stream byte order
type nativeSamples struct {
	s *blob.Stream
}

func (n nativeSamples) ReadByte() (byte, error)    { return n.s.ReadByte() }
func (n nativeSamples) ReadShort() (uint16, error) { return n.s.ReadU16() }

// sampleReader tracks the running pixel count and saved nibble of packed
// 12-bit data
type sampleReader struct {
	src    sampleSource
	pixel  int
	nibble int
}

// next reads one sample: one byte, one short, or 12 bits where even pixels
// take the high 12 bits of a short and odd pixels take a byte plus the
// saved low nibble
func (d *decoder) next(r *sampleReader) (int, error) {
	defer func() { r.pixel++ }()
	if d.bytesPerPixel == 1 {
		b, err := r.src.ReadByte()
		return int(b), err
	}
	if d.info.BitsAllocated != 12 {
		v, err := r.src.ReadShort()
		return int(v), err
	}
	if r.pixel&1 == 1 {
		b, err := r.src.ReadByte()
		return int(b)<<4 | r.nibble, err
	}
	v, err := r.src.ReadShort()
	r.nibble = int(v & 0x0f)
	return int(v >> 4), err
}

// tick reports one finished row to the monitor
func (d *decoder) tick() error {
	d.rowsDone++
	if d.opts.Monitor != nil && !d.opts.Monitor(d.rowsDone, d.rowsTotal) {
		return fmt.Errorf("%w at row %d of %d", dcmerr.ErrCanceled, d.rowsDone, d.rowsTotal)
	}
	return nil
}

// scale stretches an output sample to the raster range
func (d *decoder) scale(v int) uint16 {
	maxOut := d.info.MaxValueOut
	if maxOut <= 0 || maxOut == raster.MaxValue {
		return uint16(v)
	}
	return uint16(uint64(min(v, maxOut)) * raster.MaxValue / uint64(maxOut))
}

// assemble routes a frame to the assembler for its photometric layout
func (d *decoder) assemble(src sampleSource, img *raster.Image) error {
	in := d.info
	switch {
	case in.Photometric == PaletteColor:
		return d.readPalette(src, img)
	case in.SamplesPerPixel == 1 && in.Photometric == RGB && in.BitsAllocated == 16:
		return d.readPacked565(src, img)
	case in.SamplesPerPixel == 1:
		return d.readGrayscale(src, img)
	case in.PlanarConfiguration == 1:
		return d.readPlanarRGB(src, img)
	default:
		return d.readRGB(src, img)
	}
}

// readGrayscale fills a gray ramp colormapped raster. Pre rescaling maps
// as it reads; post rescaling records the sample range and remaps after.
func (d *decoder) readGrayscale(src sampleSource, img *raster.Image) error {
	in := d.info
	if err := img.AllocateColormap(in.MaxValueOut + 1); err != nil {
		return err
	}
	if in.Rescaling == RescalePost {
		d.resetLimits()
	}
	signBit, invert := 0, false
	if in.Rescaling == RescaleNone {
		if in.Signed {
			signBit = 1 << (in.BitsStored - 1)
		}
		invert = in.Photometric == Monochrome1
	}
	r := &sampleReader{src: src}
	for y := 0; y < img.Rows; y++ {
		row := img.IndexRow(y)
		for x := range row {
			v, err := d.next(r)
			if err != nil {
				return err
			}
			v &= in.MaxValueIn
			switch in.Rescaling {
			case RescalePre:
				v = int(d.rescaleMap[v])
			case RescalePost:
				d.observe(v)
			default:
				v ^= signBit
				if invert {
					v = in.MaxValueIn - v
				}
			}
			row[x] = uint16(v)
		}
		if err := d.tick(); err != nil {
			return err
		}
	}
	if in.Rescaling == RescalePost {
		d.postRescale(img)
	}
	return nil
}

// postRescale builds the map from the observed range and remaps indexes
func (d *decoder) postRescale(img *raster.Image) {
	d.buildRescaleMap()
	for i, v := range img.Index {
		img.Index[i] = d.rescaleMap[int(v)&d.info.MaxValueIn]
	}
}

// readPalette indexes a private copy of the palette colormap
func (d *decoder) readPalette(src sampleSource, img *raster.Image) error {
	in := d.info
	if len(d.colormap) == 0 {
		return dcmerr.Corruptf("palette color image has no palette")
	}
	if err := img.AllocateColormap(len(d.colormap)); err != nil {
		return err
	}
	copy(img.Colormap, d.colormap)
	r := &sampleReader{src: src}
	for y := 0; y < img.Rows; y++ {
		row := img.IndexRow(y)
		for x := range row {
			v, err := d.next(r)
			if err != nil {
				return err
			}
			v &= in.MaxValueIn
			if in.Rescaling == RescalePre {
				v = int(d.rescaleMap[v])
			}
			row[x] = img.VerifyIndex(v - in.PaletteFirstMapped)
		}
		if err := d.tick(); err != nil {
			return err
		}
	}
	return nil
}

// channel masks, maps and scales one color sample
func (d *decoder) channel(v int) uint16 {
	v &= d.info.MaxValueIn
	if d.info.Rescaling == RescalePre {
		v = int(d.rescaleMap[v])
	}
	return d.scale(v)
}

// rgbaOrder returns the RGBA slot of each sample. Four samples carry
// alpha first.
func (d *decoder) rgbaOrder() []int {
	if d.info.SamplesPerPixel == 4 {
		return []int{3, 0, 1, 2}
	}
	order := []int{0, 1, 2}
	for len(order) < d.info.SamplesPerPixel {
		order = append(order, -1)
	}
	return order
}

// store writes a channel, inverting the alpha plane
func store(px []uint16, slot int, v uint16) {
	switch {
	case slot < 0:
	case slot == 3:
		px[3] = raster.MaxValue - v
	default:
		px[slot] = v
	}
}

// readRGB reads interleaved samples per pixel
func (d *decoder) readRGB(src sampleSource, img *raster.Image) error {
	order := d.rgbaOrder()
	r := &sampleReader{src: src}
	for y := 0; y < img.Rows; y++ {
		row := img.PixelRow(y)
		for x := 0; x < img.Columns; x++ {
			px := row[x*4 : x*4+4]
			for _, slot := range order {
				v, err := d.next(r)
				if err != nil {
					return err
				}
				store(px, slot, d.channel(v))
			}
		}
		if err := d.tick(); err != nil {
			return err
		}
	}
	return nil
}

// readPlanarRGB reads one full plane per sample
func (d *decoder) readPlanarRGB(src sampleSource, img *raster.Image) error {
	order := d.rgbaOrder()
	r := &sampleReader{src: src}
	for _, slot := range order {
		for y := 0; y < img.Rows; y++ {
			row := img.PixelRow(y)
			for x := 0; x < img.Columns; x++ {
				v, err := d.next(r)
				if err != nil {
					return err
				}
				store(row[x*4:x*4+4], slot, d.channel(v))
			}
			if err := d.tick(); err != nil {
				return err
			}
		}
	}
	return nil
}

// readPacked565 expands one 16-bit 5-6-5 word per pixel
func (d *decoder) readPacked565(src sampleSource, img *raster.Image) error {
	r := &sampleReader{src: src}
	for y := 0; y < img.Rows; y++ {
		row := img.PixelRow(y)
		for x := 0; x < img.Columns; x++ {
			w, err := d.next(r)
			if err != nil {
				return err
			}
			px := row[x*4 : x*4+4]
			px[0] = uint16((w >> 11 & 0x1f) * raster.MaxValue / 0x1f)
			px[1] = uint16((w >> 5 & 0x3f) * raster.MaxValue / 0x3f)
			px[2] = uint16((w & 0x1f) * raster.MaxValue / 0x1f)
		}
		if err := d.tick(); err != nil {
			return err
		}
	}
	return nil
}
