package dcm

import (
	"image/color"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/jpfielding/dcmpix/pkg/dcm/blob"
	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/jpfielding/dcmpix/pkg/dcm/dict"
	"github.com/jpfielding/dcmpix/pkg/dcm/transfer"
	"github.com/jpfielding/dcmpix/pkg/raster"
)

// dispatch runs the handler for the element's action
func (d *decoder) dispatch(e *element) error {
	switch e.Entry.Action {
	case dict.None:
		return nil
	case dict.TransferSyntax:
		return d.onTransferSyntax(e)
	case dict.SpecificCharacterSet:
		d.onCharacterSet(e)
	case dict.StudyDate, dict.PatientName, dict.TriggerTime, dict.FieldOfView,
		dict.SeriesNumber, dict.ImagePosition, dict.ImageOrientation, dict.SliceLocation:
		d.info.Attributes[e.Entry.Action.String()] = d.decodeText(e)
	case dict.SamplesPerPixel:
		d.info.SamplesPerPixel = d.intOr(e, d.info.SamplesPerPixel)
	case dict.PhotometricInterpretation:
		d.info.Photometric = parsePhotometric(e.String())
	case dict.PlanarConfiguration:
		d.info.PlanarConfiguration = d.intOr(e, d.info.PlanarConfiguration)
	case dict.NumberOfFrames:
		if n := d.intOr(e, 1); n > 0 {
			d.info.Frames = n
		}
	case dict.Rows:
		d.info.Rows = d.intOr(e, 0)
	case dict.Columns:
		d.info.Columns = d.intOr(e, 0)
	case dict.BitsAllocated:
		return d.onBitsAllocated(e)
	case dict.BitsStored:
		return d.onBitsStored(e)
	case dict.HighBit:
		d.info.HighBit = d.intOr(e, d.info.HighBit)
	case dict.PixelRepresentation:
		d.info.Signed = d.intOr(e, 0) == 1
	case dict.WindowCenter:
		d.info.WindowCenter = floatOr(e, d.info.WindowCenter)
	case dict.WindowWidth:
		d.info.WindowWidth = floatOr(e, d.info.WindowWidth)
	case dict.RescaleIntercept:
		d.info.RescaleIntercept = floatOr(e, d.info.RescaleIntercept)
	case dict.RescaleSlope:
		d.info.RescaleSlope = floatOr(e, d.info.RescaleSlope)
	case dict.RescaleType:
		d.info.RescaleType = parseRescaleType(e.String())
	case dict.PaletteDescriptor:
		return d.onPaletteDescriptor(e)
	case dict.Palette:
		return d.onPalette(e)
	case dict.LUT:
		d.info.LUT = d.uint16s(e)
	}
	return nil
}

func (d *decoder) intOr(e *element, def int) int {
	if n, ok := d.intValue(e); ok {
		return n
	}
	return def
}

func floatOr(e *element, def float64) float64 {
	if f, ok := e.floatValue(); ok {
		return f
	}
	return def
}

func (d *decoder) onTransferSyntax(e *element) error {
	uid := e.String()
	kind, err := transfer.Parse(uid)
	if err != nil {
		return err
	}
	d.info.TransferSyntaxUID = uid
	d.info.TransferSyntax = kind
	if kind.IsBigEndian() {
		d.s.SetOrder(blob.PendingBig)
	}
	d.log.Debug("transfer syntax", "uid", uid, "kind", kind)
	return nil
}

func (d *decoder) onBitsAllocated(e *element) error {
	bits := d.intOr(e, 0)
	d.info.BitsAllocated = bits
	d.bytesPerPixel = 1
	if bits > 8 {
		d.bytesPerPixel = 2
	}
	return nil
}

func (d *decoder) onBitsStored(e *element) error {
	bits := d.intOr(e, 0)
	if bits < 1 || bits > 16 {
		return dcmerr.Corruptf("bits stored %d outside 1..16", bits)
	}
	d.info.BitsStored = bits
	d.info.MaxValueIn = 1<<bits - 1
	d.info.MaxValueOut = d.info.MaxValueIn
	d.depth = min(bits, raster.Depth)
	return nil
}

func parsePhotometric(s string) Photometric {
	switch {
	case strings.HasPrefix(s, "MONOCHROME1"):
		return Monochrome1
	case strings.HasPrefix(s, "MONOCHROME2"):
		return Monochrome2
	case strings.HasPrefix(s, "PALETTE COLOR"):
		return PaletteColor
	case strings.HasPrefix(s, "RGB"):
		return RGB
	default:
		return OtherPhotometric
	}
}

func parseRescaleType(s string) RescaleType {
	switch strings.TrimSpace(s) {
	case "OD":
		return OpticalDensity
	case "HU":
		return Hounsfield
	case "US":
		return Unspecified
	default:
		return RescaleUnknown
	}
}

// onPaletteDescriptor reads (entries, first mapped, bits). Zero entries
// means 65536.
func (d *decoder) onPaletteDescriptor(e *element) error {
	v := d.uint16s(e)
	if len(v) < 1 {
		return nil
	}
	entries := int(v[0])
	if entries == 0 {
		entries = raster.MaxColormap
	}
	if len(v) > 1 {
		d.info.PaletteFirstMapped = int(v[1])
		if d.info.Signed {
			d.info.PaletteFirstMapped = int(int16(v[1]))
		}
	}
	if d.colormap == nil {
		d.allocateColormap(entries)
	}
	return nil
}

// onPalette merges one color plane into the colormap. Entries are 16-bit
// whatever the declared depth.
func (d *decoder) onPalette(e *element) error {
	v := d.uint16s(e)
	if d.colormap == nil {
		d.allocateColormap(len(v))
	}
	if len(v) != len(d.colormap) {
		return dcmerr.Limitf("palette %s has %d entries for a %d entry colormap", e.Tag, len(v), len(d.colormap))
	}
	for i, c := range v {
		switch e.Tag.Element {
		case 0x1201:
			d.colormap[i].R = c
		case 0x1202:
			d.colormap[i].G = c
		case 0x1203:
			d.colormap[i].B = c
		}
	}
	return nil
}

func (d *decoder) allocateColormap(n int) {
	d.colormap = make([]color.RGBA64, n)
	for i := range d.colormap {
		d.colormap[i].A = raster.MaxValue
	}
	d.info.PaletteEntries = n
}

// DICOM character set terms and their htmlindex names
var charsetNames = map[string]string{
	"ISO_IR 6":        "",
	"ISO 2022 IR 6":   "",
	"ISO_IR 13":       "shift_jis",
	"ISO 2022 IR 13":  "shift_jis",
	"ISO_IR 100":      "iso-8859-1",
	"ISO 2022 IR 100": "iso-8859-1",
	"ISO_IR 101":      "iso-8859-2",
	"ISO 2022 IR 101": "iso-8859-2",
	"ISO_IR 109":      "iso-8859-3",
	"ISO 2022 IR 109": "iso-8859-3",
	"ISO_IR 110":      "iso-8859-4",
	"ISO 2022 IR 110": "iso-8859-4",
	"ISO_IR 126":      "iso-ir-126",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO_IR 127":      "iso-ir-127",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO_IR 138":      "iso-ir-138",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO_IR 144":      "iso-ir-144",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO_IR 148":      "iso-ir-148",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 149": "euc-kr",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO_IR 166":      "iso-ir-166",
	"ISO 2022 IR 166": "iso-ir-166",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO_IR 192":      "utf-8",
	"GB18030":         "gb18030",
	"GBK":             "gbk",
}

// onCharacterSet selects the decoder for later text attributes. The first
// non empty value is the default repertoire.
func (d *decoder) onCharacterSet(e *element) {
	var term string
	for _, v := range strings.Split(e.String(), "\\") {
		if v = strings.TrimSpace(v); v != "" {
			term = v
			break
		}
	}
	d.info.CharacterSet = term
	d.charset = lookupCharset(term)
	if d.charset == nil && term != "" {
		if _, known := charsetNames[term]; !known {
			d.log.Warn("unknown character set, copying text verbatim", "charset", term)
		}
	}
}

func lookupCharset(term string) encoding.Encoding {
	name, ok := charsetNames[term]
	if !ok || name == "" {
		return nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil
	}
	return enc
}

// decodeText converts an attribute value to UTF-8, or returns it verbatim
// when no character set is active or conversion fails
func (d *decoder) decodeText(e *element) string {
	s := e.String()
	if d.charset == nil {
		return s
	}
	out, err := d.charset.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
