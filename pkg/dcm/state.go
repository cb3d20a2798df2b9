package dcm

import (
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/text/encoding"

	"github.com/jpfielding/dcmpix/pkg/dcm/blob"
	"github.com/jpfielding/dcmpix/pkg/dcm/transfer"
	"github.com/jpfielding/dcmpix/pkg/raster"
)

// Photometric is the photometric interpretation of the pixel data
type Photometric int

const (
	Monochrome1 Photometric = iota
	Monochrome2
	PaletteColor
	RGB
	OtherPhotometric
)

func (p Photometric) String() string {
	switch p {
	case Monochrome1:
		return "MONOCHROME1"
	case Monochrome2:
		return "MONOCHROME2"
	case PaletteColor:
		return "PALETTE COLOR"
	case RGB:
		return "RGB"
	default:
		return "OTHER"
	}
}

// MarshalText renders the interpretation by name
func (p Photometric) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// IsGrayscale returns true for both MONOCHROME variants
func (p Photometric) IsGrayscale() bool { return p == Monochrome1 || p == Monochrome2 }

// RescaleType is the unit produced by the modality rescale
type RescaleType int

const (
	RescaleUnknown RescaleType = iota
	OpticalDensity
	Hounsfield
	Unspecified
)

func (r RescaleType) String() string {
	switch r {
	case OpticalDensity:
		return "OD"
	case Hounsfield:
		return "HU"
	case Unspecified:
		return "US"
	default:
		return "unknown"
	}
}

// MarshalText renders the rescale type by its DICOM code
func (r RescaleType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// RescaleMode says when the rescale map is applied
type RescaleMode int

const (
	// RescaleNone stores samples unchanged
	RescaleNone RescaleMode = iota
	// RescalePre maps every sample as it is read
	RescalePre
	// RescalePost maps every pixel after the frame is assembled, using the
	// sample range observed while reading it
	RescalePost
)

func (m RescaleMode) String() string {
	switch m {
	case RescalePre:
		return "pre"
	case RescalePost:
		return "post"
	default:
		return "none"
	}
}

// MarshalText renders the mode by name
func (m RescaleMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Info is the resolved header of a decoded file
type Info struct {
	Filename            string            `json:"filename,omitempty"`
	TransferSyntaxUID   string            `json:"transferSyntaxUID,omitempty"`
	TransferSyntax      transfer.Kind     `json:"transferSyntax"`
	Photometric         Photometric       `json:"photometric"`
	Rows                int               `json:"rows"`
	Columns             int               `json:"columns"`
	Frames              int               `json:"frames"`
	SamplesPerPixel     int               `json:"samplesPerPixel"`
	PlanarConfiguration int               `json:"planarConfiguration"`
	BitsAllocated       int               `json:"bitsAllocated"`
	BitsStored          int               `json:"bitsStored"`
	HighBit             int               `json:"highBit"`
	Signed              bool              `json:"signed"`
	WindowCenter        float64           `json:"windowCenter"`
	WindowWidth         float64           `json:"windowWidth"`
	RescaleIntercept    float64           `json:"rescaleIntercept"`
	RescaleSlope        float64           `json:"rescaleSlope"`
	RescaleType         RescaleType       `json:"rescaleType"`
	Rescaling           RescaleMode       `json:"rescaling"`
	MaxValueIn          int               `json:"maxValueIn"`
	MaxValueOut         int               `json:"maxValueOut"`
	CharacterSet        string            `json:"characterSet,omitempty"`
	PaletteEntries      int               `json:"paletteEntries,omitempty"`
	PaletteFirstMapped  int               `json:"paletteFirstMapped,omitempty"`
	LUT                 []uint16          `json:"lut,omitempty"`
	Attributes          map[string]string `json:"attributes,omitempty"`
}

// Image is a decoded file: one raster per frame plus the resolved header
type Image struct {
	Frames []*raster.Image
	Info   Info
}

// decoder is the per call decode state. Nothing in it outlives Decode.
type decoder struct {
	s    *blob.Stream
	opts Options
	log  *slog.Logger
	info Info

	bytesPerPixel int
	// depth is the sample depth reported on output rasters
	depth int

	upperLim int
	lowerLim int
	// rescaleMap has MaxValueIn+1 entries
	rescaleMap []uint16

	offsets []int64

	charset  encoding.Encoding
	colormap []color.RGBA64

	// nesting of undefined length sequences and items
	seqDepth int

	rowsDone  int64
	rowsTotal int64

	frames []*raster.Image
}

func newDecoder(s *blob.Stream, opts Options) *decoder {
	return &decoder{
		s:    s,
		opts: opts,
		log:  opts.logger(),
		info: Info{
			Filename:        opts.Filename,
			TransferSyntax:  transfer.ImplicitLittle,
			Photometric:     Monochrome2,
			Frames:          1,
			SamplesPerPixel: 1,
			BitsAllocated:   8,
			BitsStored:      8,
			HighBit:         7,
			RescaleSlope:    1,
			MaxValueIn:      255,
			MaxValueOut:     255,
			Attributes:      map[string]string{},
		},
		bytesPerPixel: 1,
		depth:         8,
		lowerLim:      math.MaxInt,
		upperLim:      math.MinInt,
	}
}

// signedValue interprets a masked sample as two's complement when the
// pixel representation is signed
func (d *decoder) signedValue(v int) int {
	if d.info.Signed && d.info.BitsStored > 0 && v >= 1<<(d.info.BitsStored-1) {
		return v - (d.info.MaxValueIn + 1)
	}
	return v
}
