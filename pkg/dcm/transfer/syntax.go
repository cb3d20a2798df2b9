// Package transfer defines DICOM Transfer Syntaxes
package transfer

import (
	"strconv"
	"strings"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
)

// Syntax represents a DICOM Transfer Syntax UID
type Syntax string

// Standard Transfer Syntaxes
const (
	// Uncompressed
	ImplicitVRLittleEndian Syntax = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian Syntax = "1.2.840.10008.1.2.1"
	DeflatedExplicitVR     Syntax = "1.2.840.10008.1.2.1.99"
	ExplicitVRBigEndian    Syntax = "1.2.840.10008.1.2.2" // Retired

	// JPEG
	JPEGBaseline           Syntax = "1.2.840.10008.1.2.4.50"
	JPEGExtended           Syntax = "1.2.840.10008.1.2.4.51"
	JPEGLossless           Syntax = "1.2.840.10008.1.2.4.57"
	JPEGLosslessFirstOrder Syntax = "1.2.840.10008.1.2.4.70"

	// JPEG-LS
	JPEGLSLossless     Syntax = "1.2.840.10008.1.2.4.80"
	JPEGLSNearLossless Syntax = "1.2.840.10008.1.2.4.81"

	// JPEG 2000
	JPEG2000Lossless Syntax = "1.2.840.10008.1.2.4.90"
	JPEG2000         Syntax = "1.2.840.10008.1.2.4.91"

	// Other
	RLELossless Syntax = "1.2.840.10008.1.2.5"
)

// root every transfer syntax UID starts with
const root = "1.2.840.10008.1.2"

// Kind is the decoder's classification of a transfer syntax
type Kind int

const (
	ImplicitLittle Kind = iota
	ExplicitLittle
	ExplicitBig
	JPEG
	JPEGLS
	JPEG2K
	RLE
)

func (k Kind) String() string {
	switch k {
	case ImplicitLittle:
		return "implicit-little"
	case ExplicitLittle:
		return "explicit-little"
	case ExplicitBig:
		return "explicit-big"
	case JPEG:
		return "jpeg"
	case JPEGLS:
		return "jpeg-ls"
	case JPEG2K:
		return "jpeg-2000"
	case RLE:
		return "rle"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsJPEGFamily returns true for syntaxes handed to an external decoder
func (k Kind) IsJPEGFamily() bool {
	return k == JPEG || k == JPEGLS || k == JPEG2K
}

// IsEncapsulated returns true if pixel data is framed in items
func (k Kind) IsEncapsulated() bool {
	return k.IsJPEGFamily() || k == RLE
}

// IsBigEndian returns true if the data set after the meta group is big endian
func (k Kind) IsBigEndian() bool {
	return k == ExplicitBig
}

// Parse classifies a UID of the form 1.2.840.10008.1.2[.<type>[.<subtype>]].
// Trailing NUL and space padding is ignored.
func Parse(uid string) (Kind, error) {
	uid = strings.TrimRight(uid, "\x00 ")
	if !strings.HasPrefix(uid, root) {
		return 0, dcmerr.Corruptf("transfer syntax %q is not a DICOM transfer syntax", uid)
	}
	rest := uid[len(root):]
	if rest == "" {
		return ImplicitLittle, nil
	}
	if rest[0] != '.' {
		return 0, dcmerr.Corruptf("malformed transfer syntax %q", uid)
	}
	parts := strings.Split(rest[1:], ".")
	typ, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, dcmerr.Corruptf("malformed transfer syntax %q", uid)
	}
	subtype := 0
	if len(parts) > 1 {
		if subtype, err = strconv.Atoi(parts[1]); err != nil {
			return 0, dcmerr.Corruptf("malformed transfer syntax %q", uid)
		}
	}
	switch typ {
	case 1:
		if subtype == 99 {
			return 0, dcmerr.Unsupportedf("deflated transfer syntax %q", uid)
		}
		return ExplicitLittle, nil
	case 2:
		return ExplicitBig, nil
	case 4:
		switch {
		case subtype >= 80 && subtype <= 81:
			return JPEGLS, nil
		case subtype >= 90 && subtype <= 93:
			return JPEG2K, nil
		default:
			return JPEG, nil
		}
	case 5:
		return RLE, nil
	default:
		return ExplicitLittle, nil
	}
}

// Name returns a human-readable name for the transfer syntax
func (s Syntax) Name() string {
	switch s {
	case ImplicitVRLittleEndian:
		return "Implicit VR Little Endian"
	case ExplicitVRLittleEndian:
		return "Explicit VR Little Endian"
	case DeflatedExplicitVR:
		return "Deflated Explicit VR Little Endian"
	case ExplicitVRBigEndian:
		return "Explicit VR Big Endian (Retired)"
	case JPEGBaseline:
		return "JPEG Baseline (Process 1)"
	case JPEGExtended:
		return "JPEG Extended (Process 2 & 4)"
	case JPEGLossless:
		return "JPEG Lossless (Process 14)"
	case JPEGLosslessFirstOrder:
		return "JPEG Lossless First-Order (Process 14, SV1)"
	case JPEGLSLossless:
		return "JPEG-LS Lossless"
	case JPEGLSNearLossless:
		return "JPEG-LS Near-Lossless"
	case JPEG2000Lossless:
		return "JPEG 2000 Lossless"
	case JPEG2000:
		return "JPEG 2000"
	case RLELossless:
		return "RLE Lossless"
	default:
		return string(s)
	}
}
