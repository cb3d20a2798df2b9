package dcm

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // baseline and extended JPEG frames
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/transfer"
	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
	"github.com/jpfielding/dcmpix/pkg/logging"
	"github.com/jpfielding/dcmpix/pkg/util"
)

// Define keys understood by ParseDefines
const (
	DefineAvoidScaling = "dcm:avoid-scaling"
	DefinePixelLimit   = "dcm:pixel-limit"
)

// Options configures a decode
type Options struct {
	// Filename is reported in errors and log records
	Filename string
	// AvoidScaling disables automatic rescaling unless the input depth
	// exceeds the output sample depth
	AvoidScaling bool
	// Ping stops after the header; no pixels are decoded
	Ping bool
	// PixelLimit caps columns*rows*frames, 0 is unlimited
	PixelLimit int64
	Logger     *slog.Logger
	// Monitor is called once per decoded row. Returning false aborts the
	// decode with dcmerr.ErrCanceled.
	Monitor func(current, total int64) bool
	// FrameDecoder decodes JPEG family frames, defaults to StdDecoder
	FrameDecoder FrameDecoder
	// TempFiles hosts the per frame scratch files handed to FrameDecoder
	TempFiles util.TempFiles
	// OnElement sees every element read before the pixel data
	OnElement func(Element)
}

// Element describes one element as read from the stream
type Element struct {
	Tag      tag.Tag `json:"tag"`
	Name     string  `json:"name,omitempty"`
	VR       vr.VR   `json:"vr"`
	Explicit bool    `json:"explicit"`
	Length   uint32  `json:"length"`
	Offset   int64   `json:"offset"`
	Depth    int     `json:"depth"`
	Value    string  `json:"value,omitempty"`
}

// ParseDefines applies image library style "dcm:" defines on top of o
func (o Options) ParseDefines(defines map[string]string) (Options, error) {
	for k, v := range defines {
		switch strings.ToLower(k) {
		case DefineAvoidScaling:
			b := true
			if v != "" {
				var err error
				if b, err = strconv.ParseBool(v); err != nil {
					return o, fmt.Errorf("define %s=%q: %w", k, v, err)
				}
			}
			o.AvoidScaling = b
		case DefinePixelLimit:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				return o, fmt.Errorf("define %s=%q: invalid pixel limit", k, v)
			}
			o.PixelLimit = n
		}
	}
	return o, nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

func (o Options) frameDecoder() FrameDecoder {
	if o.FrameDecoder == nil {
		return StdDecoder{}
	}
	return o.FrameDecoder
}

// FrameDecoder decodes one encapsulated frame
type FrameDecoder interface {
	DecodeFrame(r io.Reader, kind transfer.Kind) (image.Image, error)
}

// FrameDecoderFunc adapts a function to FrameDecoder
type FrameDecoderFunc func(r io.Reader, kind transfer.Kind) (image.Image, error)

// DecodeFrame implements FrameDecoder
func (f FrameDecoderFunc) DecodeFrame(r io.Reader, kind transfer.Kind) (image.Image, error) {
	return f(r, kind)
}

// StdDecoder decodes frames through the image package format registry.
// JPEG is registered by default; other codecs decode once a package
// registers them with image.RegisterFormat.
type StdDecoder struct{}

// DecodeFrame implements FrameDecoder
func (StdDecoder) DecodeFrame(r io.Reader, kind transfer.Kind) (image.Image, error) {
	img, _, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) && kind != transfer.JPEG {
		return nil, dcmerr.Unsupportedf("no decoder registered for %s frames", kind)
	}
	return img, err
}
