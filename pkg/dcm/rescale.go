package dcm

import (
	"math"

	"github.com/jpfielding/dcmpix/pkg/raster"
)

// resolveRescaling decides the rescaling mode and the output range once the
// header is read
func (d *decoder) resolveRescaling() {
	in := &d.info
	in.MaxValueOut = in.MaxValueIn
	in.Rescaling = RescaleNone
	avoid := d.opts.AvoidScaling

	switch {
	case in.Photometric == PaletteColor:
		if in.MaxValueIn >= raster.MaxColormap {
			in.MaxValueOut = raster.MaxColormap - 1
			in.Rescaling = RescalePre
		}
	case in.Photometric.IsGrayscale():
		switch {
		case in.TransferSyntax.IsJPEGFamily() && !avoid:
			in.MaxValueOut = raster.MaxValue
			in.Rescaling = RescalePost
		case in.MaxValueIn > raster.MaxValue:
			in.MaxValueOut = raster.MaxValue
			in.Rescaling = RescalePre
		case !avoid:
			in.MaxValueOut = raster.MaxValue
			in.Rescaling = RescalePost
		}
	default:
		if in.MaxValueIn != raster.MaxValue && !avoid {
			in.MaxValueOut = raster.MaxValue
			in.Rescaling = RescalePre
		}
	}
	d.log.Debug("rescaling resolved",
		"mode", in.Rescaling, "maxIn", in.MaxValueIn, "maxOut", in.MaxValueOut)
}

// resetLimits starts a fresh observed sample range
func (d *decoder) resetLimits() {
	d.lowerLim = math.MaxInt
	d.upperLim = math.MinInt
}

// observe widens the observed range with a masked sample
func (d *decoder) observe(v int) {
	v = d.signedValue(v)
	d.lowerLim = min(d.lowerLim, v)
	d.upperLim = max(d.upperLim, v)
}

// window returns the effective slope, intercept, center and width. Without
// a window the rescaled extremes of the observed range, or else of the
// theoretical sample range, span the window.
func (d *decoder) window() (slope, intercept, center, width float64) {
	in := d.info
	slope, intercept = in.RescaleSlope, in.RescaleIntercept
	center, width = in.WindowCenter, in.WindowWidth
	if in.RescaleType == Unspecified {
		slope, intercept, width = 1, 0, 0
	}
	if width != 0 {
		return slope, intercept, center, width
	}

	var lo, hi int
	switch {
	case d.upperLim >= d.lowerLim:
		lo, hi = d.lowerLim, d.upperLim
	case in.Signed:
		lo, hi = -(in.MaxValueIn+1)/2, (in.MaxValueIn+1)/2-1
	default:
		lo, hi = 0, in.MaxValueIn
	}
	xa := float64(lo)*slope + intercept
	xb := float64(hi)*slope + intercept
	if xa > xb {
		xa, xb = xb, xa
	}
	width = xb - xa + math.Abs(slope)
	center = xa + width/2
	return slope, intercept, center, width
}

// buildRescaleMap fills rescaleMap[0..MaxValueIn] with output samples
func (d *decoder) buildRescaleMap() {
	in := d.info
	slope, intercept, center, width := d.window()
	wmin := center - 0.5 - (width-1)/2
	wmax := center - 0.5 + (width-1)/2
	maxOut := float64(in.MaxValueOut)

	if len(d.rescaleMap) != in.MaxValueIn+1 {
		d.rescaleMap = make([]uint16, in.MaxValueIn+1)
	}
	for i := range d.rescaleMap {
		xr := float64(d.signedValue(i))*slope + intercept
		var out uint16
		switch {
		case xr <= wmin:
			out = 0
		case xr >= wmax:
			out = uint16(in.MaxValueOut)
		default:
			out = uint16((xr-wmin)/(width-1)*maxOut + 0.5)
		}
		if in.Photometric == Monochrome1 {
			out = uint16(in.MaxValueOut) - out
		}
		d.rescaleMap[i] = out
	}
	d.log.Debug("rescale map built",
		"center", center, "width", width, "slope", slope, "intercept", intercept,
		"lower", d.lowerLim, "upper", d.upperLim)
}
