// Package raster is the in-memory image the DICOM decoder writes into: a
// 16-bit RGBA pixel buffer or a colormap with one index per pixel, plus
// free-form attributes.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
)

// MaxValue is the largest sample value the container stores
const MaxValue = 0xFFFF

// Depth is the sample depth in bits of the container
const Depth = 16

// MaxColormap is the largest colormap AllocateColormap accepts
const MaxColormap = MaxValue + 1

// Class says whether pixels are stored directly or as colormap indexes
type Class int

const (
	DirectClass Class = iota
	PseudoClass
)

func (c Class) String() string {
	if c == PseudoClass {
		return "pseudo"
	}
	return "direct"
}

// Image is a columns x rows raster
type Image struct {
	Columns int
	Rows    int
	// Depth is the significant sample depth reported for this image
	Depth int
	Class Class

	// Colormap and Index are set for PseudoClass images
	Colormap []color.RGBA64
	Index    []uint16

	// Pix holds R,G,B,A samples per pixel for DirectClass images
	Pix []uint16

	Attributes map[string]string
}

// New creates an empty direct class raster. Pixel storage is allocated on
// first row access.
func New(columns, rows int) *Image {
	return &Image{
		Columns:    columns,
		Rows:       rows,
		Depth:      Depth,
		Attributes: map[string]string{},
	}
}

// SetDepth records the sample depth, capped to the container depth
func (m *Image) SetDepth(bits int) {
	m.Depth = min(bits, Depth)
}

// SetAttribute stores a named metadata value
func (m *Image) SetAttribute(name, value string) {
	if m.Attributes == nil {
		m.Attributes = map[string]string{}
	}
	m.Attributes[name] = value
}

// Attribute returns a named metadata value
func (m *Image) Attribute(name string) (string, bool) {
	v, ok := m.Attributes[name]
	return v, ok
}

// AllocateColormap switches the image to PseudoClass with an n entry gray
// ramp colormap and zeroed indexes
func (m *Image) AllocateColormap(n int) error {
	if n <= 0 || n > MaxColormap {
		return dcmerr.Limitf("colormap of %d entries", n)
	}
	m.Colormap = make([]color.RGBA64, n)
	for i := range m.Colormap {
		v := uint16(0)
		if n > 1 {
			v = uint16(uint64(i) * MaxValue / uint64(n-1))
		}
		m.Colormap[i] = color.RGBA64{R: v, G: v, B: v, A: MaxValue}
	}
	m.Class = PseudoClass
	if len(m.Index) != m.Columns*m.Rows {
		m.Index = make([]uint16, m.Columns*m.Rows)
	}
	m.Pix = nil
	return nil
}

// VerifyIndex clamps an index into the colormap range
func (m *Image) VerifyIndex(i int) uint16 {
	switch {
	case i < 0:
		return 0
	case i >= len(m.Colormap):
		return uint16(max(len(m.Colormap)-1, 0))
	}
	return uint16(i)
}

// IndexRow returns the writable colormap indexes of row y
func (m *Image) IndexRow(y int) []uint16 {
	if m.Index == nil {
		m.Index = make([]uint16, m.Columns*m.Rows)
	}
	return m.Index[y*m.Columns : (y+1)*m.Columns]
}

// PixelRow returns the writable R,G,B,A samples of row y. Switching a
// PseudoClass image to direct storage expands its indexes through the
// colormap first.
func (m *Image) PixelRow(y int) []uint16 {
	if m.Pix == nil {
		m.toDirect()
	}
	return m.Pix[y*m.Columns*4 : (y+1)*m.Columns*4]
}

func (m *Image) toDirect() {
	m.Pix = make([]uint16, m.Columns*m.Rows*4)
	for i := 0; i < m.Columns*m.Rows; i++ {
		c := color.RGBA64{A: MaxValue}
		if m.Class == PseudoClass && len(m.Colormap) > 0 {
			c = m.Colormap[m.VerifyIndex(int(m.Index[i]))]
		}
		m.Pix[i*4], m.Pix[i*4+1], m.Pix[i*4+2], m.Pix[i*4+3] = c.R, c.G, c.B, c.A
	}
	m.Class = DirectClass
	m.Index = nil
}

// Clone deep copies the raster, colormap included
func (m *Image) Clone() *Image {
	c := *m
	c.Colormap = slices.Clone(m.Colormap)
	c.Index = slices.Clone(m.Index)
	c.Pix = slices.Clone(m.Pix)
	c.Attributes = maps.Clone(m.Attributes)
	return &c
}

// IsGray reports whether every colormap entry, or every direct pixel, has
// equal R, G and B samples
func (m *Image) IsGray() bool {
	if m.Class == PseudoClass {
		for _, c := range m.Colormap {
			if c.R != c.G || c.G != c.B {
				return false
			}
		}
		return true
	}
	for i := 0; i+3 < len(m.Pix); i += 4 {
		if m.Pix[i] != m.Pix[i+1] || m.Pix[i+1] != m.Pix[i+2] {
			return false
		}
	}
	return true
}

// Gray16 converts the raster to a 16-bit grayscale image using the red
// sample of each pixel
func (m *Image) Gray16() *image.Gray16 {
	g := image.NewGray16(image.Rect(0, 0, m.Columns, m.Rows))
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Columns; x++ {
			g.SetGray16(x, y, color.Gray16{Y: m.RGBA64At(x, y).R})
		}
	}
	return g
}

// ColorModel implements image.Image
func (m *Image) ColorModel() color.Model { return color.RGBA64Model }

// Bounds implements image.Image
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Columns, m.Rows) }

// At implements image.Image
func (m *Image) At(x, y int) color.Color { return m.RGBA64At(x, y) }

// RGBA64At implements image.RGBA64Image
func (m *Image) RGBA64At(x, y int) color.RGBA64 {
	if x < 0 || y < 0 || x >= m.Columns || y >= m.Rows {
		return color.RGBA64{}
	}
	i := y*m.Columns + x
	if m.Class == PseudoClass {
		if len(m.Colormap) == 0 || i >= len(m.Index) {
			return color.RGBA64{}
		}
		return m.Colormap[m.VerifyIndex(int(m.Index[i]))]
	}
	if len(m.Pix) < (i+1)*4 {
		return color.RGBA64{}
	}
	p := m.Pix[i*4 : i*4+4]
	return color.RGBA64{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (m *Image) String() string {
	return fmt.Sprintf("%dx%d %s depth=%d", m.Columns, m.Rows, m.Class, m.Depth)
}
