package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
)

var _ image.RGBA64Image = (*Image)(nil)

func TestAllocateColormap(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
		last    uint16
	}{
		{"single", 1, false, 0},
		{"two", 2, false, MaxValue},
		{"byte", 256, false, MaxValue},
		{"full", MaxColormap, false, MaxValue},
		{"zero", 0, true, 0},
		{"too big", MaxColormap + 1, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(2, 2)
			err := m.AllocateColormap(tt.n)
			if tt.wantErr {
				assert.ErrorIs(t, err, dcmerr.ErrResourceLimit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PseudoClass, m.Class)
			require.Len(t, m.Colormap, tt.n)
			assert.Equal(t, tt.last, m.Colormap[tt.n-1].R)
			assert.Len(t, m.Index, 4)
		})
	}
}

func TestVerifyIndex(t *testing.T) {
	m := New(1, 1)
	require.NoError(t, m.AllocateColormap(4))
	assert.Equal(t, uint16(0), m.VerifyIndex(-3))
	assert.Equal(t, uint16(2), m.VerifyIndex(2))
	assert.Equal(t, uint16(3), m.VerifyIndex(9))
}

func TestPseudoAt(t *testing.T) {
	m := New(2, 1)
	require.NoError(t, m.AllocateColormap(3))
	copy(m.IndexRow(0), []uint16{1, 2})
	assert.Equal(t, color.RGBA64{R: 32767, G: 32767, B: 32767, A: MaxValue}, m.RGBA64At(0, 0))
	assert.Equal(t, color.RGBA64{R: MaxValue, G: MaxValue, B: MaxValue, A: MaxValue}, m.At(1, 0))
	assert.Equal(t, color.RGBA64{}, m.RGBA64At(5, 5))
	assert.True(t, m.IsGray())
}

func TestDirectRows(t *testing.T) {
	m := New(2, 2)
	row := m.PixelRow(1)
	require.Len(t, row, 8)
	copy(row, []uint16{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, color.RGBA64{R: 5, G: 6, B: 7, A: 8}, m.RGBA64At(1, 1))
	assert.Equal(t, color.RGBA64{A: MaxValue}, m.RGBA64At(0, 0))
	assert.False(t, m.IsGray())
	assert.Equal(t, DirectClass, m.Class)
}

func TestPseudoToDirect(t *testing.T) {
	m := New(2, 1)
	require.NoError(t, m.AllocateColormap(2))
	m.IndexRow(0)[1] = 1
	row := m.PixelRow(0)
	assert.Equal(t, []uint16{0, 0, 0, MaxValue, MaxValue, MaxValue, MaxValue, MaxValue}, row)
	assert.Equal(t, DirectClass, m.Class)
	assert.Nil(t, m.Index)
}

func TestCloneIsDeep(t *testing.T) {
	m := New(1, 1)
	require.NoError(t, m.AllocateColormap(2))
	m.SetAttribute("dcm:PatientName", "DOE^J")
	c := m.Clone()
	c.Colormap[0].R = 9
	c.SetAttribute("dcm:PatientName", "X")
	assert.Equal(t, uint16(0), m.Colormap[0].R)
	v, ok := m.Attribute("dcm:PatientName")
	assert.True(t, ok)
	assert.Equal(t, "DOE^J", v)
}

func TestGray16(t *testing.T) {
	m := New(2, 1)
	require.NoError(t, m.AllocateColormap(2))
	m.IndexRow(0)[0] = 1
	g := m.Gray16()
	assert.Equal(t, uint16(MaxValue), g.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(0), g.Gray16At(1, 0).Y)
}

func TestSetDepth(t *testing.T) {
	m := New(1, 1)
	m.SetDepth(12)
	assert.Equal(t, 12, m.Depth)
	m.SetDepth(32)
	assert.Equal(t, Depth, m.Depth)
}
