package transfer

import (
	"errors"
	"testing"

	"github.com/jpfielding/dcmpix/pkg/dcm/dcmerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		uid  string
		want Kind
	}{
		{string(ImplicitVRLittleEndian), ImplicitLittle},
		{string(ImplicitVRLittleEndian) + "\x00", ImplicitLittle},
		{string(ExplicitVRLittleEndian), ExplicitLittle},
		{string(ExplicitVRBigEndian), ExplicitBig},
		{string(JPEGBaseline), JPEG},
		{string(JPEGLosslessFirstOrder), JPEG},
		{string(JPEGLSLossless), JPEGLS},
		{string(JPEGLSNearLossless), JPEGLS},
		{string(JPEG2000Lossless), JPEG2K},
		{string(JPEG2000), JPEG2K},
		{"1.2.840.10008.1.2.4.93", JPEG2K},
		{string(RLELossless), RLE},
	}
	for _, tt := range tests {
		t.Run(tt.uid, func(t *testing.T) {
			got, err := Parse(tt.uid)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want error
	}{
		{"WrongRoot", "1.2.3.4", dcmerr.ErrCorruptImage},
		{"NoDot", "1.2.840.10008.1.23", dcmerr.ErrCorruptImage},
		{"Garbage", "1.2.840.10008.1.2.x", dcmerr.ErrCorruptImage},
		{"BadSubtype", "1.2.840.10008.1.2.4.q", dcmerr.ErrCorruptImage},
		{"Deflate", string(DeflatedExplicitVR), dcmerr.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.uid)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, JPEGLS.IsJPEGFamily())
	assert.False(t, RLE.IsJPEGFamily())
	assert.True(t, RLE.IsEncapsulated())
	assert.False(t, ExplicitLittle.IsEncapsulated())
	assert.True(t, ExplicitBig.IsBigEndian())
	assert.Equal(t, "jpeg-2000", JPEG2K.String())
	assert.Equal(t, "RLE Lossless", RLELossless.Name())
}
