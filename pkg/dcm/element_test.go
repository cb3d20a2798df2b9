package dcm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
)

func TestResolveVR(t *testing.T) {
	tests := []struct {
		name         string
		dictVR       vr.VR
		candidate    string
		group        uint16
		wantVR       vr.VR
		wantExplicit bool
	}{
		{"matches dictionary", vr.US, "US", 0x0028, vr.US, true},
		{"disagrees on public tag", vr.US, "SS", 0x0028, vr.US, false},
		{"private tag overrides", vr.UN, "LO", 0x0029, vr.LO, true},
		{"context sensitive overrides", vr.XS, "OW", 0x7FE0, vr.OW, true},
		{"length bytes", vr.US, "\x02\x00", 0x0028, vr.US, false},
		{"lower case", vr.XS, "ob", 0x7FE0, vr.XS, false},
		{"unknown tag length bytes", vr.XS, "AB", 0x0018, vr.XS, false},
		{"private length bytes", vr.UN, "QZ", 0x0029, vr.UN, false},
		{"delimiter", vr.Delimiter, "\xff\xff", 0xFFFE, vr.Delimiter, false},
		{"private delimiter", vr.Delimiter, "\x00\x00", 0xFFFE, vr.Delimiter, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, explicit := resolveVR(tt.dictVR, [2]byte{tt.candidate[0], tt.candidate[1]}, tt.group)
			assert.Equal(t, tt.wantVR, got)
			assert.Equal(t, tt.wantExplicit, explicit)
		})
	}
}

func TestElementText(t *testing.T) {
	e := &element{Data: []byte("1\\2.5\\-3 \x00\x00")}
	assert.Equal(t, "1\\2.5\\-3", e.String())
	assert.Equal(t, "-3", e.lastValue())
	f, ok := e.floatValue()
	assert.True(t, ok)
	assert.Equal(t, -3.0, f)

	empty := &element{}
	assert.Nil(t, empty.Bytes())
	assert.Equal(t, "", empty.String())
	_, ok = empty.floatValue()
	assert.False(t, ok)
}
