// Package vr defines DICOM Value Representations
package vr

// VR represents a DICOM Value Representation
type VR string

// Standard DICOM Value Representations
const (
	AE VR = "AE" // Application Entity
	AS VR = "AS" // Age String
	AT VR = "AT" // Attribute Tag
	CS VR = "CS" // Code String
	DA VR = "DA" // Date
	DS VR = "DS" // Decimal String
	DT VR = "DT" // DateTime
	FL VR = "FL" // Floating Point Single
	FD VR = "FD" // Floating Point Double
	IS VR = "IS" // Integer String
	LO VR = "LO" // Long String
	LT VR = "LT" // Long Text
	OB VR = "OB" // Other Byte String
	OF VR = "OF" // Other Float String
	OW VR = "OW" // Other Word String
	PN VR = "PN" // Person Name
	SH VR = "SH" // Short String
	SL VR = "SL" // Signed Long
	SQ VR = "SQ" // Sequence of Items
	SS VR = "SS" // Signed Short
	ST VR = "ST" // Short Text
	TM VR = "TM" // Time
	UI VR = "UI" // Unique Identifier
	UL VR = "UL" // Unsigned Long
	UN VR = "UN" // Unknown
	US VR = "US" // Unsigned Short
	UT VR = "UT" // Unlimited Text

	OD VR = "OD" // Other Double
	OL VR = "OL" // Other Long
	OV VR = "OV" // Other 64-bit Very Long
	SV VR = "SV" // Signed 64-bit Very Long
	UC VR = "UC" // Unlimited Characters
	UR VR = "UR" // Universal Resource Identifier
	UV VR = "UV" // Unsigned 64-bit Very Long
)

// Dictionary pseudo representations
const (
	// XS is context sensitive: US or SS (or OB/OW) depending on pixel representation
	XS VR = "xs"
	// Delimiter marks items and delimitation items, which are never explicit
	Delimiter VR = "!!"
)

// IsLongLength returns true if an explicit element with this VR carries a
// 2-byte reserved field followed by a 4-byte length
func (v VR) IsLongLength() bool {
	switch v {
	case OB, OD, OF, OL, OV, OW, SQ, SV, UC, UN, UR, UT, UV:
		return true
	default:
		return false
	}
}

// Quantum returns the byte width of one value of this VR
func (v VR) Quantum() int {
	switch v {
	case SS, US, OW:
		return 2
	case UL, SL, FL, OF, OL:
		return 4
	case FD, OD, OV, SV, UV:
		return 8
	default:
		return 1
	}
}

// IsString returns true if this VR contains string data
func (v VR) IsString() bool {
	switch v {
	case AE, AS, CS, DA, DS, DT, IS, LO, LT, PN, SH, ST, TM, UC, UI, UR, UT:
		return true
	default:
		return false
	}
}

// IsSequence returns true if this is a sequence VR
func (v VR) IsSequence() bool {
	return v == SQ
}

// IsCode returns true if b holds two upper case ASCII letters, the only
// shape an explicit VR can take on the wire
func IsCode(b [2]byte) bool {
	return b[0] >= 'A' && b[0] <= 'Z' && b[1] >= 'A' && b[1] <= 'Z'
}

// IsStandard returns true for the representations PS3.5 defines
func (v VR) IsStandard() bool {
	switch v {
	case AE, AS, AT, CS, DA, DS, DT, FL, FD, IS, LO, LT, OB, OD, OF, OL, OV, OW,
		PN, SH, SL, SQ, SS, ST, SV, TM, UC, UI, UL, UN, UR, US, UT, UV:
		return true
	default:
		return false
	}
}
