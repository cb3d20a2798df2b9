// Package tag defines DICOM (group,element) tags and the ones the decoder acts on
package tag

// Tag represents a DICOM tag with Group and Element
type Tag struct {
	Group   uint16
	Element uint16
}

// New creates a new Tag
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// FromUint32 splits a packed 0xGGGGEEEE value, the form item tags are compared in
func FromUint32(v uint32) Tag {
	return Tag{Group: uint16(v >> 16), Element: uint16(v)}
}

// Uint32 packs the tag as 0xGGGGEEEE
func (t Tag) Uint32() uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}

// Compare returns -1, 0 or 1 ordering by group then element
func (t Tag) Compare(other Tag) int {
	switch {
	case t.Group < other.Group:
		return -1
	case t.Group > other.Group:
		return 1
	case t.Element < other.Element:
		return -1
	case t.Element > other.Element:
		return 1
	}
	return 0
}

// Less reports whether t sorts before other
func (t Tag) Less(other Tag) bool {
	return t.Compare(other) < 0
}

// IsPrivate returns true if this is a private tag (odd group number)
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsMetaGroup returns true if this tag is in the File Meta Information group
func (t Tag) IsMetaGroup() bool {
	return t.Group == 0x0002
}

// File Meta Information (Group 0002)
var (
	FileMetaInformationGroupLength = Tag{0x0002, 0x0000}
	MediaStorageSOPClassUID        = Tag{0x0002, 0x0002}
	TransferSyntaxUID              = Tag{0x0002, 0x0010}
	ImplementationClassUID         = Tag{0x0002, 0x0012}
)

// Identification and acquisition attributes copied into image metadata
var (
	SpecificCharacterSet    = Tag{0x0008, 0x0005}
	StudyDate               = Tag{0x0008, 0x0020}
	PatientName             = Tag{0x0010, 0x0010}
	TriggerTime             = Tag{0x0018, 0x1060}
	FieldOfViewDimensions   = Tag{0x0018, 0x1149}
	SeriesNumber            = Tag{0x0020, 0x0011}
	ImagePositionPatient    = Tag{0x0020, 0x0032}
	ImageOrientationPatient = Tag{0x0020, 0x0037}
	SliceLocation           = Tag{0x0020, 0x1041}
)

// Image Pixel Module (Group 0028)
var (
	SamplesPerPixel           = Tag{0x0028, 0x0002}
	PhotometricInterpretation = Tag{0x0028, 0x0004}
	PlanarConfiguration       = Tag{0x0028, 0x0006}
	NumberOfFrames            = Tag{0x0028, 0x0008}
	Rows                      = Tag{0x0028, 0x0010}
	Columns                   = Tag{0x0028, 0x0011}
	BitsAllocated             = Tag{0x0028, 0x0100}
	BitsStored                = Tag{0x0028, 0x0101}
	HighBit                   = Tag{0x0028, 0x0102}
	PixelRepresentation       = Tag{0x0028, 0x0103}
	WindowCenter              = Tag{0x0028, 0x1050}
	WindowWidth               = Tag{0x0028, 0x1051}
	RescaleIntercept          = Tag{0x0028, 0x1052}
	RescaleSlope              = Tag{0x0028, 0x1053}
	RescaleType               = Tag{0x0028, 0x1054}
	RedPaletteDescriptor      = Tag{0x0028, 0x1101}
	GreenPaletteDescriptor    = Tag{0x0028, 0x1102}
	BluePaletteDescriptor     = Tag{0x0028, 0x1103}
	RedPaletteData            = Tag{0x0028, 0x1201}
	GreenPaletteData          = Tag{0x0028, 0x1202}
	BluePaletteData           = Tag{0x0028, 0x1203}
	LUTData                   = Tag{0x0028, 0x3006}
	PixelData                 = Tag{0x7FE0, 0x0010}
)

// Sequence delimiters
var (
	Item                     = Tag{0xFFFE, 0xE000}
	ItemDelimitationItem     = Tag{0xFFFE, 0xE00D}
	SequenceDelimitationItem = Tag{0xFFFE, 0xE0DD}
)

// Sentinel terminates the dictionary scan
var Sentinel = Tag{0xFFFF, 0xFFFF}
