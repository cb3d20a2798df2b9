// Package dict holds the tag dictionary consulted by the element reader:
// (group,element) -> value representation, semantic action and keyword.
package dict

// Action selects the handler run once an element's value has been read
type Action int

const (
	None Action = iota
	TransferSyntax
	StudyDate
	PatientName
	TriggerTime
	FieldOfView
	SeriesNumber
	ImagePosition
	ImageOrientation
	SliceLocation
	SamplesPerPixel
	PhotometricInterpretation
	PlanarConfiguration
	NumberOfFrames
	Rows
	Columns
	BitsAllocated
	BitsStored
	HighBit
	PixelRepresentation
	WindowCenter
	WindowWidth
	RescaleIntercept
	RescaleSlope
	RescaleType
	PaletteDescriptor
	LUT
	Palette
	SpecificCharacterSet
)

var actionNames = [...]string{
	None:                      "None",
	TransferSyntax:            "TransferSyntax",
	StudyDate:                 "StudyDate",
	PatientName:               "PatientName",
	TriggerTime:               "TriggerTime",
	FieldOfView:               "FieldOfView",
	SeriesNumber:              "SeriesNumber",
	ImagePosition:             "ImagePosition",
	ImageOrientation:          "ImageOrientation",
	SliceLocation:             "SliceLocation",
	SamplesPerPixel:           "SamplesPerPixel",
	PhotometricInterpretation: "PhotometricInterpretation",
	PlanarConfiguration:       "PlanarConfiguration",
	NumberOfFrames:            "NumberOfFrames",
	Rows:                      "Rows",
	Columns:                   "Columns",
	BitsAllocated:             "BitsAllocated",
	BitsStored:                "BitsStored",
	HighBit:                   "HighBit",
	PixelRepresentation:       "PixelRepresentation",
	WindowCenter:              "WindowCenter",
	WindowWidth:               "WindowWidth",
	RescaleIntercept:          "RescaleIntercept",
	RescaleSlope:              "RescaleSlope",
	RescaleType:               "RescaleType",
	PaletteDescriptor:         "PaletteDescriptor",
	LUT:                       "LUT",
	Palette:                   "Palette",
	SpecificCharacterSet:      "SpecificCharacterSet",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Action(?)"
	}
	return actionNames[a]
}
