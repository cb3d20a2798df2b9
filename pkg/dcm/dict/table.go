package dict

import (
	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
)

type t = tag.Tag

// table is sorted ascending by (group,element) and ends with the sentinel.
var table = []Entry{
	// File Meta Information
	{t{0x0002, 0x0000}, vr.UL, None, "FileMetaInformationGroupLength"},
	{t{0x0002, 0x0001}, vr.OB, None, "FileMetaInformationVersion"},
	{t{0x0002, 0x0002}, vr.UI, None, "MediaStorageSOPClassUID"},
	{t{0x0002, 0x0003}, vr.UI, None, "MediaStorageSOPInstanceUID"},
	{t{0x0002, 0x0010}, vr.UI, TransferSyntax, "TransferSyntaxUID"},
	{t{0x0002, 0x0012}, vr.UI, None, "ImplementationClassUID"},
	{t{0x0002, 0x0013}, vr.SH, None, "ImplementationVersionName"},
	{t{0x0002, 0x0016}, vr.AE, None, "SourceApplicationEntityTitle"},
	{t{0x0002, 0x0017}, vr.AE, None, "SendingApplicationEntityTitle"},
	{t{0x0002, 0x0018}, vr.AE, None, "ReceivingApplicationEntityTitle"},
	{t{0x0002, 0x0100}, vr.UI, None, "PrivateInformationCreatorUID"},
	{t{0x0002, 0x0102}, vr.OB, None, "PrivateInformation"},

	// Directory structuring (read past, not interpreted)
	{t{0x0004, 0x0000}, vr.UL, None, "FileSetGroupLength"},
	{t{0x0004, 0x1130}, vr.CS, None, "FileSetID"},
	{t{0x0004, 0x1141}, vr.CS, None, "FileSetDescriptorFileID"},
	{t{0x0004, 0x1142}, vr.CS, None, "SpecificCharacterSetOfFileSetDescriptorFile"},
	{t{0x0004, 0x1200}, vr.UL, None, "OffsetOfTheFirstDirectoryRecordOfTheRootDirectoryEntity"},
	{t{0x0004, 0x1202}, vr.UL, None, "OffsetOfTheLastDirectoryRecordOfTheRootDirectoryEntity"},
	{t{0x0004, 0x1212}, vr.US, None, "FileSetConsistencyFlag"},
	{t{0x0004, 0x1220}, vr.SQ, None, "DirectoryRecordSequence"},
	{t{0x0004, 0x1400}, vr.UL, None, "OffsetOfTheNextDirectoryRecord"},
	{t{0x0004, 0x1410}, vr.US, None, "RecordInUseFlag"},
	{t{0x0004, 0x1420}, vr.UL, None, "OffsetOfReferencedLowerLevelDirectoryEntity"},
	{t{0x0004, 0x1430}, vr.CS, None, "DirectoryRecordType"},
	{t{0x0004, 0x1500}, vr.CS, None, "ReferencedFileID"},
	{t{0x0004, 0x1510}, vr.UI, None, "ReferencedSOPClassUIDInFile"},
	{t{0x0004, 0x1511}, vr.UI, None, "ReferencedSOPInstanceUIDInFile"},
	{t{0x0004, 0x1512}, vr.UI, None, "ReferencedTransferSyntaxUIDInFile"},

	// Identifying information
	{t{0x0008, 0x0000}, vr.UL, None, "IdentifyingGroupLength"},
	{t{0x0008, 0x0001}, vr.UL, None, "LengthToEnd"},
	{t{0x0008, 0x0005}, vr.CS, SpecificCharacterSet, "SpecificCharacterSet"},
	{t{0x0008, 0x0008}, vr.CS, None, "ImageType"},
	{t{0x0008, 0x0010}, vr.SH, None, "RecognitionCode"},
	{t{0x0008, 0x0012}, vr.DA, None, "InstanceCreationDate"},
	{t{0x0008, 0x0013}, vr.TM, None, "InstanceCreationTime"},
	{t{0x0008, 0x0014}, vr.UI, None, "InstanceCreatorUID"},
	{t{0x0008, 0x0016}, vr.UI, None, "SOPClassUID"},
	{t{0x0008, 0x0018}, vr.UI, None, "SOPInstanceUID"},
	{t{0x0008, 0x0020}, vr.DA, StudyDate, "StudyDate"},
	{t{0x0008, 0x0021}, vr.DA, None, "SeriesDate"},
	{t{0x0008, 0x0022}, vr.DA, None, "AcquisitionDate"},
	{t{0x0008, 0x0023}, vr.DA, None, "ContentDate"},
	{t{0x0008, 0x0024}, vr.DA, None, "OverlayDate"},
	{t{0x0008, 0x0025}, vr.DA, None, "CurveDate"},
	{t{0x0008, 0x002A}, vr.DT, None, "AcquisitionDateTime"},
	{t{0x0008, 0x0030}, vr.TM, None, "StudyTime"},
	{t{0x0008, 0x0031}, vr.TM, None, "SeriesTime"},
	{t{0x0008, 0x0032}, vr.TM, None, "AcquisitionTime"},
	{t{0x0008, 0x0033}, vr.TM, None, "ContentTime"},
	{t{0x0008, 0x0034}, vr.TM, None, "OverlayTime"},
	{t{0x0008, 0x0035}, vr.TM, None, "CurveTime"},
	{t{0x0008, 0x0040}, vr.US, None, "DataSetType"},
	{t{0x0008, 0x0041}, vr.LO, None, "DataSetSubtype"},
	{t{0x0008, 0x0042}, vr.CS, None, "NuclearMedicineSeriesType"},
	{t{0x0008, 0x0050}, vr.SH, None, "AccessionNumber"},
	{t{0x0008, 0x0052}, vr.CS, None, "QueryRetrieveLevel"},
	{t{0x0008, 0x0054}, vr.AE, None, "RetrieveAETitle"},
	{t{0x0008, 0x0056}, vr.CS, None, "InstanceAvailability"},
	{t{0x0008, 0x0058}, vr.UI, None, "FailedSOPInstanceUIDList"},
	{t{0x0008, 0x0060}, vr.CS, None, "Modality"},
	{t{0x0008, 0x0061}, vr.CS, None, "ModalitiesInStudy"},
	{t{0x0008, 0x0064}, vr.CS, None, "ConversionType"},
	{t{0x0008, 0x0068}, vr.CS, None, "PresentationIntentType"},
	{t{0x0008, 0x0070}, vr.LO, None, "Manufacturer"},
	{t{0x0008, 0x0080}, vr.LO, None, "InstitutionName"},
	{t{0x0008, 0x0081}, vr.ST, None, "InstitutionAddress"},
	{t{0x0008, 0x0082}, vr.SQ, None, "InstitutionCodeSequence"},
	{t{0x0008, 0x0090}, vr.PN, None, "ReferringPhysicianName"},
	{t{0x0008, 0x0092}, vr.ST, None, "ReferringPhysicianAddress"},
	{t{0x0008, 0x0094}, vr.SH, None, "ReferringPhysicianTelephoneNumbers"},
	{t{0x0008, 0x0096}, vr.SQ, None, "ReferringPhysicianIdentificationSequence"},
	{t{0x0008, 0x0100}, vr.SH, None, "CodeValue"},
	{t{0x0008, 0x0102}, vr.SH, None, "CodingSchemeDesignator"},
	{t{0x0008, 0x0103}, vr.SH, None, "CodingSchemeVersion"},
	{t{0x0008, 0x0104}, vr.LO, None, "CodeMeaning"},
	{t{0x0008, 0x0201}, vr.SH, None, "TimezoneOffsetFromUTC"},
	{t{0x0008, 0x1010}, vr.SH, None, "StationName"},
	{t{0x0008, 0x1030}, vr.LO, None, "StudyDescription"},
	{t{0x0008, 0x1032}, vr.SQ, None, "ProcedureCodeSequence"},
	{t{0x0008, 0x103E}, vr.LO, None, "SeriesDescription"},
	{t{0x0008, 0x1040}, vr.LO, None, "InstitutionalDepartmentName"},
	{t{0x0008, 0x1048}, vr.PN, None, "PhysiciansOfRecord"},
	{t{0x0008, 0x1050}, vr.PN, None, "PerformingPhysicianName"},
	{t{0x0008, 0x1060}, vr.PN, None, "NameOfPhysiciansReadingStudy"},
	{t{0x0008, 0x1070}, vr.PN, None, "OperatorsName"},
	{t{0x0008, 0x1080}, vr.LO, None, "AdmittingDiagnosesDescription"},
	{t{0x0008, 0x1090}, vr.LO, None, "ManufacturerModelName"},
	{t{0x0008, 0x1110}, vr.SQ, None, "ReferencedStudySequence"},
	{t{0x0008, 0x1111}, vr.SQ, None, "ReferencedPerformedProcedureStepSequence"},
	{t{0x0008, 0x1115}, vr.SQ, None, "ReferencedSeriesSequence"},
	{t{0x0008, 0x1120}, vr.SQ, None, "ReferencedPatientSequence"},
	{t{0x0008, 0x1125}, vr.SQ, None, "ReferencedVisitSequence"},
	{t{0x0008, 0x1140}, vr.SQ, None, "ReferencedImageSequence"},
	{t{0x0008, 0x1150}, vr.UI, None, "ReferencedSOPClassUID"},
	{t{0x0008, 0x1155}, vr.UI, None, "ReferencedSOPInstanceUID"},
	{t{0x0008, 0x1160}, vr.IS, None, "ReferencedFrameNumber"},
	{t{0x0008, 0x2111}, vr.ST, None, "DerivationDescription"},
	{t{0x0008, 0x2112}, vr.SQ, None, "SourceImageSequence"},
	{t{0x0008, 0x2120}, vr.SH, None, "StageName"},
	{t{0x0008, 0x2122}, vr.IS, None, "StageNumber"},
	{t{0x0008, 0x2124}, vr.IS, None, "NumberOfStages"},
	{t{0x0008, 0x2128}, vr.IS, None, "ViewNumber"},
	{t{0x0008, 0x2129}, vr.IS, None, "NumberOfEventTimers"},
	{t{0x0008, 0x212A}, vr.IS, None, "NumberOfViewsInStage"},
	{t{0x0008, 0x2130}, vr.DS, None, "EventElapsedTimes"},
	{t{0x0008, 0x2132}, vr.LO, None, "EventTimerNames"},
	{t{0x0008, 0x2142}, vr.IS, None, "StartTrim"},
	{t{0x0008, 0x2143}, vr.IS, None, "StopTrim"},
	{t{0x0008, 0x2144}, vr.IS, None, "RecommendedDisplayFrameRate"},
	{t{0x0008, 0x2218}, vr.SQ, None, "AnatomicRegionSequence"},
	{t{0x0008, 0x9007}, vr.CS, None, "FrameType"},
	{t{0x0008, 0x9205}, vr.CS, None, "PixelPresentation"},
	{t{0x0008, 0x9206}, vr.CS, None, "VolumetricProperties"},
	{t{0x0008, 0x9207}, vr.CS, None, "VolumeBasedCalculationTechnique"},

	// Patient
	{t{0x0010, 0x0000}, vr.UL, None, "PatientGroupLength"},
	{t{0x0010, 0x0010}, vr.PN, PatientName, "PatientName"},
	{t{0x0010, 0x0020}, vr.LO, None, "PatientID"},
	{t{0x0010, 0x0021}, vr.LO, None, "IssuerOfPatientID"},
	{t{0x0010, 0x0030}, vr.DA, None, "PatientBirthDate"},
	{t{0x0010, 0x0032}, vr.TM, None, "PatientBirthTime"},
	{t{0x0010, 0x0040}, vr.CS, None, "PatientSex"},
	{t{0x0010, 0x0050}, vr.SQ, None, "PatientInsurancePlanCodeSequence"},
	{t{0x0010, 0x1000}, vr.LO, None, "OtherPatientIDs"},
	{t{0x0010, 0x1001}, vr.PN, None, "OtherPatientNames"},
	{t{0x0010, 0x1005}, vr.PN, None, "PatientBirthName"},
	{t{0x0010, 0x1010}, vr.AS, None, "PatientAge"},
	{t{0x0010, 0x1020}, vr.DS, None, "PatientSize"},
	{t{0x0010, 0x1030}, vr.DS, None, "PatientWeight"},
	{t{0x0010, 0x1040}, vr.LO, None, "PatientAddress"},
	{t{0x0010, 0x1060}, vr.PN, None, "PatientMotherBirthName"},
	{t{0x0010, 0x1080}, vr.LO, None, "MilitaryRank"},
	{t{0x0010, 0x1081}, vr.LO, None, "BranchOfService"},
	{t{0x0010, 0x1090}, vr.LO, None, "MedicalRecordLocator"},
	{t{0x0010, 0x2000}, vr.LO, None, "MedicalAlerts"},
	{t{0x0010, 0x2110}, vr.LO, None, "Allergies"},
	{t{0x0010, 0x2150}, vr.LO, None, "CountryOfResidence"},
	{t{0x0010, 0x2152}, vr.LO, None, "RegionOfResidence"},
	{t{0x0010, 0x2154}, vr.SH, None, "PatientTelephoneNumbers"},
	{t{0x0010, 0x2160}, vr.SH, None, "EthnicGroup"},
	{t{0x0010, 0x2180}, vr.SH, None, "Occupation"},
	{t{0x0010, 0x21A0}, vr.CS, None, "SmokingStatus"},
	{t{0x0010, 0x21B0}, vr.LT, None, "AdditionalPatientHistory"},
	{t{0x0010, 0x21C0}, vr.US, None, "PregnancyStatus"},
	{t{0x0010, 0x21D0}, vr.DA, None, "LastMenstrualDate"},
	{t{0x0010, 0x21F0}, vr.LO, None, "PatientReligiousPreference"},
	{t{0x0010, 0x4000}, vr.LT, None, "PatientComments"},

	// Acquisition
	{t{0x0018, 0x0000}, vr.UL, None, "AcquisitionGroupLength"},
	{t{0x0018, 0x0010}, vr.LO, None, "ContrastBolusAgent"},
	{t{0x0018, 0x0015}, vr.CS, None, "BodyPartExamined"},
	{t{0x0018, 0x0020}, vr.CS, None, "ScanningSequence"},
	{t{0x0018, 0x0021}, vr.CS, None, "SequenceVariant"},
	{t{0x0018, 0x0022}, vr.CS, None, "ScanOptions"},
	{t{0x0018, 0x0023}, vr.CS, None, "MRAcquisitionType"},
	{t{0x0018, 0x0024}, vr.SH, None, "SequenceName"},
	{t{0x0018, 0x0025}, vr.CS, None, "AngioFlag"},
	{t{0x0018, 0x0030}, vr.LO, None, "Radionuclide"},
	{t{0x0018, 0x0040}, vr.IS, None, "CineRate"},
	{t{0x0018, 0x0050}, vr.DS, None, "SliceThickness"},
	{t{0x0018, 0x0060}, vr.DS, None, "KVP"},
	{t{0x0018, 0x0070}, vr.IS, None, "CountsAccumulated"},
	{t{0x0018, 0x0071}, vr.CS, None, "AcquisitionTerminationCondition"},
	{t{0x0018, 0x0072}, vr.DS, None, "EffectiveDuration"},
	{t{0x0018, 0x0073}, vr.CS, None, "AcquisitionStartCondition"},
	{t{0x0018, 0x0074}, vr.IS, None, "AcquisitionStartConditionData"},
	{t{0x0018, 0x0075}, vr.IS, None, "AcquisitionTerminationConditionData"},
	{t{0x0018, 0x0080}, vr.DS, None, "RepetitionTime"},
	{t{0x0018, 0x0081}, vr.DS, None, "EchoTime"},
	{t{0x0018, 0x0082}, vr.DS, None, "InversionTime"},
	{t{0x0018, 0x0083}, vr.DS, None, "NumberOfAverages"},
	{t{0x0018, 0x0084}, vr.DS, None, "ImagingFrequency"},
	{t{0x0018, 0x0085}, vr.SH, None, "ImagedNucleus"},
	{t{0x0018, 0x0086}, vr.IS, None, "EchoNumbers"},
	{t{0x0018, 0x0087}, vr.DS, None, "MagneticFieldStrength"},
	{t{0x0018, 0x0088}, vr.DS, None, "SpacingBetweenSlices"},
	{t{0x0018, 0x0089}, vr.IS, None, "NumberOfPhaseEncodingSteps"},
	{t{0x0018, 0x0090}, vr.DS, None, "DataCollectionDiameter"},
	{t{0x0018, 0x0091}, vr.IS, None, "EchoTrainLength"},
	{t{0x0018, 0x0093}, vr.DS, None, "PercentSampling"},
	{t{0x0018, 0x0094}, vr.DS, None, "PercentPhaseFieldOfView"},
	{t{0x0018, 0x0095}, vr.DS, None, "PixelBandwidth"},
	{t{0x0018, 0x1000}, vr.LO, None, "DeviceSerialNumber"},
	{t{0x0018, 0x1004}, vr.LO, None, "PlateID"},
	{t{0x0018, 0x1010}, vr.LO, None, "SecondaryCaptureDeviceID"},
	{t{0x0018, 0x1012}, vr.DA, None, "DateOfSecondaryCapture"},
	{t{0x0018, 0x1014}, vr.TM, None, "TimeOfSecondaryCapture"},
	{t{0x0018, 0x1016}, vr.LO, None, "SecondaryCaptureDeviceManufacturer"},
	{t{0x0018, 0x1018}, vr.LO, None, "SecondaryCaptureDeviceManufacturerModelName"},
	{t{0x0018, 0x1019}, vr.LO, None, "SecondaryCaptureDeviceSoftwareVersions"},
	{t{0x0018, 0x1020}, vr.LO, None, "SoftwareVersions"},
	{t{0x0018, 0x1022}, vr.SH, None, "VideoImageFormatAcquired"},
	{t{0x0018, 0x1023}, vr.LO, None, "DigitalImageFormatAcquired"},
	{t{0x0018, 0x1030}, vr.LO, None, "ProtocolName"},
	{t{0x0018, 0x1040}, vr.LO, None, "ContrastBolusRoute"},
	{t{0x0018, 0x1041}, vr.DS, None, "ContrastBolusVolume"},
	{t{0x0018, 0x1044}, vr.DS, None, "ContrastBolusTotalDose"},
	{t{0x0018, 0x1046}, vr.DS, None, "ContrastFlowRate"},
	{t{0x0018, 0x1047}, vr.DS, None, "ContrastFlowDuration"},
	{t{0x0018, 0x1050}, vr.DS, None, "SpatialResolution"},
	{t{0x0018, 0x1060}, vr.DS, TriggerTime, "TriggerTime"},
	{t{0x0018, 0x1061}, vr.LO, None, "TriggerSourceOrType"},
	{t{0x0018, 0x1062}, vr.IS, None, "NominalInterval"},
	{t{0x0018, 0x1063}, vr.DS, None, "FrameTime"},
	{t{0x0018, 0x1064}, vr.LO, None, "CardiacFramingType"},
	{t{0x0018, 0x1065}, vr.DS, None, "FrameTimeVector"},
	{t{0x0018, 0x1066}, vr.DS, None, "FrameDelay"},
	{t{0x0018, 0x1070}, vr.LO, None, "RadiopharmaceuticalRoute"},
	{t{0x0018, 0x1081}, vr.IS, None, "LowRRValue"},
	{t{0x0018, 0x1082}, vr.IS, None, "HighRRValue"},
	{t{0x0018, 0x1083}, vr.IS, None, "IntervalsAcquired"},
	{t{0x0018, 0x1084}, vr.IS, None, "IntervalsRejected"},
	{t{0x0018, 0x1088}, vr.IS, None, "HeartRate"},
	{t{0x0018, 0x1090}, vr.IS, None, "CardiacNumberOfImages"},
	{t{0x0018, 0x1094}, vr.IS, None, "TriggerWindow"},
	{t{0x0018, 0x1100}, vr.DS, None, "ReconstructionDiameter"},
	{t{0x0018, 0x1110}, vr.DS, None, "DistanceSourceToDetector"},
	{t{0x0018, 0x1111}, vr.DS, None, "DistanceSourceToPatient"},
	{t{0x0018, 0x1120}, vr.DS, None, "GantryDetectorTilt"},
	{t{0x0018, 0x1130}, vr.DS, None, "TableHeight"},
	{t{0x0018, 0x1140}, vr.CS, None, "RotationDirection"},
	{t{0x0018, 0x1149}, vr.IS, FieldOfView, "FieldOfViewDimensions"},
	{t{0x0018, 0x1150}, vr.IS, None, "ExposureTime"},
	{t{0x0018, 0x1151}, vr.IS, None, "XRayTubeCurrent"},
	{t{0x0018, 0x1152}, vr.IS, None, "Exposure"},
	{t{0x0018, 0x1160}, vr.SH, None, "FilterType"},
	{t{0x0018, 0x1164}, vr.DS, None, "ImagerPixelSpacing"},
	{t{0x0018, 0x1170}, vr.IS, None, "GeneratorPower"},
	{t{0x0018, 0x1190}, vr.DS, None, "FocalSpots"},
	{t{0x0018, 0x1210}, vr.SH, None, "ConvolutionKernel"},
	{t{0x0018, 0x1250}, vr.SH, None, "ReceiveCoilName"},
	{t{0x0018, 0x1251}, vr.SH, None, "TransmitCoilName"},
	{t{0x0018, 0x1310}, vr.US, None, "AcquisitionMatrix"},
	{t{0x0018, 0x1312}, vr.CS, None, "InPlanePhaseEncodingDirection"},
	{t{0x0018, 0x1314}, vr.DS, None, "FlipAngle"},
	{t{0x0018, 0x1316}, vr.DS, None, "SAR"},
	{t{0x0018, 0x1318}, vr.DS, None, "dBdt"},
	{t{0x0018, 0x1400}, vr.LO, None, "AcquisitionDeviceProcessingDescription"},
	{t{0x0018, 0x1401}, vr.LO, None, "AcquisitionDeviceProcessingCode"},
	{t{0x0018, 0x1402}, vr.CS, None, "CassetteOrientation"},
	{t{0x0018, 0x1403}, vr.CS, None, "CassetteSize"},
	{t{0x0018, 0x1404}, vr.US, None, "ExposuresOnPlate"},
	{t{0x0018, 0x1405}, vr.IS, None, "RelativeXRayExposure"},
	{t{0x0018, 0x5100}, vr.CS, None, "PatientPosition"},
	{t{0x0018, 0x5101}, vr.CS, None, "ViewPosition"},
	{t{0x0018, 0x6000}, vr.DS, None, "Sensitivity"},
	{t{0x0018, 0x6011}, vr.SQ, None, "SequenceOfUltrasoundRegions"},
	{t{0x0018, 0x7004}, vr.CS, None, "DetectorType"},

	// Relationship
	{t{0x0020, 0x0000}, vr.UL, None, "RelationshipGroupLength"},
	{t{0x0020, 0x000D}, vr.UI, None, "StudyInstanceUID"},
	{t{0x0020, 0x000E}, vr.UI, None, "SeriesInstanceUID"},
	{t{0x0020, 0x0010}, vr.SH, None, "StudyID"},
	{t{0x0020, 0x0011}, vr.IS, SeriesNumber, "SeriesNumber"},
	{t{0x0020, 0x0012}, vr.IS, None, "AcquisitionNumber"},
	{t{0x0020, 0x0013}, vr.IS, None, "InstanceNumber"},
	{t{0x0020, 0x0014}, vr.IS, None, "IsotopeNumber"},
	{t{0x0020, 0x0015}, vr.IS, None, "PhaseNumber"},
	{t{0x0020, 0x0016}, vr.IS, None, "IntervalNumber"},
	{t{0x0020, 0x0017}, vr.IS, None, "TimeSlotNumber"},
	{t{0x0020, 0x0018}, vr.IS, None, "AngleNumber"},
	{t{0x0020, 0x0019}, vr.IS, None, "ItemNumber"},
	{t{0x0020, 0x0020}, vr.CS, None, "PatientOrientation"},
	{t{0x0020, 0x0022}, vr.IS, None, "OverlayNumber"},
	{t{0x0020, 0x0024}, vr.IS, None, "CurveNumber"},
	{t{0x0020, 0x0026}, vr.IS, None, "LUTNumber"},
	{t{0x0020, 0x0030}, vr.DS, None, "ImagePosition"},
	{t{0x0020, 0x0032}, vr.DS, ImagePosition, "ImagePositionPatient"},
	{t{0x0020, 0x0035}, vr.DS, None, "ImageOrientation"},
	{t{0x0020, 0x0037}, vr.DS, ImageOrientation, "ImageOrientationPatient"},
	{t{0x0020, 0x0050}, vr.DS, None, "Location"},
	{t{0x0020, 0x0052}, vr.UI, None, "FrameOfReferenceUID"},
	{t{0x0020, 0x0060}, vr.CS, None, "Laterality"},
	{t{0x0020, 0x0062}, vr.CS, None, "ImageLaterality"},
	{t{0x0020, 0x0070}, vr.LO, None, "ImageGeometryType"},
	{t{0x0020, 0x0080}, vr.CS, None, "MaskingImage"},
	{t{0x0020, 0x0100}, vr.IS, None, "TemporalPositionIdentifier"},
	{t{0x0020, 0x0105}, vr.IS, None, "NumberOfTemporalPositions"},
	{t{0x0020, 0x0110}, vr.DS, None, "TemporalResolution"},
	{t{0x0020, 0x1000}, vr.IS, None, "SeriesInStudy"},
	{t{0x0020, 0x1002}, vr.IS, None, "ImagesInAcquisition"},
	{t{0x0020, 0x1004}, vr.IS, None, "AcquisitionsInStudy"},
	{t{0x0020, 0x1020}, vr.LO, None, "Reference"},
	{t{0x0020, 0x1040}, vr.LO, None, "PositionReferenceIndicator"},
	{t{0x0020, 0x1041}, vr.DS, SliceLocation, "SliceLocation"},
	{t{0x0020, 0x1070}, vr.IS, None, "OtherStudyNumbers"},
	{t{0x0020, 0x1200}, vr.IS, None, "NumberOfPatientRelatedStudies"},
	{t{0x0020, 0x1202}, vr.IS, None, "NumberOfPatientRelatedSeries"},
	{t{0x0020, 0x1204}, vr.IS, None, "NumberOfPatientRelatedInstances"},
	{t{0x0020, 0x1206}, vr.IS, None, "NumberOfStudyRelatedSeries"},
	{t{0x0020, 0x1208}, vr.IS, None, "NumberOfStudyRelatedInstances"},
	{t{0x0020, 0x1209}, vr.IS, None, "NumberOfSeriesRelatedInstances"},
	{t{0x0020, 0x3401}, vr.CS, None, "ModifyingDeviceID"},
	{t{0x0020, 0x3402}, vr.CS, None, "ModifiedImageID"},
	{t{0x0020, 0x3403}, vr.DA, None, "ModifiedImageDate"},
	{t{0x0020, 0x3404}, vr.LO, None, "ModifyingDeviceManufacturer"},
	{t{0x0020, 0x3405}, vr.TM, None, "ModifiedImageTime"},
	{t{0x0020, 0x3406}, vr.LO, None, "ModifiedImageDescription"},
	{t{0x0020, 0x4000}, vr.LT, None, "ImageComments"},
	{t{0x0020, 0x5000}, vr.AT, None, "OriginalImageIdentification"},
	{t{0x0020, 0x5002}, vr.LO, None, "OriginalImageIdentificationNomenclature"},
	{t{0x0020, 0x9056}, vr.SH, None, "StackID"},
	{t{0x0020, 0x9057}, vr.UL, None, "InStackPositionNumber"},
	{t{0x0020, 0x9071}, vr.SQ, None, "FrameAnatomySequence"},
	{t{0x0020, 0x9111}, vr.SQ, None, "FrameContentSequence"},
	{t{0x0020, 0x9113}, vr.SQ, None, "PlanePositionSequence"},
	{t{0x0020, 0x9116}, vr.SQ, None, "PlaneOrientationSequence"},
	{t{0x0020, 0x9128}, vr.UL, None, "TemporalPositionIndex"},
	{t{0x0020, 0x9156}, vr.US, None, "FrameAcquisitionNumber"},
	{t{0x0020, 0x9157}, vr.UL, None, "DimensionIndexValues"},
	{t{0x0020, 0x9158}, vr.LT, None, "FrameComments"},

	// Image presentation
	{t{0x0028, 0x0000}, vr.UL, None, "ImagePresentationGroupLength"},
	{t{0x0028, 0x0002}, vr.US, SamplesPerPixel, "SamplesPerPixel"},
	{t{0x0028, 0x0003}, vr.US, None, "SamplesPerPixelUsed"},
	{t{0x0028, 0x0004}, vr.CS, PhotometricInterpretation, "PhotometricInterpretation"},
	{t{0x0028, 0x0005}, vr.US, None, "ImageDimensions"},
	{t{0x0028, 0x0006}, vr.US, PlanarConfiguration, "PlanarConfiguration"},
	{t{0x0028, 0x0008}, vr.IS, NumberOfFrames, "NumberOfFrames"},
	{t{0x0028, 0x0009}, vr.AT, None, "FrameIncrementPointer"},
	{t{0x0028, 0x000A}, vr.AT, None, "FrameDimensionPointer"},
	{t{0x0028, 0x0010}, vr.US, Rows, "Rows"},
	{t{0x0028, 0x0011}, vr.US, Columns, "Columns"},
	{t{0x0028, 0x0012}, vr.US, None, "Planes"},
	{t{0x0028, 0x0014}, vr.US, None, "UltrasoundColorDataPresent"},
	{t{0x0028, 0x0030}, vr.DS, None, "PixelSpacing"},
	{t{0x0028, 0x0031}, vr.DS, None, "ZoomFactor"},
	{t{0x0028, 0x0032}, vr.DS, None, "ZoomCenter"},
	{t{0x0028, 0x0034}, vr.IS, None, "PixelAspectRatio"},
	{t{0x0028, 0x0040}, vr.CS, None, "ImageFormat"},
	{t{0x0028, 0x0050}, vr.LO, None, "ManipulatedImage"},
	{t{0x0028, 0x0051}, vr.CS, None, "CorrectedImage"},
	{t{0x0028, 0x005F}, vr.LO, None, "CompressionRecognitionCode"},
	{t{0x0028, 0x0060}, vr.CS, None, "CompressionCode"},
	{t{0x0028, 0x0061}, vr.SH, None, "CompressionOriginator"},
	{t{0x0028, 0x0062}, vr.LO, None, "CompressionLabel"},
	{t{0x0028, 0x0063}, vr.SH, None, "CompressionDescription"},
	{t{0x0028, 0x0065}, vr.CS, None, "CompressionSequence"},
	{t{0x0028, 0x0066}, vr.AT, None, "CompressionStepPointers"},
	{t{0x0028, 0x0068}, vr.US, None, "RepeatInterval"},
	{t{0x0028, 0x0069}, vr.US, None, "BitsGrouped"},
	{t{0x0028, 0x0070}, vr.US, None, "PerimeterTable"},
	{t{0x0028, 0x0071}, vr.XS, None, "PerimeterValue"},
	{t{0x0028, 0x0080}, vr.US, None, "PredictorRows"},
	{t{0x0028, 0x0081}, vr.US, None, "PredictorColumns"},
	{t{0x0028, 0x0082}, vr.US, None, "PredictorConstants"},
	{t{0x0028, 0x0090}, vr.CS, None, "BlockedPixels"},
	{t{0x0028, 0x0091}, vr.US, None, "BlockRows"},
	{t{0x0028, 0x0092}, vr.US, None, "BlockColumns"},
	{t{0x0028, 0x0093}, vr.US, None, "RowOverlap"},
	{t{0x0028, 0x0094}, vr.US, None, "ColumnOverlap"},
	{t{0x0028, 0x0100}, vr.US, BitsAllocated, "BitsAllocated"},
	{t{0x0028, 0x0101}, vr.US, BitsStored, "BitsStored"},
	{t{0x0028, 0x0102}, vr.US, HighBit, "HighBit"},
	{t{0x0028, 0x0103}, vr.US, PixelRepresentation, "PixelRepresentation"},
	{t{0x0028, 0x0104}, vr.XS, None, "SmallestValidPixelValue"},
	{t{0x0028, 0x0105}, vr.XS, None, "LargestValidPixelValue"},
	{t{0x0028, 0x0106}, vr.XS, None, "SmallestImagePixelValue"},
	{t{0x0028, 0x0107}, vr.XS, None, "LargestImagePixelValue"},
	{t{0x0028, 0x0108}, vr.XS, None, "SmallestPixelValueInSeries"},
	{t{0x0028, 0x0109}, vr.XS, None, "LargestPixelValueInSeries"},
	{t{0x0028, 0x0110}, vr.XS, None, "SmallestImagePixelValueInPlane"},
	{t{0x0028, 0x0111}, vr.XS, None, "LargestImagePixelValueInPlane"},
	{t{0x0028, 0x0120}, vr.XS, None, "PixelPaddingValue"},
	{t{0x0028, 0x0121}, vr.XS, None, "PixelPaddingRangeLimit"},
	{t{0x0028, 0x0200}, vr.US, None, "ImageLocation"},
	{t{0x0028, 0x0300}, vr.CS, None, "QualityControlImage"},
	{t{0x0028, 0x0301}, vr.CS, None, "BurnedInAnnotation"},
	{t{0x0028, 0x0400}, vr.LO, None, "TransformLabel"},
	{t{0x0028, 0x0401}, vr.LO, None, "TransformVersionNumber"},
	{t{0x0028, 0x0402}, vr.US, None, "NumberOfTransformSteps"},
	{t{0x0028, 0x0403}, vr.LO, None, "SequenceOfCompressedData"},
	{t{0x0028, 0x0404}, vr.AT, None, "DetailsOfCoefficients"},
	{t{0x0028, 0x0700}, vr.LO, None, "DCTLabel"},
	{t{0x0028, 0x0701}, vr.CS, None, "DataBlockDescription"},
	{t{0x0028, 0x0702}, vr.AT, None, "DataBlock"},
	{t{0x0028, 0x0710}, vr.US, None, "NormalizationFactorFormat"},
	{t{0x0028, 0x0720}, vr.US, None, "ZonalMapNumberFormat"},
	{t{0x0028, 0x0721}, vr.AT, None, "ZonalMapLocation"},
	{t{0x0028, 0x0722}, vr.US, None, "ZonalMapFormat"},
	{t{0x0028, 0x0730}, vr.US, None, "AdaptiveMapFormat"},
	{t{0x0028, 0x0740}, vr.US, None, "CodeNumberFormat"},
	{t{0x0028, 0x0A02}, vr.CS, None, "PixelSpacingCalibrationType"},
	{t{0x0028, 0x0A04}, vr.LO, None, "PixelSpacingCalibrationDescription"},
	{t{0x0028, 0x1040}, vr.CS, None, "PixelIntensityRelationship"},
	{t{0x0028, 0x1041}, vr.SS, None, "PixelIntensityRelationshipSign"},
	{t{0x0028, 0x1050}, vr.DS, WindowCenter, "WindowCenter"},
	{t{0x0028, 0x1051}, vr.DS, WindowWidth, "WindowWidth"},
	{t{0x0028, 0x1052}, vr.DS, RescaleIntercept, "RescaleIntercept"},
	{t{0x0028, 0x1053}, vr.DS, RescaleSlope, "RescaleSlope"},
	{t{0x0028, 0x1054}, vr.LO, RescaleType, "RescaleType"},
	{t{0x0028, 0x1055}, vr.LO, None, "WindowCenterWidthExplanation"},
	{t{0x0028, 0x1056}, vr.CS, None, "VOILUTFunction"},
	{t{0x0028, 0x1080}, vr.CS, None, "GrayScale"},
	{t{0x0028, 0x1090}, vr.CS, None, "RecommendedViewingMode"},
	{t{0x0028, 0x1100}, vr.XS, None, "GrayLookupTableDescriptor"},
	{t{0x0028, 0x1101}, vr.XS, PaletteDescriptor, "RedPaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1102}, vr.XS, PaletteDescriptor, "GreenPaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1103}, vr.XS, PaletteDescriptor, "BluePaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1104}, vr.US, None, "AlphaPaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1111}, vr.XS, None, "LargeRedPaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1112}, vr.XS, None, "LargeGreenPaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1113}, vr.XS, None, "LargeBluePaletteColorLookupTableDescriptor"},
	{t{0x0028, 0x1199}, vr.UI, None, "PaletteColorLookupTableUID"},
	{t{0x0028, 0x1200}, vr.XS, None, "GrayLookupTableData"},
	{t{0x0028, 0x1201}, vr.XS, Palette, "RedPaletteColorLookupTableData"},
	{t{0x0028, 0x1202}, vr.XS, Palette, "GreenPaletteColorLookupTableData"},
	{t{0x0028, 0x1203}, vr.XS, Palette, "BluePaletteColorLookupTableData"},
	{t{0x0028, 0x1204}, vr.OW, None, "AlphaPaletteColorLookupTableData"},
	{t{0x0028, 0x1211}, vr.OW, None, "LargeRedPaletteColorLookupTableData"},
	{t{0x0028, 0x1212}, vr.OW, None, "LargeGreenPaletteColorLookupTableData"},
	{t{0x0028, 0x1213}, vr.OW, None, "LargeBluePaletteColorLookupTableData"},
	{t{0x0028, 0x1214}, vr.UI, None, "LargePaletteColorLookupTableUID"},
	{t{0x0028, 0x1221}, vr.OW, None, "SegmentedRedPaletteColorLookupTableData"},
	{t{0x0028, 0x1222}, vr.OW, None, "SegmentedGreenPaletteColorLookupTableData"},
	{t{0x0028, 0x1223}, vr.OW, None, "SegmentedBluePaletteColorLookupTableData"},
	{t{0x0028, 0x1300}, vr.CS, None, "BreastImplantPresent"},
	{t{0x0028, 0x2000}, vr.OB, None, "ICCProfile"},
	{t{0x0028, 0x2110}, vr.CS, None, "LossyImageCompression"},
	{t{0x0028, 0x2112}, vr.DS, None, "LossyImageCompressionRatio"},
	{t{0x0028, 0x2114}, vr.CS, None, "LossyImageCompressionMethod"},
	{t{0x0028, 0x3000}, vr.SQ, None, "ModalityLUTSequence"},
	{t{0x0028, 0x3002}, vr.XS, None, "LUTDescriptor"},
	{t{0x0028, 0x3003}, vr.LO, None, "LUTExplanation"},
	{t{0x0028, 0x3004}, vr.LO, None, "ModalityLUTType"},
	{t{0x0028, 0x3006}, vr.XS, LUT, "LUTData"},
	{t{0x0028, 0x3010}, vr.SQ, None, "VOILUTSequence"},
	{t{0x0028, 0x3110}, vr.SQ, None, "SoftcopyVOILUTSequence"},
	{t{0x0028, 0x5000}, vr.SQ, None, "BiPlaneAcquisitionSequence"},
	{t{0x0028, 0x6010}, vr.US, None, "RepresentativeFrameNumber"},
	{t{0x0028, 0x6020}, vr.US, None, "FrameNumbersOfInterest"},
	{t{0x0028, 0x6022}, vr.LO, None, "FrameOfInterestDescription"},
	{t{0x0028, 0x6030}, vr.US, None, "MaskPointers"},
	{t{0x0028, 0x6040}, vr.US, None, "RWavePointer"},
	{t{0x0028, 0x6100}, vr.SQ, None, "MaskSubtractionSequence"},
	{t{0x0028, 0x6101}, vr.CS, None, "MaskOperation"},
	{t{0x0028, 0x6102}, vr.US, None, "ApplicableFrameRange"},
	{t{0x0028, 0x6110}, vr.US, None, "MaskFrameNumbers"},
	{t{0x0028, 0x6112}, vr.US, None, "ContrastFrameAveraging"},
	{t{0x0028, 0x6114}, vr.FL, None, "MaskSubPixelShift"},
	{t{0x0028, 0x6120}, vr.SS, None, "TIDOffset"},
	{t{0x0028, 0x6190}, vr.ST, None, "MaskOperationExplanation"},
	{t{0x0028, 0x9001}, vr.UL, None, "DataPointRows"},
	{t{0x0028, 0x9002}, vr.UL, None, "DataPointColumns"},
	{t{0x0028, 0x9003}, vr.CS, None, "SignalDomainColumns"},
	{t{0x0028, 0x9108}, vr.CS, None, "DataRepresentation"},
	{t{0x0028, 0x9110}, vr.SQ, None, "PixelMeasuresSequence"},
	{t{0x0028, 0x9132}, vr.SQ, None, "FrameVOILUTSequence"},
	{t{0x0028, 0x9145}, vr.SQ, None, "PixelValueTransformationSequence"},

	// Study
	{t{0x0032, 0x0000}, vr.UL, None, "StudyGroupLength"},
	{t{0x0032, 0x000A}, vr.CS, None, "StudyStatusID"},
	{t{0x0032, 0x000C}, vr.CS, None, "StudyPriorityID"},
	{t{0x0032, 0x0012}, vr.LO, None, "StudyIDIssuer"},
	{t{0x0032, 0x0032}, vr.DA, None, "StudyVerifiedDate"},
	{t{0x0032, 0x0033}, vr.TM, None, "StudyVerifiedTime"},
	{t{0x0032, 0x0034}, vr.DA, None, "StudyReadDate"},
	{t{0x0032, 0x0035}, vr.TM, None, "StudyReadTime"},
	{t{0x0032, 0x1000}, vr.DA, None, "ScheduledStudyStartDate"},
	{t{0x0032, 0x1001}, vr.TM, None, "ScheduledStudyStartTime"},
	{t{0x0032, 0x1010}, vr.DA, None, "ScheduledStudyStopDate"},
	{t{0x0032, 0x1011}, vr.TM, None, "ScheduledStudyStopTime"},
	{t{0x0032, 0x1020}, vr.LO, None, "ScheduledStudyLocation"},
	{t{0x0032, 0x1021}, vr.AE, None, "ScheduledStudyLocationAETitle"},
	{t{0x0032, 0x1030}, vr.LO, None, "ReasonForStudy"},
	{t{0x0032, 0x1032}, vr.PN, None, "RequestingPhysician"},
	{t{0x0032, 0x1033}, vr.LO, None, "RequestingService"},
	{t{0x0032, 0x1040}, vr.DA, None, "StudyArrivalDate"},
	{t{0x0032, 0x1041}, vr.TM, None, "StudyArrivalTime"},
	{t{0x0032, 0x1050}, vr.DA, None, "StudyCompletionDate"},
	{t{0x0032, 0x1051}, vr.TM, None, "StudyCompletionTime"},
	{t{0x0032, 0x1055}, vr.CS, None, "StudyComponentStatusID"},
	{t{0x0032, 0x1060}, vr.LO, None, "RequestedProcedureDescription"},
	{t{0x0032, 0x1064}, vr.SQ, None, "RequestedProcedureCodeSequence"},
	{t{0x0032, 0x1070}, vr.LO, None, "RequestedContrastAgent"},
	{t{0x0032, 0x4000}, vr.LT, None, "StudyComments"},

	// Visit
	{t{0x0038, 0x0000}, vr.UL, None, "VisitGroupLength"},
	{t{0x0038, 0x0004}, vr.SQ, None, "ReferencedPatientAliasSequence"},
	{t{0x0038, 0x0008}, vr.CS, None, "VisitStatusID"},
	{t{0x0038, 0x0010}, vr.LO, None, "AdmissionID"},
	{t{0x0038, 0x0011}, vr.LO, None, "IssuerOfAdmissionID"},
	{t{0x0038, 0x0016}, vr.LO, None, "RouteOfAdmissions"},
	{t{0x0038, 0x0020}, vr.DA, None, "AdmittingDate"},
	{t{0x0038, 0x0021}, vr.TM, None, "AdmittingTime"},
	{t{0x0038, 0x0300}, vr.LO, None, "CurrentPatientLocation"},
	{t{0x0038, 0x0400}, vr.LO, None, "PatientInstitutionResidence"},
	{t{0x0038, 0x0500}, vr.LO, None, "PatientState"},
	{t{0x0038, 0x4000}, vr.LT, None, "VisitComments"},

	// Modality worklist and procedure step
	{t{0x0040, 0x0000}, vr.UL, None, "ProcedureGroupLength"},
	{t{0x0040, 0x0001}, vr.AE, None, "ScheduledStationAETitle"},
	{t{0x0040, 0x0002}, vr.DA, None, "ScheduledProcedureStepStartDate"},
	{t{0x0040, 0x0003}, vr.TM, None, "ScheduledProcedureStepStartTime"},
	{t{0x0040, 0x0004}, vr.DA, None, "ScheduledProcedureStepEndDate"},
	{t{0x0040, 0x0005}, vr.TM, None, "ScheduledProcedureStepEndTime"},
	{t{0x0040, 0x0006}, vr.PN, None, "ScheduledPerformingPhysicianName"},
	{t{0x0040, 0x0007}, vr.LO, None, "ScheduledProcedureStepDescription"},
	{t{0x0040, 0x0008}, vr.SQ, None, "ScheduledProtocolCodeSequence"},
	{t{0x0040, 0x0009}, vr.SH, None, "ScheduledProcedureStepID"},
	{t{0x0040, 0x0010}, vr.SH, None, "ScheduledStationName"},
	{t{0x0040, 0x0011}, vr.SH, None, "ScheduledProcedureStepLocation"},
	{t{0x0040, 0x0012}, vr.LO, None, "PreMedication"},
	{t{0x0040, 0x0100}, vr.SQ, None, "ScheduledProcedureStepSequence"},
	{t{0x0040, 0x0220}, vr.SQ, None, "ReferencedNonImageCompositeSOPInstanceSequence"},
	{t{0x0040, 0x0241}, vr.AE, None, "PerformedStationAETitle"},
	{t{0x0040, 0x0242}, vr.SH, None, "PerformedStationName"},
	{t{0x0040, 0x0243}, vr.SH, None, "PerformedLocation"},
	{t{0x0040, 0x0244}, vr.DA, None, "PerformedProcedureStepStartDate"},
	{t{0x0040, 0x0245}, vr.TM, None, "PerformedProcedureStepStartTime"},
	{t{0x0040, 0x0250}, vr.DA, None, "PerformedProcedureStepEndDate"},
	{t{0x0040, 0x0251}, vr.TM, None, "PerformedProcedureStepEndTime"},
	{t{0x0040, 0x0252}, vr.CS, None, "PerformedProcedureStepStatus"},
	{t{0x0040, 0x0253}, vr.SH, None, "PerformedProcedureStepID"},
	{t{0x0040, 0x0254}, vr.LO, None, "PerformedProcedureStepDescription"},
	{t{0x0040, 0x0255}, vr.LO, None, "PerformedProcedureTypeDescription"},
	{t{0x0040, 0x0260}, vr.SQ, None, "PerformedProtocolCodeSequence"},
	{t{0x0040, 0x0275}, vr.SQ, None, "RequestAttributesSequence"},
	{t{0x0040, 0x0280}, vr.ST, None, "CommentsOnThePerformedProcedureStep"},
	{t{0x0040, 0x1001}, vr.SH, None, "RequestedProcedureID"},
	{t{0x0040, 0x1002}, vr.LO, None, "ReasonForTheRequestedProcedure"},
	{t{0x0040, 0x1003}, vr.SH, None, "RequestedProcedurePriority"},
	{t{0x0040, 0x1004}, vr.LO, None, "PatientTransportArrangements"},
	{t{0x0040, 0x1005}, vr.LO, None, "RequestedProcedureLocation"},
	{t{0x0040, 0x1010}, vr.PN, None, "NamesOfIntendedRecipientsOfResults"},
	{t{0x0040, 0x1400}, vr.LT, None, "RequestedProcedureComments"},
	{t{0x0040, 0x2001}, vr.LO, None, "ReasonForTheImagingServiceRequest"},
	{t{0x0040, 0x2004}, vr.DA, None, "IssueDateOfImagingServiceRequest"},
	{t{0x0040, 0x2005}, vr.TM, None, "IssueTimeOfImagingServiceRequest"},
	{t{0x0040, 0x2016}, vr.LO, None, "PlacerOrderNumberImagingServiceRequest"},
	{t{0x0040, 0x2017}, vr.LO, None, "FillerOrderNumberImagingServiceRequest"},
	{t{0x0040, 0x2400}, vr.LT, None, "ImagingServiceRequestComments"},
	{t{0x0040, 0xA010}, vr.CS, None, "RelationshipType"},
	{t{0x0040, 0xA040}, vr.CS, None, "ValueType"},
	{t{0x0040, 0xA043}, vr.SQ, None, "ConceptNameCodeSequence"},
	{t{0x0040, 0xA120}, vr.DT, None, "DateTime"},
	{t{0x0040, 0xA121}, vr.DA, None, "Date"},
	{t{0x0040, 0xA122}, vr.TM, None, "Time"},
	{t{0x0040, 0xA123}, vr.PN, None, "PersonName"},
	{t{0x0040, 0xA124}, vr.UI, None, "UID"},
	{t{0x0040, 0xA160}, vr.UT, None, "TextValue"},
	{t{0x0040, 0xA168}, vr.SQ, None, "ConceptCodeSequence"},
	{t{0x0040, 0xA300}, vr.SQ, None, "MeasuredValueSequence"},
	{t{0x0040, 0xA30A}, vr.DS, None, "NumericValue"},
	{t{0x0040, 0xA730}, vr.SQ, None, "ContentSequence"},
	{t{0x0040, 0xDB00}, vr.CS, None, "TemplateIdentifier"},

	// Overlays (first repeating group only)
	{t{0x6000, 0x0000}, vr.UL, None, "OverlayGroupLength"},
	{t{0x6000, 0x0010}, vr.US, None, "OverlayRows"},
	{t{0x6000, 0x0011}, vr.US, None, "OverlayColumns"},
	{t{0x6000, 0x0012}, vr.US, None, "OverlayPlanes"},
	{t{0x6000, 0x0015}, vr.IS, None, "NumberOfFramesInOverlay"},
	{t{0x6000, 0x0022}, vr.LO, None, "OverlayDescription"},
	{t{0x6000, 0x0040}, vr.CS, None, "OverlayType"},
	{t{0x6000, 0x0045}, vr.LO, None, "OverlaySubtype"},
	{t{0x6000, 0x0050}, vr.SS, None, "OverlayOrigin"},
	{t{0x6000, 0x0051}, vr.US, None, "ImageFrameOrigin"},
	{t{0x6000, 0x0052}, vr.US, None, "OverlayPlaneOrigin"},
	{t{0x6000, 0x0100}, vr.US, None, "OverlayBitsAllocated"},
	{t{0x6000, 0x0102}, vr.US, None, "OverlayBitPosition"},
	{t{0x6000, 0x1100}, vr.US, None, "OverlayDescriptorGray"},
	{t{0x6000, 0x1101}, vr.US, None, "OverlayDescriptorRed"},
	{t{0x6000, 0x1102}, vr.US, None, "OverlayDescriptorGreen"},
	{t{0x6000, 0x1103}, vr.US, None, "OverlayDescriptorBlue"},
	{t{0x6000, 0x1500}, vr.LO, None, "OverlayLabel"},
	{t{0x6000, 0x3000}, vr.OW, None, "OverlayData"},
	{t{0x6000, 0x4000}, vr.LT, None, "OverlayComments"},

	// Pixel data
	{t{0x7FE0, 0x0000}, vr.UL, None, "PixelDataGroupLength"},
	{t{0x7FE0, 0x0010}, vr.XS, None, "PixelData"},

	// Items and delimiters
	{t{0xFFFE, 0xE000}, vr.Delimiter, None, "Item"},
	{t{0xFFFE, 0xE00D}, vr.Delimiter, None, "ItemDelimitationItem"},
	{t{0xFFFE, 0xE0DD}, vr.Delimiter, None, "SequenceDelimitationItem"},

	{t{0xFFFF, 0xFFFF}, vr.XS, None, ""},
}
