package dictionary

/*
===============================================================================
    Well-Known Tags
===============================================================================
*/

// Tags referenced directly by the parser and pixel extractor
const (
	FileMetaInformationGroupLength = Tag(0x00020000)
	TransferSyntaxUID              = Tag(0x00020010)
	SpecificCharacterSet           = Tag(0x00080005)
	PatientName                    = Tag(0x00100010)
	SamplesPerPixel                = Tag(0x00280002)
	PlanarConfiguration            = Tag(0x00280006)
	NumberOfFrames                 = Tag(0x00280008)
	Rows                           = Tag(0x00280010)
	Columns                        = Tag(0x00280011)
	BitsAllocated                  = Tag(0x00280100)
	BitsStored                     = Tag(0x00280101)
	PixelRepresentation            = Tag(0x00280103)
	PixelData                      = Tag(0x7FE00010)

	Item                     = Tag(0xFFFEE000)
	ItemDelimitationItem     = Tag(0xFFFEE00D)
	SequenceDelimitationItem = Tag(0xFFFEE0DD)
)

// DicomDictionary holds the supported subset of the NEMA data dictionary.
// Tags absent from this table still parse; they are reported through the
// synthesised entries of `LookupTag`.
var DicomDictionary = map[Tag]*DictEntry{
	// File meta information (group 0002)
	0x00020000: {Tag: 0x00020000, Name: "FileMetaInformationGroupLength", VR: "UL", VM: "1"},
	0x00020001: {Tag: 0x00020001, Name: "FileMetaInformationVersion", VR: "OB", VM: "1"},
	0x00020002: {Tag: 0x00020002, Name: "MediaStorageSOPClassUID", VR: "UI", VM: "1"},
	0x00020003: {Tag: 0x00020003, Name: "MediaStorageSOPInstanceUID", VR: "UI", VM: "1"},
	0x00020010: {Tag: 0x00020010, Name: "TransferSyntaxUID", VR: "UI", VM: "1"},
	0x00020012: {Tag: 0x00020012, Name: "ImplementationClassUID", VR: "UI", VM: "1"},
	0x00020013: {Tag: 0x00020013, Name: "ImplementationVersionName", VR: "SH", VM: "1"},
	0x00020016: {Tag: 0x00020016, Name: "SourceApplicationEntityTitle", VR: "AE", VM: "1"},

	// Identification (group 0008)
	0x00080005: {Tag: 0x00080005, Name: "SpecificCharacterSet", VR: "CS", VM: "1-n"},
	0x00080008: {Tag: 0x00080008, Name: "ImageType", VR: "CS", VM: "2-n"},
	0x00080016: {Tag: 0x00080016, Name: "SOPClassUID", VR: "UI", VM: "1"},
	0x00080018: {Tag: 0x00080018, Name: "SOPInstanceUID", VR: "UI", VM: "1"},
	0x00080020: {Tag: 0x00080020, Name: "StudyDate", VR: "DA", VM: "1"},
	0x00080021: {Tag: 0x00080021, Name: "SeriesDate", VR: "DA", VM: "1"},
	0x00080022: {Tag: 0x00080022, Name: "AcquisitionDate", VR: "DA", VM: "1"},
	0x00080023: {Tag: 0x00080023, Name: "ContentDate", VR: "DA", VM: "1"},
	0x00080030: {Tag: 0x00080030, Name: "StudyTime", VR: "TM", VM: "1"},
	0x00080031: {Tag: 0x00080031, Name: "SeriesTime", VR: "TM", VM: "1"},
	0x00080032: {Tag: 0x00080032, Name: "AcquisitionTime", VR: "TM", VM: "1"},
	0x00080033: {Tag: 0x00080033, Name: "ContentTime", VR: "TM", VM: "1"},
	0x00080050: {Tag: 0x00080050, Name: "AccessionNumber", VR: "SH", VM: "1"},
	0x00080060: {Tag: 0x00080060, Name: "Modality", VR: "CS", VM: "1"},
	0x00080070: {Tag: 0x00080070, Name: "Manufacturer", VR: "LO", VM: "1"},
	0x00080080: {Tag: 0x00080080, Name: "InstitutionName", VR: "LO", VM: "1"},
	0x00080090: {Tag: 0x00080090, Name: "ReferringPhysicianName", VR: "PN", VM: "1"},
	0x00081030: {Tag: 0x00081030, Name: "StudyDescription", VR: "LO", VM: "1"},
	0x0008103E: {Tag: 0x0008103E, Name: "SeriesDescription", VR: "LO", VM: "1"},
	0x00081090: {Tag: 0x00081090, Name: "ManufacturerModelName", VR: "LO", VM: "1"},
	0x00081110: {Tag: 0x00081110, Name: "ReferencedStudySequence", VR: "SQ", VM: "1"},
	0x00081140: {Tag: 0x00081140, Name: "ReferencedImageSequence", VR: "SQ", VM: "1"},

	// Patient (group 0010)
	0x00100010: {Tag: 0x00100010, Name: "PatientName", VR: "PN", VM: "1"},
	0x00100020: {Tag: 0x00100020, Name: "PatientID", VR: "LO", VM: "1"},
	0x00100030: {Tag: 0x00100030, Name: "PatientBirthDate", VR: "DA", VM: "1"},
	0x00100040: {Tag: 0x00100040, Name: "PatientSex", VR: "CS", VM: "1"},
	0x00101010: {Tag: 0x00101010, Name: "PatientAge", VR: "AS", VM: "1"},
	0x00101030: {Tag: 0x00101030, Name: "PatientWeight", VR: "DS", VM: "1"},
	0x00104000: {Tag: 0x00104000, Name: "PatientComments", VR: "LT", VM: "1"},

	// Acquisition (group 0018)
	0x00180015: {Tag: 0x00180015, Name: "BodyPartExamined", VR: "CS", VM: "1"},
	0x00180050: {Tag: 0x00180050, Name: "SliceThickness", VR: "DS", VM: "1"},
	0x00180060: {Tag: 0x00180060, Name: "KVP", VR: "DS", VM: "1"},
	0x00180088: {Tag: 0x00180088, Name: "SpacingBetweenSlices", VR: "DS", VM: "1"},
	0x00181030: {Tag: 0x00181030, Name: "ProtocolName", VR: "LO", VM: "1"},
	0x00185100: {Tag: 0x00185100, Name: "PatientPosition", VR: "CS", VM: "1"},

	// Relationship (group 0020)
	0x0020000D: {Tag: 0x0020000D, Name: "StudyInstanceUID", VR: "UI", VM: "1"},
	0x0020000E: {Tag: 0x0020000E, Name: "SeriesInstanceUID", VR: "UI", VM: "1"},
	0x00200010: {Tag: 0x00200010, Name: "StudyID", VR: "SH", VM: "1"},
	0x00200011: {Tag: 0x00200011, Name: "SeriesNumber", VR: "IS", VM: "1"},
	0x00200013: {Tag: 0x00200013, Name: "InstanceNumber", VR: "IS", VM: "1"},
	0x00200032: {Tag: 0x00200032, Name: "ImagePositionPatient", VR: "DS", VM: "3"},
	0x00200037: {Tag: 0x00200037, Name: "ImageOrientationPatient", VR: "DS", VM: "6"},
	0x00200052: {Tag: 0x00200052, Name: "FrameOfReferenceUID", VR: "UI", VM: "1"},
	0x00201041: {Tag: 0x00201041, Name: "SliceLocation", VR: "DS", VM: "1"},

	// Image presentation (group 0028)
	0x00280002: {Tag: 0x00280002, Name: "SamplesPerPixel", VR: "US", VM: "1"},
	0x00280004: {Tag: 0x00280004, Name: "PhotometricInterpretation", VR: "CS", VM: "1"},
	0x00280006: {Tag: 0x00280006, Name: "PlanarConfiguration", VR: "US", VM: "1"},
	0x00280008: {Tag: 0x00280008, Name: "NumberOfFrames", VR: "IS", VM: "1"},
	0x00280010: {Tag: 0x00280010, Name: "Rows", VR: "US", VM: "1"},
	0x00280011: {Tag: 0x00280011, Name: "Columns", VR: "US", VM: "1"},
	0x00280030: {Tag: 0x00280030, Name: "PixelSpacing", VR: "DS", VM: "2"},
	0x00280100: {Tag: 0x00280100, Name: "BitsAllocated", VR: "US", VM: "1"},
	0x00280101: {Tag: 0x00280101, Name: "BitsStored", VR: "US", VM: "1"},
	0x00280102: {Tag: 0x00280102, Name: "HighBit", VR: "US", VM: "1"},
	0x00280103: {Tag: 0x00280103, Name: "PixelRepresentation", VR: "US", VM: "1"},
	0x00281050: {Tag: 0x00281050, Name: "WindowCenter", VR: "DS", VM: "1-n"},
	0x00281051: {Tag: 0x00281051, Name: "WindowWidth", VR: "DS", VM: "1-n"},
	0x00281052: {Tag: 0x00281052, Name: "RescaleIntercept", VR: "DS", VM: "1"},
	0x00281053: {Tag: 0x00281053, Name: "RescaleSlope", VR: "DS", VM: "1"},

	// Pixel data (group 7FE0)
	0x7FE00010: {Tag: 0x7FE00010, Name: "PixelData", VR: "OW", VM: "1"},

	// Structural markers (group FFFE); not data-bearing
	0xFFFEE000: {Tag: 0xFFFEE000, Name: "Item", VR: "UN", VM: "1"},
	0xFFFEE00D: {Tag: 0xFFFEE00D, Name: "ItemDelimitationItem", VR: "UN", VM: "1"},
	0xFFFEE0DD: {Tag: 0xFFFEE0DD, Name: "SequenceDelimitationItem", VR: "UN", VM: "1"},
}
