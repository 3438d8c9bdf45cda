package catalog

// FileNameColumn heads the first output column. It is not a DICOM keyword.
const FileNameColumn = "FileName"

// attributes lists the DICOM keywords exported for every file, in column order.
var attributes = [...]string{
	"StudyDate",
	"SeriesDate",
	"AcquisitionDate",
	"AcquisitionDateTime",
	"StudyTime",
	"SeriesTime",
	"AcquisitionTime",
	"Modality",
	"AnatomicRegionsInStudyCodeSequence",
	"Manufacturer",
	"StationName",
	"StudyDescription",
	"ProcedureCodeSequence",
	"SeriesDescription",
	"ManufacturerModelName",
	"AnatomicRegionSequence",
	"AcquisitionContrast",
	"PatientName",
	"PatientID",
	"PatientBirthDate",
	"PatientSex",
	"PatientAge",
	"OpticalMagnificationFactor",
	"ContrastBolusAgent",
	"BodyPartExamined",
	"ScanningSequence",
	"SequenceVariant",
	"ScanOptions",
	"MRAcquisitionType",
	"SequenceName",
	"AngioFlag",
	"Radiopharmaceutical",
	"SliceThickness",
	"KVP",
	"RepetitionTime",
	"EchoTime",
	"InversionTime",
	"NumberOfAverages",
	"EchoNumbers",
	"MagneticFieldStrength",
	"SpacingBetweenSlices",
	"NumberOfPhaseEncodingSteps",
	"DataCollectionDiameter",
	"EchoTrainLength",
	"DateOfSecondaryCapture",
	"ProtocolName",
	"ContrastBolusRoute",
	"TriggerTime",
	"ReconstructionDiameter",
	"DistanceSourceToDetector",
	"DistanceSourceToPatient",
	"ExposureTime",
	"XRayTubeCurrent",
	"Exposure",
	"ReceiveCoilName",
	"TransmitCoilName",
	"FlipAngle",
	"VariableFlipAngleFlag",
	"IVUSAcquisition",
	"TransducerFrequency",
	"TransducerType",
	"PulseRepetitionFrequency",
	"PulseSequenceName",
	"EchoPulseSequence",
	"InversionRecovery",
	"FlowCompensation",
	"MultipleSpinEcho",
	"PhaseContrast",
	"TimeOfFlightContrast",
	"Spoiling",
	"SteadyStatePulseSequence",
	"EchoPlanarPulseSequence",
	"DiffusionBValue",
	"MRSpectroscopyFOVGeometrySequence",
	"SlabThickness",
	"SlabOrientation",
	"RFEchoTrainLength",
	"GradientEchoTrainLength",
	"ASLTechniqueDescription",
	"CTAcquisitionTypeSequence",
	"AcquisitionType",
	"ReconstructionAlgorithm",
	"XRayTubeCurrentInmA",
	"ExposureInmAs",
	"ContrastBolusAgentAdministered",
	"MultienergyCTAcquisition",
	"FunctionalMRSequence",
	"USImageDescriptionSequence",
	"SeriesNumber",
	"AcquisitionNumber",
	"InstanceNumber",
	"ImagePositionPatient",
	"ImageOrientationPatient",
	"ImagesInAcquisition",
	"SliceLocation",
	"ImagePositionVolume",
	"ImageOrientationVolume",
	"UltrasoundColorDataPresent",
	"PixelSpacing",
	"WindowCenter",
	"WindowWidth",
	"RescaleIntercept",
	"RescaleSlope",
	"SegmentationType",
	"SegmentSequence",
	"SegmentLabel",
	"SegmentDescription",
	"SegmentationAlgorithmIdentificationSequence",
	"RTImageLabel",
	"RTImageName",
	"RTImageDescription",
	"FractionNumber",
}

// Attributes returns the exported DICOM keywords in column order.
func Attributes() []string {
	out := make([]string, len(attributes))
	copy(out, attributes[:])
	return out
}

// Header returns the output header row: FileNameColumn followed by Attributes.
func Header() []string {
	out := make([]string, 0, len(attributes)+1)
	out = append(out, FileNameColumn)
	return append(out, attributes[:]...)
}
