package format

// The codes below tolerate unknown values: bytes repurposed by a custom
// layout can land on any of these fields, so an out-of-vocabulary code parses
// to the Invalid variant of its type instead of failing the whole header.

// TraceSortingCode is bytes 28..30 of the binary header (signed).
type TraceSortingCode int16

const (
	SortingOther                 TraceSortingCode = -1
	SortingUnknown               TraceSortingCode = 0
	SortingAsRecorded            TraceSortingCode = 1
	SortingCDPEnsemble           TraceSortingCode = 2
	SortingSingleFoldContinuous  TraceSortingCode = 3
	SortingHorizontalStack       TraceSortingCode = 4
	SortingCommonSourcePoint     TraceSortingCode = 5
	SortingCommonReceiverPoint   TraceSortingCode = 6
	SortingCommonOffsetPoint     TraceSortingCode = 7
	SortingCommonMidPoint        TraceSortingCode = 8
	SortingCommonConversionPoint TraceSortingCode = 9
	SortingInvalid               TraceSortingCode = 10
)

func ParseTraceSortingCode(code int16) TraceSortingCode {
	if code >= -1 && code <= 9 {
		return TraceSortingCode(code)
	}
	return SortingInvalid
}

func (c TraceSortingCode) String() string {
	switch c {
	case SortingOther:
		return "Other"
	case SortingUnknown:
		return "Unknown"
	case SortingAsRecorded:
		return "AsRecorded"
	case SortingCDPEnsemble:
		return "CDPEnsemble"
	case SortingSingleFoldContinuous:
		return "SingleFoldContinuous"
	case SortingHorizontalStack:
		return "HorizontalStack"
	case SortingCommonSourcePoint:
		return "CommonSourcePoint"
	case SortingCommonReceiverPoint:
		return "CommonReceiverPoint"
	case SortingCommonOffsetPoint:
		return "CommonOffsetPoint"
	case SortingCommonMidPoint:
		return "CommonMidPoint"
	case SortingCommonConversionPoint:
		return "CommonConversionPoint"
	default:
		return "Invalid"
	}
}

// SweepTypeCode is bytes 38..40 of the binary header and bytes 132..134 of
// the trace header.
type SweepTypeCode uint16

const (
	SweepUnspecified SweepTypeCode = 0
	SweepLinear      SweepTypeCode = 1
	SweepParabolic   SweepTypeCode = 2
	SweepExponential SweepTypeCode = 3
	SweepOther       SweepTypeCode = 4
	SweepInvalid     SweepTypeCode = 5
)

func ParseSweepTypeCode(code uint16) SweepTypeCode {
	if code <= 4 {
		return SweepTypeCode(code)
	}
	return SweepInvalid
}

func (c SweepTypeCode) String() string {
	switch c {
	case SweepUnspecified:
		return "Unspecified"
	case SweepLinear:
		return "Linear"
	case SweepParabolic:
		return "Parabolic"
	case SweepExponential:
		return "Exponential"
	case SweepOther:
		return "Other"
	default:
		return "Invalid"
	}
}

// TaperType is bytes 46..48 of the binary header and bytes 138..140 of the
// trace header.
type TaperType uint16

const (
	TaperUnspecified   TaperType = 0
	TaperLinear        TaperType = 1
	TaperCosineSquared TaperType = 2
	TaperOther         TaperType = 3
	TaperInvalid       TaperType = 4
)

func ParseTaperType(code uint16) TaperType {
	if code <= 3 {
		return TaperType(code)
	}
	return TaperInvalid
}

func (c TaperType) String() string {
	switch c {
	case TaperUnspecified:
		return "Unspecified"
	case TaperLinear:
		return "Linear"
	case TaperCosineSquared:
		return "CosineSquared"
	case TaperOther:
		return "Other"
	default:
		return "Invalid"
	}
}

// CorrelatedDataTraces is bytes 48..50 of the binary header and bytes
// 124..126 of the trace header.
type CorrelatedDataTraces uint16

const (
	CorrelatedUnspecified CorrelatedDataTraces = 0
	CorrelatedNo          CorrelatedDataTraces = 1
	CorrelatedYes         CorrelatedDataTraces = 2
	CorrelatedInvalid     CorrelatedDataTraces = 3
)

func ParseCorrelatedDataTraces(code uint16) CorrelatedDataTraces {
	if code <= 2 {
		return CorrelatedDataTraces(code)
	}
	return CorrelatedInvalid
}

func (c CorrelatedDataTraces) String() string {
	switch c {
	case CorrelatedUnspecified:
		return "Unspecified"
	case CorrelatedNo:
		return "No"
	case CorrelatedYes:
		return "Yes"
	default:
		return "Invalid"
	}
}

// BinaryGainRecovered is bytes 50..52 of the binary header.
type BinaryGainRecovered uint16

const (
	GainRecoveredUnspecified BinaryGainRecovered = 0
	GainRecoveredYes         BinaryGainRecovered = 1
	GainRecoveredNo          BinaryGainRecovered = 2
	GainRecoveredInvalid     BinaryGainRecovered = 3
)

func ParseBinaryGainRecovered(code uint16) BinaryGainRecovered {
	if code <= 2 {
		return BinaryGainRecovered(code)
	}
	return GainRecoveredInvalid
}

func (c BinaryGainRecovered) String() string {
	switch c {
	case GainRecoveredUnspecified:
		return "Unspecified"
	case GainRecoveredYes:
		return "Yes"
	case GainRecoveredNo:
		return "No"
	default:
		return "Invalid"
	}
}

// AmplitudeRecoveryMethod is bytes 52..54 of the binary header.
type AmplitudeRecoveryMethod uint16

const (
	AmplitudeRecoveryUnspecified         AmplitudeRecoveryMethod = 0
	AmplitudeRecoveryNone                AmplitudeRecoveryMethod = 1
	AmplitudeRecoverySphericalDivergence AmplitudeRecoveryMethod = 2
	AmplitudeRecoveryAGC                 AmplitudeRecoveryMethod = 3
	AmplitudeRecoveryOther               AmplitudeRecoveryMethod = 4
	AmplitudeRecoveryInvalid             AmplitudeRecoveryMethod = 5
)

func ParseAmplitudeRecoveryMethod(code uint16) AmplitudeRecoveryMethod {
	if code <= 4 {
		return AmplitudeRecoveryMethod(code)
	}
	return AmplitudeRecoveryInvalid
}

func (c AmplitudeRecoveryMethod) String() string {
	switch c {
	case AmplitudeRecoveryUnspecified:
		return "Unspecified"
	case AmplitudeRecoveryNone:
		return "None"
	case AmplitudeRecoverySphericalDivergence:
		return "SphericalDivergence"
	case AmplitudeRecoveryAGC:
		return "AGC"
	case AmplitudeRecoveryOther:
		return "Other"
	default:
		return "Invalid"
	}
}

// MeasurementSystem is bytes 54..56 of the binary header.
type MeasurementSystem uint16

const (
	MeasurementUnspecified MeasurementSystem = 0
	MeasurementMeters      MeasurementSystem = 1
	MeasurementFeet        MeasurementSystem = 2
	MeasurementInvalid     MeasurementSystem = 3
)

func ParseMeasurementSystem(code uint16) MeasurementSystem {
	if code <= 2 {
		return MeasurementSystem(code)
	}
	return MeasurementInvalid
}

func (c MeasurementSystem) String() string {
	switch c {
	case MeasurementUnspecified:
		return "Unspecified"
	case MeasurementMeters:
		return "Meters"
	case MeasurementFeet:
		return "Feet"
	default:
		return "Invalid"
	}
}

// ImpulseSignalPolarity is bytes 56..58 of the binary header.
type ImpulseSignalPolarity uint16

const (
	PolarityUnspecified           ImpulseSignalPolarity = 0
	PolarityIncreasePressureMinus ImpulseSignalPolarity = 1
	PolarityIncreasePressurePlus  ImpulseSignalPolarity = 2
	PolarityInvalid               ImpulseSignalPolarity = 3
)

func ParseImpulseSignalPolarity(code uint16) ImpulseSignalPolarity {
	if code <= 2 {
		return ImpulseSignalPolarity(code)
	}
	return PolarityInvalid
}

func (c ImpulseSignalPolarity) String() string {
	switch c {
	case PolarityUnspecified:
		return "Unspecified"
	case PolarityIncreasePressureMinus:
		return "IncreasePressureMinus"
	case PolarityIncreasePressurePlus:
		return "IncreasePressurePlus"
	default:
		return "Invalid"
	}
}

// VibratoryPolarityCode is bytes 58..60 of the binary header.
type VibratoryPolarityCode uint16

const (
	VibPolarityUnspecified VibratoryPolarityCode = 0
	VibPolarityFrom338     VibratoryPolarityCode = 1
	VibPolarityFrom23      VibratoryPolarityCode = 2
	VibPolarityFrom68      VibratoryPolarityCode = 3
	VibPolarityFrom113     VibratoryPolarityCode = 4
	VibPolarityFrom158     VibratoryPolarityCode = 5
	VibPolarityFrom203     VibratoryPolarityCode = 6
	VibPolarityFrom248     VibratoryPolarityCode = 7
	VibPolarityFrom293     VibratoryPolarityCode = 8
	VibPolarityInvalid     VibratoryPolarityCode = 9
)

func ParseVibratoryPolarityCode(code uint16) VibratoryPolarityCode {
	if code <= 8 {
		return VibratoryPolarityCode(code)
	}
	return VibPolarityInvalid
}

func (c VibratoryPolarityCode) String() string {
	if c <= VibPolarityFrom293 {
		return [...]string{
			"Unspecified", "From338", "From23", "From68", "From113",
			"From158", "From203", "From248", "From293",
		}[c]
	}
	return "Invalid"
}

// TimeBasisCode is bytes 310..312 of the binary header and bytes 166..168
// of the trace header.
type TimeBasisCode uint16

const (
	TimeBasisUnspecified TimeBasisCode = 0
	TimeBasisLocal       TimeBasisCode = 1
	TimeBasisGMT         TimeBasisCode = 2
	TimeBasisOther       TimeBasisCode = 3
	TimeBasisUTC         TimeBasisCode = 4
	TimeBasisGPS         TimeBasisCode = 5
	TimeBasisInvalid     TimeBasisCode = 6
)

func ParseTimeBasisCode(code uint16) TimeBasisCode {
	if code <= 5 {
		return TimeBasisCode(code)
	}
	return TimeBasisInvalid
}

func (c TimeBasisCode) String() string {
	switch c {
	case TimeBasisUnspecified:
		return "Unspecified"
	case TimeBasisLocal:
		return "Local"
	case TimeBasisGMT:
		return "GreenwichGMT"
	case TimeBasisOther:
		return "Other"
	case TimeBasisUTC:
		return "CoordinatedUTC"
	case TimeBasisGPS:
		return "GlobalGPS"
	default:
		return "Invalid"
	}
}

// DataUse is bytes 34..36 of the trace header.
type DataUse uint16

const (
	DataUseUnspecified DataUse = 0
	DataUseProduction  DataUse = 1
	DataUseTest        DataUse = 2
	DataUseInvalid     DataUse = 3
)

func ParseDataUse(code uint16) DataUse {
	if code <= 2 {
		return DataUse(code)
	}
	return DataUseInvalid
}

func (c DataUse) String() string {
	switch c {
	case DataUseUnspecified:
		return "Unspecified"
	case DataUseProduction:
		return "Production"
	case DataUseTest:
		return "Test"
	default:
		return "Invalid"
	}
}

// CoordinateUnits is bytes 88..90 of the trace header.
type CoordinateUnits uint16

const (
	CoordUnitUnspecified           CoordinateUnits = 0
	CoordUnitLength                CoordinateUnits = 1
	CoordUnitSecondsOfArc          CoordinateUnits = 2
	CoordUnitDegreesDecimal        CoordinateUnits = 3
	CoordUnitDegreesMinutesSeconds CoordinateUnits = 4
	CoordUnitInvalid               CoordinateUnits = 5
)

func ParseCoordinateUnits(code uint16) CoordinateUnits {
	if code <= 4 {
		return CoordinateUnits(code)
	}
	return CoordUnitInvalid
}

func (c CoordinateUnits) String() string {
	switch c {
	case CoordUnitUnspecified:
		return "Unspecified"
	case CoordUnitLength:
		return "Length"
	case CoordUnitSecondsOfArc:
		return "SecondsOfArc"
	case CoordUnitDegreesDecimal:
		return "DegreesDecimal"
	case CoordUnitDegreesMinutesSeconds:
		return "DegreesMinutesSeconds"
	default:
		return "Invalid"
	}
}

// GainType is bytes 118..120 of the trace header.
type GainType uint16

const (
	GainUnspecified   GainType = 0
	GainFixed         GainType = 1
	GainBinary        GainType = 2
	GainFloatingPoint GainType = 3
	GainInvalid       GainType = 4
)

func ParseGainType(code uint16) GainType {
	if code <= 3 {
		return GainType(code)
	}
	return GainInvalid
}

func (c GainType) String() string {
	switch c {
	case GainUnspecified:
		return "Unspecified"
	case GainFixed:
		return "Fixed"
	case GainBinary:
		return "Binary"
	case GainFloatingPoint:
		return "FloatingPoint"
	default:
		return "Invalid"
	}
}

// OverTravel is bytes 178..180 of the trace header.
type OverTravel uint16

const (
	OverTravelUnspecified OverTravel = 0
	OverTravelUp          OverTravel = 1
	OverTravelDown        OverTravel = 2
	OverTravelInvalid     OverTravel = 3
)

func ParseOverTravel(code uint16) OverTravel {
	if code <= 2 {
		return OverTravel(code)
	}
	return OverTravelInvalid
}

func (c OverTravel) String() string {
	switch c {
	case OverTravelUnspecified:
		return "Unspecified"
	case OverTravelUp:
		return "Up"
	case OverTravelDown:
		return "Down"
	default:
		return "Invalid"
	}
}

// TraceValueUnit is bytes 202..204 of the trace header (signed). The same
// vocabulary is used for the transduction units at bytes 210..212.
type TraceValueUnit int16

const (
	UnitOther            TraceValueUnit = -1
	UnitUnknown          TraceValueUnit = 0
	UnitPascal           TraceValueUnit = 1
	UnitVolts            TraceValueUnit = 2
	UnitMillivolts       TraceValueUnit = 3
	UnitAmperes          TraceValueUnit = 4
	UnitMeters           TraceValueUnit = 5
	UnitMetersPerSecond  TraceValueUnit = 6
	UnitMetersPerSecond2 TraceValueUnit = 7
	UnitNewton           TraceValueUnit = 8
	UnitWatt             TraceValueUnit = 9
	UnitInvalid          TraceValueUnit = 10
)

func ParseTraceValueUnit(code int16) TraceValueUnit {
	if code >= -1 && code <= 9 {
		return TraceValueUnit(code)
	}
	return UnitInvalid
}

func (c TraceValueUnit) String() string {
	switch c {
	case UnitOther:
		return "Other"
	case UnitUnknown:
		return "Unknown"
	case UnitPascal:
		return "Pascal"
	case UnitVolts:
		return "Volts"
	case UnitMillivolts:
		return "Millivolts"
	case UnitAmperes:
		return "Amperes"
	case UnitMeters:
		return "Meters"
	case UnitMetersPerSecond:
		return "MetersPerSecond"
	case UnitMetersPerSecond2:
		return "MetersPerSecond2"
	case UnitNewton:
		return "Newton"
	case UnitWatt:
		return "Watt"
	default:
		return "Invalid"
	}
}

// SourceType is bytes 216..218 of the trace header (signed).
type SourceType int16

const (
	SourceUnknown                       SourceType = 0
	SourceVibratoryVertical             SourceType = 1
	SourceVibratoryCrossLine            SourceType = 2
	SourceVibratoryInLine               SourceType = 3
	SourceImpulsiveVertical             SourceType = 4
	SourceImpulsiveCrossLine            SourceType = 5
	SourceImpulsiveInLine               SourceType = 6
	SourceDistributedImpulsiveVertical  SourceType = 7
	SourceDistributedImpulsiveCrossLine SourceType = 8
	SourceDistributedImpulsiveInLine    SourceType = 9
	SourceInvalid                       SourceType = 10
)

func ParseSourceType(code int16) SourceType {
	if code >= 0 && code <= 9 {
		return SourceType(code)
	}
	return SourceInvalid
}

func (c SourceType) String() string {
	if c >= SourceUnknown && c <= SourceDistributedImpulsiveInLine {
		return [...]string{
			"Unknown", "VibratoryVertical", "VibratoryCrossLine", "VibratoryInLine",
			"ImpulsiveVertical", "ImpulsiveCrossLine", "ImpulsiveInLine",
			"DistributedImpulsiveVertical", "DistributedImpulsiveCrossLine",
			"DistributedImpulsiveInLine",
		}[c]
	}
	return "Invalid"
}

// SourceMeasurementUnit is bytes 230..232 of the trace header (signed).
type SourceMeasurementUnit int16

const (
	SourceUnitOther     SourceMeasurementUnit = -1
	SourceUnitUnknown   SourceMeasurementUnit = 0
	SourceUnitJoule     SourceMeasurementUnit = 1
	SourceUnitKilowatt  SourceMeasurementUnit = 2
	SourceUnitPascal    SourceMeasurementUnit = 3
	SourceUnitBar       SourceMeasurementUnit = 4
	SourceUnitBarMeter  SourceMeasurementUnit = 5
	SourceUnitNewton    SourceMeasurementUnit = 6
	SourceUnitKilograms SourceMeasurementUnit = 7
	SourceUnitInvalid   SourceMeasurementUnit = 8
)

func ParseSourceMeasurementUnit(code int16) SourceMeasurementUnit {
	if code >= -1 && code <= 7 {
		return SourceMeasurementUnit(code)
	}
	return SourceUnitInvalid
}

func (c SourceMeasurementUnit) String() string {
	switch c {
	case SourceUnitOther:
		return "Other"
	case SourceUnitUnknown:
		return "Unknown"
	case SourceUnitJoule:
		return "Joule"
	case SourceUnitKilowatt:
		return "Kilowatt"
	case SourceUnitPascal:
		return "Pascal"
	case SourceUnitBar:
		return "Bar"
	case SourceUnitBarMeter:
		return "BarMeter"
	case SourceUnitNewton:
		return "Newton"
	case SourceUnitKilograms:
		return "Kilograms"
	default:
		return "Invalid"
	}
}
