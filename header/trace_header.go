package header

import (
	"math"

	"github.com/GiGainfosystems/giga-segy/encoding"
	"github.com/GiGainfosystems/giga-segy/endian"
	"github.com/GiGainfosystems/giga-segy/errs"
	"github.com/GiGainfosystems/giga-segy/format"
	"github.com/GiGainfosystems/giga-segy/internal/ebcdic"
	"github.com/GiGainfosystems/giga-segy/layout"
)

// TraceHeader is the 240-byte header preceding each trace's sample data.
//
// The eight coordinate fields (distances, elevations and water columns at
// bytes 36..68, positions at 72..88 and the two ensemble fields) pass
// through the coordinate format of the layout settings and are narrowed to
// int32. All other fields are fixed-width integers or codes.
type TraceHeader struct {
	TraceSequenceOnLine     int32
	TraceSequenceInFile     int32
	FieldRecordNo           int32
	TraceNo                 int32
	EnergySourcePointNo     int32
	EnsembleNo              int32
	TraceNoInEnsemble       int32
	TraceIdentificationCode format.TraceIDCode
	NoVSummedTraces         uint16
	NoHStackedTraces        uint16
	DataUse                 format.DataUse

	SourceToReceiverDistance      int32
	ElevationOfReceiverGroup      int32
	SurfaceElevationOfSource      int32
	SourceDepth                   int32
	DatumElevationOfReceiverGroup int32
	DatumElevationOfSource        int32
	WaterColumnHeightAtSource     int32
	WaterColumnHeightAtGroup      int32

	ElevationScalar  int16
	CoordinateScalar int16

	SourceX        int32
	SourceY        int32
	ReceiverGroupX int32
	ReceiverGroupY int32

	CoordinateUnits        format.CoordinateUnits
	WeatheringVelocity     uint16
	SubWeatheringVelocity  uint16
	UpholeTimeAtSource     uint16
	UpholeTimeAtGroup      uint16
	SourceStaticCorrection uint16
	GroupStaticCorrection  uint16
	TotalStaticApplied     uint16
	LagTimeA               uint16
	LagTimeB               uint16
	DelayRecordingTime     uint16
	MuteTimeStart          uint16
	MuteTimeEnd            uint16
	NoSamplesInTrace       uint16
	SampleIntervalOfTrace  uint16

	GainType               format.GainType
	InstrumentGainConstant uint16
	InstrumentInitialGain  uint16
	Correlated             format.CorrelatedDataTraces

	SweepFrequencyAtStart        uint16
	SweepFrequencyAtEnd          uint16
	SweepLength                  uint16
	SweepType                    format.SweepTypeCode
	SweepTraceTaperLengthAtStart uint16
	SweepTraceTaperLengthAtEnd   uint16
	TaperType                    format.TaperType

	AliasFilterFrequency uint16
	AliasFilterSlope     uint16
	NotchFilterFrequency uint16
	NotchFilterSlope     uint16
	LowCutFrequency      uint16
	HighCutFrequency     uint16
	LowCutSlope          uint16
	HighCutSlope         uint16

	YearRecorded   uint16
	DayOfYear      uint16
	HourOfDay      uint16
	MinuteOfHour   uint16
	SecondOfMinute uint16
	TimeBaseCode   format.TimeBasisCode

	TraceWeightingFactor                   uint16
	GeophoneGroupNumberRollPos1            uint16
	GeophoneGroupNumberFirstTraceOrigField uint16
	GeophoneGroupNumberLastTraceOrigField  uint16
	GapSize                                uint16
	OverTravel                             format.OverTravel

	XEnsemble   int32
	YEnsemble   int32
	InlineNo    int32
	CrosslineNo int32

	ShotPointNo               int32
	ShotPointScalar           uint16
	TraceValueMeasurementUnit format.TraceValueUnit

	TransductionConstantMantissa int32
	TransductionConstantPower    uint16
	TransductionUnits            format.TraceValueUnit

	TraceIdentifier       uint16
	TimeScalarTraceHeader uint16

	SourceType              format.SourceType
	SourceEnergyDirectionV  uint16
	SourceEnergyDirectionIL uint16
	SourceEnergyDirectionXL uint16

	SourceMeasurementMantissa int32
	SourceMeasurementExponent uint16
	SourceMeasurementUnit     format.SourceMeasurementUnit

	// TraceName is stored byte-reversed in big-endian files.
	TraceName [8]byte
}

// coordReader narrows decoded coordinate values to int32 the way the
// coordinate fields are stored.
type coordReader struct {
	dec    encoding.DecodeFunc
	format format.SampleFormatCode
}

func newCoordReader(set *layout.Settings, le bool) (*coordReader, error) {
	f, ok := set.CoordinateFormatOverride()
	if !ok {
		f = format.Int32
	}
	dec, err := encoding.Decoder(f, le)
	if err != nil {
		return nil, err
	}

	return &coordReader{dec: dec, format: f}, nil
}

func (c *coordReader) read(b []byte) (int32, error) {
	v, err := c.dec(b)
	if err != nil {
		return 0, err
	}
	t := math.Trunc(float64(v))
	if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
		return 0, &errs.FloatConversionError{Value: v, Format: c.format}
	}

	return int32(t), nil
}

// ParseTraceHeader reads a trace header from exactly 240 bytes. The binary
// header supplies the byte order. idx is the ordinal position of the trace
// in the file; depending on the settings it can be replaced by a header
// field and is used to derive the grid position when an x-dimension
// override is set.
func ParseTraceHeader(b []byte, bin *BinHeader, set *layout.Settings, idx int) (*TraceHeader, error) {
	if len(b) != TraceHeaderLen {
		return nil, &errs.TraceHeaderLengthError{Len: len(b)}
	}

	le := bin.LittleEndian
	e := endian.Engine(le)

	coords, err := newCoordReader(set, le)
	if err != nil {
		return nil, err
	}

	h := &TraceHeader{}

	h.TraceSequenceOnLine = endian.Int32(e, b[0:4])
	h.TraceSequenceInFile = endian.Int32(e, b[4:8])
	h.FieldRecordNo = endian.Int32(e, b[8:12])
	h.TraceNo = endian.Int32(e, b[12:16])
	h.EnergySourcePointNo = endian.Int32(e, b[16:20])
	h.EnsembleNo = endian.Int32(e, b[20:24])
	h.TraceNoInEnsemble = endian.Int32(e, b[24:28])

	if id, ok := set.TraceIDCodeOverride(); ok {
		h.TraceIdentificationCode = id
	} else {
		h.TraceIdentificationCode = format.ParseTraceIDCode(endian.Int16(e, b[28:30]))
	}
	h.NoVSummedTraces = e.Uint16(b[30:32])
	h.NoHStackedTraces = e.Uint16(b[32:34])
	h.DataUse = format.ParseDataUse(e.Uint16(b[34:36]))

	coordFields := []struct {
		dst *int32
		off int
	}{
		{&h.SourceToReceiverDistance, 36},
		{&h.ElevationOfReceiverGroup, 40},
		{&h.SurfaceElevationOfSource, 44},
		{&h.SourceDepth, 48},
		{&h.DatumElevationOfReceiverGroup, 52},
		{&h.DatumElevationOfSource, 56},
		{&h.WaterColumnHeightAtSource, 60},
		{&h.WaterColumnHeightAtGroup, 64},
		{&h.SourceX, 72},
		{&h.SourceY, 76},
		{&h.ReceiverGroupX, 80},
		{&h.ReceiverGroupY, 84},
		{&h.XEnsemble, set.XEnsembleByteIndex()},
		{&h.YEnsemble, set.YEnsembleByteIndex()},
	}
	for _, f := range coordFields {
		v, err := coords.read(b[f.off : f.off+4])
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	h.ElevationScalar = endian.Int16(e, b[68:70])
	if scaling, ok := set.CoordinateScalingOverride(); ok {
		h.CoordinateScalar = scaling
	} else {
		h.CoordinateScalar = endian.Int16(e, b[70:72])
	}

	h.CoordinateUnits = format.ParseCoordinateUnits(e.Uint16(b[88:90]))
	h.WeatheringVelocity = e.Uint16(b[90:92])
	h.SubWeatheringVelocity = e.Uint16(b[92:94])
	h.UpholeTimeAtSource = e.Uint16(b[94:96])
	h.UpholeTimeAtGroup = e.Uint16(b[96:98])
	h.SourceStaticCorrection = e.Uint16(b[98:100])
	h.GroupStaticCorrection = e.Uint16(b[100:102])
	h.TotalStaticApplied = e.Uint16(b[102:104])
	h.LagTimeA = e.Uint16(b[104:106])
	h.LagTimeB = e.Uint16(b[106:108])
	h.DelayRecordingTime = e.Uint16(b[108:110])
	h.MuteTimeStart = e.Uint16(b[110:112])
	h.MuteTimeEnd = e.Uint16(b[112:114])
	h.NoSamplesInTrace = e.Uint16(b[114:116])
	h.SampleIntervalOfTrace = e.Uint16(b[116:118])

	h.GainType = format.ParseGainType(e.Uint16(b[118:120]))
	h.InstrumentGainConstant = e.Uint16(b[120:122])
	h.InstrumentInitialGain = e.Uint16(b[122:124])
	h.Correlated = format.ParseCorrelatedDataTraces(e.Uint16(b[124:126]))

	h.SweepFrequencyAtStart = e.Uint16(b[126:128])
	h.SweepFrequencyAtEnd = e.Uint16(b[128:130])
	h.SweepLength = e.Uint16(b[130:132])
	h.SweepType = format.ParseSweepTypeCode(e.Uint16(b[132:134]))
	h.SweepTraceTaperLengthAtStart = e.Uint16(b[134:136])
	h.SweepTraceTaperLengthAtEnd = e.Uint16(b[136:138])
	h.TaperType = format.ParseTaperType(e.Uint16(b[138:140]))

	h.AliasFilterFrequency = e.Uint16(b[140:142])
	h.AliasFilterSlope = e.Uint16(b[142:144])
	h.NotchFilterFrequency = e.Uint16(b[144:146])
	h.NotchFilterSlope = e.Uint16(b[146:148])
	h.LowCutFrequency = e.Uint16(b[148:150])
	h.HighCutFrequency = e.Uint16(b[150:152])
	h.LowCutSlope = e.Uint16(b[152:154])
	h.HighCutSlope = e.Uint16(b[154:156])

	h.YearRecorded = e.Uint16(b[156:158])
	h.DayOfYear = e.Uint16(b[158:160])
	h.HourOfDay = e.Uint16(b[160:162])
	h.MinuteOfHour = e.Uint16(b[162:164])
	h.SecondOfMinute = e.Uint16(b[164:166])
	h.TimeBaseCode = format.ParseTimeBasisCode(e.Uint16(b[166:168]))

	h.TraceWeightingFactor = e.Uint16(b[168:170])
	h.GeophoneGroupNumberRollPos1 = e.Uint16(b[170:172])
	h.GeophoneGroupNumberFirstTraceOrigField = e.Uint16(b[172:174])
	h.GeophoneGroupNumberLastTraceOrigField = e.Uint16(b[174:176])
	h.GapSize = e.Uint16(b[176:178])
	h.OverTravel = format.ParseOverTravel(e.Uint16(b[178:180]))

	// The ordinal position can be taken from a header field instead of the
	// position in the file.
	switch set.OrderTraceBy() {
	case format.OrderTraceSequenceOnLine:
		idx = int(h.TraceSequenceOnLine)
	case format.OrderTraceSequenceInFile:
		idx = int(h.TraceSequenceInFile)
	case format.OrderFieldRecordNo:
		idx = int(h.FieldRecordNo)
	case format.OrderTraceNo:
		idx = int(h.TraceNo)
	case format.OrderTraceNoInEnsemble:
		idx = int(h.TraceNoInEnsemble)
	}

	// With an x-dimension override the grid position is derived from the
	// ordinal instead of the header. A y-dimension override alone changes
	// nothing here.
	if dimX, ok := set.DimX(); ok && dimX > 0 {
		h.InlineNo = int32(idx / int(dimX))
		h.CrosslineNo = int32(idx % int(dimX))
	} else {
		il := set.InlineByteIndex()
		xl := set.CrosslineByteIndex()
		h.InlineNo = endian.Int32(e, b[il:il+4])
		h.CrosslineNo = endian.Int32(e, b[xl:xl+4])
	}

	h.ShotPointNo = endian.Int32(e, b[196:200])
	h.ShotPointScalar = e.Uint16(b[200:202])
	h.TraceValueMeasurementUnit = format.ParseTraceValueUnit(endian.Int16(e, b[202:204]))
	h.TransductionConstantMantissa = endian.Int32(e, b[204:208])
	h.TransductionConstantPower = e.Uint16(b[208:210])
	h.TransductionUnits = format.ParseTraceValueUnit(endian.Int16(e, b[210:212]))
	h.TraceIdentifier = e.Uint16(b[212:214])
	h.TimeScalarTraceHeader = e.Uint16(b[214:216])
	h.SourceType = format.ParseSourceType(endian.Int16(e, b[216:218]))
	h.SourceEnergyDirectionV = e.Uint16(b[218:220])
	h.SourceEnergyDirectionIL = e.Uint16(b[220:222])
	h.SourceEnergyDirectionXL = e.Uint16(b[222:224])
	h.SourceMeasurementMantissa = endian.Int32(e, b[224:228])
	h.SourceMeasurementExponent = e.Uint16(b[228:230])
	h.SourceMeasurementUnit = format.ParseSourceMeasurementUnit(endian.Int16(e, b[230:232]))

	copy(h.TraceName[:], b[232:240])
	if !le {
		reverse(h.TraceName[:])
	}

	return h, nil
}

// BytesWithSettings serializes the header to 240 bytes. The geometry fields
// are written last at their configured byte indices, overwriting whatever
// was encoded there first; nothing guards against the four ranges
// overlapping each other or earlier fields.
func (h *TraceHeader) BytesWithSettings(set *layout.Settings, bin *BinHeader) ([]byte, error) {
	le := bin.LittleEndian
	e := endian.Engine(le)

	coordFormat, ok := set.CoordinateFormatOverride()
	if !ok {
		coordFormat = format.Int32
	}
	coordByter := func(v int32) ([]byte, error) {
		raw, err := encoding.EncodeSamples([]int32{v}, coordFormat, le)
		if err != nil {
			return nil, err
		}
		if len(raw) != 4 {
			return nil, errs.Conversionf("header coords should give 4 byte values, got %d", len(raw))
		}
		return raw, nil
	}

	b := make([]byte, TraceHeaderLen)

	endian.PutInt32(e, b[0:4], h.TraceSequenceOnLine)
	endian.PutInt32(e, b[4:8], h.TraceSequenceInFile)
	endian.PutInt32(e, b[8:12], h.FieldRecordNo)
	endian.PutInt32(e, b[12:16], h.TraceNo)
	endian.PutInt32(e, b[16:20], h.EnergySourcePointNo)
	endian.PutInt32(e, b[20:24], h.EnsembleNo)
	endian.PutInt32(e, b[24:28], h.TraceNoInEnsemble)
	endian.PutInt16(e, b[28:30], int16(h.TraceIdentificationCode))
	e.PutUint16(b[30:32], h.NoVSummedTraces)
	e.PutUint16(b[32:34], h.NoHStackedTraces)
	e.PutUint16(b[34:36], uint16(h.DataUse))

	coordFields := []struct {
		v   int32
		off int
	}{
		{h.SourceToReceiverDistance, 36},
		{h.ElevationOfReceiverGroup, 40},
		{h.SurfaceElevationOfSource, 44},
		{h.SourceDepth, 48},
		{h.DatumElevationOfReceiverGroup, 52},
		{h.DatumElevationOfSource, 56},
		{h.WaterColumnHeightAtSource, 60},
		{h.WaterColumnHeightAtGroup, 64},
		{h.SourceX, 72},
		{h.SourceY, 76},
		{h.ReceiverGroupX, 80},
		{h.ReceiverGroupY, 84},
	}
	for _, f := range coordFields {
		raw, err := coordByter(f.v)
		if err != nil {
			return nil, err
		}
		copy(b[f.off:f.off+4], raw)
	}

	endian.PutInt16(e, b[68:70], h.ElevationScalar)
	scalar := h.CoordinateScalar
	if override, ok := set.CoordinateScalingOverride(); ok {
		scalar = override
	}
	endian.PutInt16(e, b[70:72], scalar)

	e.PutUint16(b[88:90], uint16(h.CoordinateUnits))
	e.PutUint16(b[90:92], h.WeatheringVelocity)
	e.PutUint16(b[92:94], h.SubWeatheringVelocity)
	e.PutUint16(b[94:96], h.UpholeTimeAtSource)
	e.PutUint16(b[96:98], h.UpholeTimeAtGroup)
	e.PutUint16(b[98:100], h.SourceStaticCorrection)
	e.PutUint16(b[100:102], h.GroupStaticCorrection)
	e.PutUint16(b[102:104], h.TotalStaticApplied)
	e.PutUint16(b[104:106], h.LagTimeA)
	e.PutUint16(b[106:108], h.LagTimeB)
	e.PutUint16(b[108:110], h.DelayRecordingTime)
	e.PutUint16(b[110:112], h.MuteTimeStart)
	e.PutUint16(b[112:114], h.MuteTimeEnd)
	e.PutUint16(b[114:116], h.NoSamplesInTrace)
	e.PutUint16(b[116:118], h.SampleIntervalOfTrace)

	e.PutUint16(b[118:120], uint16(h.GainType))
	e.PutUint16(b[120:122], h.InstrumentGainConstant)
	e.PutUint16(b[122:124], h.InstrumentInitialGain)
	e.PutUint16(b[124:126], uint16(h.Correlated))

	e.PutUint16(b[126:128], h.SweepFrequencyAtStart)
	e.PutUint16(b[128:130], h.SweepFrequencyAtEnd)
	e.PutUint16(b[130:132], h.SweepLength)
	e.PutUint16(b[132:134], uint16(h.SweepType))
	e.PutUint16(b[134:136], h.SweepTraceTaperLengthAtStart)
	e.PutUint16(b[136:138], h.SweepTraceTaperLengthAtEnd)
	e.PutUint16(b[138:140], uint16(h.TaperType))

	e.PutUint16(b[140:142], h.AliasFilterFrequency)
	e.PutUint16(b[142:144], h.AliasFilterSlope)
	e.PutUint16(b[144:146], h.NotchFilterFrequency)
	e.PutUint16(b[146:148], h.NotchFilterSlope)
	e.PutUint16(b[148:150], h.LowCutFrequency)
	e.PutUint16(b[150:152], h.HighCutFrequency)
	e.PutUint16(b[152:154], h.LowCutSlope)
	e.PutUint16(b[154:156], h.HighCutSlope)

	e.PutUint16(b[156:158], h.YearRecorded)
	e.PutUint16(b[158:160], h.DayOfYear)
	e.PutUint16(b[160:162], h.HourOfDay)
	e.PutUint16(b[162:164], h.MinuteOfHour)
	e.PutUint16(b[164:166], h.SecondOfMinute)
	e.PutUint16(b[166:168], uint16(h.TimeBaseCode))

	e.PutUint16(b[168:170], h.TraceWeightingFactor)
	e.PutUint16(b[170:172], h.GeophoneGroupNumberRollPos1)
	e.PutUint16(b[172:174], h.GeophoneGroupNumberFirstTraceOrigField)
	e.PutUint16(b[174:176], h.GeophoneGroupNumberLastTraceOrigField)
	e.PutUint16(b[176:178], h.GapSize)
	e.PutUint16(b[178:180], uint16(h.OverTravel))

	endian.PutInt32(e, b[196:200], h.ShotPointNo)
	e.PutUint16(b[200:202], h.ShotPointScalar)
	endian.PutInt16(e, b[202:204], int16(h.TraceValueMeasurementUnit))
	endian.PutInt32(e, b[204:208], h.TransductionConstantMantissa)
	e.PutUint16(b[208:210], h.TransductionConstantPower)
	endian.PutInt16(e, b[210:212], int16(h.TransductionUnits))
	e.PutUint16(b[212:214], h.TraceIdentifier)
	e.PutUint16(b[214:216], h.TimeScalarTraceHeader)
	endian.PutInt16(e, b[216:218], int16(h.SourceType))
	e.PutUint16(b[218:220], h.SourceEnergyDirectionV)
	e.PutUint16(b[220:222], h.SourceEnergyDirectionIL)
	e.PutUint16(b[222:224], h.SourceEnergyDirectionXL)
	endian.PutInt32(e, b[224:228], h.SourceMeasurementMantissa)
	e.PutUint16(b[228:230], h.SourceMeasurementExponent)
	endian.PutInt16(e, b[230:232], int16(h.SourceMeasurementUnit))

	name := h.TraceName
	if !le {
		reverse(name[:])
	}
	copy(b[232:240], name[:])

	// The geometry fields go in last, at the configured byte indices.
	for _, f := range []struct {
		v   int32
		off int
	}{
		{h.XEnsemble, set.XEnsembleByteIndex()},
		{h.YEnsemble, set.YEnsembleByteIndex()},
	} {
		raw, err := coordByter(f.v)
		if err != nil {
			return nil, err
		}
		copy(b[f.off:f.off+4], raw)
	}
	il := set.InlineByteIndex()
	xl := set.CrosslineByteIndex()
	endian.PutInt32(e, b[il:il+4], h.InlineNo)
	endian.PutInt32(e, b[xl:xl+4], h.CrosslineNo)

	return b, nil
}

// AdjustSampleCount caps the per-trace sample count at the z-dimension
// when one is configured.
func (h *TraceHeader) AdjustSampleCount(set *layout.Settings) {
	if dimZ, ok := set.DimZ(); ok {
		h.NoSamplesInTrace = uint16(dimZ)
	}
}

// ReadableTraceName renders the trace name. Names starting with 'S' are
// taken as ASCII, anything else as EBCDIC. The name is truncated at the
// first NUL.
func (h *TraceHeader) ReadableTraceName() string {
	name := h.TraceName[:]
	if h.TraceName[0] != 'S' {
		name = ebcdic.BytesToASCII(name)
	}

	return trimAtNul(string(name))
}

// NewTraceHeader2D builds an otherwise empty header carrying a 2-D
// position. The coordinates must already be split into ensemble values and
// a scalar.
func NewTraceHeader2D(xEnsemble, yEnsemble int32, coordinateScalar int16) *TraceHeader {
	return &TraceHeader{
		XEnsemble:        xEnsemble,
		YEnsemble:        yEnsemble,
		CoordinateScalar: coordinateScalar,
	}
}

// NewTraceHeader3D builds an otherwise empty header carrying a full grid
// position.
func NewTraceHeader3D(xEnsemble, yEnsemble, inlineNo, crosslineNo int32, coordinateScalar int16) *TraceHeader {
	h := NewTraceHeader2D(xEnsemble, yEnsemble, coordinateScalar)
	h.InlineNo = inlineNo
	h.CrosslineNo = crosslineNo

	return h
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
