package format

// TraceIDCode is bytes 28..30 of the trace header (signed). It identifies
// what kind of recording the trace holds.
type TraceIDCode int16

const (
	TraceIDOther                        TraceIDCode = -1
	TraceIDUnknown                      TraceIDCode = 0
	TraceIDTimeDomainSeismic            TraceIDCode = 1
	TraceIDDead                         TraceIDCode = 2
	TraceIDDummy                        TraceIDCode = 3
	TraceIDTimeBreak                    TraceIDCode = 4
	TraceIDUphole                       TraceIDCode = 5
	TraceIDSweep                        TraceIDCode = 6
	TraceIDTiming                       TraceIDCode = 7
	TraceIDWaterbreak                   TraceIDCode = 8
	TraceIDNearFieldGunSig              TraceIDCode = 9
	TraceIDFarFieldGunSig               TraceIDCode = 10
	TraceIDSeismicPressureSensor        TraceIDCode = 11
	TraceIDMulticomponentVertical       TraceIDCode = 12
	TraceIDMulticomponentCrossLine      TraceIDCode = 13
	TraceIDMulticomponentInLine         TraceIDCode = 14
	TraceIDRotatedVertical              TraceIDCode = 15
	TraceIDRotatedTransverse            TraceIDCode = 16
	TraceIDRotatedRadial                TraceIDCode = 17
	TraceIDVibratorReactionMass         TraceIDCode = 18
	TraceIDVibratorBaseplate            TraceIDCode = 19
	TraceIDVibratorEstimatedGroundForce TraceIDCode = 20
	TraceIDVibratorReference            TraceIDCode = 21
	TraceIDTimeVelocityPairs            TraceIDCode = 22
	TraceIDTimeDepthPairs               TraceIDCode = 23
	TraceIDDepthVelocityPairs           TraceIDCode = 24
	TraceIDDepthDomainSeismic           TraceIDCode = 25
	TraceIDGravityPotential             TraceIDCode = 26
	TraceIDEFVertical                   TraceIDCode = 27
	TraceIDEFCrossLine                  TraceIDCode = 28
	TraceIDEFInLine                     TraceIDCode = 29
	TraceIDRotatedEFVertical            TraceIDCode = 30
	TraceIDRotatedEFTransverse          TraceIDCode = 31
	TraceIDRotatedEFRadial              TraceIDCode = 32
	TraceIDMFVertical                   TraceIDCode = 33
	TraceIDMFCrossLine                  TraceIDCode = 34
	TraceIDMFInLine                     TraceIDCode = 35
	TraceIDRotatedMFVertical            TraceIDCode = 36
	TraceIDRotatedMFTransverse          TraceIDCode = 37
	TraceIDRotatedMFRadial              TraceIDCode = 38
	TraceIDRotatedSensorPitch           TraceIDCode = 39
	TraceIDRotatedSensorRoll            TraceIDCode = 40
	TraceIDRotatedSensorYaw             TraceIDCode = 41
	TraceIDInvalid                      TraceIDCode = 42
)

func ParseTraceIDCode(code int16) TraceIDCode {
	if code >= -1 && code <= 41 {
		return TraceIDCode(code)
	}
	return TraceIDInvalid
}

var traceIDNames = map[TraceIDCode]string{
	TraceIDOther:                        "Other",
	TraceIDUnknown:                      "Unknown",
	TraceIDTimeDomainSeismic:            "TimeDomainSeismic",
	TraceIDDead:                         "Dead",
	TraceIDDummy:                        "Dummy",
	TraceIDTimeBreak:                    "TimeBreak",
	TraceIDUphole:                       "Uphole",
	TraceIDSweep:                        "Sweep",
	TraceIDTiming:                       "Timing",
	TraceIDWaterbreak:                   "Waterbreak",
	TraceIDNearFieldGunSig:              "NearFieldGunSig",
	TraceIDFarFieldGunSig:               "FarFieldGunSig",
	TraceIDSeismicPressureSensor:        "SeismicPressureSensor",
	TraceIDMulticomponentVertical:       "MulticomponentVertical",
	TraceIDMulticomponentCrossLine:      "MulticomponentCrossLine",
	TraceIDMulticomponentInLine:         "MulticomponentInLine",
	TraceIDRotatedVertical:              "RotatedVertical",
	TraceIDRotatedTransverse:            "RotatedTransverse",
	TraceIDRotatedRadial:                "RotatedRadial",
	TraceIDVibratorReactionMass:         "VibratorReactionMass",
	TraceIDVibratorBaseplate:            "VibratorBaseplate",
	TraceIDVibratorEstimatedGroundForce: "VibratorEstimatedGroundForce",
	TraceIDVibratorReference:            "VibratorReference",
	TraceIDTimeVelocityPairs:            "TimeVelocityPairs",
	TraceIDTimeDepthPairs:               "TimeDepthPairs",
	TraceIDDepthVelocityPairs:           "DepthVelocityPairs",
	TraceIDDepthDomainSeismic:           "DepthDomainSeismic",
	TraceIDGravityPotential:             "GravityPotential",
	TraceIDEFVertical:                   "EFVertical",
	TraceIDEFCrossLine:                  "EFCrossLine",
	TraceIDEFInLine:                     "EFInLine",
	TraceIDRotatedEFVertical:            "RotatedEFVertical",
	TraceIDRotatedEFTransverse:          "RotatedEFTransverse",
	TraceIDRotatedEFRadial:              "RotatedEFRadial",
	TraceIDMFVertical:                   "MFVertical",
	TraceIDMFCrossLine:                  "MFCrossLine",
	TraceIDMFInLine:                     "MFInLine",
	TraceIDRotatedMFVertical:            "RotatedMFVertical",
	TraceIDRotatedMFTransverse:          "RotatedMFTransverse",
	TraceIDRotatedMFRadial:              "RotatedMFRadial",
	TraceIDRotatedSensorPitch:           "RotatedSensorPitch",
	TraceIDRotatedSensorRoll:            "RotatedSensorRoll",
	TraceIDRotatedSensorYaw:             "RotatedSensorYaw",
}

func (c TraceIDCode) String() string {
	if s, ok := traceIDNames[c]; ok {
		return s
	}
	return "Invalid"
}
