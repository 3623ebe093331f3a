package dcmread

/*
===============================================================================
    Value Representations
===============================================================================
*/

// UndefinedLength marks an element whose value is a sequence of nested
// items terminated by a delimiter, rather than a flat byte run.
// See ``7.1.1 Data Element Fields`` for more information
const UndefinedLength = 0xFFFFFFFF

// RecognisedVRs lists all recognised VRs.
// See ``6.2 Value Representation (VR)`` for more information
var RecognisedVRs = []string{
	"AE", "AS", "AT", "CS", "DA", "DS", "DT", "FL", "FD", "IS", "LO", "LT", "OB", "OD",
	"OF", "OL", "OW", "PN", "SH", "SL", "SQ", "SS", "ST", "TM", "UC", "UI", "UL", "UN",
	"UR", "US", "UT",
}

// IsRecognisedVR returns whether `vr` is in the recognised set
func IsRecognisedVR(vr string) bool {
	for _, candidate := range RecognisedVRs {
		if candidate == vr {
			return true
		}
	}
	return false
}

// isLongFormVR returns whether, in explicit VR mode, the VR is followed by
// two reserved bytes and a 32-bit length (as opposed to a 16-bit length)
func isLongFormVR(vr string) bool {
	switch vr {
	case "OB", "OD", "OF", "OL", "OW", "SQ", "UC", "UN", "UR", "UT":
		return true
	default:
		return false
	}
}

// IsCharacterStringVR returns whether the VR is of character string type
func IsCharacterStringVR(vr string) bool {
	switch vr {
	case "AE", "AS", "CS", "DA", "DS", "DT", "IS", "LO", "LT", "PN", "SH", "ST", "TM", "UC", "UI", "UR", "UT":
		return true
	default:
		return false
	}
}

// isStringRenderableVR returns whether values of the VR render to a
// meaningful standalone string: character strings and the fixed width
// binary numerics. Sequences and bulk binary VRs do not qualify.
func isStringRenderableVR(vr string) bool {
	switch vr {
	case "US", "SS", "UL", "SL", "FL", "FD", "AT":
		return true
	default:
		return IsCharacterStringVR(vr)
	}
}

// isCharsetSensitiveVR returns whether the VR's text may be encoded with
// the data set's Specific Character Set (as opposed to plain ASCII)
func isCharsetSensitiveVR(vr string) bool {
	switch vr {
	case "SH", "LO", "ST", "PN", "LT", "UC", "UT":
		return true
	default:
		return false
	}
}

// padCharForVR returns the mandated trailing pad character for the VR.
// UI values are padded to even length with NUL, other character strings
// with space.
func padCharForVR(vr string) byte {
	if vr == "UI" {
		return 0x00
	}
	return 0x20
}

// canHaveUndefinedLength returns whether the VR may legally declare an
// undefined length (nested items terminated by a delimiter)
func canHaveUndefinedLength(vr string) bool {
	switch vr {
	case "SQ", "OB", "OW", "UN":
		return true
	default:
		return false
	}
}
