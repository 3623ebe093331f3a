package dcmread

import (
	"encoding/binary"
	"fmt"
	"strings"
)

/*
===============================================================================
    `TransferSyntax`: Support For Multiple Transfer Syntaxes
===============================================================================
*/

// Encoding represents the expected encoding of dicom attributes.
// See transferSyntaxToEncodingMap.
type Encoding struct {
	ImplicitVR   bool
	LittleEndian bool
}

func (e Encoding) String() string {
	var implicitness = "ImplicitVR"
	var endian = "LittleEndian"
	if !e.ImplicitVR {
		implicitness = "ExplicitVR"
	}
	if !e.LittleEndian {
		endian = "BigEndian"
	}
	return fmt.Sprintf("%s + %s", implicitness, endian)
}

// ByteOrder returns the `binary.ByteOrder` matching the encoding
func (e Encoding) ByteOrder() binary.ByteOrder {
	if e.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// TransferSyntax links a transfer syntax UID with its encoding and
// whether its pixel data is stored in encapsulated (compressed) form.
// Once decoded from (0002,0010) it applies uniformly to the whole of the
// main data set.
type TransferSyntax struct {
	UID        string
	Encoding   Encoding
	Compressed bool
}

// transferSyntaxToEncodingMap provides a mapping between transfer syntax UID and encoding
// I couldn't find this mapping in the NEMA documents.
var transferSyntaxToEncodingMap = map[string]Encoding{
	"1.2.840.10008.1.2":      {ImplicitVR: true, LittleEndian: true},
	"1.2.840.10008.1.2.1":    {ImplicitVR: false, LittleEndian: true},
	"1.2.840.10008.1.2.1.99": {ImplicitVR: false, LittleEndian: true},
	"1.2.840.10008.1.2.2":    {ImplicitVR: false, LittleEndian: false},
}

// isEncapsulated returns whether the UID declares encapsulated
// (compressed) pixel data. The 1.2.840.10008.1.2.4.* family covers the
// JPEG variants and MPEG; 1.2.840.10008.1.2.5 is RLE.
func isEncapsulated(uid string) bool {
	return strings.HasPrefix(uid, "1.2.840.10008.1.2.4.") || uid == "1.2.840.10008.1.2.5"
}

// SetFromUID sets the encoding and compression flag from `uid`.
// Encapsulated syntaxes always use explicit VR little endian; an entirely
// unrecognised UID falls back to the same default.
func (ts *TransferSyntax) SetFromUID(uid string) {
	ts.UID = uid
	ts.Compressed = isEncapsulated(uid)
	if encoding, found := transferSyntaxToEncodingMap[uid]; found {
		ts.Encoding = encoding
		return
	}
	ts.Encoding = transferSyntaxToEncodingMap["1.2.840.10008.1.2.1"] // fallback (default)
}

// guessEncodingFromBytes is a heuristic for determining the in-use encoding
// when a file carries no meta information group:
// 1. Try to interpret the first six bytes as tag + VR, Little Endian
// 2. If bytes zero to two decode > 2000, it's most likely Big Endian
// 3. If bytes four to six match a VR string, it's most likely Explicit VR
// `buf` should be of length six.
func guessEncodingFromBytes(buf []byte) (encoding Encoding, err error) {
	if len(buf) != 6 {
		return encoding, InvalidLengthError("guessEncodingFromBytes: need six bytes, got %d", len(buf))
	}
	firstTwoLE := binary.LittleEndian.Uint16(buf[0:2])
	encoding.LittleEndian = firstTwoLE < 2000 || firstTwoLE == 0x7FE0
	encoding.ImplicitVR = !IsRecognisedVR(string(buf[4:6]))
	return encoding, nil
}
