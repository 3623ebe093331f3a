package dcmread

import "fmt"

/*
===============================================================================
    Error Types
===============================================================================
*/

// NotDicom is an error indicating that the input is not recognised as a
// valid dicom (missing "DICM" magic at byte 128)
type NotDicom struct {
	error
}

// TruncatedStream is an error indicating that a declared length exceeds
// the number of bytes remaining in the buffer
type TruncatedStream struct {
	error
}

// UnknownVRCode is an error indicating that an explicit-VR element declared
// a VR code outside the recognised set
type UnknownVRCode struct {
	error
}

// InvalidLength is an error indicating that an element declared a length
// which is not valid for its VR
type InvalidLength struct {
	error
}

// NotFound is an error indicating that a tag (or tag name) is absent
type NotFound struct {
	error
}

// MissingPixelData is an error indicating that the data set carries no
// PixelData (7FE0,0010) element
type MissingPixelData struct {
	error
}

// MissingGeometry is an error indicating that one of Rows, Columns or
// BitsAllocated is absent, so pixel data cannot be interpreted
type MissingGeometry struct {
	error
}

// UnsupportedCompression is an error indicating that the pixel data is
// encoded with a compressed transfer syntax, which this package detects
// but does not decode
type UnsupportedCompression struct {
	error
	// UID is the transfer syntax UID that declared the compression
	UID string
}

// SizeMismatch is an error indicating that the native pixel data byte
// length does not match the length implied by the image geometry
type SizeMismatch struct {
	error
	Expected int
	Actual   int
}

// NotDicomError raises a `NotDicom` error
func NotDicomError(format string, a ...interface{}) *NotDicom {
	return &NotDicom{fmt.Errorf(format, a...)}
}

// TruncatedStreamError raises a `TruncatedStream` error
func TruncatedStreamError(format string, a ...interface{}) *TruncatedStream {
	return &TruncatedStream{fmt.Errorf(format, a...)}
}

// UnknownVRCodeError raises an `UnknownVRCode` error
func UnknownVRCodeError(format string, a ...interface{}) *UnknownVRCode {
	return &UnknownVRCode{fmt.Errorf(format, a...)}
}

// InvalidLengthError raises an `InvalidLength` error
func InvalidLengthError(format string, a ...interface{}) *InvalidLength {
	return &InvalidLength{fmt.Errorf(format, a...)}
}

// NotFoundError raises a `NotFound` error
func NotFoundError(format string, a ...interface{}) *NotFound {
	return &NotFound{fmt.Errorf(format, a...)}
}

// MissingPixelDataError raises a `MissingPixelData` error
func MissingPixelDataError(format string, a ...interface{}) *MissingPixelData {
	return &MissingPixelData{fmt.Errorf(format, a...)}
}

// MissingGeometryError raises a `MissingGeometry` error
func MissingGeometryError(format string, a ...interface{}) *MissingGeometry {
	return &MissingGeometry{fmt.Errorf(format, a...)}
}

// UnsupportedCompressionError raises an `UnsupportedCompression` error for
// the given transfer syntax UID
func UnsupportedCompressionError(uid string) *UnsupportedCompression {
	return &UnsupportedCompression{
		fmt.Errorf("pixel data uses compressed transfer syntax %s", uid),
		uid,
	}
}

// SizeMismatchError raises a `SizeMismatch` error
func SizeMismatchError(expected, actual int) *SizeMismatch {
	return &SizeMismatch{
		fmt.Errorf("pixel data length mismatch: expected %d bytes, got %d", expected, actual),
		expected,
		actual,
	}
}
