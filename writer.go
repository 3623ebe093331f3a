package dcmread

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/b71729/bin"
)

/*
===============================================================================
    ElementWriter
===============================================================================
*/

// ElementWriter extends `bin.Writer` to export methods to assist in
// encoding DICOM Elements, i.e. "WriteElement".
type ElementWriter struct {
	bw       bin.Writer
	implicit bool
	vrb      [2]byte
	err      error
}

// NewElementWriter returns a fresh ElementWriter set up to write to `dest`.
//
// For futureproofing, it is suggested to use these constructors rather than
// manually creating an instance (i.e. `elw := ElementWriter{}`)
func NewElementWriter(dest io.Writer) ElementWriter {
	ew := ElementWriter{
		bw: bin.NewWriter(dest, binary.LittleEndian),
	}
	// ElementWriter defaults to Implicit VR Little Endian: Default Transfer Syntax for DICOM
	ew.SetImplicitVR(true)
	ew.SetLittleEndian(true)
	return ew
}

// IsLittleEndian returns whether this ElementWriter is set to encode
// data according to Little Endian byte ordering.
func (elw *ElementWriter) IsLittleEndian() bool {
	return elw.bw.GetByteOrder() == binary.LittleEndian
}

// SetLittleEndian sets whether this ElementWriter should encode
// data according to Little Endian byte ordering.
func (elw *ElementWriter) SetLittleEndian(isLittleEndian bool) {
	if isLittleEndian {
		elw.bw.SetByteOrder(binary.LittleEndian)
	} else {
		elw.bw.SetByteOrder(binary.BigEndian)
	}
}

// IsImplicitVR returns whether this ElementWriter is set to encode
// data according to the VR component being implicitly defined
func (elw *ElementWriter) IsImplicitVR() bool {
	return elw.implicit
}

// SetImplicitVR sets whether this ElementWriter should encode
// data according to the VR component being implicitly defined
func (elw *ElementWriter) SetImplicitVR(isImplicitVR bool) {
	elw.implicit = isImplicitVR
}

// SetEncoding applies both components of `encoding` at once
func (elw *ElementWriter) SetEncoding(encoding Encoding) {
	elw.SetImplicitVR(encoding.ImplicitVR)
	elw.SetLittleEndian(encoding.LittleEndian)
}

// writeElementTag attempts to write the "Tag" component of `src`
//
// Should be careful calling this, as it assumes specific Writer offset.
func (elw *ElementWriter) writeElementTag(src Element) error {
	if elw.err = elw.bw.WriteUint16(src.GetTag().Group()); elw.err != nil {
		return elw.err
	}
	return elw.bw.WriteUint16(src.GetTag().Element())
}

// writeElementVR attempts to write the "VR" component of `src`
//
// Should be careful calling this, as it assumes specific Writer offset.
func (elw *ElementWriter) writeElementVR(src Element) error {
	if !elw.IsImplicitVR() {
		elw.vrb[0] = src.GetVR()[0]
		elw.vrb[1] = src.GetVR()[1]
		return elw.bw.WriteBytes(elw.vrb[:])
	}
	return nil
}

// writeElementLength attempts to write the "Length" component of `src`
//
// Should be careful calling this, as it assumes specific Writer offset.
func (elw *ElementWriter) writeElementLength(src Element) error {
	if elw.IsImplicitVR() {
		// ImplicitVR: all length definitions are 32 bits
		return elw.bw.WriteUint32(src.datalen)
	}
	if isLongFormVR(src.GetVR()) {
		// two reserved bytes, then the length is 32 bits
		if elw.err = elw.bw.ZeroFill(2); elw.err != nil {
			return elw.err
		}
		return elw.bw.WriteUint32(src.datalen)
	}
	return elw.bw.WriteUint16(uint16(src.datalen))
}

// writeElementData attempts to write the "Data" component of `src`
//
// Should be careful calling this, as it assumes specific Writer offset.
func (elw *ElementWriter) writeElementData(src Element) error {
	return elw.bw.WriteBytes(src.data)
}

// WriteElement attempts to completely write `src`
//
// Undefined-length containers and parsed sequences do not retain their
// source byte layout and cannot be re-encoded.
func (elw *ElementWriter) WriteElement(src Element) error {
	if src.IsUndefinedLength() || src.HasItems() {
		return errors.New("unsupported")
	}

	// write tag
	if elw.err = elw.writeElementTag(src); elw.err != nil {
		return elw.err
	}

	// write vr
	if elw.err = elw.writeElementVR(src); elw.err != nil {
		return elw.err
	}

	// write length
	if elw.err = elw.writeElementLength(src); elw.err != nil {
		return elw.err
	}

	// write contents
	return elw.writeElementData(src)
}
