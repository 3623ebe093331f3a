package dcmread

import "encoding/binary"

/*
===============================================================================
    Cursor
===============================================================================
*/

// Cursor provides bounds-checked, sequential access to an in-memory byte
// buffer. The buffer is never mutated; each read advances an internal
// position. Byte order is supplied per call, since the meta section of a
// dicom file is always little endian while the main data set follows the
// declared transfer syntax.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a fresh Cursor positioned at the start of `buf`
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Position returns the current buffer position
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// ReadUint16 retrieves a uint16 (two bytes) from the buffer
func (c *Cursor) ReadUint16(order binary.ByteOrder) (uint16, error) {
	if c.Remaining() < 2 {
		return 0, TruncatedStreamError("ReadUint16 (offset 0x%X): %d byte(s) remaining", c.pos, c.Remaining())
	}
	v := order.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadUint32 retrieves a uint32 (four bytes) from the buffer
func (c *Cursor) ReadUint32(order binary.ByteOrder) (uint32, error) {
	if c.Remaining() < 4 {
		return 0, TruncatedStreamError("ReadUint32 (offset 0x%X): %d byte(s) remaining", c.pos, c.Remaining())
	}
	v := order.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadBytes retrieves `num` bytes from the buffer into a fresh slice.
// The remaining-bytes check runs before the allocation, so a corrupt
// length field cannot trigger an allocation larger than the input.
func (c *Cursor) ReadBytes(num int) ([]byte, error) {
	if num < 0 {
		return nil, InvalidLengthError("ReadBytes(%d): negative length", num)
	}
	if num == 0 {
		return []byte{}, nil
	}
	if c.Remaining() < num {
		return nil, TruncatedStreamError("ReadBytes(%d) (offset 0x%X): would exceed buffer size (%d bytes remaining)", num, c.pos, c.Remaining())
	}
	buf := make([]byte, num)
	copy(buf, c.buf[c.pos:])
	c.pos += num
	return buf, nil
}

// Peek returns the next `num` bytes without advancing the position.
// The returned slice aliases the underlying buffer and must not be retained.
func (c *Cursor) Peek(num int) ([]byte, error) {
	if c.Remaining() < num {
		return nil, TruncatedStreamError("Peek(%d) (offset 0x%X): %d byte(s) remaining", num, c.pos, c.Remaining())
	}
	return c.buf[c.pos : c.pos+num], nil
}

// Skip fast-forwards the position by `num` bytes
func (c *Cursor) Skip(num int) error {
	if c.Remaining() < num {
		return TruncatedStreamError("Skip(%d) (offset 0x%X): would exceed buffer size (%d bytes remaining)", num, c.pos, c.Remaining())
	}
	c.pos += num
	return nil
}
