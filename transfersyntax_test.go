package dcmread

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFromUID(t *testing.T) {
	// ensures that `SetFromUID` resolves the registered transfer
	// syntaxes to their encodings.
	t.Parallel()
	ts := TransferSyntax{}

	ts.SetFromUID("1.2.840.10008.1.2")
	assert.True(t, ts.Encoding.ImplicitVR)
	assert.True(t, ts.Encoding.LittleEndian)
	assert.False(t, ts.Compressed)

	ts.SetFromUID("1.2.840.10008.1.2.2")
	assert.False(t, ts.Encoding.ImplicitVR)
	assert.False(t, ts.Encoding.LittleEndian)
	assert.Equal(t, binary.BigEndian, ts.Encoding.ByteOrder())
}

func TestSetFromUIDEncapsulated(t *testing.T) {
	// ensures that the compressed (encapsulated) families are
	// flagged as such.
	t.Parallel()
	ts := TransferSyntax{}

	// JPEG Baseline
	ts.SetFromUID("1.2.840.10008.1.2.4.50")
	assert.True(t, ts.Compressed)
	assert.False(t, ts.Encoding.ImplicitVR)
	assert.True(t, ts.Encoding.LittleEndian)

	// RLE Lossless
	ts.SetFromUID("1.2.840.10008.1.2.5")
	assert.True(t, ts.Compressed)
}

func TestSetFromUIDUnrecognised(t *testing.T) {
	// ensures that an unrecognised UID falls back to explicit VR
	// little endian.
	t.Parallel()
	ts := TransferSyntax{}
	ts.SetFromUID("1.2.3.4.5.6.7.8")
	assert.False(t, ts.Encoding.ImplicitVR)
	assert.True(t, ts.Encoding.LittleEndian)
	assert.False(t, ts.Compressed)
}

func TestEncodingString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ImplicitVR + LittleEndian", Encoding{ImplicitVR: true, LittleEndian: true}.String())
	assert.Equal(t, "ExplicitVR + BigEndian", Encoding{}.String())
}

func TestGuessEncodingFromBytes(t *testing.T) {
	// ensures that the heuristic classifies the leading six bytes
	// of a meta-less input.
	t.Parallel()

	// (0008,0005) followed by "CS": explicit VR little endian
	encoding, err := guessEncodingFromBytes([]byte{0x08, 0x00, 0x05, 0x00, 'C', 'S'})
	assert.NoError(t, err)
	assert.False(t, encoding.ImplicitVR)
	assert.True(t, encoding.LittleEndian)

	// (0008,0005) followed by a 32 bit length: implicit VR little endian
	encoding, err = guessEncodingFromBytes([]byte{0x08, 0x00, 0x05, 0x00, 0x0A, 0x00})
	assert.NoError(t, err)
	assert.True(t, encoding.ImplicitVR)
	assert.True(t, encoding.LittleEndian)

	// group 0x0800 decoded little endian: likely big endian
	encoding, err = guessEncodingFromBytes([]byte{0x08, 0x10, 0x00, 0x05, 0x00, 0x00})
	assert.NoError(t, err)
	assert.False(t, encoding.LittleEndian)

	// pixel data group stays little endian despite its high value
	encoding, err = guessEncodingFromBytes([]byte{0xE0, 0x7F, 0x10, 0x00, 'O', 'W'})
	assert.NoError(t, err)
	assert.True(t, encoding.LittleEndian)
	assert.False(t, encoding.ImplicitVR)
}

func TestGuessEncodingFromBytesError(t *testing.T) {
	// ensures that the error condition of `guessEncodingFromBytes`
	// responds correctly.
	t.Parallel()
	_, err := guessEncodingFromBytes([]byte{0x08, 0x00})
	assert.IsType(t, &InvalidLength{}, err)
}
