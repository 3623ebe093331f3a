package dcmread

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewElementWriter(t *testing.T) {
	// ensures that a fresh ElementWriter defaults to
	// Implicit VR, Little Endian.
	t.Parallel()
	elw := NewElementWriter(&bytes.Buffer{})
	assert.True(t, elw.IsImplicitVR())
	assert.True(t, elw.IsLittleEndian())
}

func TestWriteElementRoundTripExplicit(t *testing.T) {
	// ensures that decoding then re-encoding a short-form explicit
	// element reproduces the source bytes.
	t.Parallel()
	src := []byte{
		0x08, 0x00, 0x60, 0x00, // (0008,0060) Tag
		'C', 'S', // VR
		0x02, 0x00, // Length: 2 bytes
		'C', 'T', // Data
	}
	_, elr := newTestReader(src, false, true)
	e := NewElement()
	assert.NoError(t, elr.ReadElement(&e))

	out := bytes.Buffer{}
	elw := NewElementWriter(&out)
	elw.SetImplicitVR(false)
	assert.NoError(t, elw.WriteElement(e))
	assert.Equal(t, src, out.Bytes())
}

func TestWriteElementRoundTripLongForm(t *testing.T) {
	// ensures that long-form explicit elements reproduce their
	// reserved bytes and 32 bit length.
	t.Parallel()
	src := []byte{
		0xE0, 0x7F, 0x10, 0x00, // (7FE0,0010) Tag
		'O', 'B', // VR
		0x00, 0x00, // Reserved
		0x04, 0x00, 0x00, 0x00, // Length: 4 bytes
		0x01, 0x02, 0x03, 0x04, // Data
	}
	_, elr := newTestReader(src, false, true)
	e := NewElement()
	assert.NoError(t, elr.ReadElement(&e))

	out := bytes.Buffer{}
	elw := NewElementWriter(&out)
	elw.SetImplicitVR(false)
	assert.NoError(t, elw.WriteElement(e))
	assert.Equal(t, src, out.Bytes())
}

func TestWriteElementRoundTripImplicit(t *testing.T) {
	t.Parallel()
	src := []byte{
		0x28, 0x00, 0x10, 0x00, // (0028,0010) Tag
		0x02, 0x00, 0x00, 0x00, // Length: 2 bytes
		0x00, 0x02, // Data: 512
	}
	_, elr := newTestReader(src, true, true)
	e := NewElement()
	assert.NoError(t, elr.ReadElement(&e))

	out := bytes.Buffer{}
	elw := NewElementWriter(&out)
	assert.NoError(t, elw.WriteElement(e))
	assert.Equal(t, src, out.Bytes())
}

func TestWriteElementBigEndian(t *testing.T) {
	// ensures that the byte ordering toggle affects tag and
	// length encoding.
	t.Parallel()
	src := []byte{
		0x00, 0x28, 0x00, 0x10, // (0028,0010) Tag
		'U', 'S', // VR
		0x00, 0x02, // Length: 2 bytes
		0x02, 0x00, // Data
	}
	_, elr := newTestReader(src, false, false)
	e := NewElement()
	assert.NoError(t, elr.ReadElement(&e))

	out := bytes.Buffer{}
	elw := NewElementWriter(&out)
	elw.SetEncoding(Encoding{ImplicitVR: false, LittleEndian: false})
	assert.False(t, elw.IsLittleEndian())
	assert.NoError(t, elw.WriteElement(e))
	assert.Equal(t, src, out.Bytes())
}

func TestWriteElementUndefinedLengthUnsupported(t *testing.T) {
	// ensures that containers which lost their source layout are
	// refused rather than written corrupt.
	t.Parallel()
	elw := NewElementWriter(&bytes.Buffer{})
	e := Element{datalen: UndefinedLength}
	assert.Error(t, elw.WriteElement(e))
}
