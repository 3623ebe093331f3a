package dcmread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	// ensures that each constructor yields its distinct type with
	// the formatted message attached.
	t.Parallel()
	assert.EqualError(t, NotDicomError("input of %d bytes", 10), "input of 10 bytes")
	assert.EqualError(t, TruncatedStreamError("at offset 0x%X", 0x20), "at offset 0x20")
	assert.EqualError(t, UnknownVRCodeError("%q", "ZZ"), `"ZZ"`)
	assert.EqualError(t, InvalidLengthError("len %d", -1), "len -1")
	assert.EqualError(t, NotFoundError("tag %s", "(0010,0010)"), "tag (0010,0010)")
	assert.EqualError(t, MissingPixelDataError("no pixels"), "no pixels")
	assert.EqualError(t, MissingGeometryError("no rows"), "no rows")
}

func TestUnsupportedCompressionCarriesUID(t *testing.T) {
	t.Parallel()
	err := UnsupportedCompressionError("1.2.840.10008.1.2.4.50")
	assert.Equal(t, "1.2.840.10008.1.2.4.50", err.UID)
	assert.Contains(t, err.Error(), "1.2.840.10008.1.2.4.50")
}

func TestSizeMismatchCarriesSizes(t *testing.T) {
	t.Parallel()
	err := SizeMismatchError(524288, 524287)
	assert.Equal(t, 524288, err.Expected)
	assert.Equal(t, 524287, err.Actual)
	assert.Contains(t, err.Error(), "524288")
	assert.Contains(t, err.Error(), "524287")
}
