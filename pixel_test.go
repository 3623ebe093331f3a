package dcmread

import (
	"testing"

	"github.com/alessandromagnani17/dcmread/dictionary"
	"github.com/stretchr/testify/assert"
)

// Utils

func usElement(tag dictionary.Tag, v uint16) Element {
	entry, _ := dictionary.LookupTag(tag)
	return Element{
		tag:     tag,
		vr:      "US",
		name:    entry.Name,
		data:    []byte{byte(v), byte(v >> 8)},
		datalen: 2,
	}
}

// geometryDataSet returns a data set with the given geometry plus a
// native pixel buffer of `pixelBytes` bytes
func geometryDataSet(rows, cols, bits uint16, pixelBytes int) *DataSet {
	ds := NewDataSet()
	ds.AddElement(usElement(dictionary.Rows, rows))
	ds.AddElement(usElement(dictionary.Columns, cols))
	ds.AddElement(usElement(dictionary.BitsAllocated, bits))
	ds.AddElement(Element{
		tag:     dictionary.PixelData,
		vr:      "OW",
		name:    "PixelData",
		data:    make([]byte, pixelBytes),
		datalen: uint32(pixelBytes),
	})
	return ds
}

func TestExtractPixels(t *testing.T) {
	// ensures that a correctly sized native pixel buffer is
	// extracted with its geometry.
	t.Parallel()
	ds := geometryDataSet(512, 512, 16, 512*512*2)
	pixels, err := ExtractPixels(ds)
	assert.NoError(t, err)
	assert.Equal(t, 512*512*2, len(pixels.Bytes))
	assert.Equal(t, uint16(512), pixels.Rows)
	assert.Equal(t, uint16(512), pixels.Columns)
	assert.Equal(t, uint16(16), pixels.BitsAllocated)
	// BitsStored defaults to BitsAllocated
	assert.Equal(t, uint16(16), pixels.BitsStored)
	assert.Equal(t, uint16(1), pixels.SamplesPerPixel)
	assert.Equal(t, 1, pixels.Frames)
}

func TestExtractPixelsSizeMismatch(t *testing.T) {
	// ensures that a buffer one byte short of the geometry is
	// rejected with the expected/actual sizes attached.
	t.Parallel()
	ds := geometryDataSet(512, 512, 16, 512*512*2-1)
	_, err := ExtractPixels(ds)
	assert.IsType(t, &SizeMismatch{}, err)
	mismatch := err.(*SizeMismatch)
	assert.Equal(t, 524288, mismatch.Expected)
	assert.Equal(t, 524287, mismatch.Actual)
}

func TestExtractPixelsMissing(t *testing.T) {
	// ensures that absence of (7FE0,0010) is reported as such.
	t.Parallel()
	ds := NewDataSet()
	ds.AddElement(usElement(dictionary.Rows, 512))
	_, err := ExtractPixels(ds)
	assert.IsType(t, &MissingPixelData{}, err)
}

func TestExtractPixelsMissingGeometry(t *testing.T) {
	// ensures that pixel data without geometry is rejected.
	t.Parallel()
	ds := NewDataSet()
	ds.AddElement(Element{
		tag:     dictionary.PixelData,
		vr:      "OW",
		name:    "PixelData",
		data:    make([]byte, 8),
		datalen: 8,
	})
	_, err := ExtractPixels(ds)
	assert.IsType(t, &MissingGeometry{}, err)

	// rows/columns present, bits allocated absent
	ds.AddElement(usElement(dictionary.Rows, 2))
	ds.AddElement(usElement(dictionary.Columns, 2))
	_, err = ExtractPixels(ds)
	assert.IsType(t, &MissingGeometry{}, err)
}

func TestExtractPixelsCompressed(t *testing.T) {
	// ensures that encapsulated transfer syntaxes are flagged as
	// unsupported, carrying the UID.
	t.Parallel()
	ds := geometryDataSet(512, 512, 16, 0)
	ds.TransferSyntax.SetFromUID("1.2.840.10008.1.2.4.50")
	_, err := ExtractPixels(ds)
	assert.IsType(t, &UnsupportedCompression{}, err)
	assert.Equal(t, "1.2.840.10008.1.2.4.50", err.(*UnsupportedCompression).UID)
}

func TestExtractPixelsFragments(t *testing.T) {
	// ensures that an undefined-length native pixel element has
	// its fragments concatenated before validation.
	t.Parallel()
	ds := NewDataSet()
	ds.AddElement(usElement(dictionary.Rows, 2))
	ds.AddElement(usElement(dictionary.Columns, 2))
	ds.AddElement(usElement(dictionary.BitsAllocated, 8))
	ds.AddElement(Element{
		tag:     dictionary.PixelData,
		vr:      "OW",
		name:    "PixelData",
		datalen: UndefinedLength,
		items: []Item{
			{unparsed: []byte{0x01, 0x02}},
			{unparsed: []byte{0x03, 0x04}},
		},
	})
	pixels, err := ExtractPixels(ds)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, pixels.Bytes)
}

func TestExtractPixelsMultiFrame(t *testing.T) {
	// ensures that NumberOfFrames scales the expected buffer size.
	t.Parallel()
	ds := geometryDataSet(4, 4, 8, 4*4*3)
	ds.AddElement(textElement(dictionary.NumberOfFrames, "IS", "3 "))
	pixels, err := ExtractPixels(ds)
	assert.NoError(t, err)
	assert.Equal(t, 3, pixels.Frames)

	// a bad frame count is rejected
	ds.AddElement(textElement(dictionary.NumberOfFrames, "IS", "x"))
	_, err = ExtractPixels(ds)
	assert.IsType(t, &InvalidLength{}, err)
}

func TestExtractPixelsSamplesPerPixel(t *testing.T) {
	// ensures that multi-sample (e.g. RGB) images scale the
	// expected buffer size.
	t.Parallel()
	ds := geometryDataSet(4, 4, 8, 4*4*3)
	ds.AddElement(usElement(dictionary.SamplesPerPixel, 3))
	pixels, err := ExtractPixels(ds)
	assert.NoError(t, err)
	assert.Equal(t, uint16(3), pixels.SamplesPerPixel)
}

func TestExtractPixelsBitsStoredExceedsAllocated(t *testing.T) {
	t.Parallel()
	ds := geometryDataSet(4, 4, 8, 4*4)
	ds.AddElement(usElement(dictionary.BitsStored, 12))
	_, err := ExtractPixels(ds)
	assert.IsType(t, &InvalidLength{}, err)
}

func TestExtractPixelsOddPadding(t *testing.T) {
	// ensures that the single even-length pad byte after an odd
	// geometry is tolerated.
	t.Parallel()
	ds := geometryDataSet(3, 3, 8, 10)
	pixels, err := ExtractPixels(ds)
	assert.NoError(t, err)
	assert.Equal(t, 9, len(pixels.Bytes))
}
