package dcmread

import (
	"strconv"
	"strings"

	"github.com/alessandromagnani17/dcmread/dictionary"
)

/*
===============================================================================
    Pixel Extraction
===============================================================================
*/

// PixelDescriptor carries the image geometry elements needed to
// interpret PixelData(7FE0,0010)
type PixelDescriptor struct {
	Rows                uint16
	Columns             uint16
	BitsAllocated       uint16
	BitsStored          uint16
	SamplesPerPixel     uint16
	PlanarConfiguration uint16
	PixelRepresentation uint16
	Frames              int
}

// BytesPerSample returns the container width of one sample in bytes
func (pd *PixelDescriptor) BytesPerSample() int {
	return (int(pd.BitsAllocated) + 7) / 8
}

// ExpectedSize returns the byte size an uncompressed pixel buffer
// matching this descriptor must have
func (pd *PixelDescriptor) ExpectedSize() int {
	return int(pd.Rows) * int(pd.Columns) * int(pd.SamplesPerPixel) * pd.BytesPerSample() * pd.Frames
}

// PixelData is an extracted, validated, uncompressed pixel buffer
type PixelData struct {
	Bytes           []byte
	Rows            uint16
	Columns         uint16
	BitsAllocated   uint16
	BitsStored      uint16
	SamplesPerPixel uint16
	Frames          int
}

// describePixels assembles a PixelDescriptor from the geometry elements
// of `ds`. Rows, Columns and BitsAllocated are required; SamplesPerPixel
// defaults to 1, BitsStored to BitsAllocated, and NumberOfFrames to 1.
func describePixels(ds *DataSet) (PixelDescriptor, error) {
	pd := PixelDescriptor{}

	if !ds.HasElement(dictionary.Rows) || !ds.HasElement(dictionary.Columns) {
		return pd, MissingGeometryError("data set carries no Rows(0028,0010) / Columns(0028,0011)")
	}
	if !ds.HasElement(dictionary.BitsAllocated) {
		return pd, MissingGeometryError("data set carries no BitsAllocated(0028,0100)")
	}

	pd.Rows = ds.Uint16(dictionary.Rows, 0)
	pd.Columns = ds.Uint16(dictionary.Columns, 0)
	pd.BitsAllocated = ds.Uint16(dictionary.BitsAllocated, 0)
	pd.BitsStored = ds.Uint16(dictionary.BitsStored, pd.BitsAllocated)
	pd.SamplesPerPixel = ds.Uint16(dictionary.SamplesPerPixel, 1)
	pd.PlanarConfiguration = ds.Uint16(dictionary.PlanarConfiguration, 0)
	pd.PixelRepresentation = ds.Uint16(dictionary.PixelRepresentation, 0)

	pd.Frames = 1
	if framestr, found := ds.AsString(dictionary.NumberOfFrames); found {
		frames, err := strconv.Atoi(strings.TrimSpace(framestr))
		if err != nil || frames < 1 {
			return pd, InvalidLengthError("NumberOfFrames(0028,0008) = %q is not a positive integer", framestr)
		}
		pd.Frames = frames
	}

	if pd.BitsAllocated == 0 || pd.Rows == 0 || pd.Columns == 0 {
		return pd, MissingGeometryError("geometry %dx%d with %d bits allocated describes an empty image", pd.Rows, pd.Columns, pd.BitsAllocated)
	}
	if pd.BitsStored > pd.BitsAllocated {
		return pd, InvalidLengthError("BitsStored (%d) exceeds BitsAllocated (%d)", pd.BitsStored, pd.BitsAllocated)
	}
	return pd, nil
}

// ExtractPixels extracts the uncompressed pixel buffer from `ds`,
// validating it against the data set's image geometry.
//
// Compressed (encapsulated) transfer syntaxes are not decoded; those
// return an UnsupportedCompression carrying the transfer syntax UID.
// An undefined-length native pixel element has its fragments
// concatenated before validation.
func ExtractPixels(ds *DataSet) (*PixelData, error) {
	e := Element{}
	if !ds.GetElement(dictionary.PixelData, &e) {
		return nil, MissingPixelDataError("data set carries no PixelData(7FE0,0010)")
	}

	pd, err := describePixels(ds)
	if err != nil {
		return nil, err
	}

	if ds.TransferSyntax.Compressed {
		return nil, UnsupportedCompressionError(ds.TransferSyntax.UID)
	}

	buffer := e.GetDataBytes()
	if e.IsUndefinedLength() {
		// native but undefined length: fragments form the buffer
		total := 0
		for i := range e.GetItems() {
			total += len(e.GetItems()[i].GetUnparsed())
		}
		buffer = make([]byte, 0, total)
		for i := range e.GetItems() {
			buffer = append(buffer, e.GetItems()[i].GetUnparsed()...)
		}
	}

	expected := pd.ExpectedSize()
	actual := len(buffer)
	// odd-length values are padded to even length on write; tolerate the
	// single trailing pad byte
	if actual == expected+1 && expected%2 == 1 {
		buffer = buffer[:expected]
		actual = expected
	}
	if actual != expected {
		return nil, SizeMismatchError(expected, actual)
	}

	return &PixelData{
		Bytes:           buffer,
		Rows:            pd.Rows,
		Columns:         pd.Columns,
		BitsAllocated:   pd.BitsAllocated,
		BitsStored:      pd.BitsStored,
		SamplesPerPixel: pd.SamplesPerPixel,
		Frames:          pd.Frames,
	}, nil
}
