package dcmread

import (
	"fmt"
	"io"
	"strings"

	"github.com/alessandromagnani17/dcmread/dictionary"
)

/*
===============================================================================
    File-Level API
===============================================================================
*/

// ReadMetadata decodes the file at `path` and returns its metadata as a
// name to rendered-value map: patient, study and series attributes,
// image geometry, pixel encoding parameters and the file meta group
// alike. Sequences and bulk binary payloads (such as PixelData) are not
// meaningful as standalone strings and are omitted. When a tag occurs
// more than once, the most recent value wins, matching element lookup.
func ReadMetadata(path string) (map[string]string, error) {
	ds, err := ParseFile(path)
	if err != nil && ds.Len() == 0 {
		return nil, err
	}

	meta := make(map[string]string)
	for i := range ds.Elements() {
		e := &ds.Elements()[i]
		if !isStringRenderableVR(e.GetVR()) {
			continue
		}
		meta[e.GetName()] = ds.decodeToString(e)
	}
	return meta, err
}

// GetTagValue decodes the file at `path` and returns the value of the
// element named `tagName`, rendered as a string.
//
// Name matching is case and punctuation insensitive. A NotFound is
// returned both when no dictionary tag carries the name and when the
// tag is absent from the data set; a present element with an empty
// value yields "" with a nil error.
func GetTagValue(path string, tagName string) (string, error) {
	ds, err := ParseFile(path)
	if err != nil && ds.Len() == 0 {
		return "", err
	}

	tag, found := dictionary.LookupName(tagName)
	if !found {
		return "", NotFoundError("no dictionary tag is named %q", tagName)
	}
	val, present := ds.AsString(tag)
	if !present {
		if err != nil {
			return "", err
		}
		return "", NotFoundError("data set does not carry %s %q", tag, tagName)
	}
	return val, nil
}

// GetPixelData decodes the file at `path` and extracts its validated,
// uncompressed pixel buffer.
func GetPixelData(path string) (*PixelData, error) {
	ds, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractPixels(ds)
}

// DumpAllTags decodes the file at `path` and writes one human-readable
// line per element to `w`, in source order, descending into sequences.
func DumpAllTags(path string, w io.Writer) error {
	ds, err := ParseFile(path)
	if err != nil && ds.Len() == 0 {
		return err
	}
	for i := range ds.Elements() {
		e := &ds.Elements()[i]
		for _, line := range ds.Describe(e, 0) {
			if _, werr := fmt.Fprintln(w, line); werr != nil {
				return werr
			}
		}
	}
	return err
}

// Describe returns a string array of human-readable element description
func (ds *DataSet) Describe(e *Element, indentLevel int) []string {
	var description []string
	indentStr := strings.Repeat(" ", indentLevel)
	if e.HasItems() {
		description = append(description, fmt.Sprintf("%s[%s] %s %s:", indentStr, e.GetVR(), e.GetTag(), e.GetName()))
		for i := range e.GetItems() {
			item := &e.GetItems()[i]
			if len(item.GetUnparsed()) > 0 { // the element contains an unparsed buffer.
				description = append(description, fmt.Sprintf("%s    (%d bytes)", indentStr, len(item.GetUnparsed())))
				continue
			}
			nested := item.GetDataSet()
			for j := range nested.Elements() {
				description = append(description, nested.Describe(&nested.Elements()[j], indentLevel+4)...)
			}
		}
		return description
	}
	if e.GetValueLength() == 0 { // no value, nor items
		return append(description, fmt.Sprintf("%s[%s] %s %s: (empty)", indentStr, e.GetVR(), e.GetTag(), e.GetName()))
	}
	if e.GetValueLength() > 256 && !IsCharacterStringVR(e.GetVR()) {
		return append(description, fmt.Sprintf("%s[%s] %s %s: (%d bytes)", indentStr, e.GetVR(), e.GetTag(), e.GetName(), e.GetValueLength()))
	}
	return append(description, fmt.Sprintf("%s[%s] %s %s: %s", indentStr, e.GetVR(), e.GetTag(), e.GetName(), ds.decodeToString(e)))
}
