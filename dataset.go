package dcmread

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/alessandromagnani17/dcmread/dictionary"
)

/*
===============================================================================
    DataSet
===============================================================================
*/

// DataSet represents a single Data Set,
// as per: http://dicom.nema.org/dicom/2013/output/chtml/part10/sect_7.2.html
//
// Elements are kept in the order they were decoded from the source.
// Duplicate tags are permitted in the source; the most recent occurrence
// wins for lookups, while iteration still visits every occurrence.
type DataSet struct {
	elements []Element
	byTag    map[dictionary.Tag]int

	// TransferSyntax is the negotiated transfer syntax governing the
	// elements past the file meta group
	TransferSyntax TransferSyntax

	// Partial indicates the source could only be decoded up to a point;
	// the elements present were all decoded before the failure.
	Partial bool

	charset *CharacterSet
}

// NewDataSet returns a fresh DataSet with the default transfer syntax
func NewDataSet() *DataSet {
	ds := &DataSet{
		byTag: make(map[dictionary.Tag]int),
	}
	ds.TransferSyntax.SetFromUID("1.2.840.10008.1.2.1")
	return ds
}

// AddElement adds Element `e`
func (ds *DataSet) AddElement(e Element) {
	ds.elements = append(ds.elements, e)
	ds.byTag[e.GetTag()] = len(ds.elements) - 1
}

// GetElement attempts to write the element indexed by `tag` into `dst`
// its return value indicates whether the DataSet contains said `tag`.
func (ds *DataSet) GetElement(tag dictionary.Tag, dst *Element) bool {
	i, found := ds.byTag[tag]
	if !found {
		return false
	}
	*dst = ds.elements[i]
	return true
}

// HasElement returns whether the element indexed by `tag` exists.
func (ds *DataSet) HasElement(tag dictionary.Tag) bool {
	return ds.GetElement(tag, &Element{})
}

// Len returns the number of elements
func (ds *DataSet) Len() int {
	return len(ds.elements)
}

// Elements returns the decoded elements in source order
func (ds *DataSet) Elements() []Element {
	return ds.elements
}

// GetElementByName attempts to write the element whose dictionary name
// matches `name` into `dst`. Name matching is case and punctuation
// insensitive ("PatientName" == "Patient Name" == "patient_name").
func (ds *DataSet) GetElementByName(name string, dst *Element) bool {
	tag, found := dictionary.LookupName(name)
	if !found {
		return false
	}
	return ds.GetElement(tag, dst)
}

// GetCharacterSet returns the CharacterSet in which string values should
// be interpreted, as declared by SpecificCharacterSet.
func (ds *DataSet) GetCharacterSet() *CharacterSet {
	if ds.charset == nil {
		return CharacterSetMap["Default"]
	}
	return ds.charset
}

// SetCharacterSetFromElements reads SpecificCharacterSet (0008,0005), if
// present, and applies its first value as the string decoding charset
func (ds *DataSet) SetCharacterSetFromElements() {
	e := Element{}
	if !ds.GetElement(dictionary.SpecificCharacterSet, &e) {
		return
	}
	name := strings.Trim(string(e.GetDataBytes()), " \000")
	// multi-valued character sets (code extensions) fall back to the first
	if i := strings.IndexByte(name, '\\'); i >= 0 {
		name = name[:i]
	}
	ds.charset = characterSetByName(name)
}

/*
===============================================================================
    Value Decoding
===============================================================================
*/

// AsString returns the value of the element indexed by `tag` rendered as
// a string. Character string values have their trailing pad removed at
// this point (never at decode time: the stored bytes always match the
// declared length) and are decoded via the data set's character set.
// The second return indicates whether the tag was present at all.
func (ds *DataSet) AsString(tag dictionary.Tag) (string, bool) {
	e := Element{}
	if !ds.GetElement(tag, &e) {
		return "", false
	}
	return ds.decodeToString(&e), true
}

// Uint16 returns the value of the element indexed by `tag` interpreted
// as a single 16 bit unsigned integer, or `def` if the tag is absent or
// its value is not two bytes wide.
func (ds *DataSet) Uint16(tag dictionary.Tag, def uint16) uint16 {
	e := Element{}
	if !ds.GetElement(tag, &e) {
		return def
	}
	data := e.GetDataBytes()
	if len(data) < 2 {
		return def
	}
	return ds.TransferSyntax.Encoding.ByteOrder().Uint16(data)
}

// trimPad removes trailing padding from a character string value
// according to its VR (UIs pad with NUL, all others with space)
func trimPad(raw []byte, vr string) []byte {
	pad := padCharForVR(vr)
	end := len(raw)
	for end > 0 && raw[end-1] == pad {
		end--
	}
	return raw[:end]
}

// decodeToString renders the value of `e` as a string: character VRs are
// pad-trimmed and charset-decoded, binary numeric VRs are formatted with
// values joined by the standard `\` multiplicity separator
func (ds *DataSet) decodeToString(e *Element) string {
	data := e.GetDataBytes()
	vr := e.GetVR()

	if IsCharacterStringVR(vr) {
		trimmed := trimPad(data, vr)
		if isCharsetSensitiveVR(vr) {
			decoded, err := decodeBytes(trimmed, ds.GetCharacterSet())
			if err != nil {
				Warnf("error decoding %s with CharacterSet %s: %v", e.GetTag(), ds.GetCharacterSet().Name, err)
				return string(trimmed)
			}
			return decoded
		}
		return string(trimmed)
	}

	order := ds.TransferSyntax.Encoding.ByteOrder()
	switch vr {
	case "US":
		return joinNumeric(data, 2, func(b []byte) string {
			return fmt.Sprintf("%d", order.Uint16(b))
		})
	case "SS":
		return joinNumeric(data, 2, func(b []byte) string {
			return fmt.Sprintf("%d", int16(order.Uint16(b)))
		})
	case "UL":
		return joinNumeric(data, 4, func(b []byte) string {
			return fmt.Sprintf("%d", order.Uint32(b))
		})
	case "SL":
		return joinNumeric(data, 4, func(b []byte) string {
			return fmt.Sprintf("%d", int32(order.Uint32(b)))
		})
	case "FL":
		return joinNumeric(data, 4, func(b []byte) string {
			return fmt.Sprintf("%g", math.Float32frombits(order.Uint32(b)))
		})
	case "FD":
		return joinNumeric(data, 8, func(b []byte) string {
			return fmt.Sprintf("%g", math.Float64frombits(order.Uint64(b)))
		})
	case "AT":
		return joinNumeric(data, 4, func(b []byte) string {
			return dictionary.TagOf(order.Uint16(b[:2]), order.Uint16(b[2:4])).String()
		})
	case "SQ":
		return fmt.Sprintf("(%d items)", len(e.GetItems()))
	}
	if e.IsUndefinedLength() {
		return fmt.Sprintf("(%d fragments)", len(e.GetItems()))
	}
	return fmt.Sprintf("(%d bytes)", len(data))
}

// joinNumeric splits `data` into fixed width values and formats each
// via `format`, joining multiples with `\`
func joinNumeric(data []byte, width int, format func([]byte) string) string {
	if len(data) < width {
		return ""
	}
	var sb strings.Builder
	for i := 0; i+width <= len(data); i += width {
		if i > 0 {
			sb.WriteByte('\\')
		}
		sb.WriteString(format(data[i : i+width]))
	}
	return sb.String()
}

/*
===============================================================================
    Iteration
===============================================================================
*/

// TagInfo is a light record describing one decoded element, suitable for
// listings and dumps
type TagInfo struct {
	Tag     dictionary.Tag
	Name    string
	VR      string
	Preview string
}

// previewLimit bounds the rendered value length within a TagInfo
const previewLimit = 64

// AllTags returns an iterator over every decoded element in source
// order, including duplicates. Structural markers (group FFFE) are never
// surfaced. The iterator is restartable and does no work until consumed.
func (ds *DataSet) AllTags() iter.Seq[TagInfo] {
	return func(yield func(TagInfo) bool) {
		for i := range ds.elements {
			e := &ds.elements[i]
			if e.isStructuralMarker() {
				continue
			}
			preview := ds.decodeToString(e)
			if len(preview) > previewLimit {
				preview = preview[:previewLimit] + "..."
			}
			if !yield(TagInfo{
				Tag:     e.GetTag(),
				Name:    e.GetName(),
				VR:      e.GetVR(),
				Preview: preview,
			}) {
				return
			}
		}
	}
}
