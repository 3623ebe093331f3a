package dcmread

import (
	"encoding/binary"

	"github.com/alessandromagnani17/dcmread/dictionary"
)

/*
===============================================================================
    Item
===============================================================================
*/

// Item represents an Item, as may be found within nested data sequences,
// as per http://dicom.nema.org/dicom/2013/output/chtml/part05/sect_7.5.html
type Item struct {
	dataset  *DataSet
	unparsed []byte
}

// NewItem returns a fresh Item with a blank data set.
func NewItem() Item {
	return Item{
		dataset: NewDataSet(),
	}
}

// GetDataSet returns the data set of elements nested within an Item
func (i *Item) GetDataSet() *DataSet {
	return i.dataset
}

// GetUnparsed returns the "unparsed" data within an Item.
//
// An item is unparsed if its source VR was not SQ. Main example being
// PixelData: this could for instance be of OW VR, but have undefined
// length, and as such, carry its value as a run of fragments.
func (i *Item) GetUnparsed() []byte {
	return i.unparsed
}

/*
===============================================================================
    Element
===============================================================================
*/

// Element represents a Data Element,
// as per http://dicom.nema.org/dicom/2013/output/chtml/part05/chapter_7.html#sect_7.1
type Element struct {
	tag     dictionary.Tag
	vr      string
	name    string
	data    []byte
	datalen uint32
	items   []Item
}

// NewElement returns a fresh Element
func NewElement() Element {
	return Element{}
}

// GetTag returns the Element's "Tag" component
func (e *Element) GetTag() dictionary.Tag {
	return e.tag
}

// GetVR returns the Element's "VR" component
func (e *Element) GetVR() string {
	return e.vr
}

// GetName returns the dictionary name for the Element's tag, or a
// synthesised "Unknown(gggg,eeee)" name for tags outside the dictionary
func (e *Element) GetName() string {
	return e.name
}

// GetValueLength returns the length component as declared in the stream.
// Equal to `UndefinedLength` for undefined-length containers; otherwise
// equal to len(GetDataBytes()).
func (e *Element) GetValueLength() uint32 {
	return e.datalen
}

// GetDataBytes returns the raw value bytes. Nil for undefined-length
// containers and parsed sequences; see GetItems for those.
func (e *Element) GetDataBytes() []byte {
	return e.data
}

// IsUndefinedLength returns whether the element declared the undefined
// length sentinel rather than a byte count
func (e *Element) IsUndefinedLength() bool {
	return e.datalen == UndefinedLength
}

// HasItems returns whether the element contains nested items
func (e *Element) HasItems() bool {
	return len(e.items) > 0
}

// GetItems returns nested items within this element
func (e *Element) GetItems() []Item {
	return e.items
}

// isStructuralMarker returns whether the element is an item/sequence
// delimiter rather than a data-bearing element
func (e *Element) isStructuralMarker() bool {
	return e.tag.Group() == 0xFFFE
}

/*
===============================================================================
    ElementReader
===============================================================================
*/

// ElementReader decodes DICOM Elements from a Cursor according to the
// configured VR mode and byte ordering.
type ElementReader struct {
	cur          *Cursor
	implicit     bool
	littleEndian bool
}

// NewElementReader returns a fresh ElementReader reading from `cur`.
//
// It defaults to Implicit VR Little Endian: Default Transfer Syntax for DICOM
func NewElementReader(cur *Cursor) ElementReader {
	return ElementReader{
		cur:          cur,
		implicit:     true,
		littleEndian: true,
	}
}

// IsLittleEndian returns whether this ElementReader is set to parse
// data according to Little Endian byte ordering.
func (elr *ElementReader) IsLittleEndian() bool {
	return elr.littleEndian
}

// SetLittleEndian sets whether this ElementReader should parse
// data according to Little Endian byte ordering.
func (elr *ElementReader) SetLittleEndian(isLittleEndian bool) {
	elr.littleEndian = isLittleEndian
}

// IsImplicitVR returns whether this ElementReader is set to parse
// data according to the VR component being implicitly defined
func (elr *ElementReader) IsImplicitVR() bool {
	return elr.implicit
}

// SetImplicitVR sets whether this ElementReader should parse
// data according to the VR component being implicitly defined
func (elr *ElementReader) SetImplicitVR(isImplicitVR bool) {
	elr.implicit = isImplicitVR
}

// SetEncoding applies both components of `encoding` at once
func (elr *ElementReader) SetEncoding(encoding Encoding) {
	elr.SetImplicitVR(encoding.ImplicitVR)
	elr.SetLittleEndian(encoding.LittleEndian)
}

func (elr *ElementReader) byteOrder() binary.ByteOrder {
	if elr.littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// readTag attempts to read/decode a dicom "Tag" from the cursor into `dst`
func (elr *ElementReader) readTag(dst *dictionary.Tag) error {
	group, err := elr.cur.ReadUint16(elr.byteOrder())
	if err != nil {
		return err
	}
	element, err := elr.cur.ReadUint16(elr.byteOrder())
	if err != nil {
		return err
	}
	*dst = dictionary.TagOf(group, element)
	return nil
}

// readElementVR attempts to read/decode the "VR" component of an Element
// into `dst`. `streamVR` receives the VR as present in the stream (it
// decides the length field width); the element itself prefers the
// dictionary VR when the stream only declares UN.
func (elr *ElementReader) readElementVR(dst *Element, entry *dictionary.DictEntry, streamVR *string) error {
	if elr.IsImplicitVR() {
		// implicit VR: the dictionary is the only source
		dst.vr = entry.VR
		*streamVR = entry.VR
		return nil
	}
	raw, err := elr.cur.ReadBytes(2)
	if err != nil {
		return err
	}
	*streamVR = string(raw)
	if !IsRecognisedVR(*streamVR) {
		return UnknownVRCodeError("element %s: %q is not a recognised VR", dst.tag, *streamVR)
	}
	dst.vr = *streamVR
	// the dictionary VR wins only when the source gives us nothing better
	if *streamVR == "UN" && entry.VR != "UN" {
		dst.vr = entry.VR
	}
	return nil
}

// readElementLength attempts to read/decode the "Length" component of an
// Element into `dst`.
// issue #6: the *source* VR is the basis for deciding the size of the
// length integer. In explicit VR mode, long-form VRs are followed by two
// reserved bytes and a 32-bit length, all others by a 16-bit length.
func (elr *ElementReader) readElementLength(dst *Element, streamVR string) error {
	if elr.IsImplicitVR() {
		// ImplicitVR: all length definitions are 32 bits
		length, err := elr.cur.ReadUint32(elr.byteOrder())
		if err != nil {
			return err
		}
		dst.datalen = length
		return nil
	}
	if isLongFormVR(streamVR) {
		if err := elr.cur.Skip(2); err != nil {
			return err
		}
		length, err := elr.cur.ReadUint32(elr.byteOrder())
		if err != nil {
			return err
		}
		dst.datalen = length
		return nil
	}
	length, err := elr.cur.ReadUint16(elr.byteOrder())
	if err != nil {
		return err
	}
	dst.datalen = uint32(length)
	return nil
}

// readElementData attempts to read/decode the "Data" component of an
// Element into `dst`.
// In the event that the length is undefined, embedded items will be
// decoded, as per: http://dicom.nema.org/dicom/2013/output/chtml/part05/sect_7.5.html
func (elr *ElementReader) readElementData(dst *Element) error {
	if dst.datalen == UndefinedLength {
		if !canHaveUndefinedLength(dst.vr) {
			return InvalidLengthError("element %s: undefined length not permitted for VR %q", dst.tag, dst.vr)
		}
		return elr.readUndefinedLength(dst.vr == "SQ", &dst.items)
	}
	if dst.vr == "SQ" && dst.datalen > 0 {
		region, err := elr.cur.ReadBytes(int(dst.datalen))
		if err != nil {
			return err
		}
		return elr.readDefinedLengthItems(region, &dst.items)
	}
	data, err := elr.cur.ReadBytes(int(dst.datalen))
	if err != nil {
		return err
	}
	dst.data = data
	return nil
}

// ReadElement attempts to completely read an element into `dst`.
//
// Structural markers (group FFFE) decode as zero-length marker elements:
// no VR is read and their length field is consumed but never followed.
func (elr *ElementReader) ReadElement(dst *Element) error {
	*dst = Element{}
	if err := elr.readTag(&dst.tag); err != nil {
		return err
	}

	entry, _ := dictionary.LookupTag(dst.tag)
	dst.name = entry.Name

	if dst.isStructuralMarker() {
		length, err := elr.cur.ReadUint32(elr.byteOrder())
		if err != nil {
			return err
		}
		dst.datalen = length
		return nil
	}

	var streamVR string
	if err := elr.readElementVR(dst, entry, &streamVR); err != nil {
		return err
	}
	if err := elr.readElementLength(dst, streamVR); err != nil {
		return err
	}
	return elr.readElementData(dst)
}

// readUndefinedLength attempts to read any number of items that are present
// inside the current Element, up to the sequence delimitation item.
//
// If `readElements` is true, each embedded Item is expected to contain
// complete Elements, as would be the case if the source VR is "SQ".
// If `readElements` is false the data inside each item is kept as an
// unparsed fragment. This is the case for encapsulated pixel data
// (source VR OB/OW).
func (elr *ElementReader) readUndefinedLength(readElements bool, dst *[]Item) error {
	for {
		var tag dictionary.Tag
		if err := elr.readTag(&tag); err != nil {
			return err
		}

		// SequenceDelimitationItem exits the loop; its four byte filler
		// length must still be consumed
		if tag == dictionary.SequenceDelimitationItem {
			return elr.cur.Skip(4)
		}

		// anything other than an item start here means the stream has gone bad
		if tag != dictionary.Item {
			return InvalidLengthError("item tag = %s (!= (FFFE,E000)) at offset 0x%X", tag, elr.cur.Position())
		}

		length, err := elr.cur.ReadUint32(elr.byteOrder())
		if err != nil {
			return err
		}

		item := NewItem()
		if length == UndefinedLength {
			// undefined length item: contains elements up to ItemDelimitationItem
			for {
				e := NewElement()
				if err := elr.ReadElement(&e); err != nil {
					return err
				}
				if e.GetTag() == dictionary.ItemDelimitationItem {
					break
				}
				item.dataset.AddElement(e)
			}
		} else {
			if length == 0 {
				continue
				/* Turns out the data set had bytes:
				   (40 00 08 00) (53 51) 00 00 (FF FF FF FF) (FE FF 00 E0) (00 00 00 00) (FE FF DD E0) 00 00
				   (4b: tag)     (2b:SQ)       (4b: un.len)  (4b:itm start) (4b: 0 len)  (4b: seq end)
				   Therefore, the item genuinely had length of zero.
				   This condition accounts for this possibility.
				*/
			}
			if readElements {
				region, err := elr.cur.ReadBytes(int(length))
				if err != nil {
					return err
				}
				if err := elr.readItemElements(region, item.dataset); err != nil {
					return err
				}
			} else {
				fragment, err := elr.cur.ReadBytes(int(length))
				if err != nil {
					return err
				}
				item.unparsed = fragment
			}
		}
		*dst = append(*dst, item)
	}
}

// readDefinedLengthItems decodes a run of items from the bounded byte
// region of a defined-length sequence
func (elr *ElementReader) readDefinedLengthItems(region []byte, dst *[]Item) error {
	sub := NewCursor(region)
	subReader := NewElementReader(&sub)
	subReader.SetImplicitVR(elr.implicit)
	subReader.SetLittleEndian(elr.littleEndian)
	for sub.Remaining() > 0 {
		var tag dictionary.Tag
		if err := subReader.readTag(&tag); err != nil {
			return err
		}
		if tag != dictionary.Item {
			return InvalidLengthError("item tag = %s (!= (FFFE,E000)) in defined-length sequence", tag)
		}
		length, err := sub.ReadUint32(subReader.byteOrder())
		if err != nil {
			return err
		}

		item := NewItem()
		if length == UndefinedLength {
			for {
				e := NewElement()
				if err := subReader.ReadElement(&e); err != nil {
					return err
				}
				if e.GetTag() == dictionary.ItemDelimitationItem {
					break
				}
				item.dataset.AddElement(e)
			}
		} else {
			itemRegion, err := sub.ReadBytes(int(length))
			if err != nil {
				return err
			}
			if err := subReader.readItemElements(itemRegion, item.dataset); err != nil {
				return err
			}
		}
		*dst = append(*dst, item)
	}
	return nil
}

// readItemElements decodes every element within a bounded item region
// into `dataset`
func (elr *ElementReader) readItemElements(region []byte, dataset *DataSet) error {
	sub := NewCursor(region)
	subReader := NewElementReader(&sub)
	subReader.SetImplicitVR(elr.implicit)
	subReader.SetLittleEndian(elr.littleEndian)
	for sub.Remaining() > 0 {
		e := NewElement()
		if err := subReader.ReadElement(&e); err != nil {
			return err
		}
		if e.isStructuralMarker() {
			continue
		}
		dataset.AddElement(e)
	}
	return nil
}
