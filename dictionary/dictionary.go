// Package dictionary provides the static DICOM data dictionary: a mapping
// between element tags, human-readable names and default VRs,
// as per http://dicom.nema.org/dicom/2013/output/chtml/part06/chapter_6.html
package dictionary

import (
	"fmt"
	"strings"
	"sync"
)

/*
===============================================================================
    Tag
===============================================================================
*/

// Tag identifies a data element as an ordered (group, element) pair,
// packed with the group number in the most significant 16 bits.
type Tag uint32

// TagOf packs a (group, element) pair into a Tag
func TagOf(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

// Group returns the group number component
func (t Tag) Group() uint16 {
	return uint16(t >> 16)
}

// Element returns the element number component
func (t Tag) Element() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetaElement returns whether the tag belongs to the file meta
// information group (0002,xxxx)
func (t Tag) IsMetaElement() bool {
	return t.Group() == 0x0002
}

func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group(), t.Element())
}

/*
===============================================================================
    DictEntry
===============================================================================
*/

// DictEntry represents a single dictionary entry for a known tag
type DictEntry struct {
	Tag  Tag
	Name string
	VR   string
	VM   string
}

// LookupTag searches the dictionary for `t`.
// On a miss, a synthesised entry is returned (Name "Unknown(gggg,eeee)",
// VR "UN") so unknown tags still decode; `found` reports the miss.
func LookupTag(t Tag) (entry *DictEntry, found bool) {
	entry, found = DicomDictionary[t]
	if !found {
		name := "Unknown" + t.String()
		entry = &DictEntry{Tag: t, Name: name, VR: "UN", VM: "1"}
	}
	return
}

// LookupName resolves a human-readable tag name to its Tag.
// Names are matched case-insensitively and ignoring spaces, underscores
// and hyphens, so "PatientName", "Patient Name" and "patient_name" all
// resolve to (0010,0010).
func LookupName(name string) (Tag, bool) {
	tag, found := nameIndex()[normaliseName(name)]
	return tag, found
}

func normaliseName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	nameIndexOnce sync.Once
	nameIndexMap  map[string]Tag
)

// nameIndex lazily builds the normalised-name index over DicomDictionary
func nameIndex() map[string]Tag {
	nameIndexOnce.Do(func() {
		nameIndexMap = make(map[string]Tag, len(DicomDictionary))
		for tag, entry := range DicomDictionary {
			nameIndexMap[normaliseName(entry.Name)] = tag
		}
	})
	return nameIndexMap
}
