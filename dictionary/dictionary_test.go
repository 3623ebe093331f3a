package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagComponents(t *testing.T) {
	// ensures that tags pack and unpack their (group, element)
	// components correctly.
	t.Parallel()
	tag := TagOf(0x7FE0, 0x0010)
	assert.Equal(t, uint16(0x7FE0), tag.Group())
	assert.Equal(t, uint16(0x0010), tag.Element())
	assert.Equal(t, PixelData, tag)
	assert.Equal(t, "(7FE0,0010)", tag.String())
}

func TestIsMetaElement(t *testing.T) {
	t.Parallel()
	assert.True(t, TransferSyntaxUID.IsMetaElement())
	assert.False(t, PatientName.IsMetaElement())
}

func TestLookupTag(t *testing.T) {
	// ensures that `LookupTag` resolves known tags to their
	// dictionary entries.
	t.Parallel()
	entry, found := LookupTag(PatientName)
	assert.True(t, found)
	assert.Equal(t, "PatientName", entry.Name)
	assert.Equal(t, "PN", entry.VR)
}

func TestLookupTagUnknown(t *testing.T) {
	// ensures that `LookupTag` synthesises a usable entry for
	// tags outside the dictionary.
	t.Parallel()
	entry, found := LookupTag(TagOf(0x7F01, 0x1234))
	assert.False(t, found)
	assert.Equal(t, "Unknown(7F01,1234)", entry.Name)
	assert.Equal(t, "UN", entry.VR)
}

func TestLookupName(t *testing.T) {
	// ensures that `LookupName` matches names regardless of
	// case and separator characters.
	t.Parallel()
	for _, name := range []string{"PatientName", "patientname", "Patient Name", "patient_name", "PATIENT-NAME"} {
		tag, found := LookupName(name)
		assert.True(t, found, name)
		assert.Equal(t, PatientName, tag, name)
	}
}

func TestLookupNameUnknown(t *testing.T) {
	t.Parallel()
	_, found := LookupName("NoSuchAttribute")
	assert.False(t, found)
}
