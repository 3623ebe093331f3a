package dcmread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterSetByName(t *testing.T) {
	// ensures that lookup resolves registered names and falls
	// back to the default repertoire for everything else.
	t.Parallel()
	cs := characterSetByName("ISO_IR 100")
	assert.Equal(t, "Latin alphabet No. 1", cs.Description)

	cs = characterSetByName("NOT A CHARSET")
	assert.Equal(t, "Default", cs.Name)
}

func TestDecodeBytes(t *testing.T) {
	// ensures that decoding honours the charset, treating a nil
	// charset as a pass-through.
	t.Parallel()
	decoded, err := decodeBytes([]byte("REN\xC9"), CharacterSetMap["ISO_IR 100"])
	assert.NoError(t, err)
	assert.Equal(t, "RENÉ", decoded)

	decoded, err = decodeBytes([]byte("plain"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "plain", decoded)

	// ShiftJIS katakana
	decoded, err = decodeBytes([]byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67}, CharacterSetMap["ISO_IR 13"])
	assert.NoError(t, err)
	assert.Equal(t, "テスト", decoded)
}
