package dcmread

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/alessandromagnani17/dcmread/dictionary"
)

/*
===============================================================================
    Parser
===============================================================================
*/

// dicomMagic immediately follows the 128 byte preamble in a conformant
// DICOM file, as per: http://dicom.nema.org/dicom/2013/output/chtml/part10/chapter_7.html
const dicomMagic = "DICM"

// preambleAndMagicLength covers the 128 byte preamble plus "DICM"
const preambleAndMagicLength = 132

// parser decodes a complete data set from an in-memory source
type parser struct {
	cur *Cursor
	elr ElementReader
	ds  *DataSet
}

func newParser(buf []byte) parser {
	cur := NewCursor(buf)
	p := parser{cur: &cur, ds: NewDataSet()}
	p.elr = NewElementReader(p.cur)
	return p
}

// readPreamble consumes the 128 byte preamble and magic string at the
// start of the source. If either is absent, `found` will be false and
// the cursor will not have advanced.
func (p *parser) readPreamble() (found bool) {
	peeked, err := p.cur.Peek(preambleAndMagicLength)
	if err != nil {
		return false
	}
	if string(peeked[128:]) != dicomMagic {
		return false
	}
	if err := p.cur.Skip(preambleAndMagicLength); err != nil {
		panic(err) // cannot happen: Peek succeeded over the same region
	}
	return true
}

// crawlMeta attempts to retrieve all "meta" (group 0002) elements.
// See ``7.1 DICOM File Meta Information`` for more information.
// The meta group is always encoded as Explicit VR Little Endian; its
// extent is bounded by FileMetaInformationGroupLength where present,
// with a group check on each element as a backstop.
func (p *parser) crawlMeta() error {
	// meta is always explicit VR little endian
	p.elr.SetImplicitVR(false)
	p.elr.SetLittleEndian(true)

	metaEnd := -1
	for {
		if metaEnd >= 0 && p.cur.Position() >= metaEnd {
			break
		}
		nextUpperBytes, err := p.cur.Peek(2)
		if err != nil {
			break
		}
		if binary.LittleEndian.Uint16(nextUpperBytes) != 0x0002 {
			Debugf("exiting meta (nextUpper = %04X, offset = 0x%X)", binary.LittleEndian.Uint16(nextUpperBytes), p.cur.Position())
			break
		}

		e := NewElement()
		if err := p.elr.ReadElement(&e); err != nil {
			return err
		}
		p.ds.AddElement(e)

		if e.GetTag() == dictionary.FileMetaInformationGroupLength && len(e.GetDataBytes()) == 4 {
			metaEnd = p.cur.Position() + int(binary.LittleEndian.Uint32(e.GetDataBytes()))
		}
	}
	return nil
}

// applyTransferSyntax switches the element reader over to the encoding
// negotiated in the meta group, falling back to a heuristic guess when
// TransferSyntaxUID is absent.
func (p *parser) applyTransferSyntax() {
	if uidstr, found := p.ds.AsString(dictionary.TransferSyntaxUID); found && uidstr != "" {
		p.ds.TransferSyntax.SetFromUID(uidstr)
	} else {
		p.ds.TransferSyntax.SetFromUID("1.2.840.10008.1.2")
		if peeked, err := p.cur.Peek(6); err == nil {
			if encoding, err := guessEncodingFromBytes(peeked); err == nil {
				p.ds.TransferSyntax.Encoding = encoding
				Debugf("guessed transfer syntax encoding: %s", encoding)
			}
		}
	}
	p.elr.SetEncoding(p.ds.TransferSyntax.Encoding)
}

// crawlElements attempts to retrieve all remaining elements.
// See ``7.1 Data Elements`` for more information.
func (p *parser) crawlElements() error {
	p.applyTransferSyntax()

	for p.cur.Remaining() > 0 {
		e := NewElement()
		if err := p.elr.ReadElement(&e); err != nil {
			if _, truncated := err.(*TruncatedStream); truncated && !GetConfig().StrictMode {
				Warnf("element truncated at offset 0x%X; keeping elements decoded so far. use with caution.", p.cur.Position())
				p.ds.Partial = true
				return nil
			}
			return err
		}
		if e.isStructuralMarker() {
			continue
		}
		p.ds.AddElement(e)

		if e.GetTag() == dictionary.SpecificCharacterSet {
			p.ds.SetCharacterSetFromElements()
			Debugf("CS: %v", p.ds.GetCharacterSet().Name)
		}
	}
	return nil
}

/*
===============================================================================
    Entry Points
===============================================================================
*/

// Parse decodes a complete DataSet from `source`.
//
// A DataSet is always returned. If decoding fails part way, the returned
// DataSet carries every element decoded before the failure, has its
// Partial flag raised, and is accompanied by the error.
func Parse(source []byte) (*DataSet, error) {
	p := newParser(source)

	if !p.readPreamble() {
		if !GetConfig().AcceptMissingPreamble {
			return p.ds, NotDicomError("input of %d bytes does not begin with a DICOM preamble", len(source))
		}
		Debug("input is missing preamble (bytes 0-132)")
	}

	if err := p.crawlMeta(); err != nil {
		p.ds.Partial = true
		return p.ds, err
	}
	if err := p.crawlElements(); err != nil {
		p.ds.Partial = true
		return p.ds, err
	}
	return p.ds, nil
}

// ParseFile decodes a complete DataSet from the file at `path`
func ParseFile(path string) (*DataSet, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return NewDataSet(), err
	}
	ds, err := Parse(source)
	if err != nil {
		Errorf(`failed to parse "%s": %v`, filepath.Base(path), err)
	}
	return ds, err
}

// ParseFileChannel wraps `ParseFile` in a channel pair for parsing in a
// goroutine. Exactly one of the two channels receives: the decoded data
// set on success, the error otherwise.
func ParseFileChannel(path string, dschannel chan *DataSet, errorchannel chan error) {
	ds, err := ParseFile(path)
	if err != nil {
		errorchannel <- err
		return
	}
	dschannel <- ds
}
