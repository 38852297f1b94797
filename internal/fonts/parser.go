package fonts

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// Record is one font record found while probing a file: its metadata and
// its index within the file. For collection formats the index addresses a
// sub-font; single-font files yield index 0.
type Record struct {
	Info  Info
	Index int
}

// Font is a fully decoded font: the parsed face plus the raw bytes it was
// decoded from and its collection index.
type Font struct {
	Info  Info
	Face  *sfnt.Font
	Data  []byte
	Index int
}

// Parser extracts font records from raw file bytes and decodes individual
// fonts. The default implementation is backed by x/image/font/sfnt; tests
// substitute fakes so fixtures need no real font binaries.
type Parser interface {
	// Probe returns every font record embedded in data, in file order.
	// Unparseable data yields nil: a corrupt candidate is skipped, never
	// an error.
	Probe(data []byte) []Record

	// Decode parses the font record at the given collection index.
	Decode(data []byte, index int) (*Font, error)
}

// NewParser returns the sfnt-backed parser. It handles both single fonts
// (ttf/otf) and collections (ttc/otc).
func NewParser() Parser {
	return sfntParser{}
}

type sfntParser struct{}

func (sfntParser) Probe(data []byte) []Record {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil
	}
	var records []Record
	for i := 0; i < coll.NumFonts(); i++ {
		face, err := coll.Font(i)
		if err != nil {
			continue
		}
		records = append(records, Record{Info: faceInfo(face), Index: i})
	}
	return records
}

func (sfntParser) Decode(data []byte, index int) (*Font, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("font index %d out of range for collection of %d", index, coll.NumFonts())
	}
	face, err := coll.Font(index)
	if err != nil {
		return nil, err
	}
	return &Font{
		Info:  faceInfo(face),
		Face:  face,
		Data:  data,
		Index: index,
	}, nil
}

func faceInfo(face *sfnt.Font) Info {
	var buf sfnt.Buffer
	family, err := face.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	style, err := face.Name(&buf, sfnt.NameIDSubfamily)
	if err != nil {
		style = ""
	}
	return Info{Family: family, Style: style}
}
