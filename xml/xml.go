// Package xml provides an XML codec for name records. Records are written as
// a <name> element carrying kind and delimiter attributes. Data that XML text
// cannot hold, such as control characters or invalid UTF-8, is written as
// base64 and marked with encoding="base64".
package xml

import (
	"context"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/zoobzio/moniker"
)

// encodingBase64 marks base64 element text.
const encodingBase64 = "base64"

// element is the XML shape of a moniker.Record.
type element struct {
	XMLName   xml.Name `xml:"name"`
	Kind      string   `xml:"kind,attr"`
	Delimiter string   `xml:"delimiter,attr"`
	Encoding  string   `xml:"encoding,attr,omitempty"`
	Data      string   `xml:",chardata"`
}

type xmlCodec struct{}

// New returns an XML codec.
func New() moniker.Codec {
	return &xmlCodec{}
}

func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML. Records use the <name> element; other values are
// passed to encoding/xml unchanged.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	switch r := v.(type) {
	case *moniker.Record:
		return marshalRecord(*r)
	case moniker.Record:
		return marshalRecord(r)
	}
	return xml.Marshal(v)
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	r, ok := v.(*moniker.Record)
	if !ok {
		return xml.Unmarshal(data, v)
	}
	var el element
	if err := xml.Unmarshal(data, &el); err != nil {
		return err
	}
	text := el.Data
	switch el.Encoding {
	case "":
	case encodingBase64:
		raw, err := base64.StdEncoding.DecodeString(el.Data)
		if err != nil {
			return fmt.Errorf("xml: data: %w", err)
		}
		text = string(raw)
	default:
		return fmt.Errorf("xml: unknown encoding %q", el.Encoding)
	}
	*r = moniker.Record{
		Kind:      moniker.Kind(el.Kind),
		Delimiter: el.Delimiter,
		Data:      text,
	}
	return nil
}

func marshalRecord(r moniker.Record) ([]byte, error) {
	if !isText(r.Delimiter) {
		return nil, fmt.Errorf("xml: delimiter %q cannot be written as XML text", r.Delimiter)
	}
	el := element{Kind: string(r.Kind), Delimiter: r.Delimiter, Data: r.Data}
	if !isText(r.Data) {
		el.Encoding = encodingBase64
		el.Data = base64.StdEncoding.EncodeToString([]byte(r.Data))
	}
	return xml.Marshal(el)
}

// isText reports whether s survives XML text unchanged: valid UTF-8 made of
// characters in the XML Char production.
func isText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// EncodeName encodes n as a <name> element.
func EncodeName(ctx context.Context, n moniker.Name) ([]byte, error) {
	return moniker.Encode(ctx, New(), n)
}

// DecodeName decodes a <name> element into a Name.
func DecodeName(ctx context.Context, data []byte) (moniker.Name, error) {
	return moniker.Decode(ctx, New(), data)
}
