// Package json provides a JSON codec for name records.
package json

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/zoobzio/moniker"
)

// jsonCodec implements moniker.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() moniker.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// ErrInvalidUTF8 is returned for records JSON strings cannot carry unchanged.
var ErrInvalidUTF8 = errors.New("json: record data is not valid UTF-8")

// Marshal encodes v as JSON. Records holding invalid UTF-8 are rejected
// rather than rewritten.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	switch r := v.(type) {
	case *moniker.Record:
		if !validRecord(*r) {
			return nil, ErrInvalidUTF8
		}
	case moniker.Record:
		if !validRecord(r) {
			return nil, ErrInvalidUTF8
		}
	}
	return json.Marshal(v)
}

func validRecord(r moniker.Record) bool {
	return utf8.ValidString(r.Data) && utf8.ValidString(r.Delimiter)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// EncodeName encodes n as a JSON record.
func EncodeName(ctx context.Context, n moniker.Name) ([]byte, error) {
	return moniker.Encode(ctx, New(), n)
}

// DecodeName decodes a JSON record into a Name.
func DecodeName(ctx context.Context, data []byte) (moniker.Name, error) {
	return moniker.Decode(ctx, New(), data)
}
